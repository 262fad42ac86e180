package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/signpad"
	"github.com/gogpu/signpad/internal/atomicfile"
)

// PDF writes each artifact as a single-page PDF whose page is exactly the
// image, one point per pixel.
type PDF struct {
	Path string
}

// Download implements signpad.Downloader.
func (d PDF) Download(ctx context.Context, a signpad.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := target(d.Path, a.Name, ".pdf")
	if err != nil {
		return err
	}
	data, err := RenderPDF(a)
	if err != nil {
		return err
	}
	if err := atomicfile.Write(name, data, 0o644); err != nil {
		return err
	}
	signpad.Logger().Debug("export: pdf written", "path", name, "bytes", len(data))
	return nil
}

// RenderPDF lays out a's PNG on a page of the same size.
func RenderPDF(a signpad.Artifact) ([]byte, error) {
	if a.Image == nil || len(a.PNG) == 0 {
		return nil, fmt.Errorf("export: artifact %q has no image", a.Name)
	}
	w := float64(a.Image.Bounds().Dx())
	h := float64(a.Image.Bounds().Dy())

	orientation := "P"
	if w > h {
		orientation = "L"
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetTitle(a.Name, true)
	p.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(a.Name, opt, bytes.NewReader(a.PNG))
	p.ImageOptions(a.Name, 0, 0, w, h, false, opt, 0, "")

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
