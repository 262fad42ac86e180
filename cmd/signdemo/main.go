// Command signdemo draws a scripted signature without a window.
//
// It exercises every brush style, an erase pass and an undo/redo round
// trip, then saves the result. Run it twice with -recover to stamp the
// stored signature back onto a fresh pad.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/signpad"
	"github.com/gogpu/signpad/export"
	"github.com/gogpu/signpad/storage"
)

func main() {
	var (
		width    = flag.Int("width", 600, "pad width")
		height   = flag.Int("height", 300, "pad height")
		output   = flag.String("out", ".", "output directory")
		storeDir = flag.String("store", "", "store directory (default: user config dir)")
		bg       = flag.String("bg", "#ffffff", "pad color")
		pdf      = flag.Bool("pdf", false, "also write a PDF")
		restore  = flag.Bool("recover", false, "recover the stored signature before drawing")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	signpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *storeDir == "" {
		dir, err := storage.DefaultDir()
		if err != nil {
			log.Fatalf("Failed to locate store: %v", err)
		}
		*storeDir = dir
	}
	background, err := signpad.ParseHex(*bg)
	if err != nil {
		log.Fatalf("Invalid pad color: %v", err)
	}

	var dl signpad.Downloader = export.Dir{Path: *output}
	if *pdf {
		dl = both{export.Dir{Path: *output}, export.PDF{Path: *output}}
	}

	settings := signpad.NewSettings()
	settings.SetBackground(background)

	pad, err := signpad.New(*width, *height,
		signpad.WithControls(settings),
		signpad.WithStore(storage.NewDir(*storeDir)),
		signpad.WithDownloader(dl),
		signpad.WithNotifier(signpad.LogNotifier{}),
	)
	if err != nil {
		log.Fatalf("Failed to create pad: %v", err)
	}
	defer pad.Close()

	ctx := context.Background()
	if *restore {
		if err := pad.Recover(ctx); err != nil {
			log.Printf("Recover: %v", err)
		}
	}

	w, h := float64(*width), float64(*height)
	drawSignature(pad, settings, w, h)
	drawUnderline(pad, settings, w, h)

	// Erase a stray mark, undo the erase, then redo it.
	settings.SetColor(signpad.PresetColors[2])
	stroke(pad, []signpad.Point{{X: w * 0.9, Y: h * 0.15}, {X: w * 0.95, Y: h * 0.2}})
	settings.SetErasing(true)
	settings.SetWidth(20)
	stroke(pad, []signpad.Point{{X: w * 0.88, Y: h * 0.13}, {X: w * 0.97, Y: h * 0.22}})
	settings.SetErasing(false)
	must(pad.Undo(ctx))
	must(pad.Redo(ctx))

	a, err := pad.Save(ctx)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Signature saved to %s (%dx%d, %d bytes)\n", *output, *width, *height, len(a.PNG))
}

// drawSignature writes a looping solid scrawl across the upper half.
func drawSignature(pad *signpad.Pad, s *signpad.Settings, w, h float64) {
	s.SetColor(signpad.PresetColors[1])
	s.SetStyle(signpad.StyleSolid)
	s.SetWidth(4)

	var pts []signpad.Point
	for i := 0; i <= 120; i++ {
		t := float64(i) / 120
		x := w*0.1 + t*w*0.7
		y := h*0.4 - math.Sin(t*math.Pi*6)*h*0.15*(1-t*0.5)
		pts = append(pts, signpad.Point{X: x, Y: y})
	}
	stroke(pad, pts)

	// Scatter a flourish over the end.
	s.SetStyle(signpad.StyleScatter)
	s.SetColor(signpad.PresetColors[4])
	stroke(pad, []signpad.Point{{X: w * 0.82, Y: h * 0.35}, {X: w * 0.84, Y: h * 0.3}, {X: w * 0.86, Y: h * 0.33}})
}

// drawUnderline draws one line in each non-solid line style.
func drawUnderline(pad *signpad.Pad, s *signpad.Settings, w, h float64) {
	s.SetColor(signpad.PresetColors[0])
	s.SetWidth(3)
	for i, st := range []signpad.Style{signpad.StyleDashed, signpad.StyleDotted} {
		s.SetStyle(st)
		y := h*0.7 + float64(i)*h*0.1
		stroke(pad, []signpad.Point{{X: w * 0.1, Y: y}, {X: w * 0.5, Y: y}, {X: w * 0.8, Y: y + 4}})
	}
	s.SetStyle(signpad.StyleSolid)
}

// stroke replays pts as a mouse gesture and waits for it to render.
// Settings are read when events are applied, so each stroke must be
// flushed before the caller changes them.
func stroke(pad *signpad.Pad, pts []signpad.Point) {
	for i, pt := range pts {
		kind := signpad.PointerMove
		if i == 0 {
			kind = signpad.PointerDown
		}
		must(pad.HandleEvent(signpad.MouseEvent(kind, pt.X, pt.Y)))
	}
	last := pts[len(pts)-1]
	must(pad.HandleEvent(signpad.MouseEvent(signpad.PointerUp, last.X, last.Y)))
	must(pad.Flush(context.Background()))
}

// both downloads to every downloader, stopping at the first failure.
type both []signpad.Downloader

func (b both) Download(ctx context.Context, a signpad.Artifact) error {
	for _, d := range b {
		if err := d.Download(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func must(err error) {
	if err != nil {
		log.Fatalf("signdemo: %v", err)
	}
}
