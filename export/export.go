// Package export delivers saved signatures to the local file system.
//
// Both downloaders satisfy signpad.Downloader and can be handed to a pad
// with signpad.WithDownloader.
package export

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/signpad"
	"github.com/gogpu/signpad/internal/atomicfile"
)

// Dir writes each artifact's PNG into a directory under the artifact's
// name, replacing any earlier file of the same name.
type Dir struct {
	Path string
}

// Download implements signpad.Downloader.
func (d Dir) Download(ctx context.Context, a signpad.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := target(d.Path, a.Name, ".png")
	if err != nil {
		return err
	}
	if err := atomicfile.Write(name, a.PNG, 0o644); err != nil {
		return err
	}
	signpad.Logger().Debug("export: png written", "path", name, "bytes", len(a.PNG))
	return nil
}

// target joins dir and the base name of name, forcing ext.
func target(dir, name, ext string) (string, error) {
	base := filepath.Base(name)
	if base == "." || base == ".." || base == string(filepath.Separator) || base == "" {
		return "", fmt.Errorf("export: invalid artifact name %q", name)
	}
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ext
	return filepath.Join(dir, base), nil
}

// Ensure downloaders satisfy signpad.Downloader at compile time.
var (
	_ signpad.Downloader = Dir{}
	_ signpad.Downloader = PDF{}
)
