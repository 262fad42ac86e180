// Command signpad is a desktop signature pad.
//
// Strokes are held in memory with full undo and redo. Save flattens the
// signature over the pad color, keeps it in the local store for Recover
// and writes it to the download directory.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/gogpu/signpad"
	"github.com/gogpu/signpad/export"
	"github.com/gogpu/signpad/integration/fynepad"
	"github.com/gogpu/signpad/storage"
)

func main() {
	var (
		width    = flag.Int("width", 600, "pad width in pixels")
		height   = flag.Int("height", 300, "pad height in pixels")
		storeDir = flag.String("store", "", "directory for the saved signature (default: user config dir)")
		outDir   = flag.String("out", ".", "directory downloads are written to")
		pdf      = flag.Bool("pdf", false, "download as PDF instead of PNG")
		verbose  = flag.Bool("v", false, "log pad activity to stderr")
	)
	flag.Parse()

	if *verbose {
		signpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *storeDir == "" {
		dir, err := storage.DefaultDir()
		if err != nil {
			log.Fatalf("Failed to locate store: %v", err)
		}
		*storeDir = dir
	}

	var dl signpad.Downloader = export.Dir{Path: *outDir}
	if *pdf {
		dl = export.PDF{Path: *outDir}
	}

	a := app.NewWithID("io.gogpu.signpad")
	w := a.NewWindow("Signature Pad")

	status := newStatusBar()
	pad, err := fynepad.New(*width, *height,
		signpad.WithStore(storage.NewDir(*storeDir)),
		signpad.WithDownloader(dl),
		signpad.WithNotifier(status),
	)
	if err != nil {
		log.Fatalf("Failed to create pad: %v", err)
	}
	defer pad.Close()

	log.Printf("Saved signatures: %s, downloads: %s\n", *storeDir, absPath(*outDir))

	content := container.NewBorder(newToolbar(w, pad), status.label, nil, nil, pad)
	w.SetContent(content)
	w.Resize(fyne.NewSize(float32(*width)+40, float32(*height)+160))
	w.ShowAndRun()
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
