// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fynepad hosts a signpad.Pad inside a Fyne window.
//
// The data flow is:
//
//	fyne pointer events -> signpad.PointerEvent -> Pad (worker) -> frame -> canvas.Raster
//
// # Usage
//
//	c, err := fynepad.New(600, 300, signpad.WithNotifier(n))
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//	w.SetContent(c)
//
//	undo := widget.NewButton("Undo", func() { _ = c.Pad().Undo(ctx) })
//
// The widget scales pointer positions from its on-screen size to the
// pad's pixel size, so the pad can be laid out larger or smaller than
// its surface.
//
// # Thread Safety
//
// Pointer callbacks arrive on the Fyne event goroutine and only enqueue
// work. Frames produced by the pad's worker are handed back to the UI
// with fyne.Do.
package fynepad
