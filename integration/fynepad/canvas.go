// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynepad

import (
	"errors"
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/signpad"
)

// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
var ErrCanvasClosed = errors.New("fynepad: canvas is closed")

// Canvas is a Fyne widget that feeds pointer input to a pad and shows
// its surface composited over the current background color.
type Canvas struct {
	widget.BaseWidget

	pad    *signpad.Pad
	raster *canvas.Raster
	width  int
	height int

	mu     sync.Mutex
	frame  *image.NRGBA // latest surface copy from the worker
	last   fyne.Position
	moved  bool
	closed bool
}

// New creates a pad of width×height pixels wrapped in a widget.
// opts are passed to signpad.New; a change hook is appended so the
// widget sees every rendered frame.
func New(width, height int, opts ...signpad.Option) (*Canvas, error) {
	c := &Canvas{width: width, height: height}
	opts = append(opts, signpad.WithChangeHook(c.update))

	pad, err := signpad.New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	c.pad = pad
	c.frame = image.NewNRGBA(image.Rect(0, 0, width, height))
	c.raster = canvas.NewRaster(c.render)
	c.raster.SetMinSize(fyne.NewSize(float32(width), float32(height)))
	c.ExtendBaseWidget(c)
	return c, nil
}

// Pad returns the wrapped pad, for toolbar actions.
func (c *Canvas) Pad() *signpad.Pad {
	return c.pad
}

// CreateRenderer implements fyne.Widget.
func (c *Canvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

// Redraw repaints the widget from the latest frame, for example after
// the background color changed.
func (c *Canvas) Redraw() {
	fyne.Do(c.raster.Refresh)
}

// Close closes the pad. Close is idempotent.
func (c *Canvas) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()
	return c.pad.Close()
}

// update receives frames on the pad's worker goroutine.
func (c *Canvas) update(img *image.NRGBA) {
	c.mu.Lock()
	c.frame = img
	c.mu.Unlock()
	fyne.Do(c.raster.Refresh)
}

// render is the raster generator; it runs on the UI goroutine.
func (c *Canvas) render(w, h int) image.Image {
	c.mu.Lock()
	frame := c.frame
	c.mu.Unlock()
	return signpad.Flatten(frame, c.pad.Controls().Background())
}

func (c *Canvas) send(kind signpad.EventKind, ev signpad.PointerEvent) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}
	if err := c.pad.HandleEvent(ev); err != nil {
		signpad.Logger().Warn("fynepad: event dropped", "kind", kind, "error", err)
	}
}

// mouse forwards a mouse event, dropping moves that repeat the last
// position. Fyne reports a drag both as Dragged and as MouseMoved.
func (c *Canvas) mouse(kind signpad.EventKind, pos fyne.Position) {
	c.mu.Lock()
	if kind == signpad.PointerMove && c.moved && pos == c.last {
		c.mu.Unlock()
		return
	}
	c.last, c.moved = pos, kind == signpad.PointerMove
	c.mu.Unlock()

	x, y := toPad(pos, c.Size(), c.width, c.height)
	c.send(kind, signpad.MouseEvent(kind, x, y))
}

func (c *Canvas) touch(kind signpad.EventKind, pos fyne.Position) {
	x, y := toPad(pos, c.Size(), c.width, c.height)
	c.send(kind, touchEvent(kind, x, y))
}

// MouseDown implements desktop.Mouseable.
func (c *Canvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	c.mouse(signpad.PointerDown, ev.Position)
}

// MouseUp implements desktop.Mouseable.
func (c *Canvas) MouseUp(ev *desktop.MouseEvent) {
	c.mouse(signpad.PointerUp, ev.Position)
}

// MouseIn implements desktop.Hoverable.
func (c *Canvas) MouseIn(*desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable.
func (c *Canvas) MouseMoved(ev *desktop.MouseEvent) {
	c.mouse(signpad.PointerMove, ev.Position)
}

// MouseOut implements desktop.Hoverable.
func (c *Canvas) MouseOut() {
	c.send(signpad.PointerOut, signpad.PointerEvent{Kind: signpad.PointerOut})
}

// Dragged implements fyne.Draggable.
func (c *Canvas) Dragged(ev *fyne.DragEvent) {
	c.mouse(signpad.PointerMove, ev.Position)
}

// DragEnd implements fyne.Draggable.
func (c *Canvas) DragEnd() {
	c.send(signpad.PointerUp, signpad.PointerEvent{Kind: signpad.PointerUp})
}

// TouchDown implements mobile.Touchable.
func (c *Canvas) TouchDown(ev *mobile.TouchEvent) {
	c.touch(signpad.PointerDown, ev.Position)
}

// TouchUp implements mobile.Touchable.
func (c *Canvas) TouchUp(ev *mobile.TouchEvent) {
	c.touch(signpad.PointerUp, ev.Position)
}

// TouchCancel implements mobile.Touchable.
func (c *Canvas) TouchCancel(ev *mobile.TouchEvent) {
	c.touch(signpad.PointerUp, ev.Position)
}

var (
	_ fyne.Widget       = (*Canvas)(nil)
	_ desktop.Mouseable = (*Canvas)(nil)
	_ desktop.Hoverable = (*Canvas)(nil)
	_ fyne.Draggable    = (*Canvas)(nil)
	_ mobile.Touchable  = (*Canvas)(nil)
)
