// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynepad

import (
	"fyne.io/fyne/v2"

	"github.com/gogpu/signpad"
)

// toPad maps a widget-local position to pad pixels. A widget that has
// not been laid out yet maps one to one.
func toPad(pos fyne.Position, size fyne.Size, width, height int) (x, y float64) {
	x, y = float64(pos.X), float64(pos.Y)
	if size.Width > 0 {
		x *= float64(width) / float64(size.Width)
	}
	if size.Height > 0 {
		y *= float64(height) / float64(size.Height)
	}
	return x, y
}

// touchEvent builds the single-finger touch event Fyne delivers. The
// finger is still down for start and move, and lifted otherwise.
func touchEvent(kind signpad.EventKind, x, y float64) signpad.PointerEvent {
	pt := []signpad.Point{{X: x, Y: y}}
	if kind == signpad.PointerDown || kind == signpad.PointerMove {
		return signpad.TouchEvent(kind, pt, pt)
	}
	return signpad.TouchEvent(kind, nil, pt)
}
