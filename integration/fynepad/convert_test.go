// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynepad

import (
	"testing"

	"fyne.io/fyne/v2"

	"github.com/gogpu/signpad"
)

func TestToPad(t *testing.T) {
	tests := []struct {
		name         string
		pos          fyne.Position
		size         fyne.Size
		wantX, wantY float64
	}{
		{"unsized widget", fyne.NewPos(10, 20), fyne.Size{}, 10, 20},
		{"same size", fyne.NewPos(10, 20), fyne.NewSize(200, 100), 10, 20},
		{"widget twice as large", fyne.NewPos(50, 30), fyne.NewSize(400, 200), 25, 15},
		{"widget half as large", fyne.NewPos(50, 30), fyne.NewSize(100, 50), 100, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := toPad(tt.pos, tt.size, 200, 100)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("toPad(%v, %v) = (%v, %v), want (%v, %v)", tt.pos, tt.size, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTouchEvent(t *testing.T) {
	for _, kind := range []signpad.EventKind{signpad.PointerDown, signpad.PointerMove, signpad.PointerUp} {
		t.Run(kind.String(), func(t *testing.T) {
			ev := touchEvent(kind, 3, 4)
			if ev.Source != signpad.SourceTouch {
				t.Fatalf("source = %v, want touch", ev.Source)
			}
			pt, ok := signpad.Sample(ev, signpad.Point{})
			if !ok || pt != (signpad.Point{X: 3, Y: 4}) {
				t.Errorf("Sample = %v, %v; want (3,4), true", pt, ok)
			}
			lifted := kind == signpad.PointerUp
			if lifted != (len(ev.Touches) == 0) {
				t.Errorf("touches = %v for %v", ev.Touches, kind)
			}
		})
	}
}
