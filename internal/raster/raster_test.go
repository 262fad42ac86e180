package raster

import (
	"image"
	"testing"

	"github.com/gogpu/signpad/internal/stroke"
)

func TestFiller_Rect(t *testing.T) {
	f := NewFiller(image.Rect(0, 0, 10, 10))
	mask, ok := f.Fill(stroke.Rect(nil, stroke.Vec2{X: 2, Y: 2}, 4, 4))
	if !ok {
		t.Fatal("Fill returned ok=false for an inside rectangle")
	}
	if got, want := mask.Bounds(), image.Rect(2, 2, 6, 6); got != want {
		t.Fatalf("mask bounds = %v, want %v", got, want)
	}
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			if a := mask.AlphaAt(x, y).A; a != 0xff {
				t.Errorf("coverage at (%d,%d) = %d, want 255", x, y, a)
			}
		}
	}
}

func TestFiller_FractionalRectIsAntialiased(t *testing.T) {
	f := NewFiller(image.Rect(0, 0, 10, 10))
	mask, ok := f.Fill(stroke.Rect(nil, stroke.Vec2{X: 3.5, Y: 3}, 1, 1))
	if !ok {
		t.Fatal("Fill returned ok=false")
	}
	a, b := mask.AlphaAt(3, 3).A, mask.AlphaAt(4, 3).A
	if a < 120 || a > 135 || b < 120 || b > 135 {
		t.Errorf("half-pixel coverage = %d, %d, want about 128 each", a, b)
	}
}

func TestFiller_CapsuleShape(t *testing.T) {
	f := NewFiller(image.Rect(0, 0, 40, 40))
	pts := stroke.Capsule(nil, stroke.Vec2{X: 10, Y: 20}, stroke.Vec2{X: 30, Y: 20}, 5, stroke.DefaultTolerance)
	mask, ok := f.Fill(pts)
	if !ok {
		t.Fatal("Fill returned ok=false")
	}
	tests := []struct {
		name string
		x, y int
		want func(uint8) bool
	}{
		{"on the axis", 20, 20, func(a uint8) bool { return a == 0xff }},
		{"inside the start cap", 7, 20, func(a uint8) bool { return a == 0xff }},
		{"bounding box corner", 5, 15, func(a uint8) bool { return a == 0 }},
		{"beyond the end cap", 36, 20, func(a uint8) bool { return a == 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a uint8
			if (image.Point{X: tt.x, Y: tt.y}).In(mask.Bounds()) {
				a = mask.AlphaAt(tt.x, tt.y).A
			}
			if !tt.want(a) {
				t.Errorf("coverage at (%d,%d) = %d", tt.x, tt.y, a)
			}
		})
	}
}

func TestFiller_ClipsToBounds(t *testing.T) {
	f := NewFiller(image.Rect(0, 0, 10, 10))
	mask, ok := f.Fill(stroke.Rect(nil, stroke.Vec2{X: -5, Y: 7}, 20, 20))
	if !ok {
		t.Fatal("Fill returned ok=false for a partly visible rectangle")
	}
	if got, want := mask.Bounds(), image.Rect(0, 7, 10, 10); got != want {
		t.Fatalf("mask bounds = %v, want %v", got, want)
	}
	for y := 7; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if a := mask.AlphaAt(x, y).A; a != 0xff {
				t.Fatalf("coverage at (%d,%d) = %d, want 255", x, y, a)
			}
		}
	}
}

func TestFiller_OutsideClip(t *testing.T) {
	f := NewFiller(image.Rect(0, 0, 10, 10))
	if _, ok := f.Fill(stroke.Rect(nil, stroke.Vec2{X: 20, Y: 20}, 3, 3)); ok {
		t.Error("Fill returned ok=true for a rectangle outside the clip")
	}
	if _, ok := f.Fill(); ok {
		t.Error("Fill returned ok=true for no polygons")
	}
}

func TestFiller_OverlapIsUnion(t *testing.T) {
	f := NewFiller(image.Rect(0, 0, 10, 10))
	r := stroke.Rect(nil, stroke.Vec2{X: 1, Y: 1}, 4, 4)
	mask, ok := f.Fill(r, r)
	if !ok {
		t.Fatal("Fill returned ok=false")
	}
	if a := mask.AlphaAt(2, 2).A; a != 0xff {
		t.Errorf("overlapping coverage = %d, want 255", a)
	}
}

func TestFiller_ReusesBuffer(t *testing.T) {
	f := NewFiller(image.Rect(0, 0, 20, 20))
	big, _ := f.Fill(stroke.Rect(nil, stroke.Vec2{}, 16, 16))
	bigCap := cap(big.Pix)

	small, ok := f.Fill(stroke.Rect(nil, stroke.Vec2{X: 15, Y: 15}, 2, 2))
	if !ok {
		t.Fatal("Fill returned ok=false")
	}
	if cap(small.Pix) != bigCap {
		t.Errorf("buffer was reallocated: cap %d, want %d", cap(small.Pix), bigCap)
	}
	// Stale coverage from the first fill must not leak into the second.
	for i, a := range small.Pix {
		if a != 0xff {
			t.Errorf("small.Pix[%d] = %d, want 255", i, a)
		}
	}
}

func TestClipPolygon(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	pts := clipPolygon(stroke.Rect(nil, stroke.Vec2{X: -5, Y: -5}, 10, 10), r)
	for _, p := range pts {
		if p.X < 0 || p.X > 10 || p.Y < 0 || p.Y > 10 {
			t.Errorf("vertex %v outside %v", p, r)
		}
	}
	if len(pts) < 4 {
		t.Errorf("clipped polygon has %d vertices, want at least 4", len(pts))
	}
	if got := clipPolygon(stroke.Rect(nil, stroke.Vec2{X: 20, Y: 20}, 1, 1), r); len(got) != 0 {
		t.Errorf("fully outside polygon clipped to %v, want empty", got)
	}
}
