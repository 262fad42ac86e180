// Package raster fills stroke outlines into anti-aliased coverage masks.
//
// Filling is delegated to golang.org/x/image/vector, which accumulates
// signed area per pixel. All outlines in one Fill call are accumulated
// together and clamped, so overlapping outlines of the same winding
// render as their union.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/signpad/internal/stroke"
)

// Filler rasterizes outlines clipped to a fixed area. A Filler reuses its
// buffers between calls and is not safe for concurrent use.
type Filler struct {
	clip image.Rectangle
	z    *vector.Rasterizer
	buf  []uint8
}

// NewFiller returns a Filler that clips to clip.
func NewFiller(clip image.Rectangle) *Filler {
	return &Filler{
		clip: clip,
		z:    vector.NewRasterizer(0, 0),
	}
}

// Clip returns the clip rectangle.
func (f *Filler) Clip() image.Rectangle {
	return f.clip
}

// Fill rasterizes the closed polygons into a coverage mask covering their
// clipped bounding box. The returned mask's bounds are that box, in the
// same coordinates as the polygons. ok is false when nothing lands inside
// the clip. The mask aliases the Filler's buffer until the next call.
func (f *Filler) Fill(polys ...[]stroke.Vec2) (mask *image.Alpha, ok bool) {
	r := polygonBounds(polys).Intersect(f.clip)
	if r.Empty() {
		return nil, false
	}
	w, h := r.Dx(), r.Dy()

	f.z.Reset(w, h)
	f.z.DrawOp = draw.Src
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	for _, pts := range polys {
		if len(pts) < 3 {
			continue
		}
		if !polygonBounds([][]stroke.Vec2{pts}).In(r) {
			if pts = clipPolygon(pts, r); len(pts) < 3 {
				continue
			}
		}
		f.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
		for _, p := range pts[1:] {
			f.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		f.z.ClosePath()
	}

	if cap(f.buf) < w*h {
		f.buf = make([]uint8, w*h)
	}
	mask = &image.Alpha{
		Pix:    f.buf[:w*h],
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
	f.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = r
	return mask, true
}

// polygonBounds returns the smallest integer rectangle containing every
// polygon with at least three points.
func polygonBounds(polys [][]stroke.Vec2) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pts := range polys {
		if len(pts) < 3 {
			continue
		}
		for _, p := range pts {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}
