package raster

import (
	"image"

	"github.com/gogpu/signpad/internal/stroke"
)

// clipPolygon clips a closed polygon to r with Sutherland-Hodgman.
// The rasterizer's accumulation buffer has no room for coordinates
// outside its bounds, so every vertex handed to it must lie within r.
func clipPolygon(pts []stroke.Vec2, r image.Rectangle) []stroke.Vec2 {
	minX, minY := float64(r.Min.X), float64(r.Min.Y)
	maxX, maxY := float64(r.Max.X), float64(r.Max.Y)

	in := append([]stroke.Vec2(nil), pts...)
	var out []stroke.Vec2
	planes := [4]struct {
		inside func(stroke.Vec2) bool
		cross  func(a, b stroke.Vec2) stroke.Vec2
	}{
		{
			func(p stroke.Vec2) bool { return p.X >= minX },
			func(a, b stroke.Vec2) stroke.Vec2 { return a.Lerp(b, (minX-a.X)/(b.X-a.X)) },
		},
		{
			func(p stroke.Vec2) bool { return p.X <= maxX },
			func(a, b stroke.Vec2) stroke.Vec2 { return a.Lerp(b, (maxX-a.X)/(b.X-a.X)) },
		},
		{
			func(p stroke.Vec2) bool { return p.Y >= minY },
			func(a, b stroke.Vec2) stroke.Vec2 { return a.Lerp(b, (minY-a.Y)/(b.Y-a.Y)) },
		},
		{
			func(p stroke.Vec2) bool { return p.Y <= maxY },
			func(a, b stroke.Vec2) stroke.Vec2 { return a.Lerp(b, (maxY-a.Y)/(b.Y-a.Y)) },
		},
	}

	for _, pl := range planes {
		if len(in) == 0 {
			break
		}
		out = out[:0]
		prev := in[len(in)-1]
		prevIn := pl.inside(prev)
		for _, cur := range in {
			curIn := pl.inside(cur)
			switch {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn:
				out = append(out, pl.cross(prev, cur), cur)
			case prevIn:
				out = append(out, pl.cross(prev, cur))
			}
			prev, prevIn = cur, curIn
		}
		in, out = out, in
	}
	return clampTo(in, minX, minY, maxX, maxY)
}

// clampTo pins vertices left just outside the bounds by rounding error.
func clampTo(pts []stroke.Vec2, minX, minY, maxX, maxY float64) []stroke.Vec2 {
	for i, p := range pts {
		pts[i] = stroke.Vec2{
			X: min(max(p.X, minX), maxX),
			Y: min(max(p.Y, minY), maxY),
		}
	}
	return pts
}
