package stroke

import "math"

// DefaultTolerance is the maximum distance, in pixels, between a
// flattened arc and the true circle.
const DefaultTolerance = 0.1

// degenerate is the segment length below which a capsule collapses to a
// disc around its start point.
const degenerate = 1e-9

// Capsule appends the closed outline of the segment a→b stroked with
// round caps of radius r. A zero-length segment yields a disc.
// The outline winds the same way for every input, so several capsules
// can be filled together under a non-zero rule.
func Capsule(dst []Vec2, a, b Vec2, r, tolerance float64) []Vec2 {
	if r <= 0 {
		return dst
	}
	d := b.Sub(a)
	l := d.Length()
	if l < degenerate {
		return arc(dst, a, Vec2{X: 1}, r, -2*math.Pi, tolerance)
	}
	n := d.Scale(1 / l).Perp()

	// a+n → b+n, half turn around b to b-n, then a-n and back around a.
	dst = append(dst, a.Add(n.Scale(r)))
	dst = arc(dst, b, n, r, -math.Pi, tolerance)
	dst = arc(dst, a, n.Scale(-1), r, -math.Pi, tolerance)
	return dst
}

// Rect appends the closed outline of an axis-aligned rectangle with top
// left corner p, wound like Capsule.
func Rect(dst []Vec2, p Vec2, w, h float64) []Vec2 {
	return append(dst,
		p,
		Vec2{X: p.X, Y: p.Y + h},
		Vec2{X: p.X + w, Y: p.Y + h},
		Vec2{X: p.X + w, Y: p.Y},
	)
}

// arc appends points on the circle of radius r around c, starting at
// c+start*r and sweeping by the given angle. start must be a unit vector.
func arc(dst []Vec2, c, start Vec2, r, sweep, tolerance float64) []Vec2 {
	n := arcSteps(r, math.Abs(sweep), tolerance)
	step := sweep / float64(n)
	sinS, cosS := math.Sincos(step)

	u := start
	for i := 0; i <= n; i++ {
		dst = append(dst, c.Add(u.Scale(r)))
		u = Vec2{X: u.X*cosS - u.Y*sinS, Y: u.X*sinS + u.Y*cosS}
	}
	return dst
}

// arcSteps returns the number of chords needed to keep a flattened arc
// within tolerance of the circle.
func arcSteps(r, sweep, tolerance float64) int {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if r <= tolerance {
		return max(2, int(math.Ceil(sweep/(math.Pi/2))))
	}
	theta := 2 * math.Acos(1-tolerance/r)
	return max(2, int(math.Ceil(sweep/theta)))
}
