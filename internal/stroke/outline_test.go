package stroke

import (
	"math"
	"testing"
)

// signedArea returns the shoelace area of a closed polygon.
func signedArea(pts []Vec2) float64 {
	var sum float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func bounds(pts []Vec2) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return
}

func TestCapsule_AreaAndBounds(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		r    float64
	}{
		{"horizontal", Vec2{10, 10}, Vec2{30, 10}, 5},
		{"vertical", Vec2{10, 30}, Vec2{10, 10}, 2.5},
		{"diagonal", Vec2{0, 0}, Vec2{40, 30}, 25},
		{"disc", Vec2{7, 7}, Vec2{7, 7}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := Capsule(nil, tt.a, tt.b, tt.r, DefaultTolerance)
			l := tt.b.Sub(tt.a).Length()
			want := math.Pi*tt.r*tt.r + 2*tt.r*l
			got := math.Abs(signedArea(pts))
			// Flattening loses at most tolerance times the perimeter.
			perimeter := 2*math.Pi*tt.r + 2*l
			if got > want+1e-6 || want-got > DefaultTolerance*perimeter {
				t.Errorf("area = %v, want within %v below %v", got, DefaultTolerance*perimeter, want)
			}

			minX, minY, maxX, maxY := bounds(pts)
			wantMinX := math.Min(tt.a.X, tt.b.X) - tt.r
			wantMaxX := math.Max(tt.a.X, tt.b.X) + tt.r
			wantMinY := math.Min(tt.a.Y, tt.b.Y) - tt.r
			wantMaxY := math.Max(tt.a.Y, tt.b.Y) + tt.r
			const slack = 1e-9
			if minX < wantMinX-slack || maxX > wantMaxX+slack || minY < wantMinY-slack || maxY > wantMaxY+slack {
				t.Errorf("bounds = (%v,%v)-(%v,%v), want inside (%v,%v)-(%v,%v)",
					minX, minY, maxX, maxY, wantMinX, wantMinY, wantMaxX, wantMaxY)
			}
		})
	}
}

func TestCapsule_ConsistentWinding(t *testing.T) {
	fwd := signedArea(Capsule(nil, Vec2{0, 0}, Vec2{10, 0}, 2, DefaultTolerance))
	rev := signedArea(Capsule(nil, Vec2{10, 0}, Vec2{0, 0}, 2, DefaultTolerance))
	disc := signedArea(Capsule(nil, Vec2{0, 0}, Vec2{0, 0}, 2, DefaultTolerance))
	rect := signedArea(Rect(nil, Vec2{0, 0}, 1, 1))

	for name, a := range map[string]float64{"reverse": rev, "disc": disc, "rect": rect} {
		if math.Signbit(a) != math.Signbit(fwd) {
			t.Errorf("%s winding sign = %v, forward = %v", name, a, fwd)
		}
	}
}

func TestCapsule_ZeroRadius(t *testing.T) {
	if pts := Capsule(nil, Vec2{0, 0}, Vec2{1, 1}, 0, DefaultTolerance); len(pts) != 0 {
		t.Errorf("Capsule with r=0 returned %d points, want 0", len(pts))
	}
}

func TestArcSteps(t *testing.T) {
	small := arcSteps(1, math.Pi, DefaultTolerance)
	large := arcSteps(25, math.Pi, DefaultTolerance)
	if small < 2 {
		t.Errorf("arcSteps(r=1) = %d, want >= 2", small)
	}
	if large <= small {
		t.Errorf("arcSteps(r=25) = %d, want more than arcSteps(r=1) = %d", large, small)
	}
	if got := arcSteps(0.05, math.Pi, DefaultTolerance); got != 2 {
		t.Errorf("arcSteps below tolerance = %d, want 2", got)
	}
}
