package signpad

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/signpad/internal/raster"
	"github.com/gogpu/signpad/internal/stroke"
)

// Engine renders strokes into a Surface. Each call mutates the surface
// in place; the engine never reads or writes history.
//
// Line styles draw a round-capped capsule per inked interval of each
// segment, so consecutive segments and dashes join smoothly. The dash
// phase restarts with every stroke and carries across its segments.
//
// Engine is not safe for concurrent use.
type Engine struct {
	surf   *Surface
	filler *raster.Filler
	dasher stroke.Dasher
	rng    *rand.Rand

	active bool
	last   Point

	intervals []stroke.Interval
	polys     [][]stroke.Vec2
}

// NewEngine returns an engine drawing into s. A nil rng seeds a fresh
// random source for the scatter brush.
func NewEngine(s *Surface, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		surf:   s,
		filler: raster.NewFiller(s.Bounds()),
		rng:    rng,
	}
}

// Active reports whether a stroke is in progress.
func (e *Engine) Active() bool {
	return e.active
}

// BeginStroke starts a stroke at pt. Line styles draw nothing until the
// first ExtendStroke; scatter stipples around pt immediately.
func (e *Engine) BeginStroke(pt Point, cfg BrushConfig) {
	cfg = cfg.normalized()
	e.active = true
	e.last = pt
	e.dasher.Reset()

	if EffectiveStyle(cfg) == StyleScatter {
		e.scatter(pt, cfg)
	}
}

// ExtendStroke continues the stroke to pt using cfg for this segment.
// It does nothing when no stroke is active.
func (e *Engine) ExtendStroke(pt Point, cfg BrushConfig) {
	if !e.active {
		return
	}
	cfg = cfg.normalized()
	if EffectiveStyle(cfg) == StyleScatter {
		e.scatter(pt, cfg)
	} else {
		e.segment(e.last, pt, cfg)
	}
	e.last = pt
}

// EndStroke finishes the current stroke. Only its pixels remain.
func (e *Engine) EndStroke() {
	e.active = false
	e.dasher.Reset()
}

// segment inks the line a→b, split by the dash pattern. Only the part
// that can reach the surface is split; the dash phase still advances by
// the full length.
func (e *Engine) segment(a, b Point, cfg BrushConfig) {
	length := a.Distance(b)
	r := float64(cfg.Width) / 2
	va, vb := stroke.Vec2(a), stroke.Vec2(b)

	var from, to float64
	bounds := e.filler.Clip()
	margin := r + 1
	lo := stroke.Vec2{X: float64(bounds.Min.X) - margin, Y: float64(bounds.Min.Y) - margin}
	hi := stroke.Vec2{X: float64(bounds.Max.X) + margin, Y: float64(bounds.Max.Y) + margin}
	if t0, t1, ok := stroke.ClipSegment(va, vb, lo, hi); ok {
		from, to = t0*length, t1*length
	}
	e.intervals = e.dasher.SplitWithin(e.intervals[:0], length, from, to, cfg.dashPattern())
	if len(e.intervals) == 0 {
		return
	}

	polys := e.polys[:0]
	for i, iv := range e.intervals {
		var buf []stroke.Vec2
		if i < len(e.polys) {
			buf = e.polys[i][:0]
		}
		from, to := va.Lerp(vb, iv.From/length), va.Lerp(vb, iv.To/length)
		polys = append(polys, stroke.Capsule(buf, from, to, r, stroke.DefaultTolerance))
	}
	e.polys = polys
	e.fill(polys, cfg)
}

// scatter stipples 1×1 marks at random angle and radius in [0, 2w)
// around pt.
func (e *Engine) scatter(pt Point, cfg BrushConfig) {
	polys := e.polys[:0]
	for i := range scatterDensity {
		angle := e.rng.Float64() * 2 * math.Pi
		radius := e.rng.Float64() * float64(cfg.Width) * 2
		sin, cos := math.Sincos(angle)
		at := stroke.Vec2{X: pt.X + cos*radius, Y: pt.Y + sin*radius}

		var buf []stroke.Vec2
		if i < len(e.polys) {
			buf = e.polys[i][:0]
		}
		polys = append(polys, stroke.Rect(buf, at, 1, 1))
	}
	e.polys = polys
	e.fill(polys, cfg)
}

func (e *Engine) fill(polys [][]stroke.Vec2, cfg BrushConfig) {
	mask, ok := e.filler.Fill(polys...)
	if !ok {
		return
	}
	e.surf.composite(mask, cfg.Color.NRGBA(), CompositeFor(cfg))
}
