package stroke

import "math"

// epsilon absorbs floating-point residue when a dash boundary falls on a
// segment boundary.
const epsilon = 1e-9

// Interval is a sub-range [From, To] of a segment, measured as distance
// from the segment start.
type Interval struct {
	From, To float64
}

// PatternLength returns the length of one full dash cycle. Odd-length
// patterns are repeated once so on and off alternate. A pattern with no
// positive length returns 0 and strokes solid.
func PatternLength(pattern []float64) float64 {
	var sum float64
	for _, v := range pattern {
		if v > 0 {
			sum += v
		}
	}
	if len(pattern)%2 == 1 {
		sum *= 2
	}
	return sum
}

// Dasher splits consecutive segments of one stroke into inked intervals.
// The zero value starts at the beginning of the pattern.
type Dasher struct {
	phase float64
}

// Reset rewinds the pattern for a new stroke.
func (d *Dasher) Reset() {
	d.phase = 0
}

// Phase returns the distance already consumed into the current cycle.
func (d *Dasher) Phase() float64 {
	return d.phase
}

// Split appends to dst the inked intervals of a segment of the given
// length and advances the phase past it. A nil or empty pattern inks the
// whole segment. The pattern may change between calls; the carried phase
// is then reduced modulo the new cycle.
func (d *Dasher) Split(dst []Interval, length float64, pattern []float64) []Interval {
	return d.SplitWithin(dst, length, 0, length, pattern)
}

// SplitWithin is like Split but only appends the parts of intervals that
// fall in [from, to]. The phase still advances by the whole length, so a
// segment can be clipped without shifting later dashes.
func (d *Dasher) SplitWithin(dst []Interval, length, from, to float64, pattern []float64) []Interval {
	if length <= 0 {
		return dst
	}
	from, to = math.Max(from, 0), math.Min(to, length)
	cycle := PatternLength(pattern)
	if cycle <= 0 {
		if to-from > epsilon {
			dst = append(dst, Interval{From: from, To: to})
		}
		return dst
	}
	if to-from > epsilon {
		dst = d.walk(dst, from, to, cycle, pattern)
	}
	d.phase = math.Mod(d.phase+length, cycle)
	return dst
}

// walk emits the inked intervals between from and to, starting in the
// dash the carried phase plus from falls in.
func (d *Dasher) walk(dst []Interval, from, to, cycle float64, pattern []float64) []Interval {
	n := len(pattern)
	elem := func(i int) float64 { return math.Max(pattern[i%n], 0) }

	phase := math.Mod(d.phase+from, cycle)
	idx := 0
	for phase >= elem(idx) {
		phase -= elem(idx)
		idx++
	}
	remaining := elem(idx) - phase

	pos := from
	for to-pos > epsilon {
		step := math.Min(remaining, to-pos)
		if idx%2 == 0 && step > 0 {
			dst = append(dst, Interval{From: pos, To: pos + step})
		}
		pos += step
		remaining -= step
		if remaining <= epsilon {
			idx++
			remaining = elem(idx)
		}
	}
	return dst
}
