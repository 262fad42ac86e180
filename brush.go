package signpad

import (
	"fmt"
	"strings"
)

// Style selects how the Brush Engine turns sampled points into ink.
type Style uint8

const (
	// StyleSolid draws a continuous round-capped line.
	StyleSolid Style = iota

	// StyleDashed draws on/off segments of 3×width and 2×width.
	StyleDashed

	// StyleDotted draws 1 unit of ink every 2×width along the path.
	StyleDotted

	// StyleScatter stipples random 1×1 marks around every sampled point.
	StyleScatter
)

// Width limits accepted from the configuration panel.
const (
	MinWidth     = 1
	MaxWidth     = 50
	DefaultWidth = 5
)

// scatterDensity is the number of marks emitted per sampled point.
const scatterDensity = 15

var styleNames = [...]string{
	StyleSolid:   "solid",
	StyleDashed:  "dashed",
	StyleDotted:  "dotted",
	StyleScatter: "scatter",
}

// String returns the style identifier used by the configuration panel.
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", s)
}

// ParseStyle maps a configuration panel identifier to a Style.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			return Style(i), nil
		}
	}
	return StyleSolid, fmt.Errorf("signpad: unknown brush style %q", name)
}

// Styles lists every brush style in panel order.
func Styles() []Style {
	return []Style{StyleSolid, StyleDashed, StyleDotted, StyleScatter}
}

// BrushConfig is the brush state read from the configuration panel.
// A value is sampled at stroke start and again for every segment, so a
// change affects only ink drawn after it.
type BrushConfig struct {
	Color   RGB
	Width   int
	Style   Style
	Erasing bool
}

// DefaultBrush returns the brush a fresh pad starts with:
// black, 5 pixels wide, solid, not erasing.
func DefaultBrush() BrushConfig {
	return BrushConfig{
		Color: Black,
		Width: DefaultWidth,
		Style: StyleSolid,
	}
}

// normalized returns a copy with Width clamped to [MinWidth, MaxWidth].
func (b BrushConfig) normalized() BrushConfig {
	switch {
	case b.Width < MinWidth:
		b.Width = MinWidth
	case b.Width > MaxWidth:
		b.Width = MaxWidth
	}
	return b
}

// dashPattern returns the on/off lengths for line styles, or nil for a
// solid line. Erasing always strokes solid.
func (b BrushConfig) dashPattern() []float64 {
	w := float64(b.Width)
	switch EffectiveStyle(b) {
	case StyleDashed:
		return []float64{3 * w, 2 * w}
	case StyleDotted:
		return []float64{1, 2 * w}
	default:
		return nil
	}
}
