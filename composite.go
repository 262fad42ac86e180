package signpad

import "github.com/gogpu/signpad/internal/blend"

// CompositeMode is the pixel-combine rule applied while rendering a
// stroke segment.
type CompositeMode uint8

const (
	// CompositeDraw blends brush ink over existing content (source-over).
	CompositeDraw CompositeMode = iota

	// CompositeErase removes existing alpha wherever ink would land
	// (destination-out). The brush color is ignored.
	CompositeErase
)

func (m CompositeMode) String() string {
	if m == CompositeErase {
		return "erase"
	}
	return "draw"
}

// CompositeFor selects the composite mode for a brush configuration.
// The engine calls it for every segment, so toggling the eraser takes
// effect no later than the next stroke.
func CompositeFor(cfg BrushConfig) CompositeMode {
	if cfg.Erasing {
		return CompositeErase
	}
	return CompositeDraw
}

// EffectiveStyle returns the style actually rendered for cfg.
// The eraser always behaves as a solid stroke of the configured width.
func EffectiveStyle(cfg BrushConfig) Style {
	if cfg.Erasing {
		return StyleSolid
	}
	return cfg.Style
}

// blendMode maps a composite mode to the internal blend operator.
func (m CompositeMode) blendMode() blend.Mode {
	if m == CompositeErase {
		return blend.DestinationOut
	}
	return blend.SourceOver
}
