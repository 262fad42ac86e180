package signpad

import "sync"

// Controls exposes the configuration panel's current values. A Pad reads
// Brush at every stroke start and segment, and Background at export.
type Controls interface {
	Brush() BrushConfig
	Background() RGB
}

// Settings is a Controls implementation that front-ends update directly.
// Settings is safe for concurrent use.
type Settings struct {
	mu    sync.RWMutex
	brush BrushConfig
	bg    RGB
}

// NewSettings returns settings holding DefaultBrush on a white background.
func NewSettings() *Settings {
	return &Settings{brush: DefaultBrush(), bg: White}
}

// Brush implements Controls.
func (s *Settings) Brush() BrushConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.brush
}

// Background implements Controls.
func (s *Settings) Background() RGB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bg
}

// SetBrush replaces the whole brush configuration. Width is clamped.
func (s *Settings) SetBrush(b BrushConfig) {
	s.update(func(cur *BrushConfig) { *cur = b })
}

// SetColor sets the ink color.
func (s *Settings) SetColor(c RGB) {
	s.update(func(b *BrushConfig) { b.Color = c })
}

// SetWidth sets the stroke width, clamped to [MinWidth, MaxWidth].
func (s *Settings) SetWidth(w int) {
	s.update(func(b *BrushConfig) { b.Width = w })
}

// SetStyle sets the brush style.
func (s *Settings) SetStyle(st Style) {
	s.update(func(b *BrushConfig) { b.Style = st })
}

// SetErasing toggles the eraser.
func (s *Settings) SetErasing(on bool) {
	s.update(func(b *BrushConfig) { b.Erasing = on })
}

// SetBackground sets the export background color.
func (s *Settings) SetBackground(c RGB) {
	s.mu.Lock()
	s.bg = c
	s.mu.Unlock()
}

func (s *Settings) update(fn func(*BrushConfig)) {
	s.mu.Lock()
	fn(&s.brush)
	s.brush = s.brush.normalized()
	s.mu.Unlock()
}
