package signpad

// EventKind identifies a pointer event in the drawing state machine.
type EventKind uint8

const (
	// PointerDown is a mouse press or touch start.
	PointerDown EventKind = iota
	// PointerMove is a mouse or touch move.
	PointerMove
	// PointerUp is a mouse release, touch end or touch cancel.
	PointerUp
	// PointerOut is the pointer leaving the surface.
	PointerOut
)

var eventKindNames = [...]string{
	PointerDown: "down",
	PointerMove: "move",
	PointerUp:   "up",
	PointerOut:  "out",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Source is the input device that produced an event.
type Source uint8

const (
	SourceMouse Source = iota
	SourceTouch
)

// PointerEvent is a raw input event in client (window) coordinates.
type PointerEvent struct {
	Kind   EventKind
	Source Source

	// X and Y locate a mouse event.
	X, Y float64

	// Touches lists the touch points still on the surface, and Changed
	// the ones that triggered this event. Both are used only for
	// SourceTouch.
	Touches []Point
	Changed []Point
}

// MouseEvent builds a mouse PointerEvent at client position (x, y).
func MouseEvent(kind EventKind, x, y float64) PointerEvent {
	return PointerEvent{Kind: kind, Source: SourceMouse, X: x, Y: y}
}

// TouchEvent builds a touch PointerEvent.
func TouchEvent(kind EventKind, touches, changed []Point) PointerEvent {
	return PointerEvent{Kind: kind, Source: SourceTouch, Touches: touches, Changed: changed}
}

// Sample converts ev into surface-local coordinates given the surface's
// top-left corner in client coordinates. Touch events use the first
// active touch while drawing and the first changed touch when the gesture
// ends, falling back to the other list when the preferred one is empty.
// It reports false when the event carries no position.
func Sample(ev PointerEvent, origin Point) (Point, bool) {
	if ev.Source != SourceTouch {
		return Point{X: ev.X, Y: ev.Y}.Sub(origin), true
	}

	first, second := ev.Touches, ev.Changed
	if ev.Kind == PointerUp || ev.Kind == PointerOut {
		first, second = second, first
	}
	switch {
	case len(first) > 0:
		return first[0].Sub(origin), true
	case len(second) > 0:
		return second[0].Sub(origin), true
	}
	return Point{}, false
}
