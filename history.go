package signpad

import "slices"

// DefaultHistoryLimit is the number of past snapshots a Pad keeps by
// default. The oldest entries are evicted first.
const DefaultHistoryLimit = 100

// History is a linear undo/redo stack of surface snapshots.
//
// past runs oldest first and its last entry always mirrors the surface.
// future holds undone snapshots with the most recently undone last.
// History is not safe for concurrent use.
type History struct {
	past   []Snapshot
	future []Snapshot
	limit  int
}

// NewHistory returns a history whose only entry is initial. A limit of
// zero or less keeps every snapshot.
func NewHistory(initial Snapshot, limit int) *History {
	return &History{
		past:  []Snapshot{initial},
		limit: limit,
	}
}

// Commit pushes s as the new current state and discards the redo stack.
func (h *History) Commit(s Snapshot) {
	h.past = append(h.past, s)
	clear(h.future)
	h.future = h.future[:0]
	if h.limit > 0 && len(h.past) > h.limit {
		h.past = slices.Delete(h.past, 0, len(h.past)-h.limit)
	}
}

// Current returns the snapshot that mirrors the surface.
func (h *History) Current() Snapshot {
	return h.past[len(h.past)-1]
}

// CanUndo reports whether there is a state before the current one.
func (h *History) CanUndo() bool {
	return len(h.past) > 1
}

// CanRedo reports whether an undone state is available.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// UndoTarget returns the snapshot Undo would make current.
func (h *History) UndoTarget() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	return h.past[len(h.past)-2], true
}

// RedoTarget returns the snapshot Redo would make current.
func (h *History) RedoTarget() (Snapshot, bool) {
	if !h.CanRedo() {
		return Snapshot{}, false
	}
	return h.future[len(h.future)-1], true
}

// Undo moves the current snapshot onto the redo stack. It reports false
// and does nothing when only the initial state remains.
func (h *History) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	last := len(h.past) - 1
	h.future = append(h.future, h.past[last])
	h.past[last] = Snapshot{}
	h.past = h.past[:last]
	return true
}

// Redo moves the most recently undone snapshot back onto the past stack.
// It reports false and does nothing when the redo stack is empty.
func (h *History) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	last := len(h.future) - 1
	h.past = append(h.past, h.future[last])
	h.future[last] = Snapshot{}
	h.future = h.future[:last]
	return true
}

// PastLen returns the number of past snapshots, including the current one.
func (h *History) PastLen() int {
	return len(h.past)
}

// FutureLen returns the number of undone snapshots available to Redo.
func (h *History) FutureLen() int {
	return len(h.future)
}
