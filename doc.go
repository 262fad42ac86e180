// Package signpad is a stroke rendering and history engine for a
// signature pad.
//
// # Overview
//
// A Pad owns a transparent raster Surface, renders pointer input into it
// with one of four brush styles, keeps a linear undo/redo history of full
// surface snapshots, and exports the drawing flattened over a background
// color for download and persistence.
//
// # Quick Start
//
//	import "github.com/gogpu/signpad"
//
//	pad, err := signpad.New(800, 300)
//	if err != nil {
//	    return err
//	}
//	defer pad.Close()
//
//	pad.HandleEvent(signpad.MouseEvent(signpad.PointerDown, 10, 10))
//	pad.HandleEvent(signpad.MouseEvent(signpad.PointerMove, 200, 80))
//	pad.HandleEvent(signpad.MouseEvent(signpad.PointerUp, 200, 80))
//
//	artifact, err := pad.Save(ctx)
//
// # Brushes
//
// Brush settings are read from a Controls implementation at the start of
// every stroke and again for every segment:
//   - solid: round-capped connected line
//   - dashed: 3×width on, 2×width off
//   - dotted: 1 on, 2×width off
//   - scatter: 15 random 1×1 marks within 2×width of each sampled point
//
// The eraser removes alpha (destination-out) and always strokes solid.
//
// # Concurrency
//
// Each Pad runs its actions on a single worker in issue order. Pointer
// events are queued without waiting; Undo, Redo, Clear, Recover, Save and
// the accessors wait for their turn and honor context cancellation until
// they start.
//
// The Start variants (StartUndo, StartSave and so on) queue the action
// and return a channel instead of waiting, for callers such as UI event
// handlers that must not block but need click order preserved.
//
// # Coordinate System
//
// Surface coordinates put the origin at the top-left corner, X to the
// right and Y down. Pointer events arrive in client coordinates and are
// converted with the origin set by Pad.SetOrigin.
package signpad
