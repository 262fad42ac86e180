// Package stroke turns pen segments into fill outlines and dash intervals.
//
// A stroke is drawn segment by segment as the pointer moves, so this
// package never sees a whole path. Instead it offers two small pieces:
//
//   - Capsule builds the outline of one round-capped segment. Adjacent
//     capsules overlap at their shared endpoint, which gives round joins
//     for free when the outlines are filled as a union.
//   - Dasher walks segment lengths against an on/off pattern and keeps
//     the pattern phase between calls, so dashes continue across
//     segments of the same stroke.
//
// Arcs are flattened to polylines. The number of chords follows the
// usual sagitta bound: a chord of angle θ on radius r deviates from the
// arc by r(1-cos(θ/2)), which is kept under the flattening tolerance.
package stroke
