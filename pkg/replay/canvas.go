// Package replay drives a drawing cursor through a recorded state sequence.
//
// The package owns the replay semantics only: which pen movements happen, in
// which order, with which color. Actual rasterization is behind the Canvas
// port, so the same replay runs against a GPU window, an offscreen image, a
// terminal grid, or the in-memory Recorder used by tests.
package replay

import "image/color"

// Canvas is the drawing surface driven by a Replayer. Implementations own
// the cursor position and pen state; the Replayer only issues commands.
type Canvas interface {
	// MoveTo repositions the cursor without tracing (pen up).
	MoveTo(x, y float64)

	// LineTo traces a segment from the current cursor position to (x, y)
	// and leaves the cursor there (pen down).
	LineTo(x, y float64)

	// Dot stamps a filled marker of the given radius at (x, y).
	Dot(x, y, radius float64)

	// SetPenColor changes the color used by subsequent LineTo and Dot
	// calls.
	SetPenColor(c color.Color)
}
