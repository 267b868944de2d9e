// Package trace loads EuMech trace documents and normalizes them into an
// ordered sequence of drawable states.
//
// A trace file is JSON in one of three shapes: an object with a "states"
// sequence, an object with a "triangles" sequence (X-mode spiral traces,
// reduced to centroids at load time), or a bare array of states. All three
// resolve to the same canonical representation, so consumers never see the
// shape the document arrived in.
package trace

// State is one recorded sample from the engine.
//
// Coords always has at least two entries after loading: index 0 is x and
// index 1 is y. Any further entries are opaque payload carried along for
// styling purposes.
type State struct {
	// Step is the engine's ordering label. It is informational only:
	// drawing follows document order, never Step order. When a document
	// omits the label it defaults to the state's position in the sequence.
	Step int

	// Coords is the recorded coordinate vector.
	Coords []float64
}

// X returns the first coordinate.
func (s State) X() float64 { return s.Coords[0] }

// Y returns the second coordinate.
func (s State) Y() float64 { return s.Coords[1] }

// Trace is a normalized trace document. It is read-only after loading.
type Trace struct {
	// Engine and Version identify the producer. They are informational
	// and never validated against a known set.
	Engine  string
	Version string

	// States holds the samples in document order. It may be empty: an
	// empty trace is valid and simply draws nothing.
	States []State
}
