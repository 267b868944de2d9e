package trace

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedTrace is returned when a document is valid JSON but is
// neither an array of states nor an object carrying a "states" or
// "triangles" sequence.
var ErrUnrecognizedTrace = errors.New("unrecognized trace format: expected a list, or an object with a 'states' or 'triangles' key")

// FormatError reports a document that could not be decoded as a trace.
type FormatError struct {
	Path string // Source file; empty when parsing from memory.
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid trace: %v", e.Err)
	}
	return fmt.Sprintf("invalid trace %q: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ValidationError reports a single state that cannot be drawn.
type ValidationError struct {
	Index  int    // Position in document order.
	Step   int    // Step label (equals Index when the label was absent).
	Reason string // Human-readable reason for the failure.
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("state %d (step %d): %s", e.Index, e.Step, e.Reason)
}
