package trace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode"
)

// wireState is the on-disk shape of a single sample. The step label is a
// pointer so a missing label can be told apart from an explicit zero and
// defaulted to the positional index.
type wireState struct {
	Step   *int      `json:"step"`
	Coords []float64 `json:"coords"`
}

// wireDocument is the on-disk object form. The sequences stay raw until the
// document shape is known, so a wrong shape reports a precise error instead
// of a generic decode failure.
type wireDocument struct {
	Engine    string          `json:"engine"`
	Version   string          `json:"version"`
	States    json.RawMessage `json:"states"`
	Triangles json.RawMessage `json:"triangles"`
}

// Load reads the file at path and parses it as a trace document.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	return parse(data, path)
}

// Parse decodes an in-memory trace document.
//
// The document may be an object with a "states" sequence, an object with a
// "triangles" sequence (each triangle is reduced to its centroid), or a bare
// array of states. Anything else fails with a FormatError wrapping
// ErrUnrecognizedTrace.
func Parse(data []byte) (*Trace, error) {
	return parse(data, "")
}

func parse(data []byte, path string) (*Trace, error) {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(trimmed) == 0 {
		return nil, &FormatError{Path: path, Err: errors.New("empty document")}
	}

	switch trimmed[0] {
	case '[':
		var raw []wireState
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, &FormatError{Path: path, Err: err}
		}
		states, err := normalize(raw)
		if err != nil {
			return nil, err
		}
		return &Trace{States: states}, nil

	case '{':
		var doc wireDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, &FormatError{Path: path, Err: err}
		}
		return fromDocument(doc, path)

	default:
		return nil, &FormatError{Path: path, Err: ErrUnrecognizedTrace}
	}
}

func fromDocument(doc wireDocument, path string) (*Trace, error) {
	switch {
	case doc.States != nil:
		var raw []wireState
		if err := json.Unmarshal(doc.States, &raw); err != nil {
			return nil, &FormatError{Path: path, Err: fmt.Errorf("'states' must be a sequence: %w", err)}
		}
		states, err := normalize(raw)
		if err != nil {
			return nil, err
		}
		return &Trace{Engine: doc.Engine, Version: doc.Version, States: states}, nil

	case doc.Triangles != nil:
		var raw []wireState
		if err := json.Unmarshal(doc.Triangles, &raw); err != nil {
			return nil, &FormatError{Path: path, Err: fmt.Errorf("'triangles' must be a sequence: %w", err)}
		}
		states, err := centroids(raw)
		if err != nil {
			return nil, err
		}
		return &Trace{Engine: doc.Engine, Version: doc.Version, States: states}, nil

	default:
		return nil, &FormatError{Path: path, Err: ErrUnrecognizedTrace}
	}
}

// normalize converts wire states into canonical states, defaulting missing
// step labels and rejecting samples too short to draw.
func normalize(raw []wireState) ([]State, error) {
	states := make([]State, 0, len(raw))
	for idx, ws := range raw {
		step := idx
		if ws.Step != nil {
			step = *ws.Step
		}
		if ws.Coords == nil {
			return nil, &ValidationError{Index: idx, Step: step, Reason: "missing 'coords'"}
		}
		if len(ws.Coords) < 2 {
			return nil, &ValidationError{Index: idx, Step: step, Reason: "'coords' must contain at least [x, y]"}
		}
		states = append(states, State{Step: step, Coords: ws.Coords})
	}
	return states, nil
}

// centroids reduces X-mode triangles to single states at their centroid, so
// the viewer plots one path regardless of the trace flavor.
func centroids(raw []wireState) ([]State, error) {
	states := make([]State, 0, len(raw))
	for idx, ws := range raw {
		step := idx
		if ws.Step != nil {
			step = *ws.Step
		}
		if ws.Coords == nil {
			return nil, &ValidationError{Index: idx, Step: step, Reason: "missing 'coords'"}
		}
		if len(ws.Coords) < 6 {
			return nil, &ValidationError{Index: idx, Step: step, Reason: "triangle 'coords' must contain at least 6 numbers"}
		}
		c := ws.Coords
		cx := (c[0] + c[2] + c[4]) / 3.0
		cy := (c[1] + c[3] + c[5]) / 3.0
		states = append(states, State{Step: step, Coords: []float64{cx, cy}})
	}
	return states, nil
}
