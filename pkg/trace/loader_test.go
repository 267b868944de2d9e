package trace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse_ObjectForm(t *testing.T) {
	doc := `{
		"engine": "eumech",
		"version": "1.0.0",
		"states": [
			{"step": 0, "coords": [0.0, 0.0]},
			{"step": 1, "coords": [1.0, 2.0, 3.0]}
		]
	}`

	tr, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if tr.Engine != "eumech" || tr.Version != "1.0.0" {
		t.Errorf("metadata = %q/%q, want eumech/1.0.0", tr.Engine, tr.Version)
	}
	if len(tr.States) != 2 {
		t.Fatalf("len(States) = %d, want 2", len(tr.States))
	}
	if got := tr.States[1].Coords; len(got) != 3 {
		t.Errorf("extra coord entries must be kept, got %v", got)
	}
}

func TestParse_BareArrayEqualsObjectForm(t *testing.T) {
	asArray := `[{"step": 0, "coords": [1, 1]}, {"step": 1, "coords": [2, 3]}]`
	asObject := `{"states": [{"step": 0, "coords": [1, 1]}, {"step": 1, "coords": [2, 3]}]}`

	a, err := Parse([]byte(asArray))
	if err != nil {
		t.Fatalf("Parse(array) error = %v", err)
	}
	b, err := Parse([]byte(asObject))
	if err != nil {
		t.Fatalf("Parse(object) error = %v", err)
	}

	if len(a.States) != len(b.States) {
		t.Fatalf("state counts differ: %d vs %d", len(a.States), len(b.States))
	}
	for i := range a.States {
		if a.States[i].X() != b.States[i].X() || a.States[i].Y() != b.States[i].Y() {
			t.Errorf("state %d differs: %v vs %v", i, a.States[i], b.States[i])
		}
	}
}

func TestParse_MissingStepDefaultsToIndex(t *testing.T) {
	doc := `[{"coords": [0, 0]}, {"coords": [1, 1]}, {"step": 99, "coords": [2, 2]}]`

	tr, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tr.States[0].Step != 0 || tr.States[1].Step != 1 {
		t.Errorf("missing steps = %d, %d, want positional 0, 1", tr.States[0].Step, tr.States[1].Step)
	}
	if tr.States[2].Step != 99 {
		t.Errorf("explicit step = %d, want 99", tr.States[2].Step)
	}
}

func TestParse_TriangleCentroids(t *testing.T) {
	doc := `{"triangles": [
		{"step": 0, "coords": [0, 0, 3, 0, 0, 3]},
		{"coords": [1, 1, 1, 1, 1, 1]}
	]}`

	tr, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(tr.States) != 2 {
		t.Fatalf("len(States) = %d, want 2", len(tr.States))
	}
	if x, y := tr.States[0].X(), tr.States[0].Y(); x != 1.0 || y != 1.0 {
		t.Errorf("centroid = (%g, %g), want (1, 1)", x, y)
	}
	if x, y := tr.States[1].X(), tr.States[1].Y(); x != 1.0 || y != 1.0 {
		t.Errorf("degenerate centroid = (%g, %g), want (1, 1)", x, y)
	}
}

func TestParse_EmptyStatesSucceeds(t *testing.T) {
	tr, err := Parse([]byte(`{"states": []}`))
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if len(tr.States) != 0 {
		t.Errorf("len(States) = %d, want 0", len(tr.States))
	}
}

func TestParse_ShortCoordsFailsValidation(t *testing.T) {
	doc := `[{"coords": [1.0]}]`

	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("Parse() should fail for coords shorter than [x, y]")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error should be *ValidationError, got %T", err)
	}
	if verr.Index != 0 {
		t.Errorf("Index = %d, want 0", verr.Index)
	}
}

func TestParse_ValidationErrorReportsPosition(t *testing.T) {
	doc := `[{"coords": [0, 0]}, {"step": 7}]`

	_, err := Parse([]byte(doc))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error should be *ValidationError, got %v", err)
	}
	if verr.Index != 1 || verr.Step != 7 {
		t.Errorf("got index %d step %d, want index 1 step 7", verr.Index, verr.Step)
	}
}

func TestParse_ShortTriangleFails(t *testing.T) {
	_, err := Parse([]byte(`{"triangles": [{"coords": [1, 2, 3]}]}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error should be *ValidationError, got %v", err)
	}
}

func TestParse_UnrecognizedShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"object without sequences", `{"engine": "eumech"}`},
		{"scalar", `42`},
		{"string", `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrUnrecognizedTrace) {
				t.Errorf("Parse(%s) error = %v, want ErrUnrecognizedTrace", tt.doc, err)
			}
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Errorf("error should be *FormatError, got %T", err)
			}
		})
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	for _, doc := range []string{`{bad`, `[{"coords": [1, 2]`, ``, `   `} {
		_, err := Parse([]byte(doc))
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Errorf("Parse(%q) error = %v, want *FormatError", doc, err)
		}
	}
}

func TestParse_StatesNotASequence(t *testing.T) {
	_, err := Parse([]byte(`{"states": 5}`))
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error should be *FormatError, got %T", err)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.json")
	doc := `{"engine": "eumech", "version": "1.0.0", "states": [{"step": 0, "coords": [1, 2]}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	tr, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tr.States) != 1 {
		t.Errorf("len(States) = %d, want 1", len(tr.States))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoad_FormatErrorCarriesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{broken`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error should be *FormatError, got %T", err)
	}
	if ferr.Path != path {
		t.Errorf("Path = %q, want %q", ferr.Path, path)
	}
}
