package style

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eumech/traceview/pkg/trace"
)

func stateAt(x, y float64) trace.State {
	return trace.State{Coords: []float64{x, y}}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	doc := "background: \"#000000\"\npen: \"#00ff00\"\ndot_scale: 3.5\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#000000", s.Background)
	assert.Equal(t, "#00ff00", s.Pen)
	assert.Equal(t, 3.5, s.DotScale)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pen: \"#123456\"\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", s.Background)
	assert.Equal(t, Default().DotScale, s.DotScale)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		hex  string
		want color.RGBA
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#3b0a78", color.RGBA{0x3b, 0x0a, 0x78, 255}},
		{"#f00", color.RGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.hex)
		require.NoError(t, err, tt.hex)
		assert.Equal(t, tt.want, got, tt.hex)
	}

	for _, bad := range []string{"", "fff", "#12345", "#zzzzzz"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestColorizer_Selection(t *testing.T) {
	// Empty pen selects the norm gradient.
	s := Default()
	colorize, err := s.Colorizer()
	require.NoError(t, err)
	require.NotNil(t, colorize)

	// A fixed pen always yields the same color.
	s.Pen = "#112233"
	colorize, err = s.Colorizer()
	require.NoError(t, err)
	want := color.RGBA{0x11, 0x22, 0x33, 255}
	assert.Equal(t, color.Color(want), colorize(stateAt(0, 0)))
	assert.Equal(t, color.Color(want), colorize(stateAt(9, 9)))

	s.Pen = "#bogus!"
	_, err = s.Colorizer()
	assert.Error(t, err)
}
