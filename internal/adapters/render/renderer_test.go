package render

import (
	"context"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eumech/traceview/pkg/trace"
)

func testTrace() *trace.Trace {
	return &trace.Trace{States: []trace.State{
		{Step: 0, Coords: []float64{-50, -50}},
		{Step: 1, Coords: []float64{50, -50}},
		{Step: 2, Coords: []float64{50, 50}},
		{Step: 3, Coords: []float64{-50, 50}},
	}}
}

func TestPNG_WritesImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	err := PNG(context.Background(), testTrace(), path, Options{
		Width:   200,
		Height:  150,
		Scale:   1.0,
		PenSize: 2,
	})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestPNG_BackgroundFillsCorners(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	err := PNG(context.Background(), testTrace(), path, Options{
		Width:      120,
		Height:     120,
		Scale:      0.5,
		PenSize:    1,
		Background: bg,
	})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// The path is centered; the corner stays background-colored.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestPNG_EmptyTraceSucceeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	err := PNG(context.Background(), &trace.Trace{}, path, Options{Width: 64, Height: 64})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestPNG_RejectsBadDimensions(t *testing.T) {
	err := PNG(context.Background(), testTrace(), "ignored.png", Options{Width: 0, Height: 100})
	assert.Error(t, err)
}
