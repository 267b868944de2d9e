package replay

import (
	"image/color"
	"math"

	"github.com/eumech/traceview/pkg/trace"
)

// Colorizer picks the pen color for a state.
type Colorizer func(trace.State) color.Color

// NormColorizer shades the pen by the vector norm of the full coordinate
// vector: low norms draw dark blue-violet, high norms light magenta. The
// norm is clamped at 10, which maps to a fully saturated shade.
func NormColorizer(s trace.State) color.Color {
	var sum float64
	for _, c := range s.Coords {
		sum += c * c
	}
	shade := math.Min(1.0, math.Sqrt(sum)/10.0)
	return color.RGBA{
		R: uint8(shade * 255),
		B: uint8((1.0 - shade) * 255),
		A: 255,
	}
}

// FixedColorizer returns a Colorizer that always yields c.
func FixedColorizer(c color.Color) Colorizer {
	return func(trace.State) color.Color { return c }
}
