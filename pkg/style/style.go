// Package style holds the optional presentation settings for a replay:
// background color, pen coloring and marker sizing. Settings live in a small
// YAML file so a trace can be restyled without touching the trace itself.
package style

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eumech/traceview/pkg/replay"
)

// Style controls the presentation of a replay.
type Style struct {
	// Background is the canvas background as a hex color.
	Background string `yaml:"background"`

	// Pen is a fixed pen color as hex. When empty the norm-gradient
	// coloring is used instead.
	Pen string `yaml:"pen"`

	// DotScale is the marker radius as a multiple of the pen size.
	DotScale float64 `yaml:"dot_scale"`
}

// Default returns the built-in style: white background, norm-gradient pen,
// classic turtle marker sizing.
func Default() Style {
	return Style{
		Background: "#ffffff",
		DotScale:   replay.DefaultDotScale,
	}
}

// Load reads a style file. A missing file is not an error: the defaults are
// returned, mirroring how an absent config means "no customization".
func Load(path string) (Style, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read style: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse style %q: %w", path, err)
	}

	if s.Background == "" {
		s.Background = "#ffffff"
	}
	if s.DotScale <= 0 {
		s.DotScale = replay.DefaultDotScale
	}
	return s, nil
}

// BackgroundColor resolves the background hex color.
func (s Style) BackgroundColor() (color.Color, error) {
	return ParseHex(s.Background)
}

// Colorizer resolves the pen coloring scheme: a fixed color when Pen is set,
// the norm gradient otherwise.
func (s Style) Colorizer() (replay.Colorizer, error) {
	if s.Pen == "" {
		return replay.NormColorizer, nil
	}
	c, err := ParseHex(s.Pen)
	if err != nil {
		return nil, err
	}
	return replay.FixedColorizer(c), nil
}

// ParseHex converts "#rgb" or "#rrggbb" into a color.
func ParseHex(hex string) (color.Color, error) {
	var r, g, b uint8
	var err error
	switch len(hex) {
	case 4:
		_, err = fmt.Sscanf(hex, "#%1x%1x%1x", &r, &g, &b)
		r *= 17
		g *= 17
		b *= 17
	case 7:
		_, err = fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	default:
		err = fmt.Errorf("expected #rgb or #rrggbb")
	}
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
