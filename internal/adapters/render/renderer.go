// Package render replays a trace offscreen and encodes the result as a PNG.
// It is the headless counterpart of the window viewer: same canvas adapter,
// no event loop.
package render

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/eumech/traceview/internal/adapters/canvas"
	"github.com/eumech/traceview/pkg/replay"
	"github.com/eumech/traceview/pkg/trace"
)

// Options configures an offscreen render.
type Options struct {
	Width      int
	Height     int
	Scale      float64
	PenSize    int
	DotEvery   int
	DotScale   float64
	Background color.Color
	Colorize   replay.Colorizer
	Logger     *slog.Logger
}

// PNG replays tr onto an offscreen canvas and writes the image to path. The
// view is centered on the path's bounding box so the whole trace is visible
// regardless of where the engine placed it.
func PNG(ctx context.Context, tr *trace.Trace, path string, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("render: dimensions must be positive, got %dx%d", opts.Width, opts.Height)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()

	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	dc.ClearWithColor(gg.FromColor(bg))

	scale := opts.Scale
	if scale <= 0 {
		scale = 1.0
	}
	bounds := trace.BoundsOf(tr.States, scale)
	originX := float64(opts.Width)/2 - bounds.CenterX()
	originY := float64(opts.Height)/2 + bounds.CenterY()

	cv := canvas.NewGG(dc, originX, originY, opts.PenSize)
	r := replay.New(tr.States,
		replay.WithScale(scale),
		replay.WithPenSize(opts.PenSize),
		replay.WithDotEvery(opts.DotEvery),
		replay.WithDotScale(opts.DotScale),
		replay.WithColorizer(opts.Colorize),
		replay.WithLogger(opts.Logger),
	)

	if err := r.Run(ctx, cv); err != nil {
		return err
	}
	if err := cv.Err(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
