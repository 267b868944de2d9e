package cli

import (
	"context"
	"fmt"

	"github.com/eumech/traceview/internal/adapters/render"
)

// Render replays a trace offscreen and writes a PNG.
func Render(opts Options) error {
	if opts.OutPath == "" {
		return fmt.Errorf("an output file is required (--out)")
	}

	tr, st, logger, err := setup(opts)
	if err != nil {
		return err
	}

	bg, err := st.BackgroundColor()
	if err != nil {
		return err
	}
	colorize, err := st.Colorizer()
	if err != nil {
		return err
	}

	err = render.PNG(context.Background(), tr, opts.OutPath, render.Options{
		Width:      opts.Width,
		Height:     opts.Height,
		Scale:      opts.Scale,
		PenSize:    opts.PenSize,
		DotEvery:   opts.DotEvery,
		DotScale:   st.DotScale,
		Background: bg,
		Colorize:   colorize,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	logger.Info("render written", "path", opts.OutPath, "states", len(tr.States))
	return nil
}
