package cli

import (
	"context"
	"path/filepath"

	"github.com/eumech/traceview/internal/adapters/window"
	"github.com/eumech/traceview/pkg/replay"
)

// Run replays a trace in a window. The replay is recorded before the window
// opens, so load and validation failures never flash an empty window. Run
// returns once the user closes the window.
func Run(opts Options) error {
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

	rec := replay.NewRecorder()
	r := replay.New(tr.States,
		replay.WithScale(opts.Scale),
		replay.WithPenSize(opts.PenSize),
		replay.WithDotEvery(opts.DotEvery),
		replay.WithDotScale(st.DotScale),
		replay.WithColorizer(colorize),
		replay.WithLogger(logger),
	)
	if err := r.Run(context.Background(), rec); err != nil {
		return err
	}

	v := window.New(rec, window.Config{
		Title:      "EuMech Trace Viewer - " + filepath.Base(opts.TracePath),
		Width:      opts.Width,
		Height:     opts.Height,
		PenSize:    opts.PenSize,
		Delay:      replay.SpeedDelay(opts.Speed),
		Background: bg,
		Logger:     logger,
	})

	logger.Info("opening viewer", "states", len(tr.States), "speed", opts.Speed)
	return v.Show()
}
