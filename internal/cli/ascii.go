package cli

import (
	"context"
	"os"

	"golang.org/x/term"

	"github.com/eumech/traceview/internal/presentation/ascii"
	"github.com/eumech/traceview/pkg/replay"
	"github.com/eumech/traceview/pkg/trace"
)

// Fallback grid size when the terminal size cannot be detected.
const (
	fallbackCols = 80
	fallbackRows = 24
)

// Ascii replays a trace as characters in the terminal. The grid is sized to
// the terminal (capped by --max-width/--max-height) and the whole path is
// projected into it, so every trace fits regardless of its world extent.
func Ascii(opts Options) error {
	tr, st, logger, err := setup(opts)
	if err != nil {
		return err
	}

	colorize, err := st.Colorizer()
	if err != nil {
		return err
	}

	width, height := gridSize(opts)
	bounds := trace.BoundsOf(tr.States, opts.Scale)

	painter := ascii.NewPainter(os.Stdout)

	var sink func(*ascii.Frame)
	if !opts.Static {
		painter.Enter()
		defer painter.Exit()
		sink = painter.Paint
	}

	cv := ascii.NewCanvas(width, height, bounds, sink)
	r := replay.New(tr.States,
		replay.WithScale(opts.Scale),
		replay.WithDelay(opts.Delay),
		replay.WithSkip(opts.Skip),
		replay.WithDotEvery(opts.DotEvery),
		replay.WithDotScale(st.DotScale),
		replay.WithColorizer(colorize),
		replay.WithLogger(logger),
	)
	if err := r.Run(context.Background(), cv); err != nil {
		return err
	}

	if opts.Static {
		painter.Clear()
	}
	painter.Paint(cv.Frame())
	return nil
}

// gridSize fits the grid to the terminal, leaving two rows for the footer.
func gridSize(opts Options) (int, int) {
	cols, rows := fallbackCols, fallbackRows
	if c, r, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = c, r
	}

	width := min(opts.MaxWidth, cols)
	height := min(opts.MaxHeight, max(4, rows-2))
	if width < 1 {
		width = fallbackCols
	}
	if height < 1 {
		height = fallbackRows
	}
	return width, height
}
