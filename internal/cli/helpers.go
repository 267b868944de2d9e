package cli

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/eumech/traceview/internal/logging"
	"github.com/eumech/traceview/pkg/style"
	"github.com/eumech/traceview/pkg/trace"
)

// setup validates the shared flags, wires logging, and loads the style file
// and the trace. Every command goes through here so a bad trace fails the
// same way regardless of the output backend.
func setup(opts Options) (*trace.Trace, style.Style, *slog.Logger, error) {
	logger := logging.New(opts.Debug)
	gg.SetLogger(logger)

	if err := checkFlags(opts); err != nil {
		return nil, style.Style{}, logger, err
	}

	st := style.Default()
	if opts.StylePath != "" {
		var err error
		st, err = style.Load(opts.StylePath)
		if err != nil {
			return nil, style.Style{}, logger, err
		}
	}

	tr, err := trace.Load(opts.TracePath)
	if err != nil {
		return nil, style.Style{}, logger, err
	}

	logger.Debug("trace loaded",
		"path", opts.TracePath,
		"states", len(tr.States),
		"engine", tr.Engine,
		"version", tr.Version,
	)
	return tr, st, logger, nil
}

func checkFlags(opts Options) error {
	if opts.TracePath == "" {
		return fmt.Errorf("a trace file is required (--trace)")
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("--scale must be positive, got %g", opts.Scale)
	}
	if opts.Speed < 0 || opts.Speed > 10 {
		return fmt.Errorf("--speed must be between 0 and 10, got %d", opts.Speed)
	}
	if opts.PenSize < 1 {
		return fmt.Errorf("--pen-size must be at least 1, got %d", opts.PenSize)
	}
	if opts.DotEvery < 0 {
		return fmt.Errorf("--dot-every must not be negative, got %d", opts.DotEvery)
	}
	return nil
}
