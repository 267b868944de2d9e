package replay

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/eumech/traceview/pkg/trace"
)

// Replayer issues draw commands for a recorded state sequence. It holds the
// trace read-only and is single-shot: one call to Run walks the sequence in
// document order exactly once.
type Replayer struct {
	states   []trace.State
	scale    float64
	penSize  int
	dotEvery int
	dotScale float64
	skip     int
	delay    time.Duration
	colorize Colorizer
	logger   *slog.Logger
}

// New creates a Replayer over states with the given options. Defaults:
// scale 1, pen size 1, no markers, no delay, norm-gradient coloring.
func New(states []trace.State, opts ...Option) *Replayer {
	r := &Replayer{
		states:   states,
		scale:    1.0,
		penSize:  1,
		dotScale: DefaultDotScale,
		colorize: NormColorizer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of states the replay covers.
func (r *Replayer) Len() int { return len(r.states) }

// PenSize returns the configured line width.
func (r *Replayer) PenSize() int { return r.penSize }

// DotRadius returns the marker radius derived from pen size and dot scale.
func (r *Replayer) DotRadius() float64 { return float64(r.penSize) * r.dotScale }

// Delay returns the per-segment animation delay.
func (r *Replayer) Delay() time.Duration { return r.delay }

// Run drives c through the whole sequence: the cursor starts pen-up at the
// first state's scaled position, every later state is a pen-down move, and a
// marker is stamped at every zero-based position that is a nonzero multiple
// of the dot interval. Between segments Run sleeps the configured delay and
// honors ctx cancellation.
//
// An empty sequence is not an error: Run returns nil without touching c.
func (r *Replayer) Run(ctx context.Context, c Canvas) error {
	if len(r.states) == 0 {
		r.logger.Info("trace has no states, nothing to draw")
		return nil
	}

	first := r.states[0]
	c.MoveTo(first.X()*r.scale, first.Y()*r.scale)
	r.logger.Debug("replay started", "states", len(r.states), "scale", r.scale)

	for i := 1; i < len(r.states); i++ {
		if r.skip > 1 && i%r.skip != 0 {
			continue
		}
		if err := r.pause(ctx); err != nil {
			return err
		}

		st := r.states[i]
		x, y := st.X()*r.scale, st.Y()*r.scale

		c.SetPenColor(r.colorize(st))
		c.LineTo(x, y)

		if r.dotEvery > 0 && i%r.dotEvery == 0 {
			c.Dot(x, y, r.DotRadius())
		}
	}

	r.logger.Debug("replay finished", "states", len(r.states))
	return nil
}

// pause waits out the per-segment delay, returning early when ctx is
// canceled. With no delay it still observes cancellation so a canceled
// replay never keeps drawing.
func (r *Replayer) pause(ctx context.Context) error {
	if r.delay <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	t := time.NewTimer(r.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
