package replay

import (
	"log/slog"
	"time"
)

// DefaultDotScale is the marker radius as a multiple of the pen size,
// matching the classic turtle dot of twice the pen width.
const DefaultDotScale = 2.0

// Option defines a functional option for configuring the Replayer.
type Option func(*Replayer)

// WithScale sets the coordinate multiplier applied to both axes before
// drawing. Values <= 0 are ignored and the current scale is kept.
func WithScale(scale float64) Option {
	return func(r *Replayer) {
		if scale > 0 {
			r.scale = scale
		}
	}
}

// WithSpeed sets the animation speed on the 0-10 scale and derives the
// per-segment delay from it. See SpeedDelay.
func WithSpeed(speed int) Option {
	return func(r *Replayer) {
		r.delay = SpeedDelay(speed)
	}
}

// WithDelay sets an explicit per-segment delay, overriding any speed
// mapping.
func WithDelay(d time.Duration) Option {
	return func(r *Replayer) {
		r.delay = d
	}
}

// WithPenSize sets the line width used to derive the marker radius. Values
// < 1 are clamped to 1.
func WithPenSize(size int) Option {
	return func(r *Replayer) {
		if size < 1 {
			size = 1
		}
		r.penSize = size
	}
}

// WithDotEvery sets the marker interval: a dot is stamped at every
// zero-based position that is a nonzero multiple of n. Zero disables
// markers.
func WithDotEvery(n int) Option {
	return func(r *Replayer) {
		if n >= 0 {
			r.dotEvery = n
		}
	}
}

// WithDotScale sets the marker radius as a multiple of the pen size.
func WithDotScale(scale float64) Option {
	return func(r *Replayer) {
		if scale > 0 {
			r.dotScale = scale
		}
	}
}

// WithSkip plots only every nth state. Values < 2 keep every state. The
// first state is always plotted.
func WithSkip(n int) Option {
	return func(r *Replayer) {
		r.skip = n
	}
}

// WithColorizer sets the pen coloring scheme. A nil colorizer is ignored.
func WithColorizer(c Colorizer) Option {
	return func(r *Replayer) {
		if c != nil {
			r.colorize = c
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Replayer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// SpeedDelay maps a turtle-style speed to a per-segment delay: 0 means no
// delay at all, 1 is slowest and 10 fastest. Out-of-range values are
// clamped.
func SpeedDelay(speed int) time.Duration {
	if speed <= 0 {
		return 0
	}
	if speed > 10 {
		speed = 10
	}
	return time.Duration(11-speed) * 10 * time.Millisecond
}
