// Package window shows a trace replay in a GPU-backed window. The replay is
// recorded up front and revealed one pen movement per animation tick, so a
// bad trace fails before any window opens and the drawn result is identical
// to the offscreen renderer's.
package window

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator.
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/eumech/traceview/internal/adapters/canvas"
	"github.com/eumech/traceview/internal/logging"
	"github.com/eumech/traceview/pkg/replay"
)

// Config holds the window and presentation settings for a Viewer.
type Config struct {
	Title      string
	Width      int
	Height     int
	PenSize    int
	Delay      time.Duration // per pen movement; 0 draws everything at once
	Background color.Color
	Logger     *slog.Logger
}

// Viewer animates a recorded replay in a window and keeps the window open
// after the animation completes, until the user closes it.
type Viewer struct {
	rec *replay.Recorder
	cfg Config
}

// New prepares a viewer over a fully recorded op stream.
func New(rec *replay.Recorder, cfg Config) *Viewer {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Background == nil {
		cfg.Background = color.White
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	return &Viewer{rec: rec, cfg: cfg}
}

// Show opens the window and runs the event loop. It returns when the user
// closes the window.
func (v *Viewer) Show() error {
	log := v.cfg.Logger

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(v.cfg.Title).
		WithSize(v.cfg.Width, v.cfg.Height).
		WithContinuousRender(false)) // Event-driven: idle once the replay completes.

	offsets := v.rec.StepOffsets()

	var cv *ggcanvas.Canvas
	var animToken *gogpu.AnimationToken
	var start time.Time
	var paused bool
	var pausedAt time.Duration
	done := false

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if cv == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			cv, err = ggcanvas.New(provider, w, h)
			if err != nil {
				log.Error("canvas init failed", "error", err)
				return
			}
			log.Debug("canvas created", "width", w, "height", h, "backend", dc.Backend())
			if v.cfg.Delay > 0 && len(offsets) > 0 {
				animToken = app.StartAnimation()
			}
			start = time.Now()
		}

		if cw, ch := cv.Size(); cw != w || ch != h {
			if err := cv.Resize(w, h); err != nil {
				log.Warn("canvas resize failed", "error", err)
				return
			}
		}

		elapsed := time.Since(start)
		if paused {
			elapsed = pausedAt
		}
		limit := v.revealLimit(offsets, elapsed)

		if err := cv.Draw(func(cc *gg.Context) {
			cc.ClearWithColor(gg.FromColor(v.cfg.Background))
			g := canvas.NewGG(cc, float64(w)/2, float64(h)/2, v.cfg.PenSize)
			v.rec.Replay(g, limit)
			if err := g.Err(); err != nil {
				log.Warn("draw failed", "error", err)
			}
		}); err != nil {
			log.Warn("frame draw failed", "error", err)
		}

		sv := dc.RenderTarget().SurfaceView()
		sw, sh := dc.SurfaceSize()
		if err := cv.RenderDirect(sv, sw, sh); err != nil {
			log.Warn("present failed", "error", err)
		}

		if animToken != nil && limit >= len(v.rec.Ops) {
			animToken.Stop()
			animToken = nil
			done = true
			log.Debug("replay animation complete", "steps", len(offsets))
		}
	})

	// Space pauses and resumes the animation.
	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key != gpucontext.KeySpace || v.cfg.Delay <= 0 || done {
			return
		}
		paused = !paused
		if paused {
			pausedAt = time.Since(start)
			if animToken != nil {
				animToken.Stop()
				animToken = nil
			}
			log.Debug("replay paused", "elapsed", pausedAt)
		} else {
			start = time.Now().Add(-pausedAt)
			animToken = app.StartAnimation()
			log.Debug("replay resumed")
		}
	})

	app.OnClose(func() {
		if animToken != nil {
			animToken.Stop()
		}
		// Drain the GPU queue while the device is still alive.
		gg.CloseAccelerator()
	})

	return app.Run()
}

// revealLimit returns how many ops of the recorded stream are visible after
// elapsed animation time: all of them without a delay, otherwise one pen
// movement per delay interval.
func (v *Viewer) revealLimit(offsets []int, elapsed time.Duration) int {
	if v.cfg.Delay <= 0 || len(offsets) == 0 {
		return len(v.rec.Ops)
	}
	step := int(elapsed / v.cfg.Delay)
	if step <= 0 {
		return 0
	}
	if step > len(offsets) {
		step = len(offsets)
	}
	return offsets[step-1]
}
