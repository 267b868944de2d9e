package ascii

import (
	"fmt"
	"image/color"

	"github.com/eumech/traceview/pkg/replay"
	"github.com/eumech/traceview/pkg/trace"
)

// Canvas projects replay operations onto a Frame and hands the frame to a
// sink after every pen movement. The sink is typically Painter.Paint; a nil
// sink collects silently, which is how static mode works.
type Canvas struct {
	frame  *Frame
	bounds trace.Bounds
	sink   func(*Frame)
}

// NewCanvas creates a grid canvas of the given size. World coordinates are
// projected onto the grid from bounds, which must cover every state that
// will be drawn (see trace.BoundsOf).
func NewCanvas(width, height int, bounds trace.Bounds, sink func(*Frame)) *Canvas {
	return &Canvas{
		frame:  NewFrame(width, height),
		bounds: bounds,
		sink:   sink,
	}
}

// Frame returns the underlying grid, for painting the final image.
func (c *Canvas) Frame() *Frame { return c.frame }

// Project maps world coordinates onto grid cells. The y axis is inverted so
// larger y draws higher on screen.
func (c *Canvas) Project(x, y float64) (int, int) {
	nx := (x - c.bounds.MinX) / c.bounds.Width()
	ny := (y - c.bounds.MinY) / c.bounds.Height()
	gx := int(nx * float64(c.frame.Width-1))
	gy := int((1.0 - ny) * float64(c.frame.Height-1))
	return gx, gy
}

func (c *Canvas) MoveTo(x, y float64) {
	c.plot(x, y, TrailRune)
}

func (c *Canvas) LineTo(x, y float64) {
	c.plot(x, y, TrailRune)
}

func (c *Canvas) Dot(x, y, radius float64) {
	gx, gy := c.Project(x, y)
	c.frame.Mark(gx, gy, MarkerRune)
}

func (c *Canvas) SetPenColor(col color.Color) {
	r, g, b, _ := col.RGBA()
	c.frame.PenHex = fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func (c *Canvas) plot(x, y float64, r rune) {
	gx, gy := c.Project(x, y)
	c.frame.Mark(gx, gy, r)
	c.frame.SetCursor(gx, gy)
	c.frame.Step++
	if c.sink != nil {
		c.sink(c.frame)
	}
}

var _ replay.Canvas = (*Canvas)(nil)
