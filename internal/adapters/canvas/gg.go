// Package canvas adapts a gg drawing context to the replay Canvas port. The
// same adapter backs both the offscreen PNG renderer and the window viewer.
package canvas

import (
	"image/color"

	"github.com/gogpu/gg"

	"github.com/eumech/traceview/pkg/replay"
)

// GG draws replay operations onto a gg.Context. World coordinates are
// turtle-style: the origin sits at (originX, originY) in pixel space and the
// y axis points up.
type GG struct {
	dc       *gg.Context
	originX  float64
	originY  float64
	penWidth float64

	x, y  float64
	color color.Color
	err   error
}

// NewGG creates an adapter drawing onto dc with the given pixel-space origin
// and pen width.
func NewGG(dc *gg.Context, originX, originY float64, penSize int) *GG {
	if penSize < 1 {
		penSize = 1
	}
	return &GG{
		dc:       dc,
		originX:  originX,
		originY:  originY,
		penWidth: float64(penSize),
		color:    color.Black,
	}
}

// project maps world coordinates to pixel space: centered origin, y up.
func (g *GG) project(x, y float64) (float64, float64) {
	return g.originX + x, g.originY - y
}

func (g *GG) MoveTo(x, y float64) {
	g.x, g.y = g.project(x, y)
}

func (g *GG) LineTo(x, y float64) {
	nx, ny := g.project(x, y)
	g.dc.SetColor(g.color)
	g.dc.SetLineWidth(g.penWidth)
	g.dc.DrawLine(g.x, g.y, nx, ny)
	if err := g.dc.Stroke(); err != nil && g.err == nil {
		g.err = err
	}
	g.x, g.y = nx, ny
}

func (g *GG) Dot(x, y, radius float64) {
	px, py := g.project(x, y)
	g.dc.SetColor(g.color)
	g.dc.DrawCircle(px, py, radius)
	if err := g.dc.Fill(); err != nil && g.err == nil {
		g.err = err
	}
}

func (g *GG) SetPenColor(c color.Color) {
	g.color = c
}

// Err returns the first rasterization error encountered, if any.
func (g *GG) Err() error { return g.err }

var _ replay.Canvas = (*GG)(nil)
