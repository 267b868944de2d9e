package ascii

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Painter writes frames to a terminal using ANSI positioning and the
// terminal's color profile.
type Painter struct {
	out *termenv.Output
}

// NewPainter creates a painter writing to w. Colors degrade with the
// detected terminal profile; a plain writer gets plain text.
func NewPainter(w io.Writer) *Painter {
	return &Painter{out: termenv.NewOutput(w)}
}

// Enter clears the screen and hides the terminal cursor for animation. The
// final frame stays on screen after Exit, matching a plotter leaving its
// drawing behind.
func (p *Painter) Enter() {
	p.out.HideCursor()
	p.out.ClearScreen()
}

// Exit restores the terminal cursor.
func (p *Painter) Exit() {
	p.out.ShowCursor()
}

// Clear wipes the screen.
func (p *Painter) Clear() {
	p.out.ClearScreen()
}

// Paint draws a full frame at the top-left corner, trail first, cursor on
// top, step counter in the footer.
func (p *Painter) Paint(f *Frame) {
	p.out.MoveCursor(1, 1)

	cx, cy, hasCursor := f.Cursor()
	var b strings.Builder
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if hasCursor && x == cx && y == cy {
				b.WriteString(p.cursor(f))
				continue
			}
			b.WriteRune(f.Rune(x, y))
		}
		b.WriteByte('\n')
	}
	b.WriteString(fmt.Sprintf("step: %d\n", f.Step))
	fmt.Fprint(p.out, b.String())
}

// cursor styles the turtle glyph with the current pen color.
func (p *Painter) cursor(f *Frame) string {
	s := p.out.String(string(CursorRune)).Bold()
	if f.PenHex != "" {
		s = s.Foreground(p.out.Color(f.PenHex))
	}
	return s.String()
}
