package replay

import "image/color"

// OpKind identifies a recorded canvas operation.
type OpKind int

const (
	// MoveOp is a pen-up reposition.
	MoveOp OpKind = iota
	// LineOp is a pen-down segment ending at the op's coordinates.
	LineOp
	// DotOp is a stamped marker.
	DotOp
	// ColorOp is a pen color change.
	ColorOp
)

// Op is one recorded canvas operation.
type Op struct {
	Kind   OpKind
	X, Y   float64
	Radius float64     // DotOp only
	Color  color.Color // ColorOp only
}

// Recorder is a Canvas that records operations instead of drawing them. It
// backs the replay tests and the progressive window animation, which reveals
// the recorded stream step by step.
type Recorder struct {
	Ops []Op
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: MoveOp, X: x, Y: y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: LineOp, X: x, Y: y})
}

func (r *Recorder) Dot(x, y, radius float64) {
	r.Ops = append(r.Ops, Op{Kind: DotOp, X: x, Y: y, Radius: radius})
}

func (r *Recorder) SetPenColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: ColorOp, Color: c})
}

// Count returns the number of recorded operations of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Lines returns the endpoints of every pen-down segment in order.
func (r *Recorder) Lines() [][2]float64 {
	var pts [][2]float64
	for _, op := range r.Ops {
		if op.Kind == LineOp {
			pts = append(pts, [2]float64{op.X, op.Y})
		}
	}
	return pts
}

// StepOffsets returns one offset per pen movement: ops[:offset] replays the
// stream up to and including that movement, its preceding color change and
// its trailing marker. Frame k of a progressive reveal draws
// ops[:offsets[k-1]].
func (r *Recorder) StepOffsets() []int {
	var offsets []int
	for i, op := range r.Ops {
		if op.Kind != MoveOp && op.Kind != LineOp {
			continue
		}
		end := i + 1
		if end < len(r.Ops) && r.Ops[end].Kind == DotOp {
			end++
		}
		offsets = append(offsets, end)
	}
	return offsets
}

// Replay re-issues the recorded stream onto another canvas. The n parameter
// bounds how many ops are replayed; pass len(Ops) or more for the full
// stream.
func (r *Recorder) Replay(c Canvas, n int) {
	if n > len(r.Ops) {
		n = len(r.Ops)
	}
	for _, op := range r.Ops[:n] {
		switch op.Kind {
		case MoveOp:
			c.MoveTo(op.X, op.Y)
		case LineOp:
			c.LineTo(op.X, op.Y)
		case DotOp:
			c.Dot(op.X, op.Y, op.Radius)
		case ColorOp:
			c.SetPenColor(op.Color)
		}
	}
}

var _ Canvas = (*Recorder)(nil)
