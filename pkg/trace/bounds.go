package trace

// Bounds is the axis-aligned extent of a scaled trace.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoundsOf computes the extent of states after applying scale to both axes.
// A degenerate axis (every sample equal) is widened by one unit so
// projections onto it stay well-defined. An empty sequence yields the zero
// Bounds.
func BoundsOf(states []State, scale float64) Bounds {
	if len(states) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinX: states[0].X() * scale,
		MaxX: states[0].X() * scale,
		MinY: states[0].Y() * scale,
		MaxY: states[0].Y() * scale,
	}
	for _, s := range states[1:] {
		x, y := s.X()*scale, s.Y()*scale
		if x < b.MinX {
			b.MinX = x
		}
		if x > b.MaxX {
			b.MaxX = x
		}
		if y < b.MinY {
			b.MinY = y
		}
		if y > b.MaxY {
			b.MaxY = y
		}
	}

	if b.MaxX == b.MinX {
		b.MaxX = b.MinX + 1.0
	}
	if b.MaxY == b.MinY {
		b.MaxY = b.MinY + 1.0
	}
	return b
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// CenterX returns the horizontal midpoint.
func (b Bounds) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }

// CenterY returns the vertical midpoint.
func (b Bounds) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }
