// Package ascii renders a trace replay as characters in a terminal: the
// trail as dots, markers as 'o', the cursor as '@'. It is the terminal
// counterpart of the window viewer for environments without a display.
package ascii

// Cell runes used by the grid.
const (
	TrailRune  = '.'
	MarkerRune = 'o'
	CursorRune = '@'
)

// Frame is a character grid holding the drawn trail and the cursor.
type Frame struct {
	Width  int
	Height int

	// Step counts pen movements so far; shown in the footer.
	Step int

	// PenHex is the current pen color for cursor styling, as "#rrggbb".
	PenHex string

	cells    [][]rune
	cursorX  int
	cursorY  int
	cursorOn bool
}

// NewFrame creates an empty grid of the given size.
func NewFrame(width, height int) *Frame {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &Frame{Width: width, Height: height, cells: cells}
}

// Mark sets a cell when it falls inside the grid.
func (f *Frame) Mark(x, y int, r rune) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	// Markers win over plain trail cells.
	if f.cells[y][x] == MarkerRune && r == TrailRune {
		return
	}
	f.cells[y][x] = r
}

// SetCursor places the turtle cursor.
func (f *Frame) SetCursor(x, y int) {
	f.cursorX, f.cursorY = x, y
	f.cursorOn = true
}

// Cursor reports the cursor cell and whether it is set.
func (f *Frame) Cursor() (x, y int, ok bool) {
	return f.cursorX, f.cursorY, f.cursorOn
}

// Rune returns the cell content at (x, y) without the cursor overlay.
func (f *Frame) Rune(x, y int) rune {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return ' '
	}
	return f.cells[y][x]
}
