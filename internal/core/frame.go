package core

// Cell is one board position in a Frame. A zero Glyph means empty.
type Cell struct {
	Glyph rune
	Color Color
}

// Empty reports whether nothing is drawn in the cell.
func (c Cell) Empty() bool {
	return c.Glyph == 0
}

// Frame is a presentation-neutral snapshot of a game: the board cells plus
// the text a front end shows around them. Console front ends draw it as
// characters, the pixel front end as colored rectangles.
type Frame struct {
	Title  string
	Score  int
	Cols   int
	Rows   int
	Cells  []Cell // row-major, len == Cols*Rows
	Wide   bool   // console hint: draw each cell two columns wide
	Legend string // control legend
	Status string // transient message, may be empty
	Over   bool
}

// NewFrame allocates an empty frame of the given board size.
func NewFrame(cols, rows int) Frame {
	return Frame{
		Cols:  cols,
		Rows:  rows,
		Cells: make([]Cell, cols*rows),
	}
}

// Set draws a glyph at (x, y). Out-of-bounds coordinates are ignored.
func (f *Frame) Set(x, y int, glyph rune, c Color) {
	if x < 0 || x >= f.Cols || y < 0 || y >= f.Rows {
		return
	}
	f.Cells[y*f.Cols+x] = Cell{Glyph: glyph, Color: c}
}

// At returns the cell at (x, y), or an empty cell when out of bounds.
func (f Frame) At(x, y int) Cell {
	if x < 0 || x >= f.Cols || y < 0 || y >= f.Rows {
		return Cell{}
	}
	return f.Cells[y*f.Cols+x]
}
