package tetris

import "github.com/vovakirdan/mastergame/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindO Kind = iota
	KindI
	KindS
	KindZ
	KindL
	KindJ
	KindT
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindO:
		return "O"
	case KindI:
		return "I"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// Kinds lists the catalogue in spawn-table order.
func Kinds() []Kind {
	return []Kind{KindO, KindI, KindS, KindZ, KindL, KindJ, KindT}
}

// Shape is an occupancy matrix indexed [row][col].
type Shape [][]bool

type tetromino struct {
	shape Shape
	color core.Color
}

var catalogue = [kindCount]tetromino{
	KindO: {shapeOf("11", "11"), core.ColorYellow},
	KindI: {shapeOf("1", "1", "1", "1"), core.ColorCyan},
	KindS: {shapeOf("01", "11", "10"), core.ColorGreen},
	KindZ: {shapeOf("10", "11", "01"), core.ColorRed},
	KindL: {shapeOf("10", "10", "11"), core.ColorMagenta},
	KindJ: {shapeOf("01", "01", "11"), core.ColorBlue},
	KindT: {shapeOf("010", "111"), core.ColorBrightWhite},
}

func shapeOf(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '1'
		}
	}
	return s
}

// ShapeOf returns a fresh copy of the catalogue matrix for k.
func ShapeOf(k Kind) Shape {
	return catalogue[k].shape.Clone()
}

// ColorOf returns the color tag of k.
func ColorOf(k Kind) core.Color {
	return catalogue[k].color
}

// Width is the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height is the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y := range s {
		c[y] = append([]bool(nil), s[y]...)
	}
	return c
}

// Equal reports whether both matrices have the same size and occupancy.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Cells returns the occupied cells relative to the matrix origin.
func (s Shape) Cells() []core.Point {
	var pts []core.Point
	for y, row := range s {
		for x, on := range row {
			if on {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Rotate returns s turned 90 degrees clockwise: the transpose of the
// row-reversed matrix. s is not modified.
func Rotate(s Shape) Shape {
	h, w := s.Height(), s.Width()
	r := make(Shape, w)
	for i := range w {
		r[i] = make([]bool, h)
		for j := range h {
			r[i][j] = s[h-1-j][i]
		}
	}
	return r
}

// Piece is the falling tetromino. X and Y anchor the matrix's top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
	Color core.Color
}

// Cells returns the board coordinates the piece occupies.
func (p Piece) Cells() []core.Point {
	pts := p.Shape.Cells()
	for i := range pts {
		pts[i] = pts[i].Add(core.Point{X: p.X, Y: p.Y})
	}
	return pts
}
