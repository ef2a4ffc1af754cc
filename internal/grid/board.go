// Package grid implements the fixed-size occupancy board shared by the engines.
package grid

import "github.com/vovakirdan/mastergame/internal/core"

// Empty is the color tag of an unoccupied cell.
const Empty = core.ColorDefault

// Board is a width × height grid of color tags. Dimensions never change
// after construction; writes outside the grid are rejected.
type Board struct {
	width  int
	height int
	rows   [][]core.Color
}

// New creates an empty board.
func New(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.rows = make([][]core.Color, height)
	for y := range b.rows {
		b.rows[y] = make([]core.Color, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) lies inside [0,w) × [0,h).
func (b *Board) InBounds(x, y int) bool {
	return core.NewRect(0, 0, b.width, b.height).Contains(x, y)
}

// At returns the color at (x, y). Out-of-bounds reads report Empty.
func (b *Board) At(x, y int) core.Color {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.rows[y][x]
}

// Occupied reports whether (x, y) holds a block.
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y) != Empty
}

// Set writes c at (x, y). It returns false and leaves the board untouched
// when the coordinate is outside the grid.
func (b *Board) Set(x, y int, c core.Color) bool {
	if !b.InBounds(x, y) {
		return false
	}
	b.rows[y][x] = c
	return true
}

// Reset empties every cell.
func (b *Board) Reset() {
	for y := range b.rows {
		clear(b.rows[y])
	}
}

// RowOccupied reports whether row y holds at least one block.
func (b *Board) RowOccupied(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.rows[y] {
		if c != Empty {
			return true
		}
	}
	return false
}

// RowFull reports whether row y has no empty cell.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.rows[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the remaining rows down
// preserving their order, and inserts that many empty rows at the top.
// It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]core.Color, 0, b.height)
	for y := range b.rows {
		if !b.RowFull(y) {
			kept = append(kept, b.rows[y])
		}
	}
	removed := b.height - len(kept)
	if removed == 0 {
		return 0
	}

	fresh := make([][]core.Color, removed, b.height)
	for i := range fresh {
		fresh[i] = make([]core.Color, b.width)
	}
	b.rows = append(fresh, kept...)
	return removed
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for y := range b.rows {
		for _, c := range b.rows[y] {
			if c != Empty {
				n++
			}
		}
	}
	return n
}
