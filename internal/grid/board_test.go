package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mastergame/internal/core"
)

func fillRow(b *Board, y int, c core.Color) {
	for x := 0; x < b.Width(); x++ {
		b.Set(x, y, c)
	}
}

func TestBoardBounds(t *testing.T) {
	b := New(8, 12)

	tests := []struct {
		name string
		x, y int
		ok   bool
	}{
		{"origin", 0, 0, true},
		{"bottom-right", 7, 11, true},
		{"right edge", 8, 0, false},
		{"bottom edge", 0, 12, false},
		{"negative x", -1, 3, false},
		{"negative y", 3, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, b.Set(tc.x, tc.y, core.ColorRed))
		})
	}

	assert.Equal(t, 2, b.Count(), "only in-bounds writes land")
}

func TestClearFullRowsNoop(t *testing.T) {
	b := New(4, 4)
	b.Set(0, 3, core.ColorRed)
	b.Set(1, 2, core.ColorBlue)

	require.Equal(t, 0, b.ClearFullRows())
	require.Equal(t, 0, b.ClearFullRows())
	assert.Equal(t, core.ColorRed, b.At(0, 3))
	assert.Equal(t, core.ColorBlue, b.At(1, 2))
}

func TestClearFullRowsShiftsDown(t *testing.T) {
	b := New(4, 5)
	b.Set(1, 0, core.ColorGreen) // marker above everything
	b.Set(2, 1, core.ColorYellow)
	fillRow(b, 2, core.ColorRed)
	b.Set(3, 3, core.ColorCyan)
	fillRow(b, 4, core.ColorBlue)

	before := b.Count()
	removed := b.ClearFullRows()

	require.Equal(t, 2, removed)
	assert.Equal(t, before-removed*b.Width(), b.Count())

	// Remaining rows keep their order, shifted by the removed count
	assert.Equal(t, core.ColorGreen, b.At(1, 2), "row 0 moves to row 2")
	assert.Equal(t, core.ColorYellow, b.At(2, 3), "row 1 moves to row 3")
	assert.Equal(t, core.ColorCyan, b.At(3, 4), "row 3 stays at row 4")
	assert.False(t, b.RowOccupied(0))
	assert.False(t, b.RowOccupied(1))
}

func TestRowQueries(t *testing.T) {
	b := New(3, 3)
	fillRow(b, 1, core.ColorRed)
	b.Set(0, 0, core.ColorRed)

	assert.True(t, b.RowFull(1))
	assert.False(t, b.RowFull(0))
	assert.True(t, b.RowOccupied(0))
	assert.False(t, b.RowOccupied(2))
	assert.False(t, b.RowFull(-1), "out of range rows are never full")
	assert.False(t, b.RowOccupied(3), "out of range rows are never occupied")

	b.Reset()
	assert.Zero(t, b.Count())
}
