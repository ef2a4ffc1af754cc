package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 5, Y: 5}.Add(Point{X: 1, Y: -1})
	assert.Equal(t, Point{X: 6, Y: 4}, p)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.min, tc.max), "Clamp(%d, %d, %d)", tc.val, tc.min, tc.max)
	}
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 0, Abs(0))
}

func TestColorByName(t *testing.T) {
	assert.Equal(t, ColorGreen, ColorByName("verde", ColorRed))
	assert.Equal(t, ColorRed, ColorByName("plaid", ColorRed))
}

func TestKeyMapLookup(t *testing.T) {
	km := KeyMap{
		{Keys: []string{"w", "up"}, Action: ActionUp},
		{Keys: []string{"q"}, Action: ActionQuit},
		{Keys: []string{"w"}, Action: ActionDown},
	}

	a, ok := km.Lookup("up")
	assert.True(t, ok)
	assert.Equal(t, ActionUp, a)

	// First binding wins
	a, _ = km.Lookup("w")
	assert.Equal(t, ActionUp, a)

	_, ok = km.Lookup("x")
	assert.False(t, ok)
}

func TestKeyMapLegend(t *testing.T) {
	km := KeyMap{
		{Keys: []string{"up"}, Action: ActionUp},
		{Keys: []string{"1"}, Action: ActionLeft, Help: "left"},
		{Keys: []string{"0"}, Action: ActionQuit, Help: "quit"},
	}
	assert.Equal(t, "1 left  0 quit", km.Legend())
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionRotate)
	assert.True(t, f.Has(ActionRotate))
	assert.False(t, f.Has(ActionQuit))

	f.Clear()
	assert.False(t, f.Has(ActionRotate), "Clear should reset actions")

	var zero InputFrame
	assert.False(t, zero.Has(ActionUp))
}
