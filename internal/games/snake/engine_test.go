package snake

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mastergame/internal/config"
	"github.com/vovakirdan/mastergame/internal/core"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 1))
}

func TestInitialBody(t *testing.T) {
	e := NewEngine(10, 10, 3, nil, newRNG(1))
	assert.Equal(t, []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, e.Body())
	assert.Equal(t, DirRight, e.Direction())
	assert.False(t, e.Over())

	// Clamped to the columns left of the head.
	e = NewEngine(4, 4, 10, nil, newRNG(1))
	assert.Len(t, e.Body(), 3)

	e = NewEngine(4, 4, 0, nil, newRNG(1))
	assert.Len(t, e.Body(), 1)
}

func TestEatScenario(t *testing.T) {
	e := NewEngine(10, 10, 1, nil, newRNG(5))
	require.Equal(t, core.Point{X: 5, Y: 5}, e.Head())
	require.True(t, e.PlaceFoodAt(core.Point{X: 6, Y: 5}, config.NormalFood))

	r := e.Step()
	assert.True(t, r.Ate)
	assert.False(t, r.Over)
	assert.Equal(t, core.Point{X: 6, Y: 5}, e.Head())
	assert.Len(t, e.Body(), 1+config.NormalFood.Increment)
	assert.Equal(t, config.NormalFood.Points, e.Score())

	food, ok := e.Food()
	require.True(t, ok)
	assert.NotContains(t, e.Body(), food.Pos)
}

func TestGrowthUsesAbsoluteIncrement(t *testing.T) {
	tests := []struct {
		name string
		food config.Food
		grow int
	}{
		{"normal", config.Food{Name: "normal", Points: 10, Increment: 1}, 1},
		{"big", config.Food{Name: "big", Points: 30, Increment: 3}, 3},
		{"negative", config.Food{Name: "bonus", Points: 50, Increment: -2}, 2},
		{"none", config.Food{Name: "light", Points: 5, Increment: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(20, 20, 3, []config.Food{tt.food}, newRNG(2))
			require.True(t, e.PlaceFoodAt(e.Head().Add(core.Point{X: 1}), tt.food))

			before := len(e.Body())
			r := e.Step()
			require.True(t, r.Ate)
			assert.Equal(t, tt.food, r.Food)
			assert.Equal(t, before+tt.grow, len(e.Body()))
			assert.Equal(t, tt.food.Points, e.Score())
		})
	}
}

func TestStepWithoutFoodKeepsLength(t *testing.T) {
	e := NewEngine(20, 20, 4, nil, newRNG(3))
	require.True(t, e.PlaceFoodAt(core.Point{X: 0, Y: 0}, config.NormalFood))

	for range 5 {
		r := e.Step()
		require.False(t, r.Ate)
		assert.Len(t, e.Body(), 4)
	}
	assert.Equal(t, core.Point{X: 15, Y: 10}, e.Head())
	assert.Equal(t, 0, e.Score())
}

func TestOppositeDirectionRejected(t *testing.T) {
	for _, d := range Directions() {
		e := NewEngine(20, 20, 1, nil, newRNG(4))
		require.True(t, e.PlaceFoodAt(core.Point{X: 0, Y: 0}, config.NormalFood))
		if !e.SetDirection(d) {
			require.True(t, e.SetDirection(DirUp))
			e.Step()
			require.True(t, e.SetDirection(d))
		}
		e.Step()
		require.Equal(t, d, e.Direction())

		assert.False(t, e.SetDirection(d.Opposite()), "reverse of %v", d)
		assert.Equal(t, d, e.Direction())
	}
}

func TestNeckFoldRejected(t *testing.T) {
	e := NewEngine(20, 20, 3, nil, newRNG(4))
	require.True(t, e.SetDirection(DirUp))
	// Still moving right until the next step: left would fold into the neck.
	assert.False(t, e.SetDirection(DirLeft))
	assert.Equal(t, DirUp, e.Direction())
}

func TestWallCollisionEndsSession(t *testing.T) {
	e := NewEngine(10, 10, 1, nil, newRNG(6))
	require.True(t, e.PlaceFoodAt(core.Point{X: 0, Y: 0}, config.NormalFood))

	for range 4 {
		require.False(t, e.Step().Over)
	}
	assert.Equal(t, core.Point{X: 9, Y: 5}, e.Head())
	assert.True(t, e.Step().Over)
	assert.True(t, e.Over())
	assert.False(t, e.SetDirection(DirUp))
}

func TestSelfCollisionEndsSession(t *testing.T) {
	e := NewEngine(10, 10, 5, nil, newRNG(6))
	require.True(t, e.PlaceFoodAt(core.Point{X: 9, Y: 9}, config.NormalFood))

	require.True(t, e.SetDirection(DirUp))
	require.False(t, e.Step().Over)
	require.True(t, e.SetDirection(DirLeft))
	require.False(t, e.Step().Over)
	require.True(t, e.SetDirection(DirDown))

	r := e.Step()
	assert.True(t, r.Over)
	assert.Equal(t, core.Point{X: 4, Y: 4}, e.Head())
}

func TestPlaceFoodNeverOnBody(t *testing.T) {
	foods := []config.Food{config.NormalFood, {Name: BonusFood, Points: 50, Increment: 2}}
	for seed := uint64(1); seed <= 10; seed++ {
		e := NewEngine(5, 5, 3, foods, newRNG(seed))
		for range 200 {
			require.True(t, e.PlaceFood())
			food, ok := e.Food()
			require.True(t, ok)
			assert.NotContains(t, e.Body(), food.Pos)
			assert.Contains(t, foods, food.Kind)
		}
	}
}

func TestPlaceFoodAtRejectsBody(t *testing.T) {
	e := NewEngine(10, 10, 3, nil, newRNG(1))
	assert.False(t, e.PlaceFoodAt(e.Head(), config.NormalFood))
	assert.False(t, e.PlaceFoodAt(core.Point{X: 10, Y: 0}, config.NormalFood))
}

func TestFullBoardHasNoFood(t *testing.T) {
	e := NewEngine(2, 1, 2, nil, newRNG(1))
	_, ok := e.Food()
	assert.False(t, ok)
	assert.True(t, e.Over())
}

func TestSnapshotDeterminism(t *testing.T) {
	run := func() Snapshot {
		e := NewEngine(12, 12, 3, nil, newRNG(77))
		turns := []Direction{DirDown, DirLeft, DirUp, DirRight}
		for i := range 40 {
			if i%3 == 0 {
				e.SetDirection(turns[(i/3)%len(turns)])
			}
			if e.Step().Over {
				break
			}
		}
		return e.Snapshot()
	}
	assert.Equal(t, run(), run())
}
