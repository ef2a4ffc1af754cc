package snake

import (
	"github.com/vovakirdan/mastergame/internal/config"
	"github.com/vovakirdan/mastergame/internal/core"
)

// BonusFood is the catalogue name drawn with the bonus glyph.
const BonusFood = "bonus"

// Food is the single food item on the board.
type Food struct {
	Pos  core.Point
	Kind config.Food
}

// catalogueOrDefault falls back to the normal food when none is configured.
func catalogueOrDefault(foods []config.Food) []config.Food {
	if len(foods) == 0 {
		return []config.Food{config.NormalFood}
	}
	return append([]config.Food(nil), foods...)
}

// PlaceFood picks a kind uniformly from the catalogue and a free cell
// uniformly from the board. It reports false, leaving no food, when the
// body covers every cell.
func (e *Engine) PlaceFood() bool {
	kind := e.foods[e.rng.IntN(len(e.foods))]

	// Random probing finds a free cell quickly on sparse boards.
	for range 4 * e.width * e.height {
		p := core.Point{X: e.rng.IntN(e.width), Y: e.rng.IntN(e.height)}
		if !e.occupies(p) {
			e.food = &Food{Pos: p, Kind: kind}
			return true
		}
	}

	var free []core.Point
	for y := range e.height {
		for x := range e.width {
			if p := (core.Point{X: x, Y: y}); !e.occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		e.food = nil
		return false
	}
	e.food = &Food{Pos: free[e.rng.IntN(len(free))], Kind: kind}
	return true
}

// PlaceFoodAt puts food of the given kind at p. It reports false when p is
// outside the board or on the body.
func (e *Engine) PlaceFoodAt(p core.Point, kind config.Food) bool {
	if !e.inBounds(p) || e.occupies(p) {
		return false
	}
	e.food = &Food{Pos: p, Kind: kind}
	return true
}
