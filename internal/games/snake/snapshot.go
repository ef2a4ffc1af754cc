package snake

// Snapshot captures the session state for determinism tests.
type Snapshot struct {
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	FoodKind string
	Over     bool
}

// Snapshot returns the current session snapshot. Food coordinates are -1
// when no food is on the board.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Score:    e.score,
		SnakeLen: len(e.body),
		HeadX:    e.body[0].X,
		HeadY:    e.body[0].Y,
		Dir:      e.dir,
		FoodX:    -1,
		FoodY:    -1,
		Over:     e.over,
	}
	if e.food != nil {
		s.FoodX = e.food.Pos.X
		s.FoodY = e.food.Pos.Y
		s.FoodKind = e.food.Kind.Name
	}
	return s
}
