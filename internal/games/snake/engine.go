// Package snake implements the classic snake game: a body that advances one
// cell per step, grows on food and dies on walls or itself.
package snake

import (
	"math/rand/v2"
	"slices"

	"github.com/vovakirdan/mastergame/internal/config"
	"github.com/vovakirdan/mastergame/internal/core"
)

// StepResult describes one Step call.
type StepResult struct {
	Ate  bool
	Food config.Food // the kind eaten, when Ate
	Over bool
}

// Engine holds one Snake session. It is not safe for concurrent use.
type Engine struct {
	width, height int

	body  []core.Point // head at index 0
	dir   Direction    // requested heading
	moved Direction    // heading of the last step
	food  *Food
	foods []config.Food

	score int
	over  bool
	rng   *rand.Rand
}

// NewEngine creates a session on a w×h board. The head starts at the board
// centre heading right, with the rest of the body laid out to its left;
// length is clamped to the columns available.
func NewEngine(w, h, length int, foods []config.Food, rng *rand.Rand) *Engine {
	e := &Engine{
		width:  w,
		height: h,
		dir:    DirRight,
		moved:  DirRight,
		foods:  catalogueOrDefault(foods),
		rng:    rng,
	}

	head := core.Point{X: w / 2, Y: h / 2}
	length = core.Clamp(length, 1, head.X+1)
	e.body = make([]core.Point, 0, length)
	for i := range length {
		e.body = append(e.body, core.Point{X: head.X - i, Y: head.Y})
	}

	if !e.PlaceFood() {
		e.over = true
	}
	return e
}

func (e *Engine) Width() int  { return e.width }
func (e *Engine) Height() int { return e.height }
func (e *Engine) Score() int  { return e.score }
func (e *Engine) Over() bool  { return e.over }

// Direction returns the requested heading.
func (e *Engine) Direction() Direction { return e.dir }

// Head returns the head position.
func (e *Engine) Head() core.Point { return e.body[0] }

// Body returns a copy of the body, head first.
func (e *Engine) Body() []core.Point { return slices.Clone(e.body) }

// Food returns the current food, or false when none is on the board.
func (e *Engine) Food() (Food, bool) {
	if e.food == nil {
		return Food{}, false
	}
	return *e.food, true
}

func (e *Engine) inBounds(p core.Point) bool {
	return core.NewRect(0, 0, e.width, e.height).Contains(p.X, p.Y)
}

func (e *Engine) occupies(p core.Point) bool {
	return slices.Contains(e.body, p)
}

// SetDirection changes the heading unless d reverses it. Both the pending
// heading and the one actually moved in are checked, so two quick turns
// between steps cannot fold the head back into the neck. This is stricter
// than checking the pending heading alone: right, up, left within one step
// rejects the final left. It reports whether d was taken.
func (e *Engine) SetDirection(d Direction) bool {
	if e.over || d == e.dir.Opposite() || d == e.moved.Opposite() {
		return false
	}
	e.dir = d
	return true
}

// Step advances the snake one cell. Leaving the board or entering the body
// ends the session. Eating adds the food's points and grows the body by the
// absolute value of its increment.
func (e *Engine) Step() StepResult {
	if e.over {
		return StepResult{Over: true}
	}

	next := e.body[0].Add(e.dir.Vector())
	if !e.inBounds(next) || e.occupies(next) {
		e.over = true
		return StepResult{Over: true}
	}
	e.moved = e.dir

	e.body = slices.Insert(e.body, 0, next)
	e.body = e.body[:len(e.body)-1]

	if e.food == nil || e.food.Pos != next {
		return StepResult{}
	}

	eaten := e.food.Kind
	e.score += eaten.Points
	tail := e.body[len(e.body)-1]
	for range core.Abs(eaten.Increment) {
		e.body = append(e.body, tail)
	}

	res := StepResult{Ate: true, Food: eaten}
	if !e.PlaceFood() {
		e.over = true
		res.Over = true
	}
	return res
}
