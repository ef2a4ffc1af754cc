// Package tetris implements the falling-block game: a board of locked
// cells, one active piece, line clears and a one-shot board-clear power.
package tetris

import (
	"math/rand/v2"

	"github.com/vovakirdan/mastergame/internal/grid"
)

// Scoring and power constants.
const (
	LockPoints     = 50
	LinePoints     = 100
	PowerThreshold = 1000
)

// kicks are the column offsets tried in order when a rotation collides.
var kicks = []int{0, -1, 1}

// LockOutcome is what follows a lock: exactly one of a new piece or the end.
type LockOutcome int

const (
	Spawned LockOutcome = iota + 1
	GameOver
)

// LockResult describes one lock.
type LockResult struct {
	Cleared int
	Outcome LockOutcome
}

// MoveResult describes one tryMove call. A blocked downward move locks.
type MoveResult struct {
	Moved  bool
	Locked bool
	Lock   LockResult
}

// PowerResult reports an activatePower attempt.
type PowerResult int

const (
	PowerActivated PowerResult = iota + 1
	PowerAlreadyUsed
	PowerInsufficientScore
)

// Engine holds one Tetris session. It is not safe for concurrent use;
// a session is driven by a single loop.
type Engine struct {
	board     *grid.Board
	piece     Piece
	score     int
	powerUsed bool
	over      bool
	rng       *rand.Rand
}

// NewEngine creates a session on a w×h board and spawns the first piece.
func NewEngine(w, h int, rng *rand.Rand) *Engine {
	e := &Engine{
		board: grid.New(w, h),
		rng:   rng,
	}
	e.Spawn()
	return e
}

// Board exposes the locked cells. Callers must not modify it.
func (e *Engine) Board() *grid.Board { return e.board }

// Piece returns a copy of the active piece.
func (e *Engine) Piece() Piece {
	p := e.piece
	p.Shape = p.Shape.Clone()
	return p
}

func (e *Engine) Score() int      { return e.score }
func (e *Engine) Over() bool      { return e.over }
func (e *Engine) PowerUsed() bool { return e.powerUsed }

// Spawn places a uniformly random tetromino at row 0 with a random column
// that keeps the whole matrix inside the board. A spawn that overlaps locked
// cells ends the session; Spawn then returns false.
func (e *Engine) Spawn() bool {
	k := Kinds()[e.rng.IntN(int(kindCount))]
	span := e.board.Width() - ShapeOf(k).Width() + 1
	x := 0
	if span > 1 {
		x = e.rng.IntN(span)
	}
	return e.Place(k, x)
}

// Place makes a fresh piece of kind k the active piece at (x, 0).
func (e *Engine) Place(k Kind, x int) bool {
	e.piece = Piece{Kind: k, Shape: ShapeOf(k), X: x, Y: 0, Color: ColorOf(k)}
	if !e.fits(e.piece.Shape, e.piece.X, e.piece.Y) {
		e.over = true
		return false
	}
	return true
}

func (e *Engine) fits(s Shape, ax, ay int) bool {
	for _, c := range s.Cells() {
		x, y := ax+c.X, ay+c.Y
		if !e.board.InBounds(x, y) || e.board.Occupied(x, y) {
			return false
		}
	}
	return true
}

// TryMove shifts the piece by (dx, dy). A rejected horizontal move is
// ignored; a rejected downward move locks the piece.
func (e *Engine) TryMove(dx, dy int) MoveResult {
	if e.over {
		return MoveResult{}
	}
	if e.fits(e.piece.Shape, e.piece.X+dx, e.piece.Y+dy) {
		e.piece.X += dx
		e.piece.Y += dy
		return MoveResult{Moved: true}
	}
	if dy > 0 {
		return MoveResult{Locked: true, Lock: e.Lock()}
	}
	return MoveResult{}
}

// Rotate turns the piece clockwise, shifting it one column left or right
// when the turn collides in place. It reports whether the piece rotated.
func (e *Engine) Rotate() bool {
	if e.over {
		return false
	}
	r := Rotate(e.piece.Shape)
	for _, dx := range kicks {
		if e.fits(r, e.piece.X+dx, e.piece.Y) {
			e.piece.Shape = r
			e.piece.X += dx
			return true
		}
	}
	return false
}

// Lock merges the piece into the board, clears full rows and then either
// ends the session (row 0 occupied) or awards the lock bonus and spawns.
func (e *Engine) Lock() LockResult {
	for _, c := range e.piece.Cells() {
		e.board.Set(c.X, c.Y, e.piece.Color)
	}
	cleared := e.ClearLines()

	if e.board.RowOccupied(0) {
		e.over = true
		return LockResult{Cleared: cleared, Outcome: GameOver}
	}
	e.score += LockPoints
	if !e.Spawn() {
		return LockResult{Cleared: cleared, Outcome: GameOver}
	}
	return LockResult{Cleared: cleared, Outcome: Spawned}
}

// ClearLines removes full rows and scores them.
func (e *Engine) ClearLines() int {
	n := e.board.ClearFullRows()
	e.score += n * LinePoints
	return n
}

// HardDrop moves the piece down until it locks.
func (e *Engine) HardDrop() LockResult {
	for !e.over {
		if r := e.TryMove(0, 1); r.Locked {
			return r.Lock
		}
	}
	return LockResult{Outcome: GameOver}
}

// ActivatePower clears the whole board once per session when the score has
// reached PowerThreshold.
func (e *Engine) ActivatePower() PowerResult {
	switch {
	case e.powerUsed:
		return PowerAlreadyUsed
	case e.score < PowerThreshold:
		return PowerInsufficientScore
	}
	e.board.Reset()
	e.powerUsed = true
	return PowerActivated
}
