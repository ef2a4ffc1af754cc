package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Seed int64 // RNG seed; 0 means the platform layer picks one from the clock
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session reached a terminal state
}

// Event is a fire-and-forget notification raised by an engine step.
// Front ends may turn events into sounds; engines never wait on them.
type Event int

const (
	EventKey       Event = iota + 1 // a game key was handled
	EventEat                        // the snake ate food
	EventLock                       // a tetromino locked
	EventLineClear                  // one or more rows were cleared
	EventPower                      // the board-clear power fired
	EventGameOver                   // the session ended
)

// StepResult is returned by Game.Step() and Game.Tick().
type StepResult struct {
	State   GameState
	Events  []Event
	Message string        // short status line for the player, may be empty
	Rest    time.Duration // >0 asks the loop to suspend automatic ticks
}
