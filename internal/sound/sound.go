// Package sound plays short effects for game events. Sound is optional:
// any failure leaves a silent player and the game carries on.
package sound

import "github.com/vovakirdan/mastergame/internal/core"

// Player reacts to game events. Play must not block.
type Player interface {
	Play(ev core.Event)
}

// Nop is the silent player.
type Nop struct{}

func (Nop) Play(core.Event) {}

// Recorder remembers every event it is asked to play.
type Recorder struct {
	Events []core.Event
}

func (r *Recorder) Play(ev core.Event) {
	r.Events = append(r.Events, ev)
}

// Files maps events to effect file names inside a sound directory.
var Files = map[core.Event]string{
	core.EventKey:       "click.wav",
	core.EventEat:       "eat.wav",
	core.EventLineClear: "clear.wav",
	core.EventGameOver:  "gameover.wav",
}
