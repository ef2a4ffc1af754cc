// Package session runs one game: it owns the automatic tick, dispatches
// keys through the game's key map, handles rest requests and status
// banners, and reports the final result to the caller.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mastergame/internal/core"
	"github.com/vovakirdan/mastergame/internal/registry"
	"github.com/vovakirdan/mastergame/internal/sched"
	"github.com/vovakirdan/mastergame/internal/sound"
)

// StatusDuration is how long a status message stays on screen.
const StatusDuration = 2 * time.Second

// Reason tells why a session ended.
type Reason string

const (
	ReasonQuit Reason = "quit"
	ReasonOver Reason = "over"
)

// Result is handed back to the caller when a session ends.
type Result struct {
	ID       string
	Game     string
	Score    int
	Reason   Reason
	Duration time.Duration
}

// Options tune a session. Zero values pick sensible defaults.
type Options struct {
	Seed   int64 // 0 seeds from the clock
	Sound  sound.Player
	Logger *log.Logger
	Now    func() time.Time
}

// Session drives one game on a scheduler. All methods must be called from
// the goroutine that drives the scheduler.
type Session struct {
	id     string
	game   registry.Game
	sched  sched.Scheduler
	sound  sound.Player
	logger *log.Logger
	now    func() time.Time
	seed   int64

	fall       sched.Task
	resume     sched.Task
	statusTask sched.Task
	status     string

	started  time.Time
	finished bool
	result   Result
}

// New prepares a session; Start begins play.
func New(game registry.Game, s sched.Scheduler, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Seed == 0 {
		opts.Seed = opts.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	id := uuid.NewString()
	return &Session{
		id:     id,
		game:   game,
		sched:  s,
		sound:  opts.Sound,
		logger: opts.Logger.With("session", id, "game", game.ID()),
		now:    opts.Now,
		seed:   opts.Seed,
	}
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Game returns the game being played.
func (s *Session) Game() registry.Game { return s.game }

// Start resets the game and schedules the automatic tick.
func (s *Session) Start() {
	s.started = s.now()
	s.game.Reset(core.RuntimeConfig{Seed: s.seed})
	s.logger.Info("session started", "seed", s.seed, "tick", s.game.TickInterval())

	if s.game.State().GameOver {
		s.finish(ReasonOver)
		return
	}
	s.fall = s.sched.Every(s.game.TickInterval(), s.tick)
}

func (s *Session) tick() {
	if s.finished {
		return
	}
	s.apply(s.game.Tick())
}

// HandleKey dispatches one key press. It reports whether the key was bound
// to an action. Ctrl+C always quits.
func (s *Session) HandleKey(key string) bool {
	if s.finished {
		return false
	}
	if key == "ctrl+c" {
		s.finish(ReasonQuit)
		return true
	}

	action, ok := s.game.KeyMap().Lookup(key)
	if !ok {
		return false
	}
	if action == core.ActionQuit {
		s.finish(ReasonQuit)
		return true
	}
	s.apply(s.game.Step(core.FrameOf(action)))
	return true
}

func (s *Session) apply(res core.StepResult) {
	for _, ev := range res.Events {
		s.logger.Debug("event", "event", eventName(ev), "score", res.State.Score)
		s.sound.Play(ev)
	}
	if res.Message != "" {
		s.setStatus(res.Message)
	}
	if res.Rest > 0 {
		s.rest(res.Rest)
	}
	if res.State.GameOver {
		s.finish(ReasonOver)
	}
}

// rest suspends the automatic tick for d and then resumes it once.
// Requests made while resting are ignored.
func (s *Session) rest(d time.Duration) {
	if s.resume != nil {
		s.logger.Debug("rest ignored, already resting")
		return
	}
	if s.fall != nil {
		s.fall.Cancel()
		s.fall = nil
	}
	s.logger.Info("resting", "for", d)
	s.resume = s.sched.After(d, func() {
		s.resume = nil
		if s.finished {
			return
		}
		s.logger.Info("resumed")
		s.fall = s.sched.Every(s.game.TickInterval(), s.tick)
	})
}

// Resting reports whether the automatic tick is suspended.
func (s *Session) Resting() bool {
	return s.resume != nil
}

func (s *Session) setStatus(msg string) {
	s.status = msg
	if s.statusTask != nil {
		s.statusTask.Cancel()
	}
	s.statusTask = s.sched.After(StatusDuration, func() {
		s.status = ""
		s.statusTask = nil
	})
}

// Status returns the current status banner, possibly empty.
func (s *Session) Status() string {
	return s.status
}

func (s *Session) finish(reason Reason) {
	if s.finished {
		return
	}
	s.finished = true

	for _, t := range []sched.Task{s.fall, s.resume, s.statusTask} {
		if t != nil {
			t.Cancel()
		}
	}
	s.fall, s.resume, s.statusTask = nil, nil, nil

	s.result = Result{
		ID:       s.id,
		Game:     s.game.ID(),
		Score:    s.game.State().Score,
		Reason:   reason,
		Duration: s.now().Sub(s.started),
	}
	s.logger.Info("session ended", "reason", reason, "score", s.result.Score, "duration", s.result.Duration)
}

// Done reports whether the session has ended.
func (s *Session) Done() bool {
	return s.finished
}

// Result returns the outcome. It is meaningful once Done is true.
func (s *Session) Result() Result {
	return s.result
}

// Frame returns the game's frame with the session status attached.
func (s *Session) Frame() core.Frame {
	f := s.game.Frame()
	f.Status = s.status
	return f
}

func eventName(ev core.Event) string {
	switch ev {
	case core.EventKey:
		return "key"
	case core.EventEat:
		return "eat"
	case core.EventLock:
		return "lock"
	case core.EventLineClear:
		return "line_clear"
	case core.EventPower:
		return "power"
	case core.EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
