// Package gui is the ebiten front end: a pixel window holding the main
// menu, the game board drawn as colored cells, and a summary panel when a
// game ends.
package gui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/mastergame/internal/platform"
	"github.com/vovakirdan/mastergame/internal/registry"
	"github.com/vovakirdan/mastergame/internal/sched"
	"github.com/vovakirdan/mastergame/internal/session"
)

// Window defaults.
const (
	WindowWidth  = 960
	WindowHeight = 720
	WindowTitle  = "Master Game"
)

type mode int

const (
	modeMenu mode = iota
	modePlay
	modeSummary
)

// App implements ebiten.Game.
type App struct {
	opts    platform.Options
	prepare func(id string) (registry.Game, error)
	logger  *log.Logger
	now     func() time.Time

	mode    mode
	session *session.Session
	pacer   *sched.Pacer
	last    *session.Result
	notice  string
	single  bool

	keyBuf []ebiten.Key
}

// NewApp creates the window state. prepare builds the game behind a menu
// choice, typically platform.Prepare bound to the config directory.
func NewApp(opts platform.Options, prepare func(id string) (registry.Game, error), logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{
		opts:    opts,
		prepare: prepare,
		logger:  logger,
		now:     time.Now,
	}
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	var keys []string
	keys, a.keyBuf = pressedKeys(a.keyBuf)
	return a.handle(keys)
}

// handle applies the keys of one update and advances the running session.
// A key that changes the mode consumes the rest of the frame's keys.
func (a *App) handle(keys []string) error {
	for _, k := range keys {
		before := a.mode
		switch a.mode {
		case modeMenu:
			if err := a.menuKey(k); err != nil {
				return err
			}
		case modePlay:
			a.session.HandleKey(k)
			if a.session.Done() {
				a.end()
			}
		case modeSummary:
			if k == "enter" || k == "esc" {
				a.mode = modeMenu
			}
		}
		if a.mode != before {
			break
		}
	}

	if a.mode == modePlay {
		a.pacer.Sync(a.now())
		if a.session.Done() {
			a.end()
		}
	}
	if a.single && a.mode == modeMenu {
		return ebiten.Termination
	}
	return nil
}

func (a *App) menuKey(k string) error {
	if k == "q" || k == "esc" || k == "ctrl+c" {
		return ebiten.Termination
	}
	c, ok := platform.ChoiceFor(k)
	if !ok {
		return nil
	}
	if c.GameID == "" {
		return ebiten.Termination
	}
	a.start(c)
	return nil
}

func (a *App) start(c platform.Choice) {
	game, err := a.prepare(c.GameID)
	if err != nil {
		a.logger.Warn("cannot start game", "game", c.GameID, "err", err)
		a.notice = fmt.Sprintf("%s: %v", c.Label, err)
		return
	}
	a.play(game)
}

// Play skips the menu: the window runs game and closes once the player
// leaves it.
func (a *App) Play(game registry.Game) {
	a.single = true
	a.play(game)
}

func (a *App) play(game registry.Game) {
	clock := sched.NewManual()
	opts := a.opts.Session
	if opts.Now == nil {
		opts.Now = a.now
	}
	a.session = session.New(game, clock, opts)
	a.session.Start()
	a.pacer = sched.NewPacer(clock, a.now())
	a.notice = ""
	a.mode = modePlay
	if a.session.Done() {
		a.end()
	}
}

// end records the result. A quit goes straight back to the menu, a lost
// game shows the summary first.
func (a *App) end() {
	res := a.session.Result()
	a.last = &res
	if res.Reason == session.ReasonOver {
		a.mode = modeSummary
		return
	}
	a.mode = modeMenu
}

// Last returns the result of the most recent game, if any.
func (a *App) Last() (session.Result, bool) {
	if a.last == nil {
		return session.Result{}, false
	}
	return *a.last, true
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the player exits.
func Run(app *App) error {
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if app.opts.FPS > 0 {
		ebiten.SetTPS(app.opts.FPS)
	}
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
