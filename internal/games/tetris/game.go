package tetris

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/mastergame/internal/config"
	"github.com/vovakirdan/mastergame/internal/core"
	"github.com/vovakirdan/mastergame/internal/registry"
)

// RestDuration is how long the rest key suspends the automatic fall.
const RestDuration = 7 * time.Second

const blockGlyph = '█'

var keyMap = core.KeyMap{
	{Keys: []string{"1"}, Action: core.ActionLeft, Help: "left"},
	{Keys: []string{"2"}, Action: core.ActionDown, Help: "down"},
	{Keys: []string{"3"}, Action: core.ActionRight, Help: "right"},
	{Keys: []string{"4"}, Action: core.ActionRest, Help: "rest 7s"},
	{Keys: []string{"5"}, Action: core.ActionHardDrop, Help: "drop"},
	{Keys: []string{"6"}, Action: core.ActionPower, Help: "power"},
	{Keys: []string{"7"}, Action: core.ActionRotate, Help: "rotate"},
	{Keys: []string{"0"}, Action: core.ActionQuit, Help: "quit"},
}

// stepOrder fixes the order actions of one frame are applied in.
var stepOrder = []core.Action{
	core.ActionRest,
	core.ActionPower,
	core.ActionRotate,
	core.ActionLeft,
	core.ActionRight,
	core.ActionDown,
	core.ActionHardDrop,
}

// Game adapts the engine to the registry.
type Game struct {
	cfg    config.Game
	engine *Engine
}

// New creates a Tetris game for cfg; zero fields take the defaults.
func New(cfg config.Game) *Game {
	g := &Game{cfg: cfg.WithDefaults(config.DefaultTetris())}
	g.Reset(core.RuntimeConfig{})
	return g
}

func init() {
	registry.Register(config.Tetris, "Tetris", func(cfg config.Game) registry.Game {
		return New(cfg)
	})
}

func (g *Game) ID() string    { return config.Tetris }
func (g *Game) Title() string { return "Tetris" }

// Engine exposes the underlying session, mostly for tests.
func (g *Game) Engine() *Engine { return g.engine }

// Reset starts a new session with an empty board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := uint64(cfg.Seed)
	g.engine = NewEngine(g.cfg.Width, g.cfg.Height, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (g *Game) TickInterval() time.Duration {
	return g.cfg.FallInterval()
}

func (g *Game) KeyMap() core.KeyMap { return keyMap }

func (g *Game) State() core.GameState {
	return core.GameState{Score: g.engine.Score(), GameOver: g.engine.Over()}
}

// Tick performs the automatic fall.
func (g *Game) Tick() core.StepResult {
	res := core.StepResult{}
	if !g.engine.Over() {
		g.applyMove(&res, g.engine.TryMove(0, 1))
	}
	res.State = g.State()
	return res
}

// Step applies the key actions of one frame. Every handled key raises
// EventKey.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	for _, a := range stepOrder {
		if g.engine.Over() {
			break
		}
		if !in.Has(a) {
			continue
		}
		res.Events = append(res.Events, core.EventKey)
		g.apply(&res, a)
	}
	res.State = g.State()
	return res
}

func (g *Game) apply(res *core.StepResult, a core.Action) {
	switch a {
	case core.ActionLeft:
		g.engine.TryMove(-1, 0)
	case core.ActionRight:
		g.engine.TryMove(1, 0)
	case core.ActionDown:
		g.applyMove(res, g.engine.TryMove(0, 1))
	case core.ActionRotate:
		g.engine.Rotate()
	case core.ActionHardDrop:
		g.applyLock(res, g.engine.HardDrop())
	case core.ActionRest:
		res.Rest = RestDuration
		res.Message = fmt.Sprintf("Resting for %ds...", int(RestDuration/time.Second))
	case core.ActionPower:
		switch g.engine.ActivatePower() {
		case PowerActivated:
			res.Events = append(res.Events, core.EventPower)
			res.Message = "Power activated! Board cleared."
		case PowerAlreadyUsed:
			res.Message = "Power already used."
		case PowerInsufficientScore:
			res.Message = fmt.Sprintf("Insufficient score (minimum %d).", PowerThreshold)
		}
	}
}

func (g *Game) applyMove(res *core.StepResult, m MoveResult) {
	if m.Locked {
		g.applyLock(res, m.Lock)
	}
}

func (g *Game) applyLock(res *core.StepResult, l LockResult) {
	res.Events = append(res.Events, core.EventLock)
	if l.Cleared > 0 {
		res.Events = append(res.Events, core.EventLineClear)
		res.Message = fmt.Sprintf("%d row(s) cleared!", l.Cleared)
	}
	if l.Outcome == GameOver {
		res.Events = append(res.Events, core.EventGameOver)
		res.Message = "Game over! The board is full."
	}
}

// Frame draws locked cells in their piece colors with the active piece on top.
func (g *Game) Frame() core.Frame {
	b := g.engine.Board()
	f := core.NewFrame(b.Width(), b.Height())
	f.Title = g.cfg.Name
	f.Score = g.engine.Score()
	f.Wide = true
	f.Over = g.engine.Over()
	f.Legend = keyMap.Legend()

	for y := range b.Height() {
		for x := range b.Width() {
			if b.Occupied(x, y) {
				f.Set(x, y, blockGlyph, b.At(x, y))
			}
		}
	}
	if !f.Over {
		p := g.engine.Piece()
		for _, c := range p.Cells() {
			f.Set(c.X, c.Y, blockGlyph, p.Color)
		}
	}
	return f
}
