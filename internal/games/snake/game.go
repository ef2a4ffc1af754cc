package snake

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/mastergame/internal/config"
	"github.com/vovakirdan/mastergame/internal/core"
	"github.com/vovakirdan/mastergame/internal/registry"
)

const (
	headGlyph  = '@'
	bodyGlyph  = 'O'
	foodGlyph  = '*'
	bonusGlyph = '+'
)

var brighter = map[core.Color]core.Color{
	core.ColorRed:     core.ColorBrightRed,
	core.ColorGreen:   core.ColorBrightGreen,
	core.ColorYellow:  core.ColorBrightYellow,
	core.ColorBlue:    core.ColorBrightBlue,
	core.ColorMagenta: core.ColorBrightMagenta,
	core.ColorCyan:    core.ColorBrightCyan,
	core.ColorWhite:   core.ColorBrightWhite,
}

// Game adapts the engine to the registry.
type Game struct {
	cfg    config.Game
	engine *Engine
	keys   core.KeyMap
	color  core.Color
}

// New creates a Snake game for cfg; zero fields take the defaults.
func New(cfg config.Game) *Game {
	cfg = cfg.WithDefaults(config.DefaultSnake())
	g := &Game{
		cfg:   cfg,
		keys:  keyMapFor(*cfg.Controls),
		color: core.ColorByName(cfg.SnakeColor, core.ColorGreen),
	}
	g.Reset(core.RuntimeConfig{})
	return g
}

func init() {
	registry.Register(config.Snake, "Snake", func(cfg config.Game) registry.Game {
		return New(cfg)
	})
}

// keyMapFor binds the configured keys and the arrows to the four headings.
func keyMapFor(c config.Controls) core.KeyMap {
	return core.KeyMap{
		{Keys: []string{c.Up, "up"}, Action: core.ActionUp, Help: "up"},
		{Keys: []string{c.Left, "left"}, Action: core.ActionLeft, Help: "left"},
		{Keys: []string{c.Down, "down"}, Action: core.ActionDown, Help: "down"},
		{Keys: []string{c.Right, "right"}, Action: core.ActionRight, Help: "right"},
		{Keys: []string{"q"}, Action: core.ActionQuit, Help: "quit"},
	}
}

func (g *Game) ID() string    { return config.Snake }
func (g *Game) Title() string { return "Snake" }

// Engine exposes the underlying session, mostly for tests.
func (g *Game) Engine() *Engine { return g.engine }

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := uint64(cfg.Seed)
	rng := rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d))
	g.engine = NewEngine(g.cfg.Width, g.cfg.Height, g.cfg.InitialLength, g.cfg.Foods, rng)
}

func (g *Game) TickInterval() time.Duration {
	return g.cfg.StepInterval()
}

func (g *Game) KeyMap() core.KeyMap { return g.keys }

func (g *Game) State() core.GameState {
	return core.GameState{Score: g.engine.Score(), GameOver: g.engine.Over()}
}

// Tick moves the snake one cell.
func (g *Game) Tick() core.StepResult {
	res := core.StepResult{}
	if !g.engine.Over() {
		r := g.engine.Step()
		if r.Ate {
			res.Events = append(res.Events, core.EventEat)
		}
		if r.Over {
			res.Events = append(res.Events, core.EventGameOver)
			res.Message = "Game over!"
		}
	}
	res.State = g.State()
	return res
}

// Step applies the heading changes of one frame in a fixed order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if d, ok := directionOf(a); ok && in.Has(a) {
			g.engine.SetDirection(d)
		}
	}
	return core.StepResult{State: g.State()}
}

// Frame draws the body in the snake color with a brighter head, and the food.
func (g *Game) Frame() core.Frame {
	e := g.engine
	f := core.NewFrame(e.Width(), e.Height())
	f.Title = g.cfg.Name
	f.Score = e.Score()
	f.Over = e.Over()
	f.Legend = g.keys.Legend()

	if food, ok := e.Food(); ok {
		glyph := foodGlyph
		if food.Kind.Name == BonusFood {
			glyph = bonusGlyph
		}
		f.Set(food.Pos.X, food.Pos.Y, glyph, core.ColorRed)
	}

	body := e.Body()
	for i := len(body) - 1; i > 0; i-- {
		f.Set(body[i].X, body[i].Y, bodyGlyph, g.color)
	}
	head := g.color
	if c, ok := brighter[g.color]; ok {
		head = c
	}
	f.Set(body[0].X, body[0].Y, headGlyph, head)
	return f
}
