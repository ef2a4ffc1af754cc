package gui

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mastergame/internal/config"
	"github.com/vovakirdan/mastergame/internal/core"
	"github.com/vovakirdan/mastergame/internal/games/snake"
	"github.com/vovakirdan/mastergame/internal/games/tetris"
	"github.com/vovakirdan/mastergame/internal/platform"
	"github.com/vovakirdan/mastergame/internal/registry"
	"github.com/vovakirdan/mastergame/internal/session"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
		ok   bool
	}{
		{ebiten.KeyW, "w", true},
		{ebiten.KeyQ, "q", true},
		{ebiten.KeyDigit1, "1", true},
		{ebiten.KeyDigit0, "0", true},
		{ebiten.KeyNumpad7, "7", true},
		{ebiten.KeyArrowUp, "up", true},
		{ebiten.KeyArrowLeft, "left", true},
		{ebiten.KeyEnter, "enter", true},
		{ebiten.KeyEscape, "esc", true},
		{ebiten.KeySpace, " ", true},
		{ebiten.KeyF1, "", false},
		{ebiten.KeyShiftLeft, "", false},
	}
	for _, tt := range tests {
		got, ok := KeyName(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key.String())
		assert.Equal(t, tt.want, got, tt.key.String())
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newApp(t *testing.T, build func(id string) registry.Game) (*App, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prepare := func(id string) (registry.Game, error) {
		return build(id), nil
	}
	a := NewApp(platform.Options{Session: session.Options{Seed: 3}}, prepare, nil)
	a.now = clock.now
	return a, clock
}

func smallTetris(string) registry.Game {
	return tetris.New(config.Game{Name: "Tetris", Width: 3, Height: 4})
}

func fullTetris(string) registry.Game {
	return tetris.New(config.DefaultTetris())
}

func TestMenuExit(t *testing.T) {
	a, _ := newApp(t, smallTetris)
	assert.ErrorIs(t, a.handle([]string{"3"}), ebiten.Termination)

	a, _ = newApp(t, smallTetris)
	assert.ErrorIs(t, a.handle([]string{"esc"}), ebiten.Termination)
}

func TestMenuIgnoresOtherKeys(t *testing.T) {
	a, _ := newApp(t, smallTetris)
	require.NoError(t, a.handle([]string{"x", "9", "enter"}))
	assert.Equal(t, modeMenu, a.mode)
}

func TestPlayAndQuit(t *testing.T) {
	a, _ := newApp(t, fullTetris)
	require.NoError(t, a.handle([]string{"1"}))
	require.Equal(t, modePlay, a.mode)

	require.NoError(t, a.handle([]string{"0"}))
	assert.Equal(t, modeMenu, a.mode)
	res, ok := a.Last()
	require.True(t, ok)
	assert.Equal(t, session.ReasonQuit, res.Reason)
	assert.Equal(t, config.Tetris, res.Game)
}

func TestGameOverShowsSummary(t *testing.T) {
	a, _ := newApp(t, smallTetris)
	require.NoError(t, a.handle([]string{"1"}))

	for i := 0; i < 200 && a.mode == modePlay; i++ {
		require.NoError(t, a.handle([]string{"5"}))
	}
	require.Equal(t, modeSummary, a.mode)
	res, ok := a.Last()
	require.True(t, ok)
	assert.Equal(t, session.ReasonOver, res.Reason)

	require.NoError(t, a.handle([]string{"x"}))
	assert.Equal(t, modeSummary, a.mode)
	require.NoError(t, a.handle([]string{"enter"}))
	assert.Equal(t, modeMenu, a.mode)
}

func TestTicksFollowClock(t *testing.T) {
	a, clock := newApp(t, func(string) registry.Game {
		return snake.New(config.Game{Name: "Snake", Width: 20, Height: 20, Speed: 5})
	})
	require.NoError(t, a.handle([]string{"2"}))
	engine := a.session.Game().(*snake.Game).Engine()
	head := engine.Head()

	clock.t = clock.t.Add(199 * time.Millisecond)
	require.NoError(t, a.handle(nil))
	assert.Equal(t, head, engine.Head())

	clock.t = clock.t.Add(time.Millisecond)
	require.NoError(t, a.handle(nil))
	assert.Equal(t, head.X+1, engine.Head().X)
}

func TestPrepareFailureSetsNotice(t *testing.T) {
	a := NewApp(platform.Options{}, func(string) (registry.Game, error) {
		return nil, errors.New("broken file")
	}, nil)
	require.NoError(t, a.handle([]string{"2"}))
	assert.Equal(t, modeMenu, a.mode)
	assert.Contains(t, a.notice, "broken file")
}

func TestCellSize(t *testing.T) {
	f := core.NewFrame(8, 12)
	assert.Equal(t, maxCell, cellSize(f, 2000, 2000))
	assert.Equal(t, minCell, cellSize(f, 10, 10))
	assert.Equal(t, (400-2*margin-4*lineHeight)/12, cellSize(f, 2000, 400))
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, palette[core.ColorRed], RGBA(core.ColorRed))
	assert.Equal(t, palette[core.ColorDefault], RGBA(core.Color(200)))
}

func TestSinglePlayTerminates(t *testing.T) {
	a, _ := newApp(t, fullTetris)
	a.Play(fullTetris(""))
	require.Equal(t, modePlay, a.mode)
	require.NoError(t, a.handle(nil))

	assert.ErrorIs(t, a.handle([]string{"0"}), ebiten.Termination)
	res, ok := a.Last()
	require.True(t, ok)
	assert.Equal(t, session.ReasonQuit, res.Reason)
}

func TestQuitConsumesFrame(t *testing.T) {
	a, _ := newApp(t, fullTetris)
	require.NoError(t, a.handle([]string{"1"}))
	first := a.session

	require.NoError(t, a.handle([]string{"0", "1"}))
	assert.Equal(t, modeMenu, a.mode)
	assert.Same(t, first, a.session)
}

func TestGameOverConsumesFrame(t *testing.T) {
	a, _ := newApp(t, smallTetris)
	require.NoError(t, a.handle([]string{"1"}))

	// The drop that ends the game shares its frame with an enter press.
	for i := 0; i < 200 && a.mode == modePlay; i++ {
		require.NoError(t, a.handle([]string{"5", "enter"}))
	}
	assert.Equal(t, modeSummary, a.mode)
}

func TestSelectionConsumesFrame(t *testing.T) {
	a, _ := newApp(t, fullTetris)
	require.NoError(t, a.handle([]string{"1", "0"}))
	assert.Equal(t, modePlay, a.mode)
	assert.False(t, a.session.Done())
}
