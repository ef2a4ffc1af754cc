package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mastergame/internal/config"
	"github.com/vovakirdan/mastergame/internal/games/snake"
	"github.com/vovakirdan/mastergame/internal/games/tetris"
	"github.com/vovakirdan/mastergame/internal/platform"
	"github.com/vovakirdan/mastergame/internal/session"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuDigitSelects(t *testing.T) {
	m := NewMenuModel(nil, "")
	next, cmd := m.Update(runeKey("2"))
	require.NotNil(t, cmd, "a digit should quit the menu")
	sel := next.(MenuModel).Selected()
	require.NotNil(t, sel)
	assert.Equal(t, config.Snake, sel.GameID)
}

func TestMenuNavigate(t *testing.T) {
	var model tea.Model = NewMenuModel(nil, "")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	sel := model.(MenuModel).Selected()
	require.NotNil(t, sel)
	assert.Empty(t, sel.GameID)
	assert.Equal(t, "Exit", sel.Label)
}

func TestMenuShowsLastResult(t *testing.T) {
	last := &session.Result{Game: config.Tetris, Score: 350, Reason: session.ReasonOver}
	view := NewMenuModel(last, "config: bad file").View()
	assert.Contains(t, view, "Final score: 350")
	assert.Contains(t, view, "config: bad file")
}

func TestModelTickAndQuit(t *testing.T) {
	g := tetris.New(config.DefaultTetris())
	m := NewModel(g, platform.Options{FPS: 30, Session: session.Options{Seed: 5}})

	next, cmd := m.Update(TickMsg(time.Now().Add(600 * time.Millisecond)))
	assert.NotNil(t, cmd, "tick should schedule the next tick")
	m = next.(Model)
	assert.Equal(t, 1, g.Engine().Piece().Y, "one fall interval drops the piece a row")
	assert.Contains(t, m.View(), "Score: 0")

	next, cmd = m.Update(runeKey("0"))
	m = next.(Model)
	require.True(t, m.Session().Done(), "0 should end the session")
	require.NotNil(t, cmd)
	assert.Equal(t, session.ReasonQuit, m.Session().Result().Reason)
}

func TestModelSummaryAfterGameOver(t *testing.T) {
	g := tetris.New(config.Game{Name: "Tetris", Width: 3, Height: 4})
	m := NewModel(g, platform.Options{FPS: 30, Session: session.Options{Seed: 5}})
	require.True(t, g.Engine().Place(tetris.KindI, 0))

	next, cmd := m.Update(runeKey("5"))
	m = next.(Model)
	assert.Nil(t, cmd, "game over should wait for a key before leaving")
	assert.Contains(t, m.View(), "Game over!")

	_, cmd = m.Update(runeKey("x"))
	assert.NotNil(t, cmd, "any key should leave the summary")
}

func TestHelpBindings(t *testing.T) {
	b := helpBindings(snake.New(config.DefaultSnake()).KeyMap())
	require.Len(t, b, 5)
	h := b[0].Help()
	assert.Equal(t, "w/up", h.Key)
	assert.Equal(t, "up", h.Desc)
}
