package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mastergame/internal/platform"
	"github.com/vovakirdan/mastergame/internal/registry"
	"github.com/vovakirdan/mastergame/internal/render"
	"github.com/vovakirdan/mastergame/internal/sched"
	"github.com/vovakirdan/mastergame/internal/session"
)

// Model is the Bubble Tea model for one game session.
// Tick messages move the session's manual scheduler to wall time, so every
// game callback runs inside Update.
type Model struct {
	session *session.Session
	clock   *sched.Manual
	pacer   *sched.Pacer
	fps     int
	help    help.Model
	keys    bindingHelp
	theme   Theme
	width   int
	height  int
}

// NewModel creates a model and starts the session.
func NewModel(game registry.Game, opts platform.Options) Model {
	clock := sched.NewManual()
	s := session.New(game, clock, opts.Session)
	s.Start()

	return Model{
		session: s,
		clock:   clock,
		pacer:   sched.NewPacer(clock, time.Now()),
		fps:     opts.FPS,
		help:    help.New(),
		keys:    helpBindings(game.KeyMap()),
		theme:   DefaultTheme(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.session.Done() {
			return m, nil
		}
		m.pacer.Sync(time.Time(msg))
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// handleKey sends keys to the session; once it is over any key leaves.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Done() {
		return m, tea.Quit
	}
	m.session.HandleKey(msg.String())
	if m.session.Done() && m.session.Result().Reason == session.ReasonQuit {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the board, or the summary once the game is over.
func (m Model) View() string {
	if m.session.Done() {
		if m.session.Result().Reason == session.ReasonQuit {
			return ""
		}
		return m.summaryView()
	}

	f := m.session.Frame()
	f.Legend = ""
	board := render.Styled(render.Compose(f))
	return board + "\n" + m.theme.Controls.Render(m.help.View(m.keys))
}

func (m Model) summaryView() string {
	lines := render.SummaryLines(m.session.Result())

	var b strings.Builder
	b.WriteString(m.theme.OverlayTitle.Render(lines[0]))
	for _, l := range lines[1:] {
		b.WriteString("\n")
		b.WriteString(m.theme.OverlayText.Render(l))
	}
	if status := m.session.Status(); status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.theme.OverlayText.Render(status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.MenuDescription.Render("Press any key to return to the menu"))

	box := m.theme.OverlayBorder.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Session returns the session driven by the model.
func (m Model) Session() *session.Session {
	return m.session
}

// Run plays one game in the alternate screen and returns its result.
func Run(game registry.Game, opts platform.Options) (session.Result, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return session.Result{}, err
	}
	return model.Session().Result(), nil
}
