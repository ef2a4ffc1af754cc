package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mastergame/internal/platform"
	"github.com/vovakirdan/mastergame/internal/render"
	"github.com/vovakirdan/mastergame/internal/session"
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []platform.Choice
	cursor   int
	width    int
	height   int
	last     *session.Result
	notice   string
	theme    Theme
	selected *platform.Choice
}

// NewMenuModel creates a menu. last, when set, is the result shown under
// the entries; notice is an extra line such as a config error.
func NewMenuModel(last *session.Result, notice string) MenuModel {
	return MenuModel{
		items:  platform.Menu,
		last:   last,
		notice: notice,
		theme:  DefaultTheme(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if c, ok := platform.ChoiceFor(msg.String()); ok {
		m.selected = &c
		return m, tea.Quit
	}

	switch MapKeyToMenuAction(msg.String()) {
	case MenuActionQuit:
		exit := platform.Menu[len(platform.Menu)-1]
		m.selected = &exit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.MenuTitle.Render("M A S T E R   G A M E"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf(" %s. %s ", item.Key, item.Label)
		if i == m.cursor {
			b.WriteString(m.theme.MenuItemActive.Render("> " + line))
		} else {
			b.WriteString(m.theme.MenuItemNormal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.last != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.MenuDescription.Render("Last game: " + strings.Join(render.SummaryLines(*m.last)[1:], "  ")))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.OverlayTitle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.MenuDescription.Render("1-3 or Up/Down + Enter  |  Q: Quit"))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the chosen entry, or nil if the menu was not left
// through a choice.
func (m MenuModel) Selected() *platform.Choice {
	return m.selected
}

// RunMenu shows the menu and returns the chosen entry. Leaving without a
// choice counts as Exit.
func RunMenu(last *session.Result, notice string) (platform.Choice, error) {
	exit := platform.Menu[len(platform.Menu)-1]

	p := tea.NewProgram(
		NewMenuModel(last, notice),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return exit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return exit, nil
	}
	return *m.Selected(), nil
}
