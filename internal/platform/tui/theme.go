package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the menu and the summary overlay.
type Theme struct {
	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style

	// Help line under the board
	Controls lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("51")).
			Padding(1, 3),
		OverlayTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		Controls: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
