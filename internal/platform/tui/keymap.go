package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/mastergame/internal/core"
)

// bindingHelp adapts a game's key map for the bubbles help view.
type bindingHelp []key.Binding

func (b bindingHelp) ShortHelp() []key.Binding { return b }

func (b bindingHelp) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// helpBindings converts core bindings into bubbles key bindings. The help
// label lists at most the first two keys.
func helpBindings(km core.KeyMap) bindingHelp {
	out := make(bindingHelp, 0, len(km))
	for _, b := range km {
		if len(b.Keys) == 0 || b.Help == "" {
			continue
		}
		label := b.Keys[0]
		if len(b.Keys) > 1 && b.Keys[1] != b.Keys[0] {
			label += "/" + b.Keys[1]
		}
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(label, b.Help),
		))
	}
	return out
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(k string) MenuAction {
	switch k {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
