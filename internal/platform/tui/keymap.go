package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ledpong/internal/core"
)

// KeyMap defines the console key bindings. Each player gets one slider.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Stop      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Stop}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown},
		{k.RightUp, k.RightDown},
		{k.Stop},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "P1 up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "P1 down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "P2 up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "P2 down"),
		),
		Stop: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "stop"),
		),
	}
}

// MapKey translates a key message to a controller action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.LeftUp):
		return core.ActionLeftUp
	case key.Matches(msg, k.LeftDown):
		return core.ActionLeftDown
	case key.Matches(msg, k.RightUp):
		return core.ActionRightUp
	case key.Matches(msg, k.RightDown):
		return core.ActionRightDown
	case key.Matches(msg, k.Stop):
		return core.ActionStop
	}
	return core.ActionNone
}
