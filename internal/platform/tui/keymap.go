package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-martians/internal/core"
)

// KeyMap holds the in-game key bindings. Letters match in either case.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Stop   key.Binding
	Fire   key.Binding
	Rocket key.Binding
	Pause  key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the one-line footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Stop, k.Fire, k.Rocket, k.Pause, k.Quit}
}

// FullHelp returns bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop},
		{k.Fire, k.Rocket},
		{k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("d", "right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s", "S", "down"),
			key.WithHelp("s", "stop"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "laser"),
		),
		Rocket: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "rocket"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action. Unbound keys give
// ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Stop):
		return core.ActionStop
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Rocket):
		return core.ActionRocket
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
