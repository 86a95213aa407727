package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vania/internal/core"
)

// KeyMap holds the key bindings for the game view.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	RunLeft  key.Binding
	RunRight key.Binding
	Jump     key.Binding
	Fire     key.Binding
	Reload   key.Binding
	Confirm  key.Binding
	Pause    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Fire, k.Reload, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.RunLeft, k.RunRight, k.Jump},
		{k.Fire, k.Reload, k.Confirm, k.Pause},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left", "h"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right", "l"),
			key.WithHelp("d/→", "right"),
		),
		// Terminals do not report a bare shift, so running uses shifted keys.
		RunLeft: key.NewBinding(
			key.WithKeys("A", "shift+left", "H"),
			key.WithHelp("A/S-←", "run left"),
		),
		RunRight: key.NewBinding(
			key.WithKeys("D", "shift+right", "L"),
			key.WithHelp("D/S-→", "run right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "w", "up", "k", "W"),
			key.WithHelp("space/w", "jump"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f/click", "fire"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new game"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Actions translates a key press into game actions.
// A running move yields both the direction and ActionRun.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return []core.Action{core.ActionQuit}
	case key.Matches(msg, k.RunLeft):
		return []core.Action{core.ActionLeft, core.ActionRun}
	case key.Matches(msg, k.RunRight):
		return []core.Action{core.ActionRight, core.ActionRun}
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, k.Jump):
		return []core.Action{core.ActionJump}
	case key.Matches(msg, k.Fire):
		return []core.Action{core.ActionFire}
	case key.Matches(msg, k.Reload):
		return []core.Action{core.ActionReload}
	case key.Matches(msg, k.Confirm):
		return []core.Action{core.ActionConfirm}
	case key.Matches(msg, k.Pause):
		return []core.Action{core.ActionPause}
	}
	return nil
}
