package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// KeyMap defines the key bindings for the game. Bindings carry help text
// for the bubbles help view.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Start      key.Binding
	Reset      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings: arrows or WASD to steer,
// space to pause, enter to start, r to reset after game over.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Pause, k.Reset},
		{k.Screenshot, k.Quit},
	}
}

// Intent translates a key message to an abstract game intent.
// Unbound keys map to IntentNone.
func (k KeyMap) Intent(msg tea.KeyMsg) core.Intent {
	switch {
	case key.Matches(msg, k.Quit):
		return core.IntentQuit
	case key.Matches(msg, k.Up):
		return core.IntentUp
	case key.Matches(msg, k.Down):
		return core.IntentDown
	case key.Matches(msg, k.Left):
		return core.IntentLeft
	case key.Matches(msg, k.Right):
		return core.IntentRight
	case key.Matches(msg, k.Pause):
		return core.IntentPause
	case key.Matches(msg, k.Start):
		return core.IntentStart
	case key.Matches(msg, k.Reset):
		return core.IntentReset
	}
	return core.IntentNone
}
