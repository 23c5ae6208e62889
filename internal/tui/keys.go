package tui

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Quit     key.Binding
	Refresh  key.Binding
	PrevFile key.Binding
	NextFile key.Binding
	PageDown key.Binding
	LineUp   key.Binding
	LineDown key.Binding
	Top      key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		PrevFile: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev file"),
		),
		NextFile: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next file"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("space", "pgdown", "f"),
			key.WithHelp("space", "page"),
		),
		LineUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		LineDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
