package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the pet view.
type KeyMap struct {
	Feed      key.Binding
	Play      key.Binding
	Sleep     key.Binding
	Resurrect key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Feed: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "feed"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
		Sleep: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sleep"),
		),
		Resurrect: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resurrect"),
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

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Feed, k.Play, k.Sleep, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Feed, k.Play, k.Sleep, k.Resurrect},
		{k.Help, k.Quit},
	}
}
