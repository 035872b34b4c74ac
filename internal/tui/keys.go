package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the confirm prompt.
type KeyMap struct {
	Confirm key.Binding // Answer yes
	Decline key.Binding // Answer no
	Quit    key.Binding // Abort, counts as no
}

// DefaultKeyMap returns the default keybindings.
// Only an explicit y confirms; enter takes the default answer, which is no.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "N", "enter", "esc"),
			key.WithHelp("n/enter", "no"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Decline}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Decline, k.Quit}}
}
