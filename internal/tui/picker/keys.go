package picker

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings
type KeyMap struct {
	Select key.Binding
	Cancel key.Binding
}

var DefaultKeyMap = KeyMap{
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}
