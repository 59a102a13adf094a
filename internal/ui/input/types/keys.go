package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for both modes
type KeyMap struct {
	// Normal mode
	Edit        key.Binding
	Quit        key.Binding
	CycleLayout key.Binding

	// Editing mode
	Submit key.Binding
	Erase  key.Binding
	Left   key.Binding
	Right  key.Binding
	Back   key.Binding

	ForceQuit key.Binding
}

// Keys is the fixed key map
var Keys = KeyMap{
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "start typing"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	CycleLayout: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "next layout"),
	),
	Submit: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space/enter", "submit"),
	),
	Erase: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "erase"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "right"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "stop typing"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// HelpFor returns the bindings shown in the footer for a mode
func (k KeyMap) HelpFor(mode Mode) []key.Binding {
	if mode == ModeEditing {
		return []key.Binding{k.Submit, k.Erase, k.Left, k.Right, k.Back}
	}
	return []key.Binding{k.Edit, k.CycleLayout, k.Quit}
}
