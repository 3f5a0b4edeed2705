package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the showcase.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Content
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Back key.Binding

	// Chrome
	Action      key.Binding // 1-9, the top bar action at that position
	Overflow    key.Binding
	Destination key.Binding // f1-f4, bottom navigation
	NextTab     key.Binding
	PrevTab     key.Binding

	// Customization forms
	Increase key.Binding
	Decrease key.Binding
	Toggle   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back: key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),

		Action: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "top bar action"),
		),
		Overflow:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "more options")),
		Destination: key.NewBinding(key.WithKeys("f1", "f2", "f3", "f4"), key.WithHelp("f1-f4", "destination")),
		NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),

		Increase: key.NewBinding(key.WithKeys("+", "=", "right", "l"), key.WithHelp("→/+", "increase")),
		Decrease: key.NewBinding(key.WithKeys("-", "left", "h"), key.WithHelp("←/-", "decrease")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Action, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back},
		{k.Action, k.Overflow, k.Destination, k.NextTab, k.PrevTab},
		{k.Increase, k.Decrease, k.Toggle},
		{k.Help, k.Quit},
	}
}
