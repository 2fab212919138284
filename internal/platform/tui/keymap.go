package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the puzzle screen.
type KeyMap struct {
	SelectRed    key.Binding
	SelectGreen  key.Binding
	SelectBlue   key.Binding
	SelectYellow key.Binding
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Undo         key.Binding
	Reset        key.Binding
	NewRound     key.Binding
	Deselect     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SelectRed, k.Up, k.Undo, k.NewRound, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SelectRed, k.SelectGreen, k.SelectBlue, k.SelectYellow, k.Deselect},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Undo, k.Reset, k.NewRound},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SelectRed: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "red piece"),
		),
		SelectGreen: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "green piece"),
		),
		SelectBlue: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blue piece"),
		),
		SelectYellow: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yellow piece"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "slide up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "slide down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "slide left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "slide right"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset round"),
		),
		NewRound: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new round"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "deselect"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
