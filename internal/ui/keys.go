package ui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeyMap defines keys available in navigation mode regardless of focused panel.
type GlobalKeyMap struct {
	Quit          key.Binding
	Help          key.Binding
	Tab           key.Binding
	Refresh       key.Binding
	ToggleOutline key.Binding
}

var GlobalKeys = GlobalKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch panel"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh thread"),
	),
	ToggleOutline: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "toggle outline"),
	),
}

// ThreadKeyMap defines keys for the thread panel. Plain-letter actions
// only apply while the cursor sits in the read-only region; inside the
// editable region those runes are typed text.
type ThreadKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Compose key.Binding
	Submit  key.Binding
	Actions key.Binding
	React   key.Binding
	Preview key.Binding
	Cancel  key.Binding
}

var ThreadKeys = ThreadKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("l", "right"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	Compose: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "jump to compose area"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("Ctrl+S", "submit comment"),
	),
	Actions: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("Ctrl+A", "actions"),
	),
	React: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "react"),
	),
	Preview: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "preview markdown"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel edit / leave compose"),
	),
}

// OutlineKeyMap defines keys for the outline panel.
type OutlineKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	OpenBrowser key.Binding
}

var OutlineKeys = OutlineKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "expand/collapse"),
	),
	OpenBrowser: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in browser"),
	),
}
