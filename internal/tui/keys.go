package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	wave      key.Binding
	esc       key.Binding
	connect   key.Binding
	copy      key.Binding
	refresh   key.Binding
	buildInfo key.Binding
	quit      key.Binding
}

// Letters are typed into the message input, so every action is bound to a
// control or function key.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	wave:      key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	connect:   key.NewBinding(key.WithKeys("ctrl+o")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	refresh:   key.NewBinding(key.WithKeys("ctrl+r")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
}
