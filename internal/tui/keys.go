package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	ListUp   key.Binding
	ListDown key.Binding
	Enter    key.Binding
	Toggle   key.Binding
	Submit   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "próximo")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "anterior")),
	Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "subir")),
	Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "descer")),
	ListUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "subir")),
	ListDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "descer")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "selecionar")),
	Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("espaço", "abrir")),
	Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "avançar")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "sair")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "sair")),
}
