package storefront

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Add      key.Binding
	Grid     key.Binding
	CartPrev key.Binding
	CartNext key.Binding
	Plus     key.Binding
	Minus    key.Binding
	Remove   key.Binding
	Checkout key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Add:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "add shown")),
		Grid:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "add from grid")),
		CartPrev: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "cart prev")),
		CartNext: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "cart next")),
		Plus:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more")),
		Minus:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "less")),
		Remove:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Checkout: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "checkout")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Add, k.Grid, k.CartPrev, k.CartNext, k.Plus, k.Minus, k.Remove, k.Checkout, k.Quit}
}
