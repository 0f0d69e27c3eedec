package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Add, Edit, Delete, Sort, Move, Yank, Help, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Move:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		Yank:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Sort, k.Move, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Edit, k.Delete},
		{k.Sort, k.Move, k.Yank},
		{k.Help, k.Quit},
	}
}

// moveKeys are active while an item is grabbed.
type moveKeys struct {
	Up, Down, Drop, Cancel key.Binding
}

func defaultMoveKeys() moveKeys {
	return moveKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Drop:   key.NewBinding(key.WithKeys("enter", "m", " "), key.WithHelp("enter", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k moveKeys) ShortHelp() []key.Binding { return []key.Binding{k.Up, k.Down, k.Drop, k.Cancel} }

func (k moveKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
