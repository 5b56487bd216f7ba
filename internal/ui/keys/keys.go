package keys

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Tab    key.Binding
	Enter  key.Binding
	Back   key.Binding
	Quit   key.Binding
	Logout key.Binding

	Signup key.Binding
	Guest  key.Binding

	New    key.Binding
	Rename key.Binding
	Delete key.Binding

	AddTask      key.Binding
	AddColumn    key.Binding
	DeleteRow    key.Binding
	DeleteColumn key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("↵", "select")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Logout: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "logout")),

		Signup: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "sign up")),
		Guest:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "guest")),

		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Rename: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),

		AddTask:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		AddColumn:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "add column")),
		DeleteRow:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete row")),
		DeleteColumn: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "delete column")),
	}
}
