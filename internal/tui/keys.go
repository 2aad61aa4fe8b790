package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Compute   key.Binding
	NextField key.Binding
	PrevField key.Binding
	NextOp    key.Binding
	PrevOp    key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Compute: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "compute"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		NextOp: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓/↑", "operator"),
		),
		PrevOp: key.NewBinding(
			key.WithKeys("up"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Compute, k.NextField, k.NextOp, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Compute, k.Clear, k.Quit},
		{k.NextField, k.PrevField, k.NextOp},
	}
}
