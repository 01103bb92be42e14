package ui

import (
	"github.com/atomicstack/curselect/internal/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Down      key.Binding
	Up        key.Binding
	Left      key.Binding
	Right     key.Binding
	PageDown  key.Binding
	PageUp    key.Binding
	Top       key.Binding
	Bottom    key.Binding
	NextGroup key.Binding
	PrevGroup key.Binding
	Activate  key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "z"), key.WithHelp("pgdn/z", "page down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "w"), key.WithHelp("pgup/w", "page up")),
		Top:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first")),
		Bottom:    key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last")),
		NextGroup: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
		PrevGroup: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev list")),
		Activate:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select")),
		Cancel:    key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGroup, k.Activate, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextGroup, k.PrevGroup, k.Activate, k.Cancel},
	}
}

// token maps a key press to the logical key it stands for.
func (k keyMap) token(msg tea.KeyMsg) widget.Key {
	switch {
	case key.Matches(msg, k.Down):
		return widget.KeyDown
	case key.Matches(msg, k.Up):
		return widget.KeyUp
	case key.Matches(msg, k.Left):
		return widget.KeyLeft
	case key.Matches(msg, k.Right):
		return widget.KeyRight
	case key.Matches(msg, k.PageDown):
		return widget.KeyPageDown
	case key.Matches(msg, k.PageUp):
		return widget.KeyPageUp
	case key.Matches(msg, k.Top):
		return widget.KeyTop
	case key.Matches(msg, k.Bottom):
		return widget.KeyBottom
	case key.Matches(msg, k.NextGroup):
		return widget.KeyNextGroup
	case key.Matches(msg, k.PrevGroup):
		return widget.KeyPrevGroup
	case key.Matches(msg, k.Activate):
		return widget.KeyActivate
	case key.Matches(msg, k.Cancel):
		return widget.KeyCancel
	}
	return widget.KeyNone
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	token := m.keys.token(keyMsg)
	if token == widget.KeyNone {
		return nil
	}
	ctrl := m.session.Handle(token, m.pageRows())
	if ctrl == widget.Continue {
		return nil
	}
	m.outcome = ctrl
	return tea.Quit
}
