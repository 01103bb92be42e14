package ui

import (
	"io"
	"reflect"

	"github.com/atomicstack/curselect/internal/theme"
	uistate "github.com/atomicstack/curselect/internal/ui/state"
	"github.com/atomicstack/curselect/internal/widget"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Session is the form state the model drives: a widget tree to render and a
// handler for logical keys.
type Session interface {
	Root() *widget.Node
	Handle(key widget.Key, page int) widget.Control
}

// Options configures the terminal program.
type Options struct {
	Title      string
	Width      int
	Height     int
	ShowFooter bool
	AltScreen  bool
	Input      io.Reader
	Output     io.Writer
}

// Model implements the Bubble Tea model for a form session.
type Model struct {
	session     Session
	title       string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	keys        keyMap
	help        help.Model
	viewport    uistate.Viewport
	outcome     widget.Control

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state for session.
func NewModel(session Session, opts Options) *Model {
	m := &Model{
		session:    session,
		title:      opts.Title,
		showFooter: opts.ShowFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
		outcome:    widget.Continue,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if styles.Footer != nil {
		m.help.Styles.ShortKey = styles.Footer.Copy().Bold(true)
		m.help.Styles.ShortDesc = styles.Footer.Copy()
		m.help.Styles.ShortSeparator = styles.Footer.Copy()
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 1)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Outcome reports how the session ended, or widget.Continue while it runs.
func (m *Model) Outcome() widget.Control {
	return m.outcome
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	return nil
}
