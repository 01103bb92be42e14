package form

import (
	"fmt"

	"github.com/atomicstack/curselect/internal/logging/events"
	"github.com/atomicstack/curselect/internal/selection"
	"github.com/atomicstack/curselect/internal/ui/command"
	"github.com/atomicstack/curselect/internal/widget"
	"github.com/google/uuid"
)

const (
	commandConfirm = "confirm"
	commandCancel  = "cancel"

	buttonWidth = 10
)

// session is one run of a form: the widget tree, the live selection state,
// and the outcome once the user decides.
type session[K comparable, V comparable] struct {
	id      string
	display func(V) string
	fields  []K
	state   *selection.State[K, V]
	bus     *command.Bus
	root    *widget.Node

	done   bool
	result Result[K, V]
}

// start builds a fresh tree and selection state from the form's groups.
func (f *Form[K, V]) start() *session[K, V] {
	s := &session[K, V]{
		id:      uuid.NewString(),
		display: f.cfg.DisplayFunc,
		fields:  f.Fields(),
		bus:     command.New(),
	}
	s.state = selection.Initialize(s.fields, func(field K) selection.Value[V] {
		return f.groups[field].initial()
	})
	s.bus.Register(command.Request{ID: commandConfirm, Label: "OK", Handler: s.confirm})
	s.bus.Register(command.Request{ID: commandCancel, Label: "Cancel", Handler: s.cancel})

	children := make([]*widget.Node, 0, 2*len(s.fields)+1)
	names := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		env := buildEnv[V]{
			display:    f.cfg.DisplayFunc,
			margin:     f.cfg.LeftMargin,
			labelOnTop: f.cfg.LabelOnTop,
			selected:   s.selectedFunc(field),
			toggled:    s.toggledFunc(field),
		}
		children = append(children, f.groups[field].build(env), widget.Divider())
		names = append(names, fmt.Sprint(field))
	}
	children = append(children, widget.HStack(2,
		widget.Text(""),
		widget.Button("OK", s.bus.Bind(commandConfirm)).WithWidth(buttonWidth),
		widget.Text(""),
		widget.Button("Cancel", s.bus.Bind(commandCancel)).WithWidth(buttonWidth),
		widget.Text(""),
	))
	s.root = widget.ScrollStack(children...)
	events.Form.Start(s.id, names)
	return s
}

func (s *session[K, V]) selectedFunc(field K) func(V) {
	return func(option V) {
		s.state.ApplySingle(field, option)
		events.Selection.Single(s.id, fmt.Sprint(field), s.display(option))
	}
}

func (s *session[K, V]) toggledFunc(field K) func(V, bool) {
	return func(option V, on bool) {
		s.state.ApplyToggle(field, option, on)
		events.Selection.Toggle(s.id, fmt.Sprint(field), s.display(option), on)
	}
}

// Root exposes the widget tree to the host.
func (s *session[K, V]) Root() *widget.Node {
	return s.root
}

// Handle applies one key. The cancel key goes through the same command as
// the Cancel button.
func (s *session[K, V]) Handle(key widget.Key, page int) widget.Control {
	if s.done {
		return widget.Continue
	}
	var ctrl widget.Control
	if key == widget.KeyCancel {
		ctrl, _ = s.bus.Run(commandCancel)
	} else {
		ctrl = widget.Handle(s.root, key, page)
	}
	events.Focus.Key(key.String(), widget.FocusPath(s.root))
	return ctrl
}

func (s *session[K, V]) confirm() widget.Control {
	s.result = NewResult[K, V](s.fields, s.state.Snapshot())
	s.done = true
	events.Form.Confirm(s.id)
	return widget.Confirm
}

func (s *session[K, V]) cancel() widget.Control {
	s.state = nil
	s.result = CancelledResult[K, V]()
	s.done = true
	events.Form.Cancel(s.id)
	return widget.Cancel
}
