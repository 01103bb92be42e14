package events

import "github.com/atomicstack/curselect/internal/logging"

type FormTracer struct{}

type SelectionTracer struct{}

type FocusTracer struct{}

var (
	Form      = FormTracer{}
	Selection = SelectionTracer{}
	Focus     = FocusTracer{}
)

func (FormTracer) Add(field string, kind string, options int) {
	logging.Trace("form.add", map[string]interface{}{"field": field, "kind": kind, "options": options})
}

func (FormTracer) Start(session string, fields []string) {
	logging.Trace("form.start", map[string]interface{}{"session": session, "fields": fields})
}

func (FormTracer) Confirm(session string) {
	logging.Trace("form.confirm", map[string]interface{}{"session": session})
}

func (FormTracer) Cancel(session string) {
	logging.Trace("form.cancel", map[string]interface{}{"session": session})
}

func (SelectionTracer) Single(session, field, option string) {
	logging.Trace("selection.single", map[string]interface{}{
		"session": session,
		"field":   field,
		"option":  option,
	})
}

func (SelectionTracer) Toggle(session, field, option string, on bool) {
	logging.Trace("selection.toggle", map[string]interface{}{
		"session": session,
		"field":   field,
		"option":  option,
		"on":      on,
	})
}

func (FocusTracer) Key(key string, path []int) {
	logging.Trace("focus.key", map[string]interface{}{"key": key, "path": path})
}
