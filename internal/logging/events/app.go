package events

import "github.com/atomicstack/curselect/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(cancelled bool, format string) {
	logging.Trace("app.finish", map[string]interface{}{"cancelled": cancelled, "format": format})
}
