package command

import (
	"fmt"

	"github.com/atomicstack/curselect/internal/logging/events"
	"github.com/atomicstack/curselect/internal/widget"
)

// Handler runs a named terminal action and reports how the loop continues.
type Handler func() widget.Control

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// Bus holds the commands a session exposes to its host, keyed by ID.
type Bus struct {
	commands map[string]Request
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{commands: make(map[string]Request)}
}

// Register makes req available under req.ID, replacing any earlier command
// with the same ID.
func (b *Bus) Register(req Request) {
	b.commands[req.ID] = req
}

// Lookup returns the command registered under id.
func (b *Bus) Lookup(id string) (Request, bool) {
	req, ok := b.commands[id]
	return req, ok
}

// Execute runs req while emitting trace logs. A request without a handler is
// skipped and leaves the loop running.
func (b *Bus) Execute(req Request) widget.Control {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return widget.Continue
	}
	ctrl := req.Handler()
	events.Command.Result(req.ID, req.Label, ctrl.String())
	return ctrl
}

// Run executes the command registered under id.
func (b *Bus) Run(id string) (widget.Control, error) {
	req, ok := b.Lookup(id)
	if !ok {
		return widget.Continue, fmt.Errorf("command %q not registered", id)
	}
	return b.Execute(req), nil
}

// Bind returns a button handler that runs the command registered under id.
// Binding an unknown id panics because the tree would otherwise contain a
// control that can never act.
func (b *Bus) Bind(id string) func() widget.Control {
	req, ok := b.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("command: %q not registered", id))
	}
	return func() widget.Control {
		return b.Execute(req)
	}
}
