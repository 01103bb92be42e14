// Package form presents a sequence of single- and multi-choice option lists
// in a full-screen terminal interface and returns what the user picked.
//
// A Form is an ordered set of fields, each bound to a Selector or a
// MultiSelector. Run shows them above an OK/Cancel row and blocks until the
// user confirms or cancels:
//
//	f := form.New[string, string](form.Config[string]{})
//	_ = f.Add("color", form.Selector[string]{
//		Label:   "Color",
//		Options: []string{"red", "green", "blue"},
//		Default: form.Ptr(1),
//	})
//	res, err := f.Run(ctx)
package form

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/curselect/internal/layout"
	"github.com/atomicstack/curselect/internal/logging/events"
	"github.com/atomicstack/curselect/internal/ui"
)

// Config holds the form-wide defaults groups inherit.
type Config[V comparable] struct {
	// Title is shown above the first group when set.
	Title string
	// DisplayFunc renders options; nil means fmt.Sprint.
	DisplayFunc func(V) string
	// LeftMargin is the column options start at; zero means 8.
	LeftMargin int
	// LabelOnTop stacks every label above its options unless a group says
	// otherwise.
	LabelOnTop bool
}

// Form is an ordered collection of option groups.
type Form[K comparable, V comparable] struct {
	cfg    Config[V]
	fields []K
	groups map[K]Group[V]
}

// New returns an empty form.
func New[K comparable, V comparable](cfg Config[V]) *Form[K, V] {
	if cfg.DisplayFunc == nil {
		cfg.DisplayFunc = func(v V) string { return fmt.Sprint(v) }
	}
	if cfg.LeftMargin == 0 {
		cfg.LeftMargin = layout.DefaultLeftMargin
	}
	return &Form[K, V]{cfg: cfg, groups: make(map[K]Group[V])}
}

// Add binds group to field. Adding a field again replaces its group but keeps
// the position of the first Add. The group is validated and copied, so later
// changes to the caller's value do not affect the form.
func (f *Form[K, V]) Add(field K, group Group[V]) error {
	if group == nil {
		return fmt.Errorf("field %v: nil group", field)
	}
	if f.cfg.LeftMargin < 0 {
		return fmt.Errorf("form: %w: %d", ErrInvalidMargin, f.cfg.LeftMargin)
	}
	if err := group.validate(); err != nil {
		return fmt.Errorf("field %v: %w", field, err)
	}
	if _, exists := f.groups[field]; !exists {
		f.fields = append(f.fields, field)
	}
	f.groups[field] = group.clone()
	events.Form.Add(fmt.Sprint(field), group.kind(), group.size())
	return nil
}

// Fields returns the fields in on-screen order.
func (f *Form[K, V]) Fields() []K {
	return append([]K(nil), f.fields...)
}

// RunOption adjusts how Run drives the terminal.
type RunOption func(*ui.Options)

// WithInput reads keys from r instead of the terminal.
func WithInput(r io.Reader) RunOption {
	return func(o *ui.Options) { o.Input = r }
}

// WithOutput renders to w instead of stderr.
func WithOutput(w io.Writer) RunOption {
	return func(o *ui.Options) { o.Output = w }
}

// WithSize fixes the viewport size; zero keeps the terminal's dimension.
func WithSize(width, height int) RunOption {
	return func(o *ui.Options) {
		o.Width = width
		o.Height = height
	}
}

// WithFooter shows or hides the key help line.
func WithFooter(show bool) RunOption {
	return func(o *ui.Options) { o.ShowFooter = show }
}

// WithAltScreen chooses whether the form takes over the whole terminal.
func WithAltScreen(enabled bool) RunOption {
	return func(o *ui.Options) { o.AltScreen = enabled }
}

// Run shows the form and blocks until the user confirms or cancels. Both are
// successful outcomes; Result.Cancelled tells them apart. If the terminal
// loop ends any other way, Run returns the context's error when ctx is done
// and a cancelled result otherwise.
func (f *Form[K, V]) Run(ctx context.Context, opts ...RunOption) (Result[K, V], error) {
	options := ui.Options{
		Title:      f.cfg.Title,
		ShowFooter: true,
		AltScreen:  true,
		Output:     os.Stderr,
	}
	for _, opt := range opts {
		opt(&options)
	}
	s := f.start()
	if _, err := ui.Run(ctx, s, options); err != nil {
		return Result[K, V]{}, err
	}
	if !s.done {
		if err := ctx.Err(); err != nil {
			return Result[K, V]{}, err
		}
		s.cancel()
	}
	return s.result, nil
}

var _ ui.Session = (*session[string, string])(nil)
