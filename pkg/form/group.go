package form

import (
	"errors"
	"fmt"

	"github.com/atomicstack/curselect/internal/layout"
	"github.com/atomicstack/curselect/internal/selection"
	"github.com/atomicstack/curselect/internal/widget"
)

// ErrInvalidDefault reports a default index that does not name an option.
var ErrInvalidDefault = errors.New("invalid default")

// ErrInvalidMargin reports a negative left margin.
var ErrInvalidMargin = errors.New("invalid left margin")

// Group is an option list that can be added to a Form. It is implemented by
// Selector and MultiSelector.
type Group[V comparable] interface {
	kind() string
	size() int
	validate() error
	clone() Group[V]
	initial() selection.Value[V]
	build(env buildEnv[V]) *widget.Node
}

// Selector presents options as radio buttons; at most one can be chosen.
type Selector[V comparable] struct {
	Label   string
	Options []V
	// DisplayFunc renders an option; nil inherits the form's.
	DisplayFunc func(V) string
	// LeftMargin is the column options start at; nil inherits the form's.
	LeftMargin *int
	// LabelOnTop stacks the label above the options; nil inherits the form's.
	LabelOnTop *bool
	// Default is the index of the initially selected option.
	Default *int
}

// MultiSelector presents options as checkboxes; any subset can be chosen and
// the result lists them in the order they were switched on.
type MultiSelector[V comparable] struct {
	Label       string
	Options     []V
	DisplayFunc func(V) string
	LeftMargin  *int
	LabelOnTop  *bool
	// Defaults are the indices of the initially checked options. An empty set
	// leaves the field unset until something is toggled.
	Defaults []int
}

// Ptr returns a pointer to v, for the optional group settings.
func Ptr[T any](v T) *T {
	return &v
}

type buildEnv[V comparable] struct {
	display    func(V) string
	margin     int
	labelOnTop bool
	selected   func(option V)
	toggled    func(option V, on bool)
}

func (s Selector[V]) kind() string { return "single" }
func (s Selector[V]) size() int { return len(s.Options) }

func (s Selector[V]) validate() error {
	if err := validateMargin(s.LeftMargin); err != nil {
		return err
	}
	if s.Default != nil && (*s.Default < 0 || *s.Default >= len(s.Options)) {
		return fmt.Errorf("%w: index %d outside %d options", ErrInvalidDefault, *s.Default, len(s.Options))
	}
	return nil
}

func (s Selector[V]) clone() Group[V] {
	s.Options = append([]V(nil), s.Options...)
	if s.Default != nil {
		s.Default = Ptr(*s.Default)
	}
	return s
}

func (s Selector[V]) initial() selection.Value[V] {
	if s.Default == nil {
		return selection.None[V]()
	}
	return selection.One(s.Options[*s.Default])
}

func (s Selector[V]) build(env buildEnv[V]) *widget.Node {
	display := s.DisplayFunc
	if display == nil {
		display = env.display
	}
	group := widget.NewRadioGroup()
	leaves := make([]*widget.Node, 0, len(s.Options))
	for i, option := range s.Options {
		on := s.Default != nil && *s.Default == i
		leaves = append(leaves, widget.Radio(group, display(option), on, func() {
			env.selected(option)
		}))
	}
	return arrange(s.Label, s.LeftMargin, s.LabelOnTop, env, leaves)
}

func (m MultiSelector[V]) kind() string { return "multi" }
func (m MultiSelector[V]) size() int { return len(m.Options) }

func (m MultiSelector[V]) validate() error {
	if err := validateMargin(m.LeftMargin); err != nil {
		return err
	}
	seen := make(map[int]struct{}, len(m.Defaults))
	for _, idx := range m.Defaults {
		if idx < 0 || idx >= len(m.Options) {
			return fmt.Errorf("%w: index %d outside %d options", ErrInvalidDefault, idx, len(m.Options))
		}
		if _, dup := seen[idx]; dup {
			return fmt.Errorf("%w: index %d listed twice", ErrInvalidDefault, idx)
		}
		seen[idx] = struct{}{}
	}
	return nil
}

func (m MultiSelector[V]) clone() Group[V] {
	m.Options = append([]V(nil), m.Options...)
	m.Defaults = append([]int(nil), m.Defaults...)
	return m
}

func (m MultiSelector[V]) initial() selection.Value[V] {
	if len(m.Defaults) == 0 {
		return selection.None[V]()
	}
	values := make([]V, 0, len(m.Defaults))
	for _, idx := range m.Defaults {
		values = append(values, m.Options[idx])
	}
	return selection.Many(values...)
}

func (m MultiSelector[V]) build(env buildEnv[V]) *widget.Node {
	display := m.DisplayFunc
	if display == nil {
		display = env.display
	}
	checked := make(map[int]bool, len(m.Defaults))
	for _, idx := range m.Defaults {
		checked[idx] = true
	}
	leaves := make([]*widget.Node, 0, len(m.Options))
	for i, option := range m.Options {
		leaves = append(leaves, widget.Toggle(display(option), checked[i], func(on bool) {
			env.toggled(option, on)
		}))
	}
	return arrange(m.Label, m.LeftMargin, m.LabelOnTop, env, leaves)
}

// arrange places the label beside or above the option column.
func arrange[V comparable](label string, leftMargin *int, labelOnTop *bool, env buildEnv[V], leaves []*widget.Node) *widget.Node {
	margin := layout.Or(leftMargin, env.margin)
	options := widget.VStack(leaves...)
	if margin <= layout.Gutter || layout.LabelOnTop(layout.LabelWidth(label), margin, layout.Gutter, labelOnTop, env.labelOnTop) {
		return widget.VStack(widget.Text(label), options.WithIndent(margin))
	}
	return widget.HStack(layout.Gutter, widget.Text(label).WithWidth(margin-layout.Gutter), options)
}

func validateMargin(margin *int) error {
	if margin != nil && *margin < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMargin, *margin)
	}
	return nil
}
