package form

import "github.com/atomicstack/curselect/internal/selection"

// Value is the selection recorded for one field: unset, a single option, or
// an ordered list of options.
type Value[V comparable] = selection.Value[V]

// Kind distinguishes the three shapes a Value can take.
type Kind = selection.Kind

const (
	Unset  = selection.Unset
	Single = selection.Single
	Multi  = selection.Multi
)

// Result is the outcome of a session. A cancelled result carries no values,
// which keeps it distinct from a confirmed form where nothing was chosen.
type Result[K comparable, V comparable] struct {
	cancelled bool
	fields    []K
	values    map[K]Value[V]
}

// None returns the unset value.
func None[V comparable]() Value[V] { return selection.None[V]() }

// One returns a single-option value.
func One[V comparable](option V) Value[V] { return selection.One(option) }

// Many returns a list value; no options gives an empty list, not unset.
func Many[V comparable](options ...V) Value[V] { return selection.Many(options...) }

// NewResult returns a confirmed result holding values in field order.
func NewResult[K comparable, V comparable](fields []K, values map[K]Value[V]) Result[K, V] {
	r := Result[K, V]{
		fields: append([]K(nil), fields...),
		values: make(map[K]Value[V], len(values)),
	}
	for k, v := range values {
		r.values[k] = v
	}
	return r
}

// CancelledResult returns the result of a cancelled session.
func CancelledResult[K comparable, V comparable]() Result[K, V] {
	return Result[K, V]{cancelled: true}
}

// Cancelled reports whether the user cancelled the form.
func (r Result[K, V]) Cancelled() bool {
	return r.cancelled
}

// Fields lists the fields in on-screen order. It is empty for a cancelled
// result.
func (r Result[K, V]) Fields() []K {
	return append([]K(nil), r.fields...)
}

// Get returns the value recorded for field.
func (r Result[K, V]) Get(field K) (Value[V], bool) {
	v, ok := r.values[field]
	return v, ok
}

// Map returns a copy of the recorded values, or nil when cancelled.
func (r Result[K, V]) Map() map[K]Value[V] {
	if r.cancelled {
		return nil
	}
	out := make(map[K]Value[V], len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}
