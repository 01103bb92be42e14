// Package selection holds the per-field result mapping of a form session and
// the rules that keep it in step with radio and toggle events.
package selection

import "fmt"

// State maps each field of a running form to its current selection.
type State[K comparable, V comparable] struct {
	fields []K
	values map[K]Value[V]
}

// Initialize creates a state for the given fields, seeding each one with the
// value returned by initial.
func Initialize[K comparable, V comparable](fields []K, initial func(K) Value[V]) *State[K, V] {
	s := &State[K, V]{
		fields: make([]K, 0, len(fields)),
		values: make(map[K]Value[V], len(fields)),
	}
	for _, field := range fields {
		if _, seen := s.values[field]; !seen {
			s.fields = append(s.fields, field)
		}
		s.values[field] = initial(field).clone()
	}
	return s
}

// ApplySingle records option as the field's selection. Mutual exclusion is
// enforced by the radio leaves, so this never inspects the previous value.
func (s *State[K, V]) ApplySingle(field K, option V) {
	s.mustField(field)
	s.values[field] = One(option)
}

// ApplyToggle appends option to the field's list when on, or removes its first
// occurrence when off. Removing an option that is not present is a caller bug
// and panics.
func (s *State[K, V]) ApplyToggle(field K, option V, on bool) {
	current := s.mustField(field)
	var list []V
	switch current.kind {
	case Unset:
	case Multi:
		list = current.many
	default:
		panic(fmt.Sprintf("selection: toggle on single-choice field %v", field))
	}
	if on {
		s.values[field] = Value[V]{kind: Multi, many: append(list, option)}
		return
	}
	for i, existing := range list {
		if existing == option {
			next := make([]V, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			s.values[field] = Value[V]{kind: Multi, many: next}
			return
		}
	}
	panic(fmt.Sprintf("selection: toggle off for %v which is not selected in field %v", option, field))
}

// Get returns the current value of field.
func (s *State[K, V]) Get(field K) (Value[V], bool) {
	if s == nil {
		panic("selection: state accessed before a session started")
	}
	v, ok := s.values[field]
	if !ok {
		return Value[V]{}, false
	}
	return v.clone(), true
}

// Fields returns the fields in insertion order.
func (s *State[K, V]) Fields() []K {
	if s == nil {
		panic("selection: state accessed before a session started")
	}
	out := make([]K, len(s.fields))
	copy(out, s.fields)
	return out
}

// Snapshot returns a deep copy of the mapping; later updates to the state do
// not affect it.
func (s *State[K, V]) Snapshot() map[K]Value[V] {
	if s == nil {
		panic("selection: state accessed before a session started")
	}
	out := make(map[K]Value[V], len(s.values))
	for field, v := range s.values {
		out[field] = v.clone()
	}
	return out
}

func (s *State[K, V]) mustField(field K) Value[V] {
	if s == nil {
		panic("selection: state accessed before a session started")
	}
	v, ok := s.values[field]
	if !ok {
		panic(fmt.Sprintf("selection: unknown field %v", field))
	}
	return v
}
