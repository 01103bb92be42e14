package selection

// Kind distinguishes the three shapes a field's selection can take.
type Kind int

const (
	// Unset means no selection was made. It is distinct from an empty list.
	Unset Kind = iota
	// Single holds exactly one option.
	Single
	// Multi holds an ordered list of options, possibly empty.
	Multi
)

func (k Kind) String() string {
	switch k {
	case Unset:
		return "unset"
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return "unknown"
	}
}

// Value is the selection recorded for one field.
type Value[V comparable] struct {
	kind Kind
	one  V
	many []V
}

// None returns the unset value.
func None[V comparable]() Value[V] {
	return Value[V]{kind: Unset}
}

// One returns a single-option value.
func One[V comparable](option V) Value[V] {
	return Value[V]{kind: Single, one: option}
}

// Many returns a list value. A nil or empty argument yields an empty list,
// not the unset value.
func Many[V comparable](options ...V) Value[V] {
	list := make([]V, len(options))
	copy(list, options)
	return Value[V]{kind: Multi, many: list}
}

func (v Value[V]) Kind() Kind {
	return v.kind
}

func (v Value[V]) IsUnset() bool {
	return v.kind == Unset
}

// Single returns the selected option when the value holds one.
func (v Value[V]) Single() (V, bool) {
	if v.kind != Single {
		var zero V
		return zero, false
	}
	return v.one, true
}

// Multi returns a copy of the list when the value holds one.
func (v Value[V]) Multi() ([]V, bool) {
	if v.kind != Multi {
		return nil, false
	}
	list := make([]V, len(v.many))
	copy(list, v.many)
	return list, true
}

// Equal reports whether two values have the same kind and contents.
func (v Value[V]) Equal(other Value[V]) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Single:
		return v.one == other.one
	case Multi:
		if len(v.many) != len(other.many) {
			return false
		}
		for i := range v.many {
			if v.many[i] != other.many[i] {
				return false
			}
		}
	}
	return true
}

func (v Value[V]) clone() Value[V] {
	if v.kind == Multi {
		return Many(v.many...)
	}
	return v
}
