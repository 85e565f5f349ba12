package kernel

import "reflect"

// Identifiable is implemented by entities, which are compared by identity
// rather than by their attributes.
type Identifiable[ID comparable] interface {
	ID() ID
}

// Identity is embedded by entities to give them a stable identifier.
// The identifier is set once by NewIdentity and never changes.
type Identity[ID comparable] struct {
	id ID
}

// NewIdentity creates an Identity holding id.
func NewIdentity[ID comparable](id ID) Identity[ID] {
	return Identity[ID]{id: id}
}

// ID returns the entity identifier.
func (i Identity[ID]) ID() ID {
	return i.id
}

// SameIdentity reports whether a and b denote the same entity. Attributes
// other than the identifier are ignored. A nil counterpart, including a typed
// nil pointer, is never the same.
func SameIdentity[ID comparable](a, b Identifiable[ID]) bool {
	if isNilEntity(a) || isNilEntity(b) {
		return false
	}
	return a.ID() == b.ID()
}

func isNilEntity(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
