package hint

import "reflect"

// Set is a set of comparable values.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}

	return s
}

func (s Set[T]) Add(v T) { s[v] = struct{}{} }

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int { return len(s) }

// ObjectLike is satisfied by containers with keyed access, iteration,
// membership and length.
type ObjectLike interface {
	Len() int
	Has(key string) bool
	Keys() []string
	Lookup(key string) (any, bool)
}

// ArrayLike is satisfied by containers with iteration, membership and length
// but no keyed access.
type ArrayLike interface {
	Len() int
	Contains(v any) bool
	Values() []any
}

// SetLike is an ArrayLike with set semantics.
type SetLike interface {
	ArrayLike
	IsDisjoint(other ArrayLike) bool
}

var (
	objectLikeType = reflect.TypeFor[ObjectLike]()
	arrayLikeType  = reflect.TypeFor[ArrayLike]()
	setLikeType    = reflect.TypeFor[SetLike]()
)

// IsSetType reports whether t is a map whose values carry no data.
func IsSetType(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Map && t.Elem().Kind() == reflect.Struct && t.Elem().NumField() == 0
}

func IsObjectLike(t reflect.Type) bool { return implements(t, objectLikeType) }

// IsArrayLike reports array-like types that are not also object-like.
func IsArrayLike(t reflect.Type) bool {
	return implements(t, arrayLikeType) && !implements(t, objectLikeType)
}

func IsSetLike(t reflect.Type) bool { return IsArrayLike(t) && implements(t, setLikeType) }

// IsMarker reports types carrying hint semantics that are never item classes.
func IsMarker(t reflect.Type) bool {
	if t == nil || t.Kind() == reflect.Interface || t.Kind() == reflect.Pointer {
		return false
	}

	return t.Implements(unionType) || t.Implements(tupleType) || implements(t, enumType) ||
		implements(t, objectLikeType) || implements(t, arrayLikeType)
}

// implements checks both the value and the pointer method sets.
func implements(t, iface reflect.Type) bool {
	if t == nil {
		return false
	}

	if t.Implements(iface) {
		return true
	}

	return t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(iface)
}
