package hint

import "reflect"

// Tuple is implemented by fixed-length heterogeneous tuple types.
type Tuple interface {
	TupleMembers() []reflect.Type
	TupleValues() []any
}

// Tuple2 is a pair.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

func (Tuple2[A, B]) TupleMembers() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}

func (t Tuple2[A, B]) TupleValues() []any { return []any{t.First, t.Second} }

// Tuple3 is a triple.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func (Tuple3[A, B, C]) TupleMembers() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
}

func (t Tuple3[A, B, C]) TupleValues() []any { return []any{t.First, t.Second, t.Third} }

// TupleMembers returns the positional member types of a tuple type, or
// false when t is not one.
func TupleMembers(t reflect.Type) ([]reflect.Type, bool) {
	if t == nil || t.Kind() == reflect.Interface || t.Kind() == reflect.Pointer || !t.Implements(tupleType) {
		return nil, false
	}

	return reflect.Zero(t).Interface().(Tuple).TupleMembers(), true
}
