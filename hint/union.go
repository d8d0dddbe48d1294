package hint

import (
	"reflect"

	"itemadapter/primitive"
)

// Null is the none type for use as a union member.
type Null = primitive.Null

// Union is implemented by union marker types. UnionMembers reports the
// member types in declaration order.
type Union interface {
	UnionMembers() []reflect.Type
	UnionValue() any
}

// Union2 holds a value of one of two types.
type Union2[A, B any] struct{ Value any }

func (Union2[A, B]) UnionMembers() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}

func (u Union2[A, B]) UnionValue() any { return u.Value }

// Union3 holds a value of one of three types.
type Union3[A, B, C any] struct{ Value any }

func (Union3[A, B, C]) UnionMembers() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
}

func (u Union3[A, B, C]) UnionValue() any { return u.Value }

// Union4 holds a value of one of four types.
type Union4[A, B, C, D any] struct{ Value any }

func (Union4[A, B, C, D]) UnionMembers() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D]()}
}

func (u Union4[A, B, C, D]) UnionValue() any { return u.Value }

var (
	unionType = reflect.TypeFor[Union]()
	tupleType = reflect.TypeFor[Tuple]()
	enumType  = reflect.TypeFor[Enum]()
)

// UnionMembers returns the members of a union marker type, or false when t
// is not one.
func UnionMembers(t reflect.Type) ([]reflect.Type, bool) {
	if t == nil || t.Kind() == reflect.Interface || t.Kind() == reflect.Pointer || !t.Implements(unionType) {
		return nil, false
	}

	return reflect.Zero(t).Interface().(Union).UnionMembers(), true
}
