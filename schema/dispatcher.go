package schema

import (
	"encoding"
	"reflect"

	"itemadapter/hint"
	"itemadapter/options"
	"itemadapter/primitive"
)

//go:generate go tool stringer -type=DispatcherEnum -output=dispatcher_string.go

// DispatcherEnum is the shape a type hint is rendered as.
type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherAny
	DispatcherUnion
	DispatcherTuple
	DispatcherOptional
	DispatcherBytes
	DispatcherArray
	DispatcherSet
	DispatcherMapping
	DispatcherItem
	DispatcherEnumeration
	DispatcherText
	DispatcherObjectLike
	DispatcherArrayLike
	DispatcherSimple

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// Dispatch classifies t. Marker types and unnamed composites are generic
// containers and win over the resolver; named types are offered to the
// resolver before being classified structurally.
func Dispatch(t reflect.Type, st *State) DispatcherEnum {
	if t == nil {
		return DispatcherUnknown
	}

	if _, ok := hint.UnionMembers(t); ok {
		return DispatcherUnion
	}

	if _, ok := hint.TupleMembers(t); ok {
		return DispatcherTuple
	}

	if t.Name() == "" {
		if d := dispatchComposite(t); d != DispatcherUnknown {
			return d
		}

		if t.Kind() == reflect.Interface && t.NumMethod() == 0 {
			return DispatcherAny
		}
	}

	if r := st.Resolver(); r != nil && r.IsItemClass(t) {
		return DispatcherItem
	}

	if _, ok := hint.EnumValues(t); ok {
		return DispatcherEnumeration
	}

	if st.Has(options.FeatureTextMarshalerStrings) && isTextMarshaler(t) {
		return DispatcherText
	}

	if d := dispatchComposite(t); d != DispatcherUnknown {
		return d
	}

	if st.Has(options.FeatureDuckTyping) && t.Kind() != reflect.String {
		if hint.IsObjectLike(t) {
			return DispatcherObjectLike
		}

		if hint.IsArrayLike(t) {
			return DispatcherArrayLike
		}
	}

	if primitive.FromReflectType(t) != 0 {
		return DispatcherSimple
	}

	return DispatcherUnknown
}

func dispatchComposite(t reflect.Type) DispatcherEnum {
	switch t.Kind() {
	default:
		return DispatcherUnknown
	case reflect.Pointer:
		return DispatcherOptional
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return DispatcherBytes
		}

		return DispatcherArray
	case reflect.Array:
		return DispatcherArray
	case reflect.Map:
		if hint.IsSetType(t) {
			return DispatcherSet
		}

		return DispatcherMapping
	}
}

func isTextMarshaler(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}

	return t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType)
}
