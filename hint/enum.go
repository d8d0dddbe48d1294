package hint

import "reflect"

// Enum is implemented by enumeration types. EnumValues lists the literal
// values of every member in declaration order.
type Enum interface {
	EnumValues() []any
}

// EnumValues returns the member values of an enumeration type, or false
// when t is not one.
func EnumValues(t reflect.Type) ([]any, bool) {
	if t == nil || t.Kind() == reflect.Interface || t.Kind() == reflect.Pointer {
		return nil, false
	}

	if t.Implements(enumType) {
		return reflect.Zero(t).Interface().(Enum).EnumValues(), true
	}

	if reflect.PointerTo(t).Implements(enumType) {
		return reflect.New(t).Interface().(Enum).EnumValues(), true
	}

	return nil, false
}
