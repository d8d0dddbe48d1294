package adapter

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"itemadapter/internal/match"
)

var (
	// ErrNotItemClass is returned when no family recognizes a type or value.
	ErrNotItemClass = errors.New("not a valid item class")
	// ErrFieldNotFound is returned when a field cannot be read or written.
	ErrFieldNotFound = errors.New("field not found")
	// ErrFieldNotDeclared refines ErrFieldNotFound: the class has no such field.
	ErrFieldNotDeclared = fmt.Errorf("%w: not declared", ErrFieldNotFound)
	// ErrFieldUnset refines ErrFieldNotFound: the field is declared but holds no value.
	ErrFieldUnset = fmt.Errorf("%w: not set", ErrFieldNotFound)
	// ErrFieldRequired refines ErrFieldNotFound: the field can be neither
	// unset nor reset to a declared default.
	ErrFieldRequired = fmt.Errorf("%w: cannot unset", ErrFieldNotFound)
	// ErrSupportUnavailable is returned by family-specific entry points of a
	// family whose backing support is not available.
	ErrSupportUnavailable = errors.New("support not available")
	// ErrReadOnly is returned when mutating an item wrapped by value.
	ErrReadOnly = errors.New("item is read-only")
	// ErrValueType is returned when a value cannot be stored in a field.
	ErrValueType = errors.New("value has the wrong type")
)

// ClassError names the type no family recognized.
type ClassError struct {
	Type reflect.Type
	// Value is the rejected instance of instance-level queries.
	Value    any
	Instance bool
}

func (e *ClassError) Error() string {
	if e.Instance {
		return fmt.Sprintf("no adapter found for objects of type: %s (%v)", typeString(e.Type), e.Value)
	}

	return fmt.Sprintf("%s is not a valid item class", typeString(e.Type))
}

func (e *ClassError) Unwrap() error { return ErrNotItemClass }

// FieldError names the class and field of a failed field access.
type FieldError struct {
	Class string
	Field string
	// Kind is ErrFieldNotDeclared, ErrFieldUnset or ErrFieldRequired.
	Kind        error
	Suggestions []string
}

func (e *FieldError) Error() string {
	var b strings.Builder
	switch {
	case errors.Is(e.Kind, ErrFieldUnset):
		fmt.Fprintf(&b, "%s field is not set: %s", e.Class, e.Field)
	case errors.Is(e.Kind, ErrFieldRequired):
		fmt.Fprintf(&b, "%s cannot unset field: %s", e.Class, e.Field)
	default:
		fmt.Fprintf(&b, "%s does not support field: %s", e.Class, e.Field)
	}

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", quoteAll(e.Suggestions))
	}

	return b.String()
}

func (e *FieldError) Unwrap() error { return e.Kind }

func notDeclared(t reflect.Type, field string, known []string) error {
	return &FieldError{
		Class:       className(t),
		Field:       field,
		Kind:        ErrFieldNotDeclared,
		Suggestions: match.Suggest(field, known),
	}
}

func unset(t reflect.Type, field string) error {
	return &FieldError{Class: className(t), Field: field, Kind: ErrFieldUnset}
}

func required(t reflect.Type, field string) error {
	return &FieldError{Class: className(t), Field: field, Kind: ErrFieldRequired}
}

// UnavailableError names the family whose support is missing.
type UnavailableError struct {
	Family string
}

func (e *UnavailableError) Error() string {
	return e.Family + " support is not available"
}

func (e *UnavailableError) Unwrap() error { return ErrSupportUnavailable }

// ValueError describes a value that does not fit a field.
type ValueError struct {
	Class string
	Field string
	Want  reflect.Type
	Got   reflect.Type
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s field %s: cannot use %s as %s", e.Class, e.Field, typeString(e.Got), typeString(e.Want))
}

func (e *ValueError) Unwrap() error { return ErrValueType }

func className(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}

	return strings.Join(quoted, " or ")
}
