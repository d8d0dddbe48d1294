package primitive

import (
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is a JSON-Schema simple type. The declaration order is the order
// in which simple kinds are listed inside a union.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (unknown) value for KindEnum

	KindNull
	KindBoolean
	KindInteger
	KindNumber
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Null is the Go spelling of the none type inside type hints.
type Null struct{}

var nullType = reflect.TypeOf(Null{})

// JSONType returns the JSON-Schema "type" keyword value of the kind.
func (k KindEnum) JSONType() string {
	switch k {
	default:
		return ""
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumeric() bool {
	return k == KindInteger || k == KindNumber
}

// FromReflectType maps a type to its simple kind by reflect kind, so named
// scalar types map like their underlying type. Zero is returned for anything
// that is not a simple kind.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	if rtype == nullType {
		return KindNull
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	}
}

// FromValue maps a literal value to its simple kind; nil is KindNull.
func FromValue(v any) KindEnum {
	if v == nil {
		return KindNull
	}

	return FromReflectType(reflect.TypeOf(v))
}
