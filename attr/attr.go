// Package attr declares attribute metadata for struct items: defaults,
// default factories, validators and free-form metadata.
//
// A struct opts in by implementing Declarer. Every exported field is an
// attribute; AttrFields only needs to list the ones that carry metadata.
package attr

import "reflect"

// Declarer is implemented by attribute classes. The map is keyed by Go
// field name.
type Declarer interface {
	AttrFields() map[string]Attribute
}

// Attribute is the declaration of one field.
type Attribute struct {
	Default    any
	HasDefault bool
	Factory    func() any
	Validator  Validator
	Metadata   map[string]any
	// Type overrides the struct field type as the annotation when set.
	Type reflect.Type
}

type Option func(*Attribute)

// Field builds an attribute from options.
func Field(opts ...Option) Attribute {
	var a Attribute
	for _, opt := range opts {
		opt(&a)
	}

	return a
}

func Default(v any) Option {
	return func(a *Attribute) {
		a.Default = v
		a.HasDefault = true
	}
}

func Factory(fn func() any) Option {
	return func(a *Attribute) { a.Factory = fn }
}

// Validate sets the validator; several validators are combined with And.
func Validate(validators ...Validator) Option {
	return func(a *Attribute) {
		if len(validators) == 1 {
			a.Validator = validators[0]
			return
		}

		a.Validator = And(validators...)
	}
}

func Metadata(m map[string]any) Option {
	return func(a *Attribute) { a.Metadata = m }
}

func Type(t reflect.Type) Option {
	return func(a *Attribute) { a.Type = t }
}

// HasFactory reports whether the default is produced by a factory.
func (a Attribute) HasFactory() bool { return a.Factory != nil }

// DefaultValue returns the static default or the factory's product.
func (a Attribute) DefaultValue() (any, bool) {
	if a.Factory != nil {
		return a.Factory(), true
	}

	return a.Default, a.HasDefault
}
