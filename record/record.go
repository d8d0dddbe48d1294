// Package record provides framework items: key-addressed records whose
// fields are declared up front by the class, each with a free-form metadata
// map.
//
//	type Product struct {
//		record.Item
//	}
//
//	func (Product) RecordFields() record.Fields {
//		return record.Fields{
//			record.Declare[string]("name", nil),
//			record.Declare[float64]("price", record.Field{"serializer": "str"}),
//		}
//	}
package record

import (
	"reflect"
	"slices"
)

// Field is the metadata of one declared field.
type Field map[string]any

// Def declares one field.
type Def struct {
	Name string
	// Type is the annotation of the field, nil when the field is untyped.
	Type  reflect.Type
	Field Field
}

// Fields declares the fields of a record class in order.
type Fields []Def

// Declare declares a field annotated with T.
func Declare[T any](name string, f Field) Def {
	return Def{Name: name, Type: reflect.TypeFor[T](), Field: nonNil(f)}
}

// Untyped declares a field without an annotation.
func Untyped(name string, f Field) Def {
	return Def{Name: name, Field: nonNil(f)}
}

func nonNil(f Field) Field {
	if f == nil {
		return Field{}
	}

	return f
}

// Lookup returns the declaration of name.
func (fs Fields) Lookup(name string) (Def, bool) {
	i := slices.IndexFunc(fs, func(d Def) bool { return d.Name == name })
	if i < 0 {
		return Def{}, false
	}

	return fs[i], true
}

func (fs Fields) Names() []string {
	names := make([]string, len(fs))
	for i, d := range fs {
		names[i] = d.Name
	}

	return names
}

// Record is implemented by pointers to structs embedding Item.
type Record interface {
	RecordFields() Fields
	base() *Item
}

// Item stores record values in assignment order. Embed it in a record class.
type Item struct {
	keys   []string
	values map[string]any
}

func (it *Item) base() *Item { return it }

// Base returns the embedded storage of r.
func Base(r Record) *Item { return r.base() }

func (it *Item) Get(name string) (any, bool) {
	v, ok := it.values[name]
	return v, ok
}

func (it *Item) Set(name string, v any) {
	if it.values == nil {
		it.values = make(map[string]any)
	}

	if _, ok := it.values[name]; !ok {
		it.keys = append(it.keys, name)
	}

	it.values[name] = v
}

// Delete removes name and reports whether it was set.
func (it *Item) Delete(name string) bool {
	if _, ok := it.values[name]; !ok {
		return false
	}

	delete(it.values, name)
	it.keys = slices.DeleteFunc(it.keys, func(k string) bool { return k == name })
	return true
}

// Keys returns the set field names in assignment order.
func (it *Item) Keys() []string {
	return slices.Clone(it.keys)
}

func (it *Item) Len() int { return len(it.keys) }
