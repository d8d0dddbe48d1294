package adapter

import (
	"reflect"
	"slices"

	"itemadapter/meta"
	"itemadapter/schema"
)

// Adapter is the mapping contract over one wrapped item.
type Adapter interface {
	Item() any
	Get(name string) (any, error)
	Set(name string, v any) error
	Delete(name string) error
	// Keys returns the names of the fields that hold a value.
	Keys() []string
	Len() int
}

// Family recognizes one kind of item container and wraps its instances.
type Family interface {
	Name() string
	IsItemClass(t reflect.Type) bool
	IsItem(v any) bool
	New(item any) (Adapter, error)
}

// FieldNamesProvider is implemented by families whose field names are
// known from the class. known is false when they are not statically knowable.
type FieldNamesProvider interface {
	FieldNamesFromClass(t reflect.Type) (names []string, known bool, err error)
}

// FieldMetaProvider is implemented by families with field metadata.
type FieldMetaProvider interface {
	FieldMetaFromClass(t reflect.Type, name string) (meta.Mapping, error)
}

// SchemaProvider is implemented by families deriving their own schema.
type SchemaProvider interface {
	JSONSchema(t reflect.Type, st *schema.State) (*schema.Schema, error)
}

// FieldNamer is implemented by adapters whose field names differ from Keys.
type FieldNamer interface {
	FieldNames() NamesView
}

// FieldMetaGetter is implemented by adapters answering metadata queries
// without a class lookup.
type FieldMetaGetter interface {
	FieldMeta(name string) (meta.Mapping, error)
}

// NamesView is a read-only view of field names. Views over maps are live.
type NamesView struct {
	names func() []string
}

func NewNamesView(fn func() []string) NamesView { return NamesView{names: fn} }

// StaticNames is a view over a fixed list.
func StaticNames(names []string) NamesView {
	names = slices.Clone(names)
	return NamesView{names: func() []string { return slices.Clone(names) }}
}

func (v NamesView) Names() []string {
	if v.names == nil {
		return nil
	}

	return v.names()
}

func (v NamesView) Has(name string) bool { return slices.Contains(v.Names(), name) }

func (v NamesView) Len() int { return len(v.Names()) }

// ClassOf returns the class of an item instance: its dynamic type with one
// pointer level removed. A reflect.Type is a class, never an instance, and
// has no class.
func ClassOf(v any) reflect.Type {
	if v == nil {
		return nil
	}

	if _, ok := v.(reflect.Type); ok {
		return nil
	}

	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		if reflect.ValueOf(v).IsNil() {
			return nil
		}

		return t.Elem()
	}

	return t
}

// isItemByClass is the instance predicate shared by the built-in families.
func isItemByClass(f Family, v any) bool {
	t := ClassOf(v)
	return t != nil && f.IsItemClass(t)
}

// addressable returns the settable value behind item and whether item was
// passed by pointer.
func addressable(item any) (reflect.Value, bool) {
	rv := reflect.ValueOf(item)
	if rv.Kind() == reflect.Pointer {
		return rv.Elem(), true
	}

	return rv, false
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// coerce converts v to a value storable in a location of type want. nil
// fits nilable types; values convert between numeric kinds, between string
// kinds of the same shape, and into a pointer to their type.
func coerce(v any, want reflect.Type, owner reflect.Type, field string) (reflect.Value, error) {
	if v == nil {
		if isNilable(want.Kind()) {
			return reflect.Zero(want), nil
		}

		return reflect.Value{}, &ValueError{Class: className(owner), Field: field, Want: want}
	}

	rv := reflect.ValueOf(v)
	got := rv.Type()

	switch {
	case got.AssignableTo(want):
		return rv, nil
	case isNumeric(got.Kind()) && isNumeric(want.Kind()),
		got.Kind() == reflect.String && want.Kind() == reflect.String:
		return rv.Convert(want), nil
	case want.Kind() == reflect.Pointer && got.AssignableTo(want.Elem()):
		p := reflect.New(want.Elem())
		p.Elem().Set(rv)
		return p, nil
	}

	return reflect.Value{}, &ValueError{Class: className(owner), Field: field, Want: want, Got: got}
}
