package adapter

import (
	"fmt"
	"reflect"
	"slices"

	"itemadapter/hint"
	"itemadapter/schema"
)

// MapFamily adapts maps keyed by a string kind. Set-shaped maps are not
// items.
type MapFamily struct{}

func (MapFamily) Name() string { return "map" }

func (MapFamily) IsItemClass(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Map && t.Key().Kind() == reflect.String && !hint.IsSetType(t)
}

func (f MapFamily) IsItem(v any) bool { return isItemByClass(f, v) }

func (f MapFamily) New(item any) (Adapter, error) {
	if !f.IsItem(item) {
		return nil, &ClassError{Type: reflect.TypeOf(item), Value: item, Instance: true}
	}

	rv, byPointer := addressable(item)
	return &mapAdapter{item: item, rv: rv, byPointer: byPointer}, nil
}

// FieldNamesFromClass reports that map field names are not knowable from
// the class.
func (f MapFamily) FieldNamesFromClass(t reflect.Type) ([]string, bool, error) {
	if !f.IsItemClass(t) {
		return nil, false, &ClassError{Type: t}
	}

	return nil, false, nil
}

func (f MapFamily) JSONSchema(t reflect.Type, _ *schema.State) (*schema.Schema, error) {
	if !f.IsItemClass(t) {
		return nil, &ClassError{Type: t}
	}

	return schema.Of("type", "object"), nil
}

type mapAdapter struct {
	item      any
	rv        reflect.Value
	byPointer bool
}

func (a *mapAdapter) Item() any { return a.item }

func (a *mapAdapter) key(name string) reflect.Value {
	return reflect.ValueOf(name).Convert(a.rv.Type().Key())
}

func (a *mapAdapter) Get(name string) (any, error) {
	v := a.rv.MapIndex(a.key(name))
	if !v.IsValid() {
		return nil, notDeclared(a.rv.Type(), name, a.Keys())
	}

	return v.Interface(), nil
}

// Set stores v under name. A nil map is allocated when it was passed by
// pointer.
func (a *mapAdapter) Set(name string, v any) error {
	if a.rv.IsNil() {
		if !a.byPointer {
			return fmt.Errorf("%s: nil map: %w", className(a.rv.Type()), ErrReadOnly)
		}

		a.rv.Set(reflect.MakeMap(a.rv.Type()))
	}

	value, err := coerce(v, a.rv.Type().Elem(), a.rv.Type(), name)
	if err != nil {
		return err
	}

	a.rv.SetMapIndex(a.key(name), value)
	return nil
}

func (a *mapAdapter) Delete(name string) error {
	key := a.key(name)
	if !a.rv.MapIndex(key).IsValid() {
		return notDeclared(a.rv.Type(), name, a.Keys())
	}

	a.rv.SetMapIndex(key, reflect.Value{})
	return nil
}

// Keys returns the keys in sorted order.
func (a *mapAdapter) Keys() []string {
	keys := make([]string, 0, a.rv.Len())
	iter := a.rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}

	slices.Sort(keys)
	return keys
}

func (a *mapAdapter) Len() int { return a.rv.Len() }

// FieldNames is a live view over the current keys.
func (a *mapAdapter) FieldNames() NamesView { return NewNamesView(a.Keys) }
