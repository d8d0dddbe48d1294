package adapter

import (
	"reflect"

	"itemadapter/hint"
)

// AsDict converts the item to a plain map, converting nested items at any
// depth. Containers keep their kind and, when their elements still fit,
// their type; otherwise they become []any or map[K]any.
func (a *ItemAdapter) AsDict() (map[string]any, error) {
	out := make(map[string]any, a.Len())
	for k, v := range a.All() {
		plain, err := a.registry.plain(v)
		if err != nil {
			return nil, err
		}

		out[k] = plain
	}

	return out, nil
}

func (r *Registry) plain(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case *ItemAdapter:
		return v.AsDict()
	case hint.Union:
		return r.plain(v.UnionValue())
	case hint.Tuple:
		return r.plainValues(v.TupleValues())
	}

	if r.IsItem(v) {
		a, err := r.Wrap(v)
		if err != nil {
			return nil, err
		}

		return a.AsDict()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v, nil
		}

		fallthrough
	case reflect.Array:
		values := make([]any, rv.Len())
		for i := range values {
			values[i] = rv.Index(i).Interface()
		}

		converted, err := r.plainValues(values)
		if err != nil {
			return nil, err
		}

		return refill(rv, converted), nil
	case reflect.Map:
		if hint.IsSetType(rv.Type()) || rv.IsNil() {
			return v, nil
		}

		return r.plainMap(rv)
	}

	return v, nil
}

func (r *Registry) plainValues(values []any) ([]any, error) {
	out := make([]any, len(values))
	for i, v := range values {
		p, err := r.plain(v)
		if err != nil {
			return nil, err
		}

		out[i] = p
	}

	return out, nil
}

// refill stores converted in a container of the type of rv when every
// element fits, and returns converted itself otherwise.
func refill(rv reflect.Value, converted []any) any {
	t := rv.Type()
	var out reflect.Value
	if t.Kind() == reflect.Array {
		out = reflect.New(t).Elem()
	} else {
		out = reflect.MakeSlice(t, len(converted), len(converted))
	}

	for i, v := range converted {
		if v == nil {
			continue
		}

		ev := reflect.ValueOf(v)
		if !ev.Type().AssignableTo(t.Elem()) {
			return converted
		}

		out.Index(i).Set(ev)
	}

	return out.Interface()
}

var anyType = reflect.TypeFor[any]()

// plainMap keeps the map type when every converted value fits, and falls
// back to a map of any with the same key type.
func (r *Registry) plainMap(rv reflect.Value) (any, error) {
	t := rv.Type()
	same := reflect.MakeMapWithSize(t, rv.Len())
	generic := reflect.MakeMapWithSize(reflect.MapOf(t.Key(), anyType), rv.Len())
	fits := true

	iter := rv.MapRange()
	for iter.Next() {
		p, err := r.plain(iter.Value().Interface())
		if err != nil {
			return nil, err
		}

		if p == nil {
			generic.SetMapIndex(iter.Key(), reflect.Zero(anyType))
		} else {
			generic.SetMapIndex(iter.Key(), reflect.ValueOf(p))
		}

		if !fits {
			continue
		}

		if p == nil {
			same.SetMapIndex(iter.Key(), reflect.Zero(t.Elem()))
		} else if pv := reflect.ValueOf(p); pv.Type().AssignableTo(t.Elem()) {
			same.SetMapIndex(iter.Key(), pv)
		} else {
			fits = false
		}
	}

	if fits {
		return same.Interface(), nil
	}

	return generic.Interface(), nil
}
