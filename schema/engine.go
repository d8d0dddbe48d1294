package schema

import (
	"reflect"
	"slices"

	"itemadapter/hint"
	"itemadapter/internal/common"
	"itemadapter/primitive"
)

var kindTypes = map[primitive.KindEnum]reflect.Type{
	primitive.KindNull:    reflect.TypeFor[primitive.Null](),
	primitive.KindBoolean: reflect.TypeFor[bool](),
	primitive.KindInteger: reflect.TypeFor[int](),
	primitive.KindNumber:  reflect.TypeFor[float64](),
	primitive.KindString:  reflect.TypeFor[string](),
}

// UpdateFromType fills prop from the type hint t. Keys already present in
// prop are kept.
func UpdateFromType(prop *Schema, t reflect.Type, st *State) error {
	switch Dispatch(t, st) {
	case DispatcherUnion:
		members, _ := hint.UnionMembers(t)
		return updateFromUnion(prop, members, st)
	case DispatcherOptional:
		return updateFromUnion(prop, []reflect.Type{kindTypes[primitive.KindNull], t.Elem()}, st)
	case DispatcherTuple:
		members, _ := hint.TupleMembers(t)
		return updateFromArray(prop, members, false, st)
	case DispatcherBytes, DispatcherText:
		prop.SetDefault("type", primitive.KindString.JSONType())
	case DispatcherArray:
		return updateFromArray(prop, []reflect.Type{t.Elem()}, false, st)
	case DispatcherSet:
		return updateFromArray(prop, []reflect.Type{t.Key()}, true, st)
	case DispatcherMapping:
		return updateFromMapping(prop, t, st)
	case DispatcherItem:
		return updateFromItem(prop, t, st)
	case DispatcherEnumeration:
		return updateFromEnum(prop, t, st)
	case DispatcherObjectLike:
		prop.SetDefault("type", "object")
	case DispatcherArrayLike:
		prop.SetDefault("type", "array")
		if hint.IsSetLike(t) {
			prop.SetDefault("uniqueItems", true)
		}
	case DispatcherSimple:
		prop.SetDefault("type", primitive.FromReflectType(t).JSONType())
	case DispatcherAny, DispatcherUnknown:
		// unconstrained
	}

	return nil
}

func updateFromArray(prop *Schema, members []reflect.Type, unique bool, st *State) error {
	prop.SetDefault("type", "array")
	if unique {
		prop.SetDefault("uniqueItems", true)
	}

	hadItems := prop.Has("items")
	items, ok := prop.SetDefault("items", New()).(*Schema)
	if !ok {
		return nil
	}

	members = common.Dedup(members)
	var err error
	if common.IsSingle(members) {
		err = UpdateFromType(items, members[0], st)
	} else if common.IsMultiple(members) {
		err = updateFromUnion(items, members, st)
	}

	if err != nil {
		return err
	}

	if items.Len() == 0 && !hadItems {
		prop.Delete("items")
	}

	return nil
}

func updateFromMapping(prop *Schema, t reflect.Type, st *State) error {
	prop.SetDefault("type", "object")

	elem := t.Elem()
	if elem.Kind() == reflect.Interface && elem.NumMethod() == 0 {
		return nil
	}

	additional, ok := prop.SetDefault("additionalProperties", New()).(*Schema)
	if !ok {
		return nil
	}

	return UpdateFromType(additional, elem, st)
}

func updateFromItem(prop *Schema, t reflect.Type, st *State) error {
	if !st.Enter(t) {
		prop.SetDefault("type", "object")
		return nil
	}
	defer st.Leave(t)

	sub, err := st.Resolver().JSONSchemaWithState(t, st)
	if err != nil {
		return err
	}

	prop.Merge(sub)
	return nil
}

func updateFromEnum(prop *Schema, t reflect.Type, st *State) error {
	values, _ := hint.EnumValues(t)
	prop.SetDefault("enum", slices.Clone(values))

	var types []reflect.Type
	for _, v := range values {
		if k := primitive.FromValue(v); k != 0 {
			types = append(types, kindTypes[k])
		} else if vt := reflect.TypeOf(v); vt != t {
			types = append(types, vt)
		}
	}

	types = common.Dedup(types)
	switch {
	case common.IsSingle(types):
		return UpdateFromType(prop, types[0], st)
	case common.IsMultiple(types):
		return updateFromUnion(prop, types, st)
	}

	return nil
}

// updateFromUnion renders a union. Pointer members and nested unions are
// flattened, integer collapses into number when both are present, and an
// author-supplied anyOf is left untouched.
func updateFromUnion(prop *Schema, members []reflect.Type, st *State) error {
	kinds := make(map[primitive.KindEnum]struct{})
	var complexTypes []reflect.Type

	for _, m := range flattenUnion(members, st) {
		if Dispatch(m, st) == DispatcherSimple {
			kinds[primitive.FromReflectType(m)] = struct{}{}
			continue
		}

		complexTypes = append(complexTypes, m)
	}

	_, hasInt := kinds[primitive.KindInteger]
	_, hasNum := kinds[primitive.KindNumber]
	if hasInt && hasNum {
		delete(kinds, primitive.KindInteger)
	}

	simple := simpleTypes(kinds)
	if common.IsEmpty(complexTypes) {
		prop.SetDefault("type", simple)
		return nil
	}

	if prop.Has("anyOf") {
		return nil
	}

	anyOf := make([]any, 0, len(complexTypes)+1)
	if first, ok := common.First(simple); ok {
		var typ any = simple
		if common.IsSingle(simple) {
			typ = first
		}

		anyOf = append(anyOf, Of("type", typ))
	}

	for _, c := range complexTypes {
		sub := New()
		if err := UpdateFromType(sub, c, st); err != nil {
			return err
		}

		anyOf = append(anyOf, sub)
	}

	prop.Set("anyOf", anyOf)
	return nil
}

func flattenUnion(members []reflect.Type, st *State) []reflect.Type {
	var out []reflect.Type
	for _, m := range members {
		switch Dispatch(m, st) {
		case DispatcherOptional:
			out = append(out, flattenUnion([]reflect.Type{kindTypes[primitive.KindNull], m.Elem()}, st)...)
		case DispatcherUnion:
			nested, _ := hint.UnionMembers(m)
			out = append(out, flattenUnion(nested, st)...)
		default:
			out = append(out, m)
		}
	}

	return common.Dedup(out)
}

func simpleTypes(kinds map[primitive.KindEnum]struct{}) []any {
	out := make([]any, 0, len(kinds))
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		if _, ok := kinds[k]; ok {
			out = append(out, k.JSONType())
		}
	}

	return out
}
