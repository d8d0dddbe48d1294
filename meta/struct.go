package meta

import (
	"fmt"
	"reflect"
	"sync"
)

// StructField is one item field of a struct class.
type StructField struct {
	Name   string
	GoName string
	Index  []int
	Type   reflect.Type
	Tag    ItemTag
}

// StructInfo is the flattened field list of a struct class.
type StructInfo struct {
	Type   reflect.Type
	Fields []StructField
	byName map[string]int
	byGo   map[string]int
}

var structCache sync.Map // map[reflect.Type]*StructInfo

// Introspect returns the item fields of the struct type t. Fields of
// embedded structs are promoted; an outer field shadows an inner one with the
// same item name. Results are cached per type.
func Introspect(t reflect.Type) (*StructInfo, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("invalid struct type: %s", t.Kind())
	}

	if info, ok := structCache.Load(t); ok {
		return info.(*StructInfo), nil
	}

	info, err := buildStructInfo(t)
	if err != nil {
		return nil, err
	}

	actual, _ := structCache.LoadOrStore(t, info)
	return actual.(*StructInfo), nil
}

func buildStructInfo(t reflect.Type) (*StructInfo, error) {
	info := &StructInfo{Type: t, byName: make(map[string]int), byGo: make(map[string]int)}

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || throughPointer(t, f.Index) {
			continue
		}

		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			continue
		}

		tag, err := ParseItemTag(f.Tag)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t, f.Name, err)
		}

		if tag.Skip {
			continue
		}

		name := tag.Name
		if name == "" {
			name = f.Name
		}

		field := StructField{Name: name, GoName: f.Name, Index: f.Index, Type: f.Type, Tag: tag}
		if i, ok := info.byName[name]; ok {
			if len(info.Fields[i].Index) <= len(f.Index) {
				continue
			}

			delete(info.byGo, info.Fields[i].GoName)
			info.Fields[i] = field
			info.byGo[f.Name] = i
			continue
		}

		info.byName[name] = len(info.Fields)
		info.byGo[f.Name] = len(info.Fields)
		info.Fields = append(info.Fields, field)
	}

	return info, nil
}

// throughPointer reports whether reaching the field at index dereferences an
// embedded pointer.
func throughPointer(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		f := t.Field(i)
		if f.Type.Kind() == reflect.Pointer {
			return true
		}

		t = f.Type
	}

	return false
}

// Lookup returns the field with the item name name.
func (si *StructInfo) Lookup(name string) (StructField, bool) {
	i, ok := si.byName[name]
	if !ok {
		return StructField{}, false
	}

	return si.Fields[i], true
}

// ByGoName returns the field declared with the Go name name.
func (si *StructInfo) ByGoName(name string) (StructField, bool) {
	i, ok := si.byGo[name]
	if !ok {
		return StructField{}, false
	}

	return si.Fields[i], true
}

// Names returns the item names in declaration order.
func (si *StructInfo) Names() []string {
	names := make([]string, len(si.Fields))
	for i, f := range si.Fields {
		names[i] = f.Name
	}

	return names
}

// HasExported reports whether t has at least one exported field or no field
// at all.
func HasExported(t reflect.Type) bool {
	if t.NumField() == 0 {
		return true
	}

	for _, f := range reflect.VisibleFields(t) {
		if f.IsExported() && !f.Anonymous {
			return true
		}
	}

	return false
}
