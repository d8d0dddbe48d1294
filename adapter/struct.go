package adapter

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"

	"itemadapter/attr"
	"itemadapter/hint"
	"itemadapter/meta"
	"itemadapter/model"
	"itemadapter/primitive"
	"itemadapter/record"
	"itemadapter/schema"
)

var (
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	declarerType      = reflect.TypeFor[attr.Declarer]()
	modelType         = reflect.TypeFor[model.Model]()
	recordType        = reflect.TypeFor[record.Record]()
	extenderType      = reflect.TypeFor[SchemaExtender]()
	nullType          = reflect.TypeFor[primitive.Null]()
)

// SchemaExtender is implemented by item classes contributing top-level
// schema keys. It is called on the zero value of the class.
type SchemaExtender interface {
	JSONSchemaExtra() *schema.Schema
}

func implements(t, iface reflect.Type) bool {
	return t.Implements(iface) || reflect.PointerTo(t).Implements(iface)
}

// classValue returns the zero value of t as I, trying T then *T.
func classValue[I any](t reflect.Type) (I, bool) {
	var zero I
	iface := reflect.TypeFor[I]()
	switch {
	case t.Implements(iface):
		v, ok := reflect.Zero(t).Interface().(I)
		return v, ok
	case reflect.PointerTo(t).Implements(iface):
		v, ok := reflect.New(t).Interface().(I)
		return v, ok
	default:
		return zero, false
	}
}

func classExtra(t reflect.Type) *schema.Schema {
	ext, ok := classValue[SchemaExtender](t)
	if !ok {
		return nil
	}

	return ext.JSONSchemaExtra()
}

// isStructCandidate accepts named struct types that carry fields of their
// own: no hint markers, no self-encoding types, no opaque structs.
func isStructCandidate(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Struct || t.Name() == "" || t == nullType {
		return false
	}

	if hint.IsMarker(t) || implements(t, textMarshalerType) || implements(t, jsonMarshalerType) {
		return false
	}

	return meta.HasExported(t)
}

// StructFamily adapts plain named structs. Field names come from the item
// tag, then the json tag, then the Go name.
type StructFamily struct{}

func (StructFamily) Name() string { return "struct" }

func (StructFamily) IsItemClass(t reflect.Type) bool {
	if !isStructCandidate(t) {
		return false
	}

	return !implements(t, declarerType) && !implements(t, modelType) && !reflect.PointerTo(t).Implements(recordType)
}

func (f StructFamily) IsItem(v any) bool { return isItemByClass(f, v) }

func (f StructFamily) New(item any) (Adapter, error) {
	if !f.IsItem(item) {
		return nil, &ClassError{Type: reflect.TypeOf(item), Value: item, Instance: true}
	}

	a, err := newStructAdapter(item, func(sf meta.StructField) (any, bool) {
		raw, ok := sf.Tag.Options["default"]
		if !ok {
			return nil, false
		}

		v, err := meta.ParseDefault(raw, sf.Type)
		return v, err == nil
	}, nil)
	if err != nil {
		return nil, err
	}

	t := ClassOf(item)
	a.metaOf = func(name string) (meta.Mapping, error) { return f.FieldMetaFromClass(t, name) }
	return a, nil
}

func (f StructFamily) FieldNamesFromClass(t reflect.Type) ([]string, bool, error) {
	info, err := f.introspect(t)
	if err != nil {
		return nil, false, err
	}

	return info.Names(), true, nil
}

func (f StructFamily) FieldMetaFromClass(t reflect.Type, name string) (meta.Mapping, error) {
	info, err := f.introspect(t)
	if err != nil {
		return meta.Mapping{}, err
	}

	sf, ok := info.Lookup(name)
	if !ok {
		return meta.Mapping{}, notDeclared(t, name, info.Names())
	}

	return meta.NewMapping(meta.TagMetadata(sf)), nil
}

func (f StructFamily) JSONSchema(t reflect.Type, st *schema.State) (*schema.Schema, error) {
	info, err := f.introspect(t)
	if err != nil {
		return nil, err
	}

	fields := make([]meta.Field, 0, len(info.Fields))
	for _, sf := range info.Fields {
		field, err := meta.FromStructField(sf)
		if err != nil {
			return nil, err
		}

		fields = append(fields, field)
	}

	return buildObjectSchema(objectSpec{
		Type:        t,
		Extra:       classExtra(t),
		ForbidExtra: true,
		Fields:      fields,
		Docs:        true,
	}, st)
}

func (f StructFamily) introspect(t reflect.Type) (*meta.StructInfo, error) {
	if !f.IsItemClass(t) {
		return nil, &ClassError{Type: t}
	}

	return meta.Introspect(t)
}

// structAdapter translates key access into field access. Items passed by
// value are read-only.
type structAdapter struct {
	item      any
	rv        reflect.Value
	info      *meta.StructInfo
	mutable   bool
	defaultOf func(sf meta.StructField) (any, bool)
	frozen    func(sf meta.StructField) bool
	metaOf    func(name string) (meta.Mapping, error)
}

func newStructAdapter(item any, defaultOf func(meta.StructField) (any, bool), frozen func(meta.StructField) bool) (*structAdapter, error) {
	rv, mutable := addressable(item)
	info, err := meta.Introspect(rv.Type())
	if err != nil {
		return nil, err
	}

	return &structAdapter{item: item, rv: rv, info: info, mutable: mutable, defaultOf: defaultOf, frozen: frozen}, nil
}

func (a *structAdapter) Item() any { return a.item }

func (a *structAdapter) lookup(name string) (meta.StructField, error) {
	sf, ok := a.info.Lookup(name)
	if !ok {
		return sf, notDeclared(a.info.Type, name, a.info.Names())
	}

	return sf, nil
}

func (a *structAdapter) writable(sf meta.StructField) error {
	if !a.mutable {
		return fmt.Errorf("%s: %w", className(a.info.Type), ErrReadOnly)
	}

	if a.frozen != nil && a.frozen(sf) {
		return fmt.Errorf("%s field %s is frozen: %w", className(a.info.Type), sf.Name, ErrReadOnly)
	}

	return nil
}

func (a *structAdapter) Get(name string) (any, error) {
	sf, err := a.lookup(name)
	if err != nil {
		return nil, err
	}

	fv := a.rv.FieldByIndex(sf.Index)
	if isNilable(fv.Kind()) && fv.IsNil() {
		return nil, unset(a.info.Type, name)
	}

	return fv.Interface(), nil
}

func (a *structAdapter) Set(name string, v any) error {
	sf, err := a.lookup(name)
	if err != nil {
		return err
	}

	if err := a.writable(sf); err != nil {
		return err
	}

	fv := a.rv.FieldByIndex(sf.Index)
	value, err := coerce(v, fv.Type(), a.info.Type, name)
	if err != nil {
		return err
	}

	fv.Set(value)
	return nil
}

// Delete unsets a nilable field. A field that cannot be unset falls back to
// its declared default; without one Delete fails with ErrFieldRequired and
// leaves the field untouched.
func (a *structAdapter) Delete(name string) error {
	sf, err := a.lookup(name)
	if err != nil {
		return err
	}

	if err := a.writable(sf); err != nil {
		return err
	}

	fv := a.rv.FieldByIndex(sf.Index)
	if isNilable(fv.Kind()) {
		if fv.IsNil() {
			return unset(a.info.Type, name)
		}

		fv.SetZero()
		return nil
	}

	if a.defaultOf != nil {
		if def, ok := a.defaultOf(sf); ok {
			if value, err := coerce(def, fv.Type(), a.info.Type, name); err == nil {
				fv.Set(value)
				return nil
			}
		}
	}

	return required(a.info.Type, name)
}

func (a *structAdapter) Keys() []string {
	keys := make([]string, 0, len(a.info.Fields))
	for _, sf := range a.info.Fields {
		fv := a.rv.FieldByIndex(sf.Index)
		if isNilable(fv.Kind()) && fv.IsNil() {
			continue
		}

		keys = append(keys, sf.Name)
	}

	return keys
}

func (a *structAdapter) Len() int { return len(a.Keys()) }

func (a *structAdapter) FieldNames() NamesView { return StaticNames(a.info.Names()) }

func (a *structAdapter) FieldMeta(name string) (meta.Mapping, error) {
	if a.metaOf == nil {
		return meta.Empty(), nil
	}

	return a.metaOf(name)
}
