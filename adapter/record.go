package adapter

import (
	"fmt"
	"reflect"

	"itemadapter/meta"
	"itemadapter/record"
	"itemadapter/schema"
)

// RecordFamily adapts framework records. Writes to undeclared fields fail.
type RecordFamily struct {
	available bool
}

func NewRecordFamily(opts ...FamilyOption) *RecordFamily {
	return &RecordFamily{available: !newFamilyConfig(opts).unavailable}
}

func (f *RecordFamily) Name() string { return "record" }

func (f *RecordFamily) Available() bool { return f.available }

func (f *RecordFamily) IsItemClass(t reflect.Type) bool {
	return f.available && t != nil && t.Kind() == reflect.Struct && t.Name() != "" &&
		reflect.PointerTo(t).Implements(recordType)
}

func (f *RecordFamily) IsItem(v any) bool { return isItemByClass(f, v) }

// New wraps a record. A record passed by value is copied and read-only.
func (f *RecordFamily) New(item any) (Adapter, error) {
	if !f.available {
		return nil, &UnavailableError{Family: f.Name()}
	}

	if !f.IsItem(item) {
		return nil, &ClassError{Type: reflect.TypeOf(item), Value: item, Instance: true}
	}

	rec, mutable := item.(record.Record)
	if !mutable {
		p := reflect.New(reflect.TypeOf(item))
		p.Elem().Set(reflect.ValueOf(item))
		rec = p.Interface().(record.Record)
	}

	return &recordAdapter{
		item:    item,
		t:       ClassOf(item),
		rec:     rec,
		fields:  rec.RecordFields(),
		mutable: mutable,
	}, nil
}

func (f *RecordFamily) FieldNamesFromClass(t reflect.Type) ([]string, bool, error) {
	fields, err := f.fields(t)
	if err != nil {
		return nil, false, err
	}

	return fields.Names(), true, nil
}

// FieldMetaFromClass returns a live view of the declared field metadata.
func (f *RecordFamily) FieldMetaFromClass(t reflect.Type, name string) (meta.Mapping, error) {
	fields, err := f.fields(t)
	if err != nil {
		return meta.Mapping{}, err
	}

	def, ok := fields.Lookup(name)
	if !ok {
		return meta.Mapping{}, notDeclared(t, name, fields.Names())
	}

	return meta.NewMapping(def.Field), nil
}

// JSONSchema derives the field properties from their metadata, then
// applies the declared annotations.
func (f *RecordFamily) JSONSchema(t reflect.Type, st *schema.State) (*schema.Schema, error) {
	fields, err := f.fields(t)
	if err != nil {
		return nil, err
	}

	s, err := DefaultJSONSchema(f, t, st)
	if err != nil {
		return nil, err
	}

	props := s.Object("properties")
	for _, def := range fields {
		if def.Type == nil || props == nil {
			continue
		}

		prop := props.Object(def.Name)
		if prop == nil {
			continue
		}

		if err := schema.UpdateFromType(prop, def.Type, st); err != nil {
			return nil, fmt.Errorf("%s field %s: %w", className(t), def.Name, err)
		}
	}

	return s, nil
}

func (f *RecordFamily) fields(t reflect.Type) (record.Fields, error) {
	if !f.available {
		return nil, &UnavailableError{Family: f.Name()}
	}

	if !f.IsItemClass(t) {
		return nil, &ClassError{Type: t}
	}

	rec, _ := reflect.New(t).Interface().(record.Record)
	return rec.RecordFields(), nil
}

type recordAdapter struct {
	item    any
	t       reflect.Type
	rec     record.Record
	fields  record.Fields
	mutable bool
}

func (a *recordAdapter) Item() any { return a.item }

func (a *recordAdapter) missing(name string) error {
	if _, ok := a.fields.Lookup(name); ok {
		return unset(a.t, name)
	}

	return notDeclared(a.t, name, a.fields.Names())
}

func (a *recordAdapter) Get(name string) (any, error) {
	v, ok := record.Base(a.rec).Get(name)
	if !ok {
		return nil, a.missing(name)
	}

	return v, nil
}

func (a *recordAdapter) Set(name string, v any) error {
	if _, ok := a.fields.Lookup(name); !ok {
		return notDeclared(a.t, name, a.fields.Names())
	}

	if !a.mutable {
		return fmt.Errorf("%s: %w", className(a.t), ErrReadOnly)
	}

	record.Base(a.rec).Set(name, v)
	return nil
}

func (a *recordAdapter) Delete(name string) error {
	if !a.mutable {
		return fmt.Errorf("%s: %w", className(a.t), ErrReadOnly)
	}

	if !record.Base(a.rec).Delete(name) {
		return a.missing(name)
	}

	return nil
}

func (a *recordAdapter) Keys() []string { return record.Base(a.rec).Keys() }

func (a *recordAdapter) Len() int { return record.Base(a.rec).Len() }

func (a *recordAdapter) FieldNames() NamesView { return StaticNames(a.fields.Names()) }

func (a *recordAdapter) FieldMeta(name string) (meta.Mapping, error) {
	def, ok := a.fields.Lookup(name)
	if !ok {
		return meta.Mapping{}, notDeclared(a.t, name, a.fields.Names())
	}

	return meta.NewMapping(def.Field), nil
}
