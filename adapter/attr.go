package adapter

import (
	"reflect"

	"itemadapter/attr"
	"itemadapter/meta"
	"itemadapter/schema"
)

// AttrFamily adapts structs declaring attr attributes.
type AttrFamily struct {
	available bool
}

func NewAttrFamily(opts ...FamilyOption) *AttrFamily {
	return &AttrFamily{available: !newFamilyConfig(opts).unavailable}
}

func (f *AttrFamily) Name() string { return "attr" }

func (f *AttrFamily) Available() bool { return f.available }

func (f *AttrFamily) IsItemClass(t reflect.Type) bool {
	return f.available && isStructCandidate(t) && implements(t, declarerType)
}

func (f *AttrFamily) IsItem(v any) bool { return isItemByClass(f, v) }

func (f *AttrFamily) New(item any) (Adapter, error) {
	if !f.available {
		return nil, &UnavailableError{Family: f.Name()}
	}

	if !f.IsItem(item) {
		return nil, &ClassError{Type: reflect.TypeOf(item), Value: item, Instance: true}
	}

	t := ClassOf(item)
	attrs := attributes(t)
	a, err := newStructAdapter(item, func(sf meta.StructField) (any, bool) {
		return attrs[sf.GoName].DefaultValue()
	}, nil)
	if err != nil {
		return nil, err
	}

	a.metaOf = func(name string) (meta.Mapping, error) { return f.FieldMetaFromClass(t, name) }
	return a, nil
}

func (f *AttrFamily) FieldNamesFromClass(t reflect.Type) ([]string, bool, error) {
	info, err := f.introspect(t)
	if err != nil {
		return nil, false, err
	}

	return info.Names(), true, nil
}

func (f *AttrFamily) FieldMetaFromClass(t reflect.Type, name string) (meta.Mapping, error) {
	info, err := f.introspect(t)
	if err != nil {
		return meta.Mapping{}, err
	}

	sf, ok := info.Lookup(name)
	if !ok {
		return meta.Mapping{}, notDeclared(t, name, info.Names())
	}

	return meta.NewMapping(meta.AttrMetadata(attributes(t)[sf.GoName])), nil
}

func (f *AttrFamily) JSONSchema(t reflect.Type, st *schema.State) (*schema.Schema, error) {
	info, err := f.introspect(t)
	if err != nil {
		return nil, err
	}

	attrs := attributes(t)
	fields := make([]meta.Field, 0, len(info.Fields))
	for _, sf := range info.Fields {
		fields = append(fields, meta.FromAttribute(sf, attrs[sf.GoName]))
	}

	return buildObjectSchema(objectSpec{
		Type:        t,
		Extra:       classExtra(t),
		ForbidExtra: true,
		Fields:      fields,
		Docs:        true,
	}, st)
}

func (f *AttrFamily) introspect(t reflect.Type) (*meta.StructInfo, error) {
	if !f.available {
		return nil, &UnavailableError{Family: f.Name()}
	}

	if !f.IsItemClass(t) {
		return nil, &ClassError{Type: t}
	}

	return meta.Introspect(t)
}

func attributes(t reflect.Type) map[string]attr.Attribute {
	d, ok := classValue[attr.Declarer](t)
	if !ok {
		return nil
	}

	return d.AttrFields()
}
