package adapter

import (
	"reflect"

	"itemadapter/meta"
	"itemadapter/model"
	"itemadapter/schema"
)

// ModelFamily adapts validated models. Frozen fields reject writes.
type ModelFamily struct {
	available bool
}

func NewModelFamily(opts ...FamilyOption) *ModelFamily {
	return &ModelFamily{available: !newFamilyConfig(opts).unavailable}
}

func (f *ModelFamily) Name() string { return "model" }

func (f *ModelFamily) Available() bool { return f.available }

func (f *ModelFamily) IsItemClass(t reflect.Type) bool {
	return f.available && isStructCandidate(t) && implements(t, modelType)
}

func (f *ModelFamily) IsItem(v any) bool { return isItemByClass(f, v) }

func (f *ModelFamily) New(item any) (Adapter, error) {
	if !f.available {
		return nil, &UnavailableError{Family: f.Name()}
	}

	if !f.IsItem(item) {
		return nil, &ClassError{Type: reflect.TypeOf(item), Value: item, Instance: true}
	}

	t := ClassOf(item)
	m, _ := classValue[model.Model](t)
	infos := m.ModelFields()
	a, err := newStructAdapter(item, func(sf meta.StructField) (any, bool) {
		fi := infos[sf.GoName]
		switch {
		case fi.DefaultFactory != nil:
			return fi.DefaultFactory(), true
		case fi.HasDefault:
			return fi.Default, true
		default:
			return nil, false
		}
	}, func(sf meta.StructField) bool {
		return infos[sf.GoName].Frozen
	})
	if err != nil {
		return nil, err
	}

	a.metaOf = func(name string) (meta.Mapping, error) { return f.FieldMetaFromClass(t, name) }
	return a, nil
}

func (f *ModelFamily) FieldNamesFromClass(t reflect.Type) ([]string, bool, error) {
	info, _, err := f.introspect(t)
	if err != nil {
		return nil, false, err
	}

	return info.Names(), true, nil
}

func (f *ModelFamily) FieldMetaFromClass(t reflect.Type, name string) (meta.Mapping, error) {
	info, m, err := f.introspect(t)
	if err != nil {
		return meta.Mapping{}, err
	}

	sf, ok := info.Lookup(name)
	if !ok {
		return meta.Mapping{}, notDeclared(t, name, info.Names())
	}

	return meta.NewMapping(m.ModelFields()[sf.GoName].Metadata()), nil
}

// JSONSchema forbids additional properties only when the model config
// forbids extra attributes.
func (f *ModelFamily) JSONSchema(t reflect.Type, st *schema.State) (*schema.Schema, error) {
	info, m, err := f.introspect(t)
	if err != nil {
		return nil, err
	}

	cfg := m.ModelConfig()
	infos := m.ModelFields()
	fields := make([]meta.Field, 0, len(info.Fields))
	for _, sf := range info.Fields {
		fields = append(fields, meta.FromFieldInfo(sf, infos[sf.GoName]))
	}

	extra := cfg.JSONSchemaExtra
	if extra == nil {
		extra = classExtra(t)
	}

	return buildObjectSchema(objectSpec{
		Type:        t,
		Extra:       extra,
		ForbidExtra: cfg.Extra == model.ExtraForbid,
		Fields:      fields,
		Docs:        true,
	}, st)
}

func (f *ModelFamily) introspect(t reflect.Type) (*meta.StructInfo, model.Model, error) {
	if !f.available {
		return nil, nil, &UnavailableError{Family: f.Name()}
	}

	if !f.IsItemClass(t) {
		return nil, nil, &ClassError{Type: t}
	}

	m, _ := classValue[model.Model](t)
	info, err := meta.Introspect(t)
	if err != nil {
		return nil, nil, err
	}

	return info, m, nil
}
