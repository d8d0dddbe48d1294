package adapter

import (
	"fmt"
	"reflect"

	"itemadapter/meta"
	"itemadapter/schema"
)

// objectSpec describes the object schema of a field-declaring class.
type objectSpec struct {
	Type reflect.Type
	// Extra holds the class-level keys, which win over derived ones.
	Extra       *schema.Schema
	ForbidExtra bool
	Fields      []meta.Field
	// Docs enables field doc comments as descriptions.
	Docs bool
}

func buildObjectSchema(spec objectSpec, st *schema.State) (*schema.Schema, error) {
	s := spec.Extra.Clone()
	s.SetDefault("type", "object")
	if spec.ForbidExtra {
		s.SetDefault("additionalProperties", false)
	}

	if len(spec.Fields) == 0 {
		return s, nil
	}

	props := schema.New()
	for _, f := range spec.Fields {
		prop, err := f.Property(spec.Type, st)
		if err != nil {
			return nil, fmt.Errorf("%s field %s: %w", className(spec.Type), f.Name, err)
		}

		props.Set(f.Name, prop)
	}

	s.Set("properties", props)

	if spec.Docs {
		setDescriptions(props, spec.Fields, st.FieldDocs(spec.Type))
	}

	if !s.Has("required") {
		var required []any
		for _, f := range spec.Fields {
			if !f.HasFactory && !props.Object(f.Name).Has("default") {
				required = append(required, f.Name)
			}
		}

		if len(required) > 0 {
			s.Set("required", required)
		}
	}

	return s, nil
}

func setDescriptions(props *schema.Schema, fields []meta.Field, docs map[string]string) {
	if len(docs) == 0 {
		return
	}

	for _, f := range fields {
		if doc, ok := docs[f.GoName]; ok && f.GoName != "" {
			props.Object(f.Name).SetDefault("description", doc)
		}
	}
}

// DefaultJSONSchema builds the object schema of families without a schema
// of their own. Field properties come from the json_schema_extra entry of
// the field metadata; fields without a default there are required.
func DefaultJSONSchema(f Family, t reflect.Type, st *schema.State) (*schema.Schema, error) {
	s := classExtra(t).Clone()
	s.SetDefault("type", "object")
	s.SetDefault("additionalProperties", false)

	names, _, err := fieldNames(f, t)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return s, nil
	}

	props := schema.New()
	var required []any
	for _, name := range names {
		m, err := fieldMeta(f, t, name)
		if err != nil {
			return nil, err
		}

		prop := meta.ExtraFrom(m.Map()).Clone()
		props.Set(name, prop)
		if !prop.Has("default") {
			required = append(required, name)
		}
	}

	s.Set("properties", props)
	if len(required) > 0 {
		s.SetDefault("required", required)
	}

	return s, nil
}

// FamilyJSONSchema derives the schema of t with f alone: nested items are
// those f recognizes.
func FamilyJSONSchema(f Family, t reflect.Type, opts ...schema.StateOption) (*schema.Schema, error) {
	if err := checkAvailable(f); err != nil {
		return nil, err
	}

	if !f.IsItemClass(t) {
		return nil, &ClassError{Type: t}
	}

	r := familyResolver{family: f}
	return r.JSONSchemaWithState(t, schema.NewState(r, t, opts...))
}

type familyResolver struct {
	family Family
}

func (r familyResolver) IsItemClass(t reflect.Type) bool { return r.family.IsItemClass(t) }

func (r familyResolver) JSONSchemaWithState(t reflect.Type, st *schema.State) (*schema.Schema, error) {
	return familySchema(r.family, t, st)
}

func familySchema(f Family, t reflect.Type, st *schema.State) (*schema.Schema, error) {
	if p, ok := f.(SchemaProvider); ok {
		return p.JSONSchema(t, st)
	}

	return DefaultJSONSchema(f, t, st)
}

func fieldNames(f Family, t reflect.Type) ([]string, bool, error) {
	p, ok := f.(FieldNamesProvider)
	if !ok {
		return nil, false, nil
	}

	return p.FieldNamesFromClass(t)
}

func fieldMeta(f Family, t reflect.Type, name string) (meta.Mapping, error) {
	p, ok := f.(FieldMetaProvider)
	if !ok {
		return meta.Empty(), nil
	}

	return p.FieldMetaFromClass(t, name)
}

type availability interface {
	Available() bool
}

func checkAvailable(f Family) error {
	if a, ok := f.(availability); ok && !a.Available() {
		return &UnavailableError{Family: f.Name()}
	}

	return nil
}
