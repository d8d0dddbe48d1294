// Package model declares validated-model metadata: a per-class
// configuration and per-field FieldInfo records.
package model

import (
	"reflect"

	"itemadapter/schema"
)

// Model is implemented by model classes. ModelFields is keyed by Go field
// name; exported fields missing from it are plain required fields.
type Model interface {
	ModelConfig() Config
	ModelFields() map[string]FieldInfo
}

// Extra is the policy for attributes not declared as fields.
type Extra int

const (
	ExtraIgnore Extra = iota
	ExtraAllow
	ExtraForbid
)

func (e Extra) String() string {
	switch e {
	case ExtraIgnore:
		return "ignore"
	case ExtraAllow:
		return "allow"
	case ExtraForbid:
		return "forbid"
	default:
		return "unknown"
	}
}

// Config is the class-level configuration.
type Config struct {
	Extra           Extra
	JSONSchemaExtra *schema.Schema
}

// FieldInfo is the declaration of one field. Zero values mean "not set".
type FieldInfo struct {
	Alias          string
	Annotation     reflect.Type // overrides the struct field type when set
	Default        any
	HasDefault     bool
	DefaultFactory func() any
	// Deprecated is a bool or a deprecation message.
	Deprecated      any
	Description     string
	Examples        []any
	Frozen          bool
	Ge, Gt, Le, Lt  any
	MinLength       *int
	MaxLength       *int
	MinItems        *int
	MaxItems        *int
	MultipleOf      any
	Pattern         string
	Title           string
	JSONSchemaExtra *schema.Schema
}

// IsDeprecated reports the truthiness of Deprecated.
func (fi FieldInfo) IsDeprecated() (deprecated, set bool) {
	switch v := fi.Deprecated.(type) {
	case nil:
		return false, false
	case bool:
		return v, true
	case string:
		return v != "", true
	default:
		return true, true
	}
}

// Metadata returns the attributes that are set, keyed like the field
// arguments they come from.
func (fi FieldInfo) Metadata() map[string]any {
	m := make(map[string]any)
	set := func(key string, v any, ok bool) {
		if ok {
			m[key] = v
		}
	}

	set("alias", fi.Alias, fi.Alias != "")
	set("annotation", fi.Annotation, fi.Annotation != nil)
	set("default", fi.Default, fi.HasDefault)
	set("default_factory", fi.DefaultFactory, fi.DefaultFactory != nil)
	set("deprecated", fi.Deprecated, fi.Deprecated != nil)
	set("description", fi.Description, fi.Description != "")
	set("examples", fi.Examples, fi.Examples != nil)
	set("frozen", fi.Frozen, fi.Frozen)
	set("ge", fi.Ge, fi.Ge != nil)
	set("gt", fi.Gt, fi.Gt != nil)
	set("le", fi.Le, fi.Le != nil)
	set("lt", fi.Lt, fi.Lt != nil)
	set("json_schema_extra", fi.JSONSchemaExtra, fi.JSONSchemaExtra != nil)
	set("multiple_of", fi.MultipleOf, fi.MultipleOf != nil)
	set("pattern", fi.Pattern, fi.Pattern != "")
	set("title", fi.Title, fi.Title != "")

	for key, p := range map[string]*int{
		"min_length": fi.MinLength, "max_length": fi.MaxLength,
		"min_items": fi.MinItems, "max_items": fi.MaxItems,
	} {
		if p != nil {
			m[key] = *p
		}
	}

	return m
}

// Int returns a pointer to n, for the length bounds of FieldInfo.
func Int(n int) *int { return &n }
