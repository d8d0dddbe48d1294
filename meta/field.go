package meta

import (
	"reflect"
	"slices"

	"itemadapter/schema"
)

// Field is the normalized metadata of one field.
type Field struct {
	Name string
	// GoName is the struct field name, empty for key-addressed families.
	GoName string
	// Type is the annotation; nil when the field is untyped.
	Type        reflect.Type
	Default     any
	HasDefault  bool
	HasFactory  bool
	Title       string
	Description string
	Examples    []any
	Deprecated  *bool
	// Extra is the author-supplied property fragment.
	Extra       *schema.Schema
	Constraints Constraints
}

// Constraints are validation hints rendered as schema keywords.
type Constraints struct {
	Minimum          any
	ExclusiveMinimum any
	Maximum          any
	ExclusiveMaximum any
	Enum             []any
	// MinLength and MaxLength bound strings, or item counts for other types.
	MinLength *int
	MaxLength *int
	MinItems  *int
	MaxItems  *int
	Pattern   string
}

// IsZero reports whether no constraint is set.
func (c Constraints) IsZero() bool {
	return c.Minimum == nil && c.ExclusiveMinimum == nil && c.Maximum == nil && c.ExclusiveMaximum == nil &&
		c.Enum == nil && c.MinLength == nil && c.MaxLength == nil && c.MinItems == nil && c.MaxItems == nil &&
		c.Pattern == ""
}

// Apply set-defaults the constraints on prop. t decides whether length
// bounds are string lengths or item counts.
func (c Constraints) Apply(prop *schema.Schema, t reflect.Type, st *schema.State, typeName, field string) {
	for _, kv := range []struct {
		key   string
		value any
	}{
		{"minimum", c.Minimum},
		{"exclusiveMinimum", c.ExclusiveMinimum},
		{"maximum", c.Maximum},
		{"exclusiveMaximum", c.ExclusiveMaximum},
	} {
		if kv.value != nil {
			prop.SetDefault(kv.key, kv.value)
		}
	}

	if c.Enum != nil {
		prop.SetDefault("enum", slices.Clone(c.Enum))
	}

	minKey, maxKey := "minItems", "maxItems"
	if t != nil && t.Kind() == reflect.String {
		minKey, maxKey = "minLength", "maxLength"
	}

	if c.MinLength != nil {
		prop.SetDefault(minKey, *c.MinLength)
	}

	if c.MaxLength != nil {
		prop.SetDefault(maxKey, *c.MaxLength)
	}

	if c.MinItems != nil {
		prop.SetDefault("minItems", *c.MinItems)
	}

	if c.MaxItems != nil {
		prop.SetDefault("maxItems", *c.MaxItems)
	}

	if c.Pattern != "" {
		schema.UpdateFromPattern(prop, c.Pattern, st, typeName, field)
	}
}

// Required reports whether the field has neither a default nor a factory.
func (f Field) Required() bool {
	return !f.HasDefault && !f.HasFactory
}

// Property renders the field as a schema property: the author fragment
// first, then the default, the type, the constraints and the annotations.
// Keys already present are never overwritten.
func (f Field) Property(owner reflect.Type, st *schema.State) (*schema.Schema, error) {
	prop := f.Extra.Clone()

	if f.HasDefault && !f.HasFactory {
		prop.SetDefault("default", f.Default)
	}

	if f.Type != nil {
		if err := schema.UpdateFromType(prop, f.Type, st); err != nil {
			return nil, err
		}
	}

	f.Constraints.Apply(prop, f.Type, st, ownerName(owner), f.Name)

	if f.Title != "" {
		prop.SetDefault("title", f.Title)
	}

	if f.Description != "" {
		prop.SetDefault("description", f.Description)
	}

	if f.Examples != nil {
		prop.SetDefault("examples", slices.Clone(f.Examples))
	}

	if f.Deprecated != nil {
		prop.SetDefault("deprecated", *f.Deprecated)
	}

	return prop, nil
}

func ownerName(t reflect.Type) string {
	if t == nil {
		return ""
	}

	return t.String()
}
