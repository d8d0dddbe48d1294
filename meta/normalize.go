package meta

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"

	"itemadapter/attr"
	"itemadapter/model"
	"itemadapter/record"
	"itemadapter/schema"
)

// ExtraKey is the metadata key holding a per-field schema fragment.
const ExtraKey = "json_schema_extra"

// Item tag options that are not part of a field's metadata mapping.
const (
	optDefault = "default"
	optFactory = "factory"
)

// knownFlags are the item tag options that take no value.
var knownFlags = []string{optFactory, "deprecated"}

// ParseDefault converts a tag default to a value of type t. String kinds
// take the text as is; anything else is decoded as JSON.
func ParseDefault(raw string, t reflect.Type) (any, error) {
	if t.Kind() == reflect.String {
		return reflect.ValueOf(raw).Convert(t).Interface(), nil
	}

	v := reflect.New(t)
	if err := json.Unmarshal([]byte(raw), v.Interface()); err != nil {
		return nil, fmt.Errorf("invalid default %q for %s: %w", raw, t, err)
	}

	return v.Elem().Interface(), nil
}

// TagMetadata is the metadata mapping content of a struct field: its tag
// options without default and factory, plus the jsonschema fragment.
func TagMetadata(sf StructField) map[string]any {
	m := make(map[string]any, len(sf.Tag.Options)+1)
	for k, v := range sf.Tag.Options {
		if k == optDefault || k == optFactory {
			continue
		}

		m[k] = v
	}

	if sf.Tag.Extra != nil {
		m[ExtraKey] = sf.Tag.Extra
	}

	return m
}

// FromStructField normalizes a plain struct field.
func FromStructField(sf StructField) (Field, error) {
	f := Field{Name: sf.Name, GoName: sf.GoName, Type: sf.Type, Extra: sf.Tag.Extra}

	for _, flag := range sf.Tag.Flags {
		if !slices.Contains(knownFlags, flag) {
			return f, fmt.Errorf("field %s: unknown flag %q (quote option values that contain commas)", sf.Name, flag)
		}
	}

	opts := sf.Tag.Options
	if raw, ok := opts[optDefault]; ok {
		v, err := ParseDefault(raw, sf.Type)
		if err != nil {
			return f, fmt.Errorf("field %s: %w", sf.Name, err)
		}

		f.Default, f.HasDefault = v, true
	}

	f.HasFactory = sf.Tag.Has(optFactory)
	f.Title = opts["title"]
	f.Description = opts["description"]
	if sf.Tag.Has("deprecated") {
		f.Deprecated = boolPtr(true)
	}

	c, err := constraintsFromOptions(opts)
	if err != nil {
		return f, fmt.Errorf("field %s: %w", sf.Name, err)
	}

	f.Constraints = c
	return f, nil
}

func constraintsFromOptions(opts map[string]string) (Constraints, error) {
	var (
		c   Constraints
		err error
	)

	number := func(key string) any {
		raw, ok := opts[key]
		if !ok || err != nil {
			return nil
		}

		if _, perr := strconv.ParseFloat(raw, 64); perr != nil {
			err = fmt.Errorf("option %s: %q is not a number", key, raw)
			return nil
		}

		return json.Number(raw)
	}

	length := func(key string) *int {
		raw, ok := opts[key]
		if !ok || err != nil {
			return nil
		}

		n, perr := strconv.Atoi(raw)
		if perr != nil {
			err = fmt.Errorf("option %s: %q is not an integer", key, raw)
			return nil
		}

		return &n
	}

	c.Minimum = number("ge")
	c.ExclusiveMinimum = number("gt")
	c.Maximum = number("le")
	c.ExclusiveMaximum = number("lt")
	c.MinLength = length("min_length")
	c.MaxLength = length("max_length")
	c.MinItems = length("min_items")
	c.MaxItems = length("max_items")
	c.Pattern = opts["pattern"]
	if err == nil && c.Pattern != "" && schema.IsValidPattern(c.Pattern) {
		if _, perr := regexp.Compile(c.Pattern); perr != nil {
			err = fmt.Errorf("option pattern: %w", perr)
		}
	}

	return c, err
}

// FromAttribute normalizes an attr attribute declared on sf.
func FromAttribute(sf StructField, a attr.Attribute) Field {
	f := Field{Name: sf.Name, GoName: sf.GoName, Type: sf.Type, Extra: sf.Tag.Extra}
	if a.Type != nil {
		f.Type = a.Type
	}

	if extra := ExtraFrom(a.Metadata); extra != nil {
		f.Extra = extra
	}

	f.Default, f.HasDefault = a.Default, a.HasDefault
	f.HasFactory = a.HasFactory()

	for _, v := range attr.Flatten(a.Validator) {
		switch v := v.(type) {
		case attr.NumberValidator:
			bound := numberBound(&f.Constraints, v.Op)
			if bound != nil && *bound == nil {
				*bound = v.Bound
			}
		case attr.InValidator:
			if f.Constraints.Enum == nil {
				f.Constraints.Enum = slices.Clone(v.Options)
			}
		case attr.MinLenValidator:
			if f.Constraints.MinLength == nil {
				f.Constraints.MinLength = intPtr(v.MinLength)
			}
		case attr.MaxLenValidator:
			if f.Constraints.MaxLength == nil {
				f.Constraints.MaxLength = intPtr(v.MaxLength)
			}
		case attr.MatchesReValidator:
			if f.Constraints.Pattern == "" {
				f.Constraints.Pattern = v.Pattern
			}
		}
	}

	return f
}

func numberBound(c *Constraints, op attr.CompareOp) *any {
	switch op {
	case attr.OpGe:
		return &c.Minimum
	case attr.OpGt:
		return &c.ExclusiveMinimum
	case attr.OpLe:
		return &c.Maximum
	case attr.OpLt:
		return &c.ExclusiveMaximum
	default:
		return nil
	}
}

// AttrMetadata is the metadata mapping content of an attribute.
func AttrMetadata(a attr.Attribute) map[string]any {
	if a.Metadata == nil {
		return map[string]any{}
	}

	return a.Metadata
}

// FromFieldInfo normalizes a model field declared on sf.
func FromFieldInfo(sf StructField, fi model.FieldInfo) Field {
	f := Field{
		Name:        sf.Name,
		GoName:      sf.GoName,
		Type:        sf.Type,
		Default:     fi.Default,
		HasDefault:  fi.HasDefault,
		HasFactory:  fi.DefaultFactory != nil,
		Title:       fi.Title,
		Description: fi.Description,
		Examples:    fi.Examples,
		Extra:       fi.JSONSchemaExtra,
		Constraints: Constraints{
			Minimum:          fi.Ge,
			ExclusiveMinimum: fi.Gt,
			Maximum:          fi.Le,
			ExclusiveMaximum: fi.Lt,
			MinLength:        fi.MinLength,
			MaxLength:        fi.MaxLength,
			MinItems:         fi.MinItems,
			MaxItems:         fi.MaxItems,
			Pattern:          fi.Pattern,
		},
	}

	if fi.Annotation != nil {
		f.Type = fi.Annotation
	}

	if f.Extra == nil {
		f.Extra = sf.Tag.Extra
	}

	if deprecated, ok := fi.IsDeprecated(); ok {
		f.Deprecated = boolPtr(deprecated)
	}

	return f
}

// FromRecordField normalizes a record field declaration. Records carry no
// defaults of their own: a default in the schema fragment makes the field
// optional.
func FromRecordField(def record.Def) Field {
	return Field{Name: def.Name, Type: def.Type, Extra: ExtraFrom(def.Field)}
}

// ExtraFrom reads the schema fragment stored under ExtraKey.
func ExtraFrom(m map[string]any) *schema.Schema {
	switch v := m[ExtraKey].(type) {
	case *schema.Schema:
		return v
	case map[string]any:
		return schema.FromMap(v)
	default:
		return nil
	}
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }
