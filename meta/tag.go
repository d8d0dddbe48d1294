package meta

import (
	"fmt"
	"reflect"
	"strings"

	"itemadapter/schema"
)

// TagName is the struct tag key read for item fields.
const TagName = "item"

// ItemTag is the parsed item tag of a struct field:
//
//	Name string `item:"name,default=asdf,description='A name, spelled out'"`
//	Tags []string `item:",factory" jsonschema:"{\"examples\": [[\"a\"]]}"`
//
// The first element is the field name; the rest are key=value options or
// flags. The jsonschema tag holds a JSON object merged into the property.
type ItemTag struct {
	Name    string
	Skip    bool
	Options map[string]string
	// Flags lists the options given without a value, in tag order.
	Flags []string
	Extra *schema.Schema
}

// ParseItemTag parses the item, json and jsonschema tags of a field.
func ParseItemTag(tag reflect.StructTag) (ItemTag, error) {
	var it ItemTag

	raw, hasItem := tag.Lookup(TagName)
	name, rest, _ := strings.Cut(raw, ",")
	if hasItem && name == "-" && rest == "" {
		return ItemTag{Skip: true}, nil
	}

	opts, flags, err := parseOptions(rest)
	if err != nil {
		return it, fmt.Errorf("%s tag: %w", TagName, err)
	}

	it.Name = name
	it.Options = opts
	it.Flags = flags

	if it.Name == "" {
		jsonName, _, _ := strings.Cut(tag.Get("json"), ",")
		if jsonName == "-" && !hasItem {
			return ItemTag{Skip: true}, nil
		}

		if jsonName != "-" {
			it.Name = jsonName
		}
	}

	if extra, ok := tag.Lookup("jsonschema"); ok && strings.TrimSpace(extra) != "" {
		it.Extra, err = schema.Parse([]byte(extra))
		if err != nil {
			return it, fmt.Errorf("jsonschema tag: %w", err)
		}
	}

	return it, nil
}

// Has reports whether the option or flag key is present.
func (it ItemTag) Has(key string) bool {
	_, ok := it.Options[key]
	return ok
}

// ParseStructTag parses comma-separated options: `key1=value1,key2=value2,flag`.
// Values may be quoted with single or double quotes to include commas.
func ParseStructTag(tag string) (map[string]string, error) {
	result, _, err := parseOptions(tag)
	return result, err
}

func parseOptions(tag string) (map[string]string, []string, error) {
	result := make(map[string]string)
	var flags []string
	if tag == "" {
		return result, nil, nil
	}

	var (
		parts         []string
		current       strings.Builder
		inSingleQuote bool
		inDoubleQuote bool
	)

	for i := 0; i < len(tag); i++ {
		char := tag[i]

		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			current.WriteByte(char)
		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			current.WriteByte(char)
		case char == ',' && !inSingleQuote && !inDoubleQuote:
			if part := strings.TrimSpace(current.String()); part != "" {
				parts = append(parts, part)
			}
			current.Reset()
		default:
			current.WriteByte(char)
		}
	}

	if inSingleQuote || inDoubleQuote {
		return nil, nil, fmt.Errorf("unterminated quote in %q", tag)
	}

	if part := strings.TrimSpace(current.String()); part != "" {
		parts = append(parts, part)
	}

	for _, part := range parts {
		key, value, isPair := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, nil, fmt.Errorf("empty key in %q", part)
		}

		if !isPair {
			result[key] = ""
			flags = append(flags, key)
			continue
		}

		result[key] = unquoteValue(strings.TrimSpace(value))
	}

	return result, flags, nil
}

func unquoteValue(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return value[1 : len(value)-1]
		}
	}

	return value
}
