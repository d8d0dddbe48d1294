package schema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemadapter/schema"
)

func TestSchemaOrder(t *testing.T) {
	s := schema.New()
	s.Set("c", 1).Set("a", 2).Set("b", 3)
	s.Set("a", 4)
	assert.Equal(t, []string{"c", "a", "b"}, s.Keys())
	assert.Equal(t, 4, s.Value("a"))

	s.Delete("a")
	s.Delete("missing")
	assert.Equal(t, []string{"c", "b"}, s.Keys())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, `{"c":1,"b":3}`, s.String())
}

func TestSetDefault(t *testing.T) {
	s := schema.Of("type", "string")

	assert.Equal(t, "string", s.SetDefault("type", "integer"))
	assert.Equal(t, "x", s.SetDefault("title", "x"))
	assert.Equal(t, []string{"type", "title"}, s.Keys())

	items, ok := s.SetDefault("items", schema.New()).(*schema.Schema)
	require.True(t, ok)
	items.Set("type", "number")
	assert.Equal(t, "number", s.Object("items").Value("type"))
}

func TestMerge(t *testing.T) {
	s := schema.Of("type", "object", "title", "Mine")
	s.Merge(schema.Of("title", "Theirs", "required", []any{"a"}, "type", "array"))

	assert.Equal(t, `{"type":"object","title":"Mine","required":["a"]}`, s.String())
}

func TestClone(t *testing.T) {
	orig := schema.Of("properties", schema.Of("a", schema.Of("type", "string")), "enum", []any{"x"})
	c := orig.Clone()

	c.Object("properties").Object("a").Set("type", "integer")
	c.Value("enum").([]any)[0] = "y"

	assert.Equal(t, `{"properties":{"a":{"type":"string"}},"enum":["x"]}`, orig.String())

	var nilSchema *schema.Schema
	assert.Equal(t, 0, nilSchema.Clone().Len())
	assert.False(t, nilSchema.Has("type"))
}

func TestParse(t *testing.T) {
	const doc = `{"b":1,"a":{"y":2.50,"x":[1,{"k":true},null]},"c":"<a>&"}`

	s, err := schema.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, s.Keys())
	assert.Equal(t, json.Number("1"), s.Value("b"))
	assert.Equal(t, []string{"y", "x"}, s.Object("a").Keys())
	assert.Equal(t, doc, s.String())

	for _, bad := range []string{`[1]`, `{"a":`, `"x"`, ``} {
		_, err := schema.Parse([]byte(bad))
		assert.Error(t, err, bad)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var doc struct {
		Schema *schema.Schema `json:"schema"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"schema":{"z":1,"a":2}}`), &doc))
	assert.Equal(t, []string{"z", "a"}, doc.Schema.Keys())
}

func TestFromMap(t *testing.T) {
	s := schema.FromMap(map[string]any{
		"type":  "object",
		"items": map[string]any{"type": "string"},
		"anyOf": []any{map[string]any{"type": "null"}},
	})

	assert.Equal(t, []string{"anyOf", "items", "type"}, s.Keys())
	assert.Equal(t, "string", s.Object("items").Value("type"))
	assert.IsType(t, &schema.Schema{}, s.Value("anyOf").([]any)[0])
	assert.Equal(t, map[string]any{"type": "string"}, s.Object("items").Map())
}

func TestOfPanics(t *testing.T) {
	assert.Panics(t, func() { schema.Of("type") })
	assert.Panics(t, func() { schema.Of(1, 2) })
}

func TestExport(t *testing.T) {
	s := schema.Of(
		"type", "object",
		"properties", schema.Of(
			"b", schema.Of("type", "integer", "minimum", json.Number("1")),
			"a", schema.Of("type", "string", "maxLength", 3),
		),
		"required", []any{"b"},
	)

	t.Run("json", func(t *testing.T) {
		out, err := schema.Export(s, schema.FormatJSON)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(out), "{\n  \"type\": \"object\",\n  \"properties\": {\n    \"b\""), string(out))
		assert.JSONEq(t, s.String(), string(out))

		out, err = schema.Export(schema.Of("pattern", "<[a-z]>&"), schema.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"pattern\": \"<[a-z]>&\"\n}\n", string(out))
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := schema.Export(s, schema.FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, `type: object
properties:
    b:
        type: integer
        minimum: 1
    a:
        type: string
        maxLength: 3
required:
    - b
`, string(out))
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := schema.Export(s, schema.Format(9))
		require.Error(t, err)
	})
}
