package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema is an insertion-ordered JSON-Schema object. Values are JSON
// scalars, []any, map[string]any or nested *Schema.
type Schema struct {
	keys   []string
	values map[string]any
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{values: make(map[string]any)}
}

// Of builds a schema from alternating key, value arguments.
func Of(kv ...any) *Schema {
	if len(kv)%2 != 0 {
		panic("schema.Of requires an even number of arguments")
	}

	s := New()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("schema.Of key at position %d is %T, not string", i, kv[i]))
		}

		s.Set(key, kv[i+1])
	}

	return s
}

// FromMap builds a schema from a plain map. Keys are sorted; nested maps
// become nested schemas.
func FromMap(m map[string]any) *Schema {
	s := New()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		s.Set(k, fromPlain(m[k]))
	}

	return s
}

func fromPlain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return FromMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = fromPlain(e)
		}

		return out
	default:
		return v
	}
}

func (s *Schema) Len() int {
	if s == nil {
		return 0
	}

	return len(s.keys)
}

// Keys returns the keys in insertion order.
func (s *Schema) Keys() []string {
	if s == nil {
		return nil
	}

	return append([]string(nil), s.keys...)
}

func (s *Schema) Has(key string) bool {
	if s == nil {
		return false
	}

	_, ok := s.values[key]
	return ok
}

func (s *Schema) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}

	v, ok := s.values[key]
	return v, ok
}

// Value returns the value stored under key, or nil.
func (s *Schema) Value(key string) any {
	v, _ := s.Get(key)
	return v
}

// Object returns the nested schema stored under key, or nil.
func (s *Schema) Object(key string) *Schema {
	v, _ := s.Get(key)
	sub, _ := v.(*Schema)
	return sub
}

// Set stores v under key. A new key goes last, an existing key keeps its position.
func (s *Schema) Set(key string, v any) *Schema {
	if s.values == nil {
		s.values = make(map[string]any)
	}

	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}

	s.values[key] = v
	return s
}

// SetDefault stores v under key unless key is present, and returns the value
// now stored under key.
func (s *Schema) SetDefault(key string, v any) any {
	if existing, ok := s.Get(key); ok {
		return existing
	}

	s.Set(key, v)
	return v
}

func (s *Schema) Delete(key string) {
	if !s.Has(key) {
		return
	}

	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Merge set-defaults every key of other into s, keeping other's order for new keys.
func (s *Schema) Merge(other *Schema) {
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		s.SetDefault(k, v)
	}
}

// Clone returns a deep copy of s.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return New()
	}

	c := &Schema{keys: append([]string(nil), s.keys...), values: make(map[string]any, len(s.values))}
	for k, v := range s.values {
		c.values[k] = cloneValue(v)
	}

	return c
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Schema:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}

		return out
	default:
		return v
	}
}

// Map converts s into plain nested maps, losing key order.
func (s *Schema) Map() map[string]any {
	out := make(map[string]any, s.Len())
	for _, k := range s.Keys() {
		out[k] = plainValue(s.values[k])
	}

	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *Schema:
		return t.Map()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}

		return out
	case map[string]any:
		return maps.Clone(t)
	default:
		return v
	}
}

// String returns the compact JSON form of s.
func (s *Schema) String() string {
	data, err := s.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("schema(%v)", err)
	}

	return string(data)
}

func (s *Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := encodeJSON(&buf, k); err != nil {
			return nil, err
		}

		buf.WriteByte(':')
		if err := encodeJSON(&buf, s.values[k]); err != nil {
			return nil, fmt.Errorf("schema key %q: %w", k, err)
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func encodeJSON(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}

	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// UnmarshalJSON decodes a JSON object keeping its key order. Numbers stay
// json.Number so their literal form survives a round trip.
func (s *Schema) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode schema: %w", err)
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("failed to decode schema: expected object, got %v", tok)
	}

	parsed, err := decodeObject(dec)
	if err != nil {
		return fmt.Errorf("failed to decode schema: %w", err)
	}

	*s = *parsed
	return nil
}

// Parse decodes a JSON object into a schema.
func Parse(data []byte) (*Schema, error) {
	s := New()
	if err := s.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	return s, nil
}

func decodeObject(dec *json.Decoder) (*Schema, error) {
	s := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		s.Set(key, v)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return s, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch d {
	case '{':
		return decodeObject(dec)
	case '[':
		out := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return out, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", d)
	}
}

// MarshalYAML renders s as an ordered YAML mapping.
func (s *Schema) MarshalYAML() (any, error) {
	return s.node()
}

func (s *Schema) node() (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range s.Keys() {
		value, err := toNode(s.values[k])
		if err != nil {
			return nil, fmt.Errorf("schema key %q: %w", k, err)
		}

		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, value)
	}

	return n, nil
}

func toNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *Schema:
		return t.node()
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(t.String(), ".eE") {
			tag = "!!float"
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String()}, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t {
			child, err := toNode(e)
			if err != nil {
				return nil, err
			}

			n.Content = append(n.Content, child)
		}

		return n, nil
	}

	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}

	return n, nil
}
