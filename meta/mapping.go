package meta

import (
	"iter"
	"maps"
	"slices"
)

// Mapping is a read-only view of a field's native metadata. It reads
// through to the map it was built from.
type Mapping struct {
	m map[string]any
}

// NewMapping returns a view of m.
func NewMapping(m map[string]any) Mapping {
	return Mapping{m: m}
}

// Empty is the mapping of families without field metadata.
func Empty() Mapping { return Mapping{} }

func (m Mapping) Get(key string) (any, bool) {
	v, ok := m.m[key]
	return v, ok
}

// Value returns the value under key, or nil.
func (m Mapping) Value(key string) any { return m.m[key] }

func (m Mapping) Has(key string) bool {
	_, ok := m.m[key]
	return ok
}

func (m Mapping) Lookup(key string) (any, bool) { return m.Get(key) }

func (m Mapping) Len() int { return len(m.m) }

// Keys returns the keys in sorted order.
func (m Mapping) Keys() []string {
	return slices.Sorted(maps.Keys(m.m))
}

// All iterates the entries in key order.
func (m Mapping) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the entries.
func (m Mapping) Map() map[string]any {
	out := make(map[string]any, len(m.m))
	maps.Copy(out, m.m)
	return out
}
