package adapter

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"itemadapter/meta"
)

// ItemAdapter is the uniform mapping view over an item of any family.
type ItemAdapter struct {
	adapter  Adapter
	family   Family
	registry *Registry
}

func (a *ItemAdapter) Item() any { return a.adapter.Item() }

// Family returns the family that wrapped the item.
func (a *ItemAdapter) Family() Family { return a.family }

func (a *ItemAdapter) Get(name string) (any, error) { return a.adapter.Get(name) }

// Value returns the value of name, or nil when it cannot be read.
func (a *ItemAdapter) Value(name string) any {
	v, _ := a.adapter.Get(name)
	return v
}

// Lookup returns the value of name and whether it is present.
func (a *ItemAdapter) Lookup(name string) (any, bool) {
	v, err := a.adapter.Get(name)
	return v, err == nil
}

// Has reports whether name holds a value.
func (a *ItemAdapter) Has(name string) bool {
	_, err := a.adapter.Get(name)
	return err == nil
}

func (a *ItemAdapter) Set(name string, v any) error { return a.adapter.Set(name, v) }

func (a *ItemAdapter) Delete(name string) error { return a.adapter.Delete(name) }

func (a *ItemAdapter) Keys() []string { return a.adapter.Keys() }

func (a *ItemAdapter) Len() int { return a.adapter.Len() }

// All iterates over the present fields in Keys order.
func (a *ItemAdapter) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range a.adapter.Keys() {
			v, err := a.adapter.Get(k)
			if err != nil {
				continue
			}

			if !yield(k, v) {
				return
			}
		}
	}
}

// FieldMeta returns the metadata of a field, empty for families without
// field metadata.
func (a *ItemAdapter) FieldMeta(name string) (meta.Mapping, error) {
	if g, ok := a.adapter.(FieldMetaGetter); ok {
		return g.FieldMeta(name)
	}

	return fieldMeta(a.family, ClassOf(a.adapter.Item()), name)
}

// FieldNames returns the declared field names, or a live view of the keys
// when the family declares none.
func (a *ItemAdapter) FieldNames() NamesView {
	if n, ok := a.adapter.(FieldNamer); ok {
		return n.FieldNames()
	}

	return NewNamesView(a.adapter.Keys)
}

// String renders the item as <ItemAdapter for Class(key=value, ...)>.
// Nested items render the same way; an item reached again through itself
// renders as Class(...).
func (a *ItemAdapter) String() string {
	return a.format(make(map[uintptr]struct{}))
}

func (a *ItemAdapter) format(seen map[uintptr]struct{}) string {
	item := a.adapter.Item()
	class := className(ClassOf(item))

	if rv := reflect.ValueOf(item); rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Map {
		if p := rv.Pointer(); p != 0 {
			if _, ok := seen[p]; ok {
				return "<ItemAdapter for " + class + "(...)>"
			}

			seen[p] = struct{}{}
			defer delete(seen, p)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<ItemAdapter for %s(", class)
	first := true
	for k, v := range a.All() {
		if !first {
			b.WriteString(", ")
		}

		first = false
		fmt.Fprintf(&b, "%s=%s", k, a.repr(v, seen))
	}

	b.WriteString(")>")
	return b.String()
}

func (a *ItemAdapter) repr(v any, seen map[uintptr]struct{}) string {
	if v == nil {
		return "nil"
	}

	if a.registry != nil && a.registry.IsItem(v) {
		if nested, err := a.registry.Wrap(v); err == nil {
			return nested.format(seen)
		}
	}

	if reflect.TypeOf(v).Kind() == reflect.String {
		return fmt.Sprintf("%q", v)
	}

	return fmt.Sprintf("%v", v)
}

var dumpConfig = spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true, DisableCapacities: true}

// Dump renders the wrapped item in depth for debugging.
func (a *ItemAdapter) Dump() string {
	return dumpConfig.Sdump(a.adapter.Item())
}
