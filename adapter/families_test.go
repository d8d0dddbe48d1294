package adapter_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemadapter/adapter"
	"itemadapter/store"
	"itemadapter/warehouse"
)

type pair struct {
	Name  string `item:"name"`
	Value int    `item:"value"`
}

func wrap(t *testing.T, item any) *adapter.ItemAdapter {
	t.Helper()

	a, err := adapter.Wrap(item)
	require.NoError(t, err)
	return a
}

func TestRoundTrip(t *testing.T) {
	n := 3
	tests := []struct {
		name  string
		item  any
		field string
		value any
		// required fields survive Delete unchanged.
		required bool
	}{
		{"map", map[string]any{}, "a", 1, false},
		{"named map", map[string]int{"b": 2}, "a", 1, false},
		{"struct", &store.Product{}, "stock", &n, false},
		{"struct plain int", &pair{}, "value", 7, true},
		{"struct plain string", &pair{}, "name", "x", true},
		{"attr", &warehouse.Address{}, "Lines", []string{"x"}, false},
		{"attr plain string", &warehouse.Address{}, "Street", "Main", true},
		{"model", &warehouse.Customer{}, "Nickname", &[]string{"nick"}[0], false},
		{"model plain string", &warehouse.Customer{}, "Email", "a@b", true},
		{"record", &warehouse.Shipment{}, "weight", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := wrap(t, tt.item)

			require.NoError(t, a.Set(tt.field, tt.value))
			got, err := a.Get(tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
			assert.Contains(t, a.Keys(), tt.field)
			assert.Equal(t, reflect.ValueOf(tt.item).UnsafePointer(), reflect.ValueOf(a.Item()).UnsafePointer())

			if tt.required {
				err := a.Delete(tt.field)
				require.ErrorIs(t, err, adapter.ErrFieldRequired)
				require.ErrorIs(t, err, adapter.ErrFieldNotFound)
				got, err := a.Get(tt.field)
				require.NoError(t, err)
				assert.Equal(t, tt.value, got)
				assert.Contains(t, a.Keys(), tt.field)
				return
			}

			require.NoError(t, a.Delete(tt.field))
			_, err = a.Get(tt.field)
			require.ErrorIs(t, err, adapter.ErrFieldNotFound)
			assert.False(t, a.Has(tt.field))
			assert.NotContains(t, a.Keys(), tt.field)
		})
	}
}

func TestStructAdapter(t *testing.T) {
	p := &store.Product{Name: "lamp", Price: 12.5}
	a := wrap(t, p)

	t.Run("keys skip unset nilable fields", func(t *testing.T) {
		assert.Equal(t, []string{"name", "price", "sku", "created_at", "updated_by"}, a.Keys())
		assert.Equal(t, 5, a.Len())
	})

	t.Run("promoted fields", func(t *testing.T) {
		require.NoError(t, a.Set("updated_by", "ops"))
		assert.Equal(t, "ops", p.UpdatedBy)
	})

	t.Run("delete resets to the tag default", func(t *testing.T) {
		require.NoError(t, a.Delete("updated_by"))
		assert.Equal(t, "system", p.UpdatedBy)
	})

	t.Run("delete without a default fails", func(t *testing.T) {
		err := a.Delete("price")
		require.ErrorIs(t, err, adapter.ErrFieldRequired)
		assert.Equal(t, "Product cannot unset field: price", err.Error())
		assert.InDelta(t, 12.5, p.Price, 0)
		assert.True(t, a.Has("price"))
	})

	t.Run("numeric conversion", func(t *testing.T) {
		require.NoError(t, a.Set("price", 3))
		assert.InDelta(t, 3.0, p.Price, 0)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := a.Set("name", 42)
		require.ErrorIs(t, err, adapter.ErrValueType)
		assert.Equal(t, "Product field name: cannot use int as string", err.Error())
	})

	t.Run("undeclared field", func(t *testing.T) {
		err := a.Set("nmae", "x")
		require.ErrorIs(t, err, adapter.ErrFieldNotDeclared)
		assert.Equal(t, `Product does not support field: nmae (did you mean "name"?)`, err.Error())

		var fe *adapter.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "Product", fe.Class)
		assert.Equal(t, []string{"name"}, fe.Suggestions)
	})

	t.Run("field names", func(t *testing.T) {
		assert.Equal(t, []string{"name", "price", "sku", "tags", "stock", "created_at", "updated_by"}, a.FieldNames().Names())
	})

	t.Run("field meta", func(t *testing.T) {
		m, err := a.FieldMeta("sku")
		require.NoError(t, err)
		assert.Equal(t, "^[A-Z]{3}-[0-9]+$", m.Value("pattern"))

		m, err = a.FieldMeta("updated_by")
		require.NoError(t, err)
		assert.False(t, m.Has("default"))
	})
}

func TestReadOnlyValues(t *testing.T) {
	tests := []struct {
		name  string
		item  any
		field string
		value any
	}{
		{"struct", store.Product{Name: "lamp"}, "name", "desk"},
		{"attr", warehouse.Address{Street: "Main"}, "Street", "Side"},
		{"model", warehouse.Customer{Email: "a@b"}, "Email", "c@d"},
		{"record", warehouse.Shipment{}, "tracking", "X1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := wrap(t, tt.item)
			require.ErrorIs(t, a.Set(tt.field, tt.value), adapter.ErrReadOnly)
			require.ErrorIs(t, a.Delete(tt.field), adapter.ErrReadOnly)
		})
	}

	a := wrap(t, store.Product{Name: "lamp"})
	v, err := a.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "lamp", v)
}

func TestMapAdapter(t *testing.T) {
	t.Run("sorted keys", func(t *testing.T) {
		a := wrap(t, map[string]any{"b": 1, "a": 2, "c": 3})
		assert.Equal(t, []string{"a", "b", "c"}, a.Keys())
		assert.Equal(t, 3, a.Len())
	})

	t.Run("key type conversion", func(t *testing.T) {
		type key string
		m := map[key]float64{}
		a := wrap(t, m)
		require.NoError(t, a.Set("x", 2))
		assert.InDelta(t, 2.0, m["x"], 0)
	})

	t.Run("nil map by pointer", func(t *testing.T) {
		var m map[string]any
		a := wrap(t, &m)
		require.NoError(t, a.Set("x", 1))
		assert.Equal(t, map[string]any{"x": 1}, m)
	})

	t.Run("nil map by value", func(t *testing.T) {
		var m map[string]any
		a := wrap(t, m)
		require.ErrorIs(t, a.Set("x", 1), adapter.ErrReadOnly)
	})

	t.Run("missing key", func(t *testing.T) {
		a := wrap(t, map[string]any{"name": 1})
		_, err := a.Get("nmae")
		require.ErrorIs(t, err, adapter.ErrFieldNotDeclared)
		require.ErrorIs(t, a.Delete("nmae"), adapter.ErrFieldNotFound)
	})

	t.Run("empty metadata", func(t *testing.T) {
		a := wrap(t, map[string]any{"name": 1})
		m, err := a.FieldMeta("anything")
		require.NoError(t, err)
		assert.Zero(t, m.Len())
	})
}

func TestFieldNamesLiveness(t *testing.T) {
	m := map[string]any{"a": 1}
	view := wrap(t, m).FieldNames()
	assert.Equal(t, []string{"a"}, view.Names())

	m["b"] = 2
	assert.Equal(t, []string{"a", "b"}, view.Names())
	assert.True(t, view.Has("b"))

	delete(m, "a")
	assert.Equal(t, 1, view.Len())
}

func TestAttrAdapter(t *testing.T) {
	addr := &warehouse.Address{Street: "Main", Zone: 4}
	a := wrap(t, addr)

	require.NoError(t, a.Delete("Zone"))
	assert.Equal(t, 1, addr.Zone)

	require.NoError(t, a.Delete("Country"))
	assert.Equal(t, "NL", addr.Country)

	m, err := a.FieldMeta("Street")
	require.NoError(t, err)
	assert.Equal(t, "Street", m.Value("label"))

	m, err = a.FieldMeta("City")
	require.NoError(t, err)
	assert.Zero(t, m.Len())

	_, err = a.FieldMeta("Town")
	require.ErrorIs(t, err, adapter.ErrFieldNotDeclared)
}

func TestModelAdapter(t *testing.T) {
	c := &warehouse.Customer{ID: 7, Tier: "pro"}
	a := wrap(t, c)

	err := a.Set("ID", 8)
	require.ErrorIs(t, err, adapter.ErrReadOnly)
	assert.Equal(t, "Customer field ID is frozen: item is read-only", err.Error())
	assert.Equal(t, 7, c.ID)

	require.NoError(t, a.Delete("Tier"))
	assert.Equal(t, "basic", c.Tier)

	m, err := a.FieldMeta("Tier")
	require.NoError(t, err)
	assert.Equal(t, "use plans", m.Value("deprecated"))
	assert.Equal(t, "basic", m.Value("default"))

	p := &warehouse.Plan{Perks: []string{"a"}}
	pa := wrap(t, p)
	require.NoError(t, pa.Delete("Perks"))
	assert.Nil(t, p.Perks)
}

func TestRecordAdapter(t *testing.T) {
	s := &warehouse.Shipment{}
	a := wrap(t, s)

	require.NoError(t, a.Set("tracking", "X1"))
	require.NoError(t, a.Set("notes", "fragile"))
	require.NoError(t, a.Set("tracking", "X2"))
	assert.Equal(t, []string{"tracking", "notes"}, a.Keys())

	_, err := a.Get("weight")
	require.ErrorIs(t, err, adapter.ErrFieldUnset)
	assert.Equal(t, "Shipment field is not set: weight", err.Error())

	err = a.Set("trackng", "X3")
	require.ErrorIs(t, err, adapter.ErrFieldNotDeclared)
	assert.Equal(t, `Shipment does not support field: trackng (did you mean "tracking"?)`, err.Error())

	require.ErrorIs(t, a.Delete("weight"), adapter.ErrFieldUnset)

	m, err := a.FieldMeta("tracking")
	require.NoError(t, err)
	assert.Equal(t, "upper", m.Value("serializer"))
	assert.Equal(t, []string{"tracking", "weight", "destination", "notes"}, a.FieldNames().Names())
}

func TestWrapErrors(t *testing.T) {
	tests := []struct {
		name string
		item any
		msg  string
	}{
		{"int", 42, "no adapter found for objects of type: int (42)"},
		{"nil", nil, "no adapter found for objects of type: <nil> (<nil>)"},
		{"class", reflect.TypeFor[store.Product](), ""},
		{"nil pointer", (*store.Product)(nil), ""},
		{"set", map[string]struct{}{}, ""},
		{"slice", []any{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapter.Wrap(tt.item)
			require.ErrorIs(t, err, adapter.ErrNotItemClass)

			var ce *adapter.ClassError
			require.True(t, errors.As(err, &ce))
			if tt.msg != "" {
				assert.Equal(t, tt.msg, err.Error())
			}
		})
	}
}
