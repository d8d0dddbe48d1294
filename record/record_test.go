package record_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemadapter/record"
)

type product struct {
	record.Item
}

func (product) RecordFields() record.Fields {
	return record.Fields{
		record.Declare[string]("name", nil),
		record.Declare[float64]("price", record.Field{"serializer": "str"}),
		record.Untyped("notes", nil),
	}
}

func TestFields(t *testing.T) {
	fields := product{}.RecordFields()
	assert.Equal(t, []string{"name", "price", "notes"}, fields.Names())

	def, ok := fields.Lookup("price")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[float64](), def.Type)
	assert.Equal(t, "str", def.Field["serializer"])

	def, ok = fields.Lookup("notes")
	require.True(t, ok)
	assert.Nil(t, def.Type)
	assert.NotNil(t, def.Field)

	_, ok = fields.Lookup("missing")
	assert.False(t, ok)
}

func TestItem(t *testing.T) {
	p := &product{}
	var r record.Record = p

	it := record.Base(r)
	assert.Same(t, &p.Item, it)
	assert.Equal(t, 0, it.Len())

	it.Set("price", 1.5)
	it.Set("name", "lamp")
	it.Set("price", 2.5)
	assert.Equal(t, []string{"price", "name"}, it.Keys())

	v, ok := it.Get("price")
	require.True(t, ok)
	assert.Equal(t, 2.5, v)

	assert.True(t, it.Delete("price"))
	assert.False(t, it.Delete("price"))
	assert.Equal(t, []string{"name"}, it.Keys())
	assert.Equal(t, 1, it.Len())
}
