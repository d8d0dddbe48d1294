package adapter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemadapter/adapter"
	"itemadapter/hint"
	"itemadapter/store"
	"itemadapter/warehouse"
)

func TestAsDict(t *testing.T) {
	t.Run("plain map", func(t *testing.T) {
		d, err := wrap(t, map[string]any{"name": "asdf", "value": 1234}).AsDict()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "asdf", "value": 1234}, d)
	})

	t.Run("nested wrapped item in a list", func(t *testing.T) {
		sub := wrap(t, &pair{Name: "sub", Value: 1})
		d, err := wrap(t, map[string]any{"name": "asdf", "value": 1234, "nested": []any{sub, 2}}).AsDict()
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"name":   "asdf",
			"value":  1234,
			"nested": []any{map[string]any{"name": "sub", "value": 1}, 2},
		}, d)
	})

	t.Run("nested items of every family", func(t *testing.T) {
		ship := &warehouse.Shipment{}
		a := wrap(t, ship)
		require.NoError(t, a.Set("tracking", "X1"))
		require.NoError(t, a.Set("destination", warehouse.Address{Street: "Main", Country: "NL", Zone: 2}))

		d, err := wrap(t, map[string]any{
			"shipment": ship,
			"pairs":    []pair{{Name: "a", Value: 1}},
			"names":    []string{"x", "y"},
			"ids":      [2]int{4, 5},
			"index":    map[string]pair{"k": {Name: "k", Value: 3}},
		}).AsDict()
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"tracking": "X1",
			"destination": map[string]any{
				"Street": "Main", "City": "", "Country": "NL", "Zone": 2,
			},
		}, d["shipment"])
		assert.Equal(t, []any{map[string]any{"name": "a", "value": 1}}, d["pairs"])
		assert.Equal(t, []string{"x", "y"}, d["names"])
		assert.Equal(t, [2]int{4, 5}, d["ids"])
		assert.Equal(t, map[string]any{"k": map[string]any{"name": "k", "value": 3}}, d["index"])
	})

	t.Run("hints", func(t *testing.T) {
		d, err := wrap(t, map[string]any{
			"tuple": hint.Tuple2[int, pair]{First: 1, Second: pair{Name: "t"}},
			"union": hint.Union2[int, string]{Value: "u"},
			"set":   hint.NewSet("a", "b"),
			"none":  nil,
		}).AsDict()
		require.NoError(t, err)

		assert.Equal(t, []any{1, map[string]any{"name": "t", "value": 0}}, d["tuple"])
		assert.Equal(t, "u", d["union"])
		assert.Equal(t, hint.NewSet("a", "b"), d["set"])
		assert.Nil(t, d["none"])
	})

	t.Run("struct", func(t *testing.T) {
		line := &store.OrderLine{Product: store.Product{Name: "lamp", Tags: []string{"home"}}, Quantity: 2}
		d, err := wrap(t, line).AsDict()
		require.NoError(t, err)

		assert.Equal(t, 2, d["quantity"])
		product, ok := d["product"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "lamp", product["name"])
		assert.Equal(t, []string{"home"}, product["tags"])
		assert.NotContains(t, product, "stock")
	})
}

func TestItemAdapterString(t *testing.T) {
	assert.Equal(t, `<ItemAdapter for pair(name="asdf", value=1234)>`,
		wrap(t, &pair{Name: "asdf", Value: 1234}).String())
	assert.Equal(t, `<ItemAdapter for map[string]interface {}(a=1, b="x")>`,
		wrap(t, map[string]any{"b": "x", "a": 1}).String())
	assert.Equal(t, `<ItemAdapter for Parcel()>`, wrap(t, &warehouse.Parcel{}).String())
}

type holder struct {
	P *pair `item:"p"`
	Q pair  `item:"q"`
}

type link struct {
	Name string `item:"name"`
	Next *link  `item:"next"`
}

func TestItemAdapterStringNested(t *testing.T) {
	cycle := &link{Name: "x"}
	cycle.Next = cycle

	tests := []struct {
		name string
		item any
		want string
	}{
		{
			name: "struct fields",
			item: &holder{P: &pair{Name: "a"}, Q: pair{Name: "b", Value: 2}},
			want: `<ItemAdapter for holder(p=<ItemAdapter for pair(name="a", value=0)>, q=<ItemAdapter for pair(name="b", value=2)>)>`,
		},
		{
			name: "unset pointer is skipped",
			item: &holder{},
			want: `<ItemAdapter for holder(q=<ItemAdapter for pair(name="", value=0)>)>`,
		},
		{
			name: "map values",
			item: map[string]any{"p": &pair{Name: "c", Value: 3}},
			want: `<ItemAdapter for map[string]interface {}(p=<ItemAdapter for pair(name="c", value=3)>)>`,
		},
		{
			name: "chain",
			item: &link{Name: "x", Next: &link{Name: "y"}},
			want: `<ItemAdapter for link(name="x", next=<ItemAdapter for link(name="y")>)>`,
		},
		{
			name: "cycle",
			item: cycle,
			want: `<ItemAdapter for link(name="x", next=<ItemAdapter for link(...)>)>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(t, tt.item).String())
		})
	}
}

func TestItemAdapterDump(t *testing.T) {
	out := wrap(t, &pair{Name: "asdf", Value: 1234}).Dump()
	assert.True(t, strings.HasPrefix(out, "(*adapter_test.pair)"), out)
	assert.Contains(t, out, `Name: (string) (len=4) "asdf"`)
}

func TestItemAdapterMapping(t *testing.T) {
	a := wrap(t, &pair{Name: "asdf", Value: 1234})

	got := map[string]any{}
	for k, v := range a.All() {
		got[k] = v
	}
	assert.Equal(t, map[string]any{"name": "asdf", "value": 1234}, got)

	v, ok := a.Lookup("name")
	assert.True(t, ok)
	assert.Equal(t, "asdf", v)
	assert.Nil(t, a.Value("missing"))
	assert.Same(t, a.Item(), adapter.Unwrap(a))
	assert.IsType(t, adapter.StructFamily{}, a.Family())

	var _ hint.ObjectLike = a
}
