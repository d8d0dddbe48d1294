package hint_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemadapter/hint"
)

type color string

func (color) EnumValues() []any { return []any{"red", "green"} }

type bag struct{ values []any }

func (b *bag) Len() int { return len(b.values) }

func (b *bag) Contains(v any) bool {
	for _, x := range b.values {
		if x == v {
			return true
		}
	}

	return false
}

func (b *bag) Values() []any { return b.values }

type uniqueBag struct{ bag }

func (u *uniqueBag) IsDisjoint(other hint.ArrayLike) bool {
	for _, v := range u.values {
		if other.Contains(v) {
			return false
		}
	}

	return true
}

type lookup map[string]any

func (l lookup) Len() int { return len(l) }

func (l lookup) Has(key string) bool {
	_, ok := l[key]
	return ok
}

func (l lookup) Keys() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}

	return keys
}

func (l lookup) Lookup(key string) (any, bool) {
	v, ok := l[key]
	return v, ok
}

func (l lookup) Contains(v any) bool { return false }

func (l lookup) Values() []any { return nil }

func TestUnionMembers(t *testing.T) {
	members, ok := hint.UnionMembers(reflect.TypeFor[hint.Union3[string, float64, hint.Null]]())
	require.True(t, ok)
	assert.Equal(t, []reflect.Type{
		reflect.TypeFor[string](), reflect.TypeFor[float64](), reflect.TypeFor[hint.Null](),
	}, members)

	_, ok = hint.UnionMembers(reflect.TypeFor[*hint.Union2[int, string]]())
	assert.False(t, ok)

	_, ok = hint.UnionMembers(reflect.TypeFor[string]())
	assert.False(t, ok)

	u := hint.Union2[int, string]{Value: "x"}
	assert.Equal(t, "x", u.UnionValue())
}

func TestTupleMembers(t *testing.T) {
	members, ok := hint.TupleMembers(reflect.TypeFor[hint.Tuple2[int, string]]())
	require.True(t, ok)
	assert.Len(t, members, 2)

	tuple := hint.Tuple3[int, string, bool]{First: 1, Second: "a", Third: true}
	assert.Equal(t, []any{1, "a", true}, tuple.TupleValues())
}

func TestEnumValues(t *testing.T) {
	values, ok := hint.EnumValues(reflect.TypeFor[color]())
	require.True(t, ok)
	assert.Equal(t, []any{"red", "green"}, values)

	_, ok = hint.EnumValues(reflect.TypeFor[string]())
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	s := hint.NewSet("a", "b")
	s.Add("c")
	assert.True(t, s.Has("c"))
	assert.False(t, s.Has("d"))
	assert.Equal(t, 3, s.Len())

	assert.True(t, hint.IsSetType(reflect.TypeOf(s)))
	assert.True(t, hint.IsSetType(reflect.TypeFor[map[int]struct{}]()))
	assert.False(t, hint.IsSetType(reflect.TypeFor[map[string]bool]()))
}

func TestDuckTyping(t *testing.T) {
	assert.True(t, hint.IsArrayLike(reflect.TypeFor[bag]()))
	assert.False(t, hint.IsSetLike(reflect.TypeFor[bag]()))
	assert.True(t, hint.IsSetLike(reflect.TypeFor[uniqueBag]()))

	assert.True(t, hint.IsObjectLike(reflect.TypeFor[lookup]()))
	assert.False(t, hint.IsArrayLike(reflect.TypeFor[lookup]()), "object-like wins over array-like")

	assert.True(t, hint.IsObjectLike(reflect.TypeFor[hint.ObjectLike]()))
	assert.False(t, hint.IsObjectLike(reflect.TypeFor[string]()))
}

func TestIsMarker(t *testing.T) {
	assert.True(t, hint.IsMarker(reflect.TypeFor[hint.Union2[int, string]]()))
	assert.True(t, hint.IsMarker(reflect.TypeFor[hint.Tuple2[int, string]]()))
	assert.True(t, hint.IsMarker(reflect.TypeFor[color]()))
	assert.True(t, hint.IsMarker(reflect.TypeFor[bag]()))
	assert.False(t, hint.IsMarker(reflect.TypeFor[struct{ A int }]()))
	assert.False(t, hint.IsMarker(reflect.TypeFor[*hint.Union2[int, string]]()))
}
