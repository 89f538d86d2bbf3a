// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jsonvalue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(obj *Object) []string {
	var keys []string
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func TestParse_PreservesKeyOrder(t *testing.T) {
	v, err := Parse([]byte(`{"zeta": 1, "alpha": "a", "mid": {"b": true, "a": null}}`))
	require.NoError(t, err)

	obj, ok := v.(*Object)
	require.True(t, ok, "expected *Object, got %T", v)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keysOf(obj))

	zeta, _ := obj.Get("zeta")
	assert.Equal(t, int64(1), zeta)

	mid, _ := obj.Get("mid")
	nested, ok := mid.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, keysOf(nested))

	a, present := nested.Get("a")
	assert.True(t, present)
	assert.Nil(t, a)
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"integer", `42`, int64(42)},
		{"negative integer", `-7`, int64(-7)},
		{"float", `10.0`, 10.0},
		{"exponent", `1e3`, 1000.0},
		{"escaped string", `"a\"bé"`, "a\"bé"},
		{"true", `true`, true},
		{"null", `null`, nil},
		{"empty", ``, nil},
		{"whitespace", "  \n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Arrays(t *testing.T) {
	v, err := Parse([]byte(`[{"param": "amount"}, [], "x", 1.5]`))
	require.NoError(t, err)

	items, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, items, 4)
	assert.Equal(t, []any{}, items[1])
	assert.Equal(t, "x", items[2])
	assert.Equal(t, 1.5, items[3])

	first, ok := items[0].(*Object)
	require.True(t, ok)
	param, _ := first.Get("param")
	assert.Equal(t, "amount", param)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`<html>bad gateway</html>`))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestAsObject(t *testing.T) {
	obj, ok := AsObject(map[string]any{"b": 2, "a": 1})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, keysOf(obj))

	obj, ok = AsObject(map[string]string{"x": "1"})
	require.True(t, ok)
	x, _ := obj.Get("x")
	assert.Equal(t, "1", x)

	_, ok = AsObject([]any{1})
	assert.False(t, ok)
	_, ok = AsObject("scalar")
	assert.False(t, ok)
	_, ok = AsObject(nil)
	assert.False(t, ok)
}

func TestAsSequence(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		seq := AsSequence([]any{"a", "b"})
		assert.False(t, seq.Keyed())
		assert.Equal(t, []any{"a", "b"}, seq.Values)
	})

	t.Run("keyed object", func(t *testing.T) {
		seq := AsSequence(ObjectOf("second", 2, "first", 1))
		assert.True(t, seq.Keyed())
		assert.Equal(t, []string{"second", "first"}, seq.Keys)
		assert.Equal(t, []any{2, 1}, seq.Values)

		rebuilt, ok := seq.Rebuild([]any{"two", "one"}).(*Object)
		require.True(t, ok)
		assert.Equal(t, []string{"second", "first"}, keysOf(rebuilt))
		v, _ := rebuilt.Get("first")
		assert.Equal(t, "one", v)
	})

	t.Run("scalar wraps", func(t *testing.T) {
		assert.Equal(t, []any{"x"}, AsSequence("x").Values)
	})

	t.Run("nil is empty", func(t *testing.T) {
		assert.Equal(t, 0, AsSequence(nil).Len())
	})
}

func TestToPlain(t *testing.T) {
	raw := ObjectOf("items", []any{ObjectOf("id", "r1")}, "count", int64(1))
	plain := ToPlain(raw)

	want := map[string]any{
		"items": []any{map[string]any{"id": "r1"}},
		"count": int64(1),
	}
	assert.Equal(t, want, plain)
}

func TestObject_MarshalKeepsOrder(t *testing.T) {
	data, err := json.Marshal(ObjectOf("z", 1, "a", 2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":1,"a":2}`, string(data))
	assert.Equal(t, `{"z":1,"a":2}`, string(data))
}
