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
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a JSON object that remembers the order its keys were decoded in.
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty Object.
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// ObjectOf builds an Object from alternating key/value pairs. It is mostly
// useful in tests. A trailing key without a value is ignored.
func ObjectOf(kv ...any) *Object {
	obj := NewObject()
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		obj.Set(key, kv[i+1])
	}
	return obj
}

// AsObject normalizes an object-like value into an Object.
// Plain Go maps have no order, so their keys are sorted to keep the result
// deterministic. Values that are not object-like return false.
func AsObject(v any) (*Object, bool) {
	switch m := v.(type) {
	case *Object:
		if m == nil {
			return nil, false
		}
		return m, true
	case map[string]any:
		obj := NewObject()
		for _, k := range sortedKeys(m) {
			obj.Set(k, m[k])
		}
		return obj, true
	case map[string]string:
		obj := NewObject()
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			obj.Set(k, m[k])
		}
		return obj, true
	default:
		return nil, false
	}
}

// Sequence is a normalized array value. Keyed sequences came from an object
// and keep its keys; Keys is nil otherwise.
type Sequence struct {
	Keys   []string
	Values []any
}

// Keyed reports whether the sequence must be rebuilt as an object.
func (s Sequence) Keyed() bool {
	return s.Keys != nil
}

// Len returns the number of elements.
func (s Sequence) Len() int {
	return len(s.Values)
}

// AsSequence normalizes a value into a sequence. Arrays are used as-is,
// object-like values contribute their values in key order, and any other
// non-nil value becomes a single element sequence. nil yields an empty
// sequence.
func AsSequence(v any) Sequence {
	switch s := v.(type) {
	case nil:
		return Sequence{Values: []any{}}
	case []any:
		return Sequence{Values: s}
	case []string:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = item
		}
		return Sequence{Values: out}
	case []map[string]any:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = item
		}
		return Sequence{Values: out}
	}

	if obj, ok := AsObject(v); ok {
		seq := Sequence{
			Keys:   make([]string, 0, obj.Len()),
			Values: make([]any, 0, obj.Len()),
		}
		for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
			seq.Keys = append(seq.Keys, pair.Key)
			seq.Values = append(seq.Values, pair.Value)
		}
		return seq
	}

	return Sequence{Values: []any{v}}
}

// Rebuild returns the sequence with its values replaced, as an Object when
// the sequence is keyed and as a slice otherwise.
func (s Sequence) Rebuild(values []any) any {
	if !s.Keyed() {
		return values
	}
	obj := NewObject()
	for i, k := range s.Keys {
		obj.Set(k, values[i])
	}
	return obj
}

// ToPlain deep-converts a raw value into plain Go values: objects become
// map[string]any and arrays []any. Other values are returned unchanged.
func ToPlain(v any) any {
	switch val := v.(type) {
	case *Object:
		if val == nil {
			return nil
		}
		out := make(map[string]any, val.Len())
		for pair := val.Oldest(); pair != nil; pair = pair.Next() {
			out[pair.Key] = ToPlain(pair.Value)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = ToPlain(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = ToPlain(item)
		}
		return out
	default:
		return v
	}
}

// Lookup returns the value stored under key when v is object-like.
func Lookup(v any, key string) (any, bool) {
	obj, ok := AsObject(v)
	if !ok {
		return nil, false
	}
	return obj.Get(key)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
