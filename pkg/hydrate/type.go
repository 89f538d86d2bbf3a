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

package hydrate

import "strings"

// TargetType describes a type the Hydrator can produce: either an object
// with declared fields or a string-backed enumeration.
type TargetType struct {
	id          string
	namespace   string
	fields      []Field
	newInstance func() any
	isInstance  func(any) bool

	enum  bool
	cases map[string]any
}

// NewObject declares an object type T identified by id. Hydrated instances
// are *T.
func NewObject[T any](id string, fields ...Field) *TargetType {
	declared := make([]Field, len(fields))
	copy(declared, fields)
	return &TargetType{
		id:          id,
		namespace:   namespaceOf(id),
		fields:      declared,
		newInstance: func() any { return new(T) },
		isInstance: func(v any) bool {
			_, ok := v.(*T)
			return ok
		},
	}
}

// NewEnum declares a string-backed enumeration with its known cases.
// Hydrated values are E, not pointers.
func NewEnum[E ~string](id string, cases ...E) *TargetType {
	known := make(map[string]any, len(cases))
	for _, c := range cases {
		known[string(c)] = c
	}
	return &TargetType{
		id:        id,
		namespace: namespaceOf(id),
		enum:      true,
		cases:     known,
		isInstance: func(v any) bool {
			_, ok := v.(E)
			return ok
		},
	}
}

// ID returns the type identifier.
func (t *TargetType) ID() string { return t.id }

// Namespace returns the identifier prefix used to resolve relative type
// names, "checkouts" for "checkouts.Checkout".
func (t *TargetType) Namespace() string { return t.namespace }

// IsEnum reports whether the type is an enumeration.
func (t *TargetType) IsEnum() bool { return t.enum }

// Fields returns a copy of the declared fields.
func (t *TargetType) Fields() []Field {
	out := make([]Field, len(t.fields))
	copy(out, t.fields)
	return out
}

// Is reports whether v already is an instance of the type.
func (t *TargetType) Is(v any) bool {
	return t.isInstance(v)
}

// enumValue maps a wire value onto a known case.
func (t *TargetType) enumValue(raw any) (any, bool) {
	key := toString(raw)
	v, ok := t.cases[key]
	return v, ok
}

func namespaceOf(id string) string {
	if i := strings.LastIndex(id, "."); i >= 0 {
		return id[:i]
	}
	return ""
}
