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

import (
	"time"

	"github.com/tombee/paykit/pkg/jsonvalue"
)

// Field describes one declared field of an object type.
type Field struct {
	wire     string
	name     string
	kind     Kind
	ref      string
	nullable bool
	assign   func(obj, value any) bool
}

// Wire returns the serialized name.
func (f Field) Wire() string { return f.wire }

// Name returns the normalized field identifier.
func (f Field) Name() string { return f.name }

// Kind returns the declared kind.
func (f Field) Kind() Kind { return f.kind }

// Ref returns the referenced type name for nested and enum fields, or the
// item type for list fields.
func (f Field) Ref() string { return f.ref }

// Nullable reports whether a null wire value leaves the field unset.
func (f Field) Nullable() bool { return f.nullable }

// Required returns a copy of the field that treats a null wire value as the
// zero value of its kind instead of leaving the field unset.
func (f Field) Required() Field {
	f.nullable = false
	return f
}

func newField(wire string, kind Kind, ref string, assign func(obj, value any) bool) Field {
	return Field{
		wire:     wire,
		name:     NormalizeFieldName(wire),
		kind:     kind,
		ref:      ref,
		nullable: true,
		assign:   assign,
	}
}

// bind adapts a typed setter to the untyped assign signature. Values of the
// wrong type are rejected rather than converted.
func bind[T, V any](set func(*T, V)) func(obj, value any) bool {
	return func(obj, value any) bool {
		target, ok := obj.(*T)
		if !ok {
			return false
		}
		v, ok := value.(V)
		if !ok {
			return false
		}
		set(target, v)
		return true
	}
}

// StringField declares a string field.
func StringField[T any](wire string, set func(*T, string)) Field {
	return newField(wire, KindString, "", bind(set))
}

// IntField declares an integer field.
func IntField[T any](wire string, set func(*T, int64)) Field {
	return newField(wire, KindInt, "", bind(set))
}

// FloatField declares a floating point field.
func FloatField[T any](wire string, set func(*T, float64)) Field {
	return newField(wire, KindFloat, "", bind(set))
}

// BoolField declares a boolean field.
func BoolField[T any](wire string, set func(*T, bool)) Field {
	return newField(wire, KindBool, "", bind(set))
}

// TimeField declares a string field carrying an RFC 3339 timestamp or a
// plain date. Values that parse as neither leave the field unset.
func TimeField[T any](wire string, set func(*T, time.Time)) Field {
	return newField(wire, KindString, "", func(obj, value any) bool {
		target, ok := obj.(*T)
		if !ok {
			return false
		}
		s, ok := value.(string)
		if !ok {
			return false
		}
		ts, ok := parseTime(s)
		if !ok {
			return false
		}
		set(target, ts)
		return true
	})
}

// NestedField declares a field holding another object type.
func NestedField[T, V any](wire, ref string, set func(*T, *V)) Field {
	return newField(wire, KindNested, ref, bind(set))
}

// EnumField declares a field holding a string-backed enumeration.
func EnumField[T any, E ~string](wire, ref string, set func(*T, E)) Field {
	return newField(wire, KindEnum, ref, bind(set))
}

// MixedField declares a field whose value passes through untouched.
func MixedField[T any](wire string, set func(*T, any)) Field {
	return newField(wire, KindMixed, "", bind(set))
}

// ListField declares a list field and hands the setter the cast sequence as
// is: a []any, or a *jsonvalue.Object when the wire value was keyed.
func ListField[T any](wire, item string, set func(*T, any)) Field {
	return newField(wire, KindList, item, bind(set))
}

// ListOfField declares a list of scalars or enums. Items that did not cast
// to E are dropped.
func ListOfField[T, E any](wire, item string, set func(*T, []E)) Field {
	return newField(wire, KindList, item, func(obj, value any) bool {
		target, ok := obj.(*T)
		if !ok {
			return false
		}
		seq := jsonvalue.AsSequence(value)
		out := make([]E, 0, seq.Len())
		for _, v := range seq.Values {
			if e, ok := v.(E); ok {
				out = append(out, e)
			}
		}
		set(target, out)
		return true
	})
}

// ObjectListField declares a list of objects of type V. Items that did not
// hydrate into a *V are dropped.
func ObjectListField[T, V any](wire, item string, set func(*T, []V)) Field {
	return newField(wire, KindList, item, func(obj, value any) bool {
		target, ok := obj.(*T)
		if !ok {
			return false
		}
		seq := jsonvalue.AsSequence(value)
		out := make([]V, 0, seq.Len())
		for _, v := range seq.Values {
			if p, ok := v.(*V); ok && p != nil {
				out = append(out, *p)
			}
		}
		set(target, out)
		return true
	})
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02",
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
