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

package response

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ShapeKind names what a response body is cast to.
type ShapeKind string

const (
	ShapeClass  ShapeKind = "class"
	ShapeArray  ShapeKind = "array"
	ShapeObject ShapeKind = "object"
	ShapeScalar ShapeKind = "scalar"
	ShapeVoid   ShapeKind = "void"
	ShapeMixed  ShapeKind = "mixed"
)

// ValueShape describes the value a response body should take.
type ValueShape struct {
	Kind ShapeKind

	// Target is the type identifier for class shapes.
	Target string

	// Items is the element shape for array shapes. A nil Items leaves the
	// elements untouched.
	Items *ValueShape

	// Scalar is the primitive name for scalar shapes.
	Scalar string
}

// Class is the shape of a registered type.
func Class(target string) ValueShape {
	return ValueShape{Kind: ShapeClass, Target: target}
}

// Array is the shape of a list whose elements take the items shape.
func Array(items ValueShape) ValueShape {
	return ValueShape{Kind: ShapeArray, Items: &items}
}

// List is the shape of a list whose elements are left as decoded.
func List() ValueShape {
	return ValueShape{Kind: ShapeArray}
}

// Object is the shape of an opaque mapping.
func Object() ValueShape {
	return ValueShape{Kind: ShapeObject}
}

// Scalar is the shape of a primitive value.
func Scalar(name string) ValueShape {
	return ValueShape{Kind: ShapeScalar, Scalar: name}
}

// Void is the shape of a response whose body is discarded.
func Void() ValueShape {
	return ValueShape{Kind: ShapeVoid}
}

// Mixed is the shape of a body returned as decoded.
func Mixed() ValueShape {
	return ValueShape{Kind: ShapeMixed}
}

func (s ValueShape) String() string {
	switch s.Kind {
	case ShapeClass:
		return fmt.Sprintf("class<%s>", s.Target)
	case ShapeArray:
		if s.Items == nil {
			return "array"
		}
		return fmt.Sprintf("array<%s>", s.Items)
	case ShapeScalar:
		return fmt.Sprintf("scalar<%s>", s.Scalar)
	default:
		return string(s.Kind)
	}
}

// ParseShape reads the notation produced by ValueShape.String:
// "class<id>", "array", "array<shape>", "scalar<name>", "object", "void"
// and "mixed". A bare type identifier is read as a class shape.
func ParseShape(s string) (ValueShape, error) {
	s = strings.TrimSpace(s)
	kind, inner, generic := strings.Cut(s, "<")
	if generic {
		if !strings.HasSuffix(inner, ">") {
			return ValueShape{}, fmt.Errorf("shape %q: missing closing '>'", s)
		}
		inner = strings.TrimSuffix(inner, ">")
		if strings.TrimSpace(inner) == "" {
			return ValueShape{}, fmt.Errorf("shape %q: empty parameter", s)
		}
	}

	switch ShapeKind(kind) {
	case ShapeClass:
		if !generic {
			return ValueShape{}, fmt.Errorf("shape %q: class needs a type", s)
		}
		return Class(strings.TrimSpace(inner)), nil
	case ShapeArray:
		if !generic {
			return List(), nil
		}
		items, err := ParseShape(inner)
		if err != nil {
			return ValueShape{}, err
		}
		return Array(items), nil
	case ShapeScalar:
		if !generic {
			return ValueShape{}, fmt.Errorf("shape %q: scalar needs a primitive name", s)
		}
		return Scalar(strings.TrimSpace(inner)), nil
	case ShapeObject, ShapeVoid, ShapeMixed:
		if generic {
			return ValueShape{}, fmt.Errorf("shape %q: %s takes no parameter", s, kind)
		}
		return ValueShape{Kind: ShapeKind(kind)}, nil
	}

	if generic || kind == "" || strings.ContainsAny(kind, " >") {
		return ValueShape{}, fmt.Errorf("unknown shape %q", s)
	}
	return Class(kind), nil
}

// DefaultKey is the descriptor key used when no status code matches.
const DefaultKey = "default"

// Descriptors maps status codes, as decimal strings, or DefaultKey to the
// shape of the body.
type Descriptors map[string]ValueShape

// Lookup returns the shape for status, falling back to DefaultKey.
func (d Descriptors) Lookup(status int) (ValueShape, bool) {
	if s, ok := d[strconv.Itoa(status)]; ok {
		return s, true
	}
	s, ok := d[DefaultKey]
	return s, ok
}

// Response is a completed HTTP exchange with its body already parsed into
// raw values.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       any
}
