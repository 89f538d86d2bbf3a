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

// Kind is the declared kind of a field.
type Kind int

const (
	KindMixed Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindNested
	KindEnum
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindNested:
		return "nested"
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	default:
		return "mixed"
	}
}

// Scalar type names used for list items and scalar response shapes.
const (
	ScalarString = "string"
	ScalarInt    = "int"
	ScalarFloat  = "float"
	ScalarBool   = "bool"

	// ItemArray marks list items that are themselves arrays or objects.
	ItemArray = "array"
	// ItemMixed marks list items that pass through untouched.
	ItemMixed = "mixed"
)

// canonicalScalar folds the accepted spellings of a scalar type name.
func canonicalScalar(name string) (string, bool) {
	switch strings.ToLower(name) {
	case "string":
		return ScalarString, true
	case "int", "integer":
		return ScalarInt, true
	case "float", "double", "number":
		return ScalarFloat, true
	case "bool", "boolean":
		return ScalarBool, true
	default:
		return "", false
	}
}

// IsScalar reports whether name is a scalar type name.
func IsScalar(name string) bool {
	_, ok := canonicalScalar(name)
	return ok
}
