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
	"strings"
	"unicode"
	"unicode/utf8"
)

// reservedIdentifiers are field identifiers that get a "Value" suffix.
// It holds the Go keywords plus the words other SDKs for the same API
// reserve, so identifiers stay identical across implementations.
var reservedIdentifiers = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},
	"class": {}, "new": {}, "self": {}, "static": {}, "this": {}, "null": {},
}

var separatorReplacer = strings.NewReplacer(".", "_", "-", "_", " ", "_")

// NormalizeFieldName maps a wire name to its field identifier:
//
//	"checkout_reference" -> "checkoutReference"
//	"user.id"            -> "userId"
//	"tip_rates[]"        -> "tipRatesList"
//	"class"              -> "classValue"
//
// The same wire name always yields the same identifier, and camelCase input
// is left as camelCase so "expiresAt" and "expires_at" meet.
func NormalizeFieldName(wire string) string {
	name := wire
	if strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]") + "List"
	}
	name = separatorReplacer.Replace(name)

	var b strings.Builder
	b.Grow(len(name))
	for i, segment := range strings.Split(name, "_") {
		if segment == "" {
			continue
		}
		if i == 0 {
			b.WriteString(segment)
			continue
		}
		b.WriteString(upperFirst(segment))
	}

	ident := lowerFirst(b.String())
	if _, reserved := reservedIdentifiers[ident]; reserved {
		ident += "Value"
	}
	return ident
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
