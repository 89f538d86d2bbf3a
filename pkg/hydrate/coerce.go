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
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/tombee/paykit/pkg/jsonvalue"
)

// CoerceScalar converts v to the named scalar type. Unknown scalar names
// return v unchanged and false. Conversion itself never fails: values that
// have no sensible reading become the zero value of the target type.
func CoerceScalar(v any, scalar string) (any, bool) {
	name, ok := canonicalScalar(scalar)
	if !ok {
		return v, false
	}
	switch name {
	case ScalarString:
		return toString(v), true
	case ScalarInt:
		return toInt(v), true
	case ScalarFloat:
		return toFloat(v), true
	default:
		return toBool(v), true
	}
}

func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *jsonvalue.Object, []any, map[string]any:
		// Structured values render as JSON so the mismatch stays visible.
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
	return cast.ToString(v)
}

func toInt(v any) int64 {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
		return 0
	}
	if n, err := cast.ToInt64E(v); err == nil {
		return n
	}
	return 0
}

func toFloat(v any) float64 {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		return f
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return f
	}
	return 0
}

func toBool(v any) bool {
	switch val := v.(type) {
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return b
		}
		return val != "" && val != "0"
	case *jsonvalue.Object:
		return val != nil && val.Len() > 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	}
	if b, err := cast.ToBoolE(v); err == nil {
		return b
	}
	return false
}
