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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// ErrInvalidJSON is returned by Parse for input that is not a JSON document.
var ErrInvalidJSON = errors.New("invalid JSON")

// Parse decodes a JSON document into a raw value, keeping object key order.
// Empty or whitespace-only input decodes to nil.
func Parse(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, ErrInvalidJSON
	}

	value, dataType, _, err := jsonparser.Get(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return parseValue(value, dataType)
}

func parseValue(value []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.Null:
		return nil, nil
	case jsonparser.String:
		return jsonparser.ParseString(value)
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(value)
	case jsonparser.Number:
		return parseNumber(value)
	case jsonparser.Object:
		return parseObject(value)
	case jsonparser.Array:
		return parseArray(value)
	default:
		return nil, fmt.Errorf("%w: unexpected value %q", ErrInvalidJSON, value)
	}
}

// parseNumber keeps integers exact and falls back to float64 for fractions,
// exponents and values that overflow int64.
func parseNumber(value []byte) (any, error) {
	if !bytes.ContainsAny(value, ".eE") {
		if n, err := jsonparser.ParseInt(value); err == nil {
			return n, nil
		}
	}
	return jsonparser.ParseFloat(value)
}

func parseObject(value []byte) (*Object, error) {
	obj := NewObject()
	err := jsonparser.ObjectEach(value, func(key []byte, v []byte, dataType jsonparser.ValueType, _ int) error {
		parsed, err := parseValue(v, dataType)
		if err != nil {
			return err
		}
		obj.Set(string(key), parsed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(value []byte) ([]any, error) {
	items := []any{}
	var firstErr error
	_, err := jsonparser.ArrayEach(value, func(v []byte, dataType jsonparser.ValueType, _ int, err error) {
		if firstErr != nil {
			return
		}
		if err != nil {
			firstErr = err
			return
		}
		parsed, err := parseValue(v, dataType)
		if err != nil {
			firstErr = err
			return
		}
		items = append(items, parsed)
	})
	if err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return items, nil
}
