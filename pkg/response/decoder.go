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
	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/pkg/jsonvalue"
)

// Decoder casts response bodies according to their descriptors.
type Decoder struct {
	hydrator *hydrate.Hydrator
}

// NewDecoder creates a Decoder that hydrates class shapes with h.
func NewDecoder(h *hydrate.Hydrator) *Decoder {
	if h == nil {
		h = hydrate.New(nil)
	}
	return &Decoder{hydrator: h}
}

// Decode picks the shape for resp's status code and casts the body to it.
//
// With no descriptors the whole *Response is returned. When neither the
// status code nor DefaultKey has a shape, the body is returned as is.
func (d *Decoder) Decode(resp *Response, descriptors Descriptors) any {
	if resp == nil {
		return nil
	}
	if len(descriptors) == 0 {
		return resp
	}
	shape, ok := descriptors.Lookup(resp.StatusCode)
	if !ok {
		return resp.Body
	}
	return d.Cast(resp.Body, shape)
}

// Cast converts value to shape. Array elements go through Cast again, so
// arrays of scalars and nested arrays work the same way as arrays of types.
func (d *Decoder) Cast(value any, shape ValueShape) any {
	switch shape.Kind {
	case ShapeClass:
		return d.hydrator.Hydrate(value, shape.Target)
	case ShapeArray:
		seq := jsonvalue.AsSequence(value)
		if shape.Items == nil {
			return seq.Rebuild(seq.Values)
		}
		out := make([]any, seq.Len())
		for i, item := range seq.Values {
			out[i] = d.Cast(item, *shape.Items)
		}
		return seq.Rebuild(out)
	case ShapeScalar:
		v, _ := hydrate.CoerceScalar(value, shape.Scalar)
		return v
	case ShapeObject:
		obj, ok := jsonvalue.AsObject(value)
		if !ok {
			return map[string]any{}
		}
		return jsonvalue.ToPlain(obj)
	case ShapeVoid:
		return nil
	default:
		return value
	}
}
