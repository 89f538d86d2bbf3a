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
	"log/slog"

	"github.com/tombee/paykit/pkg/jsonvalue"
)

// Hydrator converts raw values into instances of registered types.
// It is stateless apart from the registry and safe for concurrent use.
type Hydrator struct {
	registry *Registry
	logger   *slog.Logger
}

// Option configures a Hydrator.
type Option func(*Hydrator)

// WithLogger sets the logger used to report lenient drops at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hydrator) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New creates a Hydrator over registry.
func New(registry *Registry, opts ...Option) *Hydrator {
	if registry == nil {
		registry = NewRegistry()
	}
	h := &Hydrator{
		registry: registry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Registry returns the registry the Hydrator resolves types against.
func (h *Hydrator) Registry() *Registry {
	return h.registry
}

// Hydrate converts raw into an instance of the type registered as typeID.
//
// nil yields nil, an unknown typeID returns raw unchanged, and a value that
// already is an instance is returned as is. Object types yield *T, or nil
// when raw is not object-like. Enum types yield the matching case, or nil
// for values outside the known cases.
func (h *Hydrator) Hydrate(raw any, typeID string) any {
	if raw == nil {
		return nil
	}
	t, ok := h.registry.Lookup(typeID)
	if !ok {
		return raw
	}
	return h.hydrate(raw, t)
}

// CastList casts every element of raw to item, resolving type names
// relative to namespace. Keyed input keeps its keys and order. An empty item
// type returns the normalized sequence without touching the elements.
func (h *Hydrator) CastList(raw any, item, namespace string) any {
	seq := jsonvalue.AsSequence(raw)
	if item == "" {
		return seq.Rebuild(seq.Values)
	}
	out := make([]any, seq.Len())
	for i, v := range seq.Values {
		out[i] = h.CastItem(v, item, namespace)
	}
	return seq.Rebuild(out)
}

// CastItem casts a single list element to item.
func (h *Hydrator) CastItem(raw any, item, namespace string) any {
	if v, ok := CoerceScalar(raw, item); ok {
		return v
	}
	switch item {
	case ItemMixed, "":
		return raw
	case ItemArray:
		switch raw.(type) {
		case []any:
			return raw
		}
		if obj, ok := jsonvalue.AsObject(raw); ok {
			return obj
		}
		return jsonvalue.NewObject()
	}

	t, ok := h.registry.Resolve(item, namespace)
	if !ok {
		return raw
	}
	return h.hydrate(raw, t)
}

func (h *Hydrator) hydrate(raw any, t *TargetType) any {
	if raw == nil {
		return nil
	}
	if t.Is(raw) {
		return raw
	}

	if t.enum {
		v, ok := t.enumValue(raw)
		if !ok {
			h.logger.Debug("unknown enum value left unset",
				"type", t.id,
				"value", toString(raw),
			)
			return nil
		}
		return v
	}

	obj, ok := jsonvalue.AsObject(raw)
	if !ok {
		return nil
	}

	p := h.registry.planFor(t)
	values := make([]any, len(t.fields))
	present := make([]bool, len(t.fields))
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		i, ok := p.index[NormalizeFieldName(pair.Key)]
		if !ok {
			continue
		}
		values[i] = pair.Value
		present[i] = true
	}

	instance := t.newInstance()
	for i, f := range t.fields {
		if !present[i] {
			continue
		}
		v := values[i]
		if v == nil && f.nullable {
			continue
		}
		coerced := h.coerceField(v, f, t.namespace)
		if coerced == nil {
			continue
		}
		if !f.assign(instance, coerced) {
			h.logger.Debug("field value left unset",
				"type", t.id,
				"field", f.wire,
				"kind", f.kind.String(),
			)
		}
	}
	return instance
}

func (h *Hydrator) coerceField(v any, f Field, namespace string) any {
	switch f.kind {
	case KindString:
		return toString(v)
	case KindInt:
		return toInt(v)
	case KindFloat:
		return toFloat(v)
	case KindBool:
		return toBool(v)
	case KindNested, KindEnum:
		if v == nil {
			return nil
		}
		t, ok := h.registry.Resolve(f.ref, namespace)
		if !ok {
			return v
		}
		return h.hydrate(v, t)
	case KindList:
		if v == nil {
			return nil
		}
		return h.CastList(v, f.ref, namespace)
	default:
		return v
	}
}
