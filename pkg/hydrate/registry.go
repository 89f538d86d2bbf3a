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
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrDuplicateType is returned when an identifier is registered twice
	// with different definitions.
	ErrDuplicateType = errors.New("duplicate type")

	// ErrFieldCollision is returned when two fields of a type normalize to
	// the same identifier.
	ErrFieldCollision = errors.New("field identifier collision")
)

// Registry holds the known target types by identifier.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*TargetType

	// plans memoizes the field index of each type, built on first use.
	plans sync.Map
}

// plan maps normalized field identifiers to positions in the field table.
type plan struct {
	index map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]*TargetType),
	}
}

// Register adds types to the registry. Registering the same *TargetType
// again is a no-op; registering a different definition under an existing
// identifier fails.
func (r *Registry) Register(types ...*TargetType) error {
	for _, t := range types {
		if t == nil {
			continue
		}
		if err := validateFields(t); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range types {
		if t == nil {
			continue
		}
		if existing, ok := r.types[t.id]; ok {
			if existing == t {
				continue
			}
			return fmt.Errorf("%w: %s", ErrDuplicateType, t.id)
		}
		r.types[t.id] = t
	}
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// package-level type tables that are fixed at compile time.
func (r *Registry) MustRegister(types ...*TargetType) *Registry {
	if err := r.Register(types...); err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the type registered under id.
func (r *Registry) Lookup(id string) (*TargetType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[id]
	return t, ok
}

// Resolve finds a type by name, first as a fully qualified identifier and
// then relative to namespace.
func (r *Registry) Resolve(name, namespace string) (*TargetType, bool) {
	if name == "" {
		return nil, false
	}
	if t, ok := r.Lookup(name); ok {
		return t, true
	}
	if namespace != "" {
		return r.Lookup(namespace + "." + name)
	}
	return nil, false
}

// IDs returns the registered type identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// planFor returns the memoized field index for t. Concurrent callers may
// both build a plan, only one is kept.
func (r *Registry) planFor(t *TargetType) *plan {
	if p, ok := r.plans.Load(t); ok {
		return p.(*plan)
	}
	p := &plan{index: make(map[string]int, len(t.fields))}
	for i, f := range t.fields {
		p.index[f.name] = i
	}
	actual, _ := r.plans.LoadOrStore(t, p)
	return actual.(*plan)
}

func validateFields(t *TargetType) error {
	seen := make(map[string]string, len(t.fields))
	for _, f := range t.fields {
		if prev, ok := seen[f.name]; ok {
			return fmt.Errorf("%w: %s fields %q and %q both map to %q", ErrFieldCollision, t.id, prev, f.wire, f.name)
		}
		seen[f.name] = f.wire
	}
	return nil
}
