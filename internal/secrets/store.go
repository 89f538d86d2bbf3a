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

package secrets

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Store resolves secrets across backends in priority order.
type Store struct {
	backends []Backend
}

// NewStore creates a Store over backends.
func NewStore(backends ...Backend) *Store {
	sorted := make([]Backend, 0, len(backends))
	for _, b := range backends {
		if b != nil {
			sorted = append(sorted, b)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return &Store{backends: sorted}
}

// DefaultStore reads the environment first and then the system keychain.
func DefaultStore() *Store {
	return NewStore(NewEnvBackend(), NewKeychainBackend())
}

// Get returns the value of key from the first backend holding it.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, _, err := s.Lookup(ctx, key)
	return value, err
}

// Lookup is like Get and also names the backend that served the value.
func (s *Store) Lookup(ctx context.Context, key string) (string, string, error) {
	for _, b := range s.backends {
		if !b.Available() {
			continue
		}
		value, err := b.Get(ctx, key)
		if err == nil {
			return value, b.Name(), nil
		}
		if !errors.Is(err, ErrSecretNotFound) && !errors.Is(err, ErrBackendUnavailable) {
			return "", "", fmt.Errorf("%s backend: %w", b.Name(), err)
		}
	}
	return "", "", fmt.Errorf("%w: %s", ErrSecretNotFound, key)
}

// Set stores key in the highest priority writable backend and returns
// its name.
func (s *Store) Set(ctx context.Context, key, value string) (string, error) {
	b, err := s.writable()
	if err != nil {
		return "", err
	}
	if err := b.Set(ctx, key, value); err != nil {
		return "", err
	}
	return b.Name(), nil
}

// Delete removes key from the highest priority writable backend.
func (s *Store) Delete(ctx context.Context, key string) error {
	b, err := s.writable()
	if err != nil {
		return err
	}
	return b.Delete(ctx, key)
}

func (s *Store) writable() (Backend, error) {
	for _, b := range s.backends {
		if ro, ok := b.(ReadOnly); ok && ro.ReadOnly() {
			continue
		}
		if b.Available() {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: no writable secret backend", ErrBackendUnavailable)
}
