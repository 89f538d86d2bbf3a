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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeychainBackend_RoundTrip(t *testing.T) {
	keyring.MockInit()
	ctx := context.Background()

	backend := NewKeychainBackend()
	require.True(t, backend.Available())
	assert.Equal(t, "keychain", backend.Name())
	assert.Equal(t, KeychainBackendPriority, backend.Priority())

	_, err := backend.Get(ctx, KeyAPIKey)
	assert.ErrorIs(t, err, ErrSecretNotFound)

	require.NoError(t, backend.Set(ctx, KeyAPIKey, "sk_test_123"))
	got, err := backend.Get(ctx, KeyAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "sk_test_123", got)

	require.NoError(t, backend.Delete(ctx, KeyAPIKey))
	assert.ErrorIs(t, backend.Delete(ctx, KeyAPIKey), ErrSecretNotFound)
}

func TestKeychainBackend_Unavailable(t *testing.T) {
	keyring.MockInitWithError(errors.New("dbus: connection refused"))
	t.Cleanup(keyring.MockInit)

	backend := NewKeychainBackend()
	assert.False(t, backend.Available())

	_, err := backend.Get(context.Background(), KeyAPIKey)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestEnvBackend(t *testing.T) {
	t.Setenv("PAYKIT_API_KEY", "sk_env")
	backend := NewEnvBackend()

	got, err := backend.Get(context.Background(), KeyAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "sk_env", got)

	_, err = backend.Get(context.Background(), "missing/key")
	assert.ErrorIs(t, err, ErrSecretNotFound)

	assert.ErrorIs(t, backend.Set(context.Background(), KeyAPIKey, "x"), ErrReadOnlyBackend)
	assert.True(t, backend.ReadOnly())
}

func TestEnvName(t *testing.T) {
	tests := map[string]string{
		"api_key":             "PAYKIT_API_KEY",
		"client-secret":       "PAYKIT_CLIENT_SECRET",
		"profiles/prod.token": "PAYKIT_PROFILES_PROD_TOKEN",
	}
	for key, want := range tests {
		assert.Equal(t, want, EnvName(key), key)
	}
}

func TestStore_Priority(t *testing.T) {
	keyring.MockInit()
	ctx := context.Background()
	store := NewStore(NewKeychainBackend(), NewEnvBackend())

	backend, err := store.Set(ctx, KeyAPIKey, "sk_keychain")
	require.NoError(t, err)
	assert.Equal(t, "keychain", backend, "env is read-only so writes go to the keychain")

	value, source, err := store.Lookup(ctx, KeyAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "sk_keychain", value)
	assert.Equal(t, "keychain", source)

	t.Setenv("PAYKIT_API_KEY", "sk_env")
	value, source, err = store.Lookup(ctx, KeyAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "sk_env", value)
	assert.Equal(t, "env", source)

	require.NoError(t, store.Delete(ctx, KeyAPIKey))
}

func TestStore_NotFound(t *testing.T) {
	keyring.MockInit()
	store := NewStore(NewEnvBackend(), NewKeychainBackend())

	_, err := store.Get(context.Background(), KeyRefreshToken)
	assert.ErrorIs(t, err, ErrSecretNotFound)
}

func TestStore_NoWritableBackend(t *testing.T) {
	store := NewStore(NewEnvBackend())
	_, err := store.Set(context.Background(), KeyAPIKey, "x")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "****", Mask("short"))
	assert.Equal(t, "sk_l...9xyz", Mask("sk_live_abcdef9xyz"))
}
