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

package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/paykit/internal/commands/commandtest"
	"github.com/tombee/paykit/internal/commands/shared"
	"github.com/tombee/paykit/internal/config"
)

func TestConfigShow_MasksSecrets(t *testing.T) {
	commandtest.Isolate(t)

	out, err := commandtest.Run(t, NewConfigCommand(), "", "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "Configuration:")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "api_key: sk_t...test")
	assert.NotContains(t, out, commandtest.TestAPIKey)
	assert.Contains(t, out, "timeout: 30s")
}

func TestConfigShow_JSON(t *testing.T) {
	commandtest.Isolate(t)

	out, err := commandtest.Run(t, NewConfigCommand(), "https://api.example.test", "config", "show", "--json")
	require.NoError(t, err)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "sk_t...test", resp["api_key"])
	assert.Equal(t, "https://api.example.test", resp["base_url"])

	httpCfg, ok := resp["http"].(map[string]any)
	require.True(t, ok, "http section: %v", resp["http"])
	assert.Equal(t, "30s", httpCfg["timeout"])
}

func TestConfigShow_DefaultSubcommand(t *testing.T) {
	commandtest.Isolate(t)

	out, err := commandtest.Run(t, NewConfigCommand(), "", "config", "--jq", ".api_key")
	require.NoError(t, err)
	assert.Equal(t, "sk_t...test", strings.TrimSpace(out))
}

func TestConfigShow_ReadsFile(t *testing.T) {
	commandtest.Isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("merchant_code: MC42\nhttp:\n  timeout: 5s\n"), 0o600))

	out, err := commandtest.Run(t, NewConfigCommand(), "", "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.NotContains(t, out, "not found")
	assert.Contains(t, out, "merchant_code: MC42")
	assert.Contains(t, out, "timeout: 5s")
}

func TestConfigPath(t *testing.T) {
	commandtest.Isolate(t)

	out, err := commandtest.Run(t, NewConfigCommand(), "", "config", "path")
	require.NoError(t, err)

	want, err := config.ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(out))
}

func TestConfigValidate(t *testing.T) {
	commandtest.Isolate(t)

	out, err := commandtest.Run(t, NewConfigCommand(), "", "config", "validate", "--json")
	require.NoError(t, err)

	var result ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Contains(t, result.Warnings, "http.retries is 0; transient failures are not retried")
}

func TestConfigValidate_Strict(t *testing.T) {
	commandtest.Isolate(t)

	_, err := commandtest.Run(t, NewConfigCommand(), "", "config", "validate", "--strict")
	require.Error(t, err)

	var exitErr *shared.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, shared.ExitConfig, exitErr.Code)
}

func TestConfigValidate_NoCredentials(t *testing.T) {
	commandtest.Isolate(t)
	t.Setenv("PAYKIT_API_KEY", "")

	out, err := commandtest.Run(t, NewConfigCommand(), "", "config", "validate")
	require.Error(t, err)
	assert.Contains(t, out, "no credentials configured")

	var exitErr *shared.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, shared.ExitConfig, exitErr.Code)
}

func TestValidateConfig_Warnings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		want   string
	}{
		{
			name:   "plain http",
			modify: func(c *config.Config) { c.BaseURL = "http://api.example.test" },
			want:   "not HTTPS",
		},
		{
			name: "both credentials",
			modify: func(c *config.Config) {
				c.AccessToken = "tok_123456789"
			},
			want: "access_token is used",
		},
		{
			name: "retried writes",
			modify: func(c *config.Config) {
				c.HTTP.RetryWrites = true
			},
			want: "idempotency key",
		},
		{
			name:   "otlp without endpoint",
			modify: func(c *config.Config) { c.Tracing.Exporter = "otlp" },
			want:   "tracing.endpoint is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.APIKey = "sk_test_123456789"
			cfg.HTTP.Retries = 2
			tt.modify(cfg)

			result := validateConfig(cfg)
			assert.True(t, result.Valid, "errors: %v", result.Errors)
			require.Len(t, result.Warnings, 1)
			assert.Contains(t, result.Warnings[0], tt.want)
		})
	}
}

func TestValidateConfig_LocalHTTPAllowed(t *testing.T) {
	cfg := config.Default()
	cfg.APIKey = "sk_test_123456789"
	cfg.HTTP.Retries = 2
	cfg.BaseURL = "http://localhost:8080"

	result := validateConfig(cfg)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
}
