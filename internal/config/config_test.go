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
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tombee/paykit/internal/secrets"
	paykiterrors "github.com/tombee/paykit/pkg/errors"
)

var envKeys = []string{
	"PAYKIT_API_KEY", "PAYKIT_ACCESS_TOKEN", "PAYKIT_BASE_URL", "PAYKIT_MERCHANT_CODE",
	"PAYKIT_CLIENT_ID", "PAYKIT_CLIENT_SECRET", "PAYKIT_TOKEN_URL",
	"PAYKIT_CA_BUNDLE", "PAYKIT_TIMEOUT", "PAYKIT_CONNECT_TIMEOUT",
	"PAYKIT_RETRIES", "PAYKIT_RETRY_BACKOFF",
	"PAYKIT_LOG_LEVEL", "LOG_LEVEL", "LOG_FORMAT", "LOG_SOURCE",
	"PAYKIT_TRACING_EXPORTER", "OTEL_EXPORTER_OTLP_ENDPOINT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

type fakeSecrets map[string]string

func (f fakeSecrets) Get(_ context.Context, key string) (string, error) {
	if v, ok := f[key]; ok {
		return v, nil
	}
	return "", secrets.ErrSecretNotFound
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.HTTP.Timeout != 30*time.Second {
		t.Errorf("HTTP.Timeout = %v, want 30s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.Retries != 3 {
		t.Errorf("HTTP.Retries = %d, want 3", cfg.HTTP.Retries)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Tracing.Exporter != "none" {
		t.Errorf("Tracing.Exporter = %q, want none", cfg.Tracing.Exporter)
	}
	if cfg.HasCredentials() {
		t.Error("default config should have no credentials")
	}
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
api_key: sk_file
base_url: https://api.example.com
merchant_code: MC123
http:
  timeout: 5s
  retries: 1
log:
  level: debug
`)

	cfg, err := LoadWithSecrets(path, nil)
	if err != nil {
		t.Fatalf("LoadWithSecrets() error = %v", err)
	}
	if cfg.APIKey != "sk_file" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.MerchantCode != "MC123" {
		t.Errorf("MerchantCode = %q", cfg.MerchantCode)
	}
	if cfg.HTTP.Timeout != 5*time.Second {
		t.Errorf("HTTP.Timeout = %v, want 5s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.Retries != 1 {
		t.Errorf("HTTP.Retries = %d, want 1", cfg.HTTP.Retries)
	}
	// Unset keys keep their defaults.
	if cfg.HTTP.ConnectTimeout != 10*time.Second {
		t.Errorf("HTTP.ConnectTimeout = %v, want 10s", cfg.HTTP.ConnectTimeout)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "api_key: sk_file\n")
	t.Setenv("PAYKIT_API_KEY", "sk_env")
	t.Setenv("PAYKIT_TIMEOUT", "12")
	t.Setenv("PAYKIT_RETRY_BACKOFF", "250ms")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("PAYKIT_LOG_LEVEL", "debug")

	cfg, err := LoadWithSecrets(path, nil)
	if err != nil {
		t.Fatalf("LoadWithSecrets() error = %v", err)
	}
	if cfg.APIKey != "sk_env" {
		t.Errorf("APIKey = %q, want sk_env", cfg.APIKey)
	}
	if cfg.HTTP.Timeout != 12*time.Second {
		t.Errorf("HTTP.Timeout = %v, want 12s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.RetryBackoff != 250*time.Millisecond {
		t.Errorf("HTTP.RetryBackoff = %v, want 250ms", cfg.HTTP.RetryBackoff)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_InvalidEnvIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYKIT_API_KEY", "sk")
	t.Setenv("PAYKIT_RETRIES", "many")

	cfg, err := LoadWithSecrets("", nil)
	if err != nil {
		t.Fatalf("LoadWithSecrets() error = %v", err)
	}
	if cfg.HTTP.Retries != 3 {
		t.Errorf("HTTP.Retries = %d, want default 3", cfg.HTTP.Retries)
	}
}

func TestLoad_KeychainFallback(t *testing.T) {
	clearEnv(t)
	store := fakeSecrets{secrets.KeyAPIKey: "sk_keychain"}

	cfg, err := LoadWithSecrets("", store)
	if err != nil {
		t.Fatalf("LoadWithSecrets() error = %v", err)
	}
	if cfg.APIKey != "sk_keychain" {
		t.Errorf("APIKey = %q, want sk_keychain", cfg.APIKey)
	}
}

func TestLoad_KeychainNotConsultedWithAccessToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYKIT_ACCESS_TOKEN", "at_env")
	store := fakeSecrets{secrets.KeyAPIKey: "sk_keychain"}

	cfg, err := LoadWithSecrets("", store)
	if err != nil {
		t.Fatalf("LoadWithSecrets() error = %v", err)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
}

func TestLoad_OAuth2SecretFromKeychain(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYKIT_CLIENT_ID", "cid")
	t.Setenv("PAYKIT_TOKEN_URL", "https://auth.example.com/token")
	store := fakeSecrets{secrets.KeyClientSecret: "shh"}

	cfg, err := LoadWithSecrets("", store)
	if err != nil {
		t.Fatalf("LoadWithSecrets() error = %v", err)
	}
	if cfg.OAuth2.ClientSecret != "shh" {
		t.Errorf("OAuth2.ClientSecret = %q, want shh", cfg.OAuth2.ClientSecret)
	}
	oc := cfg.OAuth2Settings()
	if oc.ClientID != "cid" || oc.TokenURL != "https://auth.example.com/token" {
		t.Errorf("OAuth2Settings() = %+v", oc)
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	clearEnv(t)

	_, err := LoadWithSecrets("", fakeSecrets{})
	var cfgErr *paykiterrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
	if cfgErr.Key != "api_key" {
		t.Errorf("Key = %q, want api_key", cfgErr.Key)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYKIT_API_KEY", "sk")

	_, err := LoadWithSecrets(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	var cfgErr *paykiterrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
	if cfgErr.Key != "config_file" {
		t.Errorf("Key = %q, want config_file", cfgErr.Key)
	}
}

func TestLoad_MissingDefaultFileIsFine(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYKIT_API_KEY", "sk")
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}

	if _, err := LoadWithSecrets(path, nil); err != nil {
		t.Fatalf("LoadWithSecrets() error = %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "api_key: [unclosed\n")

	_, err := LoadWithSecrets(path, nil)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{
			name:   "api key",
			mutate: func(c *Config) { c.APIKey = "sk" },
		},
		{
			name:    "no credentials",
			mutate:  func(c *Config) {},
			wantKey: "api_key",
		},
		{
			name: "oauth2 without secret",
			mutate: func(c *Config) {
				c.OAuth2.ClientID = "cid"
				c.OAuth2.TokenURL = "https://auth.example.com/token"
			},
			wantKey: "client_secret",
		},
		{
			name: "bad base url",
			mutate: func(c *Config) {
				c.APIKey = "sk"
				c.BaseURL = "not a url"
			},
			wantKey: "base_url",
		},
		{
			name: "unreadable ca bundle",
			mutate: func(c *Config) {
				c.APIKey = "sk"
				c.HTTP.CABundle = "/nonexistent/ca.pem"
			},
			wantKey: "ca_bundle",
		},
		{
			name: "negative retries",
			mutate: func(c *Config) {
				c.APIKey = "sk"
				c.HTTP.Retries = -1
			},
			wantKey: "retry_attempts",
		},
		{
			name: "unknown log level",
			mutate: func(c *Config) {
				c.APIKey = "sk"
				c.Log.Level = "loud"
			},
			wantKey: "log.level",
		},
		{
			name: "unknown exporter",
			mutate: func(c *Config) {
				c.APIKey = "sk"
				c.Tracing.Exporter = "zipkin"
			},
			wantKey: "tracing.exporter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantKey == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			var cfgErr *paykiterrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %T: %v", err, err)
			}
			if cfgErr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", cfgErr.Key, tt.wantKey)
			}
		})
	}
}

func TestHTTPClientConfig(t *testing.T) {
	cfg := Default()
	cfg.HTTP.Timeout = 7 * time.Second
	cfg.HTTP.Retries = 0
	cfg.HTTP.RetryWrites = true

	hc := cfg.HTTPClientConfig()
	if hc.Timeout != 7*time.Second {
		t.Errorf("Timeout = %v", hc.Timeout)
	}
	if hc.RetryAttempts != 0 {
		t.Errorf("RetryAttempts = %d", hc.RetryAttempts)
	}
	if !hc.AllowNonIdempotentRetry {
		t.Error("AllowNonIdempotentRetry = false")
	}
	if hc.UserAgent == "" {
		t.Error("UserAgent should come from the defaults")
	}
}

func TestConfigDir_XDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if dir != filepath.Join(base, "paykit") {
		t.Errorf("ConfigDir() = %q", dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("config dir not created: %v", err)
	}
}
