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

// Package config loads client settings from defaults, a YAML file, the
// environment and the system keychain, in that order.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tombee/paykit/internal/secrets"
	"github.com/tombee/paykit/internal/tracing"
	"github.com/tombee/paykit/internal/transport"
	paykiterrors "github.com/tombee/paykit/pkg/errors"
	"github.com/tombee/paykit/pkg/httpclient"
)

// Config represents the complete paykit configuration.
type Config struct {
	// APIKey authenticates as a merchant.
	// Environment: PAYKIT_API_KEY
	APIKey string `yaml:"api_key,omitempty"`

	// AccessToken is a pre-issued OAuth2 access token.
	// Environment: PAYKIT_ACCESS_TOKEN
	AccessToken string `yaml:"access_token,omitempty"`

	// BaseURL overrides the API endpoint.
	// Environment: PAYKIT_BASE_URL
	BaseURL string `yaml:"base_url,omitempty"`

	// MerchantCode is used by commands that act on a merchant when no
	// code is given.
	// Environment: PAYKIT_MERCHANT_CODE
	MerchantCode string `yaml:"merchant_code,omitempty"`

	OAuth2    OAuth2Config    `yaml:"oauth2,omitempty"`
	HTTP      HTTPConfig      `yaml:"http"`
	RateLimit RateLimitConfig `yaml:"rate_limit,omitempty"`
	Log       LogConfig       `yaml:"log"`
	Tracing   TracingConfig   `yaml:"tracing,omitempty"`
}

// OAuth2Config configures the client credentials or refresh token flow.
type OAuth2Config struct {
	ClientID     string   `yaml:"client_id,omitempty"`
	ClientSecret string   `yaml:"client_secret,omitempty"`
	TokenURL     string   `yaml:"token_url,omitempty"`
	Scopes       []string `yaml:"scopes,omitempty"`
	RefreshToken string   `yaml:"refresh_token,omitempty"`
}

// Enabled reports whether an OAuth2 flow is configured.
func (c OAuth2Config) Enabled() bool {
	return c.ClientID != ""
}

// HTTPConfig configures the HTTP client.
type HTTPConfig struct {
	// Timeout bounds a request including retries.
	// Environment: PAYKIT_TIMEOUT
	Timeout time.Duration `yaml:"timeout"`

	// ConnectTimeout bounds establishing a connection.
	// Environment: PAYKIT_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `yaml:"connect_timeout"`

	// Retries is the number of retries after the first attempt.
	// Environment: PAYKIT_RETRIES
	Retries int `yaml:"retries"`

	// RetryBackoff is the initial backoff delay.
	// Environment: PAYKIT_RETRY_BACKOFF
	RetryBackoff time.Duration `yaml:"retry_backoff"`

	// MaxBackoff caps the backoff delay.
	MaxBackoff time.Duration `yaml:"max_backoff"`

	// CABundle is a PEM file of trusted root certificates.
	// Environment: PAYKIT_CA_BUNDLE
	CABundle string `yaml:"ca_bundle,omitempty"`

	// RetryWrites allows retrying POST, PUT, PATCH and DELETE with an
	// idempotency key.
	RetryWrites bool `yaml:"retry_writes,omitempty"`
}

// RateLimitConfig throttles outgoing requests. A zero RPS disables it.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps,omitempty"`
	Burst int     `yaml:"burst,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error.
	// Environment: PAYKIT_LOG_LEVEL, LOG_LEVEL
	Level string `yaml:"level"`

	// Format is json or text.
	// Environment: LOG_FORMAT
	Format string `yaml:"format"`

	// AddSource includes file and line in records.
	// Environment: LOG_SOURCE
	AddSource bool `yaml:"add_source,omitempty"`
}

// TracingConfig selects an OpenTelemetry exporter.
type TracingConfig struct {
	// Exporter is none, console, otlp or otlp-http.
	// Environment: PAYKIT_TRACING_EXPORTER
	Exporter string `yaml:"exporter,omitempty"`

	// Endpoint is the collector address.
	// Environment: OTEL_EXPORTER_OTLP_ENDPOINT
	Endpoint   string            `yaml:"endpoint,omitempty"`
	Insecure   bool              `yaml:"insecure,omitempty"`
	Headers    map[string]string `yaml:"headers,omitempty"`
	SampleRate float64           `yaml:"sample_rate,omitempty"`
}

// SecretGetter resolves credentials that are not in the file or
// environment.
type SecretGetter interface {
	Get(ctx context.Context, key string) (string, error)
}

// Default returns the default configuration.
func Default() *Config {
	http := httpclient.DefaultConfig()
	return &Config{
		HTTP: HTTPConfig{
			Timeout:        http.Timeout,
			ConnectTimeout: http.ConnectTimeout,
			Retries:        http.RetryAttempts,
			RetryBackoff:   http.RetryBackoff,
			MaxBackoff:     http.MaxBackoff,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Tracing: TracingConfig{
			Exporter: "none",
		},
	}
}

// Load reads configuration from configPath (optional), the environment and
// the system keychain, then validates it. Errors are *errors.ConfigError.
func Load(configPath string) (*Config, error) {
	return LoadWithSecrets(configPath, secrets.DefaultStore())
}

// LoadWithSecrets is like Load but resolves missing credentials from store.
// A nil store skips that step.
func LoadWithSecrets(configPath string, store SecretGetter) (*Config, error) {
	cfg, err := LoadUnvalidated(configPath, store)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadUnvalidated runs every loading step except validation. Commands that
// work without credentials use it.
func LoadUnvalidated(configPath string, store SecretGetter) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if err := cfg.loadFromFile(configPath); err != nil {
			return nil, &paykiterrors.ConfigError{
				Key:    "config_file",
				Reason: fmt.Sprintf("failed to load from %s", configPath),
				Cause:  err,
			}
		}
	}

	cfg.loadFromEnv()

	if store != nil {
		cfg.loadFromSecrets(context.Background(), store)
	}
	return cfg, nil
}

// loadFromFile loads configuration from a YAML file. A missing file at the
// default location is not an error.
func (c *Config) loadFromFile(path string) error {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && isDefaultPath(path) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func isDefaultPath(path string) bool {
	def, err := ConfigPath()
	return err == nil && filepath.Clean(def) == filepath.Clean(path)
}

// loadFromEnv loads configuration from environment variables. Values that
// fail to parse are ignored.
func (c *Config) loadFromEnv() {
	if val := os.Getenv("PAYKIT_API_KEY"); val != "" {
		c.APIKey = val
	}
	if val := os.Getenv("PAYKIT_ACCESS_TOKEN"); val != "" {
		c.AccessToken = val
	}
	if val := os.Getenv("PAYKIT_BASE_URL"); val != "" {
		c.BaseURL = val
	}
	if val := os.Getenv("PAYKIT_MERCHANT_CODE"); val != "" {
		c.MerchantCode = val
	}

	// OAuth2
	if val := os.Getenv("PAYKIT_CLIENT_ID"); val != "" {
		c.OAuth2.ClientID = val
	}
	if val := os.Getenv("PAYKIT_CLIENT_SECRET"); val != "" {
		c.OAuth2.ClientSecret = val
	}
	if val := os.Getenv("PAYKIT_TOKEN_URL"); val != "" {
		c.OAuth2.TokenURL = val
	}

	// HTTP
	if val := os.Getenv("PAYKIT_CA_BUNDLE"); val != "" {
		c.HTTP.CABundle = val
	}
	if val := os.Getenv("PAYKIT_TIMEOUT"); val != "" {
		if d, ok := parseDuration(val); ok {
			c.HTTP.Timeout = d
		}
	}
	if val := os.Getenv("PAYKIT_CONNECT_TIMEOUT"); val != "" {
		if d, ok := parseDuration(val); ok {
			c.HTTP.ConnectTimeout = d
		}
	}
	if val := os.Getenv("PAYKIT_RETRIES"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.HTTP.Retries = n
		}
	}
	if val := os.Getenv("PAYKIT_RETRY_BACKOFF"); val != "" {
		if d, ok := parseDuration(val); ok {
			c.HTTP.RetryBackoff = d
		}
	}

	// Logging
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv("PAYKIT_LOG_LEVEL"); val != "" {
		c.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = strings.ToLower(val)
	}
	if val := os.Getenv("LOG_SOURCE"); val != "" {
		c.Log.AddSource = val == "1" || strings.ToLower(val) == "true"
	}

	// Tracing
	if val := os.Getenv("PAYKIT_TRACING_EXPORTER"); val != "" {
		c.Tracing.Exporter = strings.ToLower(val)
	}
	if val := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); val != "" {
		c.Tracing.Endpoint = val
	}
}

// parseDuration accepts Go durations ("30s") and bare seconds ("30").
func parseDuration(val string) (time.Duration, bool) {
	if d, err := time.ParseDuration(val); err == nil {
		return d, true
	}
	if secs, err := strconv.ParseFloat(val, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), true
	}
	return 0, false
}

// loadFromSecrets fills credentials still empty after file and environment.
func (c *Config) loadFromSecrets(ctx context.Context, store SecretGetter) {
	fill := func(dst *string, key string) {
		if *dst != "" {
			return
		}
		if val, err := store.Get(ctx, key); err == nil {
			*dst = val
		}
	}
	if c.AccessToken == "" && !c.OAuth2.Enabled() {
		fill(&c.APIKey, secrets.KeyAPIKey)
	}
	if c.OAuth2.Enabled() {
		fill(&c.OAuth2.ClientSecret, secrets.KeyClientSecret)
		fill(&c.OAuth2.RefreshToken, secrets.KeyRefreshToken)
	}
}

// HasCredentials reports whether any authentication method is configured.
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" || c.AccessToken != "" || c.OAuth2.Enabled()
}

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if !c.HasCredentials() {
		return &paykiterrors.ConfigError{
			Key:    "api_key",
			Reason: "no credentials configured; set PAYKIT_API_KEY or run 'paykit auth login'",
		}
	}
	if c.OAuth2.Enabled() {
		if err := c.OAuth2Settings().Validate(); err != nil {
			return err
		}
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return &paykiterrors.ConfigError{Key: "base_url", Reason: fmt.Sprintf("invalid URL %q", c.BaseURL), Cause: err}
		}
	}

	http := c.HTTPClientConfig()
	if err := http.Validate(); err != nil {
		return err
	}

	if c.RateLimit.RPS < 0 {
		return &paykiterrors.ConfigError{Key: "rate_limit.rps", Reason: "must be >= 0"}
	}

	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return &paykiterrors.ConfigError{Key: "log.level", Reason: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return &paykiterrors.ConfigError{Key: "log.format", Reason: fmt.Sprintf("unknown format %q", c.Log.Format)}
	}

	switch c.Tracing.Exporter {
	case "", tracing.ExporterNone, tracing.ExporterConsole, tracing.ExporterOTLP, tracing.ExporterOTLPHTTP:
	default:
		return &paykiterrors.ConfigError{Key: "tracing.exporter", Reason: fmt.Sprintf("unknown exporter %q", c.Tracing.Exporter)}
	}
	return nil
}

// HTTPClientConfig maps the HTTP settings onto an httpclient.Config.
func (c *Config) HTTPClientConfig() httpclient.Config {
	cfg := httpclient.DefaultConfig()
	cfg.Timeout = c.HTTP.Timeout
	cfg.ConnectTimeout = c.HTTP.ConnectTimeout
	cfg.RetryAttempts = c.HTTP.Retries
	cfg.RetryBackoff = c.HTTP.RetryBackoff
	if c.HTTP.MaxBackoff > 0 {
		cfg.MaxBackoff = c.HTTP.MaxBackoff
	}
	cfg.CABundle = c.HTTP.CABundle
	cfg.AllowNonIdempotentRetry = c.HTTP.RetryWrites
	return cfg
}

// OAuth2Settings maps the OAuth2 section onto the transport's settings.
func (c *Config) OAuth2Settings() transport.OAuth2Config {
	return transport.OAuth2Config{
		ClientID:     c.OAuth2.ClientID,
		ClientSecret: c.OAuth2.ClientSecret,
		TokenURL:     c.OAuth2.TokenURL,
		Scopes:       c.OAuth2.Scopes,
		RefreshToken: c.OAuth2.RefreshToken,
	}
}

// TracingSettings maps the tracing section onto a tracing.Config.
func (c *Config) TracingSettings(serviceVersion string) tracing.Config {
	return tracing.Config{
		ServiceName:    "paykit",
		ServiceVersion: serviceVersion,
		Exporter:       c.Tracing.Exporter,
		Endpoint:       c.Tracing.Endpoint,
		Insecure:       c.Tracing.Insecure,
		Headers:        c.Tracing.Headers,
		SampleRate:     c.Tracing.SampleRate,
	}
}
