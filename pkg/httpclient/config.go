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

package httpclient

import (
	"fmt"
	"os"
	"time"

	"github.com/tombee/paykit/internal/telemetry"
	paykiterrors "github.com/tombee/paykit/pkg/errors"
)

// Config holds configuration for the HTTP client.
type Config struct {
	// Timeout bounds a whole request including retries.
	// Default: 30s. Must be > 0.
	Timeout time.Duration

	// ConnectTimeout bounds establishing a connection.
	// Default: 10s. Must be > 0.
	ConnectTimeout time.Duration

	// RetryAttempts is the number of retries after the first attempt.
	// Default: 3. Must be >= 0.
	RetryAttempts int

	// RetryBackoff is the initial backoff delay before first retry.
	// Default: 100ms. Must be > 0 if RetryAttempts > 0.
	RetryBackoff time.Duration

	// MaxBackoff is the maximum backoff delay cap.
	// Default: 30s. Must be >= RetryBackoff.
	MaxBackoff time.Duration

	// UserAgent is the User-Agent header value.
	// Required. Must be non-empty.
	UserAgent string

	// Headers are set on every request unless the request already has them.
	Headers map[string]string

	// CABundle is a PEM file of additional root certificates. Empty uses
	// the system pool.
	CABundle string

	// AllowNonIdempotentRetry enables retry for POST, PUT, PATCH and DELETE.
	// Retried writes carry an Idempotency-Key header so the API can
	// deduplicate them.
	AllowNonIdempotentRetry bool
}

// DefaultConfig returns a Config with the SDK defaults and the telemetry
// header set.
func DefaultConfig() Config {
	return Config{
		Timeout:        30 * time.Second,
		ConnectTimeout: 10 * time.Second,
		RetryAttempts:  3,
		RetryBackoff:   100 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
		UserAgent:      telemetry.UserAgent(),
		Headers:        telemetry.Headers(),
	}
}

// Validate checks if the configuration is valid. Errors are
// *errors.ConfigError naming the offending key.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return configError("timeout", fmt.Sprintf("must be > 0, got %v", c.Timeout), nil)
	}

	if c.ConnectTimeout < 0 {
		return configError("connect_timeout", fmt.Sprintf("must be >= 0, got %v", c.ConnectTimeout), nil)
	}

	if c.RetryAttempts < 0 {
		return configError("retry_attempts", fmt.Sprintf("must be >= 0, got %d", c.RetryAttempts), nil)
	}

	if c.RetryAttempts > 0 {
		if c.RetryBackoff <= 0 {
			return configError("retry_backoff", fmt.Sprintf("must be > 0 when retry_attempts > 0, got %v", c.RetryBackoff), nil)
		}

		if c.MaxBackoff < c.RetryBackoff {
			return configError("max_backoff", fmt.Sprintf("(%v) must be >= retry_backoff (%v)", c.MaxBackoff, c.RetryBackoff), nil)
		}
	}

	if c.UserAgent == "" {
		return configError("user_agent", "is required and must be non-empty", nil)
	}

	if c.CABundle != "" {
		if _, err := os.Stat(c.CABundle); err != nil {
			return configError("ca_bundle", "certificate bundle is not readable", err)
		}
	}

	return nil
}

func configError(key, reason string, cause error) error {
	return &paykiterrors.ConfigError{Key: key, Reason: reason, Cause: cause}
}
