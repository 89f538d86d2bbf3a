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

// Package httpclient builds the *http.Client the SDK talks to the payments
// API with.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
// DefaultConfig carries the SDK telemetry headers, so every request sends
// Content-Type application/json, the paykit-go User-Agent and the
// X-Paykit-* runtime headers.
//
// # Per-request options
//
// Timeout, connect timeout, retries and backoff can be overridden for one
// request through its context:
//
//	ctx = httpclient.WithRequestOptions(ctx, httpclient.RequestOptions{
//	    Timeout: 5 * time.Second,
//	    Retries: httpclient.Retries(0),
//	})
//
// # Retry Behavior
//
//   - Retries HTTP 5xx, 408 and 429 with exponential backoff and jitter
//   - Honours Retry-After when it is shorter than the computed backoff
//   - Retries transient network errors (connection refused, reset, DNS)
//   - Only retries GET, HEAD and OPTIONS unless AllowNonIdempotentRetry is
//     set, in which case retried writes carry an Idempotency-Key header
//
// # Observability
//
// Every attempt is logged through log/slog with a sanitized URL and counted
// in the paykit_http_* Prometheus metrics.
package httpclient
