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
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tombee/paykit/internal/telemetry"
	"github.com/tombee/paykit/internal/tracing"
)

// headerTransport sets the User-Agent, the configured default headers and
// the correlation ID.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
	headers   map[string]string
}

func newHeaderTransport(base http.RoundTripper, userAgent string, headers map[string]string) *headerTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &headerTransport{
		base:      base,
		userAgent: userAgent,
		headers:   headers,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	// A configured User-Agent replaces the SDK default but not one set by
	// the caller on the request.
	if ua := req.Header.Get("User-Agent"); t.userAgent != "" && (ua == "" || ua == telemetry.UserAgent()) {
		req.Header.Set("User-Agent", t.userAgent)
	}
	for k, v := range t.headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	tracing.InjectIntoRequest(req)

	return t.base.RoundTrip(req)
}

// loggingTransport logs and measures every attempt.
type loggingTransport struct {
	base http.RoundTripper
}

func newLoggingTransport(base http.RoundTripper) *loggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &loggingTransport{base: base}
}

// RoundTrip implements http.RoundTripper.
// Logs method, URL (sanitized), status/error, and duration.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start)
	logURL := sanitizeURL(req.URL)

	if err != nil {
		recordRequest(req.Method, "error", elapsed)
		slog.Warn("http request failed",
			"method", req.Method,
			"url", logURL,
			"duration_ms", elapsed.Milliseconds(),
			"correlation_id", tracing.FromContextOrEmpty(req.Context()).String(),
			"error", err.Error(),
		)
		return nil, err
	}

	recordRequest(req.Method, statusClass(resp.StatusCode), elapsed)
	level := slog.LevelDebug
	if resp.StatusCode >= 400 {
		level = slog.LevelWarn
	}
	slog.Log(req.Context(), level, "http request",
		"method", req.Method,
		"url", logURL,
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds(),
		"request_id", tracing.RequestIDFromResponse(resp),
	)
	return resp, nil
}

// timeoutTransport bounds a request, retries included, by a deadline. The
// deadline stays active until the response body is closed.
type timeoutTransport struct {
	base    http.RoundTripper
	timeout time.Duration
}

func newTimeoutTransport(base http.RoundTripper, timeout time.Duration) *timeoutTransport {
	return &timeoutTransport{base: base, timeout: timeout}
}

// RoundTrip implements http.RoundTripper.
func (t *timeoutTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	timeout := t.timeout
	if opts, ok := RequestOptionsFrom(req.Context()); ok && opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	if timeout <= 0 {
		return t.base.RoundTrip(req)
	}

	ctx, cancel := context.WithTimeout(req.Context(), timeout)
	resp, err := t.base.RoundTrip(req.WithContext(ctx))
	if err != nil {
		cancel()
		return nil, err
	}
	if resp.Body == nil {
		resp.Body = http.NoBody
	}
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}
