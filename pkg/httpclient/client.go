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
	"crypto/tls"
	"crypto/x509"
	"net"
	"net/http"
	"os"
	"time"
)

// New creates a new HTTP client with the given configuration.
// The client includes:
//   - Per-request timeout, connect timeout, retries and backoff overrides
//   - Retry logic with exponential backoff and Retry-After support
//   - Request logging with sanitized URLs and Prometheus metrics
//   - Default header injection (User-Agent, telemetry, correlation ID)
//   - TLS 1.2 minimum with an optional extra CA bundle
//
// Returns an error if the configuration is invalid.
func New(cfg Config) (*http.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		MaxVersion: tls.VersionTLS13,
	}
	if cfg.CABundle != "" {
		pool, err := loadCABundle(cfg.CABundle)
		if err != nil {
			return nil, err
		}
		tlsConfig.RootCAs = pool
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = 10 * time.Second
	}

	baseTransport := &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: tlsConfig,

		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,

		DialContext:           dialer(connectTimeout),
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.Timeout,
		ExpectContinueTimeout: 1 * time.Second,
	}

	// Layer 1: default headers (innermost custom layer)
	var rt http.RoundTripper = newHeaderTransport(baseTransport, cfg.UserAgent, cfg.Headers)

	// Layer 2: logging and metrics, once per attempt
	rt = newLoggingTransport(rt)

	// Layer 3: retries, per-request overrides may enable them
	rt = newRetryTransport(rt, cfg)

	// Layer 4: overall deadline (outermost)
	rt = newTimeoutTransport(rt, cfg.Timeout)

	// No Client.Timeout: the timeout layer owns the deadline.
	return &http.Client{Transport: rt}, nil
}

// dialer returns a DialContext that honours a per-request connect timeout.
func dialer(def time.Duration) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		timeout := def
		if opts, ok := RequestOptionsFrom(ctx); ok && opts.ConnectTimeout > 0 {
			timeout = opts.ConnectTimeout
		}
		d := &net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}
		return d.DialContext(ctx, network, addr)
	}
}

func loadCABundle(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("ca_bundle", "certificate bundle is not readable", err)
	}

	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(pem) {
		return nil, configError("ca_bundle", "certificate bundle contains no PEM certificates", nil)
	}
	return pool, nil
}
