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

package sdk

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/config"
	"github.com/tombee/paykit/internal/tracing"
	"github.com/tombee/paykit/internal/transport"
	"github.com/tombee/paykit/internal/version"
	paykiterrors "github.com/tombee/paykit/pkg/errors"
	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/pkg/response"
	"github.com/tombee/paykit/sdk/checkouts"
	"github.com/tombee/paykit/sdk/customers"
	"github.com/tombee/paykit/sdk/members"
	"github.com/tombee/paykit/sdk/memberships"
	"github.com/tombee/paykit/sdk/merchants"
	"github.com/tombee/paykit/sdk/payouts"
	"github.com/tombee/paykit/sdk/readers"
	"github.com/tombee/paykit/sdk/roles"
	"github.com/tombee/paykit/sdk/shared"
	"github.com/tombee/paykit/sdk/subaccounts"
	"github.com/tombee/paykit/sdk/transactions"
)

// Version is the SDK version sent in the User-Agent header.
var Version = version.Version

// Client calls the payments API. It is safe for concurrent use.
type Client struct {
	Checkouts    *checkouts.Service
	Customers    *customers.Service
	Merchants    *merchants.Service
	Readers      *readers.Service
	Transactions *transactions.Service
	Payouts      *payouts.Service
	Roles        *roles.Service
	Members      *members.Service
	Memberships  *memberships.Service
	Subaccounts  *subaccounts.Service

	hydrator *hydrate.Hydrator
	tracing  *tracing.Provider
	logger   *slog.Logger

	closeMu sync.Mutex
	closed  bool
}

// New creates a Client. Unless WithTransport is given, one of WithAPIKey,
// WithAccessToken or WithOAuth2ClientCredentials is required.
//
// Example:
//
//	client, err := sdk.New(
//		sdk.WithAPIKey(os.Getenv("PAYKIT_API_KEY")),
//		sdk.WithRateLimit(10, 5),
//	)
func New(opts ...Option) (*Client, error) {
	s := &settings{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	c := &Client{
		hydrator: hydrate.New(Registry(), hydrate.WithLogger(s.logger)),
		tracing:  tracing.NewProviderFrom(s.tracerProvider),
		logger:   s.logger,
	}

	t := s.transport
	if t == nil {
		ht, err := newHTTPTransport(s, c.tracing)
		if err != nil {
			return nil, err
		}
		t = ht
	}

	pipeline := call.NewPipeline(t, response.NewDecoder(c.hydrator), call.WithLogger(s.logger))
	c.Checkouts = checkouts.NewService(pipeline)
	c.Customers = customers.NewService(pipeline)
	c.Merchants = merchants.NewService(pipeline)
	c.Readers = readers.NewService(pipeline)
	c.Transactions = transactions.NewService(pipeline)
	c.Payouts = payouts.NewService(pipeline)
	c.Roles = roles.NewService(pipeline)
	c.Members = members.NewService(pipeline)
	c.Memberships = memberships.NewService(pipeline)
	c.Subaccounts = subaccounts.NewService(pipeline)
	return c, nil
}

func newHTTPTransport(s *settings, tp *tracing.Provider) (*transport.HTTPTransport, error) {
	httpClient := s.httpClient
	if httpClient == nil {
		cfg := httpclient.DefaultConfig()
		if s.httpConfig != nil {
			cfg = *s.httpConfig
		}
		client, err := httpclient.New(cfg)
		if err != nil {
			return nil, err
		}
		httpClient = client
	}

	auth, err := authenticator(s, httpClient)
	if err != nil {
		return nil, err
	}

	opts := []transport.Option{
		transport.WithHTTPClient(httpClient),
		transport.WithAuthenticator(auth),
		transport.WithTracer(tp.Tracer()),
		transport.WithLogger(s.logger),
	}
	if s.rps > 0 {
		opts = append(opts, transport.WithRateLimiter(transport.NewRateLimiter(s.rps, s.burst)))
	}
	return transport.NewHTTPTransport(s.baseURL, opts...)
}

func authenticator(s *settings, client *http.Client) (transport.Authenticator, error) {
	switch {
	case s.accessToken != "":
		return transport.StaticToken(s.accessToken), nil
	case s.oauth2 != nil:
		return transport.NewOAuth2Authenticator(*s.oauth2, client)
	case s.apiKey != "":
		return transport.StaticToken(s.apiKey), nil
	default:
		return nil, &paykiterrors.ConfigError{
			Key:    "api_key",
			Reason: "no credentials configured; use WithAPIKey, WithAccessToken or WithOAuth2ClientCredentials",
		}
	}
}

// Config is the file, environment and keychain backed client configuration.
type Config = config.Config

// DefaultConfig returns a Config with defaults and no credentials.
func DefaultConfig() *Config {
	return config.Default()
}

// LoadConfig reads a Config from path (empty for none), PAYKIT_*
// environment variables and the system keychain.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// NewFromConfig creates a Client from cfg. Extra options are applied after
// the ones derived from cfg. A configured tracing exporter is flushed by
// Close.
func NewFromConfig(ctx context.Context, cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base []Option
	switch {
	case cfg.AccessToken != "":
		base = append(base, WithAccessToken(cfg.AccessToken))
	case cfg.OAuth2.Enabled():
		base = append(base, WithOAuth2(cfg.OAuth2Settings()))
	default:
		base = append(base, WithAPIKey(cfg.APIKey))
	}
	base = append(base, WithBaseURL(cfg.BaseURL), WithHTTPConfig(cfg.HTTPClientConfig()))
	if cfg.RateLimit.RPS > 0 {
		base = append(base, WithRateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	tp, err := tracing.NewProvider(ctx, cfg.TracingSettings(Version))
	if err != nil {
		return nil, &paykiterrors.ConfigError{Key: "tracing.exporter", Reason: "failed to start exporter", Cause: err}
	}
	base = append(base, WithTracerProvider(tp.TracerProvider()))

	c, err := New(append(base, opts...)...)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	c.tracing = tp
	return c, nil
}

// Hydrator returns the hydrator the client decodes responses with.
func (c *Client) Hydrator() *hydrate.Hydrator {
	return c.hydrator
}

// ErrorDetails decodes the body of an API error into its error entries.
// It returns nil for errors without a body.
func (c *Client) ErrorDetails(err error) []*shared.Error {
	return shared.ErrorDetails(c.hydrator, err)
}

// Close flushes pending trace spans. It is safe to call more than once.
func (c *Client) Close(ctx context.Context) error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.tracing.Shutdown(ctx)
}
