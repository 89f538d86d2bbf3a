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
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/tombee/paykit/internal/transport"
	"github.com/tombee/paykit/pkg/httpclient"
)

// Option configures a Client.
type Option func(*settings) error

type settings struct {
	apiKey         string
	accessToken    string
	oauth2         *OAuth2Config
	baseURL        string
	httpConfig     *httpclient.Config
	httpClient     *http.Client
	transport      Transport
	logger         *slog.Logger
	rps            float64
	burst          int
	tracerProvider trace.TracerProvider
}

// Transport sends one request and returns the parsed response. Supplying
// one with WithTransport replaces HTTP entirely.
type Transport = transport.Transport

// Request is what a Transport receives.
type Request = transport.Request

// TransportFunc adapts a function to Transport.
type TransportFunc = transport.Func

// OAuth2Config configures the OAuth2 client credentials or refresh token flow.
type OAuth2Config = transport.OAuth2Config

// WithAPIKey authenticates with a merchant API key.
func WithAPIKey(key string) Option {
	return func(s *settings) error {
		if key == "" {
			return fmt.Errorf("API key cannot be empty")
		}
		s.apiKey = key
		return nil
	}
}

// WithAccessToken authenticates with a pre-issued OAuth2 access token.
func WithAccessToken(token string) Option {
	return func(s *settings) error {
		if token == "" {
			return fmt.Errorf("access token cannot be empty")
		}
		s.accessToken = token
		return nil
	}
}

// WithOAuth2ClientCredentials fetches access tokens with the client
// credentials grant.
func WithOAuth2ClientCredentials(clientID, clientSecret, tokenURL string, scopes ...string) Option {
	return WithOAuth2(OAuth2Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		Scopes:       scopes,
	})
}

// WithOAuth2 configures an OAuth2 flow. Setting RefreshToken selects the
// refresh token grant.
func WithOAuth2(cfg OAuth2Config) Option {
	return func(s *settings) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		s.oauth2 = &cfg
		return nil
	}
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(url string) Option {
	return func(s *settings) error {
		s.baseURL = url
		return nil
	}
}

// WithHTTPConfig sets timeouts, retries and TLS settings of the HTTP client.
func WithHTTPConfig(cfg httpclient.Config) Option {
	return func(s *settings) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		s.httpConfig = &cfg
		return nil
	}
}

// WithHTTPClient uses client for API calls instead of building one.
// Retries are then up to the caller; the telemetry headers are still sent.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) error {
		if client == nil {
			return fmt.Errorf("HTTP client cannot be nil")
		}
		s.httpClient = client
		return nil
	}
}

// WithTransport replaces the HTTP transport. Credentials, base URL, HTTP
// and rate limit options are ignored.
func WithTransport(t Transport) Option {
	return func(s *settings) error {
		if t == nil {
			return fmt.Errorf("transport cannot be nil")
		}
		s.transport = t
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// WithRateLimit caps outgoing requests at rps per second with the given
// burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *settings) error {
		if rps <= 0 {
			return fmt.Errorf("rate limit must be positive, got %v", rps)
		}
		if burst < 1 {
			burst = 1
		}
		s.rps, s.burst = rps, burst
		return nil
	}
}

// WithTracerProvider records a client span per API call.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *settings) error {
		s.tracerProvider = tp
		return nil
	}
}
