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

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/time/rate"

	"github.com/tombee/paykit/internal/telemetry"
	"github.com/tombee/paykit/internal/tracing"
	paykiterrors "github.com/tombee/paykit/pkg/errors"
	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/pkg/jsonvalue"
	"github.com/tombee/paykit/pkg/response"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.paykit.example.com"

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 10 << 20

// ErrBodyTooLarge is returned when a response body exceeds the read limit.
var ErrBodyTooLarge = errors.New("response body too large")

// HTTPTransport sends requests over HTTP with bearer authentication.
type HTTPTransport struct {
	baseURL *url.URL
	client  *http.Client
	auth    Authenticator
	limiter RateLimiter
	tracer  trace.Tracer
	logger  *slog.Logger
	maxBody int64
}

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithHTTPClient sets the HTTP client. Defaults to httpclient.New with
// httpclient.DefaultConfig.
func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTPTransport) {
		if client != nil {
			t.client = client
		}
	}
}

// WithAuthenticator sets how requests are authenticated.
func WithAuthenticator(auth Authenticator) Option {
	return func(t *HTTPTransport) { t.auth = auth }
}

// WithRateLimiter makes every request wait on limiter first. A nil limiter,
// including the nil *rate.Limiter NewRateLimiter returns for rps <= 0,
// disables limiting.
func WithRateLimiter(limiter RateLimiter) Option {
	return func(t *HTTPTransport) {
		if l, ok := limiter.(*rate.Limiter); ok && l == nil {
			limiter = nil
		}
		t.limiter = limiter
	}
}

// WithTracer records a client span per request.
func WithTracer(tracer trace.Tracer) Option {
	return func(t *HTTPTransport) {
		if tracer != nil {
			t.tracer = tracer
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *HTTPTransport) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewHTTPTransport creates a transport rooted at baseURL.
func NewHTTPTransport(baseURL string, opts ...Option) (*HTTPTransport, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &paykiterrors.ConfigError{Key: "base_url", Reason: fmt.Sprintf("invalid URL %q", baseURL), Cause: err}
	}

	t := &HTTPTransport{
		baseURL: u,
		tracer:  noop.NewTracerProvider().Tracer("paykit"),
		logger:  slog.Default(),
		maxBody: maxBodySize,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.client == nil {
		client, err := httpclient.New(httpclient.DefaultConfig())
		if err != nil {
			return nil, err
		}
		t.client = client
	}
	return t, nil
}

// BaseURL returns the API root the transport sends to.
func (t *HTTPTransport) BaseURL() string {
	return t.baseURL.String()
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*response.Response, error) {
	ctx, _ = tracing.EnsureContext(ctx)
	ctx = httpclient.WithRequestOptions(ctx, req.Options)

	ctx, span := t.tracer.Start(ctx, spanName(req),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.Path),
			attribute.String("paykit.correlation_id", tracing.FromContextOrEmpty(ctx).String()),
		),
	)
	defer span.End()

	resp, err := t.send(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	return resp, nil
}

func (t *HTTPTransport) send(ctx context.Context, req *Request) (*response.Response, error) {
	httpReq, err := t.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, t.connectionError(httpReq, err)
		}
	}

	if t.auth != nil {
		token, err := t.auth.Token(ctx)
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, t.connectionError(httpReq, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, t.maxBody+1))
	if err != nil {
		return nil, t.connectionError(httpReq, err)
	}
	if int64(len(raw)) > t.maxBody {
		return nil, fmt.Errorf("%s %s: %w (limit %d bytes)",
			httpReq.Method, httpclient.SanitizeURL(httpReq.URL.String()), ErrBodyTooLarge, t.maxBody)
	}

	return &response.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       t.parseBody(raw),
	}, nil
}

func (t *HTTPTransport) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	// req.Path arrives with its segments already escaped.
	u := *t.baseURL
	rawPath := strings.TrimRight(u.EscapedPath(), "/") + "/" + strings.TrimLeft(req.Path, "/")
	path, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, paykiterrors.Wrapf(err, "invalid request path %q", req.Path)
	}
	u.Path, u.RawPath = path, rawPath
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, paykiterrors.Wrapf(err, "failed to encode %s %s request body", method, req.Path)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, paykiterrors.Wrapf(err, "failed to build %s %s request", method, req.Path)
	}
	httpReq.Header.Set("Accept", "application/json")
	telemetry.Apply(httpReq.Header)
	tracing.InjectHTTPHeaders(ctx, httpReq)
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	return httpReq, nil
}

// parseBody decodes JSON into raw values. An empty body is nil and a body
// that is not JSON is kept as a string.
func (t *HTTPTransport) parseBody(raw []byte) any {
	v, err := jsonvalue.Parse(raw)
	if err != nil {
		t.logger.Debug("response body is not JSON", "bytes", len(raw))
		return string(raw)
	}
	return v
}

func (t *HTTPTransport) connectionError(req *http.Request, err error) error {
	return &paykiterrors.ConnectionError{
		Method:  req.Method,
		URL:     httpclient.SanitizeURL(req.URL.String()),
		Timeout: isTimeout(err),
		Cause:   err,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func spanName(req *Request) string {
	return strings.ToUpper(req.Method) + " " + req.Path
}
