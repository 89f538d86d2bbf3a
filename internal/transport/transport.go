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

// Package transport performs single API exchanges: it builds the HTTP
// request, authenticates it, sends it through the SDK HTTP client and parses
// the body into raw values. It never interprets the response; that is left
// to the response package.
package transport

import (
	"context"
	"net/url"

	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/pkg/response"
)

// Transport sends one request and returns the parsed response.
// A non-nil error means no HTTP response was obtained.
type Transport interface {
	Send(ctx context.Context, req *Request) (*response.Response, error)
}

// Request describes one API call.
type Request struct {
	// Method is the HTTP method.
	Method string

	// Path is relative to the transport's base URL, e.g. "/v0.1/checkouts".
	Path string

	// Query is appended to the URL.
	Query url.Values

	// Body is encoded as JSON when non-nil.
	Body any

	// Headers are added to the request, after the default headers.
	Headers map[string]string

	// Options override timeouts and retries for this request.
	Options httpclient.RequestOptions
}

// RateLimiter blocks until a request may proceed.
// *rate.Limiter from golang.org/x/time/rate satisfies it.
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Func adapts a function to Transport. It is handy for tests and for
// wrapping another transport.
type Func func(ctx context.Context, req *Request) (*response.Response, error)

// Send implements Transport.
func (f Func) Send(ctx context.Context, req *Request) (*response.Response, error) {
	return f(ctx, req)
}
