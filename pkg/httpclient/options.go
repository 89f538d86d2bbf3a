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
	"time"
)

// RequestOptions override the client configuration for a single request.
// Zero fields keep the client defaults.
type RequestOptions struct {
	// Timeout bounds the request including retries.
	Timeout time.Duration

	// ConnectTimeout bounds establishing a new connection.
	ConnectTimeout time.Duration

	// Retries replaces the number of retries. Use a pointer so that zero
	// retries can be requested explicitly.
	Retries *int

	// RetryBackoff replaces the initial backoff delay.
	RetryBackoff time.Duration
}

type requestOptionsKey struct{}

// WithRequestOptions returns ctx carrying per-request overrides.
func WithRequestOptions(ctx context.Context, opts RequestOptions) context.Context {
	return context.WithValue(ctx, requestOptionsKey{}, opts)
}

// RequestOptionsFrom returns the overrides carried by ctx.
func RequestOptionsFrom(ctx context.Context) (RequestOptions, bool) {
	opts, ok := ctx.Value(requestOptionsKey{}).(RequestOptions)
	return opts, ok
}

// Retries is a helper for setting RequestOptions.Retries.
func Retries(n int) *int {
	return &n
}

// RequestOption sets one field of RequestOptions.
type RequestOption func(*RequestOptions)

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) RequestOption {
	return func(o *RequestOptions) { o.Timeout = d }
}

// WithConnectTimeout overrides the connect timeout.
func WithConnectTimeout(d time.Duration) RequestOption {
	return func(o *RequestOptions) { o.ConnectTimeout = d }
}

// WithRetries overrides the number of retries. Zero disables retrying.
func WithRetries(n int) RequestOption {
	return func(o *RequestOptions) { o.Retries = Retries(n) }
}

// WithRetryBackoff overrides the initial backoff delay.
func WithRetryBackoff(d time.Duration) RequestOption {
	return func(o *RequestOptions) { o.RetryBackoff = d }
}

// BuildRequestOptions folds opts into a RequestOptions value.
func BuildRequestOptions(opts ...RequestOption) RequestOptions {
	var o RequestOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
