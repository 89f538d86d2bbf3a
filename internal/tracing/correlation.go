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

package tracing

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// CorrelationID identifies one logical SDK call across its retries and in
// the API's own logs. It is an RFC 4122 UUID.
type CorrelationID string

type correlationKeyType struct{}

var correlationKey = correlationKeyType{}

// Header names used for correlation.
const (
	// HeaderCorrelationID is sent on every request.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is the header the API answers with.
	HeaderRequestID = "X-Request-ID"
	// HeaderIdempotencyKey makes retried writes safe.
	HeaderIdempotencyKey = "Idempotency-Key"
)

// NewCorrelationID generates a new correlation ID.
func NewCorrelationID() CorrelationID {
	return CorrelationID(uuid.New().String())
}

func (c CorrelationID) String() string {
	return string(c)
}

// IsValid reports whether the ID parses as a UUID.
func (c CorrelationID) IsValid() bool {
	if len(c) != 36 {
		return false
	}
	_, err := uuid.Parse(string(c))
	return err == nil
}

// ToContext stores id in ctx.
func ToContext(ctx context.Context, id CorrelationID) context.Context {
	return context.WithValue(ctx, correlationKey, id)
}

// FromContext returns the ID stored in ctx, or a new one.
func FromContext(ctx context.Context) CorrelationID {
	if id, ok := ctx.Value(correlationKey).(CorrelationID); ok {
		return id
	}
	return NewCorrelationID()
}

// FromContextOrEmpty returns the ID stored in ctx, or "".
func FromContextOrEmpty(ctx context.Context) CorrelationID {
	if id, ok := ctx.Value(correlationKey).(CorrelationID); ok {
		return id
	}
	return ""
}

// EnsureContext returns ctx carrying a correlation ID, adding a new one when
// ctx has none, so every attempt of a retried call shares the same ID.
func EnsureContext(ctx context.Context) (context.Context, CorrelationID) {
	if id := FromContextOrEmpty(ctx); id != "" {
		return ctx, id
	}
	id := NewCorrelationID()
	return ToContext(ctx, id), id
}

// InjectIntoRequest sets the correlation header from the request context.
func InjectIntoRequest(req *http.Request) {
	if id := FromContextOrEmpty(req.Context()); id != "" {
		req.Header.Set(HeaderCorrelationID, id.String())
	}
}

// RequestIDFromResponse returns the API's request ID, falling back to the
// echoed correlation ID.
func RequestIDFromResponse(resp *http.Response) string {
	if resp == nil {
		return ""
	}
	if id := resp.Header.Get(HeaderRequestID); id != "" {
		return id
	}
	return resp.Header.Get(HeaderCorrelationID)
}

// NewIdempotencyKey returns a fresh idempotency key.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
