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

// Package call runs one API operation end to end: send, classify, decode.
package call

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tombee/paykit/internal/transport"
	paykiterrors "github.com/tombee/paykit/pkg/errors"
	"github.com/tombee/paykit/pkg/response"
)

// Caller executes an operation and returns its decoded result.
type Caller interface {
	Call(ctx context.Context, req *transport.Request, descriptors response.Descriptors) (any, error)
}

// Pipeline is the standard Caller.
type Pipeline struct {
	transport  transport.Transport
	classifier response.Classifier
	decoder    *response.Decoder
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClassifier replaces the default error classifier.
func WithClassifier(c response.Classifier) Option {
	return func(p *Pipeline) {
		if c != nil {
			p.classifier = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPipeline creates a Pipeline.
func NewPipeline(t transport.Transport, d *response.Decoder, opts ...Option) *Pipeline {
	p := &Pipeline{
		transport:  t,
		classifier: response.DefaultClassifier,
		decoder:    d,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Call implements Caller. Errors are transport failures or the classified
// API error; decoding itself never fails.
func (p *Pipeline) Call(ctx context.Context, req *transport.Request, descriptors response.Descriptors) (any, error) {
	resp, err := p.transport.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := p.classifier.Classify(resp); err != nil {
		p.logger.Warn("api error",
			"method", req.Method,
			"path", req.Path,
			"status", resp.StatusCode,
			"error_type", errorType(err),
			"error", err.Error(),
		)
		return nil, err
	}

	return p.decoder.Decode(resp, descriptors), nil
}

// Expect asserts the decoded result to T. A nil result yields the zero T,
// so void operations can use Expect[any] or ignore the value.
func Expect[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, &paykiterrors.UnexpectedResponseError{Want: fmt.Sprintf("%T", zero), Got: v}
	}
	return t, nil
}

// ExpectList asserts a decoded array to []T. Any element that is not a T
// fails the result.
func ExpectList[T any](v any, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &paykiterrors.UnexpectedResponseError{Want: fmt.Sprintf("%T", []T(nil)), Got: v}
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		t, ok := item.(T)
		if !ok {
			return nil, &paykiterrors.UnexpectedResponseError{Want: fmt.Sprintf("%T", *new(T)), Got: item}
		}
		out = append(out, t)
	}
	return out, nil
}

// ExpectVoid discards the result of an operation without a body.
func ExpectVoid(_ any, err error) error {
	return err
}

func errorType(err error) string {
	if c, ok := err.(paykiterrors.ErrorClassifier); ok {
		return c.ErrorType()
	}
	return "unknown"
}
