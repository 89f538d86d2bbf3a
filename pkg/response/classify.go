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

package response

import (
	"strings"

	paykiterrors "github.com/tombee/paykit/pkg/errors"
	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/pkg/jsonvalue"
)

// Error codes the API puts in error bodies.
const (
	CodeNotAuthorized = "NOT_AUTHORIZED"
	CodeMissing       = "MISSING"
	CodeInvalid       = "INVALID"
)

// Default messages when the body carries none.
const (
	DefaultServerMessage = "Server error"
	DefaultClientMessage = "Client error"
	DefaultAuthMessage   = "Not authorized"
)

// messageKeys are checked in order when resolving an error message.
var messageKeys = []string{"message", "error_message", "error_description", "error"}

// Classifier inspects a response and returns a typed error for error
// responses, or nil.
type Classifier interface {
	Classify(resp *Response) error
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(resp *Response) error

// Classify implements Classifier.
func (f ClassifierFunc) Classify(resp *Response) error { return f(resp) }

// DefaultClassifier recognizes the API's error bodies.
var DefaultClassifier Classifier = ClassifierFunc(Classify)

// Classify maps a response onto the error it represents. The body decides
// first, so an authorization error code wins even on a 200 response; the
// status range decides only when the body has no recognized error code.
func Classify(resp *Response) error {
	if resp == nil {
		return nil
	}
	status, body := resp.StatusCode, resp.Body

	code := errorCode(body)
	switch {
	case strings.EqualFold(code, CodeNotAuthorized):
		return &paykiterrors.AuthenticationError{
			StatusCode: status,
			Message:    resolveMessage(body, DefaultAuthMessage),
			Body:       body,
		}
	case isValidationCode(code):
		return &paykiterrors.ValidationError{
			StatusCode:    status,
			InvalidFields: []string{param(body)},
			Message:       resolveMessage(body, ""),
			Body:          body,
		}
	}

	if items, ok := body.([]any); ok && len(items) > 0 && isValidationCode(errorCode(items[0])) {
		fields := make([]string, 0, len(items))
		for _, item := range items {
			fields = append(fields, param(item))
		}
		return &paykiterrors.ValidationError{
			StatusCode:    status,
			InvalidFields: fields,
			Message:       resolveMessage(items[0], ""),
			Body:          body,
		}
	}

	switch {
	case status >= 500:
		return &paykiterrors.APIError{
			StatusCode: status,
			Category:   paykiterrors.CategoryServer,
			Message:    resolveMessage(body, DefaultServerMessage),
			Body:       body,
		}
	case status >= 400:
		return &paykiterrors.APIError{
			StatusCode: status,
			Category:   paykiterrors.CategoryClient,
			Message:    resolveMessage(body, DefaultClientMessage),
			Body:       body,
		}
	}
	return nil
}

func isValidationCode(code string) bool {
	return strings.EqualFold(code, CodeMissing) || strings.EqualFold(code, CodeInvalid)
}

func errorCode(body any) string {
	return stringAt(body, "error_code")
}

func param(body any) string {
	return stringAt(body, "param")
}

// resolveMessage returns the first non-empty message field of body, or def.
func resolveMessage(body any, def string) string {
	for _, key := range messageKeys {
		if msg := stringAt(body, key); msg != "" {
			return msg
		}
	}
	return def
}

func stringAt(body any, key string) string {
	v, ok := jsonvalue.Lookup(body, key)
	if !ok || v == nil {
		return ""
	}
	s, _ := hydrate.CoerceScalar(v, hydrate.ScalarString)
	return s.(string)
}
