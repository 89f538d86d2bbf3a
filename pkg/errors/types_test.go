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

package errors_test

import (
	"errors"
	"fmt"
	"testing"

	paykiterrors "github.com/tombee/paykit/pkg/errors"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *paykiterrors.APIError
		wantMsg string
		wantTyp string
		retry   bool
	}{
		{
			name:    "server error",
			err:     &paykiterrors.APIError{StatusCode: 503, Category: paykiterrors.CategoryServer, Message: "Server error"},
			wantMsg: "server error [HTTP 503]: Server error",
			wantTyp: "server_error",
			retry:   true,
		},
		{
			name:    "client error",
			err:     &paykiterrors.APIError{StatusCode: 404, Category: paykiterrors.CategoryClient, Message: "Resource not found"},
			wantMsg: "client error [HTTP 404]: Resource not found",
			wantTyp: "client_error",
			retry:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("APIError.Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.ErrorType(); got != tt.wantTyp {
				t.Errorf("APIError.ErrorType() = %q, want %q", got, tt.wantTyp)
			}
			if got := tt.err.IsRetryable(); got != tt.retry {
				t.Errorf("APIError.IsRetryable() = %v, want %v", got, tt.retry)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *paykiterrors.ValidationError
		wantMsg string
	}{
		{
			name:    "single field",
			err:     &paykiterrors.ValidationError{StatusCode: 400, InvalidFields: []string{"amount"}},
			wantMsg: "validation failed [HTTP 400] on amount",
		},
		{
			name: "multiple fields with message",
			err: &paykiterrors.ValidationError{
				StatusCode:    400,
				InvalidFields: []string{"amount", "currency"},
				Message:       "Validation error",
			},
			wantMsg: "validation failed [HTTP 400] on amount, currency: Validation error",
		},
		{
			name:    "no fields",
			err:     &paykiterrors.ValidationError{StatusCode: 422},
			wantMsg: "validation failed [HTTP 422]",
		},
		{
			name:    "client side",
			err:     &paykiterrors.ValidationError{InvalidFields: []string{"id"}, Message: "required"},
			wantMsg: "validation failed on id: required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestAuthenticationError_Error(t *testing.T) {
	err := &paykiterrors.AuthenticationError{StatusCode: 401, Message: "Unauthorized"}

	if got, want := err.Error(), "authentication failed [HTTP 401]: Unauthorized"; got != want {
		t.Errorf("AuthenticationError.Error() = %q, want %q", got, want)
	}
	if err.IsRetryable() {
		t.Error("authentication errors must not be retryable")
	}
	if err.Suggestion() == "" {
		t.Error("expected a suggestion for authentication errors")
	}
}

func TestConnectionError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &paykiterrors.ConnectionError{Method: "GET", URL: "https://api.example.com/v0.1/me", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("ConnectionError should unwrap to its cause")
	}
	if got, want := err.Error(), "connection failed: GET https://api.example.com/v0.1/me: dial tcp: connection refused"; got != want {
		t.Errorf("ConnectionError.Error() = %q, want %q", got, want)
	}
	if err.ErrorType() != "connection" {
		t.Errorf("ErrorType() = %q, want connection", err.ErrorType())
	}

	timeout := &paykiterrors.ConnectionError{Timeout: true, Cause: cause}
	if timeout.ErrorType() != "timeout" {
		t.Errorf("ErrorType() = %q, want timeout", timeout.ErrorType())
	}
}

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *paykiterrors.ConfigError
		wantMsg string
	}{
		{
			name:    "with key",
			err:     &paykiterrors.ConfigError{Key: "api_key", Reason: "no credentials configured"},
			wantMsg: "config error at api_key: no credentials configured",
		},
		{
			name:    "with cause",
			err:     &paykiterrors.ConfigError{Key: "ca_bundle", Reason: "unreadable", Cause: fmt.Errorf("permission denied")},
			wantMsg: "config error at ca_bundle: unreadable: permission denied",
		},
		{
			name:    "without key",
			err:     &paykiterrors.ConfigError{Reason: "bad"},
			wantMsg: "config error: bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("ConfigError.Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestUnexpectedResponseError_Error(t *testing.T) {
	err := &paykiterrors.UnexpectedResponseError{Want: "*checkouts.Checkout", Got: "plain text"}
	if got, want := err.Error(), "unexpected response: want *checkouts.Checkout, got string"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
