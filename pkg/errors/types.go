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

package errors

import (
	"fmt"
	"strings"
)

// APIError is the catch-all for 4xx and 5xx responses that no more specific
// error shape matched. It carries the status code and the decoded body.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Category is "server" for 5xx and "client" for 4xx responses
	Category string

	// Message is resolved from the body, falling back to a default per category
	Message string

	// Body is the decoded response body as returned by the transport
	Body any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s error [HTTP %d]: %s", e.Category, e.StatusCode, e.Message)
}

// ErrorType implements ErrorClassifier.
func (e *APIError) ErrorType() string {
	return e.Category + "_error"
}

// IsRetryable implements ErrorClassifier. Server errors are worth retrying,
// client errors are not.
func (e *APIError) IsRetryable() bool {
	return e.Category == CategoryServer
}

// IsUserVisible implements UserVisibleError.
func (e *APIError) IsUserVisible() bool { return true }

// UserMessage implements UserVisibleError.
func (e *APIError) UserMessage() string { return e.Message }

// Suggestion implements UserVisibleError.
func (e *APIError) Suggestion() string {
	if e.Category == CategoryServer {
		return "The API reported a server error, try again later"
	}
	return ""
}

// Error categories used by APIError.
const (
	CategoryServer = "server"
	CategoryClient = "client"
)

// AuthenticationError is returned when the API rejects the credentials.
type AuthenticationError struct {
	StatusCode int
	Message    string
	Body       any
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed [HTTP %d]: %s", e.StatusCode, e.Message)
}

// ErrorType implements ErrorClassifier.
func (e *AuthenticationError) ErrorType() string { return "authentication" }

// IsRetryable implements ErrorClassifier.
func (e *AuthenticationError) IsRetryable() bool { return false }

// IsUserVisible implements UserVisibleError.
func (e *AuthenticationError) IsUserVisible() bool { return true }

// UserMessage implements UserVisibleError.
func (e *AuthenticationError) UserMessage() string { return e.Message }

// Suggestion implements UserVisibleError.
func (e *AuthenticationError) Suggestion() string {
	return "Check the API key or access token, or run 'paykit auth login'"
}

// ValidationError is returned when the API reports one or more missing or
// invalid request parameters.
type ValidationError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// InvalidFields lists the offending parameter names in the order the API reported them
	InvalidFields []string

	// Message is the first message found in the error body, if any
	Message string

	// Body is the decoded response body
	Body any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := "validation failed"
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s [HTTP %d]", msg, e.StatusCode)
	}
	if len(e.InvalidFields) > 0 {
		msg = fmt.Sprintf("%s on %s", msg, strings.Join(e.InvalidFields, ", "))
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	return msg
}

// ErrorType implements ErrorClassifier.
func (e *ValidationError) ErrorType() string { return "validation" }

// IsRetryable implements ErrorClassifier.
func (e *ValidationError) IsRetryable() bool { return false }

// IsUserVisible implements UserVisibleError.
func (e *ValidationError) IsUserVisible() bool { return true }

// UserMessage implements UserVisibleError.
func (e *ValidationError) UserMessage() string { return e.Error() }

// Suggestion implements UserVisibleError.
func (e *ValidationError) Suggestion() string {
	if len(e.InvalidFields) == 0 {
		return ""
	}
	return fmt.Sprintf("Check the values of: %s", strings.Join(e.InvalidFields, ", "))
}

// ConnectionError represents a transport failure where no HTTP response was
// obtained (DNS, connect, TLS, timeout, cancelled context).
type ConnectionError struct {
	// Method and URL identify the request; URL has secrets redacted
	Method string
	URL    string

	// Timeout is true when the failure was a deadline or timeout
	Timeout bool

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	kind := "connection failed"
	if e.Timeout {
		kind = "connection timed out"
	}
	if e.URL != "" {
		return fmt.Sprintf("%s: %s %s: %v", kind, e.Method, e.URL, e.Cause)
	}
	return fmt.Sprintf("%s: %v", kind, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// ErrorType implements ErrorClassifier.
func (e *ConnectionError) ErrorType() string {
	if e.Timeout {
		return "timeout"
	}
	return "connection"
}

// IsRetryable implements ErrorClassifier.
func (e *ConnectionError) IsRetryable() bool { return true }

// ConfigError represents configuration problems.
// Use this for missing credentials, unreadable certificate bundles or invalid config values.
type ConfigError struct {
	// Key is the configuration key that has the problem (e.g., "api_key", "ca_bundle")
	Key string

	// Reason explains what's wrong with the configuration
	Reason string

	// Cause is the underlying error (e.g., file read error, parse error)
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := "config error"
	if e.Key != "" {
		msg = fmt.Sprintf("config error at %s", e.Key)
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// ErrorType implements ErrorClassifier.
func (e *ConfigError) ErrorType() string { return "config" }

// IsRetryable implements ErrorClassifier.
func (e *ConfigError) IsRetryable() bool { return false }

// UnexpectedResponseError is returned by service methods when a successful
// response decoded into something other than the documented result type.
type UnexpectedResponseError struct {
	// Want names the expected result type
	Want string

	// Got is the decoded value
	Got any
}

// Error implements the error interface.
func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response: want %s, got %T", e.Want, e.Got)
}

// ErrorType implements ErrorClassifier.
func (e *UnexpectedResponseError) ErrorType() string { return "unexpected_response" }

// IsRetryable implements ErrorClassifier.
func (e *UnexpectedResponseError) IsRetryable() bool { return false }
