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

// UserVisibleError defines errors that should be displayed to end users
// with user-friendly messages and actionable suggestions.
//
// The CLI uses this interface to print a short message and a hint instead of
// the full error chain.
type UserVisibleError interface {
	error

	// IsUserVisible returns true if this error should be shown to users.
	IsUserVisible() bool

	// UserMessage returns a user-friendly error message.
	UserMessage() string

	// Suggestion returns actionable guidance for resolving the error.
	// Returns empty string if no suggestion is available.
	Suggestion() string
}

// ErrorClassifier defines methods for programmatic error handling.
// Every error type in this package implements it so callers can branch on
// the category without type switches.
type ErrorClassifier interface {
	error

	// ErrorType returns a string identifying the error category.
	// Examples: "authentication", "validation", "server_error", "connection"
	ErrorType() string

	// IsRetryable returns true if the operation should be retried.
	IsRetryable() bool
}

var (
	_ ErrorClassifier = (*APIError)(nil)
	_ ErrorClassifier = (*AuthenticationError)(nil)
	_ ErrorClassifier = (*ValidationError)(nil)
	_ ErrorClassifier = (*ConnectionError)(nil)
	_ ErrorClassifier = (*ConfigError)(nil)
	_ ErrorClassifier = (*UnexpectedResponseError)(nil)

	_ UserVisibleError = (*APIError)(nil)
	_ UserVisibleError = (*AuthenticationError)(nil)
	_ UserVisibleError = (*ValidationError)(nil)
)
