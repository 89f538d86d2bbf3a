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
	"errors"
	"fmt"
)

// Wrap creates a new error that wraps the given error with additional context.
// If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf creates a new error that wraps the given error with formatted context.
// If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// StatusCode returns the HTTP status code carried by an API-level error in
// err's chain, or 0 when the chain holds no response-derived error.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.StatusCode
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.StatusCode
	}
	return 0
}

// InvalidFields returns the parameter names of a ValidationError in err's
// chain, or nil.
func InvalidFields(err error) []string {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.InvalidFields
	}
	return nil
}

// IsRetryable reports whether err's chain holds a classified error that is
// safe to retry.
func IsRetryable(err error) bool {
	var classified ErrorClassifier
	if errors.As(err, &classified) {
		return classified.IsRetryable()
	}
	return false
}
