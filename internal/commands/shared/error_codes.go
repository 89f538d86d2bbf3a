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

package shared

import (
	"errors"

	paykiterrors "github.com/tombee/paykit/pkg/errors"
)

// Error codes for structured JSON output
const (
	// API errors (E100-E199)
	ErrorCodeAuthentication = "E101" // Credentials rejected
	ErrorCodeValidation     = "E102" // Request parameters rejected
	ErrorCodeClientError    = "E103" // Other 4xx response
	ErrorCodeServerError    = "E104" // 5xx response
	ErrorCodeUnexpected     = "E105" // Response did not match the operation

	// Transport errors (E200-E299)
	ErrorCodeConnection = "E201" // No response obtained
	ErrorCodeTimeout    = "E202" // Request timed out

	// Local errors (E300-E399)
	ErrorCodeConfig   = "E301" // Invalid or missing configuration
	ErrorCodeUsage    = "E302" // Invalid arguments
	ErrorCodeInternal = "E399" // Anything else
)

// ErrorCodeInfo documents one JSON error code.
type ErrorCodeInfo struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	ExitCode    int    `json:"exit_code"`
}

// ErrorCodes lists every JSON error code with the exit code it pairs with.
var ErrorCodes = []ErrorCodeInfo{
	{Code: ErrorCodeAuthentication, Description: "Credentials rejected", ExitCode: ExitAuth},
	{Code: ErrorCodeValidation, Description: "Request parameters rejected", ExitCode: ExitValidation},
	{Code: ErrorCodeClientError, Description: "Other 4xx response", ExitCode: ExitAPI},
	{Code: ErrorCodeServerError, Description: "5xx response", ExitCode: ExitAPI},
	{Code: ErrorCodeUnexpected, Description: "Response did not match the operation", ExitCode: ExitFailure},
	{Code: ErrorCodeConnection, Description: "No response obtained", ExitCode: ExitConnection},
	{Code: ErrorCodeTimeout, Description: "Request timed out", ExitCode: ExitConnection},
	{Code: ErrorCodeConfig, Description: "Invalid or missing configuration", ExitCode: ExitConfig},
	{Code: ErrorCodeUsage, Description: "Invalid arguments", ExitCode: ExitUsage},
	{Code: ErrorCodeInternal, Description: "Anything else", ExitCode: ExitFailure},
}

// ErrorCode maps an error to its JSON error code.
func ErrorCode(err error) string {
	var (
		authErr   *paykiterrors.AuthenticationError
		valErr    *paykiterrors.ValidationError
		apiErr    *paykiterrors.APIError
		connErr   *paykiterrors.ConnectionError
		configErr *paykiterrors.ConfigError
		unexpErr  *paykiterrors.UnexpectedResponseError
	)
	switch {
	case errors.As(err, &authErr):
		return ErrorCodeAuthentication
	case errors.As(err, &valErr):
		return ErrorCodeValidation
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= 500 {
			return ErrorCodeServerError
		}
		return ErrorCodeClientError
	case errors.As(err, &connErr):
		if connErr.Timeout {
			return ErrorCodeTimeout
		}
		return ErrorCodeConnection
	case errors.As(err, &configErr):
		return ErrorCodeConfig
	case errors.As(err, &unexpErr):
		return ErrorCodeUnexpected
	case ExitCodeFor(err) == ExitUsage:
		return ErrorCodeUsage
	default:
		return ErrorCodeInternal
	}
}
