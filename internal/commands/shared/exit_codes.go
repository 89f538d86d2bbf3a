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
	"fmt"
	"io"
	"os"
	"strings"

	paykiterrors "github.com/tombee/paykit/pkg/errors"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsage      = 2
	ExitConfig     = 3
	ExitAuth       = 4
	ExitValidation = 5
	ExitAPI        = 6
	ExitConnection = 7
)

// ExitCodeInfo documents one exit code and the errors that produce it.
type ExitCodeInfo struct {
	Code        int      `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Errors      []string `json:"errors,omitempty"`
}

// ExitCodes lists every exit code in ascending order. ExitCodeFor must
// agree with the Errors column.
var ExitCodes = []ExitCodeInfo{
	{Code: ExitSuccess, Name: "success", Description: "Command completed"},
	{Code: ExitFailure, Name: "failure", Description: "Unclassified error"},
	{Code: ExitUsage, Name: "usage", Description: "Invalid arguments or flags"},
	{Code: ExitConfig, Name: "config", Description: "Missing credentials or invalid configuration", Errors: []string{"ConfigError"}},
	{Code: ExitAuth, Name: "auth", Description: "Credentials rejected by the API", Errors: []string{"AuthenticationError"}},
	{Code: ExitValidation, Name: "validation", Description: "Request parameters rejected by the API", Errors: []string{"ValidationError"}},
	{Code: ExitAPI, Name: "api", Description: "Other 4xx or 5xx response", Errors: []string{"APIError"}},
	{Code: ExitConnection, Name: "connection", Description: "No response from the API", Errors: []string{"ConnectionError"}},
}

// ExitError is an error that carries an exit code
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates an error for invalid arguments or flags
func NewUsageError(msg string, cause error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: msg, Cause: cause}
}

// ExitCodeFor maps an error to the process exit code. An ExitError keeps
// its own code; typed SDK errors map to their category.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var (
		authErr   *paykiterrors.AuthenticationError
		valErr    *paykiterrors.ValidationError
		apiErr    *paykiterrors.APIError
		connErr   *paykiterrors.ConnectionError
		configErr *paykiterrors.ConfigError
	)
	switch {
	case errors.As(err, &authErr):
		return ExitAuth
	case errors.As(err, &valErr):
		return ExitValidation
	case errors.As(err, &apiErr):
		return ExitAPI
	case errors.As(err, &connErr):
		return ExitConnection
	case errors.As(err, &configErr):
		return ExitConfig
	default:
		return ExitFailure
	}
}

// Report writes err to w, as a JSON envelope when asJSON is set, and
// returns the exit code.
func Report(w io.Writer, command string, err error, asJSON bool) int {
	code := ExitCodeFor(err)
	if err == nil {
		return code
	}

	if asJSON {
		_ = EmitJSONError(w, command, []JSONError{NewJSONError(err)})
		return code
	}

	fmt.Fprintln(w, RenderError("Error: "+err.Error()))
	if fields := paykiterrors.InvalidFields(err); len(fields) > 0 {
		fmt.Fprintf(w, "Invalid fields: %s\n", strings.Join(fields, ", "))
	}
	if s := suggestion(err); s != "" {
		fmt.Fprintf(w, "\nSuggestion: %s\n", s)
	}
	return code
}

// HandleExitError reports err on stderr and exits with the matching code.
func HandleExitError(command string, err error) {
	if err == nil {
		return
	}
	os.Exit(Report(os.Stderr, command, err, GetJSON()))
}

// suggestion walks the error chain for a UserVisibleError.
func suggestion(err error) string {
	var userErr paykiterrors.UserVisibleError
	if errors.As(err, &userErr) && userErr.IsUserVisible() {
		return userErr.Suggestion()
	}
	return ""
}
