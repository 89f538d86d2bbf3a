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
	"encoding/json"
	"io"

	paykiterrors "github.com/tombee/paykit/pkg/errors"
)

// JSONResponse is the base envelope for JSON error output
type JSONResponse struct {
	Version string `json:"@version"`
	Command string `json:"command"`
	Success bool   `json:"success"`
}

// JSONError represents a structured error with code, message and suggestion
type JSONError struct {
	Code          string   `json:"code"`
	Message       string   `json:"message"`
	Status        int      `json:"status,omitempty"`
	InvalidFields []string `json:"invalid_fields,omitempty"`
	Suggestion    string   `json:"suggestion,omitempty"`
}

// NewJSONError describes err for JSON output.
func NewJSONError(err error) JSONError {
	return JSONError{
		Code:          ErrorCode(err),
		Message:       err.Error(),
		Status:        paykiterrors.StatusCode(err),
		InvalidFields: paykiterrors.InvalidFields(err),
		Suggestion:    suggestion(err),
	}
}

// EmitJSON writes v to w as indented JSON.
func EmitJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// EmitJSONError writes a JSON error envelope to w.
func EmitJSONError(w io.Writer, command string, errors []JSONError) error {
	type errorResponse struct {
		JSONResponse
		Errors []JSONError `json:"errors"`
	}

	return EmitJSON(w, errorResponse{
		JSONResponse: JSONResponse{
			Version: "1.0",
			Command: command,
			Success: false,
		},
		Errors: errors,
	})
}
