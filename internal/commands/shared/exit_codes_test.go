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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paykiterrors "github.com/tombee/paykit/pkg/errors"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"plain", errors.New("boom"), ExitFailure, ErrorCodeInternal},
		{"usage", NewUsageError("bad flag", nil), ExitUsage, ErrorCodeUsage},
		{"auth", &paykiterrors.AuthenticationError{StatusCode: 401, Message: "nope"}, ExitAuth, ErrorCodeAuthentication},
		{"validation", &paykiterrors.ValidationError{StatusCode: 400, InvalidFields: []string{"amount"}}, ExitValidation, ErrorCodeValidation},
		{"client", &paykiterrors.APIError{StatusCode: 404, Category: "client", Message: "Client error"}, ExitAPI, ErrorCodeClientError},
		{"server", &paykiterrors.APIError{StatusCode: 502, Category: "server", Message: "Server error"}, ExitAPI, ErrorCodeServerError},
		{"connection", &paykiterrors.ConnectionError{Method: "GET", URL: "https://x", Cause: errors.New("refused")}, ExitConnection, ErrorCodeConnection},
		{"timeout", &paykiterrors.ConnectionError{Method: "GET", URL: "https://x", Timeout: true, Cause: errors.New("deadline")}, ExitConnection, ErrorCodeTimeout},
		{"config", &paykiterrors.ConfigError{Key: "api_key", Reason: "missing"}, ExitConfig, ErrorCodeConfig},
		{"wrapped", fmt.Errorf("get checkout: %w", &paykiterrors.AuthenticationError{StatusCode: 401}), ExitAuth, ErrorCodeAuthentication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
			if tt.err != nil {
				assert.Equal(t, tt.code, ErrorCode(tt.err))
				assert.Equal(t, tt.want, errorCodeInfo(t, tt.code).ExitCode)
			}
		})
	}
}

func errorCodeInfo(t *testing.T, code string) ErrorCodeInfo {
	t.Helper()
	for _, info := range ErrorCodes {
		if info.Code == code {
			return info
		}
	}
	t.Fatalf("error code %s is not documented", code)
	return ErrorCodeInfo{}
}

func TestExitCodes_Table(t *testing.T) {
	require.Len(t, ExitCodes, ExitConnection+1)
	for i, info := range ExitCodes {
		assert.Equal(t, i, info.Code)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
	}

	errs := map[string]error{
		"ConfigError":         &paykiterrors.ConfigError{Key: "api_key"},
		"AuthenticationError": &paykiterrors.AuthenticationError{StatusCode: 401},
		"ValidationError":     &paykiterrors.ValidationError{StatusCode: 400},
		"APIError":            &paykiterrors.APIError{StatusCode: 500, Category: "server"},
		"ConnectionError":     &paykiterrors.ConnectionError{Method: "GET", URL: "https://x"},
	}
	for _, info := range ExitCodes {
		for _, name := range info.Errors {
			err, ok := errs[name]
			require.True(t, ok, name)
			assert.Equal(t, info.Code, ExitCodeFor(err), name)
		}
	}
}

func TestReport_Text(t *testing.T) {
	var buf bytes.Buffer
	err := &paykiterrors.ValidationError{StatusCode: 400, InvalidFields: []string{"amount", "currency"}}

	code := Report(&buf, "checkouts create", err, false)

	assert.Equal(t, ExitValidation, code)
	assert.Contains(t, buf.String(), "Error: validation failed [HTTP 400] on amount, currency")
	assert.Contains(t, buf.String(), "Invalid fields: amount, currency")
}

func TestReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := &paykiterrors.APIError{StatusCode: 503, Category: "server", Message: "Server error"}

	code := Report(&buf, "checkouts get", err, true)
	assert.Equal(t, ExitAPI, code)

	var resp struct {
		Command string      `json:"command"`
		Success bool        `json:"success"`
		Errors  []JSONError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "checkouts get", resp.Command)
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, ErrorCodeServerError, resp.Errors[0].Code)
	assert.Equal(t, 503, resp.Errors[0].Status)
}
