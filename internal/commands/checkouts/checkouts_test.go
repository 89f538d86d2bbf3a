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

package checkouts

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/paykit/internal/commands/commandtest"
	"github.com/tombee/paykit/internal/commands/shared"
)

const checkoutBody = `{
	"id": "chk_1",
	"checkout_reference": "order-42",
	"amount": 10.5,
	"currency": "EUR",
	"merchant_code": "MC1",
	"status": "PENDING",
	"date": "2025-01-02T03:04:05Z",
	"transactions": [
		{"transaction_code": "TX1", "status": "SUCCESSFUL", "amount": 10.5, "currency": "EUR"}
	]
}`

func TestCreate(t *testing.T) {
	commandtest.Isolate(t)
	srv := commandtest.NewServer(t, http.StatusCreated, checkoutBody)

	out, err := commandtest.Run(t, NewCommand(), srv.URL,
		"checkouts", "create", "--merchant", "MC1", "--amount", "10.50", "--currency", "eur", "--reference", "order-42")
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/v0.1/checkouts", reqs[0].Path)
	assert.Equal(t, "Bearer "+commandtest.TestAPIKey, reqs[0].Header.Get("Authorization"))

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(reqs[0].Body), &body))
	assert.Equal(t, "MC1", body["merchant_code"])
	assert.Equal(t, "EUR", body["currency"])
	assert.Equal(t, "order-42", body["checkout_reference"])
	assert.InDelta(t, 10.5, body["amount"], 0.0001)

	assert.Contains(t, out, "chk_1")
	assert.Contains(t, out, "PENDING")
	assert.Contains(t, out, "TX1")
}

func TestCreate_GeneratesReference(t *testing.T) {
	commandtest.Isolate(t)
	t.Setenv("PAYKIT_MERCHANT_CODE", "MC_ENV")
	srv := commandtest.NewServer(t, http.StatusCreated, checkoutBody)

	_, err := commandtest.Run(t, NewCommand(), srv.URL,
		"checkouts", "create", "--amount", "1", "--currency", "EUR", "--valid-for", "10m")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(srv.Requests()[0].Body), &body))
	assert.Equal(t, "MC_ENV", body["merchant_code"])
	assert.NotEmpty(t, body["checkout_reference"])
	assert.NotEmpty(t, body["valid_until"])
}

func TestCreate_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing merchant", []string{"checkouts", "create", "--amount", "1", "--currency", "EUR"}},
		{"non-positive amount", []string{"checkouts", "create", "--merchant", "MC1", "--amount", "-1", "--currency", "EUR"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commandtest.Isolate(t)
			srv := commandtest.NewServer(t, http.StatusCreated, checkoutBody)

			_, err := commandtest.Run(t, NewCommand(), srv.URL, tt.args...)
			require.Error(t, err)
			assert.Equal(t, shared.ExitUsage, shared.ExitCodeFor(err))
			assert.Empty(t, srv.Requests())
		})
	}
}

func TestCreate_RequiredFlags(t *testing.T) {
	commandtest.Isolate(t)

	_, err := commandtest.Run(t, NewCommand(), "", "checkouts", "create", "--merchant", "MC1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestCreate_ValidationError(t *testing.T) {
	commandtest.Isolate(t)
	srv := commandtest.NewServer(t, http.StatusBadRequest,
		`[{"error_code":"INVALID","param":"currency","message":"bad currency"}]`)

	_, err := commandtest.Run(t, NewCommand(), srv.URL,
		"checkouts", "create", "--merchant", "MC1", "--amount", "1", "--currency", "XXX")
	require.Error(t, err)
	assert.Equal(t, shared.ExitValidation, shared.ExitCodeFor(err))
}

func TestGet_JSON(t *testing.T) {
	commandtest.Isolate(t)
	srv := commandtest.NewServer(t, http.StatusOK, checkoutBody)

	out, err := commandtest.Run(t, NewCommand(), srv.URL, "checkouts", "get", "chk_1", "--json")
	require.NoError(t, err)
	assert.Equal(t, "/v0.1/checkouts/chk_1", srv.Requests()[0].Path)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "chk_1", got["id"])
	assert.Equal(t, "PENDING", got["status"])
}

func TestGet_NotAuthorized(t *testing.T) {
	commandtest.Isolate(t)
	srv := commandtest.NewServer(t, http.StatusUnauthorized,
		`{"error_code":"NOT_AUTHORIZED","error_message":"invalid token"}`)

	_, err := commandtest.Run(t, NewCommand(), srv.URL, "checkouts", "get", "chk_1")
	require.Error(t, err)
	assert.Equal(t, shared.ExitAuth, shared.ExitCodeFor(err))
}

func TestList_JQ(t *testing.T) {
	commandtest.Isolate(t)
	srv := commandtest.NewServer(t, http.StatusOK, `[`+checkoutBody+`,{"id":"chk_2","status":"PAID"}]`)

	out, err := commandtest.Run(t, NewCommand(), srv.URL,
		"checkouts", "list", "--reference", "order-42", "--jq", ".[].id")
	require.NoError(t, err)
	assert.Equal(t, "chk_1\nchk_2\n", out)
	assert.Equal(t, "checkout_reference=order-42", srv.Requests()[0].Query)
}

func TestList_Table(t *testing.T) {
	commandtest.Isolate(t)
	srv := commandtest.NewServer(t, http.StatusOK, `[]`)

	out, err := commandtest.Run(t, NewCommand(), srv.URL, "checkouts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No checkouts found.")
}

func TestDeactivate(t *testing.T) {
	commandtest.Isolate(t)
	srv := commandtest.NewServer(t, http.StatusOK, `{"id":"chk_1","status":"EXPIRED"}`)

	out, err := commandtest.Run(t, NewCommand(), srv.URL, "checkouts", "deactivate", "chk_1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, srv.Requests()[0].Method)
	assert.Contains(t, out, "EXPIRED")
}
