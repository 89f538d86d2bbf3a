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

package payouts

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/paykit/internal/commands/commandtest"
	"github.com/tombee/paykit/internal/commands/shared"
)

func TestList(t *testing.T) {
	commandtest.Isolate(t)
	srv := commandtest.NewServer(t, http.StatusOK, `[
		{"id": 1, "amount": 100.5, "currency": "EUR", "date": "2025-01-10", "fee": 1.5,
		 "status": "SUCCESSFUL", "type": "PAYOUT", "reference": "ref-1"}
	]`)

	out, err := commandtest.Run(t, NewCommand(), srv.URL,
		"payouts", "list", "-m", "MC1", "--from", "2025-01-01", "--to", "2025-01-31", "--limit", "3")
	require.NoError(t, err)

	req := srv.Requests()[0]
	assert.Equal(t, "/v1.0/merchants/MC1/payouts", req.Path)
	query, err := url.ParseQuery(req.Query)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", query.Get("start_date"))
	assert.Equal(t, "2025-01-31", query.Get("end_date"))
	assert.Equal(t, "3", query.Get("limit"))

	assert.Contains(t, out, "ref-1")
	assert.Contains(t, out, "PAYOUT")
}

func TestList_Empty(t *testing.T) {
	commandtest.Isolate(t)
	srv := commandtest.NewServer(t, http.StatusOK, `[]`)

	out, err := commandtest.Run(t, NewCommand(), srv.URL, "payouts", "list", "-m", "MC1")
	require.NoError(t, err)
	assert.Contains(t, out, "No payouts in range.")
}

func TestListParams(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	p, err := listParams(now, "", "", 7)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), p.StartDate)
	assert.Equal(t, now, p.EndDate)

	p, err = listParams(now, "2025-06-01", "2025-06-10", 7)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), p.EndDate)

	for _, tc := range []struct{ from, to string }{
		{"2025-06-10", "2025-06-01"},
		{"June", ""},
		{"", "tomorrow"},
	} {
		_, err := listParams(now, tc.from, tc.to, 7)
		require.Error(t, err, "from=%q to=%q", tc.from, tc.to)
		assert.Equal(t, shared.ExitUsage, shared.ExitCodeFor(err))
	}

	_, err = listParams(now, "", "", 0)
	assert.Error(t, err)
}
