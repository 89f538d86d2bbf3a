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

package payouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/call/calltest"
	paykiterrors "github.com/tombee/paykit/pkg/errors"
	"github.com/tombee/paykit/sdk/payouts"
	"github.com/tombee/paykit/sdk/shared"
)

func newService(tr *calltest.Transport) *payouts.Service {
	return payouts.NewService(call.NewPipeline(tr, calltest.Decoder(shared.Types(), payouts.Types())))
}

func TestList(t *testing.T) {
	tr := calltest.Reply(200, `[
		{"id": 1, "amount": 120.5, "currency": "GBP", "date": "2024-03-04", "fee": 2.1, "status": "SUCCESSFUL", "type": "PAYOUT", "reference": "P-1"},
		{"id": "2", "amount": -4, "currency": "GBP", "date": "2024-03-05", "status": "FAILED", "type": "REFUND_DEDUCTION", "transaction_code": "TX2"}
	]`)

	got, err := newService(tr).List(context.Background(), "MC1", payouts.ListParams{
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Limit:     10,
		Order:     "desc",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1), *got[0].ID)
	assert.Equal(t, shared.CurrencyGBP, *got[0].Currency)
	assert.Equal(t, time.March, got[0].Date.Month())
	assert.Equal(t, payouts.KindPayout, *got[0].Type)

	assert.Equal(t, int64(2), *got[1].ID)
	assert.Equal(t, -4.0, *got[1].Amount)
	assert.Equal(t, payouts.StatusFailed, *got[1].Status)
	assert.Equal(t, payouts.KindRefundDeduction, *got[1].Type)

	query := tr.Last().Query
	assert.Equal(t, "/v1.0/merchants/MC1/payouts", tr.Last().Path)
	assert.Equal(t, "2024-03-01", query.Get("start_date"))
	assert.Equal(t, "2024-03-31", query.Get("end_date"))
	assert.Equal(t, "json", query.Get("format"))
	assert.Equal(t, "10", query.Get("limit"))
}

func TestList_RequiresDates(t *testing.T) {
	tr := calltest.Reply(200, `[]`)
	_, err := newService(tr).List(context.Background(), "MC1", payouts.ListParams{})
	assert.Equal(t, []string{"start_date", "end_date"}, paykiterrors.InvalidFields(err))
	assert.Empty(t, tr.Requests())
}

func TestList_Empty(t *testing.T) {
	tr := calltest.Reply(200, `[]`)
	got, err := newService(tr).List(context.Background(), "MC1", payouts.ListParams{
		StartDate: time.Now(),
		EndDate:   time.Now(),
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}
