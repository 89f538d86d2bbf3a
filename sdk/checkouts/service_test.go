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

package checkouts_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/call/calltest"
	paykiterrors "github.com/tombee/paykit/pkg/errors"
	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/sdk/checkouts"
	"github.com/tombee/paykit/sdk/shared"
)

func newService(tr *calltest.Transport) *checkouts.Service {
	return checkouts.NewService(call.NewPipeline(tr, calltest.Decoder(shared.Types(), checkouts.Types())))
}

const checkoutJSON = `{
	"id": "chk_1",
	"checkout_reference": "order-42",
	"amount": 10.5,
	"currency": "EUR",
	"merchant_code": "MC1",
	"status": "PENDING",
	"date": "2024-03-01T10:00:00.000+0000",
	"transactions": [
		{"id": "tx_1", "amount": "10.50", "currency": "EUR", "status": "SUCCESSFUL", "installments_count": 1}
	]
}`

func TestCreate(t *testing.T) {
	tr := calltest.Reply(201, checkoutJSON)
	svc := newService(tr)

	got, err := svc.Create(context.Background(), checkouts.CreateRequest{
		CheckoutReference: "order-42",
		Amount:            10.5,
		Currency:          shared.CurrencyEUR,
		MerchantCode:      "MC1",
	}, httpclient.WithRetries(0))
	require.NoError(t, err)

	assert.Equal(t, "chk_1", *got.ID)
	assert.Equal(t, 10.5, *got.Amount)
	assert.Equal(t, shared.CurrencyEUR, *got.Currency)
	assert.Equal(t, checkouts.StatusPending, *got.Status)
	require.NotNil(t, got.Date)
	assert.Equal(t, 2024, got.Date.Year())
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, 10.5, *got.Transactions[0].Amount)
	assert.Equal(t, checkouts.TransactionSuccessful, *got.Transactions[0].Status)
	assert.Equal(t, int64(1), *got.Transactions[0].InstallmentsCount)

	req := tr.Last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v0.1/checkouts", req.Path)
	body, ok := req.Body.(checkouts.CreateRequest)
	require.True(t, ok)
	assert.Equal(t, "order-42", body.CheckoutReference)
	require.NotNil(t, req.Options.Retries)
	assert.Equal(t, 0, *req.Options.Retries)
}

func TestGet(t *testing.T) {
	tr := calltest.Reply(200, checkoutJSON)
	got, err := newService(tr).Get(context.Background(), "chk_1", httpclient.WithTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, "order-42", *got.CheckoutReference)
	assert.Equal(t, "/v0.1/checkouts/chk_1", tr.Last().Path)
	assert.Equal(t, time.Second, tr.Last().Options.Timeout)
}

func TestGet_EmptyID(t *testing.T) {
	tr := calltest.Reply(200, checkoutJSON)
	_, err := newService(tr).Get(context.Background(), "")

	var valErr *paykiterrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"id"}, valErr.InvalidFields)
	assert.Empty(t, tr.Requests())
}

func TestGet_NotFound(t *testing.T) {
	tr := calltest.Reply(404, `{"error_code":"NOT_FOUND","message":"Resource not found"}`)
	_, err := newService(tr).Get(context.Background(), "missing")

	var apiErr *paykiterrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, paykiterrors.CategoryClient, apiErr.Category)
	assert.Equal(t, "Resource not found", apiErr.Message)
}

func TestList(t *testing.T) {
	tr := calltest.Reply(200, `[`+checkoutJSON+`,{"id":"chk_2","status":"PAID"}]`)
	got, err := newService(tr).List(context.Background(), checkouts.ListParams{CheckoutReference: "order-42"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "chk_1", *got[0].ID)
	assert.Equal(t, checkouts.StatusPaid, *got[1].Status)
	assert.Equal(t, "order-42", tr.Last().Query.Get("checkout_reference"))
}

func TestDeactivate(t *testing.T) {
	tr := calltest.Reply(200, `{"id":"chk_1","status":"EXPIRED"}`)
	got, err := newService(tr).Deactivate(context.Background(), "chk_1")
	require.NoError(t, err)
	assert.Equal(t, checkouts.StatusExpired, *got.Status)
	assert.Equal(t, http.MethodDelete, tr.Last().Method)
}

func TestProcess(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		tr := calltest.Reply(200, checkoutJSON)
		got, err := newService(tr).Process(context.Background(), "chk_1", checkouts.ProcessRequest{
			PaymentType: "card",
			Card:        &checkouts.Card{Name: "A B", Number: "4200000000000042", ExpiryMonth: "12", ExpiryYear: "30", CVV: "123"},
		})
		require.NoError(t, err)
		require.NotNil(t, got.Checkout)
		assert.Nil(t, got.Accepted)
		assert.Equal(t, http.MethodPut, tr.Last().Method)
	})

	t.Run("accepted", func(t *testing.T) {
		tr := calltest.Reply(202, `{"next_step":{"url":"https://3ds.example.com","method":"POST","payload":{"PaReq":"x"}}}`)
		got, err := newService(tr).Process(context.Background(), "chk_1", checkouts.ProcessRequest{PaymentType: "card"})
		require.NoError(t, err)
		require.NotNil(t, got.Accepted)
		assert.Nil(t, got.Checkout)
		assert.NotNil(t, got.Accepted.NextStep)
	})

	t.Run("validation", func(t *testing.T) {
		tr := calltest.Reply(400, `[{"error_code":"INVALID","param":"card.number"},{"error_code":"MISSING","param":"card.cvv"}]`)
		_, err := newService(tr).Process(context.Background(), "chk_1", checkouts.ProcessRequest{PaymentType: "card"})
		assert.Equal(t, []string{"card.number", "card.cvv"}, paykiterrors.InvalidFields(err))
	})
}

func TestListAvailablePaymentMethods(t *testing.T) {
	tr := calltest.Reply(200, `{"available_payment_methods":[{"id":"card"},{"id":"apple_pay"}]}`)
	got, err := newService(tr).ListAvailablePaymentMethods(context.Background(), "MC1", checkouts.PaymentMethodsParams{
		Amount:   9.99,
		Currency: shared.CurrencyEUR,
	})
	require.NoError(t, err)
	require.Len(t, got.Methods, 2)
	assert.Equal(t, "apple_pay", got.Methods[1].ID)

	req := tr.Last()
	assert.Equal(t, "/v0.1/merchants/MC1/payment-methods", req.Path)
	assert.Equal(t, "9.99", req.Query.Get("amount"))
	assert.Equal(t, "EUR", req.Query.Get("currency"))
}
