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

package customers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/call/calltest"
	paykiterrors "github.com/tombee/paykit/pkg/errors"
	"github.com/tombee/paykit/sdk/customers"
	"github.com/tombee/paykit/sdk/shared"
)

func newService(tr *calltest.Transport) *customers.Service {
	return customers.NewService(call.NewPipeline(tr, calltest.Decoder(shared.Types(), customers.Types())))
}

const customerJSON = `{
	"customer_id": "cus_1",
	"personal_details": {
		"first_name": "Ada",
		"last_name": "Lovelace",
		"email": "ada@example.com",
		"birth_date": "1815-12-10",
		"address": {"line_1": "12 St James's Square", "city": "London", "country": "GB"}
	}
}`

func TestCreate(t *testing.T) {
	tr := calltest.Reply(201, customerJSON)
	got, err := newService(tr).Create(context.Background(), customers.CreateRequest{
		CustomerID:      "cus_1",
		PersonalDetails: &customers.PersonalDetailsInput{FirstName: "Ada"},
	})
	require.NoError(t, err)

	assert.Equal(t, "cus_1", got.CustomerID)
	require.NotNil(t, got.PersonalDetails)
	assert.Equal(t, "Lovelace", *got.PersonalDetails.LastName)
	require.NotNil(t, got.PersonalDetails.BirthDate)
	assert.Equal(t, 1815, got.PersonalDetails.BirthDate.Year())
	require.NotNil(t, got.PersonalDetails.Address)
	assert.Equal(t, "London", *got.PersonalDetails.Address.City)
	assert.Equal(t, http.MethodPost, tr.Last().Method)
	assert.Equal(t, "/v0.1/customers", tr.Last().Path)
}

func TestGetAndUpdate(t *testing.T) {
	tr := calltest.Reply(200, customerJSON)
	svc := newService(tr)

	got, err := svc.Get(context.Background(), "cus_1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", *got.PersonalDetails.Email)
	assert.Equal(t, "/v0.1/customers/cus_1", tr.Last().Path)

	_, err = svc.Update(context.Background(), "cus_1", customers.UpdateRequest{
		PersonalDetails: &customers.PersonalDetailsInput{Phone: "+44 20"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, tr.Last().Method)
	assert.Len(t, tr.Requests(), 2)
}

func TestCustomerIDRequired(t *testing.T) {
	tr := calltest.Reply(200, customerJSON)
	_, err := newService(tr).Get(context.Background(), "")
	assert.Equal(t, []string{"customer_id"}, paykiterrors.InvalidFields(err))
}

func TestListPaymentInstruments(t *testing.T) {
	tr := calltest.Reply(200, `[
		{"token":"tok_1","active":true,"type":"card","card":{"last_4_digits":"0042","type":"VISA"},"created_at":"2024-01-02T03:04:05Z"},
		{"token":"tok_2","active":null}
	]`)
	got, err := newService(tr).ListPaymentInstruments(context.Background(), "cus_1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Active)
	assert.Equal(t, "0042", *got[0].Card.Last4Digits)
	assert.False(t, got[1].Active)
	assert.Nil(t, got[1].Card)
	assert.Equal(t, "/v0.1/customers/cus_1/payment-instruments", tr.Last().Path)
}

func TestDeactivatePaymentInstrument(t *testing.T) {
	tr := calltest.Reply(204, ``)
	err := newService(tr).DeactivatePaymentInstrument(context.Background(), "cus_1", "tok_1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, tr.Last().Method)
	assert.Equal(t, "/v0.1/customers/cus_1/payment-instruments/tok_1", tr.Last().Path)
}

func TestDeactivatePaymentInstrument_Unauthorized(t *testing.T) {
	tr := calltest.Reply(401, `{"error_code":"NOT_AUTHORIZED","error_message":"invalid access token"}`)
	err := newService(tr).DeactivatePaymentInstrument(context.Background(), "cus_1", "tok_1")

	var authErr *paykiterrors.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid access token", authErr.Message)
}
