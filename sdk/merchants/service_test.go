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

package merchants_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/call/calltest"
	"github.com/tombee/paykit/pkg/jsonvalue"
	"github.com/tombee/paykit/sdk/merchants"
	"github.com/tombee/paykit/sdk/shared"
)

func newService(tr *calltest.Transport) *merchants.Service {
	return merchants.NewService(call.NewPipeline(tr, calltest.Decoder(shared.Types(), merchants.Types())))
}

func TestGet(t *testing.T) {
	tr := calltest.Reply(200, `{
		"merchant_code": "MC1",
		"country": "DE",
		"default_currency": "EUR",
		"sandbox": "true",
		"company": {"name": "Acme GmbH", "address": {"city": "Berlin"}},
		"business_profile": {
			"name": "Acme Coffee",
			"branding": {"primary_color": "#ff0000"}
		},
		"meta": {"tier": "gold", "flags": [1, 2]},
		"change_status": "teleported"
	}`)
	got, err := newService(tr).Get(context.Background(), "MC1", merchants.GetParams{Version: "latest"})
	require.NoError(t, err)

	assert.Equal(t, "MC1", got.MerchantCode)
	assert.Equal(t, shared.CurrencyEUR, *got.DefaultCurrency)
	assert.True(t, got.Sandbox)
	assert.Equal(t, "Berlin", *got.Company.Address.City)
	require.NotNil(t, got.BusinessProfile)
	assert.Equal(t, "Acme Coffee", *got.BusinessProfile.Name)
	assert.Equal(t, "#ff0000", *got.BusinessProfile.Branding.PrimaryColor)
	assert.Nil(t, got.ChangeStatus, "unknown enum values are left unset")

	meta, ok := jsonvalue.AsObject(got.Meta)
	require.True(t, ok, "meta passes through as decoded")
	tier, _ := meta.Get("tier")
	assert.Equal(t, "gold", tier)

	assert.Equal(t, "/v1/merchants/MC1", tr.Last().Path)
	assert.Equal(t, "latest", tr.Last().Query.Get("version"))
}

func TestListPersons(t *testing.T) {
	tr := calltest.Reply(200, `{"items":[
		{"id":"per_1","given_name":"Grace","relationships":["owner","representative"],"ownership":{"share":"50"}},
		{"id":"per_2","change_status":"in_review"}
	]}`)
	got, err := newService(tr).ListPersons(context.Background(), "MC1", merchants.GetParams{})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	first := got.Items[0]
	assert.Equal(t, "per_1", first.ID)
	assert.Equal(t, []string{"owner", "representative"}, first.Relationships)
	assert.Equal(t, 50.0, *first.Ownership.Share)
	assert.Equal(t, merchants.ChangeInReview, *got.Items[1].ChangeStatus)

	assert.Equal(t, "/v1/merchants/MC1/persons", tr.Last().Path)
	assert.Empty(t, tr.Last().Query)
}

func TestGetPerson(t *testing.T) {
	tr := calltest.Reply(200, `{"id":"per 1","birthdate":"1906-12-09","family_name":"Hopper"}`)
	got, err := newService(tr).GetPerson(context.Background(), "MC1", "per 1", merchants.GetParams{})
	require.NoError(t, err)
	assert.Equal(t, "Hopper", *got.FamilyName)
	assert.Equal(t, 1906, got.Birthdate.Year())
	assert.Equal(t, "/v1/merchants/MC1/persons/per%201", tr.Last().Path)
}
