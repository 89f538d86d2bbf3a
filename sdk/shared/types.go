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

// Package shared holds the types used across resource packages.
package shared

import (
	"errors"

	paykiterrors "github.com/tombee/paykit/pkg/errors"
	"github.com/tombee/paykit/pkg/hydrate"
)

// Type identifiers.
const (
	CurrencyType = "shared.Currency"
	AddressType  = "shared.Address"
	ErrorType    = "shared.Error"
)

// Currency is an ISO 4217 currency code.
type Currency string

const (
	CurrencyBGN Currency = "BGN"
	CurrencyBRL Currency = "BRL"
	CurrencyCHF Currency = "CHF"
	CurrencyCLP Currency = "CLP"
	CurrencyCZK Currency = "CZK"
	CurrencyDKK Currency = "DKK"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyHRK Currency = "HRK"
	CurrencyHUF Currency = "HUF"
	CurrencyNOK Currency = "NOK"
	CurrencyPLN Currency = "PLN"
	CurrencyRON Currency = "RON"
	CurrencySEK Currency = "SEK"
	CurrencyUSD Currency = "USD"
)

// Address is a postal address.
type Address struct {
	Line1      *string `json:"line_1,omitempty"`
	Line2      *string `json:"line_2,omitempty"`
	City       *string `json:"city,omitempty"`
	Country    *string `json:"country,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Region     *string `json:"region_name,omitempty"`
	State      *string `json:"state,omitempty"`
}

// Error is one entry of an API error body.
type Error struct {
	Message   *string `json:"message,omitempty"`
	ErrorCode *string `json:"error_code,omitempty"`
	Param     *string `json:"param,omitempty"`
	Instance  *string `json:"instance,omitempty"`
}

var types = []*hydrate.TargetType{
	hydrate.NewEnum(CurrencyType,
		CurrencyBGN, CurrencyBRL, CurrencyCHF, CurrencyCLP, CurrencyCZK,
		CurrencyDKK, CurrencyEUR, CurrencyGBP, CurrencyHRK, CurrencyHUF,
		CurrencyNOK, CurrencyPLN, CurrencyRON, CurrencySEK, CurrencyUSD,
	),
	hydrate.NewObject[Address](AddressType,
		hydrate.StringField("line_1", func(a *Address, v string) { a.Line1 = &v }),
		hydrate.StringField("line_2", func(a *Address, v string) { a.Line2 = &v }),
		hydrate.StringField("city", func(a *Address, v string) { a.City = &v }),
		hydrate.StringField("country", func(a *Address, v string) { a.Country = &v }),
		hydrate.StringField("postal_code", func(a *Address, v string) { a.PostalCode = &v }),
		hydrate.StringField("region_name", func(a *Address, v string) { a.Region = &v }),
		hydrate.StringField("state", func(a *Address, v string) { a.State = &v }),
	),
	hydrate.NewObject[Error](ErrorType,
		hydrate.StringField("message", func(e *Error, v string) { e.Message = &v }),
		hydrate.StringField("error_code", func(e *Error, v string) { e.ErrorCode = &v }),
		hydrate.StringField("param", func(e *Error, v string) { e.Param = &v }),
		hydrate.StringField("instance", func(e *Error, v string) { e.Instance = &v }),
	),
}

// Types returns the shared type descriptors.
func Types() []*hydrate.TargetType {
	return append([]*hydrate.TargetType(nil), types...)
}

// ErrorDetails hydrates the body carried by an API error into Error
// entries. Bodies that are neither an object nor a list of objects yield
// nil.
func ErrorDetails(h *hydrate.Hydrator, err error) []*Error {
	body, ok := errorBody(err)
	if !ok || body == nil {
		return nil
	}
	if items, ok := body.([]any); ok {
		out := make([]*Error, 0, len(items))
		for _, item := range items {
			if e, ok := h.Hydrate(item, ErrorType).(*Error); ok {
				out = append(out, e)
			}
		}
		return out
	}
	if e, ok := h.Hydrate(body, ErrorType).(*Error); ok {
		return []*Error{e}
	}
	return nil
}

func errorBody(err error) (any, bool) {
	var apiErr *paykiterrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Body, true
	}
	var valErr *paykiterrors.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Body, true
	}
	var authErr *paykiterrors.AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.Body, true
	}
	return nil, false
}
