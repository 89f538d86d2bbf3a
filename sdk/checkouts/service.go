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

// Package checkouts creates and processes online payment checkouts.
package checkouts

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/transport"
	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/pkg/response"
	"github.com/tombee/paykit/sdk/shared"
)

// Service calls the checkouts endpoints.
type Service struct {
	caller call.Caller
}

// NewService creates a Service.
func NewService(caller call.Caller) *Service {
	return &Service{caller: caller}
}

// CreateRequest is the body of Create.
type CreateRequest struct {
	CheckoutReference string          `json:"checkout_reference"`
	Amount            float64         `json:"amount"`
	Currency          shared.Currency `json:"currency"`
	MerchantCode      string          `json:"merchant_code"`
	Description       string          `json:"description,omitempty"`
	ReturnURL         string          `json:"return_url,omitempty"`
	RedirectURL       string          `json:"redirect_url,omitempty"`
	CustomerID        string          `json:"customer_id,omitempty"`
	Purpose           string          `json:"purpose,omitempty"`
	ValidUntil        *time.Time      `json:"valid_until,omitempty"`
}

// ListParams filters List.
type ListParams struct {
	CheckoutReference string
}

// Card is a payment card submitted with Process.
type Card struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
	ZipCode     string `json:"zip_code,omitempty"`
}

// ProcessRequest is the body of Process.
type ProcessRequest struct {
	PaymentType  string `json:"payment_type"`
	Installments int    `json:"installments,omitempty"`
	Card         *Card  `json:"card,omitempty"`
	Token        string `json:"token,omitempty"`
	CustomerID   string `json:"customer_id,omitempty"`
}

// ProcessResult holds the outcome of Process. Exactly one field is set:
// Checkout when the payment completed, Accepted when the payer must take a
// further step.
type ProcessResult struct {
	Checkout *Checkout         `json:"checkout,omitempty"`
	Accepted *CheckoutAccepted `json:"accepted,omitempty"`
}

// PaymentMethodsParams filters ListAvailablePaymentMethods.
type PaymentMethodsParams struct {
	Amount   float64
	Currency shared.Currency
}

// Create creates a checkout.
func (s *Service) Create(ctx context.Context, body CreateRequest, opts ...httpclient.RequestOption) (*Checkout, error) {
	req := &transport.Request{
		Method:  http.MethodPost,
		Path:    "/v0.1/checkouts",
		Body:    body,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*Checkout](s.caller.Call(ctx, req, response.Descriptors{
		"201": response.Class(CheckoutType),
	}))
}

// Get retrieves a checkout.
func (s *Service) Get(ctx context.Context, id string, opts ...httpclient.RequestOption) (*Checkout, error) {
	path, err := call.Path("/v0.1/checkouts/%s", call.P("id", id))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    path,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*Checkout](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(CheckoutType),
	}))
}

// List lists checkouts, optionally filtered by reference.
func (s *Service) List(ctx context.Context, params ListParams, opts ...httpclient.RequestOption) ([]*Checkout, error) {
	query := url.Values{}
	if params.CheckoutReference != "" {
		query.Set("checkout_reference", params.CheckoutReference)
	}
	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    "/v0.1/checkouts",
		Query:   query,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.ExpectList[*Checkout](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Array(response.Class(CheckoutType)),
	}))
}

// Deactivate expires a pending checkout and returns its final state.
func (s *Service) Deactivate(ctx context.Context, id string, opts ...httpclient.RequestOption) (*Checkout, error) {
	path, err := call.Path("/v0.1/checkouts/%s", call.P("id", id))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*Checkout](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(CheckoutType),
	}))
}

// Process attempts the payment of a checkout.
func (s *Service) Process(ctx context.Context, id string, body ProcessRequest, opts ...httpclient.RequestOption) (*ProcessResult, error) {
	path, err := call.Path("/v0.1/checkouts/%s", call.P("id", id))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{
		Method:  http.MethodPut,
		Path:    path,
		Body:    body,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	v, err := s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(CheckoutType),
		"202": response.Class(CheckoutAcceptedType),
	})
	if err != nil {
		return nil, err
	}
	switch r := v.(type) {
	case *Checkout:
		return &ProcessResult{Checkout: r}, nil
	case *CheckoutAccepted:
		return &ProcessResult{Accepted: r}, nil
	default:
		_, err := call.Expect[*Checkout](v, nil)
		return nil, err
	}
}

// ListAvailablePaymentMethods lists the payment methods a merchant can
// accept, optionally narrowed to an amount and currency.
func (s *Service) ListAvailablePaymentMethods(ctx context.Context, merchantCode string, params PaymentMethodsParams, opts ...httpclient.RequestOption) (*AvailablePaymentMethods, error) {
	path, err := call.Path("/v0.1/merchants/%s/payment-methods", call.P("merchant_code", merchantCode))
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	if params.Amount > 0 {
		query.Set("amount", strconv.FormatFloat(params.Amount, 'f', -1, 64))
	}
	if params.Currency != "" {
		query.Set("currency", string(params.Currency))
	}
	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   query,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*AvailablePaymentMethods](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(PaymentMethodsType),
	}))
}
