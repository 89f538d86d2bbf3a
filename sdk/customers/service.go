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

// Package customers manages saved customers and their payment instruments.
package customers

import (
	"context"
	"net/http"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/transport"
	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/pkg/response"
)

// Service calls the customers endpoints.
type Service struct {
	caller call.Caller
}

// NewService creates a Service.
func NewService(caller call.Caller) *Service {
	return &Service{caller: caller}
}

// AddressInput is the address sent with personal details.
type AddressInput struct {
	Line1      string `json:"line_1,omitempty"`
	Line2      string `json:"line_2,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	State      string `json:"state,omitempty"`
}

// PersonalDetailsInput is the personal details sent with Create and Update.
type PersonalDetailsInput struct {
	FirstName string        `json:"first_name,omitempty"`
	LastName  string        `json:"last_name,omitempty"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	BirthDate string        `json:"birth_date,omitempty"`
	TaxID     string        `json:"tax_id,omitempty"`
	Address   *AddressInput `json:"address,omitempty"`
}

// CreateRequest is the body of Create.
type CreateRequest struct {
	CustomerID      string                `json:"customer_id"`
	PersonalDetails *PersonalDetailsInput `json:"personal_details,omitempty"`
}

// UpdateRequest is the body of Update.
type UpdateRequest struct {
	PersonalDetails *PersonalDetailsInput `json:"personal_details,omitempty"`
}

// Create saves a customer.
func (s *Service) Create(ctx context.Context, body CreateRequest, opts ...httpclient.RequestOption) (*Customer, error) {
	req := &transport.Request{
		Method:  http.MethodPost,
		Path:    "/v0.1/customers",
		Body:    body,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*Customer](s.caller.Call(ctx, req, response.Descriptors{
		"201": response.Class(CustomerType),
	}))
}

// Get retrieves a customer.
func (s *Service) Get(ctx context.Context, customerID string, opts ...httpclient.RequestOption) (*Customer, error) {
	path, err := call.Path("/v0.1/customers/%s", call.P("customer_id", customerID))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    path,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*Customer](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(CustomerType),
	}))
}

// Update replaces the personal details of a customer.
func (s *Service) Update(ctx context.Context, customerID string, body UpdateRequest, opts ...httpclient.RequestOption) (*Customer, error) {
	path, err := call.Path("/v0.1/customers/%s", call.P("customer_id", customerID))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{
		Method:  http.MethodPut,
		Path:    path,
		Body:    body,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*Customer](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(CustomerType),
	}))
}

// ListPaymentInstruments lists the active payment instruments of a customer.
func (s *Service) ListPaymentInstruments(ctx context.Context, customerID string, opts ...httpclient.RequestOption) ([]*PaymentInstrument, error) {
	path, err := call.Path("/v0.1/customers/%s/payment-instruments", call.P("customer_id", customerID))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    path,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.ExpectList[*PaymentInstrument](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Array(response.Class(PaymentInstrumentType)),
	}))
}

// DeactivatePaymentInstrument deactivates a saved payment instrument.
func (s *Service) DeactivatePaymentInstrument(ctx context.Context, customerID, token string, opts ...httpclient.RequestOption) error {
	path, err := call.Path("/v0.1/customers/%s/payment-instruments/%s",
		call.P("customer_id", customerID), call.P("token", token))
	if err != nil {
		return err
	}
	req := &transport.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.ExpectVoid(s.caller.Call(ctx, req, response.Descriptors{
		"204": response.Void(),
	}))
}
