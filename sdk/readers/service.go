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

// Package readers pairs card readers and drives in-person checkouts on them.
package readers

import (
	"context"
	"net/http"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/transport"
	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/pkg/response"
	"github.com/tombee/paykit/sdk/shared"
)

// Service calls the readers endpoints.
type Service struct {
	caller call.Caller
}

// NewService creates a Service.
func NewService(caller call.Caller) *Service {
	return &Service{caller: caller}
}

// CreateRequest pairs a reader using the code shown on its screen.
type CreateRequest struct {
	PairingCode string         `json:"pairing_code"`
	Name        string         `json:"name"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// UpdateRequest renames a reader or replaces its metadata.
type UpdateRequest struct {
	Name     string         `json:"name,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Money is an amount in minor units.
type Money struct {
	Value     int64           `json:"value"`
	Currency  shared.Currency `json:"currency"`
	MinorUnit int             `json:"minor_unit"`
}

// CheckoutRequest starts a payment on a reader.
type CheckoutRequest struct {
	TotalAmount  Money     `json:"total_amount"`
	Description  string    `json:"description,omitempty"`
	ReturnURL    string    `json:"return_url,omitempty"`
	CardType     string    `json:"card_type,omitempty"`
	Installments int       `json:"installments,omitempty"`
	TipRates     []float64 `json:"tip_rates,omitempty"`
}

func readersPath(merchantCode string) (string, error) {
	return call.Path("/v0.1/merchants/%s/readers", call.P("merchant_code", merchantCode))
}

func readerPath(merchantCode, readerID, suffix string) (string, error) {
	return call.Path("/v0.1/merchants/%s/readers/%s"+suffix,
		call.P("merchant_code", merchantCode), call.P("reader_id", readerID))
}

// List lists the readers of a merchant.
func (s *Service) List(ctx context.Context, merchantCode string, opts ...httpclient.RequestOption) (*ReaderList, error) {
	path, err := readersPath(merchantCode)
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodGet, Path: path, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*ReaderList](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(ReaderListType),
	}))
}

// Create pairs a reader with a merchant.
func (s *Service) Create(ctx context.Context, merchantCode string, body CreateRequest, opts ...httpclient.RequestOption) (*Reader, error) {
	path, err := readersPath(merchantCode)
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodPost, Path: path, Body: body, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Reader](s.caller.Call(ctx, req, response.Descriptors{
		"201": response.Class(ReaderType),
	}))
}

// Get retrieves a reader.
func (s *Service) Get(ctx context.Context, merchantCode, readerID string, opts ...httpclient.RequestOption) (*Reader, error) {
	path, err := readerPath(merchantCode, readerID, "")
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodGet, Path: path, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Reader](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(ReaderType),
	}))
}

// Update changes the name or metadata of a reader.
func (s *Service) Update(ctx context.Context, merchantCode, readerID string, body UpdateRequest, opts ...httpclient.RequestOption) (*Reader, error) {
	path, err := readerPath(merchantCode, readerID, "")
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodPatch, Path: path, Body: body, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Reader](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(ReaderType),
	}))
}

// Delete unpairs a reader.
func (s *Service) Delete(ctx context.Context, merchantCode, readerID string, opts ...httpclient.RequestOption) error {
	path, err := readerPath(merchantCode, readerID, "")
	if err != nil {
		return err
	}
	req := &transport.Request{Method: http.MethodDelete, Path: path, Options: httpclient.BuildRequestOptions(opts...)}
	return call.ExpectVoid(s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Void(),
	}))
}

// CreateCheckout starts a payment on a reader.
func (s *Service) CreateCheckout(ctx context.Context, merchantCode, readerID string, body CheckoutRequest, opts ...httpclient.RequestOption) (*CheckoutResponse, error) {
	path, err := readerPath(merchantCode, readerID, "/checkout")
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodPost, Path: path, Body: body, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*CheckoutResponse](s.caller.Call(ctx, req, response.Descriptors{
		"201": response.Class(CheckoutResponseType),
	}))
}

// TerminateCheckout cancels the payment in progress on a reader. The
// request is accepted asynchronously.
func (s *Service) TerminateCheckout(ctx context.Context, merchantCode, readerID string, opts ...httpclient.RequestOption) error {
	path, err := readerPath(merchantCode, readerID, "/terminate")
	if err != nil {
		return err
	}
	req := &transport.Request{Method: http.MethodPost, Path: path, Options: httpclient.BuildRequestOptions(opts...)}
	return call.ExpectVoid(s.caller.Call(ctx, req, response.Descriptors{
		"202": response.Void(),
	}))
}
