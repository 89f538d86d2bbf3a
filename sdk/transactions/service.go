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

// Package transactions reads the transaction history of a merchant and
// refunds payments.
package transactions

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/transport"
	paykiterrors "github.com/tombee/paykit/pkg/errors"
	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/pkg/response"
)

// Service calls the transactions endpoints.
type Service struct {
	caller call.Caller
}

// NewService creates a Service.
func NewService(caller call.Caller) *Service {
	return &Service{caller: caller}
}

// GetParams identifies a transaction. Set exactly one field.
type GetParams struct {
	ID                   string
	TransactionCode      string
	InternalID           string
	ForeignTransactionID string
}

// ListParams filters and pages the transaction history.
type ListParams struct {
	TransactionCode string
	Order           string
	Limit           int
	Users           []string
	Statuses        []Status
	PaymentTypes    []string
	ChangesSince    time.Time
	NewestTime      time.Time
	OldestTime      time.Time
	NewestRef       string
	OldestRef       string
}

func (p ListParams) query() url.Values {
	query := url.Values{}
	setIf := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}
	setTime := func(key string, t time.Time) {
		if !t.IsZero() {
			query.Set(key, t.UTC().Format(time.RFC3339))
		}
	}
	setIf("transaction_code", p.TransactionCode)
	setIf("order", p.Order)
	if p.Limit > 0 {
		query.Set("limit", strconv.Itoa(p.Limit))
	}
	for _, u := range p.Users {
		query.Add("users", u)
	}
	for _, s := range p.Statuses {
		query.Add("statuses[]", string(s))
	}
	for _, pt := range p.PaymentTypes {
		query.Add("payment_types[]", pt)
	}
	setTime("changes_since", p.ChangesSince)
	setTime("newest_time", p.NewestTime)
	setTime("oldest_time", p.OldestTime)
	setIf("newest_ref", p.NewestRef)
	setIf("oldest_ref", p.OldestRef)
	return query
}

// RefundRequest is the body of Refund. A zero Amount refunds the full
// transaction.
type RefundRequest struct {
	Amount float64 `json:"amount,omitempty"`
}

// Get retrieves one transaction of a merchant.
func (s *Service) Get(ctx context.Context, merchantCode string, params GetParams, opts ...httpclient.RequestOption) (*Transaction, error) {
	path, err := call.Path("/v2.1/merchants/%s/transactions", call.P("merchant_code", merchantCode))
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	for key, value := range map[string]string{
		"id":                     params.ID,
		"transaction_code":       params.TransactionCode,
		"internal_id":            params.InternalID,
		"foreign_transaction_id": params.ForeignTransactionID,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}
	if len(query) == 0 {
		return nil, &paykiterrors.ValidationError{
			InvalidFields: []string{"id"},
			Message:       "one of id, transaction_code, internal_id or foreign_transaction_id is required",
		}
	}
	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   query,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*Transaction](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(TransactionType),
	}))
}

// List returns one page of the transaction history of a merchant.
func (s *Service) List(ctx context.Context, merchantCode string, params ListParams, opts ...httpclient.RequestOption) (*History, error) {
	path, err := call.Path("/v2.1/merchants/%s/transactions/history", call.P("merchant_code", merchantCode))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   params.query(),
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*History](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(HistoryType),
	}))
}

// Refund refunds a transaction in full or in part.
func (s *Service) Refund(ctx context.Context, transactionID string, body RefundRequest, opts ...httpclient.RequestOption) error {
	path, err := call.Path("/v0.1/me/refund/%s", call.P("txn_id", transactionID))
	if err != nil {
		return err
	}
	req := &transport.Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    body,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.ExpectVoid(s.caller.Call(ctx, req, response.Descriptors{
		"204": response.Void(),
	}))
}
