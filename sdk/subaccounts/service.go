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

// Package subaccounts manages operator sub-accounts of the authenticated
// merchant.
package subaccounts

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/transport"
	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/pkg/response"
)

const basePath = "/v0.1/me/accounts"

// Service calls the sub-account endpoints.
type Service struct {
	caller call.Caller
}

// NewService creates a Service.
func NewService(caller call.Caller) *Service {
	return &Service{caller: caller}
}

// ListParams filters List.
type ListParams struct {
	Query          string
	IncludePrimary bool
}

// PermissionsInput sets operator permissions. Nil fields are left
// unchanged on update.
type PermissionsInput struct {
	CreateMOTOPayments         *bool `json:"create_moto_payments,omitempty"`
	CreateReferral             *bool `json:"create_referral,omitempty"`
	FullTransactionHistoryView *bool `json:"full_transaction_history_view,omitempty"`
	RefundTransactions         *bool `json:"refund_transactions,omitempty"`
	Admin                      *bool `json:"admin,omitempty"`
}

// CreateRequest is the body of Create.
type CreateRequest struct {
	Username    string            `json:"username"`
	Password    string            `json:"password"`
	Nickname    string            `json:"nickname,omitempty"`
	Permissions *PermissionsInput `json:"permissions,omitempty"`
}

// UpdateRequest is the body of Update.
type UpdateRequest struct {
	Password    string            `json:"password,omitempty"`
	Username    string            `json:"username,omitempty"`
	Nickname    string            `json:"nickname,omitempty"`
	Disabled    *bool             `json:"disabled,omitempty"`
	Permissions *PermissionsInput `json:"permissions,omitempty"`
}

// List lists the operators of the merchant.
func (s *Service) List(ctx context.Context, params ListParams, opts ...httpclient.RequestOption) ([]*Operator, error) {
	query := url.Values{}
	if params.Query != "" {
		query.Set("query", params.Query)
	}
	if params.IncludePrimary {
		query.Set("include_primary", "true")
	}
	req := &transport.Request{Method: http.MethodGet, Path: basePath, Query: query, Options: httpclient.BuildRequestOptions(opts...)}
	return call.ExpectList[*Operator](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Array(response.Class(OperatorType)),
	}))
}

// Create creates an operator.
func (s *Service) Create(ctx context.Context, body CreateRequest, opts ...httpclient.RequestOption) (*Operator, error) {
	req := &transport.Request{Method: http.MethodPost, Path: basePath, Body: body, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Operator](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(OperatorType),
	}))
}

// Get retrieves an operator.
func (s *Service) Get(ctx context.Context, operatorID int64, opts ...httpclient.RequestOption) (*Operator, error) {
	path, err := operatorPath(operatorID)
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodGet, Path: path, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Operator](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(OperatorType),
	}))
}

// Update changes an operator.
func (s *Service) Update(ctx context.Context, operatorID int64, body UpdateRequest, opts ...httpclient.RequestOption) (*Operator, error) {
	path, err := operatorPath(operatorID)
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodPut, Path: path, Body: body, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Operator](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(OperatorType),
	}))
}

// Deactivate disables an operator and returns its final state.
func (s *Service) Deactivate(ctx context.Context, operatorID int64, opts ...httpclient.RequestOption) (*Operator, error) {
	path, err := operatorPath(operatorID)
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodDelete, Path: path, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Operator](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(OperatorType),
	}))
}

func operatorPath(operatorID int64) (string, error) {
	id := ""
	if operatorID > 0 {
		id = strconv.FormatInt(operatorID, 10)
	}
	return call.Path(basePath+"/%s", call.P("operator_id", id))
}
