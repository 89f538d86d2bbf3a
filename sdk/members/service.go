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

// Package members manages the users with access to a merchant account.
package members

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

// Service calls the members endpoints.
type Service struct {
	caller call.Caller
}

// NewService creates a Service.
func NewService(caller call.Caller) *Service {
	return &Service{caller: caller}
}

// ListParams filters and pages List.
type ListParams struct {
	Offset int
	Limit  int
	Email  string
	Status Status
	Roles  []string
}

// CreateRequest invites a user or creates a managed user.
type CreateRequest struct {
	Email         string         `json:"email"`
	Roles         []string       `json:"roles"`
	Nickname      string         `json:"nickname,omitempty"`
	IsManagedUser bool           `json:"is_managed_user,omitempty"`
	Password      string         `json:"password,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	Attributes    map[string]any `json:"attributes,omitempty"`
}

// UserUpdate changes a managed user.
type UserUpdate struct {
	Nickname string `json:"nickname,omitempty"`
	Password string `json:"password,omitempty"`
}

// UpdateRequest is the body of Update.
type UpdateRequest struct {
	Roles      []string       `json:"roles,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	User       *UserUpdate    `json:"user,omitempty"`
}

// List lists the members of a merchant.
func (s *Service) List(ctx context.Context, merchantCode string, params ListParams, opts ...httpclient.RequestOption) (*MemberList, error) {
	path, err := call.Path("/v0.1/merchants/%s/members", call.P("merchant_code", merchantCode))
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Email != "" {
		query.Set("email", params.Email)
	}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	for _, r := range params.Roles {
		query.Add("roles", r)
	}
	req := &transport.Request{Method: http.MethodGet, Path: path, Query: query, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*MemberList](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(MemberListType),
	}))
}

// Create adds a member to a merchant.
func (s *Service) Create(ctx context.Context, merchantCode string, body CreateRequest, opts ...httpclient.RequestOption) (*Member, error) {
	path, err := call.Path("/v0.1/merchants/%s/members", call.P("merchant_code", merchantCode))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodPost, Path: path, Body: body, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Member](s.caller.Call(ctx, req, response.Descriptors{
		"201": response.Class(MemberType),
	}))
}

// Get retrieves a member.
func (s *Service) Get(ctx context.Context, merchantCode, memberID string, opts ...httpclient.RequestOption) (*Member, error) {
	path, err := memberPath(merchantCode, memberID)
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodGet, Path: path, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Member](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(MemberType),
	}))
}

// Update changes the roles or data of a member.
func (s *Service) Update(ctx context.Context, merchantCode, memberID string, body UpdateRequest, opts ...httpclient.RequestOption) (*Member, error) {
	path, err := memberPath(merchantCode, memberID)
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodPut, Path: path, Body: body, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Member](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(MemberType),
	}))
}

// Delete removes a member from a merchant.
func (s *Service) Delete(ctx context.Context, merchantCode, memberID string, opts ...httpclient.RequestOption) error {
	path, err := memberPath(merchantCode, memberID)
	if err != nil {
		return err
	}
	req := &transport.Request{Method: http.MethodDelete, Path: path, Options: httpclient.BuildRequestOptions(opts...)}
	return call.ExpectVoid(s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Void(),
	}))
}

func memberPath(merchantCode, memberID string) (string, error) {
	return call.Path("/v0.1/merchants/%s/members/%s", call.P("merchant_code", merchantCode), call.P("member_id", memberID))
}
