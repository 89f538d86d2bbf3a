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

// Package roles manages the custom roles of a merchant.
package roles

import (
	"context"
	"net/http"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/transport"
	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/pkg/response"
)

// Service calls the roles endpoints.
type Service struct {
	caller call.Caller
}

// NewService creates a Service.
func NewService(caller call.Caller) *Service {
	return &Service{caller: caller}
}

// CreateRequest is the body of Create.
type CreateRequest struct {
	Name        string         `json:"name"`
	Permissions []string       `json:"permissions"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// UpdateRequest is the body of Update. Unset fields are left unchanged.
type UpdateRequest struct {
	Name        string   `json:"name,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Description string   `json:"description,omitempty"`
}

// List lists the roles of a merchant.
func (s *Service) List(ctx context.Context, merchantCode string, opts ...httpclient.RequestOption) (*RoleList, error) {
	path, err := call.Path("/v0.1/merchants/%s/roles", call.P("merchant_code", merchantCode))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodGet, Path: path, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*RoleList](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(RoleListType),
	}))
}

// Create creates a custom role.
func (s *Service) Create(ctx context.Context, merchantCode string, body CreateRequest, opts ...httpclient.RequestOption) (*Role, error) {
	path, err := call.Path("/v0.1/merchants/%s/roles", call.P("merchant_code", merchantCode))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodPost, Path: path, Body: body, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Role](s.caller.Call(ctx, req, response.Descriptors{
		"201": response.Class(RoleType),
	}))
}

// Get retrieves a role.
func (s *Service) Get(ctx context.Context, merchantCode, roleID string, opts ...httpclient.RequestOption) (*Role, error) {
	path, err := rolePath(merchantCode, roleID)
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodGet, Path: path, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Role](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(RoleType),
	}))
}

// Update changes a custom role.
func (s *Service) Update(ctx context.Context, merchantCode, roleID string, body UpdateRequest, opts ...httpclient.RequestOption) (*Role, error) {
	path, err := rolePath(merchantCode, roleID)
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Method: http.MethodPatch, Path: path, Body: body, Options: httpclient.BuildRequestOptions(opts...)}
	return call.Expect[*Role](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(RoleType),
	}))
}

// Delete deletes a custom role.
func (s *Service) Delete(ctx context.Context, merchantCode, roleID string, opts ...httpclient.RequestOption) error {
	path, err := rolePath(merchantCode, roleID)
	if err != nil {
		return err
	}
	req := &transport.Request{Method: http.MethodDelete, Path: path, Options: httpclient.BuildRequestOptions(opts...)}
	return call.ExpectVoid(s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Void(),
	}))
}

func rolePath(merchantCode, roleID string) (string, error) {
	return call.Path("/v0.1/merchants/%s/roles/%s", call.P("merchant_code", merchantCode), call.P("role_id", roleID))
}
