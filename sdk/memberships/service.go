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

// Package memberships lists the resources the authenticated user belongs to.
package memberships

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/transport"
	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/pkg/response"
	"github.com/tombee/paykit/sdk/members"
)

// Service calls the memberships endpoints.
type Service struct {
	caller call.Caller
}

// NewService creates a Service.
func NewService(caller call.Caller) *Service {
	return &Service{caller: caller}
}

// ListParams filters and pages List.
type ListParams struct {
	Offset       int
	Limit        int
	Kind         string
	Status       members.Status
	ResourceType string
	ResourceName string
}

// List lists the memberships of the authenticated user.
func (s *Service) List(ctx context.Context, params ListParams, opts ...httpclient.RequestOption) (*MembershipList, error) {
	query := url.Values{}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Kind != "" {
		query.Set("kind", params.Kind)
	}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	if params.ResourceType != "" {
		query.Set("resource.type", params.ResourceType)
	}
	if params.ResourceName != "" {
		query.Set("resource.name", params.ResourceName)
	}
	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    "/v0.1/memberships",
		Query:   query,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*MembershipList](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(MembershipListType),
	}))
}
