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

// Package merchants reads merchant accounts and the persons attached to them.
package merchants

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/transport"
	"github.com/tombee/paykit/pkg/httpclient"
	"github.com/tombee/paykit/pkg/response"
)

// Service calls the merchants endpoints.
type Service struct {
	caller call.Caller
}

// NewService creates a Service.
func NewService(caller call.Caller) *Service {
	return &Service{caller: caller}
}

// GetParams selects the version of the data to read. An empty Version
// reads the latest, which may include changes still in review.
type GetParams struct {
	Version string
}

func (p GetParams) query() url.Values {
	query := url.Values{}
	if p.Version != "" {
		query.Set("version", p.Version)
	}
	return query
}

// Get retrieves a merchant.
func (s *Service) Get(ctx context.Context, merchantCode string, params GetParams, opts ...httpclient.RequestOption) (*Merchant, error) {
	path, err := call.Path("/v1/merchants/%s", call.P("merchant_code", merchantCode))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   params.query(),
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*Merchant](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(MerchantType),
	}))
}

// ListPersons lists the persons related to a merchant.
func (s *Service) ListPersons(ctx context.Context, merchantCode string, params GetParams, opts ...httpclient.RequestOption) (*PersonList, error) {
	path, err := call.Path("/v1/merchants/%s/persons", call.P("merchant_code", merchantCode))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   params.query(),
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*PersonList](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(PersonListType),
	}))
}

// GetPerson retrieves one person related to a merchant.
func (s *Service) GetPerson(ctx context.Context, merchantCode, personID string, params GetParams, opts ...httpclient.RequestOption) (*Person, error) {
	path, err := call.Path("/v1/merchants/%s/persons/%s",
		call.P("merchant_code", merchantCode), call.P("person_id", personID))
	if err != nil {
		return nil, err
	}
	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   params.query(),
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.Expect[*Person](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Class(PersonType),
	}))
}
