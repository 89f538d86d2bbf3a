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

// Package payouts lists the settlements paid out to a merchant.
package payouts

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

const dateLayout = "2006-01-02"

// Service calls the payouts endpoints.
type Service struct {
	caller call.Caller
}

// NewService creates a Service.
func NewService(caller call.Caller) *Service {
	return &Service{caller: caller}
}

// ListParams bounds the payouts returned. StartDate and EndDate are
// required and compared by calendar day.
type ListParams struct {
	StartDate time.Time
	EndDate   time.Time
	Limit     int
	Order     string
}

// List lists the payouts of a merchant between two dates.
func (s *Service) List(ctx context.Context, merchantCode string, params ListParams, opts ...httpclient.RequestOption) ([]*FinancialPayout, error) {
	path, err := call.Path("/v1.0/merchants/%s/payouts", call.P("merchant_code", merchantCode))
	if err != nil {
		return nil, err
	}
	var missing []string
	if params.StartDate.IsZero() {
		missing = append(missing, "start_date")
	}
	if params.EndDate.IsZero() {
		missing = append(missing, "end_date")
	}
	if len(missing) > 0 {
		return nil, &paykiterrors.ValidationError{InvalidFields: missing, Message: "date range is required"}
	}

	query := url.Values{}
	query.Set("start_date", params.StartDate.Format(dateLayout))
	query.Set("end_date", params.EndDate.Format(dateLayout))
	query.Set("format", "json")
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Order != "" {
		query.Set("order", params.Order)
	}

	req := &transport.Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   query,
		Options: httpclient.BuildRequestOptions(opts...),
	}
	return call.ExpectList[*FinancialPayout](s.caller.Call(ctx, req, response.Descriptors{
		"200": response.Array(response.Class(PayoutType)),
	}))
}
