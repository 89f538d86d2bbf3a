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

package response_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paykiterrors "github.com/tombee/paykit/pkg/errors"
	"github.com/tombee/paykit/pkg/jsonvalue"
	"github.com/tombee/paykit/pkg/response"
)

func TestClassify_NotAuthorizedWinsOverStatus(t *testing.T) {
	err := response.Classify(&response.Response{
		StatusCode: 200,
		Body:       jsonvalue.ObjectOf("error_code", "NOT_AUTHORIZED", "message", "token expired"),
	})

	var authErr *paykiterrors.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 200, authErr.StatusCode)
	assert.Equal(t, "token expired", authErr.Message)
}

func TestClassify_NotAuthorizedDefaultMessage(t *testing.T) {
	err := response.Classify(&response.Response{
		StatusCode: 401,
		Body:       map[string]any{"error_code": "not_authorized"},
	})

	var authErr *paykiterrors.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, response.DefaultAuthMessage, authErr.Message)
}

func TestClassify_SingleValidationError(t *testing.T) {
	err := response.Classify(&response.Response{
		StatusCode: 400,
		Body:       jsonvalue.ObjectOf("error_code", "MISSING", "param", "amount", "message", "amount is required"),
	})

	var valErr *paykiterrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"amount"}, valErr.InvalidFields)
	assert.Equal(t, "amount is required", valErr.Message)
	assert.Equal(t, 400, valErr.StatusCode)
}

func TestClassify_ValidationListAggregatesFields(t *testing.T) {
	body, err := jsonvalue.Parse([]byte(`[
		{"error_code":"MISSING","param":"amount"},
		{"error_code":"INVALID","param":"currency"}
	]`))
	require.NoError(t, err)

	err = response.Classify(&response.Response{StatusCode: 400, Body: body})

	var valErr *paykiterrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"amount", "currency"}, valErr.InvalidFields)
	assert.Equal(t, []string{"amount", "currency"}, paykiterrors.InvalidFields(err))
}

func TestClassify_StatusRanges(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         any
		wantCategory string
		wantMessage  string
	}{
		{
			name:         "server default",
			status:       503,
			wantCategory: paykiterrors.CategoryServer,
			wantMessage:  response.DefaultServerMessage,
		},
		{
			name:         "client default",
			status:       404,
			body:         "not found",
			wantCategory: paykiterrors.CategoryClient,
			wantMessage:  response.DefaultClientMessage,
		},
		{
			name:         "message wins",
			status:       500,
			body:         jsonvalue.ObjectOf("error", "e", "message", "m"),
			wantCategory: paykiterrors.CategoryServer,
			wantMessage:  "m",
		},
		{
			name:         "error_message before error_description",
			status:       409,
			body:         jsonvalue.ObjectOf("error_description", "d", "error_message", "em"),
			wantCategory: paykiterrors.CategoryClient,
			wantMessage:  "em",
		},
		{
			name:         "error_description before error",
			status:       400,
			body:         jsonvalue.ObjectOf("error", "e", "error_description", "d"),
			wantCategory: paykiterrors.CategoryClient,
			wantMessage:  "d",
		},
		{
			name:         "error last",
			status:       400,
			body:         jsonvalue.ObjectOf("error", "invalid_grant"),
			wantCategory: paykiterrors.CategoryClient,
			wantMessage:  "invalid_grant",
		},
		{
			name:         "unrecognized error code falls back to status",
			status:       422,
			body:         jsonvalue.ObjectOf("error_code", "CONFLICT"),
			wantCategory: paykiterrors.CategoryClient,
			wantMessage:  response.DefaultClientMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := response.Classify(&response.Response{StatusCode: tt.status, Body: tt.body})

			var apiErr *paykiterrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCategory, apiErr.Category)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.body, apiErr.Body)
		})
	}
}

func TestClassify_Success(t *testing.T) {
	for _, status := range []int{200, 201, 204, 302} {
		assert.NoError(t, response.Classify(&response.Response{
			StatusCode: status,
			Body:       jsonvalue.ObjectOf("id", "x"),
		}))
	}
	assert.NoError(t, response.Classify(nil))
}

func TestClassify_EmptyListIsNotValidation(t *testing.T) {
	err := response.Classify(&response.Response{StatusCode: 200, Body: []any{}})
	assert.NoError(t, err)
}

func TestClassifierFunc(t *testing.T) {
	var c response.Classifier = response.ClassifierFunc(func(*response.Response) error { return nil })
	assert.NoError(t, c.Classify(&response.Response{StatusCode: 500}))
	assert.Error(t, response.DefaultClassifier.Classify(&response.Response{StatusCode: 500}))
}
