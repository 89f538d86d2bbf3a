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

	"github.com/tombee/paykit/pkg/response"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want response.ValueShape
	}{
		{"class<checkouts.Checkout>", response.Class("checkouts.Checkout")},
		{"checkouts.Checkout", response.Class("checkouts.Checkout")},
		{"array", response.List()},
		{"array<class<payouts.FinancialPayout>>", response.Array(response.Class("payouts.FinancialPayout"))},
		{"array<array<scalar<int>>>", response.Array(response.Array(response.Scalar("int")))},
		{"scalar<bool>", response.Scalar("bool")},
		{"object", response.Object()},
		{"void", response.Void()},
		{" mixed ", response.Mixed()},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := response.ParseShape(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseShape_RoundTrip(t *testing.T) {
	for _, shape := range []response.ValueShape{
		response.Class("a.B"),
		response.Array(response.Scalar("float")),
		response.List(),
		response.Object(),
	} {
		got, err := response.ParseShape(shape.String())
		require.NoError(t, err)
		assert.Equal(t, shape, got)
	}
}

func TestParseShape_Invalid(t *testing.T) {
	for _, in := range []string{"", "class", "scalar", "array<>", "class<a.B", "void<x>", "list<int>", "two words"} {
		_, err := response.ParseShape(in)
		assert.Error(t, err, in)
	}
}
