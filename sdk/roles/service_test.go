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

package roles_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/call/calltest"
	"github.com/tombee/paykit/sdk/roles"
)

func newService(tr *calltest.Transport) *roles.Service {
	return roles.NewService(call.NewPipeline(tr, calltest.Decoder(roles.Types())))
}

const roleJSON = `{"id":"role_1","name":"Cashier","permissions":["checkouts.create","readers.view"],"is_predefined":false,"metadata":{"team":"front"}}`

func TestList(t *testing.T) {
	tr := calltest.Reply(200, `{"items":[`+roleJSON+`,{"id":"role_owner","name":"Owner","is_predefined":true}]}`)
	got, err := newService(tr).List(context.Background(), "MC1")
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, []string{"checkouts.create", "readers.view"}, got.Items[0].Permissions)
	assert.True(t, got.Items[1].IsPredefined)
	assert.Nil(t, got.Items[1].Permissions)
	assert.Equal(t, "/v0.1/merchants/MC1/roles", tr.Last().Path)
}

func TestCRUD(t *testing.T) {
	tests := []struct {
		name   string
		status int
		run    func(*roles.Service) error
		method string
		path   string
	}{
		{
			name:   "create",
			status: 201,
			run: func(s *roles.Service) error {
				_, err := s.Create(context.Background(), "MC1", roles.CreateRequest{Name: "Cashier", Permissions: []string{"checkouts.create"}})
				return err
			},
			method: http.MethodPost,
			path:   "/v0.1/merchants/MC1/roles",
		},
		{
			name:   "get",
			status: 200,
			run: func(s *roles.Service) error {
				r, err := s.Get(context.Background(), "MC1", "role_1")
				if err == nil && r.ID != "role_1" {
					t.Errorf("ID = %q", r.ID)
				}
				return err
			},
			method: http.MethodGet,
			path:   "/v0.1/merchants/MC1/roles/role_1",
		},
		{
			name:   "update",
			status: 200,
			run: func(s *roles.Service) error {
				_, err := s.Update(context.Background(), "MC1", "role_1", roles.UpdateRequest{Name: "Senior cashier"})
				return err
			},
			method: http.MethodPatch,
			path:   "/v0.1/merchants/MC1/roles/role_1",
		},
		{
			name:   "delete",
			status: 200,
			run: func(s *roles.Service) error {
				return s.Delete(context.Background(), "MC1", "role_1")
			},
			method: http.MethodDelete,
			path:   "/v0.1/merchants/MC1/roles/role_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := calltest.Reply(tt.status, roleJSON)
			require.NoError(t, tt.run(newService(tr)))
			assert.Equal(t, tt.method, tr.Last().Method)
			assert.Equal(t, tt.path, tr.Last().Path)
		})
	}
}
