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

package members_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/call/calltest"
	"github.com/tombee/paykit/sdk/members"
)

func newService(tr *calltest.Transport) *members.Service {
	return members.NewService(call.NewPipeline(tr, calltest.Decoder(members.Types())))
}

const pendingMemberJSON = `{
	"id": "mem_1",
	"roles": ["role_cashier"],
	"status": "pending",
	"invite": {"email": "new@example.com", "expires_at": "2024-06-01T00:00:00Z"},
	"attributes": {"shift": "morning"}
}`

func TestList(t *testing.T) {
	tr := calltest.Reply(200, `{"items":[`+pendingMemberJSON+`,{
		"id":"mem_2","status":"accepted",
		"user":{"id":"u_2","email":"old@example.com","mfa_on_login_enabled":true,"virtual_user":null}
	}],"total_count":2}`)

	got, err := newService(tr).List(context.Background(), "MC1", members.ListParams{
		Limit:  10,
		Status: members.StatusPending,
		Roles:  []string{"role_cashier", "role_admin"},
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(2), *got.TotalCount)

	pending := got.Items[0]
	assert.Equal(t, members.StatusPending, *pending.Status)
	require.NotNil(t, pending.Invite)
	assert.Equal(t, "new@example.com", *pending.Invite.Email)
	assert.Equal(t, 2024, pending.Invite.ExpiresAt.Year())
	assert.Nil(t, pending.User)

	accepted := got.Items[1]
	require.NotNil(t, accepted.User)
	assert.True(t, accepted.User.MFAOnLoginEnabled)
	assert.False(t, accepted.User.VirtualUser)

	query := tr.Last().Query
	assert.Equal(t, "10", query.Get("limit"))
	assert.Equal(t, "pending", query.Get("status"))
	assert.Equal(t, []string{"role_cashier", "role_admin"}, query["roles"])
	assert.Empty(t, query.Get("offset"))
}

func TestCreate(t *testing.T) {
	tr := calltest.Reply(201, pendingMemberJSON)
	got, err := newService(tr).Create(context.Background(), "MC1", members.CreateRequest{
		Email: "new@example.com",
		Roles: []string{"role_cashier"},
	})
	require.NoError(t, err)
	assert.Equal(t, "mem_1", got.ID)
	assert.Equal(t, http.MethodPost, tr.Last().Method)
	assert.Equal(t, "/v0.1/merchants/MC1/members", tr.Last().Path)
}

func TestGetUpdateDelete(t *testing.T) {
	tr := calltest.Reply(200, pendingMemberJSON)
	svc := newService(tr)

	got, err := svc.Get(context.Background(), "MC1", "mem_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"role_cashier"}, got.Roles)
	assert.Equal(t, "/v0.1/merchants/MC1/members/mem_1", tr.Last().Path)

	_, err = svc.Update(context.Background(), "MC1", "mem_1", members.UpdateRequest{
		User: &members.UserUpdate{Nickname: "Sam"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, tr.Last().Method)

	require.NoError(t, svc.Delete(context.Background(), "MC1", "mem_1"))
	assert.Equal(t, http.MethodDelete, tr.Last().Method)
}
