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

package memberships_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/paykit/internal/call"
	"github.com/tombee/paykit/internal/call/calltest"
	"github.com/tombee/paykit/sdk/members"
	"github.com/tombee/paykit/sdk/memberships"
)

func TestList(t *testing.T) {
	tr := calltest.Reply(200, `{
		"items": [{
			"id": "mship_1",
			"resource_id": "MC1",
			"type": "merchant",
			"roles": ["role_admin"],
			"status": "accepted",
			"resource": {"id": "MC1", "type": "merchant", "name": "Acme Coffee"}
		}, {
			"id": "mship_2",
			"status": "pending",
			"invite": {"email": "me@example.com", "expires_at": "2025-01-01T00:00:00Z"}
		}],
		"total_count": 2
	}`)
	svc := memberships.NewService(call.NewPipeline(tr, calltest.Decoder(members.Types(), memberships.Types())))

	got, err := svc.List(context.Background(), memberships.ListParams{Kind: "merchant", ResourceType: "merchant", Limit: 5})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	first := got.Items[0]
	assert.Equal(t, members.StatusAccepted, *first.Status)
	require.NotNil(t, first.Resource)
	assert.Equal(t, "Acme Coffee", *first.Resource.Name)
	assert.Equal(t, "merchant", *first.Type)

	second := got.Items[1]
	require.NotNil(t, second.Invite)
	assert.Equal(t, "me@example.com", *second.Invite.Email)

	req := tr.Last()
	assert.Equal(t, "/v0.1/memberships", req.Path)
	assert.Equal(t, "merchant", req.Query.Get("kind"))
	assert.Equal(t, "merchant", req.Query.Get("resource.type"))
	assert.Equal(t, "5", req.Query.Get("limit"))
}
