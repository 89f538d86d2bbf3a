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

package memberships

import (
	"time"

	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/sdk/members"
)

// Type identifiers.
const (
	MembershipType     = "memberships.Membership"
	MembershipListType = "memberships.MembershipList"
	ResourceType       = "memberships.Resource"
)

// Membership grants the current user access to a resource such as a
// merchant account.
type Membership struct {
	ID          string          `json:"id"`
	ResourceID  *string         `json:"resource_id,omitempty"`
	Type        *string         `json:"type,omitempty"`
	Roles       []string        `json:"roles,omitempty"`
	Permissions []string        `json:"permissions,omitempty"`
	Status      *members.Status `json:"status,omitempty"`
	Invite      *members.Invite `json:"invite,omitempty"`
	Resource    *Resource       `json:"resource,omitempty"`
	Metadata    any             `json:"metadata,omitempty"`
	Attributes  any             `json:"attributes,omitempty"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// Resource is the object a membership grants access to.
type Resource struct {
	ID         *string    `json:"id,omitempty"`
	Type       *string    `json:"type,omitempty"`
	Name       *string    `json:"name,omitempty"`
	Logo       *string    `json:"logo,omitempty"`
	Attributes any        `json:"attributes,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// MembershipList is one page of memberships.
type MembershipList struct {
	Items      []Membership `json:"items,omitempty"`
	TotalCount *int64       `json:"total_count,omitempty"`
}

var types = []*hydrate.TargetType{
	hydrate.NewObject[Membership](MembershipType,
		hydrate.StringField("id", func(m *Membership, v string) { m.ID = v }).Required(),
		hydrate.StringField("resource_id", func(m *Membership, v string) { m.ResourceID = &v }),
		hydrate.StringField("type", func(m *Membership, v string) { m.Type = &v }),
		hydrate.ListOfField("roles", hydrate.ScalarString, func(m *Membership, v []string) { m.Roles = v }),
		hydrate.ListOfField("permissions", hydrate.ScalarString, func(m *Membership, v []string) { m.Permissions = v }),
		hydrate.EnumField("status", members.StatusType, func(m *Membership, v members.Status) { m.Status = &v }),
		hydrate.NestedField("invite", members.InviteType, func(m *Membership, v *members.Invite) { m.Invite = v }),
		hydrate.NestedField("resource", "Resource", func(m *Membership, v *Resource) { m.Resource = v }),
		hydrate.MixedField("metadata", func(m *Membership, v any) { m.Metadata = v }),
		hydrate.MixedField("attributes", func(m *Membership, v any) { m.Attributes = v }),
		hydrate.TimeField("created_at", func(m *Membership, v time.Time) { m.CreatedAt = &v }),
		hydrate.TimeField("updated_at", func(m *Membership, v time.Time) { m.UpdatedAt = &v }),
	),
	hydrate.NewObject[Resource](ResourceType,
		hydrate.StringField("id", func(r *Resource, v string) { r.ID = &v }),
		hydrate.StringField("type", func(r *Resource, v string) { r.Type = &v }),
		hydrate.StringField("name", func(r *Resource, v string) { r.Name = &v }),
		hydrate.StringField("logo", func(r *Resource, v string) { r.Logo = &v }),
		hydrate.MixedField("attributes", func(r *Resource, v any) { r.Attributes = v }),
		hydrate.TimeField("created_at", func(r *Resource, v time.Time) { r.CreatedAt = &v }),
		hydrate.TimeField("updated_at", func(r *Resource, v time.Time) { r.UpdatedAt = &v }),
	),
	hydrate.NewObject[MembershipList](MembershipListType,
		hydrate.ObjectListField("items", "Membership", func(l *MembershipList, v []Membership) { l.Items = v }),
		hydrate.IntField("total_count", func(l *MembershipList, v int64) { l.TotalCount = &v }),
	),
}

// Types returns the membership type descriptors. They refer to member
// types, so registries must also hold members.Types.
func Types() []*hydrate.TargetType {
	return append([]*hydrate.TargetType(nil), types...)
}
