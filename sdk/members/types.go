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

package members

import (
	"time"

	"github.com/tombee/paykit/pkg/hydrate"
)

// Type identifiers.
const (
	MemberType     = "members.Member"
	MemberListType = "members.MemberList"
	UserType       = "members.User"
	InviteType     = "members.Invite"
	StatusType     = "members.Status"
)

// Status is the state of a membership.
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusPending  Status = "pending"
	StatusExpired  Status = "expired"
	StatusDisabled Status = "disabled"
	StatusUnknown  Status = "unknown"
)

// Member is a user with access to a merchant account.
type Member struct {
	ID          string     `json:"id"`
	Roles       []string   `json:"roles,omitempty"`
	Permissions []string   `json:"permissions,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	User        *User      `json:"user,omitempty"`
	Invite      *Invite    `json:"invite,omitempty"`
	Metadata    any        `json:"metadata,omitempty"`
	Attributes  any        `json:"attributes,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// User is the account behind a member.
type User struct {
	ID                 *string    `json:"id,omitempty"`
	Email              *string    `json:"email,omitempty"`
	Nickname           *string    `json:"nickname,omitempty"`
	MFAOnLoginEnabled  bool       `json:"mfa_on_login_enabled"`
	VirtualUser        bool       `json:"virtual_user"`
	ServiceAccountUser bool       `json:"service_account_user"`
	DisabledAt         *time.Time `json:"disabled_at,omitempty"`
}

// Invite is a pending invitation sent to an email address.
type Invite struct {
	Email     *string    `json:"email,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// MemberList is one page of members.
type MemberList struct {
	Items      []Member `json:"items,omitempty"`
	TotalCount *int64   `json:"total_count,omitempty"`
}

var types = []*hydrate.TargetType{
	hydrate.NewEnum(StatusType, StatusAccepted, StatusPending, StatusExpired, StatusDisabled, StatusUnknown),
	hydrate.NewObject[Member](MemberType,
		hydrate.StringField("id", func(m *Member, v string) { m.ID = v }).Required(),
		hydrate.ListOfField("roles", hydrate.ScalarString, func(m *Member, v []string) { m.Roles = v }),
		hydrate.ListOfField("permissions", hydrate.ScalarString, func(m *Member, v []string) { m.Permissions = v }),
		hydrate.EnumField("status", "Status", func(m *Member, v Status) { m.Status = &v }),
		hydrate.NestedField("user", "User", func(m *Member, v *User) { m.User = v }),
		hydrate.NestedField("invite", "Invite", func(m *Member, v *Invite) { m.Invite = v }),
		hydrate.MixedField("metadata", func(m *Member, v any) { m.Metadata = v }),
		hydrate.MixedField("attributes", func(m *Member, v any) { m.Attributes = v }),
		hydrate.TimeField("created_at", func(m *Member, v time.Time) { m.CreatedAt = &v }),
		hydrate.TimeField("updated_at", func(m *Member, v time.Time) { m.UpdatedAt = &v }),
	),
	hydrate.NewObject[User](UserType,
		hydrate.StringField("id", func(u *User, v string) { u.ID = &v }),
		hydrate.StringField("email", func(u *User, v string) { u.Email = &v }),
		hydrate.StringField("nickname", func(u *User, v string) { u.Nickname = &v }),
		hydrate.BoolField("mfa_on_login_enabled", func(u *User, v bool) { u.MFAOnLoginEnabled = v }).Required(),
		hydrate.BoolField("virtual_user", func(u *User, v bool) { u.VirtualUser = v }).Required(),
		hydrate.BoolField("service_account_user", func(u *User, v bool) { u.ServiceAccountUser = v }).Required(),
		hydrate.TimeField("disabled_at", func(u *User, v time.Time) { u.DisabledAt = &v }),
	),
	hydrate.NewObject[Invite](InviteType,
		hydrate.StringField("email", func(i *Invite, v string) { i.Email = &v }),
		hydrate.TimeField("expires_at", func(i *Invite, v time.Time) { i.ExpiresAt = &v }),
	),
	hydrate.NewObject[MemberList](MemberListType,
		hydrate.ObjectListField("items", "Member", func(l *MemberList, v []Member) { l.Items = v }),
		hydrate.IntField("total_count", func(l *MemberList, v int64) { l.TotalCount = &v }),
	),
}

// Types returns the member type descriptors.
func Types() []*hydrate.TargetType {
	return append([]*hydrate.TargetType(nil), types...)
}
