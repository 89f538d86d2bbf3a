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

package roles

import (
	"time"

	"github.com/tombee/paykit/pkg/hydrate"
)

// Type identifiers.
const (
	RoleType     = "roles.Role"
	RoleListType = "roles.RoleList"
)

// Role is a named set of permissions that can be granted to members.
type Role struct {
	ID           string     `json:"id"`
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Permissions  []string   `json:"permissions,omitempty"`
	IsPredefined bool       `json:"is_predefined"`
	Metadata     any        `json:"metadata,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// RoleList is the list of roles of a merchant.
type RoleList struct {
	Items []Role `json:"items,omitempty"`
}

var types = []*hydrate.TargetType{
	hydrate.NewObject[Role](RoleType,
		hydrate.StringField("id", func(r *Role, v string) { r.ID = v }).Required(),
		hydrate.StringField("name", func(r *Role, v string) { r.Name = &v }),
		hydrate.StringField("description", func(r *Role, v string) { r.Description = &v }),
		hydrate.ListOfField("permissions", hydrate.ScalarString, func(r *Role, v []string) { r.Permissions = v }),
		hydrate.BoolField("is_predefined", func(r *Role, v bool) { r.IsPredefined = v }).Required(),
		hydrate.MixedField("metadata", func(r *Role, v any) { r.Metadata = v }),
		hydrate.TimeField("created_at", func(r *Role, v time.Time) { r.CreatedAt = &v }),
		hydrate.TimeField("updated_at", func(r *Role, v time.Time) { r.UpdatedAt = &v }),
	),
	hydrate.NewObject[RoleList](RoleListType,
		hydrate.ObjectListField("items", "Role", func(l *RoleList, v []Role) { l.Items = v }),
	),
}

// Types returns the role type descriptors.
func Types() []*hydrate.TargetType {
	return append([]*hydrate.TargetType(nil), types...)
}
