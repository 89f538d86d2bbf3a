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

package subaccounts

import (
	"time"

	"github.com/tombee/paykit/pkg/hydrate"
)

// Type identifiers.
const (
	OperatorType    = "subaccounts.Operator"
	PermissionsType = "subaccounts.Permissions"
	AccountKindType = "subaccounts.AccountKind"
)

// AccountKind distinguishes operator sub-accounts from the primary account.
type AccountKind string

const (
	AccountOperator AccountKind = "operator"
	AccountNormal   AccountKind = "normal"
)

// Operator is a sub-account that can take payments on behalf of the
// merchant.
type Operator struct {
	ID          int64        `json:"id"`
	Username    *string      `json:"username,omitempty"`
	Nickname    *string      `json:"nickname,omitempty"`
	Disabled    bool         `json:"disabled"`
	AccountType *AccountKind `json:"account_type,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"`
}

// Permissions are the capabilities of an operator.
type Permissions struct {
	CreateMOTOPayments         bool `json:"create_moto_payments"`
	CreateReferral             bool `json:"create_referral"`
	FullTransactionHistoryView bool `json:"full_transaction_history_view"`
	RefundTransactions         bool `json:"refund_transactions"`
	Admin                      bool `json:"admin"`
}

var types = []*hydrate.TargetType{
	hydrate.NewEnum(AccountKindType, AccountOperator, AccountNormal),
	hydrate.NewObject[Operator](OperatorType,
		hydrate.IntField("id", func(o *Operator, v int64) { o.ID = v }).Required(),
		hydrate.StringField("username", func(o *Operator, v string) { o.Username = &v }),
		hydrate.StringField("nickname", func(o *Operator, v string) { o.Nickname = &v }),
		hydrate.BoolField("disabled", func(o *Operator, v bool) { o.Disabled = v }).Required(),
		hydrate.EnumField("account_type", "AccountKind", func(o *Operator, v AccountKind) { o.AccountType = &v }),
		hydrate.NestedField("permissions", "Permissions", func(o *Operator, v *Permissions) { o.Permissions = v }),
		hydrate.TimeField("created_at", func(o *Operator, v time.Time) { o.CreatedAt = &v }),
		hydrate.TimeField("updated_at", func(o *Operator, v time.Time) { o.UpdatedAt = &v }),
	),
	hydrate.NewObject[Permissions](PermissionsType,
		hydrate.BoolField("create_moto_payments", func(p *Permissions, v bool) { p.CreateMOTOPayments = v }).Required(),
		hydrate.BoolField("create_referral", func(p *Permissions, v bool) { p.CreateReferral = v }).Required(),
		hydrate.BoolField("full_transaction_history_view", func(p *Permissions, v bool) { p.FullTransactionHistoryView = v }).Required(),
		hydrate.BoolField("refund_transactions", func(p *Permissions, v bool) { p.RefundTransactions = v }).Required(),
		hydrate.BoolField("admin", func(p *Permissions, v bool) { p.Admin = v }).Required(),
	),
}

// Types returns the sub-account type descriptors.
func Types() []*hydrate.TargetType {
	return append([]*hydrate.TargetType(nil), types...)
}
