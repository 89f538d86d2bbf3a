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

package payouts

import (
	"time"

	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/sdk/shared"
)

// Type identifiers.
const (
	PayoutType = "payouts.FinancialPayout"
	StatusType = "payouts.Status"
	KindType   = "payouts.Kind"
)

// Status is the state of a payout.
type Status string

const (
	StatusSuccessful Status = "SUCCESSFUL"
	StatusFailed     Status = "FAILED"
)

// Kind distinguishes payouts from the deductions netted against them.
type Kind string

const (
	KindPayout              Kind = "PAYOUT"
	KindChargeBackDeduction Kind = "CHARGE_BACK_DEDUCTION"
	KindRefundDeduction     Kind = "REFUND_DEDUCTION"
	KindDDReturnDeduction   Kind = "DD_RETURN_DEDUCTION"
	KindBalanceDeduction    Kind = "BALANCE_DEDUCTION"
)

// FinancialPayout is one settlement to the merchant's bank account.
type FinancialPayout struct {
	ID              *int64           `json:"id,omitempty"`
	Amount          *float64         `json:"amount,omitempty"`
	Currency        *shared.Currency `json:"currency,omitempty"`
	Date            *time.Time       `json:"date,omitempty"`
	Fee             *float64         `json:"fee,omitempty"`
	Status          *Status          `json:"status,omitempty"`
	Type            *Kind            `json:"type,omitempty"`
	TransactionCode *string          `json:"transaction_code,omitempty"`
	Reference       *string          `json:"reference,omitempty"`
}

var types = []*hydrate.TargetType{
	hydrate.NewEnum(StatusType, StatusSuccessful, StatusFailed),
	hydrate.NewEnum(KindType, KindPayout, KindChargeBackDeduction, KindRefundDeduction, KindDDReturnDeduction, KindBalanceDeduction),
	hydrate.NewObject[FinancialPayout](PayoutType,
		hydrate.IntField("id", func(p *FinancialPayout, v int64) { p.ID = &v }),
		hydrate.FloatField("amount", func(p *FinancialPayout, v float64) { p.Amount = &v }),
		hydrate.EnumField("currency", shared.CurrencyType, func(p *FinancialPayout, v shared.Currency) { p.Currency = &v }),
		hydrate.TimeField("date", func(p *FinancialPayout, v time.Time) { p.Date = &v }),
		hydrate.FloatField("fee", func(p *FinancialPayout, v float64) { p.Fee = &v }),
		hydrate.EnumField("status", "Status", func(p *FinancialPayout, v Status) { p.Status = &v }),
		hydrate.EnumField("type", "Kind", func(p *FinancialPayout, v Kind) { p.Type = &v }),
		hydrate.StringField("transaction_code", func(p *FinancialPayout, v string) { p.TransactionCode = &v }),
		hydrate.StringField("reference", func(p *FinancialPayout, v string) { p.Reference = &v }),
	),
}

// Types returns the payout type descriptors.
func Types() []*hydrate.TargetType {
	return append([]*hydrate.TargetType(nil), types...)
}
