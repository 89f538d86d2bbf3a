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

package checkouts

import (
	"time"

	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/sdk/shared"
)

// Type identifiers.
const (
	CheckoutType            = "checkouts.Checkout"
	CheckoutAcceptedType    = "checkouts.CheckoutAccepted"
	CheckoutTransactionType = "checkouts.CheckoutTransaction"
	StatusType              = "checkouts.Status"
	TransactionStatusType   = "checkouts.TransactionStatus"
	PaymentMethodType       = "checkouts.PaymentMethod"
	PaymentMethodsType      = "checkouts.AvailablePaymentMethods"
	MandateType             = "checkouts.Mandate"
)

// Status is the state of a checkout.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusFailed  Status = "FAILED"
	StatusPaid    Status = "PAID"
	StatusExpired Status = "EXPIRED"
)

// TransactionStatus is the state of a transaction attached to a checkout.
type TransactionStatus string

const (
	TransactionSuccessful TransactionStatus = "SUCCESSFUL"
	TransactionCancelled  TransactionStatus = "CANCELLED"
	TransactionFailed     TransactionStatus = "FAILED"
	TransactionPending    TransactionStatus = "PENDING"
)

// Checkout is a payment session created by the merchant and completed by
// the payer.
type Checkout struct {
	ID                *string               `json:"id,omitempty"`
	CheckoutReference *string               `json:"checkout_reference,omitempty"`
	Amount            *float64              `json:"amount,omitempty"`
	Currency          *shared.Currency      `json:"currency,omitempty"`
	MerchantCode      *string               `json:"merchant_code,omitempty"`
	Description       *string               `json:"description,omitempty"`
	ReturnURL         *string               `json:"return_url,omitempty"`
	RedirectURL       *string               `json:"redirect_url,omitempty"`
	Status            *Status               `json:"status,omitempty"`
	Date              *time.Time            `json:"date,omitempty"`
	ValidUntil        *time.Time            `json:"valid_until,omitempty"`
	CustomerID        *string               `json:"customer_id,omitempty"`
	Mandate           *Mandate              `json:"mandate,omitempty"`
	Transactions      []CheckoutTransaction `json:"transactions,omitempty"`
}

// CheckoutTransaction summarizes a payment attempt on a checkout.
type CheckoutTransaction struct {
	ID                *string            `json:"id,omitempty"`
	TransactionCode   *string            `json:"transaction_code,omitempty"`
	Amount            *float64           `json:"amount,omitempty"`
	Currency          *shared.Currency   `json:"currency,omitempty"`
	Timestamp         *time.Time         `json:"timestamp,omitempty"`
	Status            *TransactionStatus `json:"status,omitempty"`
	PaymentType       *string            `json:"payment_type,omitempty"`
	InstallmentsCount *int64             `json:"installments_count,omitempty"`
	MerchantCode      *string            `json:"merchant_code,omitempty"`
	VATAmount         *float64           `json:"vat_amount,omitempty"`
	TipAmount         *float64           `json:"tip_amount,omitempty"`
	EntryMode         *string            `json:"entry_mode,omitempty"`
	AuthCode          *string            `json:"auth_code,omitempty"`
}

// Mandate is the recurring payment mandate created with a checkout.
type Mandate struct {
	Type       *string `json:"type,omitempty"`
	Status     *string `json:"status,omitempty"`
	MerchantID *string `json:"merchant_id,omitempty"`
}

// CheckoutAccepted is returned when processing needs a further step from
// the payer, such as a 3-D Secure redirect. NextStep is passed through as
// decoded.
type CheckoutAccepted struct {
	NextStep any `json:"next_step,omitempty"`
}

// PaymentMethod is one payment method available to a merchant.
type PaymentMethod struct {
	ID string `json:"id"`
}

// AvailablePaymentMethods lists the payment methods a merchant accepts.
type AvailablePaymentMethods struct {
	Methods []PaymentMethod `json:"available_payment_methods,omitempty"`
}

var types = []*hydrate.TargetType{
	hydrate.NewEnum(StatusType, StatusPending, StatusFailed, StatusPaid, StatusExpired),
	hydrate.NewEnum(TransactionStatusType,
		TransactionSuccessful, TransactionCancelled, TransactionFailed, TransactionPending),
	hydrate.NewObject[Checkout](CheckoutType,
		hydrate.StringField("id", func(c *Checkout, v string) { c.ID = &v }),
		hydrate.StringField("checkout_reference", func(c *Checkout, v string) { c.CheckoutReference = &v }),
		hydrate.FloatField("amount", func(c *Checkout, v float64) { c.Amount = &v }),
		hydrate.EnumField("currency", shared.CurrencyType, func(c *Checkout, v shared.Currency) { c.Currency = &v }),
		hydrate.StringField("merchant_code", func(c *Checkout, v string) { c.MerchantCode = &v }),
		hydrate.StringField("description", func(c *Checkout, v string) { c.Description = &v }),
		hydrate.StringField("return_url", func(c *Checkout, v string) { c.ReturnURL = &v }),
		hydrate.StringField("redirect_url", func(c *Checkout, v string) { c.RedirectURL = &v }),
		hydrate.EnumField("status", "Status", func(c *Checkout, v Status) { c.Status = &v }),
		hydrate.TimeField("date", func(c *Checkout, v time.Time) { c.Date = &v }),
		hydrate.TimeField("valid_until", func(c *Checkout, v time.Time) { c.ValidUntil = &v }),
		hydrate.StringField("customer_id", func(c *Checkout, v string) { c.CustomerID = &v }),
		hydrate.NestedField("mandate", "Mandate", func(c *Checkout, v *Mandate) { c.Mandate = v }),
		hydrate.ObjectListField("transactions", "CheckoutTransaction", func(c *Checkout, v []CheckoutTransaction) { c.Transactions = v }),
	),
	hydrate.NewObject[CheckoutTransaction](CheckoutTransactionType,
		hydrate.StringField("id", func(t *CheckoutTransaction, v string) { t.ID = &v }),
		hydrate.StringField("transaction_code", func(t *CheckoutTransaction, v string) { t.TransactionCode = &v }),
		hydrate.FloatField("amount", func(t *CheckoutTransaction, v float64) { t.Amount = &v }),
		hydrate.EnumField("currency", shared.CurrencyType, func(t *CheckoutTransaction, v shared.Currency) { t.Currency = &v }),
		hydrate.TimeField("timestamp", func(t *CheckoutTransaction, v time.Time) { t.Timestamp = &v }),
		hydrate.EnumField("status", "TransactionStatus", func(t *CheckoutTransaction, v TransactionStatus) { t.Status = &v }),
		hydrate.StringField("payment_type", func(t *CheckoutTransaction, v string) { t.PaymentType = &v }),
		hydrate.IntField("installments_count", func(t *CheckoutTransaction, v int64) { t.InstallmentsCount = &v }),
		hydrate.StringField("merchant_code", func(t *CheckoutTransaction, v string) { t.MerchantCode = &v }),
		hydrate.FloatField("vat_amount", func(t *CheckoutTransaction, v float64) { t.VATAmount = &v }),
		hydrate.FloatField("tip_amount", func(t *CheckoutTransaction, v float64) { t.TipAmount = &v }),
		hydrate.StringField("entry_mode", func(t *CheckoutTransaction, v string) { t.EntryMode = &v }),
		hydrate.StringField("auth_code", func(t *CheckoutTransaction, v string) { t.AuthCode = &v }),
	),
	hydrate.NewObject[Mandate](MandateType,
		hydrate.StringField("type", func(m *Mandate, v string) { m.Type = &v }),
		hydrate.StringField("status", func(m *Mandate, v string) { m.Status = &v }),
		hydrate.StringField("merchant_id", func(m *Mandate, v string) { m.MerchantID = &v }),
	),
	hydrate.NewObject[CheckoutAccepted](CheckoutAcceptedType,
		hydrate.MixedField("next_step", func(a *CheckoutAccepted, v any) { a.NextStep = v }),
	),
	hydrate.NewObject[PaymentMethod](PaymentMethodType,
		hydrate.StringField("id", func(m *PaymentMethod, v string) { m.ID = v }).Required(),
	),
	hydrate.NewObject[AvailablePaymentMethods](PaymentMethodsType,
		hydrate.ObjectListField("available_payment_methods", "PaymentMethod", func(a *AvailablePaymentMethods, v []PaymentMethod) { a.Methods = v }),
	),
}

// Types returns the checkout type descriptors.
func Types() []*hydrate.TargetType {
	return append([]*hydrate.TargetType(nil), types...)
}
