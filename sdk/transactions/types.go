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

package transactions

import (
	"time"

	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/sdk/shared"
)

// Type identifiers.
const (
	TransactionType = "transactions.Transaction"
	StatusType      = "transactions.Status"
	EventType       = "transactions.Event"
	EventTypeType   = "transactions.EventType"
	LinkType        = "transactions.Link"
	ProductType     = "transactions.Product"
	CardType        = "transactions.Card"
	HistoryType     = "transactions.History"
)

// Status is the state of a transaction.
type Status string

const (
	StatusSuccessful Status = "SUCCESSFUL"
	StatusCancelled  Status = "CANCELLED"
	StatusFailed     Status = "FAILED"
	StatusPending    Status = "PENDING"
)

// EventKind is the kind of a transaction event.
type EventKind string

const (
	EventPayout           EventKind = "PAYOUT"
	EventChargeBack       EventKind = "CHARGE_BACK"
	EventRefund           EventKind = "REFUND"
	EventPayoutDeduction  EventKind = "PAYOUT_DEDUCTION"
	EventBalanceDeduction EventKind = "BALANCE_DEDUCTION"
)

// Transaction is a card payment or refund.
type Transaction struct {
	ID                *string          `json:"id,omitempty"`
	TransactionCode   *string          `json:"transaction_code,omitempty"`
	Amount            *float64         `json:"amount,omitempty"`
	Currency          *shared.Currency `json:"currency,omitempty"`
	Timestamp         *time.Time       `json:"timestamp,omitempty"`
	Status            *Status          `json:"status,omitempty"`
	PaymentType       *string          `json:"payment_type,omitempty"`
	InstallmentsCount *int64           `json:"installments_count,omitempty"`
	MerchantCode      *string          `json:"merchant_code,omitempty"`
	VATAmount         *float64         `json:"vat_amount,omitempty"`
	TipAmount         *float64         `json:"tip_amount,omitempty"`
	EntryMode         *string          `json:"entry_mode,omitempty"`
	AuthCode          *string          `json:"auth_code,omitempty"`
	InternalID        *int64           `json:"internal_id,omitempty"`
	ProductSummary    *string          `json:"product_summary,omitempty"`
	PayoutsReceived   *int64           `json:"payouts_received,omitempty"`
	PayoutPlan        *string          `json:"payout_plan,omitempty"`
	Username          *string          `json:"username,omitempty"`
	Latitude          *float64         `json:"lat,omitempty"`
	Longitude         *float64         `json:"lon,omitempty"`
	Card              *Card            `json:"card,omitempty"`
	Products          []Product        `json:"products,omitempty"`
	Events            []Event          `json:"events,omitempty"`
	Links             []Link           `json:"links,omitempty"`
}

// Card is the masked card used for a transaction.
type Card struct {
	Last4Digits *string `json:"last_4_digits,omitempty"`
	Type        *string `json:"type,omitempty"`
}

// Product is one line of the basket paid for.
type Product struct {
	Name       *string  `json:"name,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	Quantity   *int64   `json:"quantity,omitempty"`
	TotalPrice *float64 `json:"total_price,omitempty"`
	VATRate    *float64 `json:"vat_rate,omitempty"`
}

// Event is a payout, refund or chargeback affecting a transaction.
type Event struct {
	ID                *int64     `json:"id,omitempty"`
	TransactionID     *string    `json:"transaction_id,omitempty"`
	Type              *EventKind `json:"type,omitempty"`
	Status            *string    `json:"status,omitempty"`
	Amount            *float64   `json:"amount,omitempty"`
	FeeAmount         *float64   `json:"fee_amount,omitempty"`
	InstallmentNumber *int64     `json:"installment_number,omitempty"`
	DeductedAmount    *float64   `json:"deducted_amount,omitempty"`
	DeductedFeeAmount *float64   `json:"deducted_fee_amount,omitempty"`
	Timestamp         *time.Time `json:"timestamp,omitempty"`
}

// Link is a hypermedia link.
type Link struct {
	Rel  *string `json:"rel,omitempty"`
	Href *string `json:"href,omitempty"`
	Type *string `json:"type,omitempty"`
}

// History is one page of the transaction history.
type History struct {
	Items []Transaction `json:"items,omitempty"`
	Links []Link        `json:"links,omitempty"`
}

// Next returns the query string of the next page, if any.
func (h *History) Next() (string, bool) {
	for _, l := range h.Links {
		if l.Rel != nil && *l.Rel == "next" && l.Href != nil {
			return *l.Href, true
		}
	}
	return "", false
}

var types = []*hydrate.TargetType{
	hydrate.NewEnum(StatusType, StatusSuccessful, StatusCancelled, StatusFailed, StatusPending),
	hydrate.NewEnum(EventTypeType, EventPayout, EventChargeBack, EventRefund, EventPayoutDeduction, EventBalanceDeduction),
	hydrate.NewObject[Transaction](TransactionType,
		hydrate.StringField("id", func(t *Transaction, v string) { t.ID = &v }),
		hydrate.StringField("transaction_code", func(t *Transaction, v string) { t.TransactionCode = &v }),
		hydrate.FloatField("amount", func(t *Transaction, v float64) { t.Amount = &v }),
		hydrate.EnumField("currency", shared.CurrencyType, func(t *Transaction, v shared.Currency) { t.Currency = &v }),
		hydrate.TimeField("timestamp", func(t *Transaction, v time.Time) { t.Timestamp = &v }),
		hydrate.EnumField("status", "Status", func(t *Transaction, v Status) { t.Status = &v }),
		hydrate.StringField("payment_type", func(t *Transaction, v string) { t.PaymentType = &v }),
		hydrate.IntField("installments_count", func(t *Transaction, v int64) { t.InstallmentsCount = &v }),
		hydrate.StringField("merchant_code", func(t *Transaction, v string) { t.MerchantCode = &v }),
		hydrate.FloatField("vat_amount", func(t *Transaction, v float64) { t.VATAmount = &v }),
		hydrate.FloatField("tip_amount", func(t *Transaction, v float64) { t.TipAmount = &v }),
		hydrate.StringField("entry_mode", func(t *Transaction, v string) { t.EntryMode = &v }),
		hydrate.StringField("auth_code", func(t *Transaction, v string) { t.AuthCode = &v }),
		hydrate.IntField("internal_id", func(t *Transaction, v int64) { t.InternalID = &v }),
		hydrate.StringField("product_summary", func(t *Transaction, v string) { t.ProductSummary = &v }),
		hydrate.IntField("payouts_received", func(t *Transaction, v int64) { t.PayoutsReceived = &v }),
		hydrate.StringField("payout_plan", func(t *Transaction, v string) { t.PayoutPlan = &v }),
		hydrate.StringField("username", func(t *Transaction, v string) { t.Username = &v }),
		hydrate.FloatField("lat", func(t *Transaction, v float64) { t.Latitude = &v }),
		hydrate.FloatField("lon", func(t *Transaction, v float64) { t.Longitude = &v }),
		hydrate.NestedField("card", "Card", func(t *Transaction, v *Card) { t.Card = v }),
		hydrate.ObjectListField("products", "Product", func(t *Transaction, v []Product) { t.Products = v }),
		hydrate.ObjectListField("events", "Event", func(t *Transaction, v []Event) { t.Events = v }),
		hydrate.ObjectListField("links", "Link", func(t *Transaction, v []Link) { t.Links = v }),
	),
	hydrate.NewObject[Card](CardType,
		hydrate.StringField("last_4_digits", func(c *Card, v string) { c.Last4Digits = &v }),
		hydrate.StringField("type", func(c *Card, v string) { c.Type = &v }),
	),
	hydrate.NewObject[Product](ProductType,
		hydrate.StringField("name", func(p *Product, v string) { p.Name = &v }),
		hydrate.FloatField("price", func(p *Product, v float64) { p.Price = &v }),
		hydrate.IntField("quantity", func(p *Product, v int64) { p.Quantity = &v }),
		hydrate.FloatField("total_price", func(p *Product, v float64) { p.TotalPrice = &v }),
		hydrate.FloatField("vat_rate", func(p *Product, v float64) { p.VATRate = &v }),
	),
	hydrate.NewObject[Event](EventType,
		hydrate.IntField("id", func(e *Event, v int64) { e.ID = &v }),
		hydrate.StringField("transaction_id", func(e *Event, v string) { e.TransactionID = &v }),
		hydrate.EnumField("type", "EventType", func(e *Event, v EventKind) { e.Type = &v }),
		hydrate.StringField("status", func(e *Event, v string) { e.Status = &v }),
		hydrate.FloatField("amount", func(e *Event, v float64) { e.Amount = &v }),
		hydrate.FloatField("fee_amount", func(e *Event, v float64) { e.FeeAmount = &v }),
		hydrate.IntField("installment_number", func(e *Event, v int64) { e.InstallmentNumber = &v }),
		hydrate.FloatField("deducted_amount", func(e *Event, v float64) { e.DeductedAmount = &v }),
		hydrate.FloatField("deducted_fee_amount", func(e *Event, v float64) { e.DeductedFeeAmount = &v }),
		hydrate.TimeField("timestamp", func(e *Event, v time.Time) { e.Timestamp = &v }),
	),
	hydrate.NewObject[Link](LinkType,
		hydrate.StringField("rel", func(l *Link, v string) { l.Rel = &v }),
		hydrate.StringField("href", func(l *Link, v string) { l.Href = &v }),
		hydrate.StringField("type", func(l *Link, v string) { l.Type = &v }),
	),
	hydrate.NewObject[History](HistoryType,
		hydrate.ObjectListField("items", "Transaction", func(h *History, v []Transaction) { h.Items = v }),
		hydrate.ObjectListField("links", "Link", func(h *History, v []Link) { h.Links = v }),
	),
}

// Types returns the transaction type descriptors.
func Types() []*hydrate.TargetType {
	return append([]*hydrate.TargetType(nil), types...)
}
