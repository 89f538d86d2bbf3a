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

package customers

import (
	"time"

	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/sdk/shared"
)

// Type identifiers.
const (
	CustomerType          = "customers.Customer"
	PersonalDetailsType   = "customers.PersonalDetails"
	PaymentInstrumentType = "customers.PaymentInstrument"
	CardType              = "customers.Card"
)

// Customer is a payer saved by the merchant for recurring payments.
type Customer struct {
	CustomerID      string           `json:"customer_id"`
	PersonalDetails *PersonalDetails `json:"personal_details,omitempty"`
}

// PersonalDetails holds the contact details of a customer.
type PersonalDetails struct {
	FirstName *string         `json:"first_name,omitempty"`
	LastName  *string         `json:"last_name,omitempty"`
	Email     *string         `json:"email,omitempty"`
	Phone     *string         `json:"phone,omitempty"`
	BirthDate *time.Time      `json:"birth_date,omitempty"`
	TaxID     *string         `json:"tax_id,omitempty"`
	Address   *shared.Address `json:"address,omitempty"`
}

// PaymentInstrument is a tokenized card saved for a customer.
type PaymentInstrument struct {
	Token     *string    `json:"token,omitempty"`
	Active    bool       `json:"active"`
	Type      *string    `json:"type,omitempty"`
	Card      *Card      `json:"card,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Card is the masked card of a payment instrument.
type Card struct {
	Last4Digits *string `json:"last_4_digits,omitempty"`
	Type        *string `json:"type,omitempty"`
}

var types = []*hydrate.TargetType{
	hydrate.NewObject[Customer](CustomerType,
		hydrate.StringField("customer_id", func(c *Customer, v string) { c.CustomerID = v }).Required(),
		hydrate.NestedField("personal_details", "PersonalDetails", func(c *Customer, v *PersonalDetails) { c.PersonalDetails = v }),
	),
	hydrate.NewObject[PersonalDetails](PersonalDetailsType,
		hydrate.StringField("first_name", func(p *PersonalDetails, v string) { p.FirstName = &v }),
		hydrate.StringField("last_name", func(p *PersonalDetails, v string) { p.LastName = &v }),
		hydrate.StringField("email", func(p *PersonalDetails, v string) { p.Email = &v }),
		hydrate.StringField("phone", func(p *PersonalDetails, v string) { p.Phone = &v }),
		hydrate.TimeField("birth_date", func(p *PersonalDetails, v time.Time) { p.BirthDate = &v }),
		hydrate.StringField("tax_id", func(p *PersonalDetails, v string) { p.TaxID = &v }),
		hydrate.NestedField("address", shared.AddressType, func(p *PersonalDetails, v *shared.Address) { p.Address = v }),
	),
	hydrate.NewObject[PaymentInstrument](PaymentInstrumentType,
		hydrate.StringField("token", func(p *PaymentInstrument, v string) { p.Token = &v }),
		hydrate.BoolField("active", func(p *PaymentInstrument, v bool) { p.Active = v }).Required(),
		hydrate.StringField("type", func(p *PaymentInstrument, v string) { p.Type = &v }),
		hydrate.NestedField("card", "Card", func(p *PaymentInstrument, v *Card) { p.Card = v }),
		hydrate.TimeField("created_at", func(p *PaymentInstrument, v time.Time) { p.CreatedAt = &v }),
	),
	hydrate.NewObject[Card](CardType,
		hydrate.StringField("last_4_digits", func(c *Card, v string) { c.Last4Digits = &v }),
		hydrate.StringField("type", func(c *Card, v string) { c.Type = &v }),
	),
}

// Types returns the customer type descriptors.
func Types() []*hydrate.TargetType {
	return append([]*hydrate.TargetType(nil), types...)
}
