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

package merchants

import (
	"time"

	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/sdk/shared"
)

// Type identifiers.
const (
	MerchantType        = "merchants.Merchant"
	CompanyType         = "merchants.Company"
	BusinessProfileType = "merchants.BusinessProfile"
	BrandingType        = "merchants.Branding"
	PersonType          = "merchants.Person"
	OwnershipType       = "merchants.Ownership"
	PersonListType      = "merchants.PersonList"
	ChangeStatusType    = "merchants.ChangeStatus"
)

// ChangeStatus is the review state of a pending change to merchant data.
type ChangeStatus string

const (
	ChangeSubmitted ChangeStatus = "submitted"
	ChangeInReview  ChangeStatus = "in_review"
	ChangeAccepted  ChangeStatus = "accepted"
	ChangeRejected  ChangeStatus = "rejected"
)

// Merchant is a merchant account.
type Merchant struct {
	MerchantCode    string           `json:"merchant_code"`
	OrganizationID  *string          `json:"organization_id,omitempty"`
	BusinessType    *string          `json:"business_type,omitempty"`
	Country         *string          `json:"country,omitempty"`
	Company         *Company         `json:"company,omitempty"`
	BusinessProfile *BusinessProfile `json:"business_profile,omitempty"`
	Avatar          *string          `json:"avatar,omitempty"`
	Alias           *string          `json:"alias,omitempty"`
	DefaultCurrency *shared.Currency `json:"default_currency,omitempty"`
	DefaultLocale   *string          `json:"default_locale,omitempty"`
	Sandbox         bool             `json:"sandbox"`
	Meta            any              `json:"meta,omitempty"`
	Version         *string          `json:"version,omitempty"`
	ChangeStatus    *ChangeStatus    `json:"change_status,omitempty"`
	CreatedAt       *time.Time       `json:"created_at,omitempty"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty"`
}

// Company is the legal entity behind a merchant.
type Company struct {
	Name           *string         `json:"name,omitempty"`
	LegalType      *string         `json:"legal_type,omitempty"`
	Address        *shared.Address `json:"address,omitempty"`
	TradingAddress *shared.Address `json:"trading_address,omitempty"`
	VATID          *string         `json:"vat_id,omitempty"`
	Website        *string         `json:"website,omitempty"`
	PhoneNumber    *string         `json:"phone_number,omitempty"`
}

// BusinessProfile is the public face of a merchant.
type BusinessProfile struct {
	Name              *string         `json:"name,omitempty"`
	DynamicDescriptor *string         `json:"dynamic_descriptor,omitempty"`
	Website           *string         `json:"website,omitempty"`
	Email             *string         `json:"email,omitempty"`
	PhoneNumber       *string         `json:"phone_number,omitempty"`
	Address           *shared.Address `json:"address,omitempty"`
	Branding          *Branding       `json:"branding,omitempty"`
}

// Branding holds the visual identity of a merchant.
type Branding struct {
	Icon            *string `json:"icon,omitempty"`
	Logo            *string `json:"logo,omitempty"`
	Hero            *string `json:"hero,omitempty"`
	PrimaryColor    *string `json:"primary_color,omitempty"`
	PrimaryColorFg  *string `json:"primary_color_fg,omitempty"`
	SecondaryColor  *string `json:"secondary_color,omitempty"`
	BackgroundColor *string `json:"background_color,omitempty"`
}

// Person is a natural person related to a merchant, such as an owner or
// legal representative.
type Person struct {
	ID            string          `json:"id"`
	UserID        *string         `json:"user_id,omitempty"`
	GivenName     *string         `json:"given_name,omitempty"`
	FamilyName    *string         `json:"family_name,omitempty"`
	Birthdate     *time.Time      `json:"birthdate,omitempty"`
	Nationality   *string         `json:"nationality,omitempty"`
	Citizenship   *string         `json:"citizenship,omitempty"`
	PhoneNumber   *string         `json:"phone_number,omitempty"`
	Relationships []string        `json:"relationships,omitempty"`
	Ownership     *Ownership      `json:"ownership,omitempty"`
	Address       *shared.Address `json:"address,omitempty"`
	Version       *string         `json:"version,omitempty"`
	ChangeStatus  *ChangeStatus   `json:"change_status,omitempty"`
}

// Ownership is the share of a merchant a person holds.
type Ownership struct {
	Share *float64 `json:"share,omitempty"`
}

// PersonList is a page of persons.
type PersonList struct {
	Items []Person `json:"items,omitempty"`
}

var types = []*hydrate.TargetType{
	hydrate.NewEnum(ChangeStatusType, ChangeSubmitted, ChangeInReview, ChangeAccepted, ChangeRejected),
	hydrate.NewObject[Merchant](MerchantType,
		hydrate.StringField("merchant_code", func(m *Merchant, v string) { m.MerchantCode = v }).Required(),
		hydrate.StringField("organization_id", func(m *Merchant, v string) { m.OrganizationID = &v }),
		hydrate.StringField("business_type", func(m *Merchant, v string) { m.BusinessType = &v }),
		hydrate.StringField("country", func(m *Merchant, v string) { m.Country = &v }),
		hydrate.NestedField("company", "Company", func(m *Merchant, v *Company) { m.Company = v }),
		hydrate.NestedField("business_profile", "BusinessProfile", func(m *Merchant, v *BusinessProfile) { m.BusinessProfile = v }),
		hydrate.StringField("avatar", func(m *Merchant, v string) { m.Avatar = &v }),
		hydrate.StringField("alias", func(m *Merchant, v string) { m.Alias = &v }),
		hydrate.EnumField("default_currency", shared.CurrencyType, func(m *Merchant, v shared.Currency) { m.DefaultCurrency = &v }),
		hydrate.StringField("default_locale", func(m *Merchant, v string) { m.DefaultLocale = &v }),
		hydrate.BoolField("sandbox", func(m *Merchant, v bool) { m.Sandbox = v }).Required(),
		hydrate.MixedField("meta", func(m *Merchant, v any) { m.Meta = v }),
		hydrate.StringField("version", func(m *Merchant, v string) { m.Version = &v }),
		hydrate.EnumField("change_status", "ChangeStatus", func(m *Merchant, v ChangeStatus) { m.ChangeStatus = &v }),
		hydrate.TimeField("created_at", func(m *Merchant, v time.Time) { m.CreatedAt = &v }),
		hydrate.TimeField("updated_at", func(m *Merchant, v time.Time) { m.UpdatedAt = &v }),
	),
	hydrate.NewObject[Company](CompanyType,
		hydrate.StringField("name", func(c *Company, v string) { c.Name = &v }),
		hydrate.StringField("legal_type", func(c *Company, v string) { c.LegalType = &v }),
		hydrate.NestedField("address", shared.AddressType, func(c *Company, v *shared.Address) { c.Address = v }),
		hydrate.NestedField("trading_address", shared.AddressType, func(c *Company, v *shared.Address) { c.TradingAddress = v }),
		hydrate.StringField("vat_id", func(c *Company, v string) { c.VATID = &v }),
		hydrate.StringField("website", func(c *Company, v string) { c.Website = &v }),
		hydrate.StringField("phone_number", func(c *Company, v string) { c.PhoneNumber = &v }),
	),
	hydrate.NewObject[BusinessProfile](BusinessProfileType,
		hydrate.StringField("name", func(b *BusinessProfile, v string) { b.Name = &v }),
		hydrate.StringField("dynamic_descriptor", func(b *BusinessProfile, v string) { b.DynamicDescriptor = &v }),
		hydrate.StringField("website", func(b *BusinessProfile, v string) { b.Website = &v }),
		hydrate.StringField("email", func(b *BusinessProfile, v string) { b.Email = &v }),
		hydrate.StringField("phone_number", func(b *BusinessProfile, v string) { b.PhoneNumber = &v }),
		hydrate.NestedField("address", shared.AddressType, func(b *BusinessProfile, v *shared.Address) { b.Address = v }),
		hydrate.NestedField("branding", "Branding", func(b *BusinessProfile, v *Branding) { b.Branding = v }),
	),
	hydrate.NewObject[Branding](BrandingType,
		hydrate.StringField("icon", func(b *Branding, v string) { b.Icon = &v }),
		hydrate.StringField("logo", func(b *Branding, v string) { b.Logo = &v }),
		hydrate.StringField("hero", func(b *Branding, v string) { b.Hero = &v }),
		hydrate.StringField("primary_color", func(b *Branding, v string) { b.PrimaryColor = &v }),
		hydrate.StringField("primary_color_fg", func(b *Branding, v string) { b.PrimaryColorFg = &v }),
		hydrate.StringField("secondary_color", func(b *Branding, v string) { b.SecondaryColor = &v }),
		hydrate.StringField("background_color", func(b *Branding, v string) { b.BackgroundColor = &v }),
	),
	hydrate.NewObject[Person](PersonType,
		hydrate.StringField("id", func(p *Person, v string) { p.ID = v }).Required(),
		hydrate.StringField("user_id", func(p *Person, v string) { p.UserID = &v }),
		hydrate.StringField("given_name", func(p *Person, v string) { p.GivenName = &v }),
		hydrate.StringField("family_name", func(p *Person, v string) { p.FamilyName = &v }),
		hydrate.TimeField("birthdate", func(p *Person, v time.Time) { p.Birthdate = &v }),
		hydrate.StringField("nationality", func(p *Person, v string) { p.Nationality = &v }),
		hydrate.StringField("citizenship", func(p *Person, v string) { p.Citizenship = &v }),
		hydrate.StringField("phone_number", func(p *Person, v string) { p.PhoneNumber = &v }),
		hydrate.ListOfField("relationships", hydrate.ScalarString, func(p *Person, v []string) { p.Relationships = v }),
		hydrate.NestedField("ownership", "Ownership", func(p *Person, v *Ownership) { p.Ownership = v }),
		hydrate.NestedField("address", shared.AddressType, func(p *Person, v *shared.Address) { p.Address = v }),
		hydrate.StringField("version", func(p *Person, v string) { p.Version = &v }),
		hydrate.EnumField("change_status", "ChangeStatus", func(p *Person, v ChangeStatus) { p.ChangeStatus = &v }),
	),
	hydrate.NewObject[Ownership](OwnershipType,
		hydrate.FloatField("share", func(o *Ownership, v float64) { o.Share = &v }),
	),
	hydrate.NewObject[PersonList](PersonListType,
		hydrate.ObjectListField("items", "Person", func(l *PersonList, v []Person) { l.Items = v }),
	),
}

// Types returns the merchant type descriptors.
func Types() []*hydrate.TargetType {
	return append([]*hydrate.TargetType(nil), types...)
}
