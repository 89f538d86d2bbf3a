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

package readers

import (
	"time"

	"github.com/tombee/paykit/pkg/hydrate"
)

// Type identifiers.
const (
	ReaderType           = "readers.Reader"
	DeviceType           = "readers.Device"
	ModelType            = "readers.Model"
	StatusType           = "readers.Status"
	ReaderListType       = "readers.ReaderList"
	CheckoutResponseType = "readers.CheckoutResponse"
	CheckoutDataType     = "readers.CheckoutData"
)

// Model is the hardware model of a reader.
type Model string

const (
	ModelSolo        Model = "solo"
	ModelVirtualSolo Model = "virtual-solo"
)

// Status is the pairing state of a reader.
type Status string

const (
	StatusUnknown    Status = "unknown"
	StatusProcessing Status = "processing"
	StatusPaired     Status = "paired"
	StatusExpired    Status = "expired"
)

// Reader is a card reader paired with a merchant account.
type Reader struct {
	ID        string     `json:"id"`
	Name      *string    `json:"name,omitempty"`
	Status    *Status    `json:"status,omitempty"`
	Device    *Device    `json:"device,omitempty"`
	Metadata  any        `json:"metadata,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Device identifies the physical reader.
type Device struct {
	Identifier string `json:"identifier"`
	Model      *Model `json:"model,omitempty"`
}

// ReaderList is the list of readers of a merchant.
type ReaderList struct {
	Items []Reader `json:"items,omitempty"`
}

// CheckoutResponse is returned when a checkout is sent to a reader.
type CheckoutResponse struct {
	Data *CheckoutData `json:"data,omitempty"`
}

// CheckoutData identifies the transaction the reader started.
type CheckoutData struct {
	ClientTransactionID *string `json:"client_transaction_id,omitempty"`
}

var types = []*hydrate.TargetType{
	hydrate.NewEnum(ModelType, ModelSolo, ModelVirtualSolo),
	hydrate.NewEnum(StatusType, StatusUnknown, StatusProcessing, StatusPaired, StatusExpired),
	hydrate.NewObject[Reader](ReaderType,
		hydrate.StringField("id", func(r *Reader, v string) { r.ID = v }).Required(),
		hydrate.StringField("name", func(r *Reader, v string) { r.Name = &v }),
		hydrate.EnumField("status", "Status", func(r *Reader, v Status) { r.Status = &v }),
		hydrate.NestedField("device", "Device", func(r *Reader, v *Device) { r.Device = v }),
		hydrate.MixedField("metadata", func(r *Reader, v any) { r.Metadata = v }),
		hydrate.TimeField("created_at", func(r *Reader, v time.Time) { r.CreatedAt = &v }),
		hydrate.TimeField("updated_at", func(r *Reader, v time.Time) { r.UpdatedAt = &v }),
	),
	hydrate.NewObject[Device](DeviceType,
		hydrate.StringField("identifier", func(d *Device, v string) { d.Identifier = v }).Required(),
		hydrate.EnumField("model", "Model", func(d *Device, v Model) { d.Model = &v }),
	),
	hydrate.NewObject[ReaderList](ReaderListType,
		hydrate.ObjectListField("items", "Reader", func(l *ReaderList, v []Reader) { l.Items = v }),
	),
	hydrate.NewObject[CheckoutResponse](CheckoutResponseType,
		hydrate.NestedField("data", "CheckoutData", func(r *CheckoutResponse, v *CheckoutData) { r.Data = v }),
	),
	hydrate.NewObject[CheckoutData](CheckoutDataType,
		hydrate.StringField("client_transaction_id", func(d *CheckoutData, v string) { d.ClientTransactionID = &v }),
	),
}

// Types returns the reader type descriptors.
func Types() []*hydrate.TargetType {
	return append([]*hydrate.TargetType(nil), types...)
}
