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

// Package hydrate turns loosely-typed JSON values into typed SDK objects.
//
// Every result type is described once by a TargetType: an identifier such as
// "checkouts.Checkout", a constructor, and a table of fields. Each field names
// its wire key, its kind and a setter, so hydration never needs reflection:
//
//	var checkoutType = hydrate.NewObject[Checkout]("checkouts.Checkout",
//		hydrate.StringField("id", func(c *Checkout, v string) { c.ID = &v }),
//		hydrate.FloatField("amount", func(c *Checkout, v float64) { c.Amount = &v }),
//		hydrate.EnumField("currency", shared.CurrencyType, func(c *Checkout, v shared.Currency) { c.Currency = &v }),
//		hydrate.ObjectListField("transactions", "CheckoutTransaction", func(c *Checkout, v []CheckoutTransaction) { c.Transactions = v }),
//	)
//
// Types live in a Registry that is handed to the Hydrator. Nested and list
// item types are resolved by identifier, either fully qualified or relative
// to the namespace of the declaring type.
//
// Hydration is lenient: nil stays nil, unknown types and unrecognized shapes
// pass through unchanged, and a value that cannot be assigned leaves the
// field at its zero value. The Hydrator never returns an error.
package hydrate
