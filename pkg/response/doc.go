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

// Package response turns a raw API response into either a typed error or a
// typed result.
//
// Every response first passes through Classify, which recognizes the API's
// error shapes and the 4xx/5xx status ranges. Responses that are not errors
// are handed to a Decoder together with the operation's Descriptors, a map
// from status code (or DefaultKey) to the ValueShape the body should take:
//
//	descriptors := response.Descriptors{
//		"200": response.Class("checkouts.Checkout"),
//		"202": response.Class("checkouts.CheckoutAccepted"),
//	}
//	result := decoder.Decode(resp, descriptors)
//
// Decoding never fails. Shapes that do not match the body degrade to the raw
// value, so malformed data surfaces as visibly wrong values instead of an
// error.
package response
