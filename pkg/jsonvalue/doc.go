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

// Package jsonvalue holds the loosely-typed values decoded from API response
// bodies before they are hydrated into typed results.
//
// A raw value is one of:
//   - *Object: a JSON object with its key order preserved
//   - []any: a JSON array
//   - string, int64, float64, bool
//   - nil: JSON null
//
// Key order matters because "array" shaped payloads are sometimes sent as
// keyed objects, and casting them must keep both the keys and their order.
package jsonvalue
