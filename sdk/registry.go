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

package sdk

import (
	"sync"

	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/sdk/checkouts"
	"github.com/tombee/paykit/sdk/customers"
	"github.com/tombee/paykit/sdk/members"
	"github.com/tombee/paykit/sdk/memberships"
	"github.com/tombee/paykit/sdk/merchants"
	"github.com/tombee/paykit/sdk/payouts"
	"github.com/tombee/paykit/sdk/readers"
	"github.com/tombee/paykit/sdk/roles"
	"github.com/tombee/paykit/sdk/shared"
	"github.com/tombee/paykit/sdk/subaccounts"
	"github.com/tombee/paykit/sdk/transactions"
)

// Registry returns the registry of every API type. It is built once and
// shared by all clients; registries are read-only after registration.
var Registry = sync.OnceValue(func() *hydrate.Registry {
	return hydrate.NewRegistry().MustRegister(Types()...)
})

// Types returns the type descriptors of every resource package.
func Types() []*hydrate.TargetType {
	var all []*hydrate.TargetType
	for _, table := range [][]*hydrate.TargetType{
		shared.Types(),
		checkouts.Types(),
		customers.Types(),
		merchants.Types(),
		readers.Types(),
		transactions.Types(),
		payouts.Types(),
		roles.Types(),
		members.Types(),
		memberships.Types(),
		subaccounts.Types(),
	} {
		all = append(all, table...)
	}
	return all
}
