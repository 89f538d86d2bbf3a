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

package completion

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/sdk"
	"github.com/tombee/paykit/sdk/shared"
	"github.com/tombee/paykit/sdk/transactions"
)

// CompletionFunc is the signature cobra expects for flag value completion.
type CompletionFunc func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

// SafeCompletionWrapper wraps a completion function with panic recovery.
// Returns empty completion list on panic.
func SafeCompletionWrapper(fn func() ([]string, cobra.ShellCompDirective)) (results []string, directive cobra.ShellCompDirective) {
	results = []string{}
	directive = cobra.ShellCompDirectiveNoFileComp

	defer func() {
		if r := recover(); r != nil {
			results = []string{}
			directive = cobra.ShellCompDirectiveNoFileComp
		}
	}()

	results, directive = fn()
	if results == nil {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}
	return results, directive
}

// Values completes a fixed set of values. Entries may carry a description
// after a tab.
func Values(values ...string) CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return SafeCompletionWrapper(func() ([]string, cobra.ShellCompDirective) {
			return filterPrefix(values, toComplete), cobra.ShellCompDirectiveNoFileComp
		})
	}
}

// CompleteCurrencies provides completion for --currency flag values.
func CompleteCurrencies(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	currencies := []shared.Currency{
		shared.CurrencyBGN, shared.CurrencyBRL, shared.CurrencyCHF, shared.CurrencyCLP,
		shared.CurrencyCZK, shared.CurrencyDKK, shared.CurrencyEUR, shared.CurrencyGBP,
		shared.CurrencyHRK, shared.CurrencyHUF, shared.CurrencyNOK, shared.CurrencyPLN,
		shared.CurrencyRON, shared.CurrencySEK, shared.CurrencyUSD,
	}
	values := make([]string, len(currencies))
	for i, c := range currencies {
		values[i] = string(c)
	}
	return Values(values...)(cmd, args, strings.ToUpper(toComplete))
}

// CompleteTransactionStatuses provides completion for --status flag values.
func CompleteTransactionStatuses(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return Values(
		string(transactions.StatusSuccessful)+"\tPayment completed",
		string(transactions.StatusCancelled)+"\tPayment was cancelled or refunded",
		string(transactions.StatusFailed)+"\tPayment failed",
		string(transactions.StatusPending)+"\tPayment is in progress",
	)(cmd, args, strings.ToUpper(toComplete))
}

// CompleteShapes provides completion for the decode --shape flag: the
// generic shapes plus class<id> for every registered type.
func CompleteShapes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return SafeCompletionWrapper(func() ([]string, cobra.ShellCompDirective) {
		return filterPrefix(shapeValues(sdk.Registry()), toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func shapeValues(registry *hydrate.Registry) []string {
	values := []string{
		"mixed\tPass the body through unchanged",
		"object\tDecode to a plain object",
		"array\tDecode to a list",
		"void\tDiscard the body",
	}
	for _, id := range registry.IDs() {
		values = append(values, "class<"+id+">")
	}
	return values
}

func filterPrefix(values []string, prefix string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		name, _, _ := strings.Cut(v, "\t")
		if strings.HasPrefix(name, prefix) {
			out = append(out, v)
		}
	}
	return out
}
