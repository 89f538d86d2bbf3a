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

// Package merchant implements the "paykit merchant" commands.
package merchant

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/commands/shared"
	"github.com/tombee/paykit/sdk/merchants"
	sdkshared "github.com/tombee/paykit/sdk/shared"
)

// NewCommand creates the merchant command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "merchant",
		Short:       "Inspect the merchant account",
		Annotations: map[string]string{"group": "account"},
	}
	cmd.AddCommand(newGetCommand())
	return cmd
}

func newGetCommand() *cobra.Command {
	var (
		code   string
		params merchants.GetParams
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the merchant profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shared.RunAPI(cmd, func(ctx context.Context, env *shared.Env) (*merchants.Merchant, error) {
				mc, err := env.MerchantCode(code)
				if err != nil {
					return nil, err
				}
				return env.Client.Merchants.Get(ctx, mc, params)
			}, render)
		},
	}

	shared.AddMerchantFlag(cmd, &code)
	cmd.Flags().StringVar(&params.Version, "version", "", "Profile version: latest or a pending change")
	return cmd
}

func render(w io.Writer, m *merchants.Merchant) {
	if m == nil {
		fmt.Fprintln(w, "No merchant returned.")
		return
	}
	var name, website, address string
	if m.Company != nil {
		name = shared.Str(m.Company.Name)
		website = shared.Str(m.Company.Website)
		address = formatAddress(m.Company.Address)
	}
	sandbox := "no"
	if m.Sandbox {
		sandbox = "yes"
	}
	shared.Fields(w, "Merchant "+m.MerchantCode,
		"Name", name,
		"Country", shared.Str(m.Country),
		"Business type", shared.Str(m.BusinessType),
		"Currency", shared.Str(m.DefaultCurrency),
		"Locale", shared.Str(m.DefaultLocale),
		"Website", website,
		"Address", address,
		"Sandbox", sandbox,
	)
}

func formatAddress(a *sdkshared.Address) string {
	if a == nil {
		return ""
	}
	var parts []string
	for _, p := range []*string{a.Line1, a.Line2, a.PostalCode, a.City, a.Country} {
		if s := shared.Str(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
