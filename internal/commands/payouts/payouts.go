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

// Package payouts implements the "paykit payouts" commands.
package payouts

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/commands/completion"
	"github.com/tombee/paykit/internal/commands/shared"
	"github.com/tombee/paykit/sdk/payouts"
)

// NewCommand creates the payouts command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "payouts",
		Short:       "Inspect payouts to the merchant bank account",
		Annotations: map[string]string{"group": "reporting"},
	}
	cmd.AddCommand(newListCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	var (
		merchant string
		from     string
		to       string
		days     int
		limit    int
		order    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payouts in a date range",
		Long: `List payouts between --from and --to (inclusive). Without a range the
last --days days are listed.`,
		Example: `  paykit payouts list --from 2025-01-01 --to 2025-01-31
  paykit payouts list --days 7 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := listParams(time.Now(), from, to, days)
			if err != nil {
				return err
			}
			params.Limit = limit
			params.Order = order

			return shared.RunAPI(cmd, func(ctx context.Context, env *shared.Env) ([]*payouts.FinancialPayout, error) {
				code, err := env.MerchantCode(merchant)
				if err != nil {
					return nil, err
				}
				return env.Client.Payouts.List(ctx, code, params)
			}, renderList)
		},
	}

	shared.AddMerchantFlag(cmd, &merchant)
	cmd.Flags().StringVar(&from, "from", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 30, "Days to list when --from is not set")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of payouts")
	cmd.Flags().StringVar(&order, "order", "", "Sort order: asc or desc")
	_ = cmd.RegisterFlagCompletionFunc("order", completion.Values("asc", "desc"))
	return cmd
}

// listParams resolves the date range flags relative to now.
func listParams(now time.Time, from, to string, days int) (payouts.ListParams, error) {
	end := now
	if to != "" {
		t, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return payouts.ListParams{}, shared.NewUsageError("invalid --to date", err)
		}
		end = t
	}

	var start time.Time
	switch {
	case from != "":
		t, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return payouts.ListParams{}, shared.NewUsageError("invalid --from date", err)
		}
		start = t
	case days > 0:
		start = end.AddDate(0, 0, -days)
	default:
		return payouts.ListParams{}, shared.NewUsageError("--days must be positive", nil)
	}

	if start.After(end) {
		return payouts.ListParams{}, shared.NewUsageError("--from is after --to", nil)
	}
	return payouts.ListParams{StartDate: start, EndDate: end}, nil
}

func renderList(w io.Writer, list []*payouts.FinancialPayout) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No payouts in range.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tSTATUS\tAMOUNT\tFEE\tREFERENCE")
	for _, p := range list {
		if p == nil {
			continue
		}
		date := ""
		if p.Date != nil {
			date = p.Date.Format(time.DateOnly)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			date, shared.Str(p.Type), shared.Str(p.Status),
			shared.Money(p.Amount, p.Currency), shared.Money(p.Fee, p.Currency), shared.Str(p.Reference))
	}
	tw.Flush()
}
