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

// Package transactions implements the "paykit transactions" commands.
package transactions

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/commands/completion"
	"github.com/tombee/paykit/internal/commands/shared"
	"github.com/tombee/paykit/sdk/transactions"
)

// NewCommand creates the transactions command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "transactions",
		Aliases:     []string{"tx"},
		Short:       "Inspect transactions and transaction history",
		Annotations: map[string]string{"group": "payments"},
	}
	cmd.AddCommand(newGetCommand(), newListCommand())
	return cmd
}

func newGetCommand() *cobra.Command {
	var (
		merchant string
		params   transactions.GetParams
	)

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show a transaction",
		Long: `Show one transaction, identified by its ID or by exactly one of
--code, --internal-id or --foreign-id.`,
		Example: `  paykit transactions get 6b425463-3e1b-431d-83fa-1e51c2925e99
  paykit transactions get --code TEENSK4W2K`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				params.ID = args[0]
			}
			return shared.RunAPI(cmd, func(ctx context.Context, env *shared.Env) (*transactions.Transaction, error) {
				code, err := env.MerchantCode(merchant)
				if err != nil {
					return nil, err
				}
				return env.Client.Transactions.Get(ctx, code, params)
			}, renderTransaction)
		},
	}

	shared.AddMerchantFlag(cmd, &merchant)
	cmd.Flags().StringVar(&params.TransactionCode, "code", "", "Transaction code")
	cmd.Flags().StringVar(&params.InternalID, "internal-id", "", "Internal transaction ID")
	cmd.Flags().StringVar(&params.ForeignTransactionID, "foreign-id", "", "Foreign transaction ID")
	cmd.MarkFlagsMutuallyExclusive("code", "internal-id", "foreign-id")
	return cmd
}

func newListCommand() *cobra.Command {
	var (
		merchant     string
		limit        int
		order        string
		statuses     []string
		paymentTypes []string
		since        string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the transaction history of a merchant",
		Example: `  paykit transactions list --limit 20 --status SUCCESSFUL
  paykit transactions list --since 2025-01-01 --jq '.items[].transaction_code'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := transactions.ListParams{Limit: limit, Order: order, PaymentTypes: paymentTypes}
			for _, s := range statuses {
				params.Statuses = append(params.Statuses, transactions.Status(strings.ToUpper(s)))
			}
			if since != "" {
				t, err := parseTime(since)
				if err != nil {
					return shared.NewUsageError("invalid --since value", err)
				}
				params.ChangesSince = t
			}
			if order != "" && order != "ascending" && order != "descending" {
				return shared.NewUsageError(fmt.Sprintf("--order must be ascending or descending, got %q", order), nil)
			}

			return shared.RunAPI(cmd, func(ctx context.Context, env *shared.Env) (*transactions.History, error) {
				code, err := env.MerchantCode(merchant)
				if err != nil {
					return nil, err
				}
				return env.Client.Transactions.List(ctx, code, params)
			}, renderHistory)
		},
	}

	shared.AddMerchantFlag(cmd, &merchant)
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of transactions")
	cmd.Flags().StringVar(&order, "order", "", "Sort order: ascending or descending")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Only transactions in these statuses")
	cmd.Flags().StringSliceVar(&paymentTypes, "payment-type", nil, "Only transactions of these payment types")
	cmd.Flags().StringVar(&since, "since", "", "Only transactions changed since this date or RFC 3339 time")
	_ = cmd.RegisterFlagCompletionFunc("order", completion.Values("ascending", "descending"))
	_ = cmd.RegisterFlagCompletionFunc("status", completion.CompleteTransactionStatuses)
	return cmd
}

// parseTime accepts an RFC 3339 timestamp or a plain date.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

func renderTransaction(w io.Writer, tx *transactions.Transaction) {
	if tx == nil {
		fmt.Fprintln(w, "No transaction returned.")
		return
	}
	card := ""
	if tx.Card != nil {
		card = strings.TrimSpace(shared.Str(tx.Card.Type) + " " + shared.Str(tx.Card.Last4Digits))
	}
	shared.Fields(w, "Transaction "+shared.Str(tx.TransactionCode),
		"ID", shared.Str(tx.ID),
		"Status", shared.RenderStatus(shared.Str(tx.Status)),
		"Amount", shared.Money(tx.Amount, tx.Currency),
		"Payment type", shared.Str(tx.PaymentType),
		"Card", card,
		"Time", shared.Time(tx.Timestamp),
		"Merchant", shared.Str(tx.MerchantCode),
	)
	if len(tx.Events) == 0 {
		return
	}
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EVENT\tSTATUS\tAMOUNT\tTIME")
	for _, e := range tx.Events {
		amount := ""
		if e.Amount != nil {
			amount = shared.FormatMoney(*e.Amount, shared.Str(tx.Currency))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shared.Str(e.Type), shared.Str(e.Status), amount, shared.Time(e.Timestamp))
	}
	tw.Flush()
}

func renderHistory(w io.Writer, h *transactions.History) {
	if h == nil || len(h.Items) == 0 {
		fmt.Fprintln(w, "No transactions found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tSTATUS\tAMOUNT\tTYPE\tTIME")
	for _, tx := range h.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			shared.Str(tx.TransactionCode), shared.Str(tx.Status),
			shared.Money(tx.Amount, tx.Currency), shared.Str(tx.PaymentType), shared.Time(tx.Timestamp))
	}
	tw.Flush()
	for _, l := range h.Links {
		if shared.Str(l.Rel) == "next" {
			fmt.Fprintln(w, shared.Muted.Render("More results available: "+shared.Str(l.Href)))
		}
	}
}
