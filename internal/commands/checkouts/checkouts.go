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

// Package checkouts implements the "paykit checkouts" commands.
package checkouts

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/commands/completion"
	"github.com/tombee/paykit/internal/commands/shared"
	"github.com/tombee/paykit/sdk/checkouts"
	sdkshared "github.com/tombee/paykit/sdk/shared"
)

// NewCommand creates the checkouts command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "checkouts",
		Aliases:     []string{"checkout"},
		Short:       "Create and inspect online checkouts",
		Annotations: map[string]string{"group": "payments"},
	}
	cmd.AddCommand(newCreateCommand(), newGetCommand(), newListCommand(), newDeactivateCommand())
	return cmd
}

type createOptions struct {
	merchant    string
	amount      float64
	currency    string
	reference   string
	description string
	returnURL   string
	redirectURL string
	customer    string
	validFor    time.Duration
}

func newCreateCommand() *cobra.Command {
	var opts createOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a checkout",
		Long: `Create a checkout for the merchant. A checkout reference is generated
when --reference is not given.`,
		Example: `  paykit checkouts create --amount 10.50 --currency EUR
  paykit checkouts create --amount 5 --currency GBP --reference order-42 --valid-for 30m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shared.RunAPI(cmd, func(ctx context.Context, env *shared.Env) (*checkouts.Checkout, error) {
				req, err := opts.request(env)
				if err != nil {
					return nil, err
				}
				return env.Client.Checkouts.Create(ctx, req)
			}, renderCheckout)
		},
	}

	shared.AddMerchantFlag(cmd, &opts.merchant)
	cmd.Flags().Float64Var(&opts.amount, "amount", 0, "Amount to charge")
	cmd.Flags().StringVar(&opts.currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&opts.reference, "reference", "", "Unique checkout reference")
	cmd.Flags().StringVar(&opts.description, "description", "", "Description shown to the payer")
	cmd.Flags().StringVar(&opts.returnURL, "return-url", "", "URL notified of payment events")
	cmd.Flags().StringVar(&opts.redirectURL, "redirect-url", "", "URL the payer returns to after 3-D Secure")
	cmd.Flags().StringVar(&opts.customer, "customer", "", "Customer ID for saved payment instruments")
	cmd.Flags().DurationVar(&opts.validFor, "valid-for", 0, "Expire the checkout after this long")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("currency")
	_ = cmd.RegisterFlagCompletionFunc("currency", completion.CompleteCurrencies)

	return cmd
}

func (o *createOptions) request(env *shared.Env) (checkouts.CreateRequest, error) {
	merchant, err := env.MerchantCode(o.merchant)
	if err != nil {
		return checkouts.CreateRequest{}, err
	}
	if o.amount <= 0 {
		return checkouts.CreateRequest{}, shared.NewUsageError("--amount must be greater than zero", nil)
	}

	req := checkouts.CreateRequest{
		CheckoutReference: o.reference,
		Amount:            o.amount,
		Currency:          sdkshared.Currency(strings.ToUpper(o.currency)),
		MerchantCode:      merchant,
		Description:       o.description,
		ReturnURL:         o.returnURL,
		RedirectURL:       o.redirectURL,
		CustomerID:        o.customer,
	}
	if req.CheckoutReference == "" {
		req.CheckoutReference = uuid.NewString()
	}
	if o.validFor > 0 {
		until := time.Now().Add(o.validFor).UTC()
		req.ValidUntil = &until
	}
	return req, nil
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a checkout",
		Example: "  paykit checkouts get 4e425463-3e1b-431d-83fa-1e51c2925e99",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return shared.RunAPI(cmd, func(ctx context.Context, env *shared.Env) (*checkouts.Checkout, error) {
				return env.Client.Checkouts.Get(ctx, args[0])
			}, renderCheckout)
		},
	}
}

func newListCommand() *cobra.Command {
	var reference string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checkouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shared.RunAPI(cmd, func(ctx context.Context, env *shared.Env) ([]*checkouts.Checkout, error) {
				return env.Client.Checkouts.List(ctx, checkouts.ListParams{CheckoutReference: reference})
			}, renderCheckoutList)
		},
	}
	cmd.Flags().StringVar(&reference, "reference", "", "Only checkouts with this reference")
	return cmd
}

func newDeactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Expire a pending checkout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return shared.RunAPI(cmd, func(ctx context.Context, env *shared.Env) (*checkouts.Checkout, error) {
				return env.Client.Checkouts.Deactivate(ctx, args[0])
			}, renderCheckout)
		},
	}
}

func renderCheckout(w io.Writer, c *checkouts.Checkout) {
	if c == nil {
		fmt.Fprintln(w, "No checkout returned.")
		return
	}
	shared.Fields(w, "Checkout "+shared.Str(c.ID),
		"Reference", shared.Str(c.CheckoutReference),
		"Status", shared.RenderStatus(shared.Str(c.Status)),
		"Amount", shared.Money(c.Amount, c.Currency),
		"Merchant", shared.Str(c.MerchantCode),
		"Description", shared.Str(c.Description),
		"Created", shared.Time(c.Date),
		"Valid until", shared.Time(c.ValidUntil),
	)
	if len(c.Transactions) == 0 {
		return
	}
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRANSACTION\tSTATUS\tAMOUNT\tTIME")
	for _, t := range c.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			shared.Str(t.TransactionCode), shared.Str(t.Status),
			shared.Money(t.Amount, t.Currency), shared.Time(t.Timestamp))
	}
	tw.Flush()
}

func renderCheckoutList(w io.Writer, list []*checkouts.Checkout) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No checkouts found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tREFERENCE\tSTATUS\tAMOUNT\tCREATED")
	for _, c := range list {
		if c == nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			shared.Str(c.ID), shared.Str(c.CheckoutReference), shared.Str(c.Status),
			shared.Money(c.Amount, c.Currency), shared.Time(c.Date))
	}
	tw.Flush()
}
