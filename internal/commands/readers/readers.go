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

// Package readers implements the "paykit readers" commands.
package readers

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/commands/shared"
	"github.com/tombee/paykit/sdk/readers"
)

// NewCommand creates the readers command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "readers",
		Aliases:     []string{"reader"},
		Short:       "Inspect paired card readers",
		Annotations: map[string]string{"group": "in-person"},
	}
	cmd.AddCommand(newListCommand(), newGetCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	var merchant string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the readers of a merchant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shared.RunAPI(cmd, func(ctx context.Context, env *shared.Env) (*readers.ReaderList, error) {
				code, err := env.MerchantCode(merchant)
				if err != nil {
					return nil, err
				}
				return env.Client.Readers.List(ctx, code)
			}, renderList)
		},
	}
	shared.AddMerchantFlag(cmd, &merchant)
	return cmd
}

func newGetCommand() *cobra.Command {
	var merchant string

	cmd := &cobra.Command{
		Use:   "get <reader-id>",
		Short: "Show a reader",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return shared.RunAPI(cmd, func(ctx context.Context, env *shared.Env) (*readers.Reader, error) {
				code, err := env.MerchantCode(merchant)
				if err != nil {
					return nil, err
				}
				return env.Client.Readers.Get(ctx, code, args[0])
			}, renderReader)
		},
	}
	shared.AddMerchantFlag(cmd, &merchant)
	return cmd
}

func renderReader(w io.Writer, r *readers.Reader) {
	if r == nil {
		fmt.Fprintln(w, "No reader returned.")
		return
	}
	var identifier, model string
	if r.Device != nil {
		identifier = r.Device.Identifier
		model = shared.Str(r.Device.Model)
	}
	shared.Fields(w, "Reader "+r.ID,
		"Name", shared.Str(r.Name),
		"Status", shared.RenderStatus(shared.Str(r.Status)),
		"Device", identifier,
		"Model", model,
		"Created", shared.Time(r.CreatedAt),
		"Updated", shared.Time(r.UpdatedAt),
	)
}

func renderList(w io.Writer, list *readers.ReaderList) {
	if list == nil || len(list.Items) == 0 {
		fmt.Fprintln(w, "No readers paired.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tMODEL")
	for _, r := range list.Items {
		model := ""
		if r.Device != nil {
			model = shared.Str(r.Device.Model)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, shared.Str(r.Name), shared.Str(r.Status), model)
	}
	tw.Flush()
}
