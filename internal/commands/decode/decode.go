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

// Package decode implements "paykit decode", which runs a saved response
// body through the classifier and response decoder without calling the API.
package decode

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/commands/completion"
	"github.com/tombee/paykit/internal/commands/shared"
	"github.com/tombee/paykit/internal/config"
	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/pkg/jsonvalue"
	"github.com/tombee/paykit/pkg/response"
	"github.com/tombee/paykit/sdk"
)

type options struct {
	shape      string
	status     int
	noClassify bool
	listTypes  bool
}

// NewCommand creates the decode command.
func NewCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a saved response body into typed values",
		Long: `Decode reads a JSON response body from a file, or stdin when the file
is "-" or omitted, and casts it the way the client would for the given
status code and shape.

Shapes use the notation class<type>, array<shape>, scalar<name>, object,
mixed and void. A bare type identifier such as checkouts.Checkout is a
class shape. Run with --types to list the registered types.

Error bodies are classified first, so a 4xx or 5xx status reports the
typed error and its exit code. Pass --no-classify to decode them anyway.`,
		Example: `  paykit decode checkout.json --shape checkouts.Checkout
  curl -s $URL | paykit decode --status 200 --shape 'array<class<payouts.FinancialPayout>>'
  paykit decode error.json --status 400`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"group": "tools"},
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := sdk.Registry()
			if opts.listTypes {
				return listTypes(cmd, registry)
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd, path)
			if err != nil {
				return err
			}
			return run(cmd, registry, data, opts)
		},
	}

	cmd.Flags().StringVar(&opts.shape, "shape", "mixed", "Shape to cast the body to")
	cmd.Flags().IntVar(&opts.status, "status", 200, "HTTP status code the body was returned with")
	cmd.Flags().BoolVar(&opts.noClassify, "no-classify", false, "Skip error classification")
	cmd.Flags().BoolVar(&opts.listTypes, "types", false, "List registered type identifiers and exit")
	_ = cmd.RegisterFlagCompletionFunc("shape", completion.CompleteShapes)
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, shared.NewUsageError(fmt.Sprintf("cannot read %s", path), err)
	}
	return data, nil
}

func run(cmd *cobra.Command, registry *hydrate.Registry, data []byte, opts options) error {
	shape, err := response.ParseShape(opts.shape)
	if err != nil {
		return shared.NewUsageError("invalid --shape", err)
	}
	if err := checkTypes(registry, shape); err != nil {
		return err
	}

	body, err := jsonvalue.Parse(data)
	if err != nil {
		return shared.NewUsageError("input is not valid JSON", err)
	}

	resp := &response.Response{StatusCode: opts.status, Body: body}
	if !opts.noClassify {
		if err := response.Classify(resp); err != nil {
			return err
		}
	}

	hydrator := hydrate.New(registry, hydrate.WithLogger(shared.NewLogger(config.Default(), cmd.ErrOrStderr())))
	decoded := response.NewDecoder(hydrator).Decode(resp, response.Descriptors{
		strconv.Itoa(opts.status): shape,
	})
	return shared.Output(cmd, decoded, nil)
}

// checkTypes rejects class shapes naming unregistered types. The hydrator
// would pass such bodies through unchanged.
func checkTypes(registry *hydrate.Registry, shape response.ValueShape) error {
	switch shape.Kind {
	case response.ShapeClass:
		if _, ok := registry.Lookup(shape.Target); !ok {
			return shared.NewUsageError(fmt.Sprintf("unknown type %q (see --types)", shape.Target), nil)
		}
	case response.ShapeArray:
		if shape.Items != nil {
			return checkTypes(registry, *shape.Items)
		}
	}
	return nil
}

func listTypes(cmd *cobra.Command, registry *hydrate.Registry) error {
	ids := registry.IDs()
	return shared.Output(cmd, ids, func(w io.Writer) {
		for _, id := range ids {
			fmt.Fprintln(w, id)
		}
	})
}
