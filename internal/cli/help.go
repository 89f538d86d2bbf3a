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

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tombee/paykit/internal/commands/shared"
)

// flagEnv names the environment variable each flag falls back to.
var flagEnv = map[string]string{
	"base-url": "PAYKIT_BASE_URL",
	"merchant": "PAYKIT_MERCHANT_CODE",
}

// Reference is the machine-readable CLI reference printed by 'help --json'.
type Reference struct {
	shared.JSONResponse
	Commands    []CommandRef           `json:"commands,omitempty"`
	Target      *CommandRef            `json:"target,omitempty"`
	GlobalFlags []FlagRef              `json:"global_flags"`
	ExitCodes   []shared.ExitCodeInfo  `json:"exit_codes"`
	ErrorCodes  []shared.ErrorCodeInfo `json:"error_codes"`
}

// CommandRef describes one command and, recursively, its subcommands.
type CommandRef struct {
	Path     string       `json:"path"`
	Summary  string       `json:"summary"`
	Usage    string       `json:"usage"`
	Group    string       `json:"group,omitempty"`
	Aliases  []string     `json:"aliases,omitempty"`
	Merchant bool         `json:"merchant_scoped,omitempty"`
	Runnable bool         `json:"runnable"`
	Examples string       `json:"examples,omitempty"`
	Flags    []FlagRef    `json:"flags,omitempty"`
	Commands []CommandRef `json:"commands,omitempty"`
}

// FlagRef describes one flag.
type FlagRef struct {
	Name      string `json:"name"`
	Shorthand string `json:"shorthand,omitempty"`
	Type      string `json:"type"`
	Usage     string `json:"usage"`
	Default   string `json:"default,omitempty"`
	Required  bool   `json:"required,omitempty"`
	Env       string `json:"env,omitempty"`
}

// NewHelpCommand creates the help command. With --json it prints a
// Reference for the whole tree or for one command.
func NewHelpCommand(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Long: `Help provides detailed information about commands and their usage.

Run 'paykit help' to see all available commands.
Run 'paykit help <command>' to see detailed help for a specific command.
Use --json to get a machine-readable reference including exit codes
and JSON error codes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := rootCmd
			if len(args) > 0 {
				found, rest, err := rootCmd.Find(args)
				if err != nil || len(rest) > 0 {
					return shared.NewUsageError(fmt.Sprintf("unknown command %q", args[0]), err)
				}
				target = found
			}

			if shared.GetJSON() {
				return shared.EmitJSON(cmd.OutOrStdout(), buildReference(rootCmd, target))
			}
			if err := target.Help(); err != nil {
				return err
			}
			if target == rootCmd {
				writeExitCodes(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func buildReference(rootCmd, target *cobra.Command) Reference {
	ref := Reference{
		JSONResponse: shared.JSONResponse{
			Version: "1.0",
			Command: "help",
			Success: true,
		},
		GlobalFlags: flagRefs(rootCmd.PersistentFlags()),
		ExitCodes:   shared.ExitCodes,
		ErrorCodes:  shared.ErrorCodes,
	}
	if target == rootCmd {
		ref.Commands = commandRefs(rootCmd)
		return ref
	}
	ref.Command = "help " + strings.TrimPrefix(target.CommandPath(), rootCmd.Name()+" ")
	c := commandRef(target)
	ref.Target = &c
	return ref
}

func commandRefs(parent *cobra.Command) []CommandRef {
	var refs []CommandRef
	for _, c := range parent.Commands() {
		if c.Hidden || c.Name() == "help" {
			continue
		}
		refs = append(refs, commandRef(c))
	}
	return refs
}

func commandRef(c *cobra.Command) CommandRef {
	ref := CommandRef{
		Path:     c.CommandPath(),
		Summary:  c.Short,
		Usage:    c.UseLine(),
		Group:    c.Annotations["group"],
		Aliases:  c.Aliases,
		Runnable: c.Runnable(),
		Examples: c.Example,
		Flags:    flagRefs(c.LocalNonPersistentFlags()),
		Commands: commandRefs(c),
	}
	ref.Merchant = c.LocalNonPersistentFlags().Lookup("merchant") != nil
	return ref
}

func flagRefs(fs *pflag.FlagSet) []FlagRef {
	var refs []FlagRef
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		ref := FlagRef{
			Name:      f.Name,
			Shorthand: f.Shorthand,
			Type:      f.Value.Type(),
			Usage:     f.Usage,
			Env:       flagEnv[f.Name],
		}
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "[]" && f.DefValue != "0s" {
			ref.Default = f.DefValue
		}
		if ann := f.Annotations[cobra.BashCompOneRequiredFlag]; len(ann) > 0 && ann[0] == "true" {
			ref.Required = true
		}
		refs = append(refs, ref)
	})
	return refs
}

func writeExitCodes(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, ec := range shared.ExitCodes {
		fmt.Fprintf(tw, "  %d\t%s\t%s\n", ec.Code, ec.Name, ec.Description)
	}
	_ = tw.Flush()
}
