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
	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/commands/shared"
)

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	shared.SetVersion(v, c, b)
}

// NewRootCommand creates the root Cobra command for paykit
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paykit",
		Short: "paykit - payments API from the command line",
		Long: `paykit is a command-line client for the payments API. It creates and
inspects checkouts, lists transactions and payouts, and manages card readers.

Run 'paykit auth login' to store an API key in the system keychain.
Use --json or --jq to get machine-readable output.`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
	}

	shared.RegisterFlags(cmd.PersistentFlags())

	return cmd
}

// GetVersion returns version information
func GetVersion() (string, string, string) {
	return shared.GetVersion()
}

// HandleExitError reports err and exits with the matching code
func HandleExitError(cmd *cobra.Command, err error) {
	name := "paykit"
	if cmd != nil {
		name = cmd.CommandPath()
	}
	shared.HandleExitError(name, err)
}
