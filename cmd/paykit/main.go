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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tombee/paykit/internal/cli"
	"github.com/tombee/paykit/internal/commands/auth"
	"github.com/tombee/paykit/internal/commands/checkouts"
	"github.com/tombee/paykit/internal/commands/completion"
	configcmd "github.com/tombee/paykit/internal/commands/config"
	"github.com/tombee/paykit/internal/commands/decode"
	"github.com/tombee/paykit/internal/commands/merchant"
	"github.com/tombee/paykit/internal/commands/payouts"
	"github.com/tombee/paykit/internal/commands/readers"
	"github.com/tombee/paykit/internal/commands/transactions"
	versioncmd "github.com/tombee/paykit/internal/commands/version"
)

// Version information (injected via ldflags at build time). Empty values
// keep the defaults compiled into the SDK.
var (
	version   = ""
	commit    = ""
	buildDate = ""
)

func main() {
	cli.SetVersion(version, commit, buildDate)

	rootCmd := cli.NewRootCommand()

	// Payments
	rootCmd.AddCommand(checkouts.NewCommand())
	rootCmd.AddCommand(transactions.NewCommand())
	rootCmd.AddCommand(payouts.NewCommand())

	// In-person
	rootCmd.AddCommand(readers.NewCommand())

	// Account
	rootCmd.AddCommand(merchant.NewCommand())
	rootCmd.AddCommand(auth.NewCommand())
	rootCmd.AddCommand(configcmd.NewConfigCommand())

	// Tools
	rootCmd.AddCommand(decode.NewCommand())
	rootCmd.AddCommand(completion.NewCommand())
	rootCmd.AddCommand(versioncmd.NewVersionCommand())

	// Custom help command with JSON support
	rootCmd.SetHelpCommand(cli.NewHelpCommand(rootCmd))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	executed, err := rootCmd.ExecuteContextC(ctx)
	stop()
	if err != nil {
		cli.HandleExitError(executed, err)
	}
}
