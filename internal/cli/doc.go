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

/*
Package cli provides the root command and shared configuration for the paykit CLI.

This package creates the main Cobra command tree and handles global concerns like
version information, persistent flags, and exit codes. Individual commands
are implemented in the internal/commands subpackages.

# Command Tree

	paykit
	├── checkouts     create | get | list | deactivate
	├── readers       list | get
	├── transactions  get | list
	├── payouts       list
	├── merchant      get
	├── decode        Decode a saved response body offline
	├── auth          login | logout | status
	├── config        show | path | validate
	├── completion    Generate shell completion scripts
	├── version       Show version
	└── help          Show help

# Usage

From main.go:

	cli.SetVersion(version, commit, date)
	rootCmd := cli.NewRootCommand()
	rootCmd.AddCommand(checkouts.NewCommand())
	if err := rootCmd.Execute(); err != nil {
	    cli.HandleExitError(rootCmd, err)
	}

# Global Flags

	--verbose, -v    Log HTTP traffic to stderr
	--quiet, -q      Suppress non-error output
	--json           Output in JSON format
	--jq             Filter JSON output with a jq expression
	--config         Path to config file
	--base-url       Override the API base URL

# Exit Codes

  - 0: Success
  - 1: General error
  - 2: Invalid usage
  - 3: Configuration error
  - 4: Authentication failed
  - 5: Request validation failed
  - 6: API error
  - 7: Connection error
*/
package cli
