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

// Package auth implements the "paykit auth" commands, which manage the API
// key kept in the system keychain.
package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/commands/shared"
	"github.com/tombee/paykit/internal/config"
	"github.com/tombee/paykit/internal/secrets"
	paykiterrors "github.com/tombee/paykit/pkg/errors"
)

// NewCommand creates the auth command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "auth",
		Short:       "Manage stored credentials",
		Annotations: map[string]string{"group": "account"},
	}
	cmd.AddCommand(newLoginCommand(), newLogoutCommand(), newStatusCommand())
	return cmd
}

// readSecret prompts for a secret without echo. Tests replace it.
var readSecret = shared.ReadSecret

// nonInteractive reports whether prompting is impossible. Tests replace it.
var nonInteractive = shared.IsNonInteractive

func newLoginCommand() *cobra.Command {
	var withToken bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key in the system keychain",
		Long: `Login stores an API key in the system keychain, where later commands
find it when neither PAYKIT_API_KEY nor a config file provides one.

The key is read from a hidden prompt, or from standard input with
--with-token.`,
		Example: `  paykit auth login
  echo "$KEY" | paykit auth login --with-token`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				key string
				err error
			)
			switch {
			case withToken:
				key, err = readLine(cmd.InOrStdin())
			case nonInteractive():
				return shared.NewUsageError("cannot prompt for an API key here; pipe it with --with-token", nil)
			default:
				fmt.Fprint(cmd.ErrOrStderr(), "API key: ")
				key, err = readSecret()
				fmt.Fprintln(cmd.ErrOrStderr())
			}
			if err != nil {
				return fmt.Errorf("read API key: %w", err)
			}
			key = strings.TrimSpace(key)
			if key == "" {
				return shared.NewUsageError("API key is empty", nil)
			}

			backend, err := shared.SecretStore().Set(cmd.Context(), secrets.KeyAPIKey, key)
			if err != nil {
				return &paykiterrors.ConfigError{Key: "api_key", Reason: "cannot store API key", Cause: err}
			}
			shared.Notice(cmd, fmt.Sprintf("Stored API key %s in %s", secrets.Mask(key), backend))
			return nil
		},
	}
	cmd.Flags().BoolVar(&withToken, "with-token", false, "Read the API key from standard input")
	return cmd
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials from the system keychain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := shared.SecretStore()
			removed := false
			for _, key := range []string{secrets.KeyAPIKey, secrets.KeyAccessToken, secrets.KeyClientSecret, secrets.KeyRefreshToken} {
				err := store.Delete(cmd.Context(), key)
				switch {
				case err == nil:
					removed = true
				case errors.Is(err, secrets.ErrSecretNotFound):
				default:
					return &paykiterrors.ConfigError{Key: key, Reason: "cannot remove credential", Cause: err}
				}
			}
			if removed {
				shared.Notice(cmd, "Removed stored credentials")
			} else {
				shared.Notice(cmd, "No stored credentials")
			}
			return nil
		},
	}
}

// Status describes the credentials the CLI would use.
type Status struct {
	Authenticated bool   `json:"authenticated"`
	Method        string `json:"method,omitempty"`
	Source        string `json:"source,omitempty"`
	Credential    string `json:"credential,omitempty"`
	BaseURL       string `json:"base_url"`
	MerchantCode  string `json:"merchant_code,omitempty"`
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which credentials are in use",
		Long: `Status shows which credentials the CLI would authenticate with and
where they come from. It exits with the configuration error code when
none are found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.LoadConfig()
			if err != nil {
				return err
			}

			st := Status{BaseURL: cfg.BaseURL, MerchantCode: cfg.MerchantCode}
			switch {
			case cfg.AccessToken != "":
				st.Method, st.Credential = "access_token", secrets.Mask(cfg.AccessToken)
				st.Source = source(cmd, secrets.KeyAccessToken, cfg.AccessToken)
			case cfg.OAuth2.Enabled():
				st.Method, st.Credential = "oauth2", cfg.OAuth2.ClientID
				st.Source = source(cmd, secrets.KeyClientSecret, cfg.OAuth2.ClientSecret)
			case cfg.APIKey != "":
				st.Method, st.Credential = "api_key", secrets.Mask(cfg.APIKey)
				st.Source = source(cmd, secrets.KeyAPIKey, cfg.APIKey)
			}
			st.Authenticated = st.Method != ""

			if err := shared.Output(cmd, st, func(w io.Writer) { renderStatus(w, st) }); err != nil {
				return err
			}
			if !st.Authenticated {
				return &shared.ExitError{Code: shared.ExitConfig, Message: "not logged in"}
			}
			return nil
		},
	}
}

// source names where value was read from: a secret backend when one holds
// it, otherwise the config file.
func source(cmd *cobra.Command, key, value string) string {
	if v, backend, err := shared.SecretStore().Lookup(cmd.Context(), key); err == nil && v == value {
		if backend == "env" {
			return secrets.EnvName(key)
		}
		return backend
	}
	if path := shared.GetConfigPath(); path != "" {
		return path
	}
	if path, err := config.ConfigPath(); err == nil {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return "environment"
}

func renderStatus(w io.Writer, st Status) {
	if !st.Authenticated {
		fmt.Fprintln(w, shared.RenderWarn("Not logged in."))
		fmt.Fprintln(w, "Run 'paykit auth login' or set PAYKIT_API_KEY.")
		return
	}
	shared.Fields(w, shared.RenderOK("Logged in"),
		"Method", st.Method,
		"Credential", st.Credential,
		"Source", st.Source,
		"Base URL", st.BaseURL,
		"Merchant", st.MerchantCode,
	)
}
