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

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tombee/paykit/internal/commands/shared"
	"github.com/tombee/paykit/internal/config"
	"github.com/tombee/paykit/internal/secrets"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and check configuration",
		Long: `View and check the paykit configuration.

Subcommands:
  show     - Display the effective configuration
  path     - Show config file location
  validate - Check the configuration for errors`,
		Annotations: map[string]string{"group": "account"},
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigPathCommand())
	cmd.AddCommand(NewValidateCommand())

	// If no subcommand provided, default to 'show'
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd, args)
	}

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Long: `Display the configuration after the config file, PAYKIT_* environment
variables and the keychain have been applied.

Secrets are masked. Use --json for machine-readable output.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func configPath() (string, error) {
	if p := shared.GetConfigPath(); p != "" {
		return p, nil
	}
	p, err := config.ConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to determine config path: %w", err)
	}
	return p, nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := shared.LoadConfig()
	if err != nil {
		return err
	}
	path, err := configPath()
	if err != nil {
		return err
	}

	masked := maskSensitiveConfig(cfg)
	data, err := yaml.Marshal(masked)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// Round-tripping through YAML gives JSON and jq the same keys and
	// duration strings as the config file.
	var view map[string]any
	if err := yaml.Unmarshal(data, &view); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return shared.Output(cmd, view, func(w io.Writer) {
		source := path
		if _, err := os.Stat(path); err != nil {
			source = path + " (not found, showing defaults and environment)"
		}
		fmt.Fprintf(w, "Configuration: %s\n", source)
		fmt.Fprintln(w, strings.Repeat("=", 50))
		fmt.Fprintln(w)
		_, _ = w.Write(data)
	})
}

// maskSensitiveConfig creates a copy of config with secrets masked
func maskSensitiveConfig(cfg *config.Config) *config.Config {
	masked := *cfg
	masked.APIKey = maskSecret(cfg.APIKey)
	masked.AccessToken = maskSecret(cfg.AccessToken)
	masked.OAuth2.ClientSecret = maskSecret(cfg.OAuth2.ClientSecret)
	masked.OAuth2.RefreshToken = maskSecret(cfg.OAuth2.RefreshToken)
	if len(cfg.Tracing.Headers) > 0 {
		masked.Tracing.Headers = make(map[string]string, len(cfg.Tracing.Headers))
		for k, v := range cfg.Tracing.Headers {
			masked.Tracing.Headers[k] = maskSecret(v)
		}
	}
	return &masked
}

func maskSecret(value string) string {
	if value == "" {
		return ""
	}
	return secrets.Mask(value)
}
