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
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/commands/shared"
	"github.com/tombee/paykit/internal/config"
	"github.com/tombee/paykit/internal/tracing"
)

// ValidationResult is the outcome of 'config validate'.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewValidateCommand creates the 'config validate' subcommand.
func NewValidateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration for errors",
		Long: `Validate the effective configuration.

Checks performed:
  - Credentials are present and complete
  - The base URL, timeouts and retry settings are usable
  - The CA bundle is readable
  - Log and tracing settings name known values

Settings that work but are likely mistakes are reported as warnings.
With --strict, warnings are treated as errors.`,
		Example: `  # Validate configuration
  paykit config validate

  # Validate with warnings as errors
  paykit config validate --strict --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.LoadConfig()
			if err != nil {
				result := ValidationResult{Errors: []string{err.Error()}}
				return outputValidationResult(cmd, result, strict)
			}
			return outputValidationResult(cmd, validateConfig(cfg), strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")

	return cmd
}

// validateConfig runs Config.Validate and adds warnings for settings that
// are valid but suspicious.
func validateConfig(cfg *config.Config) ValidationResult {
	var errs, warnings []string

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	if u, err := url.Parse(cfg.BaseURL); err == nil && u.Scheme == "http" && !isLocalHost(u.Hostname()) {
		warnings = append(warnings, fmt.Sprintf("base_url %q is not HTTPS; credentials are sent in clear text", cfg.BaseURL))
	}
	if cfg.APIKey != "" && cfg.AccessToken != "" {
		warnings = append(warnings, "both api_key and access_token are set; access_token is used")
	}
	if cfg.HTTP.Retries == 0 {
		warnings = append(warnings, "http.retries is 0; transient failures are not retried")
	}
	if cfg.HTTP.RetryWrites && cfg.HTTP.Retries > 0 {
		warnings = append(warnings, "http.retry_writes is on; POST and PATCH requests are retried with an idempotency key")
	}
	switch strings.ToLower(cfg.Tracing.Exporter) {
	case tracing.ExporterOTLP, tracing.ExporterOTLPHTTP:
		if cfg.Tracing.Endpoint == "" {
			warnings = append(warnings, "tracing.endpoint is empty; the exporter default collector address is used")
		}
	}

	return ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

func isLocalHost(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// outputValidationResult prints result and returns a config error when it
// failed, or when strict is set and there are warnings.
func outputValidationResult(cmd *cobra.Command, result ValidationResult, strict bool) error {
	if strict && len(result.Warnings) > 0 {
		result.Valid = false
	}

	err := shared.Output(cmd, result, func(w io.Writer) {
		for _, e := range result.Errors {
			fmt.Fprintln(w, shared.RenderError("✗ "+e))
		}
		for _, warn := range result.Warnings {
			fmt.Fprintln(w, shared.RenderWarn("! "+warn))
		}
		if result.Valid {
			fmt.Fprintln(w, shared.RenderOK("✓ Configuration is valid"))
		}
	})
	if err != nil {
		return err
	}
	if !result.Valid {
		return &shared.ExitError{Code: shared.ExitConfig, Message: "configuration is invalid"}
	}
	return nil
}
