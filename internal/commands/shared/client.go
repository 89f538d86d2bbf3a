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

package shared

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/config"
	"github.com/tombee/paykit/internal/log"
	"github.com/tombee/paykit/internal/secrets"
	"github.com/tombee/paykit/sdk"
)

// SecretStore returns the credential store commands read from and write
// to. Tests replace it.
var SecretStore = func() *secrets.Store {
	return secrets.DefaultStore()
}

// Env is what an API command runs with.
type Env struct {
	Client *sdk.Client
	Config *config.Config
	Logger *slog.Logger
}

// MerchantCode returns flagValue, falling back to the configured merchant
// code.
func (e *Env) MerchantCode(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if e.Config.MerchantCode != "" {
		return e.Config.MerchantCode, nil
	}
	return "", NewUsageError("merchant code required: pass --merchant or set PAYKIT_MERCHANT_CODE", nil)
}

// AddMerchantFlag registers --merchant on cmd, bound to p.
func AddMerchantFlag(cmd *cobra.Command, p *string) {
	cmd.Flags().StringVarP(p, "merchant", "m", "", "Merchant code (default: merchant_code from config)")
}

// LoadConfig reads the configuration selected by --config and applies the
// --base-url and --verbose overrides. It does not validate credentials.
func LoadConfig() (*config.Config, error) {
	path := GetConfigPath()
	if path == "" {
		if p, err := config.ConfigPath(); err == nil {
			path = p
		}
	}

	cfg, err := config.LoadUnvalidated(path, SecretStore())
	if err != nil {
		return nil, err
	}
	if u := GetBaseURL(); u != "" {
		cfg.BaseURL = u
	}
	return cfg, nil
}

// NewLogger builds the CLI logger. Only errors are logged unless --verbose
// is set.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := "error"
	if GetVerbose() {
		level = "debug"
	}
	return log.New(&log.Config{
		Level:     level,
		Format:    log.Format(cfg.Log.Format),
		Output:    w,
		AddSource: cfg.Log.AddSource,
	})
}

// RunAPI loads configuration, builds a client and runs fn inside a logged
// command. The result is printed with Output.
func RunAPI[T any](cmd *cobra.Command, fn func(ctx context.Context, env *Env) (T, error), human func(w io.Writer, v T)) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := NewLogger(cfg, cmd.ErrOrStderr())

	client, err := sdk.NewFromConfig(ctx, cfg, sdk.WithLogger(logger))
	if err != nil {
		return err
	}
	defer client.Close(context.Background())

	env := &Env{Client: client, Config: cfg, Logger: logger}

	var result T
	err = log.RunCommand(ctx, logger, &log.Command{Path: cmd.CommandPath()}, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx, env)
		return err
	})
	if err != nil {
		return err
	}

	var render func(io.Writer)
	if human != nil {
		render = func(w io.Writer) { human(w, result) }
	}
	return Output(cmd, result, render)
}
