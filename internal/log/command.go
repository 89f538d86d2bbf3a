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

package log

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Command describes a CLI invocation for logging purposes.
type Command struct {
	// Path is the full command path, e.g. "paykit checkouts get".
	Path string

	// MerchantCode is set for commands acting on a merchant.
	MerchantCode string

	// Metadata contains additional fields.
	Metadata map[string]any
}

// CommandResult is logged when a command finishes.
type CommandResult struct {
	Success    bool
	Error      string
	ErrorType  string
	DurationMs int64
}

// LogCommandStart logs that a command started. It is a debug record.
func LogCommandStart(ctx context.Context, logger *slog.Logger, cmd *Command) {
	logger.Log(ctx, slog.LevelDebug, "command started", commandAttrs(cmd, "command_start")...)
}

// LogCommandEnd logs the outcome of a command. Failures are errors.
func LogCommandEnd(ctx context.Context, logger *slog.Logger, cmd *Command, res *CommandResult) {
	attrs := commandAttrs(cmd, "command_end")
	attrs = append(attrs, "success", res.Success, DurationKey, res.DurationMs)
	if res.Error != "" {
		attrs = append(attrs, "error", res.Error)
	}
	if res.ErrorType != "" {
		attrs = append(attrs, "error_type", res.ErrorType)
	}

	level := slog.LevelDebug
	message := "command completed"
	if !res.Success {
		level = slog.LevelError
		message = "command failed"
	}
	logger.Log(ctx, level, message, attrs...)
}

func commandAttrs(cmd *Command, event string) []any {
	attrs := []any{EventKey, event, CommandKey, cmd.Path}
	if cmd.MerchantCode != "" {
		attrs = append(attrs, MerchantKey, cmd.MerchantCode)
	}
	for k, v := range cmd.Metadata {
		attrs = append(attrs, k, v)
	}
	return attrs
}

// RunCommand runs fn between a start and an end record.
func RunCommand(ctx context.Context, logger *slog.Logger, cmd *Command, fn func(context.Context) error) error {
	start := time.Now()
	LogCommandStart(ctx, logger, cmd)

	err := fn(ctx)

	res := &CommandResult{
		Success:    err == nil,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		res.Error = err.Error()
		var c interface{ ErrorType() string }
		if errors.As(err, &c) {
			res.ErrorType = c.ErrorType()
		}
	}
	LogCommandEnd(ctx, logger, cmd, res)
	return err
}
