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

package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/commands/shared"
	"github.com/tombee/paykit/internal/version"
)

// VersionInfo contains version metadata
type VersionInfo struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	BuildDate  string `json:"build_date"`
	APIVersion string `json:"api_version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, build date and the API version the client speaks.`,
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	v, c, b := shared.GetVersion()

	info := VersionInfo{
		Version:    v,
		Commit:     c,
		BuildDate:  b,
		APIVersion: version.APIVersion,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}

	return shared.Output(cmd, info, func(w io.Writer) {
		fmt.Fprintf(w, "paykit version %s\n", info.Version)
		fmt.Fprintf(w, "  commit:      %s\n", info.Commit)
		fmt.Fprintf(w, "  build date:  %s\n", info.BuildDate)
		fmt.Fprintf(w, "  api version: %s\n", info.APIVersion)
		fmt.Fprintf(w, "  go:          %s %s\n", info.GoVersion, info.Platform)
	})
}
