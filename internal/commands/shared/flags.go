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
	"github.com/spf13/pflag"

	"github.com/tombee/paykit/internal/version"
)

// Global flag values - set by root command
var (
	verboseFlag bool
	quietFlag   bool
	jsonFlag    bool
	configFlag  string
	jqFlag      string
	baseURLFlag string
)

// RegisterFlags binds the global flags to fs. Called by the root command
// on its persistent flag set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	fs.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVar(&jsonFlag, "json", false, "Output in JSON format")
	fs.StringVar(&configFlag, "config", "", "Path to config file (default: ~/.config/paykit/config.yaml)")
	fs.StringVar(&jqFlag, "jq", "", "Filter JSON output with a jq expression")
	fs.StringVar(&baseURLFlag, "base-url", "", "Override the API base URL")
}

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	if v != "" {
		version.Version = v
	}
	if c != "" {
		version.Commit = c
	}
	if b != "" {
		version.BuildDate = b
	}
}

// GetVersion returns version information
func GetVersion() (string, string, string) {
	return version.Version, version.Commit, version.BuildDate
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verboseFlag
}

// GetQuiet returns the quiet flag value
func GetQuiet() bool {
	return quietFlag
}

// GetJSON returns the JSON output flag value
func GetJSON() bool {
	return jsonFlag
}

// GetJQ returns the jq filter expression
func GetJQ() string {
	return jqFlag
}

// GetConfigPath returns the config file path
func GetConfigPath() string {
	return configFlag
}

// GetBaseURL returns the base URL override
func GetBaseURL() string {
	return baseURLFlag
}

// ResetFlagsForTest clears every global flag value.
func ResetFlagsForTest() {
	verboseFlag, quietFlag, jsonFlag = false, false, false
	configFlag, jqFlag, baseURLFlag = "", "", ""
}
