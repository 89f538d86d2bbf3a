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
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI style colors using lipgloss
var (
	// StatusOK styles success indicators
	StatusOK = lipgloss.NewStyle().Foreground(lipgloss.Color("42")) // green

	// StatusWarn styles warning indicators
	StatusWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // orange

	// StatusError styles error indicators
	StatusError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red

	// Muted styles secondary/less important text
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray

	// Header styles section headers
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")) // blue bold
)

// Symbols for status indicators
const (
	SymbolOK    = "✓"
	SymbolWarn  = "⚠"
	SymbolError = "✗"
)

// RenderOK renders a success message with green checkmark
func RenderOK(msg string) string {
	return StatusOK.Render(SymbolOK) + " " + msg
}

// RenderWarn renders a warning message with orange symbol
func RenderWarn(msg string) string {
	return StatusWarn.Render(SymbolWarn) + " " + msg
}

// RenderError renders an error message in red
func RenderError(msg string) string {
	return StatusError.Render(msg)
}

// RenderStatus colors an API status value: green for success states, red
// for failures and orange for everything else.
func RenderStatus(status string) string {
	switch strings.ToUpper(status) {
	case "PAID", "SUCCESSFUL", "PAIRED", "ACCEPTED", "ACTIVE":
		return StatusOK.Render(status)
	case "FAILED", "CANCELLED", "EXPIRED", "DISABLED", "FAILED_PAYMENT":
		return StatusError.Render(status)
	case "":
		return Muted.Render("-")
	default:
		return StatusWarn.Render(status)
	}
}

// Fields prints a titled block of aligned key/value pairs. Empty values are
// shown as a dash.
func Fields(w io.Writer, title string, kv ...string) {
	fmt.Fprintln(w, Header.Render(title))
	width := 0
	for i := 0; i+1 < len(kv); i += 2 {
		width = max(width, len(kv[i]))
	}
	for i := 0; i+1 < len(kv); i += 2 {
		value := kv[i+1]
		if value == "" {
			value = Muted.Render("-")
		}
		fmt.Fprintf(w, "  %s  %s\n", Muted.Render(fmt.Sprintf("%-*s", width, kv[i])), value)
	}
}
