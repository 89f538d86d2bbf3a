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
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tombee/paykit/internal/jq"
)

// Output writes v to the command's stdout: through the --jq filter when
// set, as JSON with --json or without a human renderer, otherwise with
// human.
func Output(cmd *cobra.Command, v any, human func(w io.Writer)) error {
	w := cmd.OutOrStdout()

	if expr := GetJQ(); expr != "" {
		results, err := jq.NewExecutor(0, 0).ExecuteAll(cmd.Context(), expr, v)
		if err != nil {
			return NewUsageError("--jq filter failed", err)
		}
		for _, r := range results {
			if s, ok := r.(string); ok {
				fmt.Fprintln(w, s)
				continue
			}
			b, err := json.Marshal(r)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(b))
		}
		return nil
	}

	if GetJSON() || human == nil {
		return EmitJSON(w, v)
	}
	human(w)
	return nil
}

// Notice prints a status line unless --quiet or a machine format is set.
func Notice(cmd *cobra.Command, msg string) {
	if GetQuiet() || GetJSON() || GetJQ() != "" {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), RenderOK(msg))
}
