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

package call

import (
	"fmt"
	"net/url"

	paykiterrors "github.com/tombee/paykit/pkg/errors"
)

// Param names one path parameter and its value.
type Param struct {
	Name  string
	Value string
}

// P is shorthand for a Param.
func P(name, value string) Param {
	return Param{Name: name, Value: value}
}

// Path fills format with the escaped parameter values. An empty value
// fails with a ValidationError naming every missing parameter, before any
// request is sent.
func Path(format string, params ...Param) (string, error) {
	var missing []string
	args := make([]any, len(params))
	for i, p := range params {
		if p.Value == "" {
			missing = append(missing, p.Name)
		}
		args[i] = url.PathEscape(p.Value)
	}
	if len(missing) > 0 {
		return "", &paykiterrors.ValidationError{
			InvalidFields: missing,
			Message:       "required path parameter is empty",
		}
	}
	return fmt.Sprintf(format, args...), nil
}
