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
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount with its currency symbol, e.g. "€ 10.50".
// Unknown currency codes fall back to the plain number and code.
func FormatMoney(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return strings.TrimSpace(printer.Sprintf("%.2f %s", amount, code))
	}
	return printer.Sprint(currency.Symbol(unit.Amount(amount)))
}

// Str dereferences an optional string-like value.
func Str[T ~string](v *T) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

// Money formats optional amount and currency fields.
func Money[T ~string](amount *float64, code *T) string {
	if amount == nil {
		return ""
	}
	return FormatMoney(*amount, Str(code))
}

// Time formats an optional timestamp in RFC 3339.
func Time(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
