// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"stucash/internal/model"
)

// FormatMoney renders an amount in whole currency units with thousands
// separation, e.g. 1234567 cents -> "$12,346". Sub-unit precision is
// dropped on purpose; the export layer documents the lossy rendering.
func FormatMoney(m model.Money) string {
	dollars := int64(math.Round(m.Dollars()))
	if dollars < 0 {
		return "-$" + FormatNumber(-dollars)
	}
	return "$" + FormatNumber(dollars)
}

// FormatMoneyDelta renders a signed money delta, e.g. "+$300" / "-$150".
func FormatMoneyDelta(m model.Money) string {
	if m >= 0 {
		return "+" + FormatMoney(m)
	}
	return FormatMoney(m)
}

// ParseMoney parses a whole-or-decimal currency string into Money. A
// leading currency symbol and thousands separators are tolerated.
// Non-numeric input yields zero rather than an error; the engine prefers
// a zero rendering over a failure path for malformed amounts.
func ParseMoney(s string) model.Money {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return model.FromDollars(v)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 ratio as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRatio renders an optional ratio; nil means income was
// non-positive and the ratio is undefined, not zero.
func FormatRatio(r *float64) string {
	if r == nil {
		return "n/a"
	}
	return FormatPercent(*r)
}

// FormatYears renders a payoff horizon. The divergence sentinel is
// spelled out instead of being squeezed into a number.
func FormatYears(h model.PayoffHorizon) string {
	if h.NeverPaysOff {
		return "never (contribution below interest)"
	}
	if h.Years <= 0 {
		return "0 years"
	}
	return fmt.Sprintf("%.1f years", h.Years)
}

// FormatMonths renders a phase duration.
func FormatMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}
