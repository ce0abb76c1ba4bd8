// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a USD amount with comma separators and no cents.
// Construction budgets live in the millions; cents are noise.
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	return "$" + FormatNumber(int64(math.Round(amount)))
}

// FormatMoneyCompact formats a USD amount with magnitude suffixes.
// e.g., 27500000 -> "$27.5M", 950000 -> "$950.0K"
func FormatMoneyCompact(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoneyCompact(-amount)
	}
	switch {
	case amount >= 1_000_000_000:
		return fmt.Sprintf("$%.2fB", amount/1_000_000_000)
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.1fM", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("$%.1fK", amount/1_000)
	default:
		return fmt.Sprintf("$%.0f", amount)
	}
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

// FormatPercent formats an allocation percentage (already on the 0-100
// scale) to one decimal place.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatSignedPercent formats a percentage-point delta with an explicit
// sign. Values within a rounding hair of zero render without one.
func FormatSignedPercent(pct float64) string {
	if math.Abs(pct) < 0.05 {
		return "0.0%"
	}
	return fmt.Sprintf("%+.1f%%", pct)
}

// FormatMoneyDelta formats a dollar change with an explicit sign.
func FormatMoneyDelta(delta float64) string {
	if math.Abs(delta) < 0.5 {
		return "$0"
	}
	if delta < 0 {
		return "-" + FormatMoney(-delta)
	}
	return "+" + FormatMoney(delta)
}

// FormatArea formats a building area in square feet.
func FormatArea(sqft float64) string {
	return FormatNumber(int64(math.Round(sqft))) + " sf"
}
