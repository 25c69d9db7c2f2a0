// Package numfmt handles user-entered decimal amounts where either a comma
// or a dot may be the decimal separator.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// ParseDecimal parses a decimal amount. Invalid or negative input coerces to
// zero, which callers treat as a no-op.
func ParseDecimal(s string) float64 {
	normalized := strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	n, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}

// ParseWholeNumber parses a non-negative integer amount, coercing invalid or
// negative input to zero.
func ParseWholeNumber(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FormatDecimal renders a value with a comma decimal separator, keeping up to
// two decimals without forcing trailing zeros.
func FormatDecimal(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}
	// Small epsilon keeps values like 12.555 from rounding down due to
	// binary representation.
	rounded := math.Round((value+1e-9)*100) / 100
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	return strings.Replace(s, ".", ",", 1)
}
