// Package common provides shared utilities for Voxfolio
package common

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds a monetary value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds a percentage value to 1 decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatMoney formats a value as a dollar amount with thousands separators
func FormatMoney(v float64) string {
	neg := v < 0
	s := fmt.Sprintf("%.2f", math.Abs(v))
	parts := strings.SplitN(s, ".", 2)
	whole := addThousands(parts[0])
	out := "$" + whole + "." + parts[1]
	if neg {
		return "-" + out
	}
	return out
}

// FormatSignedMoney formats a value as a dollar amount with an explicit sign
func FormatSignedMoney(v float64) string {
	if v >= 0 {
		return "+" + FormatMoney(v)
	}
	return FormatMoney(v)
}

// FormatSignedPct formats a percentage with an explicit sign and 1 decimal
func FormatSignedPct(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.1f%%", v)
	}
	return fmt.Sprintf("%.1f%%", v)
}

func addThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var sb strings.Builder
	rem := n % 3
	if rem > 0 {
		sb.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
