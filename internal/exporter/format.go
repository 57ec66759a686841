// Package exporter renders indicator and statement tables for display and
// CSV download.
package exporter

import (
	"fmt"
	"math"
	"strings"
)

// AbsentCell is the placeholder for explicitly absent values. Absence is
// never rendered as zero.
const AbsentCell = "—"

// FormatIndicator renders an indicator value: ratio-sized magnitudes as a
// percentage with two decimals, larger magnitudes as comma-grouped
// two-decimal numbers.
func FormatIndicator(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return AbsentCell
	}
	if v >= -1.5 && v <= 1.5 {
		return fmt.Sprintf("%.2f%%", v*100)
	}
	return groupThousands(fmt.Sprintf("%.2f", v))
}

// FormatAmount renders a statement amount: whole numbers above 100 in
// magnitude, two decimals below.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return AbsentCell
	}
	if math.Abs(v) >= 100 {
		return groupThousands(fmt.Sprintf("%.0f", v))
	}
	return groupThousands(fmt.Sprintf("%.2f", v))
}

// groupThousands inserts commas into the integer part of a formatted
// number.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)
	return b.String()
}
