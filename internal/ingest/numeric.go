package ingest

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// commaGrouping matches digit groups joined by thousands commas with no
// decimal part, e.g. "1,234" or "12,345,678".
var commaGrouping = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+$`)

// ParseNumber converts a raw cell string to a float. The second return
// value is false when the cell is absent or unparseable; callers must
// propagate absence, never substitute zero.
//
// Locale rules, applied in order:
//   - "", "-", "nan", "none" (case-insensitive) are absent.
//   - Both '.' and ',' present: Vietnamese/European convention, '.' groups
//     thousands and ',' is the decimal point ("10.277,19" -> 10277.19).
//   - Only ',' present: a pure grouping pattern like "1,234" drops its
//     commas (-> 1234); any other comma is a decimal point ("10,5" -> 10.5).
//   - Otherwise parse directly.
//
// The only-comma rule is a fixed heuristic carried over from the source
// data; inputs that really mean 1.234 by "1,234" are a known precision
// risk.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "nan", "none":
		return 0, false
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		if commaGrouping.MatchString(s) {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
