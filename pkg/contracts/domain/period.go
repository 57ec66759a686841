package domain

import "strings"

// PeriodLabel identifies a reporting period, e.g. "2021" or "2024F".
// A trailing case-insensitive "F" marks a forecast period. Labels always
// carry a 4-digit year component; labels without one sort last.
type PeriodLabel string

// Year extracts the first 4-digit run from the label. The second return
// value is false when the label contains no year component.
func (p PeriodLabel) Year() (int, bool) {
	s := string(p)
	for i := 0; i+4 <= len(s); i++ {
		if isDigit(s[i]) && isDigit(s[i+1]) && isDigit(s[i+2]) && isDigit(s[i+3]) {
			// Skip runs longer than 4 digits, they are not years.
			if i+4 < len(s) && isDigit(s[i+4]) {
				for i+4 < len(s) && isDigit(s[i+4]) {
					i++
				}
				continue
			}
			y := int(s[i]-'0')*1000 + int(s[i+1]-'0')*100 + int(s[i+2]-'0')*10 + int(s[i+3]-'0')
			return y, true
		}
	}
	return 0, false
}

// Forecast reports whether the label carries a forecast suffix.
func (p PeriodLabel) Forecast() bool {
	s := strings.TrimSpace(string(p))
	return strings.HasSuffix(s, "F") || strings.HasSuffix(s, "f")
}

func (p PeriodLabel) String() string {
	return string(p)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
