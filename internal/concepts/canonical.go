// Package concepts maps arbitrary, accent-bearing, bilingual line-item
// labels to the fixed vocabulary of canonical financial concepts.
package concepts

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Canonicalize normalizes a label for alias matching: diacritics stripped,
// lowercased, non-alphanumeric runs collapsed to single spaces.
// "Tổng tài sản", "tong tai san" and "TOTAL ASSETS " all canonicalize to
// comparable forms.
func Canonicalize(label string) string {
	s, _, err := transform.String(stripMarks, label)
	if err != nil {
		s = label
	}
	// Đ/đ carry no combining mark and survive NFD; fold them by hand.
	s = strings.Map(func(r rune) rune {
		switch r {
		case 'Đ', 'đ':
			return 'd'
		}
		return r
	}, s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	space := true
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}
