// Package schema decides whether an ingested table is long-form (one row
// per observation) or wide-form (one column per period) and reshapes both
// into canonical observed records.
package schema

import (
	"regexp"

	"finlens/internal/concepts"
	"finlens/internal/ingest"
)

// Form is the detected table layout.
type Form int

const (
	FormLong Form = iota
	FormWide
)

func (f Form) String() string {
	if f == FormLong {
		return "long"
	}
	return "wide"
}

// role identifies one of the five logical long-form columns.
type role string

const (
	roleCompany   role = "company"
	rolePeriod    role = "period"
	roleStatement role = "statement"
	roleLineItem  role = "lineitem"
	roleValue     role = "value"
)

// roleSynonyms is the static synonym list per role, English and Vietnamese.
// Header matching is case- and diacritic-insensitive equality.
var roleSynonyms = map[role][]string{
	roleCompany:   {"ticker", "symbol", "code", "stock", "ma cp", "ma ck", "ma", "company", "company name"},
	rolePeriod:    {"period", "year", "nam", "ky", "ky bao cao"},
	roleStatement: {"statement", "sheet", "loai bao cao", "phan", "group", "section"},
	roleLineItem:  {"account", "item", "chi tieu", "khoan muc", "line", "ten chi tieu", "line item", "lineitem", "line item name"},
	roleValue:     {"value", "amount", "gia tri", "so tien", "val"},
}

// periodColumn matches wide-form period headers: a 4-digit year with an
// optional forecast letter suffix, e.g. "2024" or "2024F".
var periodColumn = regexp.MustCompile(`^\d{4}[A-Za-z]?$`)

// columnForRole returns the index of the first header matching any synonym
// for the role, or -1.
func columnForRole(header []string, r role) int {
	for i, h := range header {
		canon := concepts.Canonicalize(h)
		for _, syn := range roleSynonyms[r] {
			if canon == concepts.Canonicalize(syn) {
				return i
			}
		}
	}
	return -1
}

// Classify decides the table layout. Long-form wins only when every one of
// the five roles resolves to a header column.
func Classify(t *ingest.Table) Form {
	for _, r := range []role{roleCompany, rolePeriod, roleStatement, roleLineItem, roleValue} {
		if columnForRole(t.Header, r) < 0 {
			return FormWide
		}
	}
	return FormLong
}

// periodColumns returns the indices of wide-form period headers.
func periodColumns(header []string) []int {
	var out []int
	for i, h := range header {
		if periodColumn.MatchString(h) {
			out = append(out, i)
		}
	}
	return out
}
