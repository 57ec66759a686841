package domain

import "strings"

// StatementKind classifies which section of a filing a row belongs to.
type StatementKind string

const (
	StatementIncome   StatementKind = "income"
	StatementBalance  StatementKind = "balance"
	StatementCashflow StatementKind = "cashflow"
	StatementNote     StatementKind = "note"
	StatementOther    StatementKind = "other"
)

// statementHints maps raw statement-column phrasings (English and
// Vietnamese, diacritics already stripped by the caller) to a kind.
// Containment is checked in declaration order.
var statementHints = []struct {
	hint string
	kind StatementKind
}{
	{"income", StatementIncome},
	{"profit", StatementIncome},
	{"p l", StatementIncome},
	{"kqkd", StatementIncome},
	{"ket qua kinh doanh", StatementIncome},
	{"balance", StatementBalance},
	{"can doi", StatementBalance},
	{"asset", StatementBalance},
	{"liab", StatementBalance},
	{"equity", StatementBalance},
	{"cash", StatementCashflow},
	{"luu chuyen", StatementCashflow},
	{"note", StatementNote},
	{"thuyet minh", StatementNote},
}

// ClassifyStatement maps a raw statement label to a StatementKind.
// The input is expected to be lowercased with diacritics stripped.
func ClassifyStatement(raw string) StatementKind {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return StatementOther
	}
	for _, h := range statementHints {
		if strings.Contains(s, h.hint) {
			return h.kind
		}
	}
	return StatementOther
}
