package indicators

import "math"

// Catalogue fixes the indicator names and their row order in every
// produced table.
var Catalogue = []string{
	"Current Ratio",
	"Quick Ratio",
	"Working Capital to Total Assets",
	"Debt to Assets",
	"Debt to Equity",
	"Equity to Liabilities",
	"Long Term Debt to Assets",
	"Net Debt to Equity",
	"Receivables Turnover",
	"Inventory Turnover",
	"Asset Turnover",
	"ROA",
	"ROE",
	"EBIT to Assets",
	"Operating Income to Debt",
	"Net Profit Margin",
	"Gross Margin",
	"Interest Coverage",
	"EBITDA to Interest",
	"Total Debt to EBITDA",
}

// value is a float that may be explicitly absent. Absence propagates
// through every operation; nothing here ever fabricates a zero.
type value struct {
	v  float64
	ok bool
}

func present(v float64) value { return value{v: v, ok: true} }

var absent = value{}

func (a value) add(b value) value {
	if !a.ok || !b.ok {
		return absent
	}
	return present(a.v + b.v)
}

func (a value) sub(b value) value {
	if !a.ok || !b.ok {
		return absent
	}
	return present(a.v - b.v)
}

// div yields absent on a missing numerator, a missing or zero denominator,
// or a non-finite result.
func (a value) div(b value) value {
	if !a.ok || !b.ok || b.v == 0 {
		return absent
	}
	q := a.v / b.v
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return absent
	}
	return present(q)
}

// or falls back to b when a is absent.
func (a value) or(b value) value {
	if a.ok {
		return a
	}
	return b
}

// avg2 is the two-point average: the mean when both points exist, else
// whichever point exists, else absent.
func avg2(cur, prev value) value {
	switch {
	case cur.ok && prev.ok:
		return present((cur.v + prev.v) / 2)
	case cur.ok:
		return cur
	case prev.ok:
		return prev
	}
	return absent
}
