// Package period orders reporting-period labels chronologically, with
// forecast periods placed after the actual period they project from.
package period

import (
	"sort"

	"finlens/pkg/contracts/domain"
)

// sentinelYear sorts labels without a year component after everything else.
const sentinelYear = 10000

type sortKey struct {
	year     int
	forecast int
	label    string
}

func keyOf(p domain.PeriodLabel) sortKey {
	y, ok := p.Year()
	if !ok {
		y = sentinelYear
	}
	f := 0
	if p.Forecast() {
		f = 1
	}
	return sortKey{year: y, forecast: f, label: string(p)}
}

// Less reports whether a orders before b: numeric year ascending, actual
// before forecast within a year, then lexical tie-break.
func Less(a, b domain.PeriodLabel) bool {
	ka, kb := keyOf(a), keyOf(b)
	if ka.year != kb.year {
		return ka.year < kb.year
	}
	if ka.forecast != kb.forecast {
		return ka.forecast < kb.forecast
	}
	return ka.label < kb.label
}

// Sort orders labels in place.
func Sort(labels []domain.PeriodLabel) {
	sort.Slice(labels, func(i, j int) bool { return Less(labels[i], labels[j]) })
}

// Sorted returns a sorted copy.
func Sorted(labels []domain.PeriodLabel) []domain.PeriodLabel {
	out := make([]domain.PeriodLabel, len(labels))
	copy(out, labels)
	Sort(out)
	return out
}

// Unique sorts and deduplicates labels.
func Unique(labels []domain.PeriodLabel) []domain.PeriodLabel {
	seen := make(map[domain.PeriodLabel]struct{}, len(labels))
	out := make([]domain.PeriodLabel, 0, len(labels))
	for _, p := range labels {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	Sort(out)
	return out
}
