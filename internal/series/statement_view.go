package series

import (
	"sort"

	"finlens/internal/period"
	"finlens/pkg/contracts/domain"
)

// StatementView pivots one company's records of a statement section into a
// line item by period table for raw statement browsing. Duplicate labels
// within a period are summed; absent cells stay absent.
func StatementView(records []domain.ObservedRecord, company string, kind domain.StatementKind) *domain.StatementTable {
	cells := make(map[string]domain.TimeSeries)
	var periodLabels []domain.PeriodLabel

	for _, r := range records {
		if r.Company != company || r.Statement != kind {
			continue
		}
		s, ok := cells[r.Label]
		if !ok {
			s = make(domain.TimeSeries)
			cells[r.Label] = s
		}
		s[r.Period] += r.Value
		periodLabels = append(periodLabels, r.Period)
	}

	labels := make([]string, 0, len(cells))
	for l := range cells {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	return &domain.StatementTable{
		Kind:    kind,
		Labels:  labels,
		Periods: period.Unique(periodLabels),
		Cells:   cells,
	}
}
