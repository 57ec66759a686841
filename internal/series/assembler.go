// Package series assembles aligned per-concept time series from observed
// records and exposes the pivoted statement views.
package series

import (
	"sort"

	"finlens/internal/concepts"
	"finlens/internal/period"
	"finlens/pkg/contracts/domain"
)

// Assemble builds one TimeSeries for a company and concept by grouping
// matching records per period and summing values. Summing tolerates
// duplicate line items mapping to the same concept and split wide-form
// columns. A non-empty statement filter restricts matches to that section;
// when the filtered result is empty the full unfiltered match is used as a
// fallback.
func Assemble(records []domain.ObservedRecord, company string, c domain.Concept, filter domain.StatementKind) domain.TimeSeries {
	filtered := make(domain.TimeSeries)
	unfiltered := make(domain.TimeSeries)

	for _, r := range records {
		if r.Company != company || r.Concept != c {
			continue
		}
		unfiltered[r.Period] += r.Value
		if filter != "" && r.Statement == filter {
			filtered[r.Period] += r.Value
		}
	}

	if filter != "" && len(filtered) > 0 {
		return filtered
	}
	return unfiltered
}

// ConceptSet assembles every canonical concept for one company, applying
// each concept's preferred statement section.
func ConceptSet(records []domain.ObservedRecord, company string) map[domain.Concept]domain.TimeSeries {
	out := make(map[domain.Concept]domain.TimeSeries, len(domain.Concepts))
	for _, c := range domain.Concepts {
		filter, _ := concepts.PreferredStatement(c)
		s := Assemble(records, company, c, filter)
		if len(s) > 0 {
			out[c] = s
		}
	}
	return out
}

// Companies lists the distinct company identifiers present, sorted.
func Companies(records []domain.ObservedRecord) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		if _, dup := seen[r.Company]; dup {
			continue
		}
		seen[r.Company] = struct{}{}
		out = append(out, r.Company)
	}
	sort.Strings(out)
	return out
}

// ForCompany keeps only one company's records.
func ForCompany(records []domain.ObservedRecord, company string) []domain.ObservedRecord {
	out := make([]domain.ObservedRecord, 0, len(records))
	for _, r := range records {
		if r.Company == company {
			out = append(out, r)
		}
	}
	return out
}

// Periods returns the chronologically ordered set of periods present.
func Periods(records []domain.ObservedRecord) []domain.PeriodLabel {
	labels := make([]domain.PeriodLabel, 0, len(records))
	for _, r := range records {
		labels = append(labels, r.Period)
	}
	return period.Unique(labels)
}

// WindowYears restricts records to the last `years` years counted from the
// latest actual (non-forecast) period. Forecast periods inside the window
// survive. years <= 0 disables the window.
func WindowYears(records []domain.ObservedRecord, years int) []domain.ObservedRecord {
	if years <= 0 || len(records) == 0 {
		return records
	}

	lastActual := 0
	lastAny := 0
	for _, r := range records {
		y, ok := r.Period.Year()
		if !ok {
			continue
		}
		if y > lastAny {
			lastAny = y
		}
		if !r.Period.Forecast() && y > lastActual {
			lastActual = y
		}
	}
	if lastActual == 0 {
		lastActual = lastAny
	}
	if lastActual == 0 {
		return records
	}

	minKeep := lastActual - years + 1
	out := make([]domain.ObservedRecord, 0, len(records))
	for _, r := range records {
		y, ok := r.Period.Year()
		if !ok || y < minKeep {
			continue
		}
		out = append(out, r)
	}
	return out
}
