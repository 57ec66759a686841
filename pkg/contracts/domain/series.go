package domain

// TimeSeries maps reporting periods to values for a single concept or
// indicator. Missing periods are absent keys, never zero entries.
type TimeSeries map[PeriodLabel]float64

// Value looks up the value for a period.
func (s TimeSeries) Value(p PeriodLabel) (float64, bool) {
	v, ok := s[p]
	return v, ok
}

// Periods returns the unordered set of periods present in the series.
// Callers that need chronological order run the result through the period
// sorter.
func (s TimeSeries) Periods() []PeriodLabel {
	out := make([]PeriodLabel, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}

// Clone returns an independent copy of the series.
func (s TimeSeries) Clone() TimeSeries {
	out := make(TimeSeries, len(s))
	for p, v := range s {
		out[p] = v
	}
	return out
}
