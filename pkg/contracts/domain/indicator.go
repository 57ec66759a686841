package domain

// IndicatorTable holds one TimeSeries per indicator name. Names keeps the
// fixed catalogue order and Periods the chronological column order; both
// are set by the indicator engine. The table is recomputed on demand and
// never mutated after construction.
type IndicatorTable struct {
	Names   []string              `json:"names"`
	Periods []PeriodLabel         `json:"periods"`
	Series  map[string]TimeSeries `json:"series"`
}

// Value looks up one (indicator, period) cell. Absent cells return ok=false;
// they are never materialized as zero.
func (t *IndicatorTable) Value(name string, p PeriodLabel) (float64, bool) {
	s, ok := t.Series[name]
	if !ok {
		return 0, false
	}
	return s.Value(p)
}

// StatementTable is a pivoted line item by period view of one statement
// section, used for raw statement browsing.
type StatementTable struct {
	Kind    StatementKind         `json:"kind"`
	Labels  []string              `json:"labels"`
	Periods []PeriodLabel         `json:"periods"`
	Cells   map[string]TimeSeries `json:"cells"`
}

// Value looks up one (line item, period) cell.
func (t *StatementTable) Value(label string, p PeriodLabel) (float64, bool) {
	s, ok := t.Cells[label]
	if !ok {
		return 0, false
	}
	return s.Value(p)
}
