package domain

// ObservedRecord is the atomic unit after normalization: one numeric
// observation for one company, period and line item. Records are only
// created for cells that parsed to a finite float; absent cells never
// become records.
type ObservedRecord struct {
	Company   string        `json:"company"`
	Period    PeriodLabel   `json:"period"`
	Statement StatementKind `json:"statement"`
	Concept   Concept       `json:"concept,omitempty"`
	Label     string        `json:"label"`
	Value     float64       `json:"value"`
}

// Mapped reports whether the record's line item resolved to a canonical
// concept. Unmapped records remain browsable by raw label but cannot feed
// the indicator engine.
func (r ObservedRecord) Mapped() bool {
	return r.Concept != ""
}
