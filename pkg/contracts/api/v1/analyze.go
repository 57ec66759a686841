// Package v1 defines the wire contracts of the analysis API.
package v1

// AnalyzeRequest carries the optional parameters accompanying an uploaded
// statement file.
type AnalyzeRequest struct {
	// Company filters to one company identifier; empty picks the first
	// company present in the file.
	Company string `json:"company" validate:"omitempty,max=32"`
	// Years windows the history to the last N years; 0 uses the server
	// default.
	Years int `json:"years" validate:"min=0,max=100"`
}

// Cell is one table cell: the raw value when present plus its rendered
// display form. Absent cells have a nil value and the placeholder display.
type Cell struct {
	Value   *float64 `json:"value,omitempty"`
	Display string   `json:"display"`
}

// TableRow is one named row of cells aligned to the table's period
// columns.
type TableRow struct {
	Name  string `json:"name"`
	Cells []Cell `json:"cells"`
}

// Table is a rendered metric/line-item by period table.
type Table struct {
	Periods []string   `json:"periods"`
	Rows    []TableRow `json:"rows"`
}

// AnalyzeResponse is the full analysis payload: the indicator table plus
// the raw statement views.
type AnalyzeResponse struct {
	Success    bool             `json:"success"`
	Company    string           `json:"company"`
	Companies  []string         `json:"companies"`
	Periods    []string         `json:"periods"`
	Indicators Table            `json:"indicators"`
	Statements map[string]Table `json:"statements"`
}
