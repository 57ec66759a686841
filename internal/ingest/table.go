// Package ingest turns decoded text (or an explicit workbook) into a
// rectangular table of string cells with a located header row, and parses
// locale-ambiguous numbers.
package ingest

import "strings"

// Table is a rectangular grid of raw string cells with a header row.
// Rows may be ragged; consumers index defensively.
type Table struct {
	Header    []string
	Rows      [][]string
	Delimiter rune
}

// Columns returns the header width.
func (t *Table) Columns() int {
	return len(t.Header)
}

// Cell returns the trimmed cell at (row, col), or "" when the row is too
// short.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}
