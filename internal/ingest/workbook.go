package ingest

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	apierrors "finlens/internal/errors"
)

// ReadWorkbook extracts a Table from an xlsx workbook. This is the
// explicit workbook entry point; the byte pipeline still rejects zip
// signatures, so callers route here only for files declared as workbooks.
//
// The first sheet containing a plausible header wins. Within that sheet the
// header row is located the same way Locate treats text lines: prefer a row
// with at least 3 non-empty cells and an identifying keyword, else the row
// with the most non-empty cells.
func ReadWorkbook(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apierrors.NewFormatError("unreadable workbook", "%v", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) < 2 {
			continue
		}
		headerRow := locateGridHeader(rows)
		if headerRow < 0 {
			continue
		}
		header := make([]string, len(rows[headerRow]))
		for i, h := range rows[headerRow] {
			header[i] = strings.TrimSpace(h)
		}
		if len(header) < 2 {
			continue
		}
		return &Table{Header: header, Rows: rows[headerRow+1:]}, nil
	}
	return nil, apierrors.NewFormatError("no tabular sheet in workbook", "sheets: %v", f.GetSheetList())
}

func locateGridHeader(rows [][]string) int {
	limit := len(rows)
	if limit > maxScanLines {
		limit = maxScanLines
	}

	bestRow, bestCells := -1, 1
	for i := 0; i < limit; i++ {
		cells := 0
		for _, c := range rows[i] {
			if strings.TrimSpace(c) != "" {
				cells++
			}
		}
		if cells >= 3 && containsAny(strings.ToLower(strings.Join(rows[i], " ")), identifyingKeywords) {
			return i
		}
		if cells > bestCells {
			bestRow, bestCells = i, cells
		}
	}
	return bestRow
}
