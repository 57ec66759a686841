package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"

	apierrors "finlens/internal/errors"
)

// maxScanLines bounds the header search; anything past this is data.
const maxScanLines = 256

// delimiter candidates in priority order.
var delimiters = []rune{',', ';', '\t', '|'}

// identifyingKeywords mark a line as a plausible header: company/symbol
// column names in English and Vietnamese.
var identifyingKeywords = []string{
	"ticker", "symbol", "code", "stock", "company",
	"ma cp", "ma_cp", "ma ck", "account", "chi tieu",
}

// Locate finds the true header row and delimiter in decoded text.
// Preference order: first line whose split yields at least 3 columns and
// contains an identifying keyword; otherwise the line+delimiter combination
// producing the most columns; otherwise line 0 with comma. Lines before the
// header are noise and get discarded by Parse.
func Locate(text string) (headerLine int, delimiter rune, err error) {
	lines := splitLines(text)
	limit := len(lines)
	if limit > maxScanLines {
		limit = maxScanLines
	}

	bestLine, bestCols := 0, 0
	var bestDelim rune = ','

	for i := 0; i < limit; i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, d := range delimiters {
			cols := len(strings.Split(line, string(d)))
			if cols >= 3 && containsAny(lower, identifyingKeywords) {
				return i, d, nil
			}
			if cols > bestCols {
				bestLine, bestCols, bestDelim = i, cols, d
			}
		}
	}

	if bestCols < 2 {
		sample := ""
		if len(lines) > 0 {
			sample = truncate(lines[0], 120)
		}
		return 0, 0, apierrors.NewFormatError(
			"no detectable delimiter",
			"tried %q over first %d lines; first line: %q", string(delimiters), limit, sample)
	}
	return bestLine, bestDelim, nil
}

// Parse decodes text into a Table: locates the header, discards leading
// noise, and tokenizes the remainder with the detected delimiter.
func Parse(text string) (*Table, error) {
	headerLine, delim, err := Locate(text)
	if err != nil {
		return nil, err
	}

	lines := splitLines(text)
	body := strings.Join(lines[headerLine:], "\n")

	r := csv.NewReader(strings.NewReader(body))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, apierrors.NewFormatError("unparseable delimited text", "%v", err)
	}
	if len(records) == 0 {
		return nil, apierrors.NewFormatError("empty file", "no rows after header line %d", headerLine)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	if len(header) < 2 {
		return nil, apierrors.NewFormatError(
			"no detectable delimiter",
			"header %q split into %d column(s)", fmt.Sprint(header), len(header))
	}

	return &Table{Header: header, Rows: records[1:], Delimiter: delim}, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
