package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "finlens/internal/errors"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLine  int
		wantDelim rune
	}{
		{
			name:      "clean comma header",
			text:      "Ticker,Period,Item,Value\nAAA,2020,Revenue,100\n",
			wantLine:  0,
			wantDelim: ',',
		},
		{
			name:      "preamble before keyword header",
			text:      "Exported 2024-01-01\n\nBáo cáo tài chính\nTicker;Period;Item;Value\nAAA;2020;Revenue;100\n",
			wantLine:  3,
			wantDelim: ';',
		},
		{
			name:      "tab separated without keywords picks widest line",
			text:      "just a note\ncolA\tcolB\tcolC\tcolD\n1\t2\t3\t4\n",
			wantLine:  1,
			wantDelim: '\t',
		},
		{
			name:      "vietnamese header keyword",
			text:      "Ma CP|Chi tieu|2020|2021\nAAA|Doanh thu|1|2\n",
			wantLine:  0,
			wantDelim: '|',
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, delim, err := Locate(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, string(tt.wantDelim), string(delim))
		})
	}
}

func TestLocateNoDelimiter(t *testing.T) {
	_, _, err := Locate("just one long undelimited line of prose\nanother one\n")
	require.Error(t, err)
	assert.True(t, apierrors.IsFormatError(err))
	assert.Contains(t, err.Error(), "no detectable delimiter")
}

func TestLocateScanWindow(t *testing.T) {
	// A header past the scan window is never found.
	var b strings.Builder
	for i := 0; i < maxScanLines; i++ {
		b.WriteString("noise\n")
	}
	b.WriteString("Ticker,Period,Item,Value\n")
	_, _, err := Locate(b.String())
	require.Error(t, err)
	assert.True(t, apierrors.IsFormatError(err))
}

func TestParse(t *testing.T) {
	text := "garbage preamble\nTicker,Period,Item,Value\nAAA,2020,\"Revenue, net\",100\nAAA,2021,Revenue,110\n"
	table, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"Ticker", "Period", "Item", "Value"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Revenue, net", table.Cell(0, 2))
	assert.Equal(t, "110", table.Cell(1, 3))
	// Out of range access is empty, not a panic.
	assert.Equal(t, "", table.Cell(99, 0))
}

func TestParseCRLF(t *testing.T) {
	table, err := Parse("Ticker,Period,Value\r\nAAA,2020,1\r\nAAA,2021,2\r\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ticker", "Period", "Value"}, table.Header)
	assert.Len(t, table.Rows, 2)
}
