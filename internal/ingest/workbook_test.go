package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apierrors "finlens/internal/errors"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadWorkbook(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Quarterly export"},
		{"Ticker", "Year", "Item", "Value"},
		{"AAA", "2020", "Revenue", "100"},
		{"AAA", "2021", "Revenue", "110"},
	})

	table, err := ReadWorkbook(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ticker", "Year", "Item", "Value"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "110", table.Cell(1, 3))
}

func TestReadWorkbookNotAWorkbook(t *testing.T) {
	_, err := ReadWorkbook([]byte("plain,csv,text\n1,2,3\n"))
	require.Error(t, err)
	assert.True(t, apierrors.IsFormatError(err))
	assert.Contains(t, err.Error(), "unreadable workbook")
}
