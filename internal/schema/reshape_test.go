package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "finlens/internal/errors"
	"finlens/internal/ingest"
	"finlens/pkg/contracts/domain"
)

func longTable() *ingest.Table {
	return &ingest.Table{
		Header: []string{"Ticker", "Year", "Statement", "Item", "Value"},
		Rows: [][]string{
			{"aaa", "2020", "Income Statement", "Net revenue", "100"},
			{"aaa", "2020", "Balance Sheet", "Total assets", "1.234,5"},
			{"aaa", "2021", "Income Statement", "Net revenue", "110"},
			{"bbb", "2020", "Income Statement", "Net revenue", "55"},
			{"aaa", "2020", "Income Statement", "Footnote only", "-"},
			{"", "2020", "Income Statement", "Net revenue", "1"},
		},
	}
}

func wideTable() *ingest.Table {
	return &ingest.Table{
		Header: []string{"Chỉ tiêu", "2020", "2021", "2022F", "Note"},
		Rows: [][]string{
			{"Doanh thu thuần", "100", "110", "120", "x"},
			{"Tổng tài sản", "1.000,5", "1.100", "-", ""},
			{"", "9", "9", "9", ""},
		},
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, FormLong, Classify(longTable()))
	assert.Equal(t, FormWide, Classify(wideTable()))

	// Missing the statement column demotes to wide.
	assert.Equal(t, FormWide, Classify(&ingest.Table{
		Header: []string{"Ticker", "Year", "Item", "Value"},
	}))
}

func TestReshapeLong(t *testing.T) {
	records, err := Reshape(longTable(), nil)
	require.NoError(t, err)

	// The "-" value row and the empty-company row drop out.
	require.Len(t, records, 4)

	first := records[0]
	assert.Equal(t, "AAA", first.Company)
	assert.Equal(t, domain.PeriodLabel("2020"), first.Period)
	assert.Equal(t, domain.StatementIncome, first.Statement)
	assert.Equal(t, domain.ConceptRevenue, first.Concept)
	assert.Equal(t, 100.0, first.Value)

	assets := records[1]
	assert.Equal(t, domain.StatementBalance, assets.Statement)
	assert.Equal(t, domain.ConceptTotalAssets, assets.Concept)
	assert.InDelta(t, 1234.5, assets.Value, 1e-9)
}

func TestReshapeWide(t *testing.T) {
	records, err := Reshape(wideTable(), nil)
	require.NoError(t, err)

	// 3 parseable revenue cells + 2 parseable asset cells; the unlabeled
	// row and the "Note" column contribute nothing.
	require.Len(t, records, 5)

	for _, rec := range records {
		assert.Equal(t, DefaultCompany, rec.Company)
	}
	assert.Equal(t, domain.PeriodLabel("2022F"), records[2].Period)
	assert.Equal(t, 120.0, records[2].Value)
	assert.Equal(t, domain.ConceptTotalAssets, records[3].Concept)
	assert.InDelta(t, 1000.5, records[3].Value, 1e-9)
}

func TestReshapeWideNoYearColumns(t *testing.T) {
	_, err := Reshape(&ingest.Table{
		Header: []string{"Item", "Alpha", "Beta"},
		Rows:   [][]string{{"Revenue", "1", "2"}},
	}, nil)
	require.Error(t, err)
	assert.True(t, apierrors.IsFormatError(err))
	assert.Contains(t, err.Error(), "no year-like columns")
}

func TestReshapeNoUsableRows(t *testing.T) {
	_, err := Reshape(&ingest.Table{
		Header: []string{"Item", "2020"},
		Rows:   [][]string{{"Revenue", "-"}, {"", "5"}},
	}, nil)
	require.Error(t, err)
	assert.True(t, apierrors.IsSchemaError(err))
}
