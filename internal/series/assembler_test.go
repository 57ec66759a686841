package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finlens/pkg/contracts/domain"
)

func rec(company, period string, kind domain.StatementKind, c domain.Concept, v float64) domain.ObservedRecord {
	return domain.ObservedRecord{
		Company:   company,
		Period:    domain.PeriodLabel(period),
		Statement: kind,
		Concept:   c,
		Label:     string(c),
		Value:     v,
	}
}

func TestAssembleSumsDuplicates(t *testing.T) {
	records := []domain.ObservedRecord{
		rec("AAA", "2020", domain.StatementIncome, domain.ConceptRevenue, 60),
		rec("AAA", "2020", domain.StatementIncome, domain.ConceptRevenue, 40),
		rec("AAA", "2021", domain.StatementIncome, domain.ConceptRevenue, 110),
		rec("BBB", "2020", domain.StatementIncome, domain.ConceptRevenue, 999),
	}
	s := Assemble(records, "AAA", domain.ConceptRevenue, domain.StatementIncome)
	require.Len(t, s, 2)

	v, ok := s.Value("2020")
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)

	_, ok = s.Value("2019")
	assert.False(t, ok)
}

func TestAssembleStatementFilterFallback(t *testing.T) {
	// Revenue rows misfiled under "other" still assemble when the income
	// section holds no match.
	records := []domain.ObservedRecord{
		rec("AAA", "2020", domain.StatementOther, domain.ConceptRevenue, 100),
	}
	s := Assemble(records, "AAA", domain.ConceptRevenue, domain.StatementIncome)
	v, ok := s.Value("2020")
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)

	// With income rows present, the filter excludes the misfiled one.
	records = append(records,
		rec("AAA", "2020", domain.StatementIncome, domain.ConceptRevenue, 70))
	s = Assemble(records, "AAA", domain.ConceptRevenue, domain.StatementIncome)
	v, _ = s.Value("2020")
	assert.Equal(t, 70.0, v)
}

func TestCompaniesAndForCompany(t *testing.T) {
	records := []domain.ObservedRecord{
		rec("BBB", "2020", domain.StatementIncome, domain.ConceptRevenue, 1),
		rec("AAA", "2020", domain.StatementIncome, domain.ConceptRevenue, 2),
		rec("AAA", "2021", domain.StatementIncome, domain.ConceptRevenue, 3),
	}
	assert.Equal(t, []string{"AAA", "BBB"}, Companies(records))
	assert.Len(t, ForCompany(records, "AAA"), 2)
	assert.Empty(t, ForCompany(records, "CCC"))
}

func TestWindowYears(t *testing.T) {
	records := []domain.ObservedRecord{
		rec("AAA", "2017", domain.StatementIncome, domain.ConceptRevenue, 1),
		rec("AAA", "2020", domain.StatementIncome, domain.ConceptRevenue, 2),
		rec("AAA", "2021", domain.StatementIncome, domain.ConceptRevenue, 3),
		rec("AAA", "2022F", domain.StatementIncome, domain.ConceptRevenue, 4),
	}

	// The window counts from 2021, the latest actual year; the 2022
	// forecast is not the anchor but survives the cut.
	got := WindowYears(records, 2)
	require.Len(t, got, 3)
	assert.Equal(t, domain.PeriodLabel("2020"), got[0].Period)
	assert.Equal(t, domain.PeriodLabel("2022F"), got[2].Period)

	// Zero disables windowing.
	assert.Len(t, WindowYears(records, 0), 4)
}

func TestConceptSetSkipsEmpty(t *testing.T) {
	records := []domain.ObservedRecord{
		rec("AAA", "2020", domain.StatementIncome, domain.ConceptRevenue, 100),
		rec("AAA", "2020", domain.StatementBalance, domain.ConceptTotalAssets, 500),
	}
	set := ConceptSet(records, "AAA")
	require.Len(t, set, 2)
	assert.Contains(t, set, domain.ConceptRevenue)
	assert.Contains(t, set, domain.ConceptTotalAssets)
	assert.NotContains(t, set, domain.ConceptInventory)
}

func TestStatementView(t *testing.T) {
	records := []domain.ObservedRecord{
		{Company: "AAA", Period: "2021", Statement: domain.StatementIncome, Label: "Revenue", Value: 110},
		{Company: "AAA", Period: "2020", Statement: domain.StatementIncome, Label: "Revenue", Value: 100},
		{Company: "AAA", Period: "2020", Statement: domain.StatementIncome, Label: "COGS", Value: 60},
		{Company: "AAA", Period: "2020", Statement: domain.StatementBalance, Label: "Total assets", Value: 900},
	}
	table := StatementView(records, "AAA", domain.StatementIncome)

	assert.Equal(t, []string{"COGS", "Revenue"}, table.Labels)
	assert.Equal(t, []domain.PeriodLabel{"2020", "2021"}, table.Periods)

	v, ok := table.Value("Revenue", "2021")
	assert.True(t, ok)
	assert.Equal(t, 110.0, v)

	_, ok = table.Value("COGS", "2021")
	assert.False(t, ok)
}
