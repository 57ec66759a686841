package indicators

import (
	"log/slog"

	"finlens/internal/period"
	"finlens/pkg/contracts/domain"
)

// Engine computes the fixed indicator catalogue from assembled per-concept
// time series. It is stateless between calls; the same input always yields
// the same table.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an indicator engine.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger.With(slog.String("component", "indicators"))}
}

// Compute derives all catalogue indicators for the union of periods that
// have at least one contributing input. Cells whose inputs are missing, or
// whose denominator is zero or absent, stay explicitly absent.
func (e *Engine) Compute(set map[domain.Concept]domain.TimeSeries) *domain.IndicatorTable {
	periods := unionPeriods(set)

	table := &domain.IndicatorTable{
		Names:   append([]string(nil), Catalogue...),
		Periods: periods,
		Series:  make(map[string]domain.TimeSeries, len(Catalogue)),
	}
	for _, name := range Catalogue {
		table.Series[name] = make(domain.TimeSeries)
	}

	for i, p := range periods {
		var prev domain.PeriodLabel
		if i > 0 {
			prev = periods[i-1]
		}
		row := e.computePeriod(set, p, prev, i > 0)
		for name, v := range row {
			if v.ok {
				table.Series[name][p] = v.v
			}
		}
	}

	e.logger.Debug("indicator table computed",
		slog.Int("periods", len(periods)),
		slog.Int("indicators", len(Catalogue)))
	return table
}

func (e *Engine) computePeriod(set map[domain.Concept]domain.TimeSeries, p, prev domain.PeriodLabel, hasPrev bool) map[string]value {
	get := func(c domain.Concept) value {
		if s, ok := set[c]; ok {
			if v, ok := s.Value(p); ok {
				return present(v)
			}
		}
		return absent
	}
	getPrev := func(c domain.Concept) value {
		if !hasPrev {
			return absent
		}
		if s, ok := set[c]; ok {
			if v, ok := s.Value(prev); ok {
				return present(v)
			}
		}
		return absent
	}

	revenue := get(domain.ConceptRevenue)
	cogs := get(domain.ConceptCOGS)
	ebit := get(domain.ConceptEBIT)
	interestExp := get(domain.ConceptInterestExpense)
	netProfit := get(domain.ConceptNetProfit)
	currentAssets := get(domain.ConceptCurrentAssets)
	cash := get(domain.ConceptCash)
	receivables := get(domain.ConceptReceivables)
	inventory := get(domain.ConceptInventory)
	currentLiab := get(domain.ConceptCurrentLiabilities)
	totalAssets := get(domain.ConceptTotalAssets)
	totalLiab := get(domain.ConceptTotalLiabilities)
	equity := get(domain.ConceptEquity)
	shortDebt := get(domain.ConceptShortTermDebt)
	longDebt := get(domain.ConceptLongTermDebt)
	da := get(domain.ConceptDepreciation)

	// Documented substitutions for missing source series.
	grossProfit := get(domain.ConceptGrossProfit).or(revenue.sub(cogs))
	totalDebt := get(domain.ConceptTotalDebt).or(shortDebt.add(longDebt)).or(totalLiab)
	ebitda := get(domain.ConceptEBITDA)
	if !ebitda.ok && ebit.ok {
		ebitda = ebit
		if da.ok {
			ebitda = ebit.add(da)
		}
	}

	quickNumerator := currentAssets.sub(inventory)
	if !inventory.ok {
		quickNumerator = cash.add(receivables)
	}

	avgReceivables := avg2(receivables, getPrev(domain.ConceptReceivables))
	avgInventory := avg2(inventory, getPrev(domain.ConceptInventory))
	avgAssets := avg2(totalAssets, getPrev(domain.ConceptTotalAssets))
	avgEquity := avg2(equity, getPrev(domain.ConceptEquity))

	return map[string]value{
		"Current Ratio":                   currentAssets.div(currentLiab),
		"Quick Ratio":                     quickNumerator.div(currentLiab),
		"Working Capital to Total Assets": currentAssets.sub(currentLiab).div(totalAssets),
		"Debt to Assets":                  totalDebt.div(totalAssets),
		"Debt to Equity":                  totalDebt.div(equity),
		"Equity to Liabilities":           equity.div(totalLiab),
		"Long Term Debt to Assets":        longDebt.div(totalAssets),
		"Net Debt to Equity":              totalDebt.sub(cash).div(equity),
		"Receivables Turnover":            revenue.div(avgReceivables),
		"Inventory Turnover":              cogs.or(revenue).div(avgInventory),
		"Asset Turnover":                  revenue.div(avgAssets),
		"ROA":                             netProfit.div(avgAssets),
		"ROE":                             netProfit.div(avgEquity),
		"EBIT to Assets":                  ebit.div(totalAssets),
		"Operating Income to Debt":        ebit.div(totalDebt),
		"Net Profit Margin":               netProfit.div(revenue),
		"Gross Margin":                    grossProfit.div(revenue),
		"Interest Coverage":               ebit.div(interestExp),
		"EBITDA to Interest":              ebitda.div(interestExp),
		"Total Debt to EBITDA":            totalDebt.div(ebitda),
	}
}

func unionPeriods(set map[domain.Concept]domain.TimeSeries) []domain.PeriodLabel {
	var labels []domain.PeriodLabel
	for _, s := range set {
		labels = append(labels, s.Periods()...)
	}
	return period.Unique(labels)
}
