package domain

// Concept is a canonical financial line-item identity. The set is fixed;
// labels that match no registered alias stay addressable by their raw text
// but never become a Concept.
type Concept string

const (
	ConceptRevenue            Concept = "revenue"
	ConceptCOGS               Concept = "cogs"
	ConceptGrossProfit        Concept = "gross_profit"
	ConceptEBIT               Concept = "ebit"
	ConceptEBITDA             Concept = "ebitda"
	ConceptInterestExpense    Concept = "interest_expense"
	ConceptNetProfit          Concept = "net_profit"
	ConceptProfitBeforeTax    Concept = "profit_before_tax"
	ConceptIncomeTax          Concept = "income_tax"
	ConceptSellingExpenses    Concept = "selling_expenses"
	ConceptAdminExpenses      Concept = "admin_expenses"
	ConceptFinancialIncome    Concept = "financial_income"
	ConceptFinancialExpenses  Concept = "financial_expenses"
	ConceptCurrentAssets      Concept = "current_assets"
	ConceptCash               Concept = "cash"
	ConceptReceivables        Concept = "receivables"
	ConceptInventory          Concept = "inventory"
	ConceptCurrentLiabilities Concept = "current_liabilities"
	ConceptTotalAssets        Concept = "total_assets"
	ConceptTotalLiabilities   Concept = "total_liabilities"
	ConceptEquity             Concept = "equity"
	ConceptShortTermDebt      Concept = "short_term_debt"
	ConceptLongTermDebt       Concept = "long_term_debt"
	ConceptTotalDebt          Concept = "total_debt"
	ConceptDepreciation       Concept = "depreciation_amortization"
	ConceptOperatingCashflow  Concept = "operating_cashflow"
)

// Concepts lists every canonical concept in a stable order.
var Concepts = []Concept{
	ConceptRevenue,
	ConceptCOGS,
	ConceptGrossProfit,
	ConceptEBIT,
	ConceptEBITDA,
	ConceptInterestExpense,
	ConceptNetProfit,
	ConceptProfitBeforeTax,
	ConceptIncomeTax,
	ConceptSellingExpenses,
	ConceptAdminExpenses,
	ConceptFinancialIncome,
	ConceptFinancialExpenses,
	ConceptCurrentAssets,
	ConceptCash,
	ConceptReceivables,
	ConceptInventory,
	ConceptCurrentLiabilities,
	ConceptTotalAssets,
	ConceptTotalLiabilities,
	ConceptEquity,
	ConceptShortTermDebt,
	ConceptLongTermDebt,
	ConceptTotalDebt,
	ConceptDepreciation,
	ConceptOperatingCashflow,
}
