package concepts

import (
	"finlens/pkg/contracts/domain"
)

// Registry owns the alias tables: one ordered list of canonical alias
// strings per concept, covering English and Vietnamese phrasings and
// common abbreviations. It is the single source of truth for recognized
// vocabulary; resolver logic never hard-codes labels.
type Registry struct {
	order   []domain.Concept
	aliases map[domain.Concept][]string
}

// NewRegistry builds the default registry. The concept order matters for
// the substring pass: more specific vocabularies come first so that e.g.
// "doanh thu hoat dong tai chinh" resolves to financial income rather than
// revenue, and "ebitda" is never swallowed by "ebit".
func NewRegistry() *Registry {
	r := &Registry{aliases: make(map[domain.Concept][]string)}

	r.Register(domain.ConceptFinancialIncome,
		"financial income", "interest income", "dividend income",
		"doanh thu hoat dong tai chinh")
	r.Register(domain.ConceptFinancialExpenses,
		"financial expenses", "financial expense", "chi phi tai chinh")
	r.Register(domain.ConceptInterestExpense,
		"interest expense", "chi phi lai vay")
	r.Register(domain.ConceptGrossProfit,
		"gross profit", "loi nhuan gop")
	r.Register(domain.ConceptProfitBeforeTax,
		"profit before tax", "pre tax profit", "loi nhuan truoc thue")
	// Net profit precedes income tax: "loi nhuan sau thue thu nhap doanh
	// nghiep" contains the income tax alias and must still resolve here.
	r.Register(domain.ConceptNetProfit,
		"net profit after tax", "profit after tax", "net profit", "net income",
		"loi nhuan sau thue", "pat")
	r.Register(domain.ConceptIncomeTax,
		"corporate income tax", "income tax expense", "thue thu nhap doanh nghiep")
	r.Register(domain.ConceptEBITDA,
		"ebitda")
	r.Register(domain.ConceptEBIT,
		"operating profit", "profit from business activities",
		"loi nhuan thuan tu hoat dong kinh doanh", "ebit")
	r.Register(domain.ConceptCOGS,
		"cost of goods sold", "cogs", "gia von hang ban", "gia von")
	r.Register(domain.ConceptSellingExpenses,
		"selling expenses", "selling expense", "chi phi ban hang")
	r.Register(domain.ConceptAdminExpenses,
		"general and administrative", "administrative expenses",
		"chi phi quan ly doanh nghiep", "chi phi quan ly")
	r.Register(domain.ConceptRevenue,
		"net revenue", "net sales", "revenue", "sales",
		"doanh thu thuan", "doanh thu")
	r.Register(domain.ConceptOperatingCashflow,
		"net cash from operating activities", "operating cash flow",
		"cash flow from operations",
		"luu chuyen tien thuan tu hoat dong kinh doanh", "ocf")
	r.Register(domain.ConceptDepreciation,
		"depreciation and amortization", "depreciation amortization",
		"depreciation", "khau hao", "hao mon")
	r.Register(domain.ConceptCurrentAssets,
		"current assets", "tai san ngan han")
	r.Register(domain.ConceptTotalAssets,
		"total assets", "tong cong tai san", "tong tai san")
	r.Register(domain.ConceptCurrentLiabilities,
		"current liabilities", "no ngan han")
	r.Register(domain.ConceptTotalLiabilities,
		"total liabilities", "tong no phai tra", "no phai tra")
	r.Register(domain.ConceptShortTermDebt,
		"short term loans", "short term borrowings", "short term debt",
		"vay va no thue tai chinh ngan han", "vay ngan han")
	r.Register(domain.ConceptLongTermDebt,
		"long term loans", "long term borrowings", "long term debt",
		"vay va no thue tai chinh dai han", "vay dai han")
	r.Register(domain.ConceptTotalDebt,
		"total debt", "tong no vay")
	r.Register(domain.ConceptReceivables,
		"accounts receivable", "receivables", "cac khoan phai thu", "phai thu")
	r.Register(domain.ConceptInventory,
		"inventories", "inventory", "hang ton kho")
	r.Register(domain.ConceptEquity,
		"shareholders equity", "owners equity", "owner s equity",
		"total equity", "von chu so huu", "equity")
	r.Register(domain.ConceptCash,
		"cash and cash equivalents", "cash equivalents",
		"tien va cac khoan tuong duong tien", "tien va tuong duong tien", "cash")

	return r
}

// Register appends aliases for a concept. Aliases are stored in canonical
// form; registration order within a concept and across concepts is
// preserved.
func (r *Registry) Register(c domain.Concept, aliases ...string) {
	if _, seen := r.aliases[c]; !seen {
		r.order = append(r.order, c)
	}
	for _, a := range aliases {
		r.aliases[c] = append(r.aliases[c], Canonicalize(a))
	}
}

// preferredStatement pins concepts that could plausibly match rows in more
// than one statement to the section they are counted from.
var preferredStatement = map[domain.Concept]domain.StatementKind{
	domain.ConceptRevenue:           domain.StatementIncome,
	domain.ConceptCOGS:              domain.StatementIncome,
	domain.ConceptGrossProfit:       domain.StatementIncome,
	domain.ConceptEBIT:              domain.StatementIncome,
	domain.ConceptEBITDA:            domain.StatementIncome,
	domain.ConceptInterestExpense:   domain.StatementIncome,
	domain.ConceptNetProfit:         domain.StatementIncome,
	domain.ConceptProfitBeforeTax:   domain.StatementIncome,
	domain.ConceptIncomeTax:         domain.StatementIncome,
	domain.ConceptSellingExpenses:   domain.StatementIncome,
	domain.ConceptAdminExpenses:     domain.StatementIncome,
	domain.ConceptFinancialIncome:   domain.StatementIncome,
	domain.ConceptFinancialExpenses: domain.StatementIncome,

	domain.ConceptCurrentAssets:      domain.StatementBalance,
	domain.ConceptCash:               domain.StatementBalance,
	domain.ConceptReceivables:        domain.StatementBalance,
	domain.ConceptInventory:          domain.StatementBalance,
	domain.ConceptCurrentLiabilities: domain.StatementBalance,
	domain.ConceptTotalAssets:        domain.StatementBalance,
	domain.ConceptTotalLiabilities:   domain.StatementBalance,
	domain.ConceptEquity:             domain.StatementBalance,
	domain.ConceptShortTermDebt:      domain.StatementBalance,
	domain.ConceptLongTermDebt:       domain.StatementBalance,
	domain.ConceptTotalDebt:          domain.StatementBalance,

	domain.ConceptDepreciation:      domain.StatementCashflow,
	domain.ConceptOperatingCashflow: domain.StatementCashflow,
}

// PreferredStatement returns the statement section a concept is counted
// from, and whether one is pinned at all.
func PreferredStatement(c domain.Concept) (domain.StatementKind, bool) {
	k, ok := preferredStatement[c]
	return k, ok
}
