package models

// Filter modes for the profit report.
const (
	FilterModeAll   = "all"
	FilterModeRange = "range"
)

// ReportFilter selects the date window for a profit report. Dates are
// YYYY-MM-DD strings compared as local calendar days; EndDate is
// inclusive through the last millisecond of that day. Either bound may
// be empty to leave that side of the range open.
type ReportFilter struct {
	Mode      string `json:"mode"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// ReportRow is one line of the profit report, representing one purchase
// (matched to a sale or not). Rows are computed fresh on every report
// request and never persisted.
type ReportRow struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Client       string `json:"client"`
	ProductLabel string `json:"productLabel"`
	SalePrice    Money  `json:"salePrice"`
	Paid         Money  `json:"paid"`
	PurchaseCost Money  `json:"purchaseCost"`
	ExpenseTotal Money  `json:"expenseTotal"`
}

// ReportTotals carries the five row-level aggregates plus the gross
// sales total, which is computed over the raw sale collection for the
// same window so it reconciles against actual sales regardless of
// purchase-linkage quality.
type ReportTotals struct {
	Ventas           Money `json:"ventas"`
	Ingresos         Money `json:"ingresos"`
	Gastos           Money `json:"gastos"`
	Ganancia         Money `json:"ganancia"`
	GananciaEsperada Money `json:"gananciaEsperada"`
	Esperadas        Money `json:"esperadas"`
}

// ProfitReport is the full result of one report computation.
type ProfitReport struct {
	Rows   []ReportRow  `json:"rows"`
	Totals ReportTotals `json:"totals"`
}

// TopProduct is one entry of the top-sellers listing: a product with its
// sale count and the date it last sold.
type TopProduct struct {
	Product    Product `json:"product"`
	Count      int     `json:"count"`
	LastSoldAt string  `json:"lastSoldAt"`
}
