// backend/src/reports/report.go
package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/celuventas/backend/src/models"
)

const unknownProductLabel = "Producto desconocido"

// ComputeReport builds the profit report from snapshots of the four
// collections. It is pure and stateless: the same inputs always produce
// the same rows and totals, and nothing survives between invocations.
func ComputeReport(
	purchases []models.Purchase,
	sales []models.Sale,
	payments []models.Payment,
	expenses []models.Expense,
	filter models.ReportFilter,
) models.ProfitReport {
	matched := ResolveSales(purchases, sales)
	paidBySale := PaymentsBySale(payments)
	spentBySale := ExpensesBySale(expenses)

	rows := make([]models.ReportRow, 0, len(purchases))
	for i, purchase := range purchases {
		rows = append(rows, buildRow(purchase, i, matched[i], paidBySale, spentBySale))
	}
	// Newest sales first; rows with no parseable date sink to the end.
	sort.SliceStable(rows, func(i, j int) bool {
		return dateMillis(rows[i].Date) > dateMillis(rows[j].Date)
	})

	from, to := rangeBounds(filter)
	filteredRows := filterRows(rows, filter, from, to)

	totals := models.ReportTotals{}
	for _, row := range filteredRows {
		totals.Ingresos += row.Paid
		totals.Gastos += row.PurchaseCost + row.ExpenseTotal
		totals.Esperadas += row.SalePrice
	}
	totals.Ganancia = totals.Ingresos - totals.Gastos
	totals.GananciaEsperada = totals.Esperadas - totals.Gastos

	// The gross sales total runs over the raw sale collection with the
	// same window so it reconciles against actual sales even where the
	// purchase linkage is poor.
	for _, sale := range sales {
		if filter.Mode == models.FilterModeRange && !inRange(sale.SaleDate, from, to) {
			continue
		}
		totals.Ventas += sale.SalePrice
	}

	return models.ProfitReport{Rows: filteredRows, Totals: totals}
}

func buildRow(
	purchase models.Purchase,
	index int,
	sale *models.Sale,
	paidBySale map[string]models.Money,
	spentBySale map[string]models.Money,
) models.ReportRow {
	product := purchase.Product
	productID := purchaseProductID(purchase)

	// The row id only has to be unique within one report; purchases
	// missing an id fall back to a positional key.
	id := ""
	switch {
	case purchase.ID != "":
		id = "purchase-" + purchase.ID
	case productID != "":
		id = "purchase-missing-" + productID
	default:
		id = fmt.Sprintf("purchase-missing-%d", index)
	}

	label := unknownProductLabel
	if product != nil && product.Model != nil {
		label = product.Model.Brand + " " + product.Model.Name
	}

	row := models.ReportRow{
		ID:           id,
		ProductLabel: label,
		PurchaseCost: purchase.Cost,
	}
	if sale != nil {
		row.Date = sale.SaleDate
		row.Client = sale.Client
		row.SalePrice = sale.SalePrice
		if sale.ID != "" {
			row.Paid = paidBySale[sale.ID]
			row.ExpenseTotal = spentBySale[sale.ID]
		}
	} else if product != nil {
		// Unsold inventory still shows the list price as an expected
		// stand-in value in projections.
		row.SalePrice = product.Price
	}
	return row
}

// rangeBounds resolves the filter's optional date window. Unparseable
// bounds leave that side of the range open, like an empty input field.
func rangeBounds(filter models.ReportFilter) (from, to *time.Time) {
	if filter.Mode != models.FilterModeRange {
		return nil, nil
	}
	if t, ok := models.ParseLocalDate(filter.StartDate); ok {
		from = &t
	}
	if t, ok := models.ParseLocalDate(filter.EndDate); ok {
		end := models.EndOfDay(t)
		to = &end
	}
	return from, to
}

func filterRows(rows []models.ReportRow, filter models.ReportFilter, from, to *time.Time) []models.ReportRow {
	if filter.Mode != models.FilterModeRange {
		return rows
	}
	filtered := make([]models.ReportRow, 0, len(rows))
	for _, row := range rows {
		if inRange(row.Date, from, to) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// inRange reports whether a record date falls inside the window. A date
// that cannot be parsed is excluded outright: it cannot be known to fall
// inside or outside.
func inRange(date string, from, to *time.Time) bool {
	d, ok := models.ParseLocalDate(date)
	if !ok {
		return false
	}
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}
