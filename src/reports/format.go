// backend/src/reports/format.go
package reports

import (
	"math"
	"strconv"
	"strings"

	"github.com/username/celuventas/backend/src/models"
)

const currencySymbol = "₡"

// FormatPrice renders a monetary value for display, matching the admin
// UI convention: amounts of a thousand or more collapse to "X mil" (one
// decimal when fractional, dot-separated), smaller amounts render as
// plain integers or two decimals with the es-CR decimal comma. The sign
// sits between the currency symbol and the digits. Display-only; the
// stored and aggregated values are never rounded.
func FormatPrice(price models.Money) string {
	sign := ""
	if price < 0 {
		sign = "-"
	}
	value := math.Round(math.Abs(float64(price))*100) / 100

	if value >= 1000 {
		thousands := value / 1000
		var formatted string
		if thousands == math.Trunc(thousands) {
			formatted = strconv.FormatFloat(thousands, 'f', -1, 64)
		} else {
			formatted = strconv.FormatFloat(thousands, 'f', 1, 64)
		}
		return currencySymbol + sign + formatted + " mil"
	}

	if value == math.Trunc(value) {
		return currencySymbol + sign + strconv.FormatFloat(value, 'f', 0, 64)
	}
	decimal := strconv.FormatFloat(value, 'f', 2, 64)
	return currencySymbol + sign + strings.Replace(decimal, ".", ",", 1)
}

// FormatTotals renders every field of a totals block for display.
func FormatTotals(totals models.ReportTotals) map[string]string {
	return map[string]string{
		"ventas":           FormatPrice(totals.Ventas),
		"ingresos":         FormatPrice(totals.Ingresos),
		"gastos":           FormatPrice(totals.Gastos),
		"ganancia":         FormatPrice(totals.Ganancia),
		"gananciaEsperada": FormatPrice(totals.GananciaEsperada),
		"esperadas":        FormatPrice(totals.Esperadas),
	}
}
