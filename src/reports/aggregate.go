// backend/src/reports/aggregate.go
package reports

import "github.com/username/celuventas/backend/src/models"

// PaymentsBySale folds payment amounts into a saleID -> total map.
// Sales with no payments are simply absent; callers treat a missing key
// as zero. No rounding happens here, rounding is a presentation
// concern.
func PaymentsBySale(payments []models.Payment) map[string]models.Money {
	totals := make(map[string]models.Money)
	for _, payment := range payments {
		if payment.SaleID == "" {
			continue
		}
		totals[payment.SaleID] += payment.Amount
	}
	return totals
}

// ExpensesBySale folds expense amounts into a saleID -> total map, with
// the same absent-means-zero contract as PaymentsBySale.
func ExpensesBySale(expenses []models.Expense) map[string]models.Money {
	totals := make(map[string]models.Money)
	for _, expense := range expenses {
		if expense.SaleID == "" {
			continue
		}
		totals[expense.SaleID] += expense.Amount
	}
	return totals
}
