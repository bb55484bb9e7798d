// backend/src/services/report_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/require"
	"github.com/username/celuventas/backend/src/model"
	"github.com/username/celuventas/backend/src/models"
)

func TestGetProfitReportComputesFromStoredRecords(t *testing.T) {
	db := setupTestDB(t)
	saleID := seedSale(t, db, 500000)

	sale, err := model.GetSaleByID(db, saleID)
	require.NoError(t, err)
	_, err = model.InsertPurchase(db, models.Purchase{
		Provider:     "Apple",
		ProductID:    sale.ProductID,
		Cost:         400000,
		PurchaseDate: "2024-02-01",
	})
	require.NoError(t, err)
	_, err = model.InsertPayment(db, models.Payment{SaleID: saleID, Amount: 300000, PaymentDate: "2024-03-05"})
	require.NoError(t, err)
	_, err = model.InsertExpense(db, models.Expense{SaleID: saleID, Description: "Cargador", Amount: 8000, ExpenseDate: "2024-03-05"})
	require.NoError(t, err)

	svc := NewReportService(db, cache.New(time.Minute, time.Minute))
	report, err := svc.GetProfitReport(models.ReportFilter{Mode: models.FilterModeAll})
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	require.Equal(t, "Laura", row.Client)
	require.Equal(t, models.Money(500000), row.SalePrice)
	require.Equal(t, models.Money(300000), row.Paid)
	require.Equal(t, models.Money(400000), row.PurchaseCost)
	require.Equal(t, models.Money(8000), row.ExpenseTotal)

	require.Equal(t, models.Money(500000), report.Totals.Ventas)
	require.Equal(t, models.Money(300000), report.Totals.Ingresos)
	require.Equal(t, models.Money(408000), report.Totals.Gastos)
	require.Equal(t, models.Money(-108000), report.Totals.Ganancia)
	require.Equal(t, models.Money(92000), report.Totals.GananciaEsperada)
}

func TestGetProfitReportServesCachedResultUntilInvalidated(t *testing.T) {
	db := setupTestDB(t)
	saleID := seedSale(t, db, 500000)
	sale, err := model.GetSaleByID(db, saleID)
	require.NoError(t, err)

	svc := NewReportService(db, cache.New(time.Minute, time.Minute))
	filter := models.ReportFilter{Mode: models.FilterModeAll}

	first, err := svc.GetProfitReport(filter)
	require.NoError(t, err)
	require.Equal(t, models.Money(500000), first.Totals.Ventas)

	// A write without invalidation is invisible to the cached report.
	_, err = model.InsertSale(db, models.Sale{
		ProductID: sale.ProductID,
		Client:    "Marco",
		SalePrice: 250000,
		SaleDate:  "2024-04-01",
		Status:    models.SaleStatusPending,
	})
	require.NoError(t, err)

	cached, err := svc.GetProfitReport(filter)
	require.NoError(t, err)
	require.Equal(t, models.Money(500000), cached.Totals.Ventas)

	svc.InvalidateReportCache()
	fresh, err := svc.GetProfitReport(filter)
	require.NoError(t, err)
	require.Equal(t, models.Money(750000), fresh.Totals.Ventas)
}

func TestGetProfitReportKeysCacheByFilter(t *testing.T) {
	db := setupTestDB(t)
	seedSale(t, db, 500000)

	svc := NewReportService(db, cache.New(time.Minute, time.Minute))

	all, err := svc.GetProfitReport(models.ReportFilter{Mode: models.FilterModeAll})
	require.NoError(t, err)
	require.Len(t, all.Rows, 0, "no purchases yet, so no rows")
	require.Equal(t, models.Money(500000), all.Totals.Ventas)

	// A range that misses the sale must not reuse the unfiltered entry.
	ranged, err := svc.GetProfitReport(models.ReportFilter{
		Mode:      models.FilterModeRange,
		StartDate: "2020-01-01",
		EndDate:   "2020-12-31",
	})
	require.NoError(t, err)
	require.Equal(t, models.Money(0), ranged.Totals.Ventas)
}
