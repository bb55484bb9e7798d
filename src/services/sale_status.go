// backend/src/services/sale_status.go
package services

import (
	"database/sql"
	"errors"

	"github.com/username/celuventas/backend/src/logger"
	"github.com/username/celuventas/backend/src/model"
	"github.com/username/celuventas/backend/src/models"
)

// SyncSaleStatus recomputes a sale's paid/pending state from its
// payments: Cancelado once the total paid covers the sale price,
// Pendiente otherwise. Writes only when the status actually changes.
// A missing sale is not an error: the payment may point at a record
// that was deleted meanwhile.
func SyncSaleStatus(db *sql.DB, saleID string) error {
	if saleID == "" {
		return nil
	}
	sale, err := model.GetSaleByID(db, saleID)
	if errors.Is(err, model.ErrSaleNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	totalPaid, err := model.SumPaymentsBySale(db, saleID)
	if err != nil {
		return err
	}

	newStatus := models.SaleStatusPending
	if totalPaid >= sale.SalePrice {
		newStatus = models.SaleStatusPaidOff
	}
	if sale.Status == newStatus {
		return nil
	}
	if err := model.UpdateSaleStatus(db, saleID, newStatus); err != nil {
		return err
	}
	logger.L.Info("Sale status synchronized", "saleID", saleID, "status", newStatus, "totalPaid", float64(totalPaid))
	return nil
}
