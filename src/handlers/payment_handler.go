// backend/src/handlers/payment_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/username/celuventas/backend/src/database"
	"github.com/username/celuventas/backend/src/logger"
	"github.com/username/celuventas/backend/src/model"
	"github.com/username/celuventas/backend/src/models"
	"github.com/username/celuventas/backend/src/security/validation"
	"github.com/username/celuventas/backend/src/services"
	"github.com/username/celuventas/backend/src/utils"
)

type PaymentHandler struct {
	reportService services.ReportService
}

func NewPaymentHandler(reportService services.ReportService) *PaymentHandler {
	return &PaymentHandler{
		reportService: reportService,
	}
}

// HandleListPayments serves GET /api/payments.
func (h *PaymentHandler) HandleListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := model.ListPayments(database.DB)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list payments", "error", err)
		utils.SendJSONError(w, "Failed to list payments", http.StatusInternalServerError)
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	utils.SendJSON(w, payments, http.StatusOK)
}

func validatePayment(p *models.Payment) error {
	if err := validation.ValidateStringNotEmpty(p.SaleID, "saleId"); err != nil {
		return err
	}
	if err := validation.ValidatePositiveAmount(float64(p.Amount), "amount"); err != nil {
		return err
	}
	if _, ok := models.ParseLocalDate(p.PaymentDate); !ok {
		return errors.New("paymentDate must be a valid YYYY-MM-DD date")
	}
	if err := validation.ValidateStringMaxLength(p.Notes, validation.MaxNotesLength, "notes"); err != nil {
		return err
	}
	return nil
}

// HandleCreatePayment serves POST /api/payments. The referenced sale's
// status is re-synced after the write, and the report cache is dropped.
func (h *PaymentHandler) HandleCreatePayment(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	payment.Notes = validation.CleanField(payment.Notes)

	if err := validatePayment(&payment); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := model.GetSaleByID(database.DB, payment.SaleID); err != nil {
		if errors.Is(err, model.ErrSaleNotFound) {
			utils.SendJSONError(w, "Sale not found", http.StatusBadRequest)
			return
		}
		ctxLogger.Error("Failed to look up sale for payment", "saleID", payment.SaleID, "error", err)
		utils.SendJSONError(w, "Failed to create payment", http.StatusInternalServerError)
		return
	}

	id, err := model.InsertPayment(database.DB, payment)
	if err != nil {
		ctxLogger.Error("Failed to insert payment", "error", err)
		utils.SendJSONError(w, "Failed to create payment", http.StatusInternalServerError)
		return
	}
	payment.ID = id

	if err := services.SyncSaleStatus(database.DB, payment.SaleID); err != nil {
		ctxLogger.Error("Failed to sync sale status after payment", "saleID", payment.SaleID, "error", err)
	}
	h.reportService.InvalidateReportCache()

	ctxLogger.Info("Payment created", "paymentID", id, "saleID", payment.SaleID, "amount", float64(payment.Amount))
	utils.SendJSON(w, payment, http.StatusCreated)
}

// HandleUpdatePayment serves PUT /api/payments/{id}. When the payment
// moves to a different sale, both the old and the new sale are re-synced.
func (h *PaymentHandler) HandleUpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())
	paymentID := chi.URLParam(r, "id")

	existing, err := model.GetPaymentByID(database.DB, paymentID)
	if err != nil {
		if errors.Is(err, model.ErrPaymentNotFound) {
			utils.SendJSONError(w, "Payment not found", http.StatusNotFound)
			return
		}
		ctxLogger.Error("Failed to load payment", "paymentID", paymentID, "error", err)
		utils.SendJSONError(w, "Failed to update payment", http.StatusInternalServerError)
		return
	}

	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	payment.ID = paymentID
	payment.Notes = validation.CleanField(payment.Notes)

	if err := validatePayment(&payment); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := model.GetSaleByID(database.DB, payment.SaleID); err != nil {
		if errors.Is(err, model.ErrSaleNotFound) {
			utils.SendJSONError(w, "Sale not found", http.StatusBadRequest)
			return
		}
		ctxLogger.Error("Failed to look up sale for payment", "saleID", payment.SaleID, "error", err)
		utils.SendJSONError(w, "Failed to update payment", http.StatusInternalServerError)
		return
	}

	if err := model.UpdatePayment(database.DB, payment); err != nil {
		if errors.Is(err, model.ErrPaymentNotFound) {
			utils.SendJSONError(w, "Payment not found", http.StatusNotFound)
			return
		}
		ctxLogger.Error("Failed to update payment", "paymentID", paymentID, "error", err)
		utils.SendJSONError(w, "Failed to update payment", http.StatusInternalServerError)
		return
	}

	if existing.SaleID != payment.SaleID {
		if err := services.SyncSaleStatus(database.DB, existing.SaleID); err != nil {
			ctxLogger.Error("Failed to sync previous sale status", "saleID", existing.SaleID, "error", err)
		}
	}
	if err := services.SyncSaleStatus(database.DB, payment.SaleID); err != nil {
		ctxLogger.Error("Failed to sync sale status after payment update", "saleID", payment.SaleID, "error", err)
	}
	h.reportService.InvalidateReportCache()

	ctxLogger.Info("Payment updated", "paymentID", paymentID, "saleID", payment.SaleID)
	utils.SendJSON(w, payment, http.StatusOK)
}

// HandleDeletePayment serves DELETE /api/payments/{id}.
func (h *PaymentHandler) HandleDeletePayment(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())
	paymentID := chi.URLParam(r, "id")

	deleted, err := model.DeletePayment(database.DB, paymentID)
	if err != nil {
		if errors.Is(err, model.ErrPaymentNotFound) {
			utils.SendJSONError(w, "Payment not found", http.StatusNotFound)
			return
		}
		ctxLogger.Error("Failed to delete payment", "paymentID", paymentID, "error", err)
		utils.SendJSONError(w, "Failed to delete payment", http.StatusInternalServerError)
		return
	}

	if err := services.SyncSaleStatus(database.DB, deleted.SaleID); err != nil {
		ctxLogger.Error("Failed to sync sale status after payment deletion", "saleID", deleted.SaleID, "error", err)
	}
	h.reportService.InvalidateReportCache()

	ctxLogger.Info("Payment deleted", "paymentID", paymentID, "saleID", deleted.SaleID)
	w.WriteHeader(http.StatusNoContent)
}
