// backend/src/handlers/purchase_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/username/celuventas/backend/src/database"
	"github.com/username/celuventas/backend/src/logger"
	"github.com/username/celuventas/backend/src/model"
	"github.com/username/celuventas/backend/src/models"
	"github.com/username/celuventas/backend/src/security/validation"
	"github.com/username/celuventas/backend/src/services"
	"github.com/username/celuventas/backend/src/utils"
)

type PurchaseHandler struct {
	reportService services.ReportService
}

func NewPurchaseHandler(reportService services.ReportService) *PurchaseHandler {
	return &PurchaseHandler{
		reportService: reportService,
	}
}

// HandleListPurchases serves GET /api/purchases.
func (h *PurchaseHandler) HandleListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := model.ListPurchases(database.DB)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list purchases", "error", err)
		utils.SendJSONError(w, "Failed to list purchases", http.StatusInternalServerError)
		return
	}
	if purchases == nil {
		purchases = []models.Purchase{}
	}
	utils.SendJSON(w, purchases, http.StatusOK)
}

// HandleCreatePurchase serves POST /api/purchases.
func (h *PurchaseHandler) HandleCreatePurchase(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	var purchase models.Purchase
	if err := json.NewDecoder(r.Body).Decode(&purchase); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	purchase.Notes = validation.CleanField(purchase.Notes)

	if err := validation.ValidateStringNotEmpty(purchase.ProductID, "productId"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateNonNegativeAmount(float64(purchase.Cost), "cost"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, ok := models.ParseLocalDate(purchase.PurchaseDate); !ok {
		utils.SendJSONError(w, "purchaseDate must be a valid YYYY-MM-DD date", http.StatusBadRequest)
		return
	}
	if purchase.Provider != "" {
		if err := validation.ValidateOneOf(purchase.Provider, models.PurchaseProviders, "provider"); err != nil {
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := validation.ValidateStringMaxLength(purchase.Notes, validation.MaxNotesLength, "notes"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := model.GetProductByID(database.DB, purchase.ProductID); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			utils.SendJSONError(w, "Product not found", http.StatusBadRequest)
			return
		}
		ctxLogger.Error("Failed to look up product for purchase", "productID", purchase.ProductID, "error", err)
		utils.SendJSONError(w, "Failed to create purchase", http.StatusInternalServerError)
		return
	}

	id, err := model.InsertPurchase(database.DB, purchase)
	if err != nil {
		ctxLogger.Error("Failed to insert purchase", "error", err)
		utils.SendJSONError(w, "Failed to create purchase", http.StatusInternalServerError)
		return
	}
	purchase.ID = id

	h.reportService.InvalidateReportCache()

	ctxLogger.Info("Purchase created", "purchaseID", id, "productID", purchase.ProductID, "cost", float64(purchase.Cost))
	utils.SendJSON(w, purchase, http.StatusCreated)
}
