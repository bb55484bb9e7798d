// backend/src/handlers/sale_handler.go
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

type SaleHandler struct {
	reportService services.ReportService
}

func NewSaleHandler(reportService services.ReportService) *SaleHandler {
	return &SaleHandler{
		reportService: reportService,
	}
}

// HandleListSales serves GET /api/sales.
func (h *SaleHandler) HandleListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := model.ListSales(database.DB)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list sales", "error", err)
		utils.SendJSONError(w, "Failed to list sales", http.StatusInternalServerError)
		return
	}
	if sales == nil {
		sales = []models.Sale{}
	}
	utils.SendJSON(w, sales, http.StatusOK)
}

// HandleCreateSale serves POST /api/sales. New sales start as Pendiente
// unless a valid status is supplied; linking to a purchase is optional.
func (h *SaleHandler) HandleCreateSale(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	var sale models.Sale
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	sale.Client = validation.CleanField(sale.Client)
	sale.Notes = validation.CleanField(sale.Notes)

	if err := validation.ValidateStringNotEmpty(sale.ProductID, "productId"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateNonNegativeAmount(float64(sale.SalePrice), "salePrice"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, ok := models.ParseLocalDate(sale.SaleDate); !ok {
		utils.SendJSONError(w, "saleDate must be a valid YYYY-MM-DD date", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateStringMaxLength(sale.Client, validation.MaxClientNameLength, "client"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateStringMaxLength(sale.Notes, validation.MaxNotesLength, "notes"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sale.Status == "" {
		sale.Status = models.SaleStatusPending
	}
	if err := validation.ValidateOneOf(sale.Status, []string{models.SaleStatusPending, models.SaleStatusPaidOff}, "status"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := model.GetProductByID(database.DB, sale.ProductID); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			utils.SendJSONError(w, "Product not found", http.StatusBadRequest)
			return
		}
		ctxLogger.Error("Failed to look up product for sale", "productID", sale.ProductID, "error", err)
		utils.SendJSONError(w, "Failed to create sale", http.StatusInternalServerError)
		return
	}

	id, err := model.InsertSale(database.DB, sale)
	if err != nil {
		ctxLogger.Error("Failed to insert sale", "error", err)
		utils.SendJSONError(w, "Failed to create sale", http.StatusInternalServerError)
		return
	}
	sale.ID = id

	h.reportService.InvalidateReportCache()

	ctxLogger.Info("Sale created", "saleID", id, "productID", sale.ProductID, "client", sale.Client)
	utils.SendJSON(w, sale, http.StatusCreated)
}
