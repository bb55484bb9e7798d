// backend/src/handlers/catalog_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/celuventas/backend/src/database"
	"github.com/username/celuventas/backend/src/logger"
	"github.com/username/celuventas/backend/src/model"
	"github.com/username/celuventas/backend/src/models"
	"github.com/username/celuventas/backend/src/security/validation"
	"github.com/username/celuventas/backend/src/utils"
)

// CatalogHandler serves the phone model and product reference data.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// HandleListModels serves GET /api/models.
func (h *CatalogHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	phoneModels, err := model.ListModels(database.DB)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list models", "error", err)
		utils.SendJSONError(w, "Failed to list models", http.StatusInternalServerError)
		return
	}
	if phoneModels == nil {
		phoneModels = []models.Model{}
	}
	utils.SendJSON(w, phoneModels, http.StatusOK)
}

// HandleCreateModel serves POST /api/models.
func (h *CatalogHandler) HandleCreateModel(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	var phoneModel models.Model
	if err := json.NewDecoder(r.Body).Decode(&phoneModel); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	phoneModel.Name = validation.CleanField(phoneModel.Name)
	phoneModel.Brand = validation.CleanField(phoneModel.Brand)
	phoneModel.Category = validation.CleanField(phoneModel.Category)

	if err := validation.ValidateStringNotEmpty(phoneModel.Name, "name"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateStringNotEmpty(phoneModel.Brand, "brand"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateStringMaxLength(phoneModel.Name, validation.DefaultMaxStringLength, "name"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := model.InsertModel(database.DB, phoneModel)
	if err != nil {
		ctxLogger.Error("Failed to insert model", "error", err)
		utils.SendJSONError(w, "Failed to create model", http.StatusInternalServerError)
		return
	}
	phoneModel.ID = id

	ctxLogger.Info("Model created", "modelID", id, "name", phoneModel.Name, "brand", phoneModel.Brand)
	utils.SendJSON(w, phoneModel, http.StatusCreated)
}

// HandleListProducts serves GET /api/products.
func (h *CatalogHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := model.ListProducts(database.DB)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list products", "error", err)
		utils.SendJSONError(w, "Failed to list products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	utils.SendJSON(w, products, http.StatusOK)
}

// HandleCreateProduct serves POST /api/products.
func (h *CatalogHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	product.Description = validation.CleanField(product.Description)

	if err := validation.ValidateStringNotEmpty(product.ModelID, "modelId"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateNonNegativeAmount(float64(product.Price), "price"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if product.Stock < 0 {
		utils.SendJSONError(w, "stock cannot be negative", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateStringMaxLength(product.Description, validation.MaxDescriptionLength, "description"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := model.InsertProduct(database.DB, product)
	if err != nil {
		ctxLogger.Error("Failed to insert product", "error", err)
		utils.SendJSONError(w, "Failed to create product", http.StatusInternalServerError)
		return
	}
	product.ID = id

	ctxLogger.Info("Product created", "productID", id, "modelID", product.ModelID)
	utils.SendJSON(w, product, http.StatusCreated)
}
