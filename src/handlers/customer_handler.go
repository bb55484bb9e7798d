// backend/src/handlers/customer_handler.go
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

type CustomerHandler struct{}

func NewCustomerHandler() *CustomerHandler {
	return &CustomerHandler{}
}

// HandleListCustomers serves GET /api/customers.
func (h *CustomerHandler) HandleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := model.ListCustomers(database.DB)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list customers", "error", err)
		utils.SendJSONError(w, "Failed to list customers", http.StatusInternalServerError)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	utils.SendJSON(w, customers, http.StatusOK)
}

// HandleCreateCustomer serves POST /api/customers.
func (h *CustomerHandler) HandleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	customer.Name = validation.CleanField(customer.Name)

	if err := validation.ValidateStringNotEmpty(customer.Name, "name"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateStringMaxLength(customer.Name, validation.MaxClientNameLength, "name"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := model.InsertCustomer(database.DB, customer)
	if err != nil {
		ctxLogger.Error("Failed to insert customer", "error", err)
		utils.SendJSONError(w, "Failed to create customer", http.StatusInternalServerError)
		return
	}
	customer.ID = id

	ctxLogger.Info("Customer created", "customerID", id, "name", customer.Name)
	utils.SendJSON(w, customer, http.StatusCreated)
}
