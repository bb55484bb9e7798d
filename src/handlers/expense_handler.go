// backend/src/handlers/expense_handler.go
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

type ExpenseHandler struct {
	reportService services.ReportService
}

func NewExpenseHandler(reportService services.ReportService) *ExpenseHandler {
	return &ExpenseHandler{
		reportService: reportService,
	}
}

// HandleListExpenses serves GET /api/expenses.
func (h *ExpenseHandler) HandleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := model.ListExpenses(database.DB)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list expenses", "error", err)
		utils.SendJSONError(w, "Failed to list expenses", http.StatusInternalServerError)
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	utils.SendJSON(w, expenses, http.StatusOK)
}

// HandleCreateExpense serves POST /api/expenses.
func (h *ExpenseHandler) HandleCreateExpense(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	expense.Description = validation.CleanField(expense.Description)

	if err := validation.ValidateStringNotEmpty(expense.SaleID, "saleId"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateStringNotEmpty(expense.Description, "description"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateStringMaxLength(expense.Description, validation.MaxDescriptionLength, "description"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePositiveAmount(float64(expense.Amount), "amount"); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, ok := models.ParseLocalDate(expense.ExpenseDate); !ok {
		utils.SendJSONError(w, "expenseDate must be a valid YYYY-MM-DD date", http.StatusBadRequest)
		return
	}

	if _, err := model.GetSaleByID(database.DB, expense.SaleID); err != nil {
		if errors.Is(err, model.ErrSaleNotFound) {
			utils.SendJSONError(w, "Sale not found", http.StatusBadRequest)
			return
		}
		ctxLogger.Error("Failed to look up sale for expense", "saleID", expense.SaleID, "error", err)
		utils.SendJSONError(w, "Failed to create expense", http.StatusInternalServerError)
		return
	}

	id, err := model.InsertExpense(database.DB, expense)
	if err != nil {
		ctxLogger.Error("Failed to insert expense", "error", err)
		utils.SendJSONError(w, "Failed to create expense", http.StatusInternalServerError)
		return
	}
	expense.ID = id

	h.reportService.InvalidateReportCache()

	ctxLogger.Info("Expense created", "expenseID", id, "saleID", expense.SaleID, "amount", float64(expense.Amount))
	utils.SendJSON(w, expense, http.StatusCreated)
}
