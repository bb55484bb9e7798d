// backend/src/model/expense.go
package model

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/username/celuventas/backend/src/models"
)

// ListExpenses returns every sale expense, most recent first.
func ListExpenses(db *sql.DB) ([]models.Expense, error) {
	rows, err := db.Query(`
		SELECT id, sale_id, description, amount, expense_date
		FROM expenses
		ORDER BY expense_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying expenses: %w", err)
	}
	defer rows.Close()
	var result []models.Expense
	for rows.Next() {
		var e models.Expense
		var amount float64
		if err := rows.Scan(&e.ID, &e.SaleID, &e.Description, &amount, &e.ExpenseDate); err != nil {
			return nil, fmt.Errorf("error scanning expense row: %w", err)
		}
		e.Amount = models.Money(amount)
		result = append(result, e)
	}
	return result, rows.Err()
}

// InsertExpense stores a new sale expense and returns its generated id.
func InsertExpense(db *sql.DB, e models.Expense) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO expenses (id, sale_id, description, amount, expense_date)
		VALUES (?, ?, ?, ?, ?)`,
		id, e.SaleID, e.Description, float64(e.Amount), e.ExpenseDate)
	if err != nil {
		return "", fmt.Errorf("error inserting expense: %w", err)
	}
	return id, nil
}
