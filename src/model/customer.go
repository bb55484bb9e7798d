// backend/src/model/customer.go
package model

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/username/celuventas/backend/src/models"
)

// ListCustomers returns every customer ordered by name.
func ListCustomers(db *sql.DB) ([]models.Customer, error) {
	rows, err := db.Query(`SELECT id, name FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying customers: %w", err)
	}
	defer rows.Close()
	var result []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("error scanning customer row: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// InsertCustomer stores a new customer and returns its generated id.
func InsertCustomer(db *sql.DB, c models.Customer) (string, error) {
	id := uuid.NewString()
	if _, err := db.Exec(`INSERT INTO customers (id, name) VALUES (?, ?)`, id, c.Name); err != nil {
		return "", fmt.Errorf("error inserting customer: %w", err)
	}
	return id, nil
}
