// backend/src/model/payment.go
package model

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/username/celuventas/backend/src/models"
)

var ErrPaymentNotFound = errors.New("payment not found")

// ListPayments returns every payment, most recent payment date first.
func ListPayments(db *sql.DB) ([]models.Payment, error) {
	rows, err := db.Query(`
		SELECT id, sale_id, amount, payment_date, COALESCE(notes, '')
		FROM payments
		ORDER BY payment_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()
	var result []models.Payment
	for rows.Next() {
		var p models.Payment
		var amount float64
		if err := rows.Scan(&p.ID, &p.SaleID, &amount, &p.PaymentDate, &p.Notes); err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		p.Amount = models.Money(amount)
		result = append(result, p)
	}
	return result, rows.Err()
}

// GetPaymentByID fetches one payment.
func GetPaymentByID(db *sql.DB, id string) (*models.Payment, error) {
	var p models.Payment
	var amount float64
	err := db.QueryRow(`
		SELECT id, sale_id, amount, payment_date, COALESCE(notes, '')
		FROM payments
		WHERE id = ?`, id).Scan(&p.ID, &p.SaleID, &amount, &p.PaymentDate, &p.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying payment %s: %w", id, err)
	}
	p.Amount = models.Money(amount)
	return &p, nil
}

// InsertPayment stores a new payment and returns its generated id.
func InsertPayment(db *sql.DB, p models.Payment) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO payments (id, sale_id, amount, payment_date, notes)
		VALUES (?, ?, ?, ?, ?)`,
		id, p.SaleID, float64(p.Amount), p.PaymentDate, p.Notes)
	if err != nil {
		return "", fmt.Errorf("error inserting payment: %w", err)
	}
	return id, nil
}

// UpdatePayment overwrites an existing payment.
func UpdatePayment(db *sql.DB, p models.Payment) error {
	result, err := db.Exec(`
		UPDATE payments
		SET sale_id = ?, amount = ?, payment_date = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		p.SaleID, float64(p.Amount), p.PaymentDate, p.Notes, p.ID)
	if err != nil {
		return fmt.Errorf("error updating payment %s: %w", p.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking payment %s update: %w", p.ID, err)
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// DeletePayment removes a payment and returns the deleted record so the
// caller can re-sync the affected sale.
func DeletePayment(db *sql.DB, id string) (*models.Payment, error) {
	payment, err := GetPaymentByID(db, id)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`DELETE FROM payments WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("error deleting payment %s: %w", id, err)
	}
	return payment, nil
}

// SumPaymentsBySale totals the amounts paid toward one sale.
func SumPaymentsBySale(db *sql.DB, saleID string) (models.Money, error) {
	var total float64
	err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE sale_id = ?`, saleID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing payments for sale %s: %w", saleID, err)
	}
	return models.Money(total), nil
}
