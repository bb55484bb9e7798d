// backend/src/model/sale.go
package model

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/username/celuventas/backend/src/models"
)

var ErrSaleNotFound = errors.New("sale not found")

// ListSales returns every sale with its product (and the product's
// model) populated, newest first.
func ListSales(db *sql.DB) ([]models.Sale, error) {
	rows, err := db.Query(`
		SELECT s.id, s.product_id, COALESCE(s.purchase_id, ''), s.client, s.sale_price,
		       s.sale_date, s.status, COALESCE(s.notes, ''),
		       p.id, p.model_id, p.price, COALESCE(p.storage, ''), COALESCE(p.color, ''),
		       m.id, m.name, m.brand, m.category
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		LEFT JOIN models m ON m.id = p.model_id
		ORDER BY s.sale_date DESC, s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()
	var result []models.Sale
	for rows.Next() {
		var s models.Sale
		var salePrice float64
		var productID, productModelID, productStorage, productColor sql.NullString
		var productPrice sql.NullFloat64
		var modelID, modelName, modelBrand, modelCategory sql.NullString
		err := rows.Scan(
			&s.ID, &s.ProductID, &s.PurchaseID, &s.Client, &salePrice,
			&s.SaleDate, &s.Status, &s.Notes,
			&productID, &productModelID, &productPrice, &productStorage, &productColor,
			&modelID, &modelName, &modelBrand, &modelCategory,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale row: %w", err)
		}
		s.SalePrice = models.Money(salePrice)
		if productID.Valid {
			s.Product = &models.Product{
				ID:      productID.String,
				ModelID: productModelID.String,
				Price:   models.Money(productPrice.Float64),
				Storage: productStorage.String,
				Color:   productColor.String,
			}
			if modelID.Valid {
				s.Product.Model = &models.Model{
					ID:       modelID.String,
					Name:     modelName.String,
					Brand:    modelBrand.String,
					Category: modelCategory.String,
				}
			}
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// GetSaleByID fetches one sale without populating its product.
func GetSaleByID(db *sql.DB, id string) (*models.Sale, error) {
	var s models.Sale
	var salePrice float64
	err := db.QueryRow(`
		SELECT id, product_id, COALESCE(purchase_id, ''), client, sale_price, sale_date, status, COALESCE(notes, '')
		FROM sales
		WHERE id = ?`, id).Scan(
		&s.ID, &s.ProductID, &s.PurchaseID, &s.Client, &salePrice, &s.SaleDate, &s.Status, &s.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying sale %s: %w", id, err)
	}
	s.SalePrice = models.Money(salePrice)
	return &s, nil
}

// InsertSale stores a new sale and returns its generated id.
func InsertSale(db *sql.DB, s models.Sale) (string, error) {
	id := uuid.NewString()
	var purchaseID any
	if s.PurchaseID != "" {
		purchaseID = s.PurchaseID
	}
	_, err := db.Exec(`
		INSERT INTO sales (id, product_id, purchase_id, client, sale_price, sale_date, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, s.ProductID, purchaseID, s.Client, float64(s.SalePrice), s.SaleDate, s.Status, s.Notes)
	if err != nil {
		return "", fmt.Errorf("error inserting sale: %w", err)
	}
	return id, nil
}

// UpdateSaleStatus persists a status change.
func UpdateSaleStatus(db *sql.DB, id, status string) error {
	result, err := db.Exec(`UPDATE sales SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("error updating sale %s status: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking sale %s status update: %w", id, err)
	}
	if affected == 0 {
		return ErrSaleNotFound
	}
	return nil
}

// TopSellingProducts groups sales of active products by product and
// returns the most-sold ones, ties broken by the most recent sale.
func TopSellingProducts(db *sql.DB, limit int) ([]models.TopProduct, error) {
	rows, err := db.Query(`
		SELECT p.id, p.model_id, p.price, COALESCE(p.storage, ''), COALESCE(p.color, ''),
		       m.id, m.name, m.brand, m.category, m.image,
		       COUNT(s.id) AS sold, MAX(s.sale_date) AS last_sold_at
		FROM sales s
		JOIN products p ON p.id = s.product_id
		LEFT JOIN models m ON m.id = p.model_id
		WHERE p.active = 1
		GROUP BY p.id
		ORDER BY sold DESC, last_sold_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top products: %w", err)
	}
	defer rows.Close()
	var result []models.TopProduct
	for rows.Next() {
		var tp models.TopProduct
		var price float64
		var modelID, modelName, modelBrand, modelCategory, modelImage sql.NullString
		err := rows.Scan(
			&tp.Product.ID, &tp.Product.ModelID, &price, &tp.Product.Storage, &tp.Product.Color,
			&modelID, &modelName, &modelBrand, &modelCategory, &modelImage,
			&tp.Count, &tp.LastSoldAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning top product row: %w", err)
		}
		tp.Product.Price = models.Money(price)
		if modelID.Valid {
			tp.Product.Model = &models.Model{
				ID:       modelID.String,
				Name:     modelName.String,
				Brand:    modelBrand.String,
				Category: modelCategory.String,
				Image:    modelImage.String,
			}
		}
		result = append(result, tp)
	}
	return result, rows.Err()
}
