// backend/src/model/purchase.go
package model

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/username/celuventas/backend/src/models"
)

// ListPurchases returns every inventory purchase with its product (and
// the product's model) populated, newest acquisition first.
func ListPurchases(db *sql.DB) ([]models.Purchase, error) {
	rows, err := db.Query(`
		SELECT pu.id, pu.provider, pu.product_id, pu.cost, pu.purchase_date, COALESCE(pu.notes, ''),
		       p.id, p.model_id, p.price, COALESCE(p.storage, ''), COALESCE(p.color, ''),
		       m.id, m.name, m.brand, m.category
		FROM purchases pu
		LEFT JOIN products p ON p.id = pu.product_id
		LEFT JOIN models m ON m.id = p.model_id
		ORDER BY pu.purchase_date DESC, pu.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying purchases: %w", err)
	}
	defer rows.Close()
	var result []models.Purchase
	for rows.Next() {
		var pu models.Purchase
		var cost float64
		var productID, productModelID, productStorage, productColor sql.NullString
		var productPrice sql.NullFloat64
		var modelID, modelName, modelBrand, modelCategory sql.NullString
		err := rows.Scan(
			&pu.ID, &pu.Provider, &pu.ProductID, &cost, &pu.PurchaseDate, &pu.Notes,
			&productID, &productModelID, &productPrice, &productStorage, &productColor,
			&modelID, &modelName, &modelBrand, &modelCategory,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning purchase row: %w", err)
		}
		pu.Cost = models.Money(cost)
		if productID.Valid {
			pu.Product = &models.Product{
				ID:      productID.String,
				ModelID: productModelID.String,
				Price:   models.Money(productPrice.Float64),
				Storage: productStorage.String,
				Color:   productColor.String,
			}
			if modelID.Valid {
				pu.Product.Model = &models.Model{
					ID:       modelID.String,
					Name:     modelName.String,
					Brand:    modelBrand.String,
					Category: modelCategory.String,
				}
			}
		}
		result = append(result, pu)
	}
	return result, rows.Err()
}

// InsertPurchase stores a new inventory purchase and returns its id.
func InsertPurchase(db *sql.DB, pu models.Purchase) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO purchases (id, provider, product_id, cost, purchase_date, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, pu.Provider, pu.ProductID, float64(pu.Cost), pu.PurchaseDate, pu.Notes)
	if err != nil {
		return "", fmt.Errorf("error inserting purchase: %w", err)
	}
	return id, nil
}
