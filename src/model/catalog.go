// backend/src/model/catalog.go
package model

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/username/celuventas/backend/src/models"
)

var ErrProductNotFound = errors.New("product not found")

// ListModels returns all phone models, newest first.
func ListModels(db *sql.DB) ([]models.Model, error) {
	rows, err := db.Query(`
		SELECT id, name, brand, category, image
		FROM models
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying models: %w", err)
	}
	defer rows.Close()
	var result []models.Model
	for rows.Next() {
		var m models.Model
		if err := rows.Scan(&m.ID, &m.Name, &m.Brand, &m.Category, &m.Image); err != nil {
			return nil, fmt.Errorf("error scanning model row: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// InsertModel stores a new phone model and returns its generated id.
func InsertModel(db *sql.DB, m models.Model) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO models (id, name, brand, category, image)
		VALUES (?, ?, ?, ?, ?)`,
		id, m.Name, m.Brand, m.Category, m.Image)
	if err != nil {
		return "", fmt.Errorf("error inserting model: %w", err)
	}
	return id, nil
}

// ListProducts returns all products with their model populated.
func ListProducts(db *sql.DB) ([]models.Product, error) {
	rows, err := db.Query(`
		SELECT p.id, p.model_id, p.price, COALESCE(p.storage, ''), COALESCE(p.color, ''),
		       p.stock, p.active, COALESCE(p.description, ''),
		       m.id, m.name, m.brand, m.category, m.image
		FROM products p
		LEFT JOIN models m ON m.id = p.model_id
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()
	var result []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// GetProductByID fetches a single product with its model populated.
func GetProductByID(db *sql.DB, id string) (*models.Product, error) {
	row := db.QueryRow(`
		SELECT p.id, p.model_id, p.price, COALESCE(p.storage, ''), COALESCE(p.color, ''),
		       p.stock, p.active, COALESCE(p.description, ''),
		       m.id, m.name, m.brand, m.category, m.image
		FROM products p
		LEFT JOIN models m ON m.id = p.model_id
		WHERE p.id = ?`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// InsertProduct stores a new product and returns its generated id.
func InsertProduct(db *sql.DB, p models.Product) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO products (id, model_id, price, storage, color, stock, active, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.ModelID, float64(p.Price), p.Storage, p.Color, p.Stock, p.Active, p.Description)
	if err != nil {
		return "", fmt.Errorf("error inserting product: %w", err)
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var price float64
	var modelID, modelName, modelBrand, modelCategory, modelImage sql.NullString
	err := row.Scan(
		&p.ID, &p.ModelID, &price, &p.Storage, &p.Color,
		&p.Stock, &p.Active, &p.Description,
		&modelID, &modelName, &modelBrand, &modelCategory, &modelImage,
	)
	if err != nil {
		return models.Product{}, fmt.Errorf("error scanning product row: %w", err)
	}
	p.Price = models.Money(price)
	if modelID.Valid {
		p.Model = &models.Model{
			ID:       modelID.String,
			Name:     modelName.String,
			Brand:    modelBrand.String,
			Category: modelCategory.String,
			Image:    modelImage.String,
		}
	}
	return p, nil
}
