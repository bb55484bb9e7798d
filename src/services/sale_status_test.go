// backend/src/services/sale_status_test.go
package services

import (
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/username/celuventas/backend/src/logger"
	"github.com/username/celuventas/backend/src/model"
	"github.com/username/celuventas/backend/src/models"
	_ "modernc.org/sqlite"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

const testSchema = `
CREATE TABLE models (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    brand TEXT NOT NULL,
    category TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE products (
    id TEXT PRIMARY KEY,
    model_id TEXT NOT NULL,
    price REAL NOT NULL,
    storage TEXT,
    color TEXT,
    stock INTEGER NOT NULL DEFAULT 0,
    active INTEGER NOT NULL DEFAULT 0,
    description TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE customers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE purchases (
    id TEXT PRIMARY KEY,
    provider TEXT NOT NULL,
    product_id TEXT NOT NULL,
    cost REAL NOT NULL,
    purchase_date TEXT NOT NULL,
    notes TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE sales (
    id TEXT PRIMARY KEY,
    product_id TEXT NOT NULL,
    purchase_id TEXT,
    client TEXT NOT NULL,
    sale_price REAL NOT NULL,
    sale_date TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'Pendiente',
    notes TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE payments (
    id TEXT PRIMARY KEY,
    sale_id TEXT NOT NULL,
    amount REAL NOT NULL,
    payment_date TEXT NOT NULL,
    notes TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE expenses (
    id TEXT PRIMARY KEY,
    sale_id TEXT NOT NULL,
    description TEXT NOT NULL,
    amount REAL NOT NULL,
    expense_date TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	return db
}

func seedSale(t *testing.T, db *sql.DB, salePrice float64) string {
	t.Helper()
	modelID, err := model.InsertModel(db, models.Model{Name: "iPhone 13", Brand: "Apple", Category: "telefono"})
	require.NoError(t, err)
	productID, err := model.InsertProduct(db, models.Product{ModelID: modelID, Price: models.Money(salePrice), Active: true})
	require.NoError(t, err)
	saleID, err := model.InsertSale(db, models.Sale{
		ProductID: productID,
		Client:    "Laura",
		SalePrice: models.Money(salePrice),
		SaleDate:  "2024-03-01",
		Status:    models.SaleStatusPending,
	})
	require.NoError(t, err)
	return saleID
}

func saleStatus(t *testing.T, db *sql.DB, saleID string) string {
	t.Helper()
	sale, err := model.GetSaleByID(db, saleID)
	require.NoError(t, err)
	return sale.Status
}

func TestSyncSaleStatusStaysPendingBelowPrice(t *testing.T) {
	db := setupTestDB(t)
	saleID := seedSale(t, db, 500000)

	_, err := model.InsertPayment(db, models.Payment{SaleID: saleID, Amount: 200000, PaymentDate: "2024-03-02"})
	require.NoError(t, err)

	require.NoError(t, SyncSaleStatus(db, saleID))
	require.Equal(t, models.SaleStatusPending, saleStatus(t, db, saleID))
}

func TestSyncSaleStatusPaidOffAtFullPrice(t *testing.T) {
	db := setupTestDB(t)
	saleID := seedSale(t, db, 500000)

	_, err := model.InsertPayment(db, models.Payment{SaleID: saleID, Amount: 200000, PaymentDate: "2024-03-02"})
	require.NoError(t, err)
	_, err = model.InsertPayment(db, models.Payment{SaleID: saleID, Amount: 300000, PaymentDate: "2024-03-10"})
	require.NoError(t, err)

	require.NoError(t, SyncSaleStatus(db, saleID))
	require.Equal(t, models.SaleStatusPaidOff, saleStatus(t, db, saleID))
}

func TestSyncSaleStatusRevertsWhenPaymentRemoved(t *testing.T) {
	db := setupTestDB(t)
	saleID := seedSale(t, db, 500000)

	paymentID, err := model.InsertPayment(db, models.Payment{SaleID: saleID, Amount: 500000, PaymentDate: "2024-03-02"})
	require.NoError(t, err)
	require.NoError(t, SyncSaleStatus(db, saleID))
	require.Equal(t, models.SaleStatusPaidOff, saleStatus(t, db, saleID))

	_, err = model.DeletePayment(db, paymentID)
	require.NoError(t, err)
	require.NoError(t, SyncSaleStatus(db, saleID))
	require.Equal(t, models.SaleStatusPending, saleStatus(t, db, saleID))
}

func TestSyncSaleStatusMissingSaleIsNotAnError(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SyncSaleStatus(db, "no-such-sale"))
	require.NoError(t, SyncSaleStatus(db, ""))
}
