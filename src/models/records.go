package models

// The record types below mirror the business collections maintained by the
// admin CRUD endpoints. Dates travel as YYYY-MM-DD strings and are only
// parsed (as local calendar days) where a comparison is needed.

// Sale status values. A sale is Cancelado once its payments cover the
// agreed price, Pendiente otherwise; the payment endpoints keep this in
// sync on every write.
const (
	SaleStatusPending = "Pendiente"
	SaleStatusPaidOff = "Cancelado"
)

// PurchaseProviders lists the accepted inventory providers.
var PurchaseProviders = []string{"Apple", "Samsung", "BackMarket", "Amazon", "Google"}

// Model is a phone model (e.g. "Apple iPhone 13").
type Model struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

// Product is a sellable configuration of a model with its list price.
type Product struct {
	ID          string `json:"id"`
	ModelID     string `json:"modelId"`
	Model       *Model `json:"model,omitempty"`
	Price       Money  `json:"price"`
	Storage     string `json:"storage,omitempty"`
	Color       string `json:"color,omitempty"`
	Stock       int    `json:"stock"`
	Active      bool   `json:"active"`
	Description string `json:"description,omitempty"`
}

// Customer is a known buyer. Sales store the client as a free-text name,
// so customers are reference data rather than a foreign key target.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Purchase is one acquired unit of inventory.
type Purchase struct {
	ID           string   `json:"id"`
	Provider     string   `json:"provider,omitempty"`
	ProductID    string   `json:"productId"`
	Product      *Product `json:"product,omitempty"`
	Cost         Money    `json:"cost"`
	PurchaseDate string   `json:"purchaseDate"`
	Notes        string   `json:"notes,omitempty"`
}

// Sale is one unit sold to a client. PurchaseID is optional: older
// records were entered before sales were explicitly linked to the
// purchased unit, which is why the profit report needs a join heuristic.
type Sale struct {
	ID         string   `json:"id"`
	ProductID  string   `json:"productId"`
	Product    *Product `json:"product,omitempty"`
	PurchaseID string   `json:"purchaseId,omitempty"`
	Client     string   `json:"client"`
	SalePrice  Money    `json:"salePrice"`
	SaleDate   string   `json:"saleDate"`
	Status     string   `json:"status"`
	Notes      string   `json:"notes,omitempty"`
}

// Payment is a partial or full amount paid toward a sale.
type Payment struct {
	ID          string `json:"id"`
	SaleID      string `json:"saleId"`
	Amount      Money  `json:"amount"`
	PaymentDate string `json:"paymentDate"`
	Notes       string `json:"notes,omitempty"`
}

// Expense is an extra cost attributed to a specific sale (accessories
// given away, shipping, repairs before delivery).
type Expense struct {
	ID          string `json:"id"`
	SaleID      string `json:"saleId"`
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
	ExpenseDate string `json:"expenseDate"`
}
