// backend/src/reports/resolver_test.go
package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/celuventas/backend/src/models"
)

func purchaseFixture(id, productID, date string, cost float64) models.Purchase {
	return models.Purchase{
		ID:           id,
		ProductID:    productID,
		Cost:         models.Money(cost),
		PurchaseDate: date,
	}
}

func saleFixture(id, productID, date string, price float64) models.Sale {
	return models.Sale{
		ID:        id,
		ProductID: productID,
		SalePrice: models.Money(price),
		SaleDate:  date,
		Status:    models.SaleStatusPending,
	}
}

func TestResolveSalesExplicitLinkWins(t *testing.T) {
	purchases := []models.Purchase{
		purchaseFixture("pu1", "prod-a", "2024-01-10", 300),
	}
	// The explicitly linked sale is older and cheaper than the heuristic
	// candidate; the explicit link must still win.
	linked := saleFixture("s1", "prod-a", "2024-01-01", 350)
	linked.PurchaseID = "pu1"
	unlinked := saleFixture("s2", "prod-a", "2024-01-15", 500)
	sales := []models.Sale{unlinked, linked}

	matched := ResolveSales(purchases, sales)
	require.Len(t, matched, 1)
	require.NotNil(t, matched[0])
	assert.Equal(t, "s1", matched[0].ID)
}

func TestResolveSalesForwardFitPrefersEarliestOnOrAfter(t *testing.T) {
	purchases := []models.Purchase{
		purchaseFixture("pu1", "prod-a", "2024-02-01", 300),
	}
	sales := []models.Sale{
		saleFixture("s-before", "prod-a", "2024-01-20", 400),
		saleFixture("s-late", "prod-a", "2024-03-10", 450),
		saleFixture("s-early", "prod-a", "2024-02-05", 420),
	}

	matched := ResolveSales(purchases, sales)
	require.NotNil(t, matched[0])
	assert.Equal(t, "s-early", matched[0].ID, "earliest sale on or after the purchase date should win")
}

func TestResolveSalesFallbackToEarliestWhenAllPredate(t *testing.T) {
	purchases := []models.Purchase{
		purchaseFixture("pu1", "prod-a", "2024-06-01", 300),
	}
	sales := []models.Sale{
		saleFixture("s2", "prod-a", "2024-02-01", 400),
		saleFixture("s1", "prod-a", "2024-01-01", 380),
	}

	matched := ResolveSales(purchases, sales)
	require.NotNil(t, matched[0])
	assert.Equal(t, "s1", matched[0].ID, "fallback should take the earliest unlinked sale")
}

func TestResolveSalesNoSaleClaimedTwice(t *testing.T) {
	purchases := []models.Purchase{
		purchaseFixture("pu1", "prod-a", "2024-01-01", 300),
		purchaseFixture("pu2", "prod-a", "2024-01-02", 310),
		purchaseFixture("pu3", "prod-a", "2024-01-03", 320),
	}
	sales := []models.Sale{
		saleFixture("s1", "prod-a", "2024-01-05", 400),
		saleFixture("s2", "prod-a", "2024-01-06", 410),
	}

	matched := ResolveSales(purchases, sales)
	require.Len(t, matched, 3)

	seen := make(map[string]int)
	matchedCount := 0
	for _, sale := range matched {
		if sale == nil {
			continue
		}
		matchedCount++
		seen[sale.ID]++
	}
	assert.Equal(t, 2, matchedCount, "two sales can satisfy at most two purchases")
	for id, count := range seen {
		assert.Equal(t, 1, count, "sale %s claimed more than once", id)
	}
}

func TestResolveSalesAssignsInPurchaseDateOrder(t *testing.T) {
	// The newer purchase appears first in the input, but the older
	// purchase must get first pick of the single candidate.
	purchases := []models.Purchase{
		purchaseFixture("pu-new", "prod-a", "2024-03-01", 300),
		purchaseFixture("pu-old", "prod-a", "2024-01-01", 290),
	}
	sales := []models.Sale{
		saleFixture("s1", "prod-a", "2024-01-15", 400),
	}

	matched := ResolveSales(purchases, sales)
	assert.Nil(t, matched[0])
	require.NotNil(t, matched[1])
	assert.Equal(t, "s1", matched[1].ID)
}

func TestResolveSalesExplicitlyLinkedSaleNeverPickedHeuristically(t *testing.T) {
	purchases := []models.Purchase{
		purchaseFixture("pu-other", "prod-a", "2024-01-01", 300),
	}
	// The only sale of the product belongs to a different purchase by
	// explicit reference; the heuristic must not steal it.
	sale := saleFixture("s1", "prod-a", "2024-01-10", 400)
	sale.PurchaseID = "pu-elsewhere"
	sales := []models.Sale{sale}

	matched := ResolveSales(purchases, sales)
	assert.Nil(t, matched[0])
}

func TestResolveSalesDifferentProductsNeverMatch(t *testing.T) {
	purchases := []models.Purchase{
		purchaseFixture("pu1", "prod-a", "2024-01-01", 300),
	}
	sales := []models.Sale{
		saleFixture("s1", "prod-b", "2024-01-10", 400),
	}

	matched := ResolveSales(purchases, sales)
	assert.Nil(t, matched[0])
}

func TestResolveSalesLaterExplicitReferenceWins(t *testing.T) {
	purchases := []models.Purchase{
		purchaseFixture("pu1", "prod-a", "2024-01-01", 300),
	}
	first := saleFixture("s1", "prod-a", "2024-01-05", 400)
	first.PurchaseID = "pu1"
	second := saleFixture("s2", "prod-a", "2024-01-06", 420)
	second.PurchaseID = "pu1"
	sales := []models.Sale{first, second}

	matched := ResolveSales(purchases, sales)
	require.NotNil(t, matched[0])
	assert.Equal(t, "s2", matched[0].ID, "the last sale referencing a purchase overrides earlier ones")
}

func TestResolveSalesUsesNestedProductWhenIDMissing(t *testing.T) {
	product := &models.Product{ID: "prod-a", Price: 500}
	purchases := []models.Purchase{
		{ID: "pu1", Product: product, Cost: 300, PurchaseDate: "2024-01-01"},
	}
	sales := []models.Sale{
		{ID: "s1", Product: product, SalePrice: 450, SaleDate: "2024-01-10"},
	}

	matched := ResolveSales(purchases, sales)
	require.NotNil(t, matched[0])
	assert.Equal(t, "s1", matched[0].ID)
}
