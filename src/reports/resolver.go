// backend/src/reports/resolver.go
package reports

import (
	"sort"

	"github.com/username/celuventas/backend/src/models"
)

// ResolveSales matches each purchase to at most one sale, returning a
// slice aligned with the purchases input (nil where a purchase stays
// unmatched).
//
// Pass 1 indexes sales that carry an explicit purchase reference; those
// links are authoritative and never reassigned. Pass 2 walks the
// remaining purchases in purchase-date order and picks, from the sales
// of the same product sorted by sale date, the earliest candidate dated
// on or after the purchase date. When every candidate predates the
// purchase, the earliest unlinked candidate is taken anyway: leaving an
// obviously-sold unit unmatched would be worse than an inverted date
// pair. A consumed-sale set keeps two purchases from claiming the same
// sale within one computation; the set lives and dies with this call.
func ResolveSales(purchases []models.Purchase, sales []models.Sale) []*models.Sale {
	saleByPurchaseID := make(map[string]*models.Sale)
	salesByProduct := make(map[string][]*models.Sale)
	for i := range sales {
		sale := &sales[i]
		if sale.PurchaseID != "" {
			saleByPurchaseID[sale.PurchaseID] = sale
		}
		if productID := saleProductID(sale); productID != "" {
			salesByProduct[productID] = append(salesByProduct[productID], sale)
		}
	}
	for _, candidates := range salesByProduct {
		sort.SliceStable(candidates, func(i, j int) bool {
			return dateMillis(candidates[i].SaleDate) < dateMillis(candidates[j].SaleDate)
		})
	}

	// Heuristic assignment runs in purchase-date order so the oldest
	// purchase gets first pick; ties keep input order.
	order := make([]int, len(purchases))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dateMillis(purchases[order[i]].PurchaseDate) < dateMillis(purchases[order[j]].PurchaseDate)
	})

	matched := make([]*models.Sale, len(purchases))
	usedSaleIDs := make(map[string]bool)
	for _, idx := range order {
		purchase := purchases[idx]

		var sale *models.Sale
		if purchase.ID != "" {
			sale = saleByPurchaseID[purchase.ID]
		}
		if sale == nil {
			if productID := purchaseProductID(purchase); productID != "" {
				sale = pickCandidate(salesByProduct[productID], dateMillis(purchase.PurchaseDate), usedSaleIDs)
			}
		}
		if sale != nil && sale.ID != "" {
			usedSaleIDs[sale.ID] = true
		}
		matched[idx] = sale
	}
	return matched
}

// pickCandidate prefers the earliest sale dated on or after the purchase
// date (first-fit forward), falling back to the earliest unlinked sale
// regardless of date ordering. Sales carrying an explicit purchase
// reference belong to pass 1 and are never picked here.
func pickCandidate(candidates []*models.Sale, purchaseTime int64, usedSaleIDs map[string]bool) *models.Sale {
	for _, candidate := range candidates {
		if candidate.ID != "" && usedSaleIDs[candidate.ID] {
			continue
		}
		if candidate.PurchaseID != "" {
			continue
		}
		if dateMillis(candidate.SaleDate) >= purchaseTime {
			return candidate
		}
	}
	for _, candidate := range candidates {
		if candidate.ID == "" || usedSaleIDs[candidate.ID] {
			continue
		}
		if candidate.PurchaseID != "" {
			continue
		}
		return candidate
	}
	return nil
}

func saleProductID(sale *models.Sale) string {
	if sale.ProductID != "" {
		return sale.ProductID
	}
	if sale.Product != nil {
		return sale.Product.ID
	}
	return ""
}

func purchaseProductID(purchase models.Purchase) string {
	if purchase.ProductID != "" {
		return purchase.ProductID
	}
	if purchase.Product != nil {
		return purchase.Product.ID
	}
	return ""
}

// dateMillis is the sort key for record dates: Unix milliseconds of the
// local calendar day, with unparseable dates pinned to the epoch.
func dateMillis(value string) int64 {
	t, ok := models.ParseLocalDate(value)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}
