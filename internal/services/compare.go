package services

import (
	"sort"
	"strings"

	"petnourish-service/internal/domain"
)

// One store's best offer for a compared product.
type CompareRow struct {
	Store    string
	Item     domain.CatalogItem
	PriceVND int
}

// ComparePrices finds, for each store, the cheapest catalog item whose name
// matches the query (case-insensitive substring), sorted by price ascending
// with store name as the tie-break. A blank query matches nothing.
func ComparePrices(query string, catalog []domain.CatalogItem) []CompareRow {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []CompareRow{}
	}

	best := map[string]CompareRow{}
	for _, it := range catalog {
		if !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		price := domain.ParseVND(it.Price)
		row, seen := best[it.Store]
		if !seen || price < row.PriceVND {
			best[it.Store] = CompareRow{Store: it.Store, Item: it, PriceVND: price}
		}
	}

	rows := make([]CompareRow, 0, len(best))
	for _, row := range best {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PriceVND != rows[j].PriceVND {
			return rows[i].PriceVND < rows[j].PriceVND
		}
		return rows[i].Store < rows[j].Store
	})

	return rows
}

// CheapestOffer returns the first row of a comparison, when any store
// matched. Backs the route-to-cheapest and save-cheapest actions.
func CheapestOffer(query string, catalog []domain.CatalogItem) (CompareRow, bool) {
	rows := ComparePrices(query, catalog)
	if len(rows) == 0 {
		return CompareRow{}, false
	}
	return rows[0], true
}
