package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"petnourish-service/internal/domain"
	"petnourish-service/internal/prefs"
)

// ErrEmptyBasket is returned by operations that need at least one resolved
// basket line.
var ErrEmptyBasket = errors.New("basket is empty")

// SummarizeBasket aggregates basket lines against the catalog.
//
// Lines whose item id no longer resolves are dropped silently. Per-store
// totals are reported in store-name order and the best store is the strict
// minimum summed cost, ties going to the lexicographically smaller name, so
// the result is independent of line order. The basket itself is never
// mutated here.
func SummarizeBasket(lines []domain.BasketLine, catalog []domain.CatalogItem) domain.BasketSummary {
	byID := make(map[int]domain.CatalogItem, len(catalog))
	for _, it := range catalog {
		byID[it.ID] = it
	}

	sum := domain.BasketSummary{}
	perStore := make(map[string]*domain.StoreTotal)

	for _, line := range lines {
		it, ok := byID[line.ItemID]
		if !ok {
			continue
		}

		unit := domain.ParseVND(it.Price)
		sum.Items = append(sum.Items, domain.BasketItem{
			Item:     it,
			Quantity: line.Quantity,
			UnitVND:  unit,
		})
		sum.Count += line.Quantity
		sum.TotalVND += line.Quantity * unit

		st, ok := perStore[it.Store]
		if !ok {
			st = &domain.StoreTotal{Store: it.Store}
			perStore[it.Store] = st
		}
		st.SumVND += line.Quantity * unit
		st.Count += line.Quantity
	}

	stores := make([]string, 0, len(perStore))
	for name := range perStore {
		stores = append(stores, name)
	}
	sort.Strings(stores)

	for _, name := range stores {
		st := perStore[name]
		sum.StoreTotals = append(sum.StoreTotals, *st)
		if sum.BestStore == "" || st.SumVND < sum.BestSumVND {
			sum.BestStore = name
			sum.BestSumVND = st.SumVND
		}
	}

	return sum
}

// Basket applies explicit mutations to the persisted line list. Reads go
// through SummarizeBasket; every mutation persists the updated lines.
type Basket struct {
	Prefs *prefs.Store
}

func NewBasket(p *prefs.Store) *Basket {
	return &Basket{Prefs: p}
}

// Add increments the quantity of an existing line or appends a new line with
// quantity 1.
func (b *Basket) Add(ctx context.Context, itemID int) error {
	lines := b.Prefs.BasketLines(ctx)

	found := false
	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, domain.BasketLine{ItemID: itemID, Quantity: 1})
	}

	if err := b.Prefs.SetBasketLines(ctx, lines); err != nil {
		return fmt.Errorf("basket add item %d: %w", itemID, err)
	}
	return nil
}

// SetQuantity sets a line's quantity, clamped to a minimum of 1.
// Missing lines are ignored.
func (b *Basket) SetQuantity(ctx context.Context, itemID, qty int) error {
	if qty < 1 {
		qty = 1
	}

	lines := b.Prefs.BasketLines(ctx)
	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity = qty
			if err := b.Prefs.SetBasketLines(ctx, lines); err != nil {
				return fmt.Errorf("basket set quantity item %d: %w", itemID, err)
			}
			return nil
		}
	}
	return nil
}

// Remove deletes a line entirely.
func (b *Basket) Remove(ctx context.Context, itemID int) error {
	lines := b.Prefs.BasketLines(ctx)

	next := make([]domain.BasketLine, 0, len(lines))
	for _, l := range lines {
		if l.ItemID != itemID {
			next = append(next, l)
		}
	}

	if err := b.Prefs.SetBasketLines(ctx, next); err != nil {
		return fmt.Errorf("basket remove item %d: %w", itemID, err)
	}
	return nil
}

// Clear empties the basket.
func (b *Basket) Clear(ctx context.Context) error {
	if err := b.Prefs.SetBasketLines(ctx, []domain.BasketLine{}); err != nil {
		return fmt.Errorf("basket clear: %w", err)
	}
	return nil
}

// Lines returns the persisted basket lines.
func (b *Basket) Lines(ctx context.Context) []domain.BasketLine {
	return b.Prefs.BasketLines(ctx)
}
