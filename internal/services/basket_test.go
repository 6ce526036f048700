package services

import (
	"context"
	"math/rand"
	"reflect"
	"testing"

	"petnourish-service/internal/adapters/kv"
	"petnourish-service/internal/domain"
	"petnourish-service/internal/prefs"
)

func catalogFixture() []domain.CatalogItem {
	return []domain.CatalogItem{
		{ID: 1, Name: "Royal Canin Medium Adult (3kg)", Price: "580,000₫", Store: "Pet Mart"},
		{ID: 2, Name: "Whiskas Tuna Can (400g)", Price: "35,000₫", Store: "Pet Mart"},
		{ID: 3, Name: "Bentonite Cat Litter (10L)", Price: "120,000₫", Store: "Dog Paradise"},
		{ID: 4, Name: "Plush Donut Bed (Large)", Price: "450,000₫", Store: "Pet City"},
	}
}

func TestSummarizeBasketScenario(t *testing.T) {
	// Two lines from Pet Mart totaling 615,000 and one line from
	// Dog Paradise totaling 120,000.
	lines := []domain.BasketLine{
		{ItemID: 1, Quantity: 1},
		{ItemID: 2, Quantity: 1},
		{ItemID: 3, Quantity: 1},
	}

	sum := SummarizeBasket(lines, catalogFixture())

	if sum.TotalVND != 735000 {
		t.Errorf("total = %d, want 735000", sum.TotalVND)
	}
	if sum.Count != 3 {
		t.Errorf("count = %d, want 3", sum.Count)
	}
	if sum.BestStore != "Dog Paradise" || sum.BestSumVND != 120000 {
		t.Errorf("best store = %q (%d), want Dog Paradise (120000)", sum.BestStore, sum.BestSumVND)
	}
}

func TestSummarizeBasketOrderIndependent(t *testing.T) {
	lines := []domain.BasketLine{
		{ItemID: 1, Quantity: 2},
		{ItemID: 2, Quantity: 1},
		{ItemID: 3, Quantity: 3},
		{ItemID: 4, Quantity: 1},
	}
	catalog := catalogFixture()
	want := SummarizeBasket(lines, catalog)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.BasketLine, len(lines))
		copy(shuffled, lines)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := SummarizeBasket(shuffled, catalog)
		if got.TotalVND != want.TotalVND || got.Count != want.Count || got.BestStore != want.BestStore {
			t.Fatalf("permutation changed summary: got total=%d count=%d best=%q",
				got.TotalVND, got.Count, got.BestStore)
		}
		if !reflect.DeepEqual(got.StoreTotals, want.StoreTotals) {
			t.Fatalf("permutation changed store totals: %+v vs %+v", got.StoreTotals, want.StoreTotals)
		}
	}
}

func TestSummarizeBasketBestStoreTieBreak(t *testing.T) {
	catalog := []domain.CatalogItem{
		{ID: 1, Name: "Collar", Price: "50,000₫", Store: "Beta Pets"},
		{ID: 2, Name: "Leash", Price: "50,000₫", Store: "Alpha Pets"},
	}
	lines := []domain.BasketLine{
		{ItemID: 1, Quantity: 1},
		{ItemID: 2, Quantity: 1},
	}

	// Equal sums: the lexicographically smaller store name wins,
	// regardless of line order.
	sum := SummarizeBasket(lines, catalog)
	if sum.BestStore != "Alpha Pets" || sum.BestSumVND != 50000 {
		t.Errorf("best store = %q (%d), want Alpha Pets (50000)", sum.BestStore, sum.BestSumVND)
	}

	reversed := []domain.BasketLine{lines[1], lines[0]}
	if got := SummarizeBasket(reversed, catalog); got.BestStore != "Alpha Pets" {
		t.Errorf("best store after reorder = %q, want Alpha Pets", got.BestStore)
	}
}

func TestSummarizeBasketDropsStaleLines(t *testing.T) {
	lines := []domain.BasketLine{
		{ItemID: 99, Quantity: 5},
		{ItemID: 2, Quantity: 1},
	}

	sum := SummarizeBasket(lines, catalogFixture())

	if len(sum.Items) != 1 || sum.Count != 1 || sum.TotalVND != 35000 {
		t.Errorf("stale line not dropped: %+v", sum)
	}
}

func TestSummarizeBasketEmpty(t *testing.T) {
	sum := SummarizeBasket(nil, catalogFixture())
	if sum.Count != 0 || sum.TotalVND != 0 || sum.BestStore != "" {
		t.Errorf("empty basket summary = %+v", sum)
	}
}

func TestBasketMutationRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := NewBasket(prefs.New(kv.NewMemoryStore()))

	before := b.Lines(ctx)

	if err := b.Add(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := b.Add(ctx, 1); err != nil {
		t.Fatal(err)
	}

	lines := b.Lines(ctx)
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("after two adds: %+v", lines)
	}

	if err := b.Remove(ctx, 1); err != nil {
		t.Fatal(err)
	}

	after := b.Lines(ctx)
	if len(after) != len(before) {
		t.Errorf("add/add/remove is not a no-op: before=%v after=%v", before, after)
	}
}

func TestBasketSetQuantityClamps(t *testing.T) {
	ctx := context.Background()
	b := NewBasket(prefs.New(kv.NewMemoryStore()))

	if err := b.Add(ctx, 3); err != nil {
		t.Fatal(err)
	}
	if err := b.SetQuantity(ctx, 3, 0); err != nil {
		t.Fatal(err)
	}

	lines := b.Lines(ctx)
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Errorf("quantity not clamped to 1: %+v", lines)
	}

	if err := b.SetQuantity(ctx, 3, 4); err != nil {
		t.Fatal(err)
	}
	if got := b.Lines(ctx)[0].Quantity; got != 4 {
		t.Errorf("quantity = %d, want 4", got)
	}
}

func TestBasketClear(t *testing.T) {
	ctx := context.Background()
	b := NewBasket(prefs.New(kv.NewMemoryStore()))

	for _, id := range []int{1, 2, 3} {
		if err := b.Add(ctx, id); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if got := b.Lines(ctx); len(got) != 0 {
		t.Errorf("basket not cleared: %+v", got)
	}
}
