package services

import (
	"testing"

	"petnourish-service/internal/domain"
)

var compareCatalog = []domain.CatalogItem{
	{ID: 1, Name: "Royal Canin Mini Adult", Price: "250.000₫", Store: "Pet Mart Nguyen Trai"},
	{ID: 2, Name: "Royal Canin Kitten", Price: "220.000₫", Store: "Pet Mart Nguyen Trai"},
	{ID: 3, Name: "Royal Canin Mini Adult", Price: "245.000₫", Store: "Saigon Pet Shop"},
	{ID: 4, Name: "Whiskas Tuna", Price: "35.000₫", Store: "Saigon Pet Shop"},
}

func TestComparePricesCheapestPerStore(t *testing.T) {
	rows := ComparePrices("royal canin", compareCatalog)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// Kitten at 220k beats Mini Adult at 250k within Pet Mart; Saigon Pet
	// Shop's only match is 245k. Sorted ascending by price.
	if rows[0].Store != "Pet Mart Nguyen Trai" || rows[0].PriceVND != 220000 {
		t.Errorf("row 0 = %s %d", rows[0].Store, rows[0].PriceVND)
	}
	if rows[1].Store != "Saigon Pet Shop" || rows[1].PriceVND != 245000 {
		t.Errorf("row 1 = %s %d", rows[1].Store, rows[1].PriceVND)
	}
}

func TestComparePricesBlankQuery(t *testing.T) {
	if rows := ComparePrices("   ", compareCatalog); len(rows) != 0 {
		t.Errorf("blank query returned %d rows", len(rows))
	}
}

func TestComparePricesTieBreakByStoreName(t *testing.T) {
	catalog := []domain.CatalogItem{
		{ID: 1, Name: "Collar", Price: "50.000₫", Store: "Beta Pets"},
		{ID: 2, Name: "Collar", Price: "50.000₫", Store: "Alpha Pets"},
	}

	rows := ComparePrices("collar", catalog)
	if len(rows) != 2 || rows[0].Store != "Alpha Pets" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestCheapestOffer(t *testing.T) {
	offer, ok := CheapestOffer("royal canin", compareCatalog)
	if !ok || offer.PriceVND != 220000 {
		t.Errorf("offer = %+v ok = %v", offer, ok)
	}

	if _, ok := CheapestOffer("aquarium", compareCatalog); ok {
		t.Error("expected no offer for unmatched query")
	}
}
