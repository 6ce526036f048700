package domain

// A single basket entry referencing a catalog item. Quantity is always >= 1;
// lines are removed, never zeroed.
type BasketLine struct {
	ItemID   int `json:"id"`
	Quantity int `json:"qty"`
}

// A basket line resolved against the catalog.
type BasketItem struct {
	Item     CatalogItem
	Quantity int
	UnitVND  int
}

// Per-store slice of a basket.
type StoreTotal struct {
	Store  string
	SumVND int
	Count  int
}

// Read-only aggregation of the basket contents.
// BestStore is the store with the strict minimum summed cost over the items
// it contributes; empty when the basket resolves to nothing.
type BasketSummary struct {
	Items       []BasketItem
	Count       int
	TotalVND    int
	StoreTotals []StoreTotal
	BestStore   string
	BestSumVND  int
}
