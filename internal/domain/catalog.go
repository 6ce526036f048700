package domain

// A single product carried by exactly one store.
// Price keeps the localized currency string from the catalog source; use
// ParseVND for arithmetic.
type CatalogItem struct {
	ID          int
	Name        string
	Category    string
	Price       string
	Description string
	Store       string
	Coord       Coordinates
}

// A store with the catalog items it carries, grouped from the flat item list.
type Store struct {
	Name  string
	Coord Coordinates
	Items []CatalogItem
}
