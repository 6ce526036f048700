package dto

type CatalogItemResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       string  `json:"price"`
	PriceVND    int     `json:"price_vnd"`
	Description string  `json:"description"`
	Store       string  `json:"store"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

type ListCatalogItemsResponse struct {
	Items []CatalogItemResponse `json:"items"`
}

type CompareRowResponse struct {
	Store    string              `json:"store"`
	Item     CatalogItemResponse `json:"item"`
	PriceVND int                 `json:"price_vnd"`
}

type CompareResponse struct {
	Rows []CompareRowResponse `json:"rows"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
