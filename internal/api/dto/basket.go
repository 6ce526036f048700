package dto

type BasketLineResponse struct {
	ItemID   int `json:"id"`
	Quantity int `json:"qty"`
}

type BasketResponse struct {
	Lines []BasketLineResponse `json:"lines"`
}

type AddBasketItemRequest struct {
	ItemID int `json:"id"`
}

type SetQuantityRequest struct {
	Quantity int `json:"qty"`
}

type BasketItemResponse struct {
	Item     CatalogItemResponse `json:"item"`
	Quantity int                 `json:"qty"`
	UnitVND  int                 `json:"unit_vnd"`
}

type StoreTotalResponse struct {
	Store  string `json:"store"`
	SumVND int    `json:"sum_vnd"`
	Count  int    `json:"count"`
}

type BasketSummaryResponse struct {
	Items       []BasketItemResponse `json:"items"`
	Count       int                  `json:"count"`
	TotalVND    int                  `json:"total_vnd"`
	Total       string               `json:"total"`
	StoreTotals []StoreTotalResponse `json:"store_totals"`
	BestStore   string               `json:"best_store"`
	BestSumVND  int                  `json:"best_sum_vnd"`
}
