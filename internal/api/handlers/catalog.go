package handlers

import (
	"log"
	"net/http"
	"strings"

	"petnourish-service/internal/api/dto"
	"petnourish-service/internal/ports"
	"petnourish-service/internal/services"
)

// CatalogHandler exposes the product catalog and price comparison.
type CatalogHandler struct {
	Repo ports.CatalogRepository
}

// List returns catalog items, filtered by an optional case-insensitive name
// query and an optional category.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	items, err := h.Repo.ListItems(r.Context())
	if err != nil {
		log.Printf("list catalog items failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	res := dto.ListCatalogItemsResponse{Items: make([]dto.CatalogItemResponse, 0, len(items))}
	for _, it := range items {
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		if category != "" && !strings.EqualFold(it.Category, category) {
			continue
		}
		res.Items = append(res.Items, itemPayload(it))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Compare returns, per store, the cheapest item matching the query.
func (h *CatalogHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeError(w, r, http.StatusBadRequest, "q is required")
		return
	}

	items, err := h.Repo.ListItems(r.Context())
	if err != nil {
		log.Printf("compare failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	rows := services.ComparePrices(q, items)
	res := dto.CompareResponse{Rows: make([]dto.CompareRowResponse, 0, len(rows))}
	for _, row := range rows {
		res.Rows = append(res.Rows, dto.CompareRowResponse{
			Store:    row.Store,
			Item:     itemPayload(row.Item),
			PriceVND: row.PriceVND,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
