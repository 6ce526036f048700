package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"petnourish-service/internal/api/dto"
	"petnourish-service/internal/domain"
	"petnourish-service/internal/ports"
	"petnourish-service/internal/services"
)

// BasketHandler exposes the persisted basket and its store-level summary.
type BasketHandler struct {
	Repo   ports.CatalogRepository
	Basket *services.Basket
}

// Lines reads (GET) or clears (DELETE) the basket.
func (h *BasketHandler) Lines(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		lines := h.Basket.Lines(r.Context())
		res := dto.BasketResponse{Lines: make([]dto.BasketLineResponse, 0, len(lines))}
		for _, l := range lines {
			res.Lines = append(res.Lines, dto.BasketLineResponse{ItemID: l.ItemID, Quantity: l.Quantity})
		}
		writeJSON(w, r, http.StatusOK, res)

	case http.MethodDelete:
		if err := h.Basket.Clear(r.Context()); err != nil {
			log.Printf("clear basket failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, r, http.StatusOK, dto.BasketResponse{Lines: []dto.BasketLineResponse{}})

	default:
		w.Header().Set("Allow", "GET, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Add appends an item to the basket or increments its quantity.
func (h *BasketHandler) Add(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.AddBasketItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if !h.itemExists(r, req.ItemID) {
		writeError(w, r, http.StatusNotFound, "unknown item")
		return
	}

	if err := h.Basket.Add(r.Context(), req.ItemID); err != nil {
		log.Printf("basket add failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "added"})
}

// Item updates (PUT) or removes (DELETE) a single basket line, addressed by
// the trailing path segment.
func (h *BasketHandler) Item(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/basket/items/"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid item id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req dto.SetQuantityRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := h.Basket.SetQuantity(r.Context(), itemID, req.Quantity); err != nil {
			log.Printf("basket set quantity failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})

	case http.MethodDelete:
		if err := h.Basket.Remove(r.Context(), itemID); err != nil {
			log.Printf("basket remove failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "removed"})

	default:
		w.Header().Set("Allow", "PUT, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Summary aggregates the basket: totals, per-store sums, and the single
// cheapest store.
func (h *BasketHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	items, err := h.Repo.ListItems(r.Context())
	if err != nil {
		log.Printf("basket summary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	sum := services.SummarizeBasket(h.Basket.Lines(r.Context()), items)

	res := dto.BasketSummaryResponse{
		Items:       make([]dto.BasketItemResponse, 0, len(sum.Items)),
		Count:       sum.Count,
		TotalVND:    sum.TotalVND,
		Total:       domain.FormatVND(sum.TotalVND),
		StoreTotals: make([]dto.StoreTotalResponse, 0, len(sum.StoreTotals)),
		BestStore:   sum.BestStore,
		BestSumVND:  sum.BestSumVND,
	}
	for _, bi := range sum.Items {
		res.Items = append(res.Items, dto.BasketItemResponse{
			Item:     itemPayload(bi.Item),
			Quantity: bi.Quantity,
			UnitVND:  bi.UnitVND,
		})
	}
	for _, st := range sum.StoreTotals {
		res.StoreTotals = append(res.StoreTotals, dto.StoreTotalResponse{
			Store:  st.Store,
			SumVND: st.SumVND,
			Count:  st.Count,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *BasketHandler) itemExists(r *http.Request, id int) bool {
	items, err := h.Repo.ListItems(r.Context())
	if err != nil {
		return false
	}
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}
