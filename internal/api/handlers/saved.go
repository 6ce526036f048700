package handlers

import (
	"log"
	"net/http"

	"petnourish-service/internal/api/dto"
	"petnourish-service/internal/domain"
	"petnourish-service/internal/prefs"
)

// SavedHandler exposes the bookmarked-places list.
type SavedHandler struct {
	Prefs *prefs.Store
}

// Saved lists (GET), toggles (POST) or clears (DELETE) saved places.
func (h *SavedHandler) Saved(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		entries := h.Prefs.SavedPlaces(r.Context())
		res := dto.ListSavedResponse{Saved: make([]dto.SavedEntryPayload, 0, len(entries))}
		for _, e := range entries {
			res.Saved = append(res.Saved, dto.SavedEntryPayload{Kind: string(e.Kind), Key: e.Key})
		}
		writeJSON(w, r, http.StatusOK, res)

	case http.MethodPost:
		var req dto.SavedEntryPayload
		if !decodeJSON(w, r, &req) {
			return
		}

		kind := domain.PlaceKind(req.Kind)
		if kind != domain.KindStore && kind != domain.KindHospital {
			writeError(w, r, http.StatusBadRequest, "type must be store or hospital")
			return
		}
		if req.Key == "" {
			writeError(w, r, http.StatusBadRequest, "key is required")
			return
		}

		saved, err := h.Prefs.ToggleSaved(r.Context(), kind, req.Key)
		if err != nil {
			log.Printf("toggle saved failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, r, http.StatusOK, dto.ToggleSavedResponse{Saved: saved})

	case http.MethodDelete:
		if err := h.Prefs.ClearSaved(r.Context()); err != nil {
			log.Printf("clear saved failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, r, http.StatusOK, dto.ListSavedResponse{Saved: []dto.SavedEntryPayload{}})

	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}
