package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"petnourish-service/internal/api/dto"
	"petnourish-service/internal/domain"
	"petnourish-service/internal/ports"
	"petnourish-service/internal/services"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeJSON reads a single strict JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// writeDomainError maps service failures onto the API's error contract:
// missing preconditions are client errors, upstream routing or geocoding
// failures are 502, everything else is internal.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNoPosition):
		writeError(w, r, http.StatusConflict, "position not set")
	case errors.Is(err, services.ErrSuperseded):
		writeError(w, r, http.StatusConflict, "superseded by a newer request")
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrEmptyBasket):
		writeError(w, r, http.StatusConflict, "basket is empty")
	default:
		log.Printf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusBadGateway, "upstream service failed")
	}
}

func coordsPayload(coords []domain.Coordinates) []dto.CoordinatesPayload {
	out := make([]dto.CoordinatesPayload, 0, len(coords))
	for _, c := range coords {
		out = append(out, dto.CoordinatesPayload{Lat: c.Lat, Lng: c.Lng})
	}
	return out
}

func placePayload(p domain.Place) dto.PlaceResponse {
	return dto.PlaceResponse{
		Kind: string(p.Kind),
		Key:  p.Key,
		Name: p.Name,
		Lat:  p.Coord.Lat,
		Lng:  p.Coord.Lng,
	}
}

func itemPayload(it domain.CatalogItem) dto.CatalogItemResponse {
	return dto.CatalogItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Price:       it.Price,
		PriceVND:    domain.ParseVND(it.Price),
		Description: it.Description,
		Store:       it.Store,
		Lat:         it.Coord.Lat,
		Lng:         it.Coord.Lng,
	}
}
