package handlers

import (
	"log"
	"net/http"
	"strings"

	"petnourish-service/internal/api/dto"
	"petnourish-service/internal/domain"
	"petnourish-service/internal/geo"
	"petnourish-service/internal/prefs"
	"petnourish-service/internal/session"
)

// SessionHandler manages the per-session position and the persisted home
// location.
type SessionHandler struct {
	Session *session.State
	Prefs   *prefs.Store
}

// Position sets (POST) or reads (GET) the user's position. A request with
// use_demo set adopts the demo location instead of explicit coordinates.
func (h *SessionHandler) Position(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		pos, ok := h.Session.Position()
		if !ok {
			writeError(w, r, http.StatusNotFound, "position not set")
			return
		}
		writeJSON(w, r, http.StatusOK, dto.PositionResponse{Lat: pos.Lat, Lng: pos.Lng})

	case http.MethodPost:
		var req dto.PositionRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if req.UseDemo {
			h.recordPosition(r, session.DemoPosition)
			writeJSON(w, r, http.StatusOK, dto.PositionResponse{
				Lat:  session.DemoPosition.Lat,
				Lng:  session.DemoPosition.Lng,
				Demo: true,
			})
			return
		}

		if req.Lat == nil || req.Lng == nil {
			writeError(w, r, http.StatusBadRequest, "lat and lng are required")
			return
		}
		if !geo.ValidLatLng(*req.Lat, *req.Lng) {
			writeError(w, r, http.StatusBadRequest, "lat/lng out of range")
			return
		}

		h.recordPosition(r, domain.Coordinates{Lat: *req.Lat, Lng: *req.Lng})
		writeJSON(w, r, http.StatusOK, dto.PositionResponse{Lat: *req.Lat, Lng: *req.Lng})

	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// recordPosition stores the position and pins home to the first fix when no
// home is saved yet. Later fixes never move the auto-set home.
func (h *SessionHandler) recordPosition(r *http.Request, pos domain.Coordinates) {
	h.Session.SetPosition(pos)

	if h.Prefs.Home(r.Context()) != nil {
		return
	}
	home := domain.Home{Coord: pos, Label: "Home (auto set)"}
	if err := h.Prefs.SetHome(r.Context(), home); err != nil {
		log.Printf("auto-set home failed: %v", err)
	}
}

// Home sets (POST) or reads (GET) the saved home location.
func (h *SessionHandler) Home(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		home := h.Prefs.Home(r.Context())
		if home == nil {
			writeError(w, r, http.StatusNotFound, "home not set")
			return
		}
		writeJSON(w, r, http.StatusOK, dto.HomeRequest{
			Lat:   home.Coord.Lat,
			Lng:   home.Coord.Lng,
			Label: home.Label,
		})

	case http.MethodPost:
		var req dto.HomeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if !geo.ValidLatLng(req.Lat, req.Lng) {
			writeError(w, r, http.StatusBadRequest, "lat/lng out of range")
			return
		}

		home := domain.Home{
			Coord: domain.Coordinates{Lat: req.Lat, Lng: req.Lng},
			Label: strings.TrimSpace(req.Label),
		}
		if err := h.Prefs.SetHome(r.Context(), home); err != nil {
			log.Printf("set home failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, r, http.StatusOK, req)

	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}
