package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"petnourish-service/internal/api/dto"
	"petnourish-service/internal/domain"
	"petnourish-service/internal/geo"
	"petnourish-service/internal/services"
	"petnourish-service/internal/session"
)

// RouteHandler exposes single routes, multi-stop trips, and the custom stop
// list.
type RouteHandler struct {
	Planner *services.Planner
	Session *session.State
}

// Route computes a drivable path from the user's position. The destination
// is free text, explicit coordinates, or the nearest hospital when the
// request is flagged as an emergency.
func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()

	if req.Emergency {
		hospital, res, err := h.Planner.RouteToNearestHospital(ctx)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.EmergencyRouteResponse{
			Hospital: placePayload(hospital),
			Path:     coordsPayload(res.Path.Coords),
		})
		return
	}

	if req.Lat != nil && req.Lng != nil {
		if !geo.ValidLatLng(*req.Lat, *req.Lng) {
			writeError(w, r, http.StatusBadRequest, "lat/lng out of range")
			return
		}
		res, err := h.Planner.RouteToCoord(ctx, domain.Coordinates{Lat: *req.Lat, Lng: *req.Lng})
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.RouteResponse{Path: coordsPayload(res.Path.Coords)})
		return
	}

	if strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "destination, lat/lng, or emergency is required")
		return
	}

	res, err := h.Planner.RouteToText(ctx, req.Destination)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		Label: res.Label,
		Path:  coordsPayload(res.Path.Coords),
	})
}

// Trip plans the default multi-stop trip.
func (h *RouteHandler) Trip(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	trip, err := h.Planner.PlanTrip(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.TripResponse{
		Waypoints: coordsPayload(trip.Waypoints),
		Path:      coordsPayload(trip.Path),
	})
}

// Stops lists (GET), appends (POST) or clears (DELETE) the custom stop list.
func (h *RouteHandler) Stops(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, r, http.StatusOK, stopsPayload(h.Session.Stops()))

	case http.MethodPost:
		var req dto.AddStopRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		var stop domain.TripStop
		var err error

		switch {
		case req.Nearest != "":
			stop, err = h.Planner.AddNearestStop(r.Context(), domain.PlaceKind(req.Nearest))
		case strings.TrimSpace(req.Query) != "":
			stop, err = h.Planner.AddCustomStop(r.Context(), req.Query)
		default:
			writeError(w, r, http.StatusBadRequest, "query or nearest is required")
			return
		}
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, dto.TripStopResponse{
			Kind: string(stop.Kind),
			Name: stop.Name,
			Lat:  stop.Coord.Lat,
			Lng:  stop.Coord.Lng,
		})

	case http.MethodDelete:
		h.Session.ClearStops()
		writeJSON(w, r, http.StatusOK, dto.ListStopsResponse{Stops: []dto.TripStopResponse{}})

	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Stop removes the custom stop at the index in the trailing path segment.
func (h *RouteHandler) Stop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", http.MethodDelete)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	index, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/trips/stops/"))
	if err != nil || index < 0 {
		writeError(w, r, http.StatusBadRequest, "invalid stop index")
		return
	}

	h.Session.RemoveStop(index)
	writeJSON(w, r, http.StatusOK, stopsPayload(h.Session.Stops()))
}

func stopsPayload(stops []domain.TripStop) dto.ListStopsResponse {
	res := dto.ListStopsResponse{Stops: make([]dto.TripStopResponse, 0, len(stops))}
	for _, s := range stops {
		res.Stops = append(res.Stops, dto.TripStopResponse{
			Kind: string(s.Kind),
			Name: s.Name,
			Lat:  s.Coord.Lat,
			Lng:  s.Coord.Lng,
		})
	}
	return res
}
