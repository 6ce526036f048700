package handlers

import (
	"log"
	"net/http"
	"time"

	"petnourish-service/internal/api/dto"
	"petnourish-service/internal/domain"
	"petnourish-service/internal/geo"
	"petnourish-service/internal/ports"
	"petnourish-service/internal/prefs"
	"petnourish-service/internal/services"
	"petnourish-service/internal/session"
)

// PlacesHandler exposes stores and hospitals, plain and distance-annotated.
type PlacesHandler struct {
	Repo      ports.CatalogRepository
	Schedules ports.ScheduleProvider
	Session   *session.State
	Prefs     *prefs.Store

	// Now is replaceable in tests; defaults to time.Now.
	Now func() time.Time
}

func (h *PlacesHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// listPlaces resolves the place set for an optional kind filter.
func (h *PlacesHandler) listPlaces(r *http.Request) ([]domain.Place, error) {
	kind := r.URL.Query().Get("kind")

	var places []domain.Place

	if kind == "" || kind == string(domain.KindStore) {
		stores, err := h.Repo.ListStores(r.Context())
		if err != nil {
			return nil, err
		}
		places = append(places, services.StorePlaces(stores)...)
	}

	if kind == "" || kind == string(domain.KindHospital) {
		hospitals, err := h.Repo.ListHospitals(r.Context())
		if err != nil {
			return nil, err
		}
		places = append(places, hospitals...)
	}

	return places, nil
}

// List returns stores and hospitals without distance annotations.
func (h *PlacesHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	places, err := h.listPlaces(r)
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlacesResponse{Places: make([]dto.PlaceResponse, 0, len(places))}
	for _, p := range places {
		res.Places = append(res.Places, placePayload(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Nearby returns places annotated with distance from the user's position and
// open status, in the requested sort order.
func (h *PlacesHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	origin, ok := h.Session.Position()
	if !ok {
		writeDomainError(w, r, services.ErrNoPosition)
		return
	}

	places, err := h.listPlaces(r)
	if err != nil {
		log.Printf("list nearby failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	nearby := services.ListNearby(
		origin,
		places,
		h.Schedules,
		services.FractionalHour(h.now()),
		r.URL.Query().Get("sort"),
	)

	res := dto.ListNearbyResponse{Places: make([]dto.NearbyPlaceResponse, 0, len(nearby))}
	for _, np := range nearby {
		res.Places = append(res.Places, dto.NearbyPlaceResponse{
			PlaceResponse:  placePayload(np.Place),
			DistanceMeters: np.DistanceMeters,
			Status:         np.Status.State,
			StatusDetail:   np.Status.Detail,
			Saved:          h.Prefs.IsSaved(r.Context(), np.Place.Kind, np.Place.Key),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Nearest returns the closest place of the requested kind.
func (h *PlacesHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	origin, ok := h.Session.Position()
	if !ok {
		writeDomainError(w, r, services.ErrNoPosition)
		return
	}

	places, err := h.listPlaces(r)
	if err != nil {
		log.Printf("nearest place failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	nearest, ok := services.Nearest(origin, places)
	if !ok {
		writeError(w, r, http.StatusNotFound, "no places available")
		return
	}

	res := dto.NearestResponse{
		Place:          placePayload(nearest),
		DistanceMeters: geo.Haversine(origin, nearest.Coord),
	}
	writeJSON(w, r, http.StatusOK, res)
}
