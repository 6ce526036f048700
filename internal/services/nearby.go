package services

import (
	"sort"
	"strings"

	"petnourish-service/internal/domain"
	"petnourish-service/internal/geo"
	"petnourish-service/internal/ports"
)

// Nearest returns the candidate minimizing haversine distance from origin.
// Ties keep the first-encountered candidate; ok is false for an empty list.
// Callers are responsible for checking that a user position is known before
// computing distances.
func Nearest(origin domain.Coordinates, candidates []domain.Place) (domain.Place, bool) {
	var best domain.Place
	bestDist := -1.0

	for _, c := range candidates {
		d := geo.Haversine(origin, c.Coord)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = c
		}
	}

	return best, bestDist >= 0
}

// Sort orders accepted by the nearby listing.
const (
	SortDistance = "distance"
	SortName     = "name"
	SortOpen     = "open"
)

// A place annotated with distance and open status for nearby listings.
type NearbyPlace struct {
	Place          domain.Place
	DistanceMeters float64
	Status         domain.OpenStatus
}

// NearbyLimit caps the nearby listing, mirroring what the map view shows.
const NearbyLimit = 12

// ListNearby annotates places with distance from origin and open status,
// then sorts by the requested order: distance, name, or open rank with
// distance as the secondary key. The result is capped at NearbyLimit.
func ListNearby(
	origin domain.Coordinates,
	places []domain.Place,
	schedules ports.ScheduleProvider,
	now float64,
	sortBy string,
) []NearbyPlace {
	out := make([]NearbyPlace, 0, len(places))
	for _, p := range places {
		out = append(out, NearbyPlace{
			Place:          p,
			DistanceMeters: geo.Haversine(origin, p.Coord),
			Status:         EvaluateAt(schedules.ScheduleFor(p.Key), now),
		})
	}

	switch sortBy {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Place.Name) < strings.ToLower(out[j].Place.Name)
		})
	case SortOpen:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Status.Rank != out[j].Status.Rank {
				return out[i].Status.Rank < out[j].Status.Rank
			}
			return out[i].DistanceMeters < out[j].DistanceMeters
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DistanceMeters < out[j].DistanceMeters
		})
	}

	if len(out) > NearbyLimit {
		out = out[:NearbyLimit]
	}
	return out
}

// StorePlaces converts grouped stores to generic places for distance search.
func StorePlaces(stores []domain.Store) []domain.Place {
	out := make([]domain.Place, 0, len(stores))
	for _, s := range stores {
		out = append(out, domain.Place{
			Kind:  domain.KindStore,
			Key:   s.Name,
			Name:  s.Name,
			Coord: s.Coord,
		})
	}
	return out
}
