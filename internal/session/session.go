// Package session holds the mutable per-session state that the original
// client kept in free module variables: the user's position, custom trip
// stops, and the route request generation used to discard superseded
// responses.
package session

import (
	"sync"

	"petnourish-service/internal/domain"
)

// DemoPosition is the documented fallback when device geolocation is
// unavailable or denied and the user opts into the demo location.
var DemoPosition = domain.Coordinates{Lat: 10.7767, Lng: 106.7030}

// State is safe for concurrent use.
type State struct {
	mu       sync.Mutex
	position *domain.Coordinates
	stops    []domain.TripStop
	routeGen uint64
}

func New() *State {
	return &State{}
}

// SetPosition records the user's position for this session.
func (s *State) SetPosition(c domain.Coordinates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := c
	s.position = &p
}

// Position returns the user's position and whether one is known.
// Distance-dependent operations must check ok before computing.
func (s *State) Position() (domain.Coordinates, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.position == nil {
		return domain.Coordinates{}, false
	}
	return *s.position, true
}

// AddStop appends a custom trip stop; insertion order is the visit order.
func (s *State) AddStop(stop domain.TripStop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stops = append(s.stops, stop)
}

// RemoveStop deletes the stop at index; out-of-range indexes are ignored.
func (s *State) RemoveStop(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.stops) {
		return
	}
	s.stops = append(s.stops[:index], s.stops[index+1:]...)
}

// ClearStops removes all custom stops.
func (s *State) ClearStops() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stops = nil
}

// Stops returns a copy of the custom stops in insertion order.
func (s *State) Stops() []domain.TripStop {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TripStop, len(s.stops))
	copy(out, s.stops)
	return out
}

// NextRouteGeneration stamps a new route request. A request whose stamp is
// no longer current when its response arrives has been superseded and its
// result must be discarded.
func (s *State) NextRouteGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routeGen++
	return s.routeGen
}

// IsCurrentRoute reports whether the stamp belongs to the most recently
// initiated route request.
func (s *State) IsCurrentRoute(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.routeGen
}
