package routing

import (
	"context"
	"fmt"

	"petnourish-service/internal/domain"
	"petnourish-service/internal/ports"
)

// MockRouteProvider returns a straight-line path through the requested
// waypoints. Used in tests and offline runs.
type MockRouteProvider struct {
	// Err, when set, is returned for every request.
	Err error
	// Calls records each waypoint list requested, in order.
	Calls [][]domain.Coordinates
}

func (m *MockRouteProvider) Route(
	ctx context.Context,
	waypoints []domain.Coordinates,
) (domain.RoutePath, error) {
	m.Calls = append(m.Calls, waypoints)
	if m.Err != nil {
		return domain.RoutePath{}, m.Err
	}

	coords := make([]domain.Coordinates, len(waypoints))
	copy(coords, waypoints)
	return domain.RoutePath{Coords: coords}, nil
}

// MockGeocoder resolves queries from a fixed table.
type MockGeocoder struct {
	Places map[string]domain.GeocodedPlace
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (domain.GeocodedPlace, error) {
	p, ok := m.Places[query]
	if !ok {
		return domain.GeocodedPlace{}, fmt.Errorf("geocode %q: %w", query, ports.ErrNotFound)
	}
	return p, nil
}
