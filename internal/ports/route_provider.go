package ports

import (
	"context"
	"errors"

	"petnourish-service/internal/domain"
)

// ErrNotFound is returned when an external lookup has no result for the
// given input (unknown destination, no drivable route).
var ErrNotFound = errors.New("not found")

// Contract for retrieving a drivable path visiting waypoints in order.
type RouteProvider interface {
	// Return an ordered polyline through two or more waypoints.
	// Returns ErrNotFound when the service yields no route.
	Route(ctx context.Context, waypoints []domain.Coordinates) (domain.RoutePath, error)
}
