package ports

import (
	"context"

	"petnourish-service/internal/domain"
)

// Contract for resolving free-text destinations to coordinates.
type Geocoder interface {
	// Resolve a place name or address to coordinates and a display label.
	// Returns ErrNotFound when the service has no candidates.
	Geocode(ctx context.Context, query string) (domain.GeocodedPlace, error)
}
