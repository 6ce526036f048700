package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"petnourish-service/internal/domain"
	"petnourish-service/internal/platform/obs"
)

// SQLGeocodeCache is the Postgres variant of the geocode cache.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Fetch the cached place for a query.
func (s *SQLGeocodeCache) Get(
	ctx context.Context,
	query string,
) (_ domain.GeocodedPlace, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.GeocodedPlace{}, false, errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.GeocodedPlace{}, false, errors.New("get geocode cache: query must not be empty")
	}

	q := `
	SELECT lat, lng, label
    FROM geocode_cache
    WHERE query = $1;
	`

	var place domain.GeocodedPlace
	err = s.DB.QueryRowContext(ctx, q, query).Scan(&place.Coord.Lat, &place.Coord.Lng, &place.Label)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GeocodedPlace{}, false, nil
	}
	if err != nil {
		return domain.GeocodedPlace{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return place, true, nil
}

// Store a query -> place mapping in the cache.
func (s *SQLGeocodeCache) Put(
	ctx context.Context,
	query string,
	place domain.GeocodedPlace,
) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: query must not be empty")
	}

	q := `
	INSERT INTO geocode_cache (query, lat, lng, label)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (query) DO UPDATE
	SET lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		label = EXCLUDED.label;
	`

	if _, err := s.DB.ExecContext(ctx, q, query, place.Coord.Lat, place.Coord.Lng, place.Label); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}
