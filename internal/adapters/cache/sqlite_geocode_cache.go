package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"petnourish-service/internal/domain"
)

// SQLite backed cache mapping destination queries to geocoded places.
// Query keys are expected to be consistent (e.g., normalized) by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Fetch the cached place for a query.
func (s *SqliteGeocodeCache) Get(
	ctx context.Context,
	query string,
) (domain.GeocodedPlace, bool, error) {
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
    WHERE query = ?;
	`

	var place domain.GeocodedPlace
	err := s.DB.QueryRowContext(ctx, q, query).Scan(&place.Coord.Lat, &place.Coord.Lng, &place.Label)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GeocodedPlace{}, false, nil
	}
	if err != nil {
		return domain.GeocodedPlace{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return place, true, nil
}

// Store a query -> place mapping in the cache.
func (s *SqliteGeocodeCache) Put(
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
	INSERT OR REPLACE INTO geocode_cache (
        query,
        lat,
        lng,
        label
    )
    VALUES (?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, query, place.Coord.Lat, place.Coord.Lng, place.Label); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}
