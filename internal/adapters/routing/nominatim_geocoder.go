package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"petnourish-service/internal/domain"
	"petnourish-service/internal/geo"
	"petnourish-service/internal/platform/obs"
	"petnourish-service/internal/ports"
)

// DefaultNominatimBaseURL points at the public Nominatim instance.
const DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

// GeocodeCache persists resolved destinations so repeated lookups skip the
// external service. A nil cache disables caching.
type GeocodeCache interface {
	Get(ctx context.Context, query string) (domain.GeocodedPlace, bool, error)
	Put(ctx context.Context, query string, place domain.GeocodedPlace) error
}

// NominatimGeocoder implements Geocoder against the Nominatim search API
// with a persistent cache in front. Safe for concurrent use.
type NominatimGeocoder struct {
	rest    *restClient
	baseURL string
	cache   GeocodeCache
}

func NewNominatimGeocoder(baseURL, userAgent string, cache GeocodeCache) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = DefaultNominatimBaseURL
	}
	return &NominatimGeocoder{
		rest:    newRESTClient(userAgent),
		baseURL: baseURL,
		cache:   cache,
	}
}

// normalize ensures consistent cache keys by collapsing whitespace and
// lowering case.
func (n *NominatimGeocoder) normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text destination to coordinates and a display
// label. Returns ports.ErrNotFound when the service has no candidates.
func (n *NominatimGeocoder) Geocode(
	ctx context.Context,
	query string,
) (_ domain.GeocodedPlace, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	norm := n.normalize(query)
	if norm == "" {
		return domain.GeocodedPlace{}, fmt.Errorf("geocode: empty query")
	}

	if n.cache != nil {
		hit, ok, err := n.cache.Get(ctx, norm)
		if err != nil {
			return domain.GeocodedPlace{}, fmt.Errorf("geocode cache read: %w", err)
		}
		if ok {
			return hit, nil
		}
	}

	endpoint := fmt.Sprintf(
		"%s/search?format=json&limit=1&q=%s",
		n.baseURL, url.QueryEscape(norm),
	)

	resp, err := n.rest.doWithRetry(ctx, func() (*http.Request, error) {
		return n.rest.newRequest(ctx, http.MethodGet, endpoint)
	})
	if err != nil {
		return domain.GeocodedPlace{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.GeocodedPlace{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded) == 0 {
		return domain.GeocodedPlace{}, fmt.Errorf("geocode %q: %w", query, ports.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.GeocodedPlace{}, fmt.Errorf("geocode %q: parse lat: %w", query, err)
	}
	lng, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.GeocodedPlace{}, fmt.Errorf("geocode %q: parse lon: %w", query, err)
	}
	if !geo.ValidLatLng(lat, lng) {
		return domain.GeocodedPlace{}, fmt.Errorf("geocode %q: coordinates out of range", query)
	}

	place := domain.GeocodedPlace{
		Coord: domain.Coordinates{Lat: lat, Lng: lng},
		Label: decoded[0].DisplayName,
	}

	if n.cache != nil {
		if err := n.cache.Put(ctx, norm, place); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return place, nil
}
