package geo

import (
	"math"

	"petnourish-service/internal/domain"
)

// Mean Earth radius in meters.
const earthRadiusMeters = 6371000

// Haversine returns the great-circle distance between two coordinates in
// meters. Pure function; callers are expected to supply validated
// coordinates.
func Haversine(a, b domain.Coordinates) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Pow(math.Sin(dLng/2), 2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// ValidLatLng reports whether a coordinate pair is within the valid
// latitude/longitude ranges. Used to validate seed data and geocode results
// before they enter distance computations.
func ValidLatLng(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
