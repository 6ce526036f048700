package domain

// A geocoded destination: resolved coordinates plus the display label the
// geocoding service returned.
type GeocodedPlace struct {
	Coord Coordinates
	Label string
}

// An ordered polyline describing a drivable path between two or more
// waypoints, as returned by the routing service.
type RoutePath struct {
	Coords []Coordinates
}

// Home is the user's saved home coordinate.
type Home struct {
	Coord Coordinates `json:"coord"`
	Label string      `json:"label"`
}
