package dto

type RouteRequest struct {
	// Exactly one of Destination or Lat/Lng must be provided, unless
	// Emergency is set.
	Destination string   `json:"destination"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Emergency   bool     `json:"emergency"`
}

type RouteResponse struct {
	Label string               `json:"label,omitempty"`
	Path  []CoordinatesPayload `json:"path"`
}

type EmergencyRouteResponse struct {
	Hospital PlaceResponse        `json:"hospital"`
	Path     []CoordinatesPayload `json:"path"`
}

type TripStopResponse struct {
	Kind string  `json:"kind"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type AddStopRequest struct {
	// Query geocodes a free-text stop; Nearest adds the closest place of
	// the given kind ("store" or "hospital"). Exactly one must be set.
	Query   string `json:"query"`
	Nearest string `json:"nearest"`
}

type TripResponse struct {
	Waypoints []CoordinatesPayload `json:"waypoints"`
	Path      []CoordinatesPayload `json:"path"`
}

type ListStopsResponse struct {
	Stops []TripStopResponse `json:"stops"`
}
