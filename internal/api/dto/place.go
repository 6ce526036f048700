package dto

type CoordinatesPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PlaceResponse struct {
	Kind string  `json:"kind"`
	Key  string  `json:"key"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

type NearbyPlaceResponse struct {
	PlaceResponse
	DistanceMeters float64 `json:"distance_meters"`
	Status         string  `json:"status"`
	StatusDetail   string  `json:"status_detail"`
	Saved          bool    `json:"saved"`
}

type ListNearbyResponse struct {
	Places []NearbyPlaceResponse `json:"places"`
}

type NearestResponse struct {
	Place          PlaceResponse `json:"place"`
	DistanceMeters float64       `json:"distance_meters"`
}

type PositionRequest struct {
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	UseDemo bool     `json:"use_demo"`
}

type PositionResponse struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Demo bool    `json:"demo"`
}

type HomeRequest struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}
