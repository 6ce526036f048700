package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"petnourish-service/internal/domain"
	"petnourish-service/internal/platform/obs"
	"petnourish-service/internal/ports"
)

// DefaultOSRMBaseURL points at the public OSRM demo server.
const DefaultOSRMBaseURL = "https://router.project-osrm.org"

// OSRMRouteProvider implements RouteProvider against an OSRM HTTP instance
// using the driving profile. Safe for concurrent use.
type OSRMRouteProvider struct {
	rest    *restClient
	baseURL string
	profile string
}

func NewOSRMRouteProvider(baseURL, userAgent string) *OSRMRouteProvider {
	if baseURL == "" {
		baseURL = DefaultOSRMBaseURL
	}
	return &OSRMRouteProvider{
		rest:    newRESTClient(userAgent),
		baseURL: baseURL,
		profile: "driving",
	}
}

type osrmResponse struct {
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Route fetches an ordered polyline visiting the waypoints in the given
// order. OSRM takes lng,lat pairs in the path and returns GeoJSON
// coordinates, also lng-first.
func (o *OSRMRouteProvider) Route(
	ctx context.Context,
	waypoints []domain.Coordinates,
) (_ domain.RoutePath, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	if len(waypoints) < 2 {
		return domain.RoutePath{}, errors.New("osrm route: need at least 2 waypoints")
	}

	parts := make([]string, 0, len(waypoints))
	for _, w := range waypoints {
		pair := w.CoordsToList()
		parts = append(parts, strconv.FormatFloat(pair[0], 'f', -1, 64)+","+strconv.FormatFloat(pair[1], 'f', -1, 64))
	}

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%s?overview=full&geometries=geojson",
		o.baseURL, o.profile, strings.Join(parts, ";"),
	)

	resp, err := o.rest.doWithRetry(ctx, func() (*http.Request, error) {
		return o.rest.newRequest(ctx, http.MethodGet, endpoint)
	})
	if err != nil {
		return domain.RoutePath{}, fmt.Errorf("osrm route request: %w", err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.RoutePath{}, fmt.Errorf("decode osrm response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return domain.RoutePath{}, fmt.Errorf("osrm route: %w", ports.ErrNotFound)
	}

	raw := decoded.Routes[0].Geometry.Coordinates
	coords := make([]domain.Coordinates, 0, len(raw))
	for _, pair := range raw {
		if len(pair) != 2 {
			return domain.RoutePath{}, errors.New("osrm route: invalid coordinate pair in geometry")
		}
		coords = append(coords, domain.Coordinates{Lat: pair[1], Lng: pair[0]})
	}

	return domain.RoutePath{Coords: coords}, nil
}
