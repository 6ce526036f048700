package services

import (
	"context"
	"errors"
	"fmt"

	"petnourish-service/internal/domain"
	"petnourish-service/internal/ports"
	"petnourish-service/internal/prefs"
	"petnourish-service/internal/session"
)

// ErrNoPosition is returned when a distance-dependent operation runs before
// the user's position is known. It degrades to a user-visible advisory, not
// a fault.
var ErrNoPosition = errors.New("user position unknown")

// ErrSuperseded marks a route response that arrived after a newer request
// was initiated; its result must not be applied.
var ErrSuperseded = errors.New("route request superseded")

// Planner assembles waypoints and requests routes. Every route request is
// stamped with the session's route generation so that out of two requests
// issued in sequence, only the most recently initiated one takes effect.
type Planner struct {
	Catalog  ports.CatalogRepository
	Routes   ports.RouteProvider
	Geocoder ports.Geocoder
	Session  *session.State
	Prefs    *prefs.Store
}

func NewPlanner(
	catalog ports.CatalogRepository,
	routes ports.RouteProvider,
	geocoder ports.Geocoder,
	sess *session.State,
	p *prefs.Store,
) *Planner {
	return &Planner{
		Catalog:  catalog,
		Routes:   routes,
		Geocoder: geocoder,
		Session:  sess,
		Prefs:    p,
	}
}

// A computed route plus the label of the resolved destination (when the
// request started from free text).
type RouteResult struct {
	Path  domain.RoutePath
	Label string
}

// RouteToText geocodes a free-text destination and routes from the user's
// position to it. The destination is remembered for suggestions only after
// a successful geocode.
func (p *Planner) RouteToText(ctx context.Context, destination string) (RouteResult, error) {
	origin, ok := p.Session.Position()
	if !ok {
		return RouteResult{}, ErrNoPosition
	}

	gen := p.Session.NextRouteGeneration()

	dest, err := p.Geocoder.Geocode(ctx, destination)
	if err != nil {
		return RouteResult{}, fmt.Errorf("route to %q: %w", destination, err)
	}

	if err := p.Prefs.RememberDestination(ctx, destination); err != nil {
		return RouteResult{}, fmt.Errorf("route to %q: %w", destination, err)
	}

	path, err := p.Routes.Route(ctx, []domain.Coordinates{origin, dest.Coord})
	if err != nil {
		return RouteResult{}, fmt.Errorf("route to %q: %w", destination, err)
	}

	if !p.Session.IsCurrentRoute(gen) {
		return RouteResult{}, ErrSuperseded
	}

	return RouteResult{Path: path, Label: dest.Label}, nil
}

// RouteToCoord routes from the user's position to known coordinates.
func (p *Planner) RouteToCoord(ctx context.Context, dest domain.Coordinates) (RouteResult, error) {
	origin, ok := p.Session.Position()
	if !ok {
		return RouteResult{}, ErrNoPosition
	}

	gen := p.Session.NextRouteGeneration()

	path, err := p.Routes.Route(ctx, []domain.Coordinates{origin, dest})
	if err != nil {
		return RouteResult{}, fmt.Errorf("route to coordinates: %w", err)
	}

	if !p.Session.IsCurrentRoute(gen) {
		return RouteResult{}, ErrSuperseded
	}

	return RouteResult{Path: path}, nil
}

// RouteToNearestHospital is the emergency action: shortest hop to the
// closest hospital.
func (p *Planner) RouteToNearestHospital(ctx context.Context) (domain.Place, RouteResult, error) {
	origin, ok := p.Session.Position()
	if !ok {
		return domain.Place{}, RouteResult{}, ErrNoPosition
	}

	hospitals, err := p.Catalog.ListHospitals(ctx)
	if err != nil {
		return domain.Place{}, RouteResult{}, fmt.Errorf("emergency route: %w", err)
	}

	nearest, ok := Nearest(origin, hospitals)
	if !ok {
		return domain.Place{}, RouteResult{}, fmt.Errorf("emergency route: %w", ports.ErrNotFound)
	}

	res, err := p.RouteToCoord(ctx, nearest.Coord)
	if err != nil {
		return domain.Place{}, RouteResult{}, err
	}
	return nearest, res, nil
}

// BuildTripWaypoints assembles the fixed-order visit list: the user's
// position, each custom stop in insertion order, the nearest store, the
// nearest hospital, then home (falling back to the user's position when no
// home is saved). No reordering optimization is attempted.
func BuildTripWaypoints(
	origin domain.Coordinates,
	stops []domain.TripStop,
	stores []domain.Place,
	hospitals []domain.Place,
	home *domain.Home,
) []domain.Coordinates {
	wp := []domain.Coordinates{origin}

	for _, s := range stops {
		wp = append(wp, s.Coord)
	}

	if nearestStore, ok := Nearest(origin, stores); ok {
		wp = append(wp, nearestStore.Coord)
	}
	if nearestHospital, ok := Nearest(origin, hospitals); ok {
		wp = append(wp, nearestHospital.Coord)
	}

	if home != nil {
		wp = append(wp, home.Coord)
	} else {
		wp = append(wp, origin)
	}

	return wp
}

// PlanTrip builds the default multi-stop trip and requests a drivable path
// for it.
func (p *Planner) PlanTrip(ctx context.Context) (domain.Trip, error) {
	origin, ok := p.Session.Position()
	if !ok {
		return domain.Trip{}, ErrNoPosition
	}

	gen := p.Session.NextRouteGeneration()

	stores, err := p.Catalog.ListStores(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("plan trip: list stores: %w", err)
	}
	hospitals, err := p.Catalog.ListHospitals(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("plan trip: list hospitals: %w", err)
	}

	wp := BuildTripWaypoints(origin, p.Session.Stops(), StorePlaces(stores), hospitals, p.Prefs.Home(ctx))

	path, err := p.Routes.Route(ctx, wp)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("plan trip: %w", err)
	}

	if !p.Session.IsCurrentRoute(gen) {
		return domain.Trip{}, ErrSuperseded
	}

	return domain.Trip{Waypoints: wp, Path: path.Coords}, nil
}

// AddNearestStop appends the nearest store or hospital to the custom stop
// list.
func (p *Planner) AddNearestStop(ctx context.Context, kind domain.PlaceKind) (domain.TripStop, error) {
	origin, ok := p.Session.Position()
	if !ok {
		return domain.TripStop{}, ErrNoPosition
	}

	var candidates []domain.Place
	var stopKind domain.StopKind

	switch kind {
	case domain.KindStore:
		stores, err := p.Catalog.ListStores(ctx)
		if err != nil {
			return domain.TripStop{}, fmt.Errorf("add nearest stop: %w", err)
		}
		candidates = StorePlaces(stores)
		stopKind = domain.StopStore
	case domain.KindHospital:
		hospitals, err := p.Catalog.ListHospitals(ctx)
		if err != nil {
			return domain.TripStop{}, fmt.Errorf("add nearest stop: %w", err)
		}
		candidates = hospitals
		stopKind = domain.StopHospital
	default:
		return domain.TripStop{}, fmt.Errorf("add nearest stop: unknown place kind %q", kind)
	}

	nearest, ok := Nearest(origin, candidates)
	if !ok {
		return domain.TripStop{}, fmt.Errorf("add nearest stop: %w", ports.ErrNotFound)
	}

	stop := domain.TripStop{Kind: stopKind, Name: nearest.Name, Coord: nearest.Coord}
	p.Session.AddStop(stop)
	return stop, nil
}

// AddCustomStop geocodes a free-text destination and appends it as a custom
// stop.
func (p *Planner) AddCustomStop(ctx context.Context, query string) (domain.TripStop, error) {
	dest, err := p.Geocoder.Geocode(ctx, query)
	if err != nil {
		return domain.TripStop{}, fmt.Errorf("add custom stop %q: %w", query, err)
	}

	stop := domain.TripStop{Kind: domain.StopCustom, Name: query, Coord: dest.Coord}
	p.Session.AddStop(stop)
	return stop, nil
}
