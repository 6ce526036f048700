package api

import (
	"net/http"

	"petnourish-service/internal/api/handlers"
	"petnourish-service/internal/ports"
	"petnourish-service/internal/prefs"
	"petnourish-service/internal/services"
	"petnourish-service/internal/session"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	repo ports.CatalogRepository,
	routes ports.RouteProvider,
	geocoder ports.Geocoder,
	schedules ports.ScheduleProvider,
	sess *session.State,
	p *prefs.Store,
) http.Handler {
	mux := http.NewServeMux()

	planner := services.NewPlanner(repo, routes, geocoder, sess, p)

	catalogHandler := &handlers.CatalogHandler{Repo: repo}
	placesHandler := &handlers.PlacesHandler{
		Repo:      repo,
		Schedules: schedules,
		Session:   sess,
		Prefs:     p,
	}
	sessionHandler := &handlers.SessionHandler{Session: sess, Prefs: p}
	basketHandler := &handlers.BasketHandler{Repo: repo, Basket: services.NewBasket(p)}
	savedHandler := &handlers.SavedHandler{Prefs: p}
	routeHandler := &handlers.RouteHandler{Planner: planner, Session: sess}
	prefsHandler := &handlers.PrefsHandler{Prefs: p}

	mux.HandleFunc("/health", handlers.Health)

	mux.HandleFunc("/catalog/items", catalogHandler.List)
	mux.HandleFunc("/compare", catalogHandler.Compare)

	mux.HandleFunc("/places", placesHandler.List)
	mux.HandleFunc("/places/nearby", placesHandler.Nearby)
	mux.HandleFunc("/places/nearest", placesHandler.Nearest)

	mux.HandleFunc("/session/position", sessionHandler.Position)
	mux.HandleFunc("/session/home", sessionHandler.Home)

	mux.HandleFunc("/basket", basketHandler.Lines)
	mux.HandleFunc("/basket/items", basketHandler.Add)
	mux.HandleFunc("/basket/items/", basketHandler.Item)
	mux.HandleFunc("/basket/summary", basketHandler.Summary)

	mux.HandleFunc("/saved", savedHandler.Saved)

	mux.HandleFunc("/routes", routeHandler.Route)
	mux.HandleFunc("/trips", routeHandler.Trip)
	mux.HandleFunc("/trips/stops", routeHandler.Stops)
	mux.HandleFunc("/trips/stops/", routeHandler.Stop)

	mux.HandleFunc("/suggestions", prefsHandler.Suggestions)
	mux.HandleFunc("/traffic", prefsHandler.Traffic)
	mux.HandleFunc("/onboarding", prefsHandler.Onboarding)

	return loggingMiddleware(mux)
}
