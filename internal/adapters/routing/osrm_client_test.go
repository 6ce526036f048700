package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petnourish-service/internal/domain"
	"petnourish-service/internal/ports"
)

func TestOSRMRouteDecodesGeometry(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"routes":[{"geometry":{"coordinates":[[106.703,10.7767],[106.72,10.79]]}}]}`))
	}))
	defer srv.Close()

	provider := NewOSRMRouteProvider(srv.URL, "test-agent")
	path, err := provider.Route(context.Background(), []domain.Coordinates{
		{Lat: 10.7767, Lng: 106.703},
		{Lat: 10.79, Lng: 106.72},
	})
	if err != nil {
		t.Fatal(err)
	}

	// Waypoints go lng,lat into the request path.
	if !strings.HasPrefix(gotPath, "/route/v1/driving/106.703,10.7767;") {
		t.Errorf("request path = %q", gotPath)
	}

	// GeoJSON pairs come back lng-first and must be flipped.
	if len(path.Coords) != 2 {
		t.Fatalf("got %d coords, want 2", len(path.Coords))
	}
	if path.Coords[0] != (domain.Coordinates{Lat: 10.7767, Lng: 106.703}) {
		t.Errorf("first coord = %v", path.Coords[0])
	}
}

func TestOSRMRouteNoRoutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"routes":[]}`))
	}))
	defer srv.Close()

	provider := NewOSRMRouteProvider(srv.URL, "test-agent")
	_, err := provider.Route(context.Background(), []domain.Coordinates{
		{Lat: 10.7767, Lng: 106.703},
		{Lat: 10.79, Lng: 106.72},
	})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestOSRMRouteRejectsSingleWaypoint(t *testing.T) {
	provider := NewOSRMRouteProvider("http://unused", "test-agent")
	if _, err := provider.Route(context.Background(), []domain.Coordinates{{Lat: 1, Lng: 2}}); err == nil {
		t.Fatal("expected error for a single waypoint")
	}
}

func TestOSRMRouteRetriesServerErrors(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"routes":[{"geometry":{"coordinates":[[106.703,10.7767],[106.72,10.79]]}}]}`))
	}))
	defer srv.Close()

	provider := NewOSRMRouteProvider(srv.URL, "test-agent")
	_, err := provider.Route(context.Background(), []domain.Coordinates{
		{Lat: 10.7767, Lng: 106.703},
		{Lat: 10.79, Lng: 106.72},
	})
	if err != nil {
		t.Fatal(err)
	}
	if hits != 3 {
		t.Errorf("server hit %d times, want 3", hits)
	}
}

func TestOSRMRouteDoesNotRetryClientErrors(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	provider := NewOSRMRouteProvider(srv.URL, "test-agent")
	_, err := provider.Route(context.Background(), []domain.Coordinates{
		{Lat: 10.7767, Lng: 106.703},
		{Lat: 10.79, Lng: 106.72},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
}
