package prefs

import (
	"context"
	"testing"

	"petnourish-service/internal/adapters/kv"
	"petnourish-service/internal/domain"
)

func newStore() (*Store, *kv.MemoryStore) {
	mem := kv.NewMemoryStore()
	return New(mem), mem
}

func TestRecentDestinationsBoundAndDedupe(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()

	for _, d := range []string{"Ben Thanh Market", "Saigon Zoo", "ben thanh market"} {
		if err := s.RememberDestination(ctx, d); err != nil {
			t.Fatalf("remember %q: %v", d, err)
		}
	}

	got := s.RecentDestinations(ctx)
	if len(got) != 2 {
		t.Fatalf("recent length = %d, want 2 (case-insensitive dedupe): %v", len(got), got)
	}
	if got[0] != "ben thanh market" || got[1] != "Saigon Zoo" {
		t.Errorf("recent order = %v, want most recent first", got)
	}

	for i := 0; i < 20; i++ {
		dest := "Destination " + string(rune('A'+i))
		if err := s.RememberDestination(ctx, dest); err != nil {
			t.Fatalf("remember: %v", err)
		}
	}
	if n := len(s.RecentDestinations(ctx)); n != RecentDestinationLimit {
		t.Errorf("recent length = %d, want %d", n, RecentDestinationLimit)
	}
}

func TestRememberDestinationIgnoresBlank(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()

	if err := s.RememberDestination(ctx, "   "); err != nil {
		t.Fatalf("remember blank: %v", err)
	}
	if got := s.RecentDestinations(ctx); len(got) != 0 {
		t.Errorf("blank destination stored: %v", got)
	}
}

func TestCorruptValuesFallBack(t *testing.T) {
	ctx := context.Background()
	s, mem := newStore()

	for _, key := range []string{keyRecentDest, keySaved, keyBasket, keyHome, keyTraffic, keyTour} {
		if err := mem.Set(ctx, key, "{not json"); err != nil {
			t.Fatal(err)
		}
	}

	if got := s.RecentDestinations(ctx); len(got) != 0 {
		t.Errorf("recent fallback = %v, want empty", got)
	}
	if got := s.SavedPlaces(ctx); len(got) != 0 {
		t.Errorf("saved fallback = %v, want empty", got)
	}
	if got := s.BasketLines(ctx); len(got) != 0 {
		t.Errorf("basket fallback = %v, want empty", got)
	}
	if got := s.Home(ctx); got != nil {
		t.Errorf("home fallback = %v, want nil", got)
	}
	if got := s.TrafficTime(ctx); got != DefaultTrafficTime {
		t.Errorf("traffic fallback = %q, want %q", got, DefaultTrafficTime)
	}
	if s.OnboardingDone(ctx) {
		t.Error("onboarding fallback = true, want false")
	}
}

func TestTrafficTimeRejectsUnknownValue(t *testing.T) {
	ctx := context.Background()
	s, mem := newStore()

	if err := mem.Set(ctx, keyTraffic, `"rush-hour"`); err != nil {
		t.Fatal(err)
	}
	if got := s.TrafficTime(ctx); got != DefaultTrafficTime {
		t.Errorf("unknown traffic value accepted: %q", got)
	}

	if err := s.SetTrafficTime(ctx, "night"); err != nil {
		t.Fatal(err)
	}
	if got := s.TrafficTime(ctx); got != "night" {
		t.Errorf("traffic = %q, want night", got)
	}
}

func TestToggleSaved(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()

	saved, err := s.ToggleSaved(ctx, domain.KindStore, "Pet City (Ly Chinh Thang)")
	if err != nil || !saved {
		t.Fatalf("first toggle: saved=%v err=%v", saved, err)
	}
	if !s.IsSaved(ctx, domain.KindStore, "Pet City (Ly Chinh Thang)") {
		t.Error("entry not reported as saved")
	}

	saved, err = s.ToggleSaved(ctx, domain.KindStore, "Pet City (Ly Chinh Thang)")
	if err != nil || saved {
		t.Fatalf("second toggle: saved=%v err=%v", saved, err)
	}
	if len(s.SavedPlaces(ctx)) != 0 {
		t.Error("entry still present after removal toggle")
	}
}

func TestHomeRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()

	if s.Home(ctx) != nil {
		t.Fatal("home should default to nil")
	}

	want := domain.Home{
		Coord: domain.Coordinates{Lat: 10.7767, Lng: 106.7030},
		Label: "Home (auto set)",
	}
	if err := s.SetHome(ctx, want); err != nil {
		t.Fatal(err)
	}

	got := s.Home(ctx)
	if got == nil || *got != want {
		t.Errorf("home = %+v, want %+v", got, want)
	}
}
