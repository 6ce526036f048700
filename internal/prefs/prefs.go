// Package prefs wraps the key-value persistence port with typed accessors
// for user preferences. Absent or corrupt stored values fall back to a
// documented default; corruption is never surfaced to the caller.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"petnourish-service/internal/domain"
	"petnourish-service/internal/ports"
)

// Storage keys. Versioned so a format change can start from a clean slate.
const (
	keyRecentDest = "pn_recent_destinations_v1"
	keySaved      = "pn_saved_places_v1"
	keyBasket     = "pn_basket_v1"
	keyHome       = "pn_home_location_v1"
	keyTour       = "pn_onboarding_done_v1"
	keyTraffic    = "pn_traffic_time_v1"
)

// RecentDestinationLimit bounds the recent-destination list.
const RecentDestinationLimit = 8

// DefaultTrafficTime is used when no preference is stored.
const DefaultTrafficTime = "morning"

type Store struct {
	kv ports.KeyValueStore
}

func New(kv ports.KeyValueStore) *Store {
	return &Store{kv: kv}
}

// getJSON unmarshals the stored value into out. Absent or corrupt values
// leave out untouched and report false.
func (s *Store) getJSON(ctx context.Context, key string, out any) bool {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("prefs: marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("prefs: store %s: %w", key, err)
	}
	return nil
}

// RecentDestinations returns the most-recent-first destination list.
// Default: empty list.
func (s *Store) RecentDestinations(ctx context.Context) []string {
	var list []string
	if !s.getJSON(ctx, keyRecentDest, &list) {
		return []string{}
	}
	return list
}

// RememberDestination prepends a destination, de-duplicating
// case-insensitively and keeping at most RecentDestinationLimit entries.
// Blank input is ignored.
func (s *Store) RememberDestination(ctx context.Context, text string) error {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return nil
	}

	next := []string{cleaned}
	for _, prev := range s.RecentDestinations(ctx) {
		if strings.EqualFold(prev, cleaned) {
			continue
		}
		next = append(next, prev)
		if len(next) == RecentDestinationLimit {
			break
		}
	}

	return s.setJSON(ctx, keyRecentDest, next)
}

// SavedPlaces returns the saved-place entries. Default: empty list.
func (s *Store) SavedPlaces(ctx context.Context) []domain.SavedEntry {
	var list []domain.SavedEntry
	if !s.getJSON(ctx, keySaved, &list) {
		return []domain.SavedEntry{}
	}
	return list
}

// IsSaved reports whether a place is bookmarked.
func (s *Store) IsSaved(ctx context.Context, kind domain.PlaceKind, key string) bool {
	for _, e := range s.SavedPlaces(ctx) {
		if e.Kind == kind && e.Key == key {
			return true
		}
	}
	return false
}

// ToggleSaved adds the entry if absent (newest first) or removes it if
// present, and reports whether the place is saved afterwards.
func (s *Store) ToggleSaved(ctx context.Context, kind domain.PlaceKind, key string) (bool, error) {
	current := s.SavedPlaces(ctx)

	next := make([]domain.SavedEntry, 0, len(current)+1)
	removed := false
	for _, e := range current {
		if e.Kind == kind && e.Key == key {
			removed = true
			continue
		}
		next = append(next, e)
	}
	if !removed {
		next = append([]domain.SavedEntry{{Kind: kind, Key: key}}, next...)
	}

	if err := s.setJSON(ctx, keySaved, next); err != nil {
		return false, err
	}
	return !removed, nil
}

// ClearSaved removes all saved places.
func (s *Store) ClearSaved(ctx context.Context) error {
	return s.setJSON(ctx, keySaved, []domain.SavedEntry{})
}

// BasketLines returns the persisted basket. Default: empty basket.
func (s *Store) BasketLines(ctx context.Context) []domain.BasketLine {
	var lines []domain.BasketLine
	if !s.getJSON(ctx, keyBasket, &lines) {
		return []domain.BasketLine{}
	}
	return lines
}

// SetBasketLines replaces the persisted basket.
func (s *Store) SetBasketLines(ctx context.Context, lines []domain.BasketLine) error {
	return s.setJSON(ctx, keyBasket, lines)
}

// Home returns the saved home coordinate, or nil when unset.
func (s *Store) Home(ctx context.Context) *domain.Home {
	var h domain.Home
	if !s.getJSON(ctx, keyHome, &h) {
		return nil
	}
	return &h
}

// SetHome stores the home coordinate.
func (s *Store) SetHome(ctx context.Context, h domain.Home) error {
	return s.setJSON(ctx, keyHome, h)
}

// TrafficTime returns the persisted traffic time-of-day preference.
// Default: DefaultTrafficTime. Unknown stored values also fall back.
func (s *Store) TrafficTime(ctx context.Context) string {
	var t string
	if !s.getJSON(ctx, keyTraffic, &t) {
		return DefaultTrafficTime
	}
	switch t {
	case "morning", "noon", "night":
		return t
	}
	return DefaultTrafficTime
}

// SetTrafficTime stores the traffic time-of-day preference.
func (s *Store) SetTrafficTime(ctx context.Context, t string) error {
	return s.setJSON(ctx, keyTraffic, t)
}

// OnboardingDone reports whether the user completed onboarding.
// Default: false.
func (s *Store) OnboardingDone(ctx context.Context) bool {
	var done bool
	if !s.getJSON(ctx, keyTour, &done) {
		return false
	}
	return done
}

// SetOnboardingDone records onboarding completion.
func (s *Store) SetOnboardingDone(ctx context.Context, done bool) error {
	return s.setJSON(ctx, keyTour, done)
}
