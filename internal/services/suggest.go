package services

import (
	"context"
	"strings"

	"petnourish-service/internal/prefs"
)

// Always-available destination shortcuts, appended after the user's recent
// destinations.
var quickDestinations = []string{
	"Ben Thanh Market",
	"Saigon Zoo",
	"Landmark 81",
	"Tan Son Nhat Airport",
}

// SuggestionLimit caps the suggestion list.
const SuggestionLimit = 6

// Suggestions merges recent destinations with the quick list, filters by
// case-insensitive substring and de-duplicates, keeping at most
// SuggestionLimit entries. A blank query matches everything.
func Suggestions(ctx context.Context, p *prefs.Store, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))

	all := append(p.RecentDestinations(ctx), quickDestinations...)

	picks := make([]string, 0, SuggestionLimit)
	for _, cand := range all {
		if q != "" && !strings.Contains(strings.ToLower(cand), q) {
			continue
		}
		if containsFold(picks, cand) {
			continue
		}
		picks = append(picks, cand)
		if len(picks) == SuggestionLimit {
			break
		}
	}

	return picks
}

func containsFold(list []string, s string) bool {
	for _, x := range list {
		if strings.EqualFold(x, s) {
			return true
		}
	}
	return false
}
