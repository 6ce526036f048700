package services

import (
	"math/rand"
)

// TrafficProfile describes how the traffic overlay renders for a time of
// day. Purely cosmetic; nothing routes differently because of it.
type TrafficProfile struct {
	Weight   int
	Opacity  float64
	Label    string
	Statuses []string
}

var trafficProfiles = map[string]TrafficProfile{
	"morning": {Weight: 18, Opacity: 0.38, Label: "Morning peak", Statuses: []string{"Medium", "High", "Medium"}},
	"noon":    {Weight: 16, Opacity: 0.34, Label: "Noon flow", Statuses: []string{"Low", "Medium", "Medium"}},
	"night":   {Weight: 14, Opacity: 0.30, Label: "Night fast", Statuses: []string{"Low", "Low", "Medium"}},
}

// ProfileFor returns the profile for a time of day. Unknown values get the
// night profile, matching the original fallthrough.
func ProfileFor(timeOfDay string) TrafficProfile {
	if p, ok := trafficProfiles[timeOfDay]; ok {
		return p
	}
	return trafficProfiles["night"]
}

// TrafficStatus is a synthetic congestion report for display.
type TrafficStatus struct {
	TimeLabel string
	Level     string
	Note      string
}

// TrafficStatusFor picks a random status from the profile's weighted list
// and attaches the matching advisory note.
func TrafficStatusFor(timeOfDay string, rng *rand.Rand) TrafficStatus {
	p := ProfileFor(timeOfDay)
	level := p.Statuses[rng.Intn(len(p.Statuses))]

	var note string
	switch level {
	case "High":
		note = "Heavy congestion likely"
	case "Medium":
		note = "Some congestion expected"
	default:
		note = "Smooth traffic flow"
	}

	return TrafficStatus{TimeLabel: p.Label, Level: level, Note: note}
}
