package services

import (
	"math/rand"
	"testing"
)

func TestProfileFor(t *testing.T) {
	if p := ProfileFor("morning"); p.Label != "Morning peak" || p.Weight != 18 {
		t.Errorf("morning profile = %+v", p)
	}
	if p := ProfileFor("rush hour"); p.Label != "Night fast" {
		t.Errorf("unknown time should fall back to night, got %+v", p)
	}
}

func TestTrafficStatusForNoteMatchesLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		s := TrafficStatusFor("morning", rng)

		var want string
		switch s.Level {
		case "High":
			want = "Heavy congestion likely"
		case "Medium":
			want = "Some congestion expected"
		case "Low":
			want = "Smooth traffic flow"
		default:
			t.Fatalf("unexpected level %q", s.Level)
		}
		if s.Note != want {
			t.Errorf("level %q note = %q, want %q", s.Level, s.Note, want)
		}
		if s.TimeLabel != "Morning peak" {
			t.Errorf("time label = %q", s.TimeLabel)
		}
	}
}
