package services

import (
	"testing"
	"time"

	"petnourish-service/internal/domain"
)

func TestScheduleForDeterministic(t *testing.T) {
	p := NewSyntheticSchedules()

	keys := []string{
		"Pet Mart (Nguyen Thi Minh Khai)",
		"Paddy Pet Shop (Thao Dien)",
		"h1",
		"City Pet Hospital (Dist 1)",
	}
	for _, k := range keys {
		first := p.ScheduleFor(k)
		second := p.ScheduleFor(k)
		if first != second {
			t.Errorf("schedule for %q not stable: %+v vs %+v", k, first, second)
		}
		if first.Open < 7 || first.Open > 9 {
			t.Errorf("open hour for %q = %v, want within [7,9]", k, first.Open)
		}
		if first.Close < 19 || first.Close > 22 {
			t.Errorf("close hour for %q = %v, want within [19,22]", k, first.Close)
		}
	}
}

func TestScheduleForSeedArithmetic(t *testing.T) {
	// "ab" -> 97+98 = 195; open = 7 + 195%3 = 7, close = 19 + 195%4 = 22.
	got := NewSyntheticSchedules().ScheduleFor("ab")
	want := domain.Schedule{Open: 7, Close: 22}
	if got != want {
		t.Errorf("ScheduleFor(\"ab\") = %+v, want %+v", got, want)
	}
}

func TestEvaluateAtThresholds(t *testing.T) {
	sch := domain.Schedule{Open: 8, Close: 20}

	cases := []struct {
		now    float64
		state  string
		detail string
		rank   int
	}{
		{7.9, domain.StateClosed, "Opens at 8:00", 2},
		{8.0, domain.StateOpen, "Closes at 20:00", 0},
		{12.0, domain.StateOpen, "Closes at 20:00", 0},
		{19.0, domain.StateClosingSoon, "Closes at 20:00", 1},
		{19.5, domain.StateClosingSoon, "Closes at 20:00", 1},
		{20.0, domain.StateClosed, "Closed at 20:00", 2},
		{23.0, domain.StateClosed, "Closed at 20:00", 2},
	}

	for _, c := range cases {
		st := EvaluateAt(sch, c.now)
		if st.State != c.state || st.Detail != c.detail || st.Rank != c.rank {
			t.Errorf("EvaluateAt(%v) = %+v, want state=%q detail=%q rank=%d",
				c.now, st, c.state, c.detail, c.rank)
		}
	}
}

func TestFractionalHour(t *testing.T) {
	at := time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)
	if got := FractionalHour(at); got != 19.5 {
		t.Errorf("FractionalHour(19:30) = %v, want 19.5", got)
	}
}
