package services

import (
	"fmt"
	"time"

	"petnourish-service/internal/domain"
)

// SyntheticSchedules derives stable open/close hours from a place key.
//
// The seed is the sum of the key's byte values; opening hours land in [7,9]
// and closing hours in [19,22]. This is a stand-in for real business-hours
// data, kept behind the ScheduleProvider port so it can be replaced without
// touching status evaluation.
type SyntheticSchedules struct{}

func NewSyntheticSchedules() *SyntheticSchedules { return &SyntheticSchedules{} }

func (SyntheticSchedules) ScheduleFor(key string) domain.Schedule {
	seed := 0
	for _, r := range key {
		seed += int(r)
	}
	return domain.Schedule{
		Open:  float64(7 + seed%3),
		Close: float64(19 + seed%4),
	}
}

// FractionalHour converts a wall-clock time to a fractional hour of day
// (e.g. 19:30 -> 19.5).
func FractionalHour(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// EvaluateAt classifies a schedule against a fractional hour of day.
//
// Schedules never span midnight (open >= 7, close <= 22), so a plain
// open/close comparison is sufficient.
func EvaluateAt(sch domain.Schedule, now float64) domain.OpenStatus {
	open := int(sch.Open)
	close := int(sch.Close)

	switch {
	case now < sch.Open:
		return domain.OpenStatus{
			State:  domain.StateClosed,
			Detail: fmt.Sprintf("Opens at %d:00", open),
			Rank:   2,
		}
	case now >= sch.Close:
		return domain.OpenStatus{
			State:  domain.StateClosed,
			Detail: fmt.Sprintf("Closed at %d:00", close),
			Rank:   2,
		}
	case sch.Close-now <= 1:
		return domain.OpenStatus{
			State:  domain.StateClosingSoon,
			Detail: fmt.Sprintf("Closes at %d:00", close),
			Rank:   1,
		}
	default:
		return domain.OpenStatus{
			State:  domain.StateOpen,
			Detail: fmt.Sprintf("Closes at %d:00", close),
			Rank:   0,
		}
	}
}
