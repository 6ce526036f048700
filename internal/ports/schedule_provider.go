package ports

import "petnourish-service/internal/domain"

// Port: source of business hours for a place. The default implementation
// derives synthetic hours from the place key; a real hours dataset can be
// swapped in without touching status evaluation.
type ScheduleProvider interface {
	// ScheduleFor returns the open/close hours for a place key.
	// The result is deterministic for a given key within a session.
	ScheduleFor(key string) domain.Schedule
}
