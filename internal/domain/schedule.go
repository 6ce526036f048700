package domain

// Synthetic open/close hours for a place, derived once per session.
// Open is always within [7,9] and Close within [19,22], so schedules never
// span midnight.
type Schedule struct {
	Open  float64
	Close float64
}

// Open/closed classification of a place at a point in time.
// Rank sorts places by urgency: 0 open, 1 closing soon, 2 closed.
type OpenStatus struct {
	State  string
	Detail string
	Rank   int
}

const (
	StateOpen        = "Open"
	StateClosingSoon = "Closing soon"
	StateClosed      = "Closed"
)
