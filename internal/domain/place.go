package domain

// Kind of a place on the map.
type PlaceKind string

const (
	KindStore    PlaceKind = "store"
	KindHospital PlaceKind = "hospital"
)

// A store or veterinary hospital with fixed coordinates.
// Places are immutable reference data loaded at startup; stores are keyed by
// name, hospitals by id.
type Place struct {
	Kind  PlaceKind
	Key   string
	Name  string
	Coord Coordinates
}

// SavedEntry marks a place the user bookmarked. Entries referencing a place
// that no longer exists are skipped by readers, not treated as errors.
type SavedEntry struct {
	Kind PlaceKind `json:"type"`
	Key  string    `json:"key"`
}
