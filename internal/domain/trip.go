package domain

// Kind of a trip stop.
type StopKind string

const (
	StopStore    StopKind = "store"
	StopHospital StopKind = "hospital"
	StopCustom   StopKind = "custom"
)

// A user-chosen waypoint for a multi-stop trip. Transient session data.
type TripStop struct {
	Kind  StopKind
	Name  string
	Coord Coordinates
}

// The planned multi-stop trip: the ordered waypoints that were requested and
// the drivable path returned by the routing service. The visit order is fixed
// (user, custom stops, nearest store, nearest hospital, home); no reordering
// optimization is attempted.
type Trip struct {
	Waypoints []Coordinates
	Path      []Coordinates
}
