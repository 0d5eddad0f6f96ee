package domain

// Route is a directed connection between two airport identifiers as it
// appears in the routes dataset.
type Route struct {
	SourceID      int
	DestinationID int
}

// Reverse returns the route flown in the opposite direction.
func (r Route) Reverse() Route {
	return Route{SourceID: r.DestinationID, DestinationID: r.SourceID}
}
