package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vanshika/airroute/internal/domain"
	"github.com/vanshika/airroute/internal/geo"
	"github.com/vanshika/airroute/internal/pathfind"
)

// ErrUnknownAirport indicates an identifier with no airport in the network.
var ErrUnknownAirport = errors.New("unknown airport")

// Network is the sealed route graph. It is never mutated after Seal, so
// concurrent readers need no locking.
type Network struct {
	mode     Mode
	airports map[int]*domain.Airport
	codes    map[string]int
	routes   []domain.Route
}

// Airport returns the airport with the given id.
func (n *Network) Airport(id int) (*domain.Airport, bool) {
	a, ok := n.airports[id]
	return a, ok
}

// Resolve maps a public airport code to its identifier.
func (n *Network) Resolve(code string) (int, bool) {
	id, ok := n.codes[code]
	return id, ok
}

// Neighbors implements pathfind.Graph.
func (n *Network) Neighbors(id int) ([]int, bool) {
	a, ok := n.airports[id]
	if !ok {
		return nil, false
	}
	return a.Neighbors, true
}

// Len returns the number of airports.
func (n *Network) Len() int {
	return len(n.airports)
}

// RouteCount returns the number of route records folded into the network.
func (n *Network) RouteCount() int {
	return len(n.routes)
}

// Routes returns a copy of the raw route records in load order.
func (n *Network) Routes() []domain.Route {
	return append([]domain.Route(nil), n.routes...)
}

// Mode reports how routes were wired.
func (n *Network) Mode() Mode {
	return n.mode
}

// Airports returns every airport ordered by id.
func (n *Network) Airports() []*domain.Airport {
	res := make([]*domain.Airport, 0, len(n.airports))
	for _, a := range n.airports {
		res = append(res, a)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].ID < res[j].ID
	})
	return res
}

// Distance returns the great-circle distance in kilometres between two
// airports, or geo.Unknown when either id is not in the network.
func (n *Network) Distance(srcID, dstID int) float64 {
	src, ok := n.airports[srcID]
	if !ok {
		return geo.Unknown
	}
	dst, ok := n.airports[dstID]
	if !ok {
		return geo.Unknown
	}
	return geo.Haversine(src.Coordinate(), dst.Coordinate())
}

// PathDistance sums the per-hop great-circle distances along p.
func (n *Network) PathDistance(p pathfind.Path) (float64, error) {
	total := 0.0
	for _, e := range p {
		d := n.Distance(e.ID, e.ParentID)
		if d == geo.Unknown {
			return 0, fmt.Errorf("hop %d -> %d: %w", e.ParentID, e.ID, ErrUnknownAirport)
		}
		total += d
	}
	return total, nil
}
