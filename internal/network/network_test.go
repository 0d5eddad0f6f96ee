package network

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/airroute/internal/dataset"
	"github.com/vanshika/airroute/internal/domain"
	"github.com/vanshika/airroute/internal/geo"
	"github.com/vanshika/airroute/internal/pathfind"
)

func equatorAirports() []dataset.AirportRecord {
	return []dataset.AirportRecord{
		{ID: 1, Name: "Alpha", Code: "AAA", Latitude: 0, Longitude: 0},
		{ID: 2, Name: "Bravo", Code: "BBB", Latitude: 0, Longitude: 1},
		{ID: 3, Name: "Charlie", Code: "CCC", Latitude: 0, Longitude: 2},
	}
}

func TestBuildUndirectedAdjacency(t *testing.T) {
	n := Build(nil, equatorAirports(), []dataset.RouteRecord{{SourceID: 1, DestinationID: 2}})

	require.Equal(t, 3, n.Len())
	assert.Equal(t, 1, n.RouteCount())

	a, ok := n.Airport(1)
	require.True(t, ok)
	assert.Equal(t, []int{2}, a.Neighbors)

	b, ok := n.Airport(2)
	require.True(t, ok)
	assert.Equal(t, []int{1}, b.Neighbors)

	c, ok := n.Neighbors(3)
	require.True(t, ok)
	assert.Empty(t, c)
}

func TestBuildDirectedAdjacency(t *testing.T) {
	n := Build(nil, equatorAirports(), []dataset.RouteRecord{{SourceID: 1, DestinationID: 2}}, WithMode(Directed))

	assert.Equal(t, Directed, n.Mode())
	src, _ := n.Neighbors(1)
	dst, _ := n.Neighbors(2)
	assert.Equal(t, []int{2}, src)
	assert.Empty(t, dst)
	assert.True(t, pathfind.FindPath(n, 2, 1).Empty())
}

func TestNeighborOrderFollowsRouteOrder(t *testing.T) {
	routes := []dataset.RouteRecord{
		{SourceID: 3, DestinationID: 1},
		{SourceID: 1, DestinationID: 2},
		{SourceID: 1, DestinationID: 1},
		{SourceID: 2, DestinationID: 1},
	}
	n := Build(nil, equatorAirports(), routes)

	neighbors, ok := n.Neighbors(1)
	require.True(t, ok)
	// A self-loop touches the airport from both ends and is listed twice.
	assert.Equal(t, []int{3, 2, 1, 1, 2}, neighbors)
}

func TestRoutesAddedAfterAirportDoNotReachIt(t *testing.T) {
	b := NewBuilder(nil)
	b.AddRoutes(domain.Route{SourceID: 1, DestinationID: 2})
	b.AddAirport(domain.Airport{ID: 1, Code: "AAA"})
	b.AddRoutes(domain.Route{SourceID: 1, DestinationID: 3})
	b.AddAirport(domain.Airport{ID: 3, Code: "CCC"})
	n := b.Seal()

	first, _ := n.Neighbors(1)
	assert.Equal(t, []int{2}, first)
	third, _ := n.Neighbors(3)
	assert.Equal(t, []int{1}, third)
	assert.Equal(t, 2, n.RouteCount())
}

func TestDuplicateIdentityLaterWins(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	airports := []dataset.AirportRecord{
		{ID: 1, Name: "First", Code: "AAA"},
		{ID: 1, Name: "Second", Code: "ZZZ"},
		{ID: 2, Name: "Other", Code: "AAA"},
	}
	n := Build(logger, airports, nil)

	a, ok := n.Airport(1)
	require.True(t, ok)
	assert.Equal(t, "Second", a.Name)

	id, ok := n.Resolve("AAA")
	require.True(t, ok)
	assert.Equal(t, 2, id)

	// The earlier code mapping for the overwritten id is kept.
	id, ok = n.Resolve("ZZZ")
	require.True(t, ok)
	assert.Equal(t, 1, id)

	assert.Contains(t, buf.String(), "duplicate airport id")
	assert.Contains(t, buf.String(), "duplicate airport code")
}

func TestRoutesOnlyNetwork(t *testing.T) {
	n := Build(nil, nil, []dataset.RouteRecord{{SourceID: 1, DestinationID: 2}})

	assert.Equal(t, 0, n.Len())
	_, ok := n.Resolve("AAA")
	assert.False(t, ok)
	assert.True(t, pathfind.FindPath(n, 1, 2).Empty())
}

func TestDistance(t *testing.T) {
	n := Build(nil, equatorAirports(), nil)

	assert.InDelta(t, 111.19, n.Distance(1, 2), 0.01)
	assert.Equal(t, n.Distance(1, 2), n.Distance(2, 1))
	assert.Equal(t, 0.0, n.Distance(1, 1))
	assert.Equal(t, geo.Unknown, n.Distance(1, 99))
	assert.Equal(t, geo.Unknown, n.Distance(99, 1))
}

func TestPathDistanceSumsHops(t *testing.T) {
	routes := []dataset.RouteRecord{{SourceID: 1, DestinationID: 2}, {SourceID: 2, DestinationID: 3}}
	n := Build(nil, equatorAirports(), routes)

	path := pathfind.FindPath(n, 1, 3)
	require.Equal(t, 2, path.Hops())

	total, err := n.PathDistance(path)
	require.NoError(t, err)
	assert.InDelta(t, n.Distance(1, 2)+n.Distance(2, 3), total, 1e-9)
}

func TestPathDistanceUnknownAirport(t *testing.T) {
	n := Build(nil, equatorAirports(), nil)

	_, err := n.PathDistance(pathfind.Path{{ID: 99, ParentID: 1}})
	assert.ErrorIs(t, err, ErrUnknownAirport)
}

func TestAirportsSortedAndRoutesCopied(t *testing.T) {
	records := equatorAirports()
	records[0], records[2] = records[2], records[0]
	n := Build(nil, records, []dataset.RouteRecord{{SourceID: 1, DestinationID: 3}})

	var ids []int
	for _, a := range n.Airports() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)

	routes := n.Routes()
	routes[0].SourceID = 42
	assert.Equal(t, 1, n.Routes()[0].SourceID)
}
