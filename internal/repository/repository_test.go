package repository

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/airroute/internal/domain"
	"github.com/vanshika/airroute/internal/graph"
)

func sampleAirports(n int) []*domain.Airport {
	out := make([]*domain.Airport, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &domain.Airport{
			ID:        i,
			Name:      "Airport",
			Code:      string(rune('A'+i-1)) + "XXX",
			Latitude:  float64(i),
			Longitude: float64(-i),
		})
	}
	return out
}

func TestRepository_ExportNetwork(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem, WithBatchSize(2), WithWorkers(2))

	airports := sampleAirports(5)
	routes := []domain.Route{{SourceID: 1, DestinationID: 2}, {SourceID: 2, DestinationID: 3}, {SourceID: 4, DestinationID: 5}}

	summary, err := repo.ExportNetwork(context.Background(), airports, routes)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Airports)
	assert.Equal(t, 3, summary.AirportBatches)
	assert.Equal(t, 3, summary.Routes)
	assert.Equal(t, 2, summary.RouteBatches)

	stmts := mem.Statements()
	require.Len(t, stmts, 5)

	var ids []int
	for _, stmt := range stmts[:3] {
		require.Equal(t, upsertAirportsCypher, stmt.Cypher, "airport batches must precede routes")
		rows, ok := stmt.Params["rows"].([]map[string]any)
		require.True(t, ok, "rows param has type %T", stmt.Params["rows"])
		for _, row := range rows {
			ids = append(ids, row["airportId"].(int))
		}
	}
	sort.Ints(ids)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids)

	first := stmts[3]
	require.Equal(t, upsertRoutesCypher, first.Cypher)
	rows := first.Params["rows"].([]map[string]any)
	assert.Equal(t, 1, rows[0]["sourceId"], "routes keep load order")
	assert.Equal(t, 2, rows[0]["destinationId"])
}

func TestRepository_ExportNetworkAirportProps(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	a := &domain.Airport{ID: 3797, Name: "John F Kennedy International Airport", City: "New York", Country: "United States", IATA: "JFK", Code: "KJFK", Latitude: 40.63980103, Longitude: -73.77890015}
	_, err := repo.ExportNetwork(context.Background(), []*domain.Airport{a, nil}, nil)
	require.NoError(t, err)

	stmts := mem.Statements()
	require.Len(t, stmts, 1)
	rows := stmts[0].Params["rows"].([]map[string]any)
	require.Len(t, rows, 1, "nil airports are skipped")

	props := rows[0]["props"].(map[string]any)
	assert.Equal(t, "KJFK", props["code"])
	assert.Equal(t, "JFK", props["iata"])
	assert.Equal(t, 40.63980103, props["latitude"])
}

func TestRepository_ExportNetworkRouteFailure(t *testing.T) {
	boom := errors.New("write failed")
	mem := graph.NewMemoryClient().FailAfter(1, boom)
	repo := New(mem)

	summary, err := repo.ExportNetwork(context.Background(), sampleAirports(2), []domain.Route{{SourceID: 1, DestinationID: 2}})
	require.ErrorIs(t, err, boom)

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, "routes", batchErr.Kind)
	assert.Equal(t, 0, batchErr.Index)
	assert.Equal(t, 2, summary.Airports)
	assert.Zero(t, summary.Routes)
}

func TestRepository_EnsureSchema(t *testing.T) {
	mem := graph.NewMemoryClient()
	require.NoError(t, New(mem).EnsureSchema(context.Background()))

	stmts := mem.Statements()
	require.Len(t, stmts, 1)
	assert.Equal(t, airportConstraintCypher, stmts[0].Cypher)
}

func TestRepository_ShortestHops(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.PushReadResult(graph.Result{Records: []graph.Record{
		{"codes": []any{"KBOS", "EGLL", "OTHH"}, "hops": int64(2)},
	}})
	repo := New(mem)

	codes, err := repo.ShortestHops(context.Background(), " KBOS ", "OTHH", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"KBOS", "EGLL", "OTHH"}, codes)

	reads := mem.Reads()
	require.Len(t, reads, 1)
	assert.Equal(t, "KBOS", reads[0].Params["source"], "source is trimmed")
}

func TestRepository_ShortestHopsNoPath(t *testing.T) {
	repo := New(graph.NewMemoryClient())

	codes, err := repo.ShortestHops(context.Background(), "KBOS", "YSSY", 4)
	require.NoError(t, err)
	assert.Nil(t, codes)

	_, err = repo.ShortestHops(context.Background(), "", "YSSY", 4)
	assert.Error(t, err, "empty source")
}

func TestRepository_CountAirports(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.PushReadResult(graph.Result{Records: []graph.Record{{"total": int64(7698)}}})

	total, err := New(mem).CountAirports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7698), total)

	empty, err := New(graph.NewMemoryClient()).CountAirports(context.Background())
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestRepository_CountAirportsError(t *testing.T) {
	boom := errors.New("graph unavailable")

	_, err := New(graph.NewMemoryClient().WithError(boom)).CountAirports(context.Background())
	assert.ErrorIs(t, err, boom)
}
