// Package repository writes the sealed route network to a graph database
// and reads simple summaries back from it.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vanshika/airroute/internal/domain"
	"github.com/vanshika/airroute/internal/graph"
)

const (
	defaultBatchSize = 500
	defaultWorkers   = 4
)

// Repository encapsulates graph persistence operations.
type Repository struct {
	client    graph.Client
	logger    *slog.Logger
	batchSize int
	workers   int
}

// Option customises a Repository.
type Option func(*Repository)

// WithBatchSize sets how many rows go into one UNWIND statement.
func WithBatchSize(n int) Option {
	return func(r *Repository) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

// WithWorkers bounds the number of concurrent airport batches.
func WithWorkers(n int) Option {
	return func(r *Repository) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger attaches a logger for export progress.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client, opts ...Option) *Repository {
	r := &Repository{
		client:    client,
		logger:    slog.New(slog.DiscardHandler),
		batchSize: defaultBatchSize,
		workers:   defaultWorkers,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ExportSummary reports how much of the network was written.
type ExportSummary struct {
	Airports       int
	Routes         int
	AirportBatches int
	RouteBatches   int
}

// EnsureSchema creates the uniqueness constraint MERGE relies on.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if err := r.client.WriteBatch(ctx, []graph.Statement{{Cypher: airportConstraintCypher}}); err != nil {
		return fmt.Errorf("ensure airport constraint: %w", err)
	}
	return nil
}

// ExportNetwork upserts every airport and then every route. Airport
// batches run concurrently; route batches run in order so relationship
// writes do not contend for the same node locks. Routes whose endpoints are
// missing from the graph are skipped by the MATCH.
func (r *Repository) ExportNetwork(ctx context.Context, airports []*domain.Airport, routes []domain.Route) (ExportSummary, error) {
	var summary ExportSummary

	airportRows := make([]map[string]any, 0, len(airports))
	for _, a := range airports {
		if a == nil {
			continue
		}
		airportRows = append(airportRows, airportParams(*a))
	}
	airportChunks := chunk(airportRows, r.batchSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, rows := range airportChunks {
		g.Go(func() error {
			stmt := graph.Statement{Cypher: upsertAirportsCypher, Params: map[string]any{"rows": rows}}
			if err := r.client.WriteBatch(gctx, []graph.Statement{stmt}); err != nil {
				return &BatchError{Kind: "airports", Index: i, Size: len(rows), Err: err}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}
	summary.Airports = len(airportRows)
	summary.AirportBatches = len(airportChunks)
	r.logger.Info("airports exported", "count", summary.Airports, "batches", summary.AirportBatches)

	routeRows := make([]map[string]any, 0, len(routes))
	for _, rt := range routes {
		routeRows = append(routeRows, map[string]any{
			"sourceId":      rt.SourceID,
			"destinationId": rt.DestinationID,
		})
	}
	for i, rows := range chunk(routeRows, r.batchSize) {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		stmt := graph.Statement{Cypher: upsertRoutesCypher, Params: map[string]any{"rows": rows}}
		if err := r.client.WriteBatch(ctx, []graph.Statement{stmt}); err != nil {
			return summary, &BatchError{Kind: "routes", Index: i, Size: len(rows), Err: err}
		}
		summary.Routes += len(rows)
		summary.RouteBatches++
	}
	r.logger.Info("routes exported", "count", summary.Routes, "batches", summary.RouteBatches)

	return summary, nil
}

// BatchError identifies the batch that failed during export.
type BatchError struct {
	Kind  string
	Index int
	Size  int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("export %s batch %d (%d rows): %v", e.Kind, e.Index, e.Size, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// ShortestHops asks the graph for a minimum-hop path between two codes,
// traversing ROUTE relationships in either direction. It returns the codes
// along the path, or nil when none exists.
func (r *Repository) ShortestHops(ctx context.Context, sourceCode, destinationCode string, maxHops int) ([]string, error) {
	sourceCode = strings.TrimSpace(sourceCode)
	destinationCode = strings.TrimSpace(destinationCode)
	if sourceCode == "" || destinationCode == "" {
		return nil, errors.New("source and destination codes are required")
	}
	if maxHops <= 0 {
		maxHops = 8
	}

	query := fmt.Sprintf(shortestHopsCypherTemplate, maxHops)
	res, err := r.client.Read(ctx, graph.Statement{
		Cypher: query,
		Params: map[string]any{"source": sourceCode, "destination": destinationCode},
	})
	if err != nil {
		return nil, fmt.Errorf("shortest hops query: %w", err)
	}
	if len(res.Records) == 0 {
		return nil, nil
	}

	raw, ok := res.Records[0]["codes"].([]any)
	if !ok {
		return nil, nil
	}
	codes := make([]string, 0, len(raw))
	for _, c := range raw {
		if s := toString(c); s != "" {
			codes = append(codes, s)
		}
	}
	return codes, nil
}

// CountAirports returns the number of airport nodes in the graph.
func (r *Repository) CountAirports(ctx context.Context) (int64, error) {
	res, err := r.client.Read(ctx, graph.Statement{Cypher: countAirportsCypher})
	if err != nil {
		return 0, fmt.Errorf("count airports query: %w", err)
	}
	if len(res.Records) == 0 {
		return 0, nil
	}
	return toInt64(res.Records[0]["total"]), nil
}

func airportParams(a domain.Airport) map[string]any {
	return map[string]any{
		"airportId": a.ID,
		"props": map[string]any{
			"code":      a.Code,
			"iata":      a.IATA,
			"name":      a.Name,
			"city":      a.City,
			"country":   a.Country,
			"latitude":  a.Latitude,
			"longitude": a.Longitude,
		},
	}
}

func chunk(rows []map[string]any, size int) [][]map[string]any {
	if size <= 0 {
		size = defaultBatchSize
	}
	var out [][]map[string]any
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		out = append(out, rows[start:end])
	}
	return out
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func toInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

const airportConstraintCypher = `
CREATE CONSTRAINT airport_id IF NOT EXISTS
FOR (a:Airport) REQUIRE a.airportId IS UNIQUE
`

const upsertAirportsCypher = `
UNWIND $rows AS row
MERGE (a:Airport {airportId: row.airportId})
SET a += row.props
`

const upsertRoutesCypher = `
UNWIND $rows AS row
MATCH (src:Airport {airportId: row.sourceId})
MATCH (dst:Airport {airportId: row.destinationId})
MERGE (src)-[:ROUTE]->(dst)
`

const shortestHopsCypherTemplate = `
MATCH (source:Airport {code: $source}), (target:Airport {code: $destination})
MATCH path = shortestPath((source)-[:ROUTE*..%d]-(target))
RETURN [n IN nodes(path) | n.code] AS codes, length(path) AS hops
`

const countAirportsCypher = `
MATCH (a:Airport)
RETURN count(a) AS total
`
