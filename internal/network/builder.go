// Package network owns the in-memory route graph: airports keyed by
// identifier, their adjacency, and the public code index.
package network

import (
	"log/slog"

	"github.com/vanshika/airroute/internal/dataset"
	"github.com/vanshika/airroute/internal/domain"
)

// Mode controls how a directed route record is wired into adjacency.
type Mode int

const (
	// Undirected treats every route as flyable in both directions, so a single
	// record lists each endpoint as a neighbour of the other.
	Undirected Mode = iota
	// Directed only lists the destination as a neighbour of the source.
	Directed
)

func (m Mode) String() string {
	if m == Directed {
		return "directed"
	}
	return "undirected"
}

// Option customises a Builder.
type Option func(*Builder)

// WithMode selects directed or undirected adjacency.
func WithMode(mode Mode) Option {
	return func(b *Builder) {
		b.mode = mode
	}
}

// Builder accumulates routes and airports during the construction phase.
// Routes must be added before the airports they touch: an airport takes a
// copy of the neighbours known when it is inserted.
type Builder struct {
	logger    *slog.Logger
	mode      Mode
	routes    []domain.Route
	neighbors map[int][]int
	airports  map[int]*domain.Airport
	codes     map[string]int
}

// NewBuilder returns an empty Builder. A nil logger discards output.
func NewBuilder(logger *slog.Logger, opts ...Option) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b := &Builder{
		logger:    logger,
		neighbors: make(map[int][]int),
		airports:  make(map[int]*domain.Airport),
		codes:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRoutes records routes and folds them into the neighbour multimap.
func (b *Builder) AddRoutes(routes ...domain.Route) {
	for _, r := range routes {
		b.routes = append(b.routes, r)
		b.neighbors[r.SourceID] = append(b.neighbors[r.SourceID], r.DestinationID)
		if b.mode == Undirected {
			rev := r.Reverse()
			b.neighbors[rev.SourceID] = append(b.neighbors[rev.SourceID], rev.DestinationID)
		}
	}
}

// AddAirport inserts an airport with the neighbours accumulated so far.
// Duplicate identifiers or codes are logged and the later record wins.
func (b *Builder) AddAirport(a domain.Airport) {
	a.Neighbors = append([]int(nil), b.neighbors[a.ID]...)

	if prev, exists := b.airports[a.ID]; exists {
		b.logger.Warn("duplicate airport id", "id", a.ID, "previous", prev.Name, "name", a.Name)
	}
	b.airports[a.ID] = &a

	if prev, exists := b.codes[a.Code]; exists {
		b.logger.Warn("duplicate airport code", "code", a.Code, "previous_id", prev, "id", a.ID)
	}
	b.codes[a.Code] = a.ID
}

// Seal ends construction and returns the read-only network. The builder
// must not be used afterwards.
func (b *Builder) Seal() *Network {
	n := &Network{
		mode:     b.mode,
		airports: b.airports,
		codes:    b.codes,
		routes:   b.routes,
	}
	b.airports = nil
	b.codes = nil
	b.neighbors = nil
	b.routes = nil
	return n
}

// Build constructs a sealed network from loaded records, routes first.
func Build(logger *slog.Logger, airports []dataset.AirportRecord, routes []dataset.RouteRecord, opts ...Option) *Network {
	b := NewBuilder(logger, opts...)
	for _, r := range routes {
		b.AddRoutes(domain.Route{SourceID: r.SourceID, DestinationID: r.DestinationID})
	}
	for _, rec := range airports {
		b.AddAirport(domain.Airport{
			ID:        rec.ID,
			Name:      rec.Name,
			City:      rec.City,
			Country:   rec.Country,
			IATA:      rec.IATA,
			Code:      rec.Code,
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
		})
	}
	n := b.Seal()
	b.logger.Info("route network built", "airports", n.Len(), "routes", n.RouteCount(), "mode", n.Mode().String())
	return n
}
