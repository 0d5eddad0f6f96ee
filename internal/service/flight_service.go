package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vanshika/airroute/internal/network"
	"github.com/vanshika/airroute/internal/pathfind"
)

// MetricsRecorder receives per-lookup observations.
type MetricsRecorder interface {
	ObserveLookup(outcome string, hops int, duration time.Duration)
}

// PathFinder searches a graph for a minimum-hop path.
type PathFinder func(g pathfind.Graph, sourceID, destinationID int) pathfind.Path

// FlightService resolves airport codes and scores the connecting route.
type FlightService struct {
	network  *network.Network
	logger   *slog.Logger
	metrics  MetricsRecorder
	findPath PathFinder
	nowFn    func() time.Time
}

// Option customises a FlightService.
type Option func(*FlightService)

// WithMetrics attaches a metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(s *FlightService) {
		s.metrics = m
	}
}

// WithPathFinder overrides the search (used primarily in tests).
func WithPathFinder(fn PathFinder) Option {
	return func(s *FlightService) {
		if fn != nil {
			s.findPath = fn
		}
	}
}

// NewFlightService constructs a FlightService over a sealed network.
func NewFlightService(net *network.Network, logger *slog.Logger, opts ...Option) *FlightService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &FlightService{
		network:  net,
		logger:   logger,
		findPath: pathfind.FindPath,
		nowFn:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Network returns the network the service queries.
func (s *FlightService) Network() *network.Network {
	return s.network
}

// Lookup finds a route between two public airport codes. Classified
// failures are reported through Result.Reason; the error is reserved for
// cancellation and internal inconsistencies.
func (s *FlightService) Lookup(ctx context.Context, sourceCode, destinationCode string) (Result, error) {
	start := s.nowFn()
	res, err := s.lookup(ctx, sourceCode, destinationCode)

	if s.metrics != nil {
		outcome := res.Outcome()
		if err != nil {
			outcome = OutcomeError
		}
		s.metrics.ObserveLookup(outcome, res.Path.Hops(), s.nowFn().Sub(start))
	}
	return res, err
}

func (s *FlightService) lookup(ctx context.Context, sourceCode, destinationCode string) (Result, error) {
	res := Result{
		SourceCode:      strings.TrimSpace(sourceCode),
		DestinationCode: strings.TrimSpace(destinationCode),
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	log := s.logger.With("from", res.SourceCode, "to", res.DestinationCode)

	srcID, ok := s.network.Resolve(res.SourceCode)
	if !ok {
		res.Reason = ReasonUnknownSource
		log.Debug("source airport not found")
		return res, nil
	}
	dstID, ok := s.network.Resolve(res.DestinationCode)
	if !ok {
		res.Reason = ReasonUnknownDestination
		log.Debug("destination airport not found")
		return res, nil
	}
	res.Source, _ = s.network.Airport(srcID)
	res.Destination, _ = s.network.Airport(dstID)

	if srcID == dstID {
		res.Reason = ReasonSameAirport
		return res, nil
	}

	res.Path = s.findPath(s.network, srcID, dstID)
	for _, e := range res.Path {
		log.Debug(fmt.Sprintf("ID:%d -> ID:%d", e.ID, e.ParentID))
	}

	distance, err := s.network.PathDistance(res.Path)
	if err != nil {
		return res, fmt.Errorf("score route %s -> %s: %w", res.SourceCode, res.DestinationCode, err)
	}
	if distance == 0 {
		res.Reason = ReasonNoRoute
		log.Debug("no connecting route")
		return res, nil
	}

	res.DistanceKm = distance
	res.OK = true
	log.Debug("route found", "hops", res.Path.Hops(), "distance_km", res.Rounded())
	return res, nil
}
