package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vanshika/airroute/internal/config"
	"github.com/vanshika/airroute/internal/graph"
	"github.com/vanshika/airroute/internal/logging"
	"github.com/vanshika/airroute/internal/network"
	"github.com/vanshika/airroute/internal/observability"
	"github.com/vanshika/airroute/internal/server"
	"github.com/vanshika/airroute/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	mode := network.Undirected
	if cfg.Routing.Directed {
		mode = network.Directed
	}
	net, err := network.LoadFiles(logger.With("component", "network"), cfg.Dataset.AirportsPath, cfg.Dataset.RoutesPath, network.WithMode(mode))
	if err != nil {
		logger.Warn("serving a degraded network", "airports", net.Len(), "routes", net.RouteCount())
	}

	var (
		opts           []service.Option
		metricsHandler http.Handler
	)
	if cfg.HTTP.MetricsEnabled {
		collector, err := observability.NewLookupCollector(nil)
		if err != nil {
			logger.Error("failed to register metrics", "error", err)
			os.Exit(1)
		}
		collector.SetNetworkCounts(net.Len(), net.RouteCount())
		opts = append(opts, service.WithMetrics(collector))
		metricsHandler = collector.Handler()
	}

	graphClient := buildGraphClient(ctx, logger, cfg)
	defer func() {
		if graphClient != nil {
			if err := graphClient.Close(context.Background()); err != nil {
				logger.Warn("closing graph client failed", "error", err)
			}
		}
	}()

	flightService := service.NewFlightService(net, logger.With("component", "lookup"), opts...)
	router := server.NewRouter(logger, server.RouterDependencies{
		Health: server.HealthChecks{
			server.NetworkHealthService{Network: net},
			server.GraphHealthService{Client: graphClient},
		},
		API:              server.NewAPIHandlers(logger, flightService),
		Metrics:          metricsHandler,
		AllowedOrigins:   server.SplitOrigins(cfg.HTTP.AllowedOriginsCSV),
		AllowCredentials: true,
	})

	srv := server.New(logger, cfg.HTTP, router)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
}

// buildGraphClient connects to the optional export target so /healthz can
// report on it. Lookups never depend on it.
func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) graph.Client {
	if !cfg.Graph.Enabled() {
		return nil
	}
	client, err := graph.NewNeo4jClient(ctx, graph.OptionsFromConfig(cfg.Graph))
	if err != nil {
		logger.Warn("graph client unavailable", "error", err)
		return nil
	}
	return client
}
