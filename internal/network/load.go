package network

import (
	"errors"
	"log/slog"

	"github.com/vanshika/airroute/internal/dataset"
)

// LoadFiles reads both datasets and builds a sealed network. A dataset that
// fails to load is logged and contributes whatever rows were parsed before
// the failure, so the returned network is never nil. The joined load errors
// are returned for callers that want to report them.
func LoadFiles(logger *slog.Logger, airportsPath, routesPath string, opts ...Option) (*Network, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var errs []error
	routes, err := dataset.LoadRoutes(routesPath)
	if err != nil {
		logger.Error("failed to load routes dataset", "path", routesPath, "error", err, "rows_kept", len(routes))
		errs = append(errs, err)
	}
	airports, err := dataset.LoadAirports(airportsPath)
	if err != nil {
		logger.Error("failed to load airports dataset", "path", airportsPath, "error", err, "rows_kept", len(airports))
		errs = append(errs, err)
	}

	return Build(logger, airports, routes, opts...), errors.Join(errs...)
}
