package server

import (
	"context"
	"errors"

	"github.com/vanshika/airroute/internal/graph"
	"github.com/vanshika/airroute/internal/network"
)

// HealthService defines behaviour for readiness checks.
type HealthService interface {
	Check(ctx context.Context) error
}

// ErrEmptyNetwork reports a network built without any airports.
var ErrEmptyNetwork = errors.New("route network has no airports")

// NetworkHealthService is degraded when the datasets failed to load.
type NetworkHealthService struct {
	Network *network.Network
}

// Check implements the HealthService interface.
func (s NetworkHealthService) Check(context.Context) error {
	if s.Network == nil || s.Network.Len() == 0 {
		return ErrEmptyNetwork
	}
	return nil
}

// GraphHealthService verifies connectivity to the optional export target.
type GraphHealthService struct {
	Client graph.Client
}

// Check implements the HealthService interface.
func (s GraphHealthService) Check(ctx context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.VerifyConnectivity(ctx)
}

// HealthChecks runs every check and joins their failures.
type HealthChecks []HealthService

// Check implements the HealthService interface.
func (c HealthChecks) Check(ctx context.Context) error {
	var errs []error
	for _, check := range c {
		if check == nil {
			continue
		}
		if err := check.Check(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
