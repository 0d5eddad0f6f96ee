// Package observability exposes Prometheus metrics for route lookups and the
// loaded network.
package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "airroute"

// LookupCollector bundles the lookup and network metrics. It satisfies
// service.MetricsRecorder.
type LookupCollector struct {
	gatherer prometheus.Gatherer

	Lookups         *prometheus.CounterVec
	LookupDurations prometheus.Histogram
	PathHops        prometheus.Histogram

	NetworkAirports prometheus.Gauge
	NetworkRoutes   prometheus.Gauge
}

// NewLookupCollector registers the metrics against reg, defaulting to the
// global Prometheus registry when nil.
func NewLookupCollector(reg prometheus.Registerer) (*LookupCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	lookups, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of route lookups, labeled by outcome.",
	}, []string{"outcome"}), "lookups_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lookup_duration_seconds",
		Help:      "Route lookup latency in seconds.",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5, 1},
	}), "lookup_duration_seconds")
	if err != nil {
		return nil, err
	}

	hops, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "path_hops",
		Help:      "Number of legs in successful routes.",
		Buckets:   prometheus.LinearBuckets(1, 1, 8),
	}), "path_hops")
	if err != nil {
		return nil, err
	}

	airports, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "network_airports",
		Help:      "Number of airports in the loaded network.",
	}), "network_airports")
	if err != nil {
		return nil, err
	}
	routes, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "network_routes",
		Help:      "Number of route records in the loaded network.",
	}), "network_routes")
	if err != nil {
		return nil, err
	}

	return &LookupCollector{
		gatherer:        gatherer,
		Lookups:         lookups,
		LookupDurations: durations,
		PathHops:        hops,
		NetworkAirports: airports,
		NetworkRoutes:   routes,
	}, nil
}

// ObserveLookup records one lookup. Hops are only observed for successes.
func (c *LookupCollector) ObserveLookup(outcome string, hops int, duration time.Duration) {
	if c == nil {
		return
	}
	c.Lookups.WithLabelValues(outcome).Inc()
	c.LookupDurations.Observe(duration.Seconds())
	if outcome == "success" {
		c.PathHops.Observe(float64(hops))
	}
}

// SetNetworkCounts publishes the size of the loaded network.
func (c *LookupCollector) SetNetworkCounts(airports, routes int) {
	if c == nil {
		return
	}
	c.NetworkAirports.Set(float64(airports))
	c.NetworkRoutes.Set(float64(routes))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *LookupCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
