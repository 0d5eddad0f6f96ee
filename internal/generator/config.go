package generator

// Config drives the synthetic route dataset generator.
type Config struct {
	NumAirports int
	NumRoutes   int
	// HubShare is the fraction of airports that act as hubs.
	HubShare float64
	// HubRouteChance is the chance a route touches a hub.
	HubRouteChance float64
	// UnresolvedChance is the chance a route endpoint is written as NA.
	UnresolvedChance float64
	Seed             int64
}

// DefaultConfig returns settings roughly the shape of the OpenFlights data.
func DefaultConfig() Config {
	return Config{
		NumAirports:      2000,
		NumRoutes:        15000,
		HubShare:         0.05,
		HubRouteChance:   0.6,
		UnresolvedChance: 0.01,
		Seed:             42,
	}
}
