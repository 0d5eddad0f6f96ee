package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vanshika/airroute/internal/dataset"
)

// MaxAirports is the size of the three-letter IATA code space. Every
// generated airport needs a distinct code, so larger requests cannot succeed.
const MaxAirports = 26 * 26 * 26

// ErrCodeSpaceExhausted is returned when more airports are requested than
// there are distinct IATA codes.
var ErrCodeSpaceExhausted = errors.New("generator: airport count exceeds IATA code space")

// Route is a generated route row. Unresolved endpoints are written as NA.
type Route struct {
	SourceID              int
	DestinationID         int
	SourceUnresolved      bool
	DestinationUnresolved bool
}

// Dataset contains the generated airports and routes.
type Dataset struct {
	Airports []dataset.AirportRecord
	Routes   []Route
}

// Generator produces synthetic airports and routes in the OpenFlights layout.
type Generator struct {
	cfg       Config
	rand      *rand.Rand
	fragments nameFragments
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.NumAirports <= 0 {
		cfg.NumAirports = def.NumAirports
	}
	if cfg.NumRoutes < 0 {
		cfg.NumRoutes = def.NumRoutes
	}
	if cfg.HubShare <= 0 {
		cfg.HubShare = def.HubShare
	}
	if cfg.HubShare > 1 {
		cfg.HubShare = 1
	}
	if cfg.HubRouteChance <= 0 {
		cfg.HubRouteChance = def.HubRouteChance
	}
	if cfg.UnresolvedChance < 0 {
		cfg.UnresolvedChance = 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:       cfg,
		rand:      rand.New(rand.NewSource(cfg.Seed)),
		fragments: defaultNameFragments(),
	}
}

// Generate synthesises airports and routes. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	if g.cfg.NumAirports > MaxAirports {
		return Dataset{}, fmt.Errorf("%w: requested %d, at most %d", ErrCodeSpaceExhausted, g.cfg.NumAirports, MaxAirports)
	}

	airports := make([]dataset.AirportRecord, g.cfg.NumAirports)
	usedCodes := make(map[string]struct{}, g.cfg.NumAirports)

	for i := range airports {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		city := g.pick(g.fragments.cities)
		airports[i] = dataset.AirportRecord{
			ID:        i + 1,
			Name:      fmt.Sprintf("%s %s", city, g.pick(g.fragments.suffixes)),
			City:      city,
			Country:   g.pick(g.fragments.countries),
			IATA:      g.uniqueCode(usedCodes, 3),
			Code:      g.uniqueCode(usedCodes, 4),
			Latitude:  round6(-60 + g.rand.Float64()*130),
			Longitude: round6(-180 + g.rand.Float64()*360),
		}
	}

	hubs := min(len(airports), max(1, int(float64(len(airports))*g.cfg.HubShare)))
	routes := make([]Route, 0, g.cfg.NumRoutes)
	for len(routes) < g.cfg.NumRoutes {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		if len(airports) < 2 {
			break
		}

		src := g.rand.Intn(len(airports))
		var dst int
		if g.rand.Float64() < g.cfg.HubRouteChance {
			dst = g.rand.Intn(hubs)
		} else {
			dst = g.rand.Intn(len(airports))
		}
		if src == dst {
			continue
		}

		routes = append(routes, Route{
			SourceID:              airports[src].ID,
			DestinationID:         airports[dst].ID,
			SourceUnresolved:      g.rand.Float64() < g.cfg.UnresolvedChance,
			DestinationUnresolved: g.rand.Float64() < g.cfg.UnresolvedChance,
		})
	}

	return Dataset{Airports: airports, Routes: routes}, nil
}

func (g *Generator) pick(values []string) string {
	return values[g.rand.Intn(len(values))]
}

// uniqueCode returns an upper-case code not yet present in used. Four-letter
// codes get an ICAO-like region prefix.
func (g *Generator) uniqueCode(used map[string]struct{}, length int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for {
		var b strings.Builder
		if length == 4 {
			b.WriteByte(g.pick(g.fragments.regions)[0])
		}
		for b.Len() < length {
			b.WriteByte(letters[g.rand.Intn(len(letters))])
		}
		code := b.String()
		if _, taken := used[code]; taken {
			continue
		}
		used[code] = struct{}{}
		return code
	}
}

func round6(v float64) float64 {
	return float64(int64(v*1e6)) / 1e6
}

type nameFragments struct {
	cities    []string
	countries []string
	suffixes  []string
	regions   []string
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		cities:    []string{"Springfield", "Riverton", "Lakeside", "Hillcrest", "Fairview", "Kingsport", "Westfield", "Northgate", "Port Alder", "Bayview", "Elmstead", "Greystone"},
		countries: []string{"United States", "Canada", "United Kingdom", "India", "Qatar", "Brazil", "Japan", "Australia", "Kenya", "Germany"},
		suffixes:  []string{"International Airport", "Regional Airport", "Airfield", "Municipal Airport"},
		regions:   []string{"K", "C", "E", "V", "O", "S", "R", "Y", "H", "L"},
	}
}
