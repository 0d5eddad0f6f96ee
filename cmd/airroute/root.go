package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vanshika/airroute/internal/config"
	"github.com/vanshika/airroute/internal/logging"
	"github.com/vanshika/airroute/internal/network"
	"github.com/vanshika/airroute/internal/service"
)

// app carries state shared by every subcommand once the root pre-run has
// resolved configuration.
type app struct {
	in     io.Reader
	out    io.Writer
	cfg    config.Config
	logger *slog.Logger

	airportsPath string
	routesPath   string
	directed     bool
	logLevel     string
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out}

	root := &cobra.Command{
		Use:           "airroute",
		Short:         "Find minimum-hop flight routes between airports",
		Long:          "airroute loads the airports and routes datasets, builds a route network\nand reports the great-circle distance flown along the fewest-leg path.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.airportsPath, "airports", "", "path to the airports CSV (overrides AIRPORTS_PATH)")
	flags.StringVar(&a.routesPath, "routes", "", "path to the routes CSV (overrides ROUTES_PATH)")
	flags.BoolVar(&a.directed, "directed", false, "only follow routes in their listed direction")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newLookupCmd(a),
		newSmokeCmd(a),
		newReplCmd(a),
		newBatchCmd(a),
		newExportCmd(a),
		newGenerateCmd(),
	)
	return root
}

func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("airports") {
		cfg.Dataset.AirportsPath = a.airportsPath
	}
	if flags.Changed("routes") {
		cfg.Dataset.RoutesPath = a.routesPath
	}
	if flags.Changed("directed") {
		cfg.Routing.Directed = a.directed
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.Logging)
	return nil
}

// loadNetwork builds the network from the configured datasets. Load
// failures are logged and the command continues with what was read.
func (a *app) loadNetwork() *network.Network {
	mode := network.Undirected
	if a.cfg.Routing.Directed {
		mode = network.Directed
	}
	net, _ := network.LoadFiles(
		a.logger.With("component", "network"),
		a.cfg.Dataset.AirportsPath,
		a.cfg.Dataset.RoutesPath,
		network.WithMode(mode),
	)
	return net
}

func (a *app) flightService() *service.FlightService {
	return service.NewFlightService(a.loadNetwork(), a.logger.With("component", "lookup"))
}
