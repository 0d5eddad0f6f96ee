package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vanshika/airroute/internal/generator"
)

func newGenerateCmd() *cobra.Command {
	cfg := generator.DefaultConfig()
	var outputDir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic airports.csv and routes.csv",
		Args:  cobra.NoArgs,
		// Generation needs no datasets or environment configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.HubShare = clampProbability(cfg.HubShare)
			cfg.HubRouteChance = clampProbability(cfg.HubRouteChance)
			cfg.UnresolvedChance = clampProbability(cfg.UnresolvedChance)

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			ds, err := generator.New(cfg).Generate(ctx)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}
			if err := generator.WriteDataset(ds, outputDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d airports and %d routes into %s\n", len(ds.Airports), len(ds.Routes), outputDir)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.NumAirports, "airports-count", cfg.NumAirports, "number of airports to generate")
	flags.IntVar(&cfg.NumRoutes, "routes-count", cfg.NumRoutes, "number of routes to generate")
	flags.Float64Var(&cfg.HubShare, "hub-share", cfg.HubShare, "fraction of airports acting as hubs")
	flags.Float64Var(&cfg.HubRouteChance, "hub-route-chance", cfg.HubRouteChance, "probability a route lands on a hub")
	flags.Float64Var(&cfg.UnresolvedChance, "na-chance", cfg.UnresolvedChance, "probability a route endpoint is written as NA")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for deterministic generation")
	flags.StringVar(&outputDir, "output-dir", "datasets", "directory to write airports.csv and routes.csv")
	return cmd
}

func clampProbability(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
