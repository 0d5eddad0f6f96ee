package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vanshika/airroute/internal/graph"
	"github.com/vanshika/airroute/internal/network"
	"github.com/vanshika/airroute/internal/repository"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		batchSize int
		workers   int
		verify    []string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the route network into Neo4j (GRAPH_URI)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Graph.Enabled() {
				return graph.ErrMissingURI
			}
			if len(verify) != 0 && len(verify) != 2 {
				return fmt.Errorf("--verify expects SOURCE,DESTINATION")
			}
			if !cmd.Flags().Changed("batch-size") {
				batchSize = a.cfg.Graph.BatchSize
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Routing.Workers
			}

			ctx := cmd.Context()
			logger := a.logger.With("component", "export")
			net := a.loadNetwork()

			client, err := graph.NewNeo4jClient(ctx, graph.OptionsFromConfig(a.cfg.Graph))
			if err != nil {
				return err
			}
			defer func() {
				if err := client.Close(context.Background()); err != nil {
					logger.Warn("closing graph client failed", "error", err)
				}
			}()

			repo := repository.New(client,
				repository.WithBatchSize(batchSize),
				repository.WithWorkers(workers),
				repository.WithLogger(logger),
			)
			return exportNetwork(ctx, repo, net, a.out, logger, verify)
		},
	}
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "rows per UNWIND statement (overrides GRAPH_BATCH_SIZE)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent airport batches (overrides LOOKUP_WORKERS)")
	cmd.Flags().StringSliceVar(&verify, "verify", nil, "SOURCE,DESTINATION pair to query in the graph after export")
	return cmd
}

// exportNetwork writes net into the graph, reports the node count the graph
// holds afterwards and optionally runs a shortest-hops query over the result.
func exportNetwork(ctx context.Context, repo *repository.Repository, net *network.Network, out io.Writer, logger *slog.Logger, verify []string) error {
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	start := time.Now()
	summary, err := repo.ExportNetwork(ctx, net.Airports(), net.Routes())
	if err != nil {
		return err
	}
	logger.Info("export complete", "duration", time.Since(start).String(), "airports", summary.Airports, "routes", summary.Routes)
	fmt.Fprintf(out, "Exported %d airports and %d routes\n", summary.Airports, summary.Routes)

	total, err := repo.CountAirports(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Graph holds %d airports\n", total)
	if total < int64(summary.Airports) {
		logger.Warn("graph holds fewer airports than exported", "graph", total, "exported", summary.Airports)
	}

	if len(verify) == 2 {
		codes, err := repo.ShortestHops(ctx, verify[0], verify[1], 0)
		if err != nil {
			return err
		}
		if codes == nil {
			fmt.Fprintf(out, "No path from %s to %s in graph\n", verify[0], verify[1])
		} else {
			fmt.Fprintf(out, "Graph path: %s (%d hops)\n", strings.Join(codes, " -> "), len(codes)-1)
		}
	}
	return nil
}
