package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// LookupMany resolves pairs concurrently against the sealed network. Results
// keep the order of pairs. The first internal error cancels the batch.
func (s *FlightService) LookupMany(ctx context.Context, pairs []Pair, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = defaultWorkers
	}
	results := make([]Result, len(pairs))
	if len(pairs) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, pair := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := s.Lookup(gctx, pair.Source, pair.Destination)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
