package kmap

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// A Result is the Karnaugh map of a truth table along with its groupings.
type Result struct {
	Grid   Grid
	Groups []PointGroup
}

// ComputeAll builds the grid and the groupings of each given table.
// Tables are processed concurrently by at most workers goroutines; workers <= 0 means no limit.
// Results are in the same order as tables.
// The first error, or the cancellation of ctx, stops the remaining computations and is returned.
func ComputeAll(ctx context.Context, tables []TruthTable, workers int) ([]Result, error) {
	res := make([]Result, len(tables))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, t := range tables {
		i, t := i, t
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			grid, err := BuildGrid(t)
			if err != nil {
				return err
			}
			res[i] = Result{Grid: grid, Groups: Groupings(grid)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
