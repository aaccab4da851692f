// Package workerpool runs one callback per input item across a bounded
// number of goroutines (spec.md §5: "a bounded worker pool may process
// multiple files in parallel; each worker owns its inputs and outputs —
// there is no shared mutable state between files").
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run calls fn(item) for every item in items, running at most limit
// calls concurrently (limit <= 0 means unbounded). It returns the first
// error any call returned; every other in-flight call still runs to
// completion, matching spec.md §5's "file-level formatting is order-
// independent" — a single file's failure never cancels its siblings'
// work, only the aggregate result.
func Run[T any](ctx context.Context, limit int, items []T, fn func(context.Context, T) error) error {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, item := range items {
		item := item
		g.Go(func() error {
			return fn(ctx, item)
		})
	}

	return g.Wait()
}

// RunCollect is Run's variant for callbacks that each produce a result;
// results[i] corresponds to items[i]. A failing call leaves its slot at
// the zero value of R; the returned error is still the first one seen.
func RunCollect[T any, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := fn(ctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	err := g.Wait()
	return results, err
}
