package scan

import (
	"context"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/adogrid/distance"
)

// chunksPerWorker oversplits the rows so a worker that hits an exact match
// early does not leave the others holding one huge chunk.
const chunksPerWorker = 4

// RangeFunc scans rows [lo, hi).
type RangeFunc[T distance.Number] func(lo, hi int) Result[T]

// Parallel splits [0, n) into chunks scanned by at most workers goroutines
// and reduces the chunk results in index order.
//
// Chunks that start after a known exact match are skipped. The reduction
// uses Better, so the returned row is the one a sequential scan would return.
func Parallel[T distance.Number](ctx context.Context, n, workers int, scanFn RangeFunc[T]) (Result[T], error) {
	if err := ctx.Err(); err != nil {
		return Result[T]{}, err
	}
	if n <= 0 {
		return Result[T]{}, nil
	}
	if workers < 1 {
		workers = 1
	}

	chunks := workers * chunksPerWorker
	if chunks > n {
		chunks = n
	}
	size := (n + chunks - 1) / chunks
	chunks = (n + size - 1) / size

	results := make([]Result[T], chunks)

	var exactAt atomic.Int64
	exactAt.Store(math.MaxInt64)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for c := range chunks {
		lo := c * size
		hi := min(lo+size, n)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if exactAt.Load() < int64(lo) {
				return nil
			}

			r := scanFn(lo, hi)
			results[c] = r

			if r.Exact() {
				for {
					cur := exactAt.Load()
					if int64(r.Index) >= cur || exactAt.CompareAndSwap(cur, int64(r.Index)) {
						break
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result[T]{}, err
	}

	var best Result[T]
	for _, r := range results {
		if r.Valid && Better(r.Dist, best) {
			best = r
		}
	}
	return best, nil
}
