package adogrid

import (
	"context"
	"iter"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/adogrid/distance"
	"github.com/hupe1980/adogrid/grid"
	"github.com/hupe1980/adogrid/internal/scan"
)

// Finder runs nearest-index searches over grids of element type T with
// logging, metrics and an optional parallel scan for large grids.
//
// A Finder is immutable after construction and safe for concurrent use.
// Its results are identical to FindNearestIndex for the same inputs.
type Finder[T distance.Number] struct {
	opts options
}

// NewFinder creates a Finder. Without options it scans sequentially and
// neither logs nor records metrics.
func NewFinder[T distance.Number](optFns ...Option) *Finder[T] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Finder[T]{opts: opts}
}

// Find returns the index of the row in rows nearest to query.
func (f *Finder[T]) Find(ctx context.Context, query []T, rows [][]T) (int, error) {
	start := time.Now()

	idx, err := f.find(ctx, len(rows), func() error {
		return validateRows(query, rows)
	}, func(lo, hi int) scan.Result[T] {
		return scan.Rows(query, rows, lo, hi)
	})

	f.record(ctx, len(rows), len(query), idx, start, err)
	return idx, err
}

// FindMatrix returns the index of the row in m nearest to query.
func (f *Finder[T]) FindMatrix(ctx context.Context, query []T, m *grid.Matrix[T]) (int, error) {
	start := time.Now()

	n := 0
	if m != nil {
		n = m.Len()
	}
	idx, err := f.find(ctx, n, func() error {
		return validateMatrix(query, m)
	}, func(lo, hi int) scan.Result[T] {
		return scan.Flat(query, m.Data(), lo, hi)
	})

	f.record(ctx, n, len(query), idx, start, err)
	return idx, err
}

// FindAllowed is FindMatrix restricted to the rows whose index is in allowed.
// Bitmap entries at or beyond m.Len() are ignored. If no row is eligible,
// ErrNoEligibleRows is returned. The scan is always sequential.
func (f *Finder[T]) FindAllowed(ctx context.Context, query []T, m *grid.Matrix[T], allowed *roaring.Bitmap) (int, error) {
	start := time.Now()

	n := 0
	if m != nil {
		n = m.Len()
	}
	idx, err := f.findAllowed(ctx, query, m, allowed)

	f.record(ctx, n, len(query), idx, start, err)
	return idx, err
}

func (f *Finder[T]) findAllowed(ctx context.Context, query []T, m *grid.Matrix[T], allowed *roaring.Bitmap) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := validateMatrix(query, m); err != nil {
		return 0, err
	}
	if allowed == nil || allowed.IsEmpty() {
		return 0, ErrNoEligibleRows
	}

	r := scan.Subset(query, m.Data(), rowsIn(allowed, m.Len()))
	if !r.Valid {
		return 0, ErrNoEligibleRows
	}
	return r.Index, nil
}

// rowsIn yields the bitmap's members below n in ascending order.
func rowsIn(bm *roaring.Bitmap, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		it := bm.Iterator()
		for it.HasNext() {
			v := int(it.Next())
			if v >= n || !yield(v) {
				return
			}
		}
	}
}

func (f *Finder[T]) find(ctx context.Context, n int, validate func() error, scanFn scan.RangeFunc[T]) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := validate(); err != nil {
		return 0, err
	}

	if f.opts.parallelism <= 1 || n < f.opts.parallelThreshold {
		return scanFn(0, n).Index, nil
	}

	r, err := scan.Parallel(ctx, n, f.opts.parallelism, scanFn)
	if err != nil {
		return 0, err
	}
	return r.Index, nil
}

func (f *Finder[T]) record(ctx context.Context, rows, dim, idx int, start time.Time, err error) {
	f.opts.metricsCollector.RecordFind(rows, dim, time.Since(start), err)
	f.opts.logger.LogFind(ctx, rows, dim, idx, err)
}
