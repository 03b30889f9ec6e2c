// Package adogrid finds the grid point nearest to a query vector.
//
// Adaptive design optimization keeps its candidate designs and parameters on
// a discrete grid. Whenever an observed design or response has to be mapped
// back onto that grid, the caller needs the index of the closest grid row.
// adogrid provides that search as a small, allocation-free primitive.
//
// # Quick Start
//
//	idx, err := adogrid.FindNearestIndex(
//	    []float64{0.4, 2.1},
//	    [][]float64{{0, 2}, {0.5, 2}, {1, 2}},
//	) // idx == 1
//
// # Semantics
//
//   - Distance is the squared Euclidean distance, accumulated in the element
//     type of the inputs (float32, float64 or int64).
//   - Ties go to the lowest row index.
//   - A row at distance zero ends the scan immediately.
//   - Shape problems are reported before anything is computed:
//     ErrEmptyQuery, ErrEmptyGrid and *ErrDimensionMismatch.
//
// # Dynamic Inputs
//
// FindNearestIndexAny accepts untyped arguments and rejects mixed element
// types with *ErrRepresentationMismatch:
//
//	_, err := adogrid.FindNearestIndexAny([]float64{0}, [][]int64{{0}})
//
// # Finder
//
// Finder adds structured logging, metrics, row filters backed by roaring
// bitmaps, and a parallel scan for very large grids. The parallel scan
// reduces per-chunk results in row order, so it returns exactly the index a
// sequential scan would:
//
//	f := adogrid.NewFinder[float64](
//	    adogrid.WithParallelism(0), // GOMAXPROCS workers
//	    adogrid.WithMetricsCollector(&adogrid.BasicMetricsCollector{}),
//	)
//	idx, err := f.FindMatrix(ctx, query, m)
package adogrid
