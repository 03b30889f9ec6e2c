// Package testutil provides testing utilities for adogrid.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random grids and queries and for
// computing the nearest row by exhaustive search.
//
// # Random Grid Generation
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.UniformRows(1000, 3)     // float64 in [0, 1)
//	ints := rng.IntRows(1000, 3, 10)     // int64 in [-10, 10]
//
// # Exact Search (Ground Truth)
//
//	idx, dist := testutil.BruteForceNearest(query, rows)
package testutil
