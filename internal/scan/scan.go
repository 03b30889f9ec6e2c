package scan

import (
	"iter"

	"github.com/hupe1980/adogrid/distance"
)

// Result is the best row found in a scanned range.
type Result[T distance.Number] struct {
	Index int
	Dist  T
	Valid bool
}

// Exact reports whether the result is an exact match.
func (r Result[T]) Exact() bool {
	return r.Valid && r.Dist == 0
}

// Better reports whether a row at distance d replaces best.
// Only a strictly smaller distance wins, so the earliest row keeps ties.
// A NaN distance loses to any number.
func Better[T distance.Number](d T, best Result[T]) bool {
	if !best.Valid {
		return true
	}
	if d < best.Dist {
		return true
	}
	return distance.IsNaN(best.Dist) && !distance.IsNaN(d)
}

// Rows scans rows[lo:hi] and returns on the first exact match.
func Rows[T distance.Number](query []T, rows [][]T, lo, hi int) Result[T] {
	var best Result[T]
	for i := lo; i < hi; i++ {
		d := distance.SquaredL2(query, rows[i])
		if Better(d, best) {
			best = Result[T]{Index: i, Dist: d, Valid: true}
			if d == 0 {
				return best
			}
		}
	}
	return best
}

// Flat scans rows lo..hi of a row-major slice with stride len(query).
func Flat[T distance.Number](query, data []T, lo, hi int) Result[T] {
	dim := len(query)
	var best Result[T]
	for i := lo; i < hi; i++ {
		off := i * dim
		d := distance.SquaredL2(query, data[off:off+dim])
		if Better(d, best) {
			best = Result[T]{Index: i, Dist: d, Valid: true}
			if d == 0 {
				return best
			}
		}
	}
	return best
}

// Subset scans only the row indices yielded by ids, which must be ascending
// and within the bounds of data.
func Subset[T distance.Number](query, data []T, ids iter.Seq[int]) Result[T] {
	dim := len(query)
	var best Result[T]
	for i := range ids {
		off := i * dim
		d := distance.SquaredL2(query, data[off:off+dim])
		if Better(d, best) {
			best = Result[T]{Index: i, Dist: d, Valid: true}
			if d == 0 {
				return best
			}
		}
	}
	return best
}
