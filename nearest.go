package adogrid

import (
	"fmt"

	"github.com/hupe1980/adogrid/distance"
	"github.com/hupe1980/adogrid/grid"
	"github.com/hupe1980/adogrid/internal/scan"
)

// FindNearestIndex returns the index of the grid row with the smallest
// squared Euclidean distance to query.
//
// Ties go to the lowest index. A row at distance zero ends the scan.
// Distances are accumulated in T, so float32 inputs round at single precision
// and int64 inputs may overflow on extreme magnitudes.
//
// Every row must be as long as query; the first row that is not is reported
// as *ErrDimensionMismatch before anything is computed.
func FindNearestIndex[T distance.Number](query []T, rows [][]T) (int, error) {
	if err := validateRows(query, rows); err != nil {
		return 0, err
	}
	return scan.Rows(query, rows, 0, len(rows)).Index, nil
}

// FindNearestIndexMatrix is FindNearestIndex over a dense matrix.
func FindNearestIndexMatrix[T distance.Number](query []T, m *grid.Matrix[T]) (int, error) {
	if err := validateMatrix(query, m); err != nil {
		return 0, err
	}
	return scan.Flat(query, m.Data(), 0, m.Len()).Index, nil
}

// FindNearestIndexAny accepts a query of type []float32, []float64 or []int64
// and a grid of the matching [][]T or *grid.Matrix[T].
//
// Arguments of different element types yield *ErrRepresentationMismatch;
// anything else yields *ErrUnsupportedRepresentation.
func FindNearestIndexAny(query, rows any) (int, error) {
	qr := representationOf(query)
	if qr == distance.Unknown {
		return 0, &ErrUnsupportedRepresentation{Arg: "query", Type: fmt.Sprintf("%T", query)}
	}
	gr := representationOf(rows)
	if gr == distance.Unknown {
		return 0, &ErrUnsupportedRepresentation{Arg: "grid", Type: fmt.Sprintf("%T", rows)}
	}
	if qr != gr {
		return 0, &ErrRepresentationMismatch{Query: qr, Grid: gr}
	}

	switch q := query.(type) {
	case []float32:
		return findAny(q, rows)
	case []float64:
		return findAny(q, rows)
	case []int64:
		return findAny(q, rows)
	}
	return 0, &ErrUnsupportedRepresentation{Arg: "query", Type: fmt.Sprintf("%T", query)}
}

func findAny[T distance.Number](query []T, rows any) (int, error) {
	switch g := rows.(type) {
	case [][]T:
		return FindNearestIndex(query, g)
	case *grid.Matrix[T]:
		return FindNearestIndexMatrix(query, g)
	}
	return 0, &ErrUnsupportedRepresentation{Arg: "grid", Type: fmt.Sprintf("%T", rows)}
}

func representationOf(v any) distance.Representation {
	switch v.(type) {
	case []float32, [][]float32, *grid.Matrix[float32]:
		return distance.Float32
	case []float64, [][]float64, *grid.Matrix[float64]:
		return distance.Float64
	case []int64, [][]int64, *grid.Matrix[int64]:
		return distance.Int64
	default:
		return distance.Unknown
	}
}

func validateRows[T distance.Number](query []T, rows [][]T) error {
	if len(query) == 0 {
		return ErrEmptyQuery
	}
	if len(rows) == 0 {
		return ErrEmptyGrid
	}
	for i, r := range rows {
		if len(r) != len(query) {
			return &ErrDimensionMismatch{Row: i, Expected: len(query), Actual: len(r)}
		}
	}
	return nil
}

func validateMatrix[T distance.Number](query []T, m *grid.Matrix[T]) error {
	if len(query) == 0 {
		return ErrEmptyQuery
	}
	if m == nil || m.Len() == 0 {
		return ErrEmptyGrid
	}
	if m.Dim() != len(query) {
		return &ErrDimensionMismatch{Row: -1, Expected: len(query), Actual: m.Dim()}
	}
	return nil
}
