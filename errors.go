package adogrid

import (
	"errors"
	"fmt"

	"github.com/hupe1980/adogrid/distance"
)

var (
	// ErrEmptyGrid is returned when the grid has no rows. No index is valid then.
	ErrEmptyGrid = errors.New("grid has no rows")

	// ErrEmptyQuery is returned when the query has no elements.
	ErrEmptyQuery = errors.New("query has no elements")

	// ErrNoEligibleRows is returned when a row filter selects no row of the grid.
	ErrNoEligibleRows = errors.New("row filter selects no grid rows")
)

// ErrDimensionMismatch indicates a grid row whose width differs from the query length.
// Row is -1 when the grid is a Matrix, whose rows all share one width.
type ErrDimensionMismatch struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch at row %d: expected %d, got %d", e.Row, e.Expected, e.Actual)
}

// ErrRepresentationMismatch indicates a query and grid with different element types.
type ErrRepresentationMismatch struct {
	Query distance.Representation
	Grid  distance.Representation
}

func (e *ErrRepresentationMismatch) Error() string {
	return fmt.Sprintf("representation mismatch: query is %s, grid is %s", e.Query, e.Grid)
}

// ErrUnsupportedRepresentation indicates an argument whose type is not one of
// the supported vector or grid types.
type ErrUnsupportedRepresentation struct {
	Arg  string
	Type string
}

func (e *ErrUnsupportedRepresentation) Error() string {
	return fmt.Sprintf("unsupported %s type: %s", e.Arg, e.Type)
}
