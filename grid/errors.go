package grid

import "errors"

var (
	// ErrRaggedRows is returned when rows passed to FromRows differ in length.
	ErrRaggedRows = errors.New("grid: rows have different lengths")

	// ErrEmptyAxis is returned when Cartesian receives an axis without values.
	ErrEmptyAxis = errors.New("grid: axis has no values")

	// ErrInvalidShape is returned for a negative row count, a non-positive
	// dimension, or data whose length is not rows*dim.
	ErrInvalidShape = errors.New("grid: invalid shape")
)
