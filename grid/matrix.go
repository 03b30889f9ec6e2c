package grid

import (
	"fmt"
	"iter"

	"github.com/hupe1980/adogrid/distance"
)

// Matrix is an immutable-by-convention N x D matrix stored row-major.
type Matrix[T distance.Number] struct {
	data []T
	rows int
	dim  int
}

// New wraps data as a rows x dim matrix without copying.
// len(data) must equal rows*dim.
func New[T distance.Number](data []T, rows, dim int) (*Matrix[T], error) {
	if rows < 0 || dim <= 0 {
		return nil, fmt.Errorf("%w: rows=%d dim=%d", ErrInvalidShape, rows, dim)
	}
	if len(data) != rows*dim {
		return nil, fmt.Errorf("%w: len(data)=%d, want %d", ErrInvalidShape, len(data), rows*dim)
	}
	return &Matrix[T]{data: data, rows: rows, dim: dim}, nil
}

// FromRows copies rows into a new contiguous matrix.
// Every row must have the same, non-zero length.
func FromRows[T distance.Number](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidShape)
	}
	dim := len(rows[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: rows are empty", ErrInvalidShape)
	}

	data := make([]T, 0, len(rows)*dim)
	for i, r := range rows {
		if len(r) != dim {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, i, len(r), dim)
		}
		data = append(data, r...)
	}
	return &Matrix[T]{data: data, rows: len(rows), dim: dim}, nil
}

// Len returns the number of rows.
func (m *Matrix[T]) Len() int { return m.rows }

// Dim returns the row width.
func (m *Matrix[T]) Dim() int { return m.dim }

// Data returns the backing slice. Callers must not modify it.
func (m *Matrix[T]) Data() []T { return m.data }

// Row returns row i as a subslice of the backing array.
func (m *Matrix[T]) Row(i int) []T {
	off := i * m.dim
	return m.data[off : off+m.dim : off+m.dim]
}

// All iterates over (index, row) pairs in row order.
func (m *Matrix[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := range m.rows {
			if !yield(i, m.Row(i)) {
				return
			}
		}
	}
}

// ToRows returns a copy of the matrix as one slice per row.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	for i, r := range m.All() {
		out[i] = append([]T(nil), r...)
	}
	return out
}
