package grid

import (
	"fmt"

	"github.com/hupe1980/adogrid/distance"
)

// Cartesian returns the matrix of every combination of axis values.
// Row order follows nested loops with the first axis outermost, so the
// last axis varies fastest. Each axis becomes one column.
func Cartesian[T distance.Number](axes [][]T) (*Matrix[T], error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: no axes", ErrInvalidShape)
	}

	rows := 1
	for i, a := range axes {
		if len(a) == 0 {
			return nil, fmt.Errorf("%w: axis %d", ErrEmptyAxis, i)
		}
		rows *= len(a)
	}

	dim := len(axes)
	data := make([]T, rows*dim)
	idx := make([]int, dim) // odometer over axis positions

	for r := range rows {
		row := data[r*dim : (r+1)*dim]
		for d, a := range axes {
			row[d] = a[idx[d]]
		}
		for d := dim - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < len(axes[d]) {
				break
			}
			idx[d] = 0
		}
	}

	return &Matrix[T]{data: data, rows: rows, dim: dim}, nil
}

// IntSource is satisfied by *math/rand.Rand and *testutil.RNG.
type IntSource interface {
	Intn(n int) int
}

// RandomIndex picks a uniformly random row index of m.
func RandomIndex[T distance.Number](src IntSource, m *Matrix[T]) (int, error) {
	if m == nil || m.Len() == 0 {
		return 0, fmt.Errorf("%w: no rows", ErrInvalidShape)
	}
	return src.Intn(m.Len()), nil
}
