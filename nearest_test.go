package adogrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/adogrid/distance"
	"github.com/hupe1980/adogrid/grid"
	"github.com/hupe1980/adogrid/testutil"
)

func TestFindNearestIndex(t *testing.T) {
	t.Run("KnownExample", func(t *testing.T) {
		idx, err := FindNearestIndex([]float64{0, 0}, [][]float64{{0, 0}, {1, 1}, {2, 2}})
		require.NoError(t, err)
		assert.Equal(t, 0, idx)

		// distances 50, 0, 8
		idx, err = FindNearestIndex([]float64{0, 0}, [][]float64{{5, 5}, {1, 1}, {2, 2}})
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})

	t.Run("SingleRow", func(t *testing.T) {
		for _, q := range [][]float32{{0, 0, 0}, {-9, 4, 1e6}, {1, 2, 3}} {
			idx, err := FindNearestIndex(q, [][]float32{{1, 2, 3}})
			require.NoError(t, err)
			assert.Equal(t, 0, idx)
		}
	})

	t.Run("TieBreakLowestIndex", func(t *testing.T) {
		idx, err := FindNearestIndex([]float64{0}, [][]float64{{1}, {-1}})
		require.NoError(t, err)
		assert.Equal(t, 0, idx)

		idx, err = FindNearestIndex([]int64{0, 0}, [][]int64{{3, 3}, {1, -1}, {-1, 1}, {1, 1}})
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})

	t.Run("FirstExactMatch", func(t *testing.T) {
		rows := [][]int64{{9, 9}, {4, 2}, {1, 1}, {4, 2}, {4, 2}}
		idx, err := FindNearestIndex([]int64{4, 2}, rows)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})

	t.Run("NegativeValues", func(t *testing.T) {
		idx, err := FindNearestIndex([]float64{-3, -3}, [][]float64{{0, 0}, {-2, -4}, {3, 3}})
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})

	t.Run("NaN", func(t *testing.T) {
		nan := math.NaN()

		idx, err := FindNearestIndex([]float64{0}, [][]float64{{nan}, {5}, {2}})
		require.NoError(t, err)
		assert.Equal(t, 2, idx)

		idx, err = FindNearestIndex([]float64{nan}, [][]float64{{1}, {2}})
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	})
}

func TestFindNearestIndexValidation(t *testing.T) {
	t.Run("ShapeMismatch", func(t *testing.T) {
		idx, err := FindNearestIndex([]float64{1, 2, 3}, [][]float64{{1, 2}, {3, 4}})
		require.Error(t, err)
		assert.Equal(t, 0, idx)

		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 0, dm.Row)
		assert.Equal(t, 3, dm.Expected)
		assert.Equal(t, 2, dm.Actual)
		assert.Equal(t, "dimension mismatch at row 0: expected 3, got 2", err.Error())
	})

	t.Run("RaggedRow", func(t *testing.T) {
		_, err := FindNearestIndex([]int64{0, 0}, [][]int64{{0, 0}, {1, 1}, {2}})

		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Row)
		assert.Equal(t, 1, dm.Actual)
	})

	t.Run("RaggedRowAfterExactMatch", func(t *testing.T) {
		// Validation runs before the scan, so an early exact match does not hide a bad row.
		_, err := FindNearestIndex([]float32{0}, [][]float32{{0}, {1, 2}})

		var dm *ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("EmptyGrid", func(t *testing.T) {
		_, err := FindNearestIndex([]float64{1}, nil)
		assert.ErrorIs(t, err, ErrEmptyGrid)

		_, err = FindNearestIndex([]float64{1}, [][]float64{})
		assert.ErrorIs(t, err, ErrEmptyGrid)
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		_, err := FindNearestIndex([]float64{}, [][]float64{{}})
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})
}

func TestFindNearestIndexMatrix(t *testing.T) {
	m, err := grid.FromRows([][]float64{{5, 5}, {1, 1}, {2, 2}})
	require.NoError(t, err)

	idx, err := FindNearestIndexMatrix([]float64{0, 0}, m)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = FindNearestIndexMatrix([]float64{0}, m)
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, -1, dm.Row)
	assert.Equal(t, "dimension mismatch: expected 1, got 2", err.Error())

	empty, err := grid.New([]float64{}, 0, 2)
	require.NoError(t, err)
	_, err = FindNearestIndexMatrix([]float64{0, 0}, empty)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = FindNearestIndexMatrix[float64]([]float64{0, 0}, nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestFindNearestIndexAny(t *testing.T) {
	t.Run("EachRepresentation", func(t *testing.T) {
		idx, err := FindNearestIndexAny([]float32{0, 0}, [][]float32{{5, 5}, {1, 1}})
		require.NoError(t, err)
		assert.Equal(t, 1, idx)

		idx, err = FindNearestIndexAny([]float64{0, 0}, [][]float64{{5, 5}, {1, 1}})
		require.NoError(t, err)
		assert.Equal(t, 1, idx)

		idx, err = FindNearestIndexAny([]int64{0, 0}, [][]int64{{5, 5}, {1, 1}})
		require.NoError(t, err)
		assert.Equal(t, 1, idx)

		m, err := grid.FromRows([][]int64{{5, 5}, {1, 1}})
		require.NoError(t, err)
		idx, err = FindNearestIndexAny([]int64{4, 4}, m)
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	})

	t.Run("RepresentationMismatch", func(t *testing.T) {
		_, err := FindNearestIndexAny([]float64{0}, [][]int64{{0}})

		var rm *ErrRepresentationMismatch
		require.ErrorAs(t, err, &rm)
		assert.Equal(t, distance.Float64, rm.Query)
		assert.Equal(t, distance.Int64, rm.Grid)
		assert.Equal(t, "representation mismatch: query is float64, grid is int64", err.Error())

		_, err = FindNearestIndexAny([]float32{0}, [][]float64{{0}})
		assert.ErrorAs(t, err, &rm)
	})

	t.Run("Unsupported", func(t *testing.T) {
		var ur *ErrUnsupportedRepresentation

		_, err := FindNearestIndexAny([]int32{0}, [][]int32{{0}})
		require.ErrorAs(t, err, &ur)
		assert.Equal(t, "query", ur.Arg)
		assert.Equal(t, "[]int32", ur.Type)

		_, err = FindNearestIndexAny([]float64{0}, []float64{0})
		require.ErrorAs(t, err, &ur)
		assert.Equal(t, "grid", ur.Arg)

		_, err = FindNearestIndexAny(nil, nil)
		assert.ErrorAs(t, err, &ur)
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		_, err := FindNearestIndexAny([]float64{0, 0, 0}, [][]float64{{0, 0}})
		var dm *ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})
}

func TestFindNearestIndexProperty(t *testing.T) {
	rng := testutil.NewRNG(42)

	t.Run("Float64", func(t *testing.T) {
		for range 200 {
			n, dim := 1+rng.Intn(64), 1+rng.Intn(6)
			rows := rng.UniformRows(n, dim)
			query := rng.UniformRows(1, dim)[0]

			idx, err := FindNearestIndex(query, rows)
			require.NoError(t, err)

			got := testutil.SquaredDistance(query, rows[idx])
			for j, row := range rows {
				assert.LessOrEqual(t, got, testutil.SquaredDistance(query, row), "row %d", j)
			}
		}
	})

	t.Run("Float32", func(t *testing.T) {
		for range 200 {
			n, dim := 1+rng.Intn(64), 1+rng.Intn(6)
			rows := rng.UniformRows32(n, dim)
			query := rng.UniformRows32(1, dim)[0]

			idx, err := FindNearestIndex(query, rows)
			require.NoError(t, err)

			// float32 accumulation may order near-ties differently from float64.
			got := testutil.SquaredDistance(query, rows[idx])
			for j, row := range rows {
				assert.LessOrEqual(t, got, testutil.SquaredDistance(query, row)+1e-5, "row %d", j)
			}
		}
	})

	t.Run("Int64MatchesReference", func(t *testing.T) {
		for range 200 {
			n, dim := 1+rng.Intn(64), 1+rng.Intn(4)
			rows := rng.IntRows(n, dim, 3)
			query := rng.IntRows(1, dim, 3)[0]

			idx, err := FindNearestIndex(query, rows)
			require.NoError(t, err)

			want, _ := testutil.BruteForceNearest(query, rows)
			assert.Equal(t, want, idx)
		}
	})
}

func TestRepresentationConsistency(t *testing.T) {
	rng := testutil.NewRNG(7)

	for range 100 {
		n, dim := 1+rng.Intn(50), 1+rng.Intn(5)
		ints := rng.IntRows(n, dim, 1000)
		q := rng.IntRows(1, dim, 1000)[0]

		floats := make([][]float64, n)
		for i, row := range ints {
			floats[i] = toFloat64(row)
		}

		a, err := FindNearestIndex(q, ints)
		require.NoError(t, err)
		b, err := FindNearestIndex(toFloat64(q), floats)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	}
}

func toFloat64(v []int64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func BenchmarkFindNearestIndex(b *testing.B) {
	rng := testutil.NewRNG(1)
	rows := rng.UniformRows(10000, 4)
	query := rng.UniformRows(1, 4)[0]

	b.ResetTimer()
	for b.Loop() {
		_, _ = FindNearestIndex(query, rows)
	}
}
