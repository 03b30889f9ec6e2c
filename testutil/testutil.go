package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformRows generates num rows of dim float64 values in [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformRows(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	rows := make([][]float64, num)
	for i := range num {
		row := data[i*dim : (i+1)*dim]
		for j := range row {
			row[j] = r.rand.Float64()
		}
		rows[i] = row
	}
	return rows
}

// UniformRows32 generates num rows of dim float32 values in [-1, 1).
func (r *RNG) UniformRows32(num, dim int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	rows := make([][]float32, num)
	for i := range num {
		row := data[i*dim : (i+1)*dim]
		for j := range row {
			row[j] = r.rand.Float32()*2 - 1
		}
		rows[i] = row
	}
	return rows
}

// IntRows generates num rows of dim int64 values in [-limit, limit].
// Small limits produce many duplicate rows and distance ties.
func (r *RNG) IntRows(num, dim int, limit int64) [][]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]int64, num*dim)
	rows := make([][]int64, num)
	for i := range num {
		row := data[i*dim : (i+1)*dim]
		for j := range row {
			row[j] = r.rand.Int63n(2*limit+1) - limit
		}
		rows[i] = row
	}
	return rows
}

// BruteForceNearest returns the first row with the smallest squared distance
// to query and that distance, computed in float64 over every row and column
// without early exit. It returns -1 for an empty grid.
//
// It is a reference for tests and does not share code with the library.
func BruteForceNearest[T float32 | float64 | int64](query []T, rows [][]T) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	for i, row := range rows {
		var sum float64
		for j := range query {
			d := float64(row[j]) - float64(query[j])
			sum += d * d
		}
		if best == -1 || sum < bestDist {
			best, bestDist = i, sum
		}
	}
	return best, bestDist
}

// SquaredDistance returns the squared distance between a and b in float64.
func SquaredDistance[T float32 | float64 | int64](a, b []T) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
