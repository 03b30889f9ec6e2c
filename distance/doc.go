// Package distance provides the numeric element types and the squared
// Euclidean kernel used by the nearest-grid-index search.
//
// # Supported Representations
//
//   - Float32: single precision, accumulates at single precision
//   - Float64: double precision
//   - Int64: 64-bit signed integers, overflow is not guarded
//
// # Usage
//
//	d := distance.SquaredL2([]float64{0, 0}, []float64{3, 4}) // 25
//	r := distance.RepresentationOf[float32]()                // Float32
package distance
