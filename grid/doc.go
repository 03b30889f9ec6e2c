// Package grid provides the dense row-major matrix that holds a candidate
// grid, plus helpers to build one.
//
// A Matrix stores N rows of D values in one contiguous slice:
//
//	m, _ := grid.FromRows([][]float64{{0, 0}, {1, 1}})
//	m.Row(1) // []float64{1, 1}
//
// Cartesian builds every combination of per-axis values, first axis varying
// slowest:
//
//	m, _ := grid.Cartesian([][]float64{{0, 1}, {10, 20}})
//	// rows: {0,10} {0,20} {1,10} {1,20}
package grid
