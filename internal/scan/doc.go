// Package scan implements the linear nearest-row scans shared by the public
// entry points. Inputs are assumed validated: every row is as wide as the
// query and the grid is non-empty.
package scan
