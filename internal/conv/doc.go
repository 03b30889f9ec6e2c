// Package conv provides checked conversions between row indices and the
// fixed-width integers used by row bitmaps.
//
// Roaring bitmaps address rows with uint32, while grids and callers use int.
// Indices coming from users (CLI flags, files) go through these helpers;
// indices produced by the library itself are cast directly.
package conv
