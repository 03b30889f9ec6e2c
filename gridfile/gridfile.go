// Package gridfile reads and writes grid documents.
//
// A document names its element type and lists its rows:
//
//	dtype: float64
//	axes: [stimulus, delay]
//	rows:
//	  - [0.1, 1]
//	  - [0.1, 2]
//
// The codec follows the file extension (see codec.ByExtension). A trailing
// ".zst" or ".lz4" adds zstd or lz4 stream compression, e.g. "grid.json.zst".
package gridfile

import (
	"errors"
	"fmt"

	"github.com/hupe1980/adogrid/codec"
	"github.com/hupe1980/adogrid/distance"
	"github.com/hupe1980/adogrid/grid"
)

var (
	// ErrUnknownDType is returned for a document whose dtype is missing or unsupported.
	ErrUnknownDType = errors.New("gridfile: unknown dtype")

	// ErrUnknownFormat is returned when no codec matches a file name.
	ErrUnknownFormat = errors.New("gridfile: unknown file format")

	// ErrAxesMismatch is returned when the axis names do not match the row width.
	ErrAxesMismatch = errors.New("gridfile: axes do not match row width")
)

// File is a decoded grid document.
type File struct {
	DType distance.Representation
	Axes  []string

	// Grid holds a *grid.Matrix[float32], *grid.Matrix[float64] or
	// *grid.Matrix[int64] according to DType.
	Grid any
}

// Len returns the number of grid rows.
func (f *File) Len() int {
	switch m := f.Grid.(type) {
	case *grid.Matrix[float32]:
		return m.Len()
	case *grid.Matrix[float64]:
		return m.Len()
	case *grid.Matrix[int64]:
		return m.Len()
	default:
		return 0
	}
}

// Matrix returns the grid of f as a *grid.Matrix[T].
// It fails if T is not the element type of the document.
func Matrix[T distance.Number](f *File) (*grid.Matrix[T], error) {
	m, ok := f.Grid.(*grid.Matrix[T])
	if !ok {
		return nil, fmt.Errorf("gridfile: document is %s, requested %s", f.DType, distance.RepresentationOf[T]())
	}
	return m, nil
}

type header struct {
	DType string   `json:"dtype" yaml:"dtype"`
	Axes  []string `json:"axes,omitempty" yaml:"axes,omitempty"`
}

type document[T distance.Number] struct {
	DType string   `json:"dtype" yaml:"dtype"`
	Axes  []string `json:"axes,omitempty" yaml:"axes,omitempty"`
	Rows  [][]T    `json:"rows" yaml:"rows"`
}

// Encode serializes m with c. axes may be nil; otherwise it must name every column.
func Encode[T distance.Number](c codec.Codec, axes []string, m *grid.Matrix[T]) ([]byte, error) {
	if axes != nil && len(axes) != m.Dim() {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrAxesMismatch, len(axes), m.Dim())
	}
	return c.Marshal(document[T]{
		DType: distance.RepresentationOf[T]().String(),
		Axes:  axes,
		Rows:  m.ToRows(),
	})
}

// Decode parses a document encoded with c.
func Decode(c codec.Codec, data []byte) (*File, error) {
	var h header
	if err := c.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("gridfile: decode header: %w", err)
	}

	dtype, err := distance.ParseRepresentation(h.DType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDType, h.DType)
	}

	var g any
	var dim int
	switch dtype {
	case distance.Float32:
		g, dim, err = decodeRows[float32](c, data)
	case distance.Float64:
		g, dim, err = decodeRows[float64](c, data)
	case distance.Int64:
		g, dim, err = decodeRows[int64](c, data)
	}
	if err != nil {
		return nil, err
	}

	if h.Axes != nil && len(h.Axes) != dim {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrAxesMismatch, len(h.Axes), dim)
	}

	return &File{DType: dtype, Axes: h.Axes, Grid: g}, nil
}

func decodeRows[T distance.Number](c codec.Codec, data []byte) (*grid.Matrix[T], int, error) {
	var doc document[T]
	if err := c.Unmarshal(data, &doc); err != nil {
		return nil, 0, fmt.Errorf("gridfile: decode %s rows: %w", distance.RepresentationOf[T](), err)
	}
	m, err := grid.FromRows(doc.Rows)
	if err != nil {
		return nil, 0, fmt.Errorf("gridfile: %w", err)
	}
	return m, m.Dim(), nil
}
