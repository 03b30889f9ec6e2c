package gridfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/adogrid/codec"
	"github.com/hupe1980/adogrid/distance"
	"github.com/hupe1980/adogrid/grid"
)

// CompressionType defines the stream compression of a grid file.
type CompressionType uint8

const (
	// CompressionNone indicates a plain file.
	CompressionNone CompressionType = iota
	// CompressionZSTD indicates a zstd stream (".zst").
	CompressionZSTD
	// CompressionLZ4 indicates an lz4 frame stream (".lz4").
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZSTD:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// Format describes how a file name maps to a codec and compression.
type Format struct {
	Codec       codec.Codec
	Compression CompressionType
}

// FormatOf resolves the format from a path such as "grid.yaml.zst".
func FormatOf(path string) (Format, error) {
	var f Format

	base := path
	switch strings.ToLower(filepath.Ext(base)) {
	case ".zst":
		f.Compression = CompressionZSTD
		base = strings.TrimSuffix(base, filepath.Ext(base))
	case ".lz4":
		f.Compression = CompressionLZ4
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	c, ok := codec.ByExtension(base)
	if !ok {
		return Format{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	f.Codec = c
	return f, nil
}

// Open reads and decodes the grid file at path.
func Open(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	data, err := readAll(fh, format.Compression)
	if err != nil {
		return nil, fmt.Errorf("gridfile: read %s: %w", path, err)
	}
	return Decode(format.Codec, data)
}

// Save encodes m and writes it to path, creating or truncating the file.
func Save[T distance.Number](path string, axes []string, m *grid.Matrix[T]) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := Encode(format.Codec, axes, m)
	if err != nil {
		return err
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	return writeAll(fh, format.Compression, data)
}

func readAll(r io.Reader, compression CompressionType) ([]byte, error) {
	switch compression {
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return io.ReadAll(dec)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(r))
	default:
		return io.ReadAll(r)
	}
}

func writeAll(w io.Writer, compression CompressionType, data []byte) error {
	var zw io.WriteCloser
	switch compression {
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		zw = enc
	case CompressionLZ4:
		zw = lz4.NewWriter(w)
	default:
		_, err := w.Write(data)
		return err
	}

	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}
