// Package codec centralizes grid document encoding.
//
// Grid files carry no codec header; the codec is chosen from the file
// extension, so renaming a file changes how it is decoded.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "yaml":
		return YAML{}, true
	default:
		return nil, false
	}
}

// ByExtension returns the codec for a file name such as "grid.yaml".
// ".json" maps to Default, ".yaml" and ".yml" to YAML. Matching is
// case-insensitive.
func ByExtension(path string) (Codec, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return Default, true
	case ".yaml", ".yml":
		return YAML{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
