package distance

import "fmt"

// Number is the set of element types a query and a grid may share.
// Exactly one of them is used per call; mixing is rejected by the callers.
type Number interface {
	float32 | float64 | int64
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
// The sum is accumulated in T; nothing is promoted to a wider type.
func SquaredL2[T Number](a, b []T) T {
	var sum T
	b = b[:len(a)]
	for i := range a {
		diff := b[i] - a[i]
		sum += diff * diff
	}
	return sum
}

// IsNaN reports whether v is a floating-point NaN. It is always false for int64.
func IsNaN[T Number](v T) bool {
	return v != v
}

// Representation identifies one of the supported element types.
type Representation int

const (
	// Unknown marks a type outside of Number.
	Unknown Representation = iota
	Float32
	Float64
	Int64
)

func (r Representation) String() string {
	switch r {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// ParseRepresentation maps a dtype name ("float32", "float64", "int64") to a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch s {
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	case "int64":
		return Int64, nil
	default:
		return Unknown, fmt.Errorf("unsupported representation: %q", s)
	}
}

// RepresentationOf returns the Representation of T.
func RepresentationOf[T Number]() Representation {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int64:
		return Int64
	default:
		return Unknown
	}
}
