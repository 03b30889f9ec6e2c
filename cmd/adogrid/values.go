package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/adogrid/distance"
)

// parseValues converts decimal strings to T, rejecting values that do not fit.
func parseValues[T distance.Number](raw []string) ([]T, error) {
	out := make([]T, len(raw))
	for i, s := range raw {
		v, err := parseValue[T](strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseValue[T distance.Number](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return zero, fmt.Errorf("invalid float32 %q", s)
		}
		return T(f), nil
	case float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return zero, fmt.Errorf("invalid float64 %q", s)
		}
		return T(f), nil
	default:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("invalid int64 %q", s)
		}
		return T(n), nil
	}
}

func formatRow[T distance.Number](axes []string, row []T) string {
	parts := make([]string, len(row))
	for i, v := range row {
		if i < len(axes) {
			parts[i] = fmt.Sprintf("%s=%v", axes[i], v)
		} else {
			parts[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(parts, " ")
}
