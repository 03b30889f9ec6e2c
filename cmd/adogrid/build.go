package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/adogrid/distance"
	"github.com/hupe1980/adogrid/grid"
	"github.com/hupe1980/adogrid/gridfile"
)

func runBuild(cmd *cobra.Command, args []string) error {
	axisFlags, _ := cmd.Flags().GetStringArray("axis")
	dtypeName, _ := cmd.Flags().GetString("dtype")
	out, _ := cmd.Flags().GetString("out")

	dtype, err := distance.ParseRepresentation(dtypeName)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(axisFlags))
	values := make([][]string, 0, len(axisFlags))
	for _, a := range axisFlags {
		name, vals, err := parseAxis(a)
		if err != nil {
			return err
		}
		names = append(names, name)
		values = append(values, vals)
	}

	var rows int
	switch dtype {
	case distance.Float32:
		rows, err = build[float32](out, names, values)
	case distance.Float64:
		rows, err = build[float64](out, names, values)
	case distance.Int64:
		rows, err = build[int64](out, names, values)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows x %d axes to %s\n", rows, len(names), out)
	return nil
}

func build[T distance.Number](out string, names []string, values [][]string) (int, error) {
	axes := make([][]T, len(values))
	for i, v := range values {
		parsed, err := parseValues[T](v)
		if err != nil {
			return 0, fmt.Errorf("axis %s: %w", names[i], err)
		}
		axes[i] = parsed
	}

	m, err := grid.Cartesian(axes)
	if err != nil {
		return 0, err
	}
	if err := gridfile.Save(out, names, m); err != nil {
		return 0, err
	}
	return m.Len(), nil
}

// parseAxis splits "name=v1,v2,..." into its name and raw values.
func parseAxis(s string) (string, []string, error) {
	name, list, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("invalid axis %q: want name=v1,v2,...", s)
	}
	if strings.TrimSpace(list) == "" {
		return "", nil, fmt.Errorf("axis %s has no values", name)
	}
	return name, strings.Split(list, ","), nil
}
