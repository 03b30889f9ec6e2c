// Package main provides the adogrid CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "adogrid",
		Short:         "Nearest grid point search for adaptive design grids",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "adogrid v%s (%s)\n", version, commit)
		},
	})

	nearestCmd := &cobra.Command{
		Use:   "nearest",
		Short: "Print the index of the grid row nearest to a query",
		RunE:  runNearest,
	}
	nearestCmd.Flags().String("grid", "", "Grid file (.json, .yaml, .yml, optionally .zst or .lz4)")
	nearestCmd.Flags().StringSlice("query", nil, "Query values, comma separated")
	nearestCmd.Flags().IntSlice("allow", nil, "Restrict the search to these row indices")
	nearestCmd.Flags().Int("workers", 1, "Parallel scan workers (0 = all CPUs)")
	nearestCmd.Flags().Int("parallel-threshold", 0, "Min rows before scanning in parallel (0 = library default)")
	nearestCmd.Flags().String("log-level", "warn", "Log level: debug, info, warn, error")
	nearestCmd.Flags().Bool("show-row", false, "Also print the values of the nearest row")
	_ = nearestCmd.MarkFlagRequired("grid")
	_ = nearestCmd.MarkFlagRequired("query")
	rootCmd.AddCommand(nearestCmd)

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Write the Cartesian grid of the given axes",
		Example: `  adogrid build --axis stimulus=0.1,0.2,0.4 --axis delay=1,2,4,8 --out designs.yaml
  adogrid build --axis x=-2,-1,0,1,2 --dtype int64 --out grid.json.zst`,
		RunE: runBuild,
	}
	buildCmd.Flags().StringArray("axis", nil, "Axis as name=v1,v2,... (repeatable, first axis varies slowest)")
	buildCmd.Flags().String("dtype", "float64", "Element type: float32, float64, int64")
	buildCmd.Flags().String("out", "", "Output file (.json, .yaml, .yml, optionally .zst or .lz4)")
	_ = buildCmd.MarkFlagRequired("axis")
	_ = buildCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(buildCmd)

	return rootCmd
}
