package main

import (
	"fmt"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/spf13/cobra"

	"github.com/hupe1980/adogrid"
	"github.com/hupe1980/adogrid/distance"
	"github.com/hupe1980/adogrid/gridfile"
	"github.com/hupe1980/adogrid/internal/conv"
)

func runNearest(cmd *cobra.Command, args []string) error {
	gridPath, _ := cmd.Flags().GetString("grid")
	query, _ := cmd.Flags().GetStringSlice("query")
	allow, _ := cmd.Flags().GetIntSlice("allow")
	workers, _ := cmd.Flags().GetInt("workers")
	threshold, _ := cmd.Flags().GetInt("parallel-threshold")
	logLevel, _ := cmd.Flags().GetString("log-level")
	showRow, _ := cmd.Flags().GetBool("show-row")

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	opts := []adogrid.Option{
		adogrid.WithLogLevel(level),
		adogrid.WithParallelism(workers),
	}
	if threshold > 0 {
		opts = append(opts, adogrid.WithParallelThreshold(threshold))
	}

	var allowed *roaring.Bitmap
	if cmd.Flags().Changed("allow") {
		ids, err := conv.RowIDs(allow)
		if err != nil {
			return fmt.Errorf("allow: %w", err)
		}
		allowed = roaring.BitmapOf(ids...)
	}

	f, err := gridfile.Open(gridPath)
	if err != nil {
		return err
	}

	req := nearestRequest{query: query, allowed: allowed, showRow: showRow, opts: opts}
	switch f.DType {
	case distance.Float32:
		return nearest[float32](cmd, f, req)
	case distance.Float64:
		return nearest[float64](cmd, f, req)
	case distance.Int64:
		return nearest[int64](cmd, f, req)
	default:
		return fmt.Errorf("%w: %s", gridfile.ErrUnknownDType, f.DType)
	}
}

type nearestRequest struct {
	query   []string
	allowed *roaring.Bitmap
	showRow bool
	opts    []adogrid.Option
}

func nearest[T distance.Number](cmd *cobra.Command, f *gridfile.File, req nearestRequest) error {
	m, err := gridfile.Matrix[T](f)
	if err != nil {
		return err
	}
	q, err := parseValues[T](req.query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}

	finder := adogrid.NewFinder[T](req.opts...)

	var idx int
	if req.allowed != nil {
		idx, err = finder.FindAllowed(cmd.Context(), q, m, req.allowed)
	} else {
		idx, err = finder.FindMatrix(cmd.Context(), q, m)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if req.showRow {
		fmt.Fprintln(out, idx, formatRow(f.Axes, m.Row(idx)))
		return nil
	}
	fmt.Fprintln(out, idx)
	return nil
}
