package adogrid

import (
	"log/slog"
	"runtime"
)

// DefaultParallelThreshold is the row count from which a Finder with
// Parallelism > 1 splits the scan across goroutines.
const DefaultParallelThreshold = 1 << 14

type options struct {
	metricsCollector  MetricsCollector
	logger            *Logger
	parallelism       int
	parallelThreshold int
}

func defaultOptions() options {
	return options{
		metricsCollector:  NoopMetricsCollector{},
		logger:            NoopLogger(),
		parallelism:       1,
		parallelThreshold: DefaultParallelThreshold,
	}
}

// Option configures a Finder.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring searches.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &adogrid.BasicMetricsCollector{}
//	f := adogrid.NewFinder[float64](adogrid.WithMetricsCollector(metrics))
//	// ... use f ...
//	stats := metrics.GetStats()
//	fmt.Printf("Finds: %d, Avg latency: %dns\n", stats.FindCount, stats.FindAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for searches.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := adogrid.NewJSONLogger(slog.LevelDebug)
//	f := adogrid.NewFinder[float32](adogrid.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithParallelism sets how many goroutines scan large grids.
// workers <= 0 selects runtime.GOMAXPROCS(0); 1 (the default) scans sequentially.
func WithParallelism(workers int) Option {
	return func(o *options) {
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		o.parallelism = workers
	}
}

// WithParallelThreshold sets the minimum number of rows for a parallel scan.
// Smaller grids are always scanned on the calling goroutine.
func WithParallelThreshold(rows int) Option {
	return func(o *options) {
		if rows < 1 {
			rows = 1
		}
		o.parallelThreshold = rows
	}
}
