package kmedian

type options struct {
	logger        *Logger
	metrics       MetricsCollector
	parallelism   int
	assignWorkers int
}

// Option configures ambient solver behavior (logging, metrics,
// parallelism). Algorithmic configuration lives on the Builder.
type Option func(*options)

// WithLogger configures structured logging for the solver.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// solve, restart and iteration activity. Pass nil to disable metrics
// collection.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		o.metrics = collector
	}
}

// WithParallelism limits how many restarts run concurrently. Each
// restart is fully independent state; only the final best-solution
// reduction is shared. Values <= 1 run restarts serially.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithAssignWorkers parallelizes the assignment step across node
// chunks. The driver waits for all chunks before the center-update
// step, so the strict assignment/update alternation is preserved.
// Values <= 1 keep the assignment serial.
func WithAssignWorkers(n int) Option {
	return func(o *options) {
		o.assignWorkers = n
	}
}
