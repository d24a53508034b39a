package kmedian

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting solver metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus. Implementations must be safe for concurrent use: restarts
// may run in parallel.
type MetricsCollector interface {
	// RecordSolve is called once per Solve call.
	// duration is the total wall time, err is nil if successful.
	RecordSolve(k, restarts int, duration time.Duration, err error)

	// RecordRestart is called after each completed restart.
	RecordRestart(restart, iterations int, cost float64, duration time.Duration)

	// RecordIteration is called after each assignment pass with the
	// total weighted cost at that iteration.
	RecordIteration(restart, iteration int, cost float64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(int, int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordRestart(int, int, float64, time.Duration) {}
func (NoopMetricsCollector) RecordIteration(int, int, float64)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SolveCount      atomic.Int64
	SolveErrors     atomic.Int64
	SolveTotalNanos atomic.Int64
	RestartCount    atomic.Int64
	IterationCount  atomic.Int64
}

func (c *BasicMetricsCollector) RecordSolve(_, _ int, duration time.Duration, err error) {
	c.SolveCount.Add(1)
	c.SolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.SolveErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordRestart(_, _ int, _ float64, _ time.Duration) {
	c.RestartCount.Add(1)
}

func (c *BasicMetricsCollector) RecordIteration(_, _ int, _ float64) {
	c.IterationCount.Add(1)
}
