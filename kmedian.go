package kmedian

import (
	"context"
	"math"
	"time"

	"github.com/hupe1980/kmedian/internal/localsearch"
	"github.com/hupe1980/kmedian/model"
)

// Solver locates k station centers minimizing the total weighted
// distance from every node to its nearest center. It holds no mutable
// state between calls and is safe for concurrent use.
type Solver struct {
	k        int
	restarts int
	policy   localsearch.CandidatePolicy
	driver   *localsearch.Driver
	logger   *Logger
	metrics  MetricsCollector
}

// Solve validates the input and runs the configured local search,
// returning the cheapest solution across all restarts.
//
// The result is a local optimum, not a guaranteed global one. A
// canceled context returns the best solution completed so far; if no
// restart finished, the context error is returned instead.
func (s *Solver) Solve(ctx context.Context, nodes []model.Node) (*model.Solution, error) {
	start := time.Now()

	sol, err := s.solve(ctx, nodes)

	if s.metrics != nil {
		s.metrics.RecordSolve(s.k, s.restarts, time.Since(start), err)
	}

	return sol, err
}

func (s *Solver) solve(ctx context.Context, nodes []model.Node) (*model.Solution, error) {
	if err := s.validate(nodes); err != nil {
		s.logger.Debug("input rejected", "nodes", len(nodes), "error", err)
		return nil, err
	}

	return s.driver.Solve(ctx, nodes)
}

// validate rejects malformed input before the solve starts, so the
// iteration loop never sees NaN coordinates or negative weights.
func (s *Solver) validate(nodes []model.Node) error {
	if len(nodes) == 0 {
		return ErrNoNodes
	}

	for i, n := range nodes {
		if !n.Point.IsFinite() {
			return &ErrNonFiniteCoordinate{Index: i, Point: n.Point}
		}
		if n.Weight < 0 || math.IsNaN(n.Weight) || math.IsInf(n.Weight, 0) {
			return &ErrInvalidWeight{Index: i, Weight: n.Weight}
		}
	}

	if s.policy != localsearch.PolicyContinuous {
		if distinct := countDistinct(nodes); s.k > distinct {
			return &ErrTooFewDistinctPositions{K: s.k, Distinct: distinct}
		}
	}

	return nil
}

func countDistinct(nodes []model.Node) int {
	seen := make(map[model.Point]struct{}, len(nodes))
	for _, n := range nodes {
		seen[n.Point] = struct{}{}
	}
	return len(seen)
}
