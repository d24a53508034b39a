// Package kmedian provides an embeddable k-median facility-location solver.
//
// This file implements the fluent builder API for creating and configuring solvers.
// Builders are immutable - each method returns a new builder with the updated configuration.
package kmedian

import (
	"github.com/hupe1980/kmedian/distance"
	"github.com/hupe1980/kmedian/internal/localsearch"
)

// New creates a solver builder for k centers.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents
// accidental state sharing.
//
// Example:
//
//	solver, err := kmedian.New(10).
//	    Euclidean().
//	    DiscreteMedian().
//	    FarthestPointSeeding().
//	    Restarts(8).
//	    MaxIterations(100).
//	    MinImprovement(1e-6).
//	    RandomSeed(42).
//	    Build()
func New(k int) Builder {
	return Builder{
		k:                  k,
		metric:             distance.MetricEuclidean,
		policy:             localsearch.PolicyDiscreteMembers,
		refiner:            localsearch.RefinerWeiszfeld,
		seeding:            localsearch.SeedingUniform,
		emptyCluster:       localsearch.EmptyClusterReseed,
		maxIterations:      localsearch.DefaultOptions.MaxIterations,
		minImprovement:     localsearch.DefaultOptions.MinImprovement,
		weiszfeldSteps:     localsearch.DefaultOptions.WeiszfeldSteps,
		patternStepEpsilon: localsearch.DefaultOptions.PatternStepEpsilon,
		restarts:           1,
	}
}

// Builder is an immutable fluent builder for creating solvers.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	k                  int
	metric             distance.Metric
	customMetric       distance.Func
	policy             localsearch.CandidatePolicy
	refiner            localsearch.Refiner
	seeding            localsearch.Seeding
	emptyCluster       localsearch.EmptyClusterPolicy
	maxIterations      int
	minImprovement     float64
	weiszfeldSteps     int
	patternStepEpsilon float64
	restarts           int
	randomSeed         int64
}

// Euclidean sets the metric to straight-line distance (the default).
func (b Builder) Euclidean() Builder {
	b.metric = distance.MetricEuclidean
	b.customMetric = nil
	return b
}

// SquaredEuclidean sets the metric to squared straight-line distance.
func (b Builder) SquaredEuclidean() Builder {
	b.metric = distance.MetricSquaredEuclidean
	b.customMetric = nil
	return b
}

// Manhattan sets the metric to L1 distance.
func (b Builder) Manhattan() Builder {
	b.metric = distance.MetricManhattan
	b.customMetric = nil
	return b
}

// Chebyshev sets the metric to L∞ distance.
func (b Builder) Chebyshev() Builder {
	b.metric = distance.MetricChebyshev
	b.customMetric = nil
	return b
}

// Haversine sets the metric to great-circle distance in meters for
// points holding (longitude, latitude) in degrees.
func (b Builder) Haversine() Builder {
	b.metric = distance.MetricHaversine
	b.customMetric = nil
	return b
}

// CustomMetric sets a caller-supplied distance function, e.g. a
// rail-network distance. fn must be symmetric and return 0 for
// identical points; the local search additionally assumes the triangle
// inequality for its convergence argument.
func (b Builder) CustomMetric(fn distance.Func) Builder {
	b.customMetric = fn
	return b
}

// DiscreteMedian restricts every center to the positions of the nodes
// in its cluster (true discrete k-median, the default).
func (b Builder) DiscreteMedian() Builder {
	b.policy = localsearch.PolicyDiscreteMembers
	return b
}

// DiscreteMedianAllNodes allows any input node position as a center.
// More accurate than DiscreteMedian at higher per-iteration cost.
func (b Builder) DiscreteMedianAllNodes() Builder {
	b.policy = localsearch.PolicyDiscreteAllNodes
	return b
}

// ContinuousMedian places centers anywhere on the plane using Weiszfeld
// refinement of the weighted geometric median.
func (b Builder) ContinuousMedian() Builder {
	b.policy = localsearch.PolicyContinuous
	b.refiner = localsearch.RefinerWeiszfeld
	return b
}

// ContinuousMedianPatternSearch places centers anywhere on the plane
// using compass pattern search with step halving. Slower than Weiszfeld
// but usable with arbitrary metrics.
func (b Builder) ContinuousMedianPatternSearch() Builder {
	b.policy = localsearch.PolicyContinuous
	b.refiner = localsearch.RefinerPatternSearch
	return b
}

// UniformSeeding samples k distinct node positions uniformly at random
// (the default).
func (b Builder) UniformSeeding() Builder {
	b.seeding = localsearch.SeedingUniform
	return b
}

// FarthestPointSeeding spreads the initial centers with a weight-aware
// farthest-point heuristic. Usually reaches a better local optimum than
// uniform seeding.
func (b Builder) FarthestPointSeeding() Builder {
	b.seeding = localsearch.SeedingFarthestPoint
	return b
}

// KeepEmptyClusters leaves a center in place when no node is assigned
// to it. The default re-seeds such centers at a random node position.
func (b Builder) KeepEmptyClusters() Builder {
	b.emptyCluster = localsearch.EmptyClusterKeep
	return b
}

// MaxIterations caps the assignment/update iterations of one run.
// Hitting the cap is reported as model.TerminationMaxIterations.
func (b Builder) MaxIterations(n int) Builder {
	b.maxIterations = n
	return b
}

// MinImprovement sets the smallest cost decrease between successive
// iterations that still counts as progress; anything below it ends the
// run as converged.
func (b Builder) MinImprovement(delta float64) Builder {
	b.minImprovement = delta
	return b
}

// WeiszfeldSteps bounds the fixed-point refinement steps per center
// update under ContinuousMedian.
func (b Builder) WeiszfeldSteps(n int) Builder {
	b.weiszfeldSteps = n
	return b
}

// PatternStepEpsilon stops the compass search once the probe step
// shrinks below the given value.
func (b Builder) PatternStepEpsilon(eps float64) Builder {
	b.patternStepEpsilon = eps
	return b
}

// Restarts runs the whole seeding/iteration cycle r times from
// independent seeds and keeps the cheapest solution. This compensates
// for the local search's sensitivity to initialization.
func (b Builder) Restarts(r int) Builder {
	b.restarts = r
	return b
}

// RandomSeed makes seeding and empty-cluster recovery reproducible.
// Restart r derives its generator from seed + r, so results do not
// depend on scheduling.
func (b Builder) RandomSeed(seed int64) Builder {
	b.randomSeed = seed
	return b
}

// Build validates the configuration and creates the Solver.
func (b Builder) Build(optFns ...Option) (*Solver, error) {
	if b.k < 1 {
		return nil, ErrInvalidK
	}

	o := options{
		logger:      NoopLogger(),
		parallelism: 1,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	dist := b.customMetric
	if dist == nil {
		var err error
		dist, err = distance.Provider(b.metric)
		if err != nil {
			return nil, err
		}
	}

	return &Solver{
		k:       b.k,
		policy:  b.policy,
		metrics: o.metrics,
		logger:  o.logger.WithK(b.k),
		driver: localsearch.New(localsearch.Options{
			K:                  b.k,
			Distance:           dist,
			Policy:             b.policy,
			Refiner:            b.refiner,
			Seeding:            b.seeding,
			MaxIterations:      b.maxIterations,
			MinImprovement:     b.minImprovement,
			WeiszfeldSteps:     b.weiszfeldSteps,
			PatternStepEpsilon: b.patternStepEpsilon,
			EmptyCluster:       b.emptyCluster,
			Restarts:           b.restarts,
			Parallelism:        o.parallelism,
			AssignWorkers:      o.assignWorkers,
			RandomSeed:         b.randomSeed,
			Logger:             o.logger.WithK(b.k).Logger,
			Collector:          collectorOrNil(o.metrics),
		}),
		restarts: max(b.restarts, 1),
	}, nil
}

// collectorOrNil avoids handing the driver a typed-nil interface.
func collectorOrNil(c MetricsCollector) localsearch.Collector {
	if c == nil {
		return nil
	}
	return c
}
