// Package kmedian provides an embeddable k-median facility-location
// solver for Go.
//
// Given weighted resource nodes on a plane (or any metric space), the
// solver places k station centers minimizing the total weighted
// distance from every node to its nearest center. The method is a
// local-search heuristic: alternating assignment and center-update
// steps converge to a local optimum, and multi-restart compensates for
// the sensitivity to initialization.
//
// # Quick Start
//
//	solver, _ := kmedian.New(10).
//	    Euclidean().
//	    DiscreteMedian().
//	    Restarts(8).
//	    RandomSeed(42).
//	    Build()
//
//	sol, err := solver.Solve(ctx, nodes)
//	for i, c := range sol.Centers {
//	    fmt.Println(i, c, sol.TotalCost)
//	}
//
// # Candidate Policies
//
// DiscreteMedian restricts centers to node positions in the cluster
// (true discrete k-median); DiscreteMedianAllNodes widens the candidate
// set to every input position; ContinuousMedian places centers anywhere
// using Weiszfeld refinement of the weighted geometric median.
//
// # Determinism
//
// For a fixed RandomSeed, configuration and input, Solve is fully
// reproducible: restart r always derives its generator from seed + r,
// equidistant centers resolve to the lowest index, and parallel
// restarts cannot change the outcome.
//
// # Reporting
//
// The report package packages a Solution with per-cluster summaries for
// external output or rendering layers; rendering itself is out of
// scope.
package kmedian
