// Package model defines the value types shared by the kmedian solver.
//
// # Core Types
//
//   - Point: immutable 2D coordinate; identity is positional
//   - Node: a Point with a non-negative demand weight
//   - Solution: centers, assignment mapping and total weighted cost of one run
//   - TerminationReason: why a run stopped (converged, capped, canceled)
//
// All types are plain values. Nodes are created once from input and never
// mutated; clusters are recomputed every iteration and carry no identity
// across iterations.
package model
