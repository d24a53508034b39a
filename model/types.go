package model

import (
	"fmt"
	"math"
)

// Point is an immutable 2D coordinate. Two Points are the same location
// iff their coordinates are equal; there is no referential identity.
type Point struct {
	X float64
	Y float64
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Node is a weighted resource location. Weight scales the node's
// contribution to the total cost; it must be non-negative.
type Node struct {
	Point  Point
	Weight float64
}

// NewNode creates a Node at (x, y) with the given weight.
func NewNode(x, y, weight float64) Node {
	return Node{Point: Point{X: x, Y: y}, Weight: weight}
}

// TerminationReason records why a solver run stopped.
type TerminationReason int

const (
	// TerminationConverged means the cost improvement between two
	// successive iterations fell below the configured minimum.
	TerminationConverged TerminationReason = iota

	// TerminationMaxIterations means the iteration cap was reached
	// before the improvement threshold was met. This is not an error,
	// but it must not be confused with true convergence.
	TerminationMaxIterations

	// TerminationCanceled means the surrounding context was canceled
	// and the run stopped early.
	TerminationCanceled
)

func (t TerminationReason) String() string {
	switch t {
	case TerminationConverged:
		return "converged"
	case TerminationMaxIterations:
		return "max-iterations"
	case TerminationCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Solution is the outcome of one converged (or capped) local-search run.
//
// Invariants:
//   - len(Centers) == k
//   - len(Assignments) == number of input nodes; Assignments[i] is the
//     index into Centers of node i's nearest center
//   - TotalCost == sum over nodes of weight * distance(node, assigned center)
type Solution struct {
	Centers     []Point
	Assignments []int
	TotalCost   float64
	Iterations  int
	Termination TerminationReason

	// Restart is the index of the restart that produced this solution
	// when multi-restart is enabled, 0 otherwise.
	Restart int
}

// Clone returns a deep copy of the solution.
func (s *Solution) Clone() *Solution {
	if s == nil {
		return nil
	}
	out := *s
	out.Centers = append([]Point(nil), s.Centers...)
	out.Assignments = append([]int(nil), s.Assignments...)
	return &out
}
