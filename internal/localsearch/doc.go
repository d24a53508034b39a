// Package localsearch implements the alternating assignment/update
// local search for the k-median problem, including seeding, convergence
// control and multi-restart.
//
// One run alternates two steps until the cost improvement falls below a
// threshold or an iteration cap is reached:
//
//   - Assignment: every node joins its nearest center (ties to the
//     lowest center index).
//   - Center update: each non-empty cluster moves its center to the
//     weighted median of its members, under the configured candidate
//     policy. A center only moves when the move strictly lowers the
//     cluster cost, which keeps the total cost monotonically
//     non-increasing across iterations.
//
// The search only reaches a local optimum; multi-restart runs the whole
// cycle from independent seeds and keeps the cheapest solution.
package localsearch
