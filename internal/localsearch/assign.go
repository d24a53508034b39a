package localsearch

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kmedian/distance"
	"github.com/hupe1980/kmedian/model"
)

// Assign maps every node to its nearest center and returns the
// assignment vector together with the total weighted cost. Ties between
// equidistant centers resolve to the lowest center index, so the result
// is deterministic for identical inputs.
//
// workers > 1 splits the nodes into contiguous chunks processed on an
// errgroup; each chunk writes disjoint slots of the assignment vector.
// The function returns only after all chunks finish, which is the
// synchronization barrier the center-update step relies on.
func Assign(nodes []model.Node, centers []model.Point, dist distance.Func, workers int) ([]int, float64) {
	n := len(nodes)
	assignments := make([]int, n)

	if workers <= 1 || n < workers*minChunk {
		cost := assignRange(nodes, centers, dist, 0, n, assignments)
		return assignments, cost
	}

	chunk := (n + workers - 1) / workers
	partial := make([]float64, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			partial[w] = assignRange(nodes, centers, dist, lo, hi, assignments)
			return nil
		})
	}
	_ = g.Wait()

	// Partial costs are summed in chunk order to keep the total
	// reproducible for a fixed worker count.
	var cost float64
	for _, p := range partial {
		cost += p
	}

	return assignments, cost
}

// minChunk is the smallest per-worker slice worth a goroutine.
const minChunk = 256

func assignRange(nodes []model.Node, centers []model.Point, dist distance.Func, lo, hi int, assignments []int) float64 {
	var cost float64

	for i := lo; i < hi; i++ {
		best := 0
		bestDist := math.Inf(1)
		for j, c := range centers {
			if d := dist(nodes[i].Point, c); d < bestDist {
				best = j
				bestDist = d
			}
		}
		assignments[i] = best
		cost += nodes[i].Weight * bestDist
	}

	return cost
}
