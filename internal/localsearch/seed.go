package localsearch

import (
	"math"
	"math/rand"

	"github.com/hupe1980/kmedian/distance"
	"github.com/hupe1980/kmedian/model"
)

// Seeding selects the policy for choosing initial center positions.
type Seeding int

const (
	// SeedingUniform samples k distinct node positions uniformly at
	// random. Cheap, but sensitive to unlucky draws.
	SeedingUniform Seeding = iota

	// SeedingFarthestPoint picks a weight-biased random first center,
	// then repeatedly adds the node with the largest weighted distance
	// to its nearest already-chosen center. Spreads the initial centers
	// and usually reaches a better local optimum.
	SeedingFarthestPoint
)

func (s Seeding) String() string {
	switch s {
	case SeedingUniform:
		return "uniform"
	case SeedingFarthestPoint:
		return "farthest-point"
	default:
		return "unknown"
	}
}

// seedCenters returns k initial centers drawn from the node positions.
// Positions are deduplicated first: a duplicate coordinate never yields
// two identical centers as long as enough distinct positions exist.
func seedCenters(nodes []model.Node, k int, policy Seeding, rng *rand.Rand) []model.Point {
	distinct := distinctPositions(nodes)

	switch policy {
	case SeedingFarthestPoint:
		return seedFarthestPoint(nodes, distinct, k, rng)
	default:
		return seedUniform(nodes, distinct, k, rng)
	}
}

// distinctPositions returns the indices of the first node at each
// distinct coordinate, in input order.
func distinctPositions(nodes []model.Node) []int {
	seen := make(map[model.Point]struct{}, len(nodes))
	out := make([]int, 0, len(nodes))
	for i, n := range nodes {
		if _, ok := seen[n.Point]; ok {
			continue
		}
		seen[n.Point] = struct{}{}
		out = append(out, i)
	}
	return out
}

func seedUniform(nodes []model.Node, distinct []int, k int, rng *rand.Rand) []model.Point {
	centers := make([]model.Point, 0, k)

	perm := rng.Perm(len(distinct))
	for _, p := range perm {
		if len(centers) == k {
			break
		}
		centers = append(centers, nodes[distinct[p]].Point)
	}

	// Fewer distinct positions than k can only happen under the
	// continuous policy (validation rejects it for discrete). Pad with
	// random node positions; the duplicates resolve through the
	// empty-cluster policy on the first iteration.
	for len(centers) < k {
		centers = append(centers, nodes[rng.Intn(len(nodes))].Point)
	}

	return centers
}

func seedFarthestPoint(nodes []model.Node, distinct []int, k int, rng *rand.Rand) []model.Point {
	centers := make([]model.Point, 0, k)
	centers = append(centers, nodes[distinct[weightedPick(nodes, distinct, rng)]].Point)

	// Track each distinct position's distance to its nearest chosen
	// center, updated incrementally as centers are added.
	nearest := make([]float64, len(distinct))
	for i, idx := range distinct {
		nearest[i] = distance.Euclidean(nodes[idx].Point, centers[0])
	}

	for len(centers) < k && len(centers) < len(distinct) {
		best := -1
		bestScore := math.Inf(-1)
		for i, idx := range distinct {
			if nearest[i] == 0 {
				continue
			}
			w := nodes[idx].Weight
			if w == 0 {
				w = 1
			}
			if score := w * nearest[i]; score > bestScore {
				best = i
				bestScore = score
			}
		}
		if best < 0 {
			break
		}

		c := nodes[distinct[best]].Point
		centers = append(centers, c)
		for i, idx := range distinct {
			if d := distance.Euclidean(nodes[idx].Point, c); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	for len(centers) < k {
		centers = append(centers, nodes[rng.Intn(len(nodes))].Point)
	}

	return centers
}

// weightedPick draws a distinct-position index with probability
// proportional to node weight, falling back to uniform when the total
// weight is zero.
func weightedPick(nodes []model.Node, distinct []int, rng *rand.Rand) int {
	var total float64
	for _, idx := range distinct {
		total += nodes[idx].Weight
	}
	if total == 0 {
		return rng.Intn(len(distinct))
	}

	r := rng.Float64() * total
	for i, idx := range distinct {
		r -= nodes[idx].Weight
		if r <= 0 {
			return i
		}
	}
	return len(distinct) - 1
}
