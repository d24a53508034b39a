// Package median implements the center-update step of the k-median
// local search: given one cluster of weighted nodes, find a point that
// minimizes the weighted sum of distances to all cluster members.
package median

import (
	"math"

	"github.com/hupe1980/kmedian/distance"
	"github.com/hupe1980/kmedian/internal/clusterset"
	"github.com/hupe1980/kmedian/model"
)

// epsilon guards the Weiszfeld denominator when the current estimate
// coincides with a cluster member.
const epsilon = 1e-10

// Cost computes the weighted sum of distances from p to all cluster members.
func Cost(p model.Point, nodes []model.Node, members *clusterset.Set, dist distance.Func) float64 {
	var sum float64
	members.Each(func(i int) {
		sum += nodes[i].Weight * dist(nodes[i].Point, p)
	})
	return sum
}

// Discrete selects the candidate position minimizing the weighted sum of
// distances to all cluster members. candidates holds node indices; ties
// resolve to the lowest candidate index. The returned point is always
// the position of one of the candidates.
//
// The caller must pass a non-empty candidate set and a non-empty cluster.
func Discrete(nodes []model.Node, members *clusterset.Set, candidates []int, dist distance.Func) (model.Point, float64) {
	best := nodes[candidates[0]].Point
	bestCost := Cost(best, nodes, members, dist)

	for _, c := range candidates[1:] {
		p := nodes[c].Point
		cost := Cost(p, nodes, members, dist)
		if cost < bestCost {
			best = p
			bestCost = cost
		}
	}

	return best, bestCost
}

// Centroid returns the weighted mean position of the cluster members.
// It is the standard starting estimate for continuous refinement. When
// all weights are zero the unweighted mean is used.
func Centroid(nodes []model.Node, members *clusterset.Set) model.Point {
	var sumX, sumY, sumW float64
	members.Each(func(i int) {
		w := nodes[i].Weight
		sumX += w * nodes[i].Point.X
		sumY += w * nodes[i].Point.Y
		sumW += w
	})

	if sumW == 0 {
		var n float64
		members.Each(func(i int) {
			sumX += nodes[i].Point.X
			sumY += nodes[i].Point.Y
			n++
		})
		if n == 0 {
			return model.Point{}
		}
		return model.Point{X: sumX / n, Y: sumY / n}
	}

	return model.Point{X: sumX / sumW, Y: sumY / sumW}
}

// Weiszfeld approximates the weighted geometric median with a bounded
// number of fixed-point refinement steps starting from the weighted
// centroid. The update divides by the Euclidean distance between the
// estimate and each member, so a small epsilon floor keeps the step
// defined when the estimate lands on a member position.
//
// Refinement geometry is Euclidean; the returned cost is evaluated with
// dist so callers can compare against the previous center under the
// configured metric.
func Weiszfeld(nodes []model.Node, members *clusterset.Set, maxSteps int, dist distance.Func) (model.Point, float64) {
	est := Centroid(nodes, members)

	for step := 0; step < maxSteps; step++ {
		var numX, numY, denom float64
		members.Each(func(i int) {
			w := nodes[i].Weight
			if w == 0 {
				return
			}
			d := distance.Euclidean(nodes[i].Point, est)
			if d < epsilon {
				d = epsilon
			}
			numX += w * nodes[i].Point.X / d
			numY += w * nodes[i].Point.Y / d
			denom += w / d
		})

		if denom == 0 {
			break
		}

		next := model.Point{X: numX / denom, Y: numY / denom}
		if distance.Euclidean(next, est) < epsilon {
			est = next
			break
		}
		est = next
	}

	return est, Cost(est, nodes, members, dist)
}

// compass holds the four axis-aligned step directions of the pattern search.
var compass = [4]model.Point{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// PatternSearch approximates the weighted median by compass search:
// starting from the weighted centroid it probes the four axis-aligned
// directions, moves to the first improving position, and halves the
// step whenever no direction improves, until the step falls below
// stepEpsilon. The initial step spans the cluster's bounding box, so
// the search can escape a poor centroid estimate.
//
// Unlike Weiszfeld, every probe is evaluated with dist, which makes the
// refiner usable with arbitrary metrics.
func PatternSearch(nodes []model.Node, members *clusterset.Set, stepEpsilon float64, dist distance.Func) (model.Point, float64) {
	est := Centroid(nodes, members)
	bestCost := Cost(est, nodes, members, dist)

	step := boundingStep(nodes, members)
	if step <= stepEpsilon {
		return est, bestCost
	}

	for step > stepEpsilon {
		improved := false
		for _, dir := range compass {
			probe := model.Point{X: est.X + step*dir.X, Y: est.Y + step*dir.Y}
			cost := Cost(probe, nodes, members, dist)
			if cost < bestCost {
				est = probe
				bestCost = cost
				improved = true
				break
			}
		}
		if !improved {
			step *= 0.5
		}
	}

	return est, bestCost
}

// boundingStep derives the initial pattern-search step from the extent
// of the cluster. Half the larger bounding-box side reaches any member
// from the centroid within a few accepted moves.
func boundingStep(nodes []model.Node, members *clusterset.Set) float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	members.Each(func(i int) {
		p := nodes[i].Point
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	})

	if math.IsInf(minX, 1) {
		return 0
	}

	return math.Max(maxX-minX, maxY-minY) / 2
}
