package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/kmedian/distance"
	"github.com/hupe1980/kmedian/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a standard normally distributed float64.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// ClusteredNodes generates perCluster unit-weight nodes around each of
// the given centers with Gaussian spread. The true cluster structure is
// known, which makes the generated set a good ground truth for solver
// tests.
func ClusteredNodes(rng *RNG, centers []model.Point, spread float64, perCluster int) []model.Node {
	nodes := make([]model.Node, 0, len(centers)*perCluster)
	for _, c := range centers {
		for i := 0; i < perCluster; i++ {
			nodes = append(nodes, model.Node{
				Point: model.Point{
					X: c.X + rng.NormFloat64()*spread,
					Y: c.Y + rng.NormFloat64()*spread,
				},
				Weight: 1,
			})
		}
	}
	return nodes
}

// GridNodes generates unit-weight nodes at every integer coordinate of
// a w x h grid.
func GridNodes(w, h int) []model.Node {
	nodes := make([]model.Node, 0, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			nodes = append(nodes, model.NewNode(float64(x), float64(y), 1))
		}
	}
	return nodes
}

// ExactCost computes the total weighted cost of assigning every node to
// its nearest center by brute force.
func ExactCost(nodes []model.Node, centers []model.Point, dist distance.Func) float64 {
	var total float64
	for _, n := range nodes {
		best := math.Inf(1)
		for _, c := range centers {
			if d := dist(n.Point, c); d < best {
				best = d
			}
		}
		total += n.Weight * best
	}
	return total
}
