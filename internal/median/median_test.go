package median

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmedian/distance"
	"github.com/hupe1980/kmedian/internal/clusterset"
	"github.com/hupe1980/kmedian/model"
)

func allMembers(n int) *clusterset.Set {
	s := clusterset.New()
	for i := 0; i < n; i++ {
		s.Add(i)
	}
	return s
}

func TestCost(t *testing.T) {
	nodes := []model.Node{
		model.NewNode(0, 0, 1),
		model.NewNode(0, 10, 2),
	}

	got := Cost(model.Point{X: 0, Y: 0}, nodes, allMembers(2), distance.Euclidean)
	assert.InDelta(t, 20.0, got, 1e-12)
}

func TestDiscrete(t *testing.T) {
	// Three collinear nodes; the weighted median is the middle node.
	nodes := []model.Node{
		model.NewNode(0, 0, 1),
		model.NewNode(5, 0, 1),
		model.NewNode(10, 0, 1),
	}
	members := allMembers(3)

	p, cost := Discrete(nodes, members, []int{0, 1, 2}, distance.Euclidean)
	assert.Equal(t, model.Point{X: 5, Y: 0}, p)
	assert.InDelta(t, 10.0, cost, 1e-12)
}

func TestDiscreteWeighted(t *testing.T) {
	// Heavy weight drags the median to the heavy node.
	nodes := []model.Node{
		model.NewNode(0, 0, 100),
		model.NewNode(5, 0, 1),
		model.NewNode(10, 0, 1),
	}
	members := allMembers(3)

	p, _ := Discrete(nodes, members, []int{0, 1, 2}, distance.Euclidean)
	assert.Equal(t, model.Point{X: 0, Y: 0}, p)
}

func TestDiscreteTieBreak(t *testing.T) {
	// Two symmetric candidates with identical cost: lowest index wins.
	nodes := []model.Node{
		model.NewNode(0, 0, 1),
		model.NewNode(10, 0, 1),
	}
	members := allMembers(2)

	p, _ := Discrete(nodes, members, []int{0, 1}, distance.Euclidean)
	assert.Equal(t, model.Point{X: 0, Y: 0}, p)
}

func TestDiscreteStaysInCandidateSet(t *testing.T) {
	nodes := []model.Node{
		model.NewNode(1.5, 2.25, 1),
		model.NewNode(-3, 4, 2),
		model.NewNode(7, -1, 0.5),
		model.NewNode(0.25, 0.25, 3),
	}
	members := allMembers(4)
	candidates := []int{1, 3}

	p, _ := Discrete(nodes, members, candidates, distance.Euclidean)

	found := false
	for _, c := range candidates {
		if nodes[c].Point == p {
			found = true
		}
	}
	assert.True(t, found, "discrete median must be a candidate position")
}

func TestCentroid(t *testing.T) {
	nodes := []model.Node{
		model.NewNode(0, 0, 1),
		model.NewNode(10, 10, 1),
	}
	assert.Equal(t, model.Point{X: 5, Y: 5}, Centroid(nodes, allMembers(2)))

	// Weighted pull.
	nodes[1].Weight = 3
	c := Centroid(nodes, allMembers(2))
	assert.InDelta(t, 7.5, c.X, 1e-12)
	assert.InDelta(t, 7.5, c.Y, 1e-12)
}

func TestCentroidZeroWeights(t *testing.T) {
	nodes := []model.Node{
		model.NewNode(0, 0, 0),
		model.NewNode(4, 8, 0),
	}
	c := Centroid(nodes, allMembers(2))
	assert.InDelta(t, 2.0, c.X, 1e-12)
	assert.InDelta(t, 4.0, c.Y, 1e-12)
}

func TestWeiszfeldSquare(t *testing.T) {
	// Four corners of a square: the geometric median is the center.
	nodes := []model.Node{
		model.NewNode(0, 0, 1),
		model.NewNode(0, 10, 1),
		model.NewNode(10, 0, 1),
		model.NewNode(10, 10, 1),
	}
	members := allMembers(4)

	p, cost := Weiszfeld(nodes, members, 64, distance.Euclidean)
	assert.InDelta(t, 5.0, p.X, 1e-6)
	assert.InDelta(t, 5.0, p.Y, 1e-6)
	assert.InDelta(t, 4*math.Sqrt(50), cost, 1e-6)
}

func TestWeiszfeldEstimateOnMember(t *testing.T) {
	// The centroid of three of these nodes coincides with the middle
	// node, which would divide by zero without the epsilon guard.
	nodes := []model.Node{
		model.NewNode(0, 0, 1),
		model.NewNode(5, 0, 1),
		model.NewNode(10, 0, 1),
	}
	members := allMembers(3)

	p, cost := Weiszfeld(nodes, members, 64, distance.Euclidean)
	require.False(t, math.IsNaN(p.X))
	require.False(t, math.IsNaN(p.Y))
	assert.InDelta(t, 5.0, p.X, 1e-3)
	assert.InDelta(t, 10.0, cost, 1e-3)
}

func TestWeiszfeldSingleMember(t *testing.T) {
	nodes := []model.Node{model.NewNode(3, 4, 2)}
	s := clusterset.New()
	s.Add(0)

	p, cost := Weiszfeld(nodes, s, 64, distance.Euclidean)
	assert.InDelta(t, 3.0, p.X, 1e-9)
	assert.InDelta(t, 4.0, p.Y, 1e-9)
	assert.InDelta(t, 0.0, cost, 1e-9)
}

func TestPatternSearchSquare(t *testing.T) {
	nodes := []model.Node{
		model.NewNode(0, 0, 1),
		model.NewNode(0, 10, 1),
		model.NewNode(10, 0, 1),
		model.NewNode(10, 10, 1),
	}
	members := allMembers(4)

	p, cost := PatternSearch(nodes, members, 1e-6, distance.Euclidean)
	assert.InDelta(t, 5.0, p.X, 1e-3)
	assert.InDelta(t, 5.0, p.Y, 1e-3)
	assert.InDelta(t, 4*math.Sqrt(50), cost, 1e-3)
}

func TestPatternSearchManhattan(t *testing.T) {
	// Pattern search evaluates probes with the configured metric, so it
	// must work for non-Euclidean distances too.
	nodes := []model.Node{
		model.NewNode(0, 0, 1),
		model.NewNode(2, 0, 1),
		model.NewNode(4, 0, 1),
	}
	members := allMembers(3)

	p, cost := PatternSearch(nodes, members, 1e-6, distance.Manhattan)
	assert.InDelta(t, 2.0, p.X, 1e-3)
	assert.InDelta(t, 4.0, cost, 1e-3)
}

func TestPatternSearchDegenerateCluster(t *testing.T) {
	// All members at one position: zero bounding box, immediate return.
	nodes := []model.Node{
		model.NewNode(1, 1, 1),
		model.NewNode(1, 1, 2),
	}
	members := allMembers(2)

	p, cost := PatternSearch(nodes, members, 1e-6, distance.Euclidean)
	assert.Equal(t, model.Point{X: 1, Y: 1}, p)
	assert.Zero(t, cost)
}

func TestRefinersNeverWorseThanCentroid(t *testing.T) {
	nodes := []model.Node{
		model.NewNode(-3, 2, 1),
		model.NewNode(8, -1, 2.5),
		model.NewNode(0.5, 6, 1),
		model.NewNode(4, 4, 0.25),
		model.NewNode(-1, -5, 3),
	}
	members := allMembers(5)
	centroidCost := Cost(Centroid(nodes, members), nodes, members, distance.Euclidean)

	_, wCost := Weiszfeld(nodes, members, 64, distance.Euclidean)
	assert.LessOrEqual(t, wCost, centroidCost+1e-9)

	_, pCost := PatternSearch(nodes, members, 1e-6, distance.Euclidean)
	assert.LessOrEqual(t, pCost, centroidCost+1e-9)
}
