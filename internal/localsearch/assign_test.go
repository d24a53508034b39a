package localsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmedian/distance"
	"github.com/hupe1980/kmedian/model"
)

func TestAssign(t *testing.T) {
	nodes := []model.Node{
		model.NewNode(1, 0, 1),
		model.NewNode(9, 0, 1),
		model.NewNode(2, 0, 2),
	}
	centers := []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}

	assignments, cost := Assign(nodes, centers, distance.Euclidean, 1)

	assert.Equal(t, []int{0, 1, 0}, assignments)
	// 1*1 + 1*1 + 2*2
	assert.InDelta(t, 6.0, cost, 1e-12)
}

func TestAssignTieBreakLowestIndex(t *testing.T) {
	// Node exactly between two centers must go to center 0.
	nodes := []model.Node{model.NewNode(5, 0, 1)}
	centers := []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}

	for i := 0; i < 10; i++ {
		assignments, _ := Assign(nodes, centers, distance.Euclidean, 1)
		require.Equal(t, 0, assignments[0])
	}

	// Same with the center order flipped: still the lowest index.
	centers = []model.Point{{X: 10, Y: 0}, {X: 0, Y: 0}}
	assignments, _ := Assign(nodes, centers, distance.Euclidean, 1)
	assert.Equal(t, 0, assignments[0])
}

func TestAssignDeterministic(t *testing.T) {
	nodes := makeGrid(40, 40)
	centers := []model.Point{{X: 3, Y: 3}, {X: 30, Y: 11}, {X: 17, Y: 38}}

	first, firstCost := Assign(nodes, centers, distance.Euclidean, 1)
	for i := 0; i < 5; i++ {
		got, cost := Assign(nodes, centers, distance.Euclidean, 1)
		require.Equal(t, first, got)
		require.Equal(t, firstCost, cost)
	}
}

func TestAssignParallelMatchesSerial(t *testing.T) {
	nodes := makeGrid(64, 64)
	centers := []model.Point{{X: 5, Y: 5}, {X: 50, Y: 12}, {X: 20, Y: 60}, {X: 61, Y: 59}}

	serial, serialCost := Assign(nodes, centers, distance.Euclidean, 1)
	parallel, parallelCost := Assign(nodes, centers, distance.Euclidean, 4)

	assert.Equal(t, serial, parallel)
	assert.InDelta(t, serialCost, parallelCost, 1e-6)
}

func TestAssignZeroWeightNodes(t *testing.T) {
	nodes := []model.Node{
		model.NewNode(1, 0, 0),
		model.NewNode(9, 0, 3),
	}
	centers := []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}

	assignments, cost := Assign(nodes, centers, distance.Euclidean, 1)
	assert.Equal(t, []int{0, 1}, assignments)
	assert.InDelta(t, 3.0, cost, 1e-12)
}

func makeGrid(w, h int) []model.Node {
	nodes := make([]model.Node, 0, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			nodes = append(nodes, model.NewNode(float64(x), float64(y), 1))
		}
	}
	return nodes
}
