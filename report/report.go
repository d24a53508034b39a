// Package report packages a finished solution for external output and
// rendering collaborators. It performs no algorithmic work: pure data
// marshaling of centers, assignments and cost figures.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/kmedian/model"
)

// Report is the externally consumable form of a Solution.
type Report struct {
	// ID uniquely identifies this report.
	ID string `json:"id"`

	CreatedAt time.Time `json:"created_at"`

	K           int            `json:"k"`
	Centers     []model.Point  `json:"centers"`
	Assignments []int          `json:"assignments"`
	TotalCost   float64        `json:"total_cost"`
	Iterations  int            `json:"iterations"`
	Termination string         `json:"termination"`
	Restart     int            `json:"restart"`
	Clusters    []ClusterStats `json:"clusters"`
}

// ClusterStats summarizes one center's cluster.
type ClusterStats struct {
	Center model.Point `json:"center"`

	// Size is the number of nodes assigned to this center.
	Size int `json:"size"`

	// Weight is the summed weight of the assigned nodes.
	Weight float64 `json:"weight"`

	// Cost is the weighted distance sum contributed by this cluster.
	Cost float64 `json:"cost"`
}

// Build packages a solution. nodes must be the node slice the solution
// was solved against; dist the metric it was solved with. Both are only
// read.
func Build(sol *model.Solution, nodes []model.Node, dist func(a, b model.Point) float64) *Report {
	r := &Report{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		K:           len(sol.Centers),
		Centers:     append([]model.Point(nil), sol.Centers...),
		Assignments: append([]int(nil), sol.Assignments...),
		TotalCost:   sol.TotalCost,
		Iterations:  sol.Iterations,
		Termination: sol.Termination.String(),
		Restart:     sol.Restart,
		Clusters:    make([]ClusterStats, len(sol.Centers)),
	}

	for j, c := range sol.Centers {
		r.Clusters[j].Center = c
	}
	for i, a := range sol.Assignments {
		n := nodes[i]
		r.Clusters[a].Size++
		r.Clusters[a].Weight += n.Weight
		r.Clusters[a].Cost += n.Weight * dist(n.Point, sol.Centers[a])
	}

	return r
}
