package localsearch

import (
	"context"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/kmedian/distance"
	"github.com/hupe1980/kmedian/internal/clusterset"
	"github.com/hupe1980/kmedian/internal/median"
	"github.com/hupe1980/kmedian/model"
)

// CandidatePolicy restricts where an updated center may be placed.
type CandidatePolicy int

const (
	// PolicyDiscreteMembers restricts each center to the positions of
	// the nodes currently in its cluster (true discrete k-median).
	PolicyDiscreteMembers CandidatePolicy = iota

	// PolicyDiscreteAllNodes allows any input node position as a
	// center. More accurate than PolicyDiscreteMembers at O(n) extra
	// candidate evaluations per cluster.
	PolicyDiscreteAllNodes

	// PolicyContinuous places centers anywhere on the plane using an
	// iterative weighted-median refinement.
	PolicyContinuous
)

func (p CandidatePolicy) String() string {
	switch p {
	case PolicyDiscreteMembers:
		return "discrete-members"
	case PolicyDiscreteAllNodes:
		return "discrete-all-nodes"
	case PolicyContinuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// Refiner selects the numeric method behind PolicyContinuous.
type Refiner int

const (
	// RefinerWeiszfeld runs bounded Weiszfeld fixed-point steps.
	RefinerWeiszfeld Refiner = iota

	// RefinerPatternSearch runs a compass search with step halving.
	// Works with arbitrary metrics, unlike Weiszfeld.
	RefinerPatternSearch
)

// EmptyClusterPolicy decides what happens to a center that ends an
// assignment pass with zero members.
type EmptyClusterPolicy int

const (
	// EmptyClusterReseed moves the center to a random node position.
	EmptyClusterReseed EmptyClusterPolicy = iota

	// EmptyClusterKeep leaves the center where it is.
	EmptyClusterKeep
)

// Collector receives per-iteration and per-restart observations.
// Implementations must be safe for concurrent use when restarts run in
// parallel.
type Collector interface {
	RecordIteration(restart, iteration int, cost float64)
	RecordRestart(restart, iterations int, cost float64, duration time.Duration)
}

// Options configures a Driver.
type Options struct {
	// K is the number of centers. Must be >= 1; validated by the caller.
	K int

	// Distance is the metric used for all cost evaluations.
	Distance distance.Func

	Policy  CandidatePolicy
	Refiner Refiner
	Seeding Seeding

	// MaxIterations caps one run. Hitting the cap is reported as
	// model.TerminationMaxIterations, distinct from convergence.
	MaxIterations int

	// MinImprovement is the smallest cost decrease between successive
	// iterations that still counts as progress.
	MinImprovement float64

	// WeiszfeldSteps bounds the fixed-point refinement per update.
	WeiszfeldSteps int

	// PatternStepEpsilon stops the compass search once the probe step
	// shrinks below it.
	PatternStepEpsilon float64

	EmptyCluster EmptyClusterPolicy

	// Restarts is the number of independent seeded runs; the cheapest
	// solution wins. Values < 1 mean a single run.
	Restarts int

	// Parallelism limits concurrently running restarts. <= 1 is serial.
	Parallelism int

	// AssignWorkers parallelizes the assignment step. <= 1 is serial.
	AssignWorkers int

	// RandomSeed makes runs reproducible. Restart r derives its own
	// generator from RandomSeed + r.
	RandomSeed int64

	Logger    *slog.Logger
	Collector Collector
}

// DefaultOptions contains the default driver configuration.
var DefaultOptions = Options{
	Policy:             PolicyDiscreteMembers,
	Refiner:            RefinerWeiszfeld,
	Seeding:            SeedingUniform,
	MaxIterations:      100,
	MinImprovement:     1e-9,
	WeiszfeldSteps:     64,
	PatternStepEpsilon: 1e-6,
	EmptyCluster:       EmptyClusterReseed,
	Restarts:           1,
	Parallelism:        1,
	AssignWorkers:      1,
}

// Driver runs the seeded local search. It is stateless between Solve
// calls and safe for concurrent use.
type Driver struct {
	opts     Options
	logger   *slog.Logger
	degenLog *rate.Sometimes
}

// New creates a Driver. Zero-valued numeric options fall back to
// DefaultOptions.
func New(opts Options) *Driver {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultOptions.MaxIterations
	}
	if opts.MinImprovement <= 0 {
		opts.MinImprovement = DefaultOptions.MinImprovement
	}
	if opts.WeiszfeldSteps <= 0 {
		opts.WeiszfeldSteps = DefaultOptions.WeiszfeldSteps
	}
	if opts.PatternStepEpsilon <= 0 {
		opts.PatternStepEpsilon = DefaultOptions.PatternStepEpsilon
	}
	if opts.Restarts < 1 {
		opts.Restarts = 1
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	if opts.AssignWorkers < 1 {
		opts.AssignWorkers = 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Driver{
		opts:   opts,
		logger: logger,
		// Degenerate-cluster recoveries are expected noise inside the
		// hot loop; throttle the diagnostics instead of flooding.
		degenLog: &rate.Sometimes{First: 3, Interval: time.Second},
	}
}

// Solve runs the configured number of restarts and returns the cheapest
// solution. Ties resolve to the lowest restart index. When ctx is
// canceled, the best solution completed so far is returned; if none
// finished, the context error is.
func (d *Driver) Solve(ctx context.Context, nodes []model.Node) (*model.Solution, error) {
	results := make([]*model.Solution, d.opts.Restarts)

	if d.opts.Parallelism == 1 || d.opts.Restarts == 1 {
		for r := 0; r < d.opts.Restarts; r++ {
			results[r] = d.runOnce(ctx, nodes, r)
			if ctx.Err() != nil {
				break
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(d.opts.Parallelism)
		for r := 0; r < d.opts.Restarts; r++ {
			r := r
			g.Go(func() error {
				results[r] = d.runOnce(ctx, nodes, r)
				return nil
			})
		}
		_ = g.Wait()
	}

	best := reduceBest(results)
	if best == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, context.Canceled
	}

	d.logger.Debug("local search finished",
		"k", d.opts.K,
		"restarts", d.opts.Restarts,
		"best_restart", best.Restart,
		"cost", best.TotalCost,
		"iterations", best.Iterations,
		"termination", best.Termination.String(),
	)

	return best, nil
}

// reduceBest picks the cheapest non-nil solution; ties go to the lowest
// restart index, which is the iteration order here.
func reduceBest(results []*model.Solution) *model.Solution {
	var best *model.Solution
	for _, s := range results {
		if s == nil {
			continue
		}
		if best == nil || s.TotalCost < best.TotalCost {
			best = s
		}
	}
	return best
}

// runOnce executes one Seeding -> Iterating -> Converged cycle. It
// returns nil only when canceled before the first assignment completed.
func (d *Driver) runOnce(ctx context.Context, nodes []model.Node, restart int) *model.Solution {
	start := time.Now()
	rng := rand.New(rand.NewSource(d.opts.RandomSeed + int64(restart)))

	centers := seedCenters(nodes, d.opts.K, d.opts.Seeding, rng)

	var allCandidates []int
	if d.opts.Policy == PolicyDiscreteAllNodes {
		allCandidates = distinctPositions(nodes)
	}

	var (
		assignments []int
		cost        float64
		iterations  int
	)
	prevCost := math.Inf(1)
	termination := model.TerminationMaxIterations

	for it := 1; it <= d.opts.MaxIterations; it++ {
		if ctx.Err() != nil {
			if iterations == 0 {
				return nil
			}
			// Re-assign against the current centers so the reported
			// assignment mapping matches them.
			assignments, cost = Assign(nodes, centers, d.opts.Distance, d.opts.AssignWorkers)
			termination = model.TerminationCanceled
			break
		}

		assignments, cost = Assign(nodes, centers, d.opts.Distance, d.opts.AssignWorkers)
		iterations = it

		if c := d.opts.Collector; c != nil {
			c.RecordIteration(restart, it, cost)
		}

		if prevCost-cost < d.opts.MinImprovement {
			termination = model.TerminationConverged
			break
		}
		prevCost = cost

		if it == d.opts.MaxIterations {
			break
		}

		d.updateCenters(nodes, centers, assignments, allCandidates, rng, restart)
	}

	sol := &model.Solution{
		Centers:     centers,
		Assignments: assignments,
		TotalCost:   cost,
		Iterations:  iterations,
		Termination: termination,
		Restart:     restart,
	}

	if c := d.opts.Collector; c != nil {
		c.RecordRestart(restart, iterations, cost, time.Since(start))
	}

	d.logger.Debug("restart finished",
		"restart", restart,
		"cost", cost,
		"iterations", iterations,
		"termination", termination.String(),
	)

	return sol
}

// updateCenters runs the center-update step for every cluster in place.
// A center only moves when the move strictly lowers its cluster cost,
// so the total cost cannot increase between iterations.
func (d *Driver) updateCenters(nodes []model.Node, centers []model.Point, assignments []int, allCandidates []int, rng *rand.Rand, restart int) {
	sets := clusterset.Partition(assignments, len(centers))

	for j, members := range sets {
		if members.IsEmpty() {
			d.recoverEmptyCluster(centers, j, nodes, rng, restart)
			continue
		}

		currentCost := median.Cost(centers[j], nodes, members, d.opts.Distance)

		var (
			candidate model.Point
			candCost  float64
		)
		switch d.opts.Policy {
		case PolicyDiscreteAllNodes:
			candidate, candCost = median.Discrete(nodes, members, allCandidates, d.opts.Distance)
		case PolicyContinuous:
			if d.opts.Refiner == RefinerPatternSearch {
				candidate, candCost = median.PatternSearch(nodes, members, d.opts.PatternStepEpsilon, d.opts.Distance)
			} else {
				candidate, candCost = median.Weiszfeld(nodes, members, d.opts.WeiszfeldSteps, d.opts.Distance)
			}
		default:
			candidate, candCost = median.Discrete(nodes, members, members.Indices(), d.opts.Distance)
		}

		if candCost < currentCost {
			centers[j] = candidate
		}
	}
}

// recoverEmptyCluster applies the configured degenerate-cluster policy.
// Moving an empty cluster's center changes no node's current cost, so
// the monotonicity invariant is unaffected either way.
func (d *Driver) recoverEmptyCluster(centers []model.Point, j int, nodes []model.Node, rng *rand.Rand, restart int) {
	switch d.opts.EmptyCluster {
	case EmptyClusterKeep:
		d.degenLog.Do(func() {
			d.logger.Warn("empty cluster kept in place", "restart", restart, "center", j)
		})
	default:
		centers[j] = nodes[rng.Intn(len(nodes))].Point
		d.degenLog.Do(func() {
			d.logger.Warn("empty cluster re-seeded", "restart", restart, "center", j)
		})
	}
}
