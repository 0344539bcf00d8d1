package cash

import (
	"context"
	"fmt"
	"runtime"

	"github.com/banshee-data/cash.report/internal/monitoring"
)

// Config holds the clustering parameters.
type Config struct {
	// Splits controls the angle grid resolution: the grid holds Splits+1
	// degree values covering [0, 180]. Must be > 0.
	Splits int

	// Eps is the maximum projected distance between two points for them to
	// count as neighbors on the delta line. Must be >= 0.
	Eps float64

	// MinPts is the smallest cluster size worth keeping. Extracted clusters
	// below this size are discarded. Must be > 0.
	MinPts int

	// Workers bounds the goroutines used to project the active set each
	// round. 0 means runtime.GOMAXPROCS(0). The result does not depend on
	// the worker count.
	Workers int

	// MaxRounds caps the number of rounds before the run is treated as
	// complete, for callers that want a compute budget on high-dimensional
	// data. 0 means no cap.
	MaxRounds int
}

// Engine drives the round loop over one static point set. All iteration
// state (permutation counter, active set, accumulated clusters) lives on the
// engine, so concurrent runs over different data never interfere. An Engine
// is single-use: create one per run.
type Engine struct {
	cfg     Config
	workers int
	grid    *AngleGrid
	counter *permutationCounter
	active  *activeSet
	dims    int

	clusters []Cluster
	rounds   int
	done     bool
}

// NewEngine validates the configuration and point set and prepares a run.
// It returns a *ConfigError or *InputError without touching any state on
// failure.
func NewEngine(points []Point, cfg Config) (*Engine, error) {
	if cfg.MinPts <= 0 {
		return nil, &ConfigError{Param: "minPts", Reason: fmt.Sprintf("must be > 0, got %d", cfg.MinPts)}
	}
	if cfg.Eps < 0 {
		return nil, &ConfigError{Param: "eps", Reason: fmt.Sprintf("must be >= 0, got %g", cfg.Eps)}
	}
	if cfg.Workers < 0 {
		return nil, &ConfigError{Param: "workers", Reason: fmt.Sprintf("must be >= 0, got %d", cfg.Workers)}
	}
	if cfg.MaxRounds < 0 {
		return nil, &ConfigError{Param: "maxRounds", Reason: fmt.Sprintf("must be >= 0, got %d", cfg.MaxRounds)}
	}

	grid, err := NewAngleGrid(cfg.Splits)
	if err != nil {
		return nil, err
	}

	dims, err := validatePoints(points)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Engine{
		cfg:     cfg,
		workers: workers,
		grid:    grid,
		counter: newPermutationCounter(dims-1, grid.Len()),
		active:  newActiveSet(points),
		dims:    dims,
	}, nil
}

// Rounds returns the number of rounds executed so far.
func (e *Engine) Rounds() int { return e.rounds }

// ActiveCount returns the number of points not yet assigned to any kept
// cluster.
func (e *Engine) ActiveCount() int { return e.active.size() }

// Run executes rounds until the permutation counter is exhausted, the active
// set shrinks below MinPts, or the MaxRounds budget is spent. Cancellation
// is checked between rounds only; a started round always completes its angle
// vector. On cancellation Run returns the clusters found so far together
// with the context error.
func (e *Engine) Run(ctx context.Context) ([]Cluster, error) {
	if e.done {
		return e.clusters, nil
	}

	for e.counter.hasNext() && e.active.size() >= e.cfg.MinPts {
		if err := ctx.Err(); err != nil {
			return e.clusters, err
		}
		if e.cfg.MaxRounds > 0 && e.rounds >= e.cfg.MaxRounds {
			break
		}
		if err := e.round(); err != nil {
			return nil, err
		}
	}

	e.done = true
	return e.clusters, nil
}

// round runs one full cycle for the next angle vector: project the active
// set, extract dense neighborhoods, drop the undersized ones, and remove
// every kept member from future rounds. The projection is scratch and is
// not carried over.
func (e *Engine) round() error {
	angles := e.counter.current(e.grid)
	e.counter.advance()
	e.rounds++

	projection := buildProjection(e.active.snapshot(), angles, e.workers)
	found := extractClusters(projection, e.cfg.Eps, angles)

	kept := found[:0]
	for _, c := range found {
		if c.Size() >= e.cfg.MinPts {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return nil // an empty round is a normal outcome
	}

	var clustered []int64
	for _, c := range kept {
		for _, id := range c.Members {
			if !e.active.contains(id) {
				return &DegenerateRoundError{Round: e.rounds, PointID: id}
			}
			clustered = append(clustered, id)
		}
	}

	e.active.removeAll(clustered)
	e.clusters = append(e.clusters, kept...)

	monitoring.Logf("cash: round %d kept %d cluster(s) covering %d point(s), %d active remaining",
		e.rounds, len(kept), len(clustered), e.active.size())
	return nil
}

// Run is the convenience entry point: validate, build an engine, and execute
// the full round loop.
func Run(ctx context.Context, points []Point, cfg Config) ([]Cluster, error) {
	engine, err := NewEngine(points, cfg)
	if err != nil {
		return nil, err
	}
	return engine.Run(ctx)
}
