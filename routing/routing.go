package routing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/waresys/pickpath/matrix"
	"github.com/waresys/pickpath/metricbuilder"
	"github.com/waresys/pickpath/tsp"
)

// ErrSolverTimeout indicates the tour solver exhausted its time budget
// without returning any route — §7's SolverTimeout error kind. A timeout
// that still produced routes is not an error: the best-found result is
// returned per §5's "on expiry returns best-found, not failure".
var ErrSolverTimeout = errors.New("routing: solver timed out with no solution")

// timeLimit is passed to tsp as Options.TimeLimit: each vehicle's 2-opt pass
// gets its own deadline of this length, checked once every 2048 accepted
// moves. It does not cap the wall-clock time of Solve as a whole.
const timeLimit = 5 * time.Second

// visitPenalty dominates any realistic single-edge weight so balancing
// always wins over raw distance during vehicle assignment (§4.D).
const visitPenalty = 1e9

// Route is one vehicle's open tour, expressed as node ids in visit order
// (start and end included).
type Route struct {
	NodeIDs []string
	Cost    float64
}

// Plan is the full multi-vehicle solution: one Route per requested vehicle
// plus the aggregate cost and achieved visit-count spread.
type Plan struct {
	Routes    []Route
	TotalCost float64
	MaxVisits int
	MinVisits int
}

// Solve runs §4.D's multi-vehicle open TSP over a metric builder result,
// splitting interior stops across numRoutes balanced carts anchored at
// metric.StartIndex/metric.EndIndex.
//
// A 2-opt deadline expiry never fails the call: tsp.OpenMultiVehicle
// returns each vehicle's best tour found before its budget ran out rather
// than an error, so the result here is always the best-effort Plan per §5.
// ErrSolverTimeout is reserved for the case tsp.OpenMultiVehicle reports a
// genuine ErrTimeLimit with no tour at all to fall back on.
//
// Complexity: O(V²) assignment plus O(iters·V²) local search, per
// tsp.OpenMultiVehicle.
func Solve(metric metricbuilder.Result, numRoutes int) (Plan, error) {
	costs, err := floorMatrix(metric.Matrix)
	if err != nil {
		return Plan{}, fmt.Errorf("Solve: %w", err)
	}

	opts := tsp.DefaultOptions()
	opts.StartVertex = metric.StartIndex
	opts.EndVertex = metric.EndIndex
	opts.NumVehicles = numRoutes
	opts.VisitPenalty = visitPenalty
	opts.TimeLimit = timeLimit

	fleet, err := tsp.OpenMultiVehicle(costs, nil, opts)
	if err != nil {
		if errors.Is(err, tsp.ErrTimeLimit) {
			return Plan{}, fmt.Errorf("Solve: %w", ErrSolverTimeout)
		}

		return Plan{}, fmt.Errorf("Solve: %w", err)
	}

	idOf := invertIndex(metric.IndexOf)
	plan := Plan{
		Routes:    make([]Route, len(fleet.Routes)),
		TotalCost: fleet.TotalCost,
		MaxVisits: fleet.MaxVisits,
		MinVisits: fleet.MinVisits,
	}
	for i, r := range fleet.Routes {
		ids := make([]string, len(r.Tour))
		for j, idx := range r.Tour {
			ids[j] = idOf[idx]
		}
		plan.Routes[i] = Route{NodeIDs: ids, Cost: r.Cost}
	}

	return plan, nil
}

// floorMatrix truncates a metric builder's float64 distances into a fresh
// integer-valued matrix.Dense — the solver operates on matrix.Matrix
// (float64-backed), so "integer cost matrix" is satisfied by flooring here
// rather than changing matrix.Matrix's element type.
func floorMatrix(m matrix.Matrix) (*matrix.Dense, error) {
	n := m.Rows()
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			if err := dense.Set(i, j, math.Floor(v)); err != nil {
				return nil, err
			}
		}
	}

	return dense, nil
}

func invertIndex(indexOf metricbuilder.IndexOf) map[int]string {
	out := make(map[int]string, len(indexOf))
	for id, idx := range indexOf {
		out[idx] = id
	}

	return out
}
