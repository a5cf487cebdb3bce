// Package routing implements the Tour Solver (§4.D): it adapts a metric
// builder result into tsp.Options and runs the balanced open multi-vehicle
// solver. A 2-opt deadline expiry still yields the best routes found;
// ErrSolverTimeout is returned only when the solver times out with no route.
package routing
