// Package tsp provides the toolkit used to build near-shortest, balanced picking
// tours over a dense distance matrix: tour/permutation invariants, cost evaluation,
// deterministic local search (2-opt / 2-opt*), and an open multi-vehicle solver.
//
// Design goals:
//   - Mathematical rigor: precise, specialized errors; explicit invariants for tours.
//   - Determinism: all random-driven heuristics are controlled by a Seed.
//   - Zero surprises: sensible defaults (nearest-insertion construction + 2-opt post-pass).
package tsp

import (
	"errors"
	"time"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, feasibility, algorithm governance)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrAsymmetry indicates dist[i][j] != dist[j][i] for a symmetric solver.
	ErrAsymmetry = errors.New("tsp: asymmetric distance matrix")

	// ErrNonZeroDiagonal indicates some dist[i][i] ≠ 0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero self-distance")

	// ErrIncompleteGraph is returned when a required edge is missing
	// (represented by math.Inf(1)) and no detour exists.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix (no feasible route)")

	// ErrDimensionMismatch indicates an unexpected matrix/tour shape.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates Options.StartVertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrEndOutOfRange indicates Options.EndVertex is outside [0..n-1].
	ErrEndOutOfRange = errors.New("tsp: end vertex out of range")

	// ErrNoVehicles indicates Options.NumVehicles is non-positive.
	ErrNoVehicles = errors.New("tsp: at least one vehicle is required")

	// Deprecated: ErrBadInput is kept for legacy callers; do not use in new code.
	ErrBadInput = errors.New("tsp: invalid input")
)

// Planner/engine governance sentinels.
var (
	// ErrUnsupportedAlgorithm is returned when Options.Algo selects an unavailable strategy.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrTimeLimit indicates a user-specified time budget was exhausted.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrATSPNotSupportedByAlgo signals that the chosen algorithm handles only symmetric instances.
	ErrATSPNotSupportedByAlgo = errors.New("tsp: algorithm does not support asymmetric distances")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// High-level algorithm selector
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Algorithm enumerates the top-level route-construction strategies supported
// by the dispatcher.
type Algorithm int

const (
	// NearestInsertion builds a single open path by repeated nearest-neighbor
	// extension from StartVertex, then improves it with 2-opt.
	NearestInsertion Algorithm = iota

	// TwoOptOnly skips construction: the seed path is start, the interior
	// vertices in the order given, then end, improved by 2-opt. OpenTwoOpt
	// takes a caller-supplied seed path directly.
	TwoOptOnly
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// TSResult encapsulates the output of a single-vehicle solver call.
type TSResult struct {
	// Tour is an ordered sequence of vertex indices representing the open path.
	// Invariants:
	//   Tour[0] == StartVertex
	//   Tour[len(Tour)-1] == EndVertex
	//   every vertex in [0..n-1] appears at most once
	Tour []int

	// Cost is the total distance along the path, computed from the provided
	// distance matrix.
	Cost float64
}

// FleetResult encapsulates the output of OpenMultiVehicle: one TSResult per
// vehicle plus the aggregate cost and the visit-count spread actually achieved.
type FleetResult struct {
	// Routes holds one open path per vehicle; empty vehicles still contribute
	// the degenerate [start end] path ([start start] when start == end).
	Routes []TSResult

	// TotalCost is the sum of Routes[*].Cost.
	TotalCost float64

	// MaxVisits and MinVisits describe the achieved visit-count spread across
	// vehicles (interior stops only, excluding the shared start/end anchors).
	MaxVisits int
	MinVisits int
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default knobs
const (
	// DefaultEps is the minimal strictly-better improvement for local search steps.
	DefaultEps = 1e-12

	// DefaultTwoOptMaxIters caps the number of accepted 2-opt moves across all iterations.
	DefaultTwoOptMaxIters = 10_000

	// DefaultVisitPenalty is the per-unit cost charged, in the assignment phase,
	// for each stop beyond a vehicle's fair share. It must dominate any single
	// edge weight in a realistic warehouse instance so the balancing objective
	// is respected before raw distance is optimized.
	DefaultVisitPenalty = 1e6
)

// Options defines configurable parameters for path/tour solvers.
// Zero value is not meaningful; use DefaultOptions() and override fields as needed.
type Options struct {
	// StartVertex selects the shared start vertex index [0..n-1]. Default: 0.
	StartVertex int

	// EndVertex selects the shared end vertex index [0..n-1]. Default: 0 (closed).
	// Set EndVertex != StartVertex for an open path/route.
	EndVertex int

	// NumVehicles is the number of independent open routes OpenMultiVehicle must
	// produce, each starting at StartVertex and ending at EndVertex. Default: 1.
	NumVehicles int

	// VisitPenalty is the per-stop-over-fair-share cost added during assignment
	// to keep routes balanced. Default: DefaultVisitPenalty.
	VisitPenalty float64

	// Algo selects the top-level construction algorithm (dispatcher). Default: NearestInsertion.
	Algo Algorithm

	// Symmetric controls matrix validation:
	//   true  → require dist[i][j] == dist[j][i],
	//   false → allow asymmetry for algorithms that support it.
	// Default: true.
	Symmetric bool

	// RunMetricClosure, if true, permits +Inf off-diagonal entries to be treated
	// as already metric-closed by an upstream step (e.g., Floyd–Warshall),
	// rather than rejected outright.
	RunMetricClosure bool

	// EnableLocalSearch applies a post-pass 2-opt when supported. Default: true.
	EnableLocalSearch bool

	// TwoOptMaxIters bounds the total number of accepted moves in local search.
	// Zero ⇒ unlimited. Default: 10_000.
	TwoOptMaxIters int

	// ShuffleNeighborhood, if true: randomize candidate order using Seed; if false: canonical order.
	ShuffleNeighborhood bool

	// Eps is the minimal improvement considered significant in local search comparisons.
	// Default: 1e-12.
	Eps float64

	// TimeLimit optionally bounds wall-clock time for long-running heuristics/search.
	// Zero means "no limit".
	TimeLimit time.Duration

	// Seed controls deterministic behavior of randomized components (seeded RNG).
	// Default: 0 (fixed seed → deterministic).
	Seed int64
}

// DefaultOptions returns a fully populated Options struct with safe, production-ready defaults:
//   - Start and end both at vertex 0 (closed by default; callers override for open routes)
//   - Single vehicle, nearest-insertion construction
//   - Local search enabled (2-opt) with conservative iteration cap
//   - Symmetric matrix required
//   - Deterministic RNG (Seed=0), no time limit
func DefaultOptions() Options {
	return Options{
		StartVertex:       0,
		EndVertex:         0,
		NumVehicles:       1,
		VisitPenalty:      DefaultVisitPenalty,
		Algo:              NearestInsertion,
		Symmetric:         true,
		RunMetricClosure:  false,
		EnableLocalSearch: true,
		TwoOptMaxIters:    DefaultTwoOptMaxIters,
		Eps:               DefaultEps,
		TimeLimit:         0,
		Seed:              0,
	}
}
