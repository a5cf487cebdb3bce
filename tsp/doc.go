// Package tsp provides the routing toolkit used to turn an already-built
// distance matrix into one or more balanced, near-shortest open paths: a
// fixed start and a fixed end vertex, visiting a subset of interior vertices
// exactly once, with a consistent API, strict sentinel errors, deterministic
// behavior, and stable cost rounding (1e-9).
//
// # What & Why
//
// Given an n×n distance matrix dist and a fleet of NumVehicles carts sharing
// the same StartVertex and EndVertex, tsp computes one open path per vehicle,
// assigning the interior vertices so that no vehicle carries disproportionately
// more stops than another (a soft cap enforced through VisitPenalty), then
// improves each individual path with deterministic 2-opt.
//
//   - Construction: nearest-insertion from StartVertex toward EndVertex (NearestInsertion).
//   - Local search: deterministic 2-opt / 2-opt* post-passes (TwoOptOnly),
//     usable standalone on a caller-supplied seed path or via the dispatcher.
//   - Fleet balancing: OpenMultiVehicle assigns interior vertices farthest-first,
//     each to the vehicle whose tail extension costs least plus VisitPenalty per
//     stop beyond its fair share, then solves each route independently.
//
// # Determinism & Stability
//
//   - No time-based randomness. Any randomized scan uses Seed; Seed==0 gives fixed stream.
//   - Tie-breaks use indices. Costs are rounded to 1e-9 (round1e9) to avoid FP drift.
//
// # Input Requirements
//
//	dist must be a square n×n matrix, n≥2. Diagonal ≈ 0 (|a_ii| ≤ 1e-12). No negatives.
//	NaN is invalid. +Inf denotes "missing edge" (allowed only when RunMetricClosure==true,
//	meaning an upstream step such as Floyd–Warshall has already metric-closed the matrix).
//
//	Symmetry (dist[i][j]==dist[j][i]) is required unless opts.Symmetric==false.
//
// # Options
//
//	type Options struct {
//	    StartVertex         int           // shared route start [0..n-1] (default 0)
//	    EndVertex           int           // shared route end [0..n-1] (default 0)
//	    NumVehicles         int           // number of open routes to produce (default 1)
//	    VisitPenalty        float64       // per-stop-over-fair-share balancing cost
//	    Algo                Algorithm     // NearestInsertion / TwoOptOnly
//	    Symmetric           bool          // require symmetry (true by default)
//	    RunMetricClosure    bool          // allow solving partially connected graphs via closure
//	    EnableLocalSearch   bool          // run 2-opt post-pass where applicable
//	    TwoOptMaxIters      int           // cap accepted moves (0=unlimited)
//	    ShuffleNeighborhood bool          // shuffle candidate order (deterministic via Seed)
//	    Eps                 float64       // minimal strict improvement (default 1e-12)
//	    TimeLimit           time.Duration // soft wall-clock budget (0=none)
//	    Seed                int64         // deterministic RNG seed (0=stable default)
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrNonSquare, ErrNegativeWeight, ErrAsymmetry, ErrNonZeroDiagonal,
//	ErrIncompleteGraph, ErrDimensionMismatch, ErrStartOutOfRange, ErrEndOutOfRange,
//	ErrNoVehicles, ErrUnsupportedAlgorithm, ErrTimeLimit, ErrATSPNotSupportedByAlgo.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	type TSResult struct {
//	    Tour []int    // Tour[0]==StartVertex, Tour[len-1]==EndVertex, each visited at most once
//	    Cost float64  // rounded to 1e-9
//	}
//
//	type FleetResult struct {
//	    Routes               []TSResult
//	    TotalCost            float64
//	    MaxVisits, MinVisits int
//	}
//
// # Mathematics (references)
//
//	2-opt Δ:  (a→c)+(b→d)−(a→b)−(c→d)
//	Costs are stabilized by round1e9 for cross-platform reproducibility.
package tsp
