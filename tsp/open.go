// Package tsp - open-path construction and the multi-vehicle fleet solver.
//
// Unlike classic TSP, picking tours are open: a cart leaves StartVertex (the
// staging origin) and must finish at EndVertex (the outbound dock), visiting
// a subset of interior vertices along the way exactly once. OpenMultiVehicle
// extends this to a fleet: the interior vertex set is split across
// NumVehicles routes so that no cart is assigned disproportionately more
// stops than another, then each route is improved independently.
//
// Design:
//   - Construction: nearest-neighbor extension (NearestInsertion) or natural
//     order (TwoOptOnly), always anchored at StartVertex/EndVertex.
//   - Balancing: greedy assignment scores each candidate vehicle by
//     (edge cost to extend its current tail) + VisitPenalty × overflow
//     beyond a fair per-vehicle share, so a cheap-but-already-full vehicle
//     loses out to a slightly pricier, lighter-loaded one.
//   - Improvement: deterministic first-improvement 2-opt restricted to the
//     interior positions (endpoints never move).
//
// Complexity: O(V²) for construction and assignment, O(iters·V²) for 2-opt.
package tsp

import (
	"math"
	"sort"
	"time"

	"github.com/waresys/pickpath/matrix"
)

// SolveWithMatrix builds a single open path from opts.StartVertex to
// opts.EndVertex visiting every other vertex in dist exactly once, using the
// construction strategy selected by opts.Algo, then improves it with 2-opt
// when opts.EnableLocalSearch is set.
//
// Complexity: O(n²).
func SolveWithMatrix(dist matrix.Matrix, ids []string, opts Options) (TSResult, error) {
	n, err := validateAll(dist, ids, opts)
	if err != nil {
		return TSResult{}, err
	}

	interior := interiorVertices(n, opts.StartVertex, opts.EndVertex)

	path, err := constructOpenPath(dist, opts.StartVertex, opts.EndVertex, interior, opts)
	if err != nil {
		return TSResult{}, err
	}

	if opts.EnableLocalSearch {
		path, err = OpenTwoOpt(dist, path, opts)
		if err != nil {
			return TSResult{}, err
		}
	}

	cost, err := TourCost(dist, path)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: path, Cost: cost}, nil
}

// OpenMultiVehicle splits the interior vertex set across opts.NumVehicles
// balanced open routes, each sharing StartVertex/EndVertex, and improves
// every route with 2-opt independently.
//
// Complexity: O(V²) assignment + O(iters·V²) total local search.
func OpenMultiVehicle(dist matrix.Matrix, ids []string, opts Options) (FleetResult, error) {
	n, err := validateAll(dist, ids, opts)
	if err != nil {
		return FleetResult{}, err
	}
	if opts.NumVehicles <= 0 {
		return FleetResult{}, ErrNoVehicles
	}

	interior := interiorVertices(n, opts.StartVertex, opts.EndVertex)
	groups, err := balancedAssign(dist, opts.StartVertex, interior, opts)
	if err != nil {
		return FleetResult{}, err
	}

	result := FleetResult{Routes: make([]TSResult, opts.NumVehicles)}
	result.MinVisits = math.MaxInt32
	for v := 0; v < opts.NumVehicles; v++ {
		path, perr := constructOpenPath(dist, opts.StartVertex, opts.EndVertex, groups[v], opts)
		if perr != nil {
			return FleetResult{}, perr
		}
		if opts.EnableLocalSearch {
			path, perr = OpenTwoOpt(dist, path, opts)
			if perr != nil {
				return FleetResult{}, perr
			}
		}
		cost, cerr := TourCost(dist, path)
		if cerr != nil {
			return FleetResult{}, cerr
		}
		result.Routes[v] = TSResult{Tour: path, Cost: cost}
		result.TotalCost = round1e9(result.TotalCost + cost)

		visits := len(groups[v])
		if visits > result.MaxVisits {
			result.MaxVisits = visits
		}
		if visits < result.MinVisits {
			result.MinVisits = visits
		}
	}

	return result, nil
}

// interiorVertices returns every vertex in [0..n-1] except start and end, in
// ascending order.
//
// Complexity: O(n).
func interiorVertices(n, start, end int) []int {
	out := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if v == start || v == end {
			continue
		}
		out = append(out, v)
	}

	return out
}

// balancedAssign distributes interior vertices across NumVehicles groups.
// Candidates are processed in descending order of distance from start (the
// farthest, hardest-to-place stops are seated first), and each is assigned to
// the vehicle minimizing extension cost from its current tail plus a penalty
// proportional to how far that vehicle already sits above a fair share.
//
// Complexity: O(V·NumVehicles).
func balancedAssign(dist matrix.Matrix, start int, interior []int, opts Options) ([][]int, error) {
	numVehicles := opts.NumVehicles
	fairShare := 0
	if numVehicles > 0 {
		fairShare = (len(interior) + numVehicles - 1) / numVehicles
	}

	order := make([]int, len(interior))
	copy(order, interior)
	startDist := make(map[int]float64, len(interior))
	for _, v := range interior {
		w, err := edgeCost(dist, start, v)
		if err != nil {
			return nil, err
		}
		startDist[v] = w
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i] == order[j] {
			return false
		}
		di, dj := startDist[order[i]], startDist[order[j]]
		if di != dj {
			return di > dj
		}

		return order[i] < order[j]
	})

	groups := make([][]int, numVehicles)
	tails := make([]int, numVehicles)
	for v := range tails {
		tails[v] = start
	}

	for _, cand := range order {
		best, bestScore := -1, math.Inf(1)
		for v := 0; v < numVehicles; v++ {
			w, err := edgeCost(dist, tails[v], cand)
			if err != nil {
				continue // unreachable from this vehicle's tail; try another
			}
			overflow := float64(len(groups[v]) + 1 - fairShare)
			if overflow < 0 {
				overflow = 0
			}
			score := w + opts.VisitPenalty*overflow
			if score < bestScore {
				bestScore = score
				best = v
			}
		}
		if best == -1 {
			return nil, ErrIncompleteGraph
		}
		groups[best] = append(groups[best], cand)
		tails[best] = cand
	}

	return groups, nil
}

// constructOpenPath builds an open path start→...→end visiting every vertex
// in nodes exactly once, using the strategy selected by opts.Algo.
//
// Complexity: O(k²) where k = len(nodes).
func constructOpenPath(dist matrix.Matrix, start, end int, nodes []int, opts Options) ([]int, error) {
	switch opts.Algo {
	case TwoOptOnly:
		path := make([]int, 0, len(nodes)+2)
		path = append(path, start)
		path = append(path, nodes...)
		path = append(path, end)

		return path, nil
	case NearestInsertion:
		return nearestInsertionOpen(dist, start, end, nodes)
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// nearestInsertionOpen greedily extends a path from start, always stepping to
// the nearest unvisited candidate (ties broken by lowest index), then closes
// at end.
//
// Complexity: O(k²) where k = len(nodes).
func nearestInsertionOpen(dist matrix.Matrix, start, end int, nodes []int) ([]int, error) {
	remaining := make([]int, len(nodes))
	copy(remaining, nodes)

	path := make([]int, 0, len(nodes)+2)
	path = append(path, start)
	current := start

	for len(remaining) > 0 {
		bestIdx, bestCost := -1, math.Inf(1)
		for i, v := range remaining {
			w, err := edgeCost(dist, current, v)
			if err != nil {
				continue
			}
			if w < bestCost {
				bestCost = w
				bestIdx = i
			}
		}
		if bestIdx == -1 {
			return nil, ErrIncompleteGraph
		}
		current = remaining[bestIdx]
		path = append(path, current)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	path = append(path, end)

	return path, nil
}

// OpenTwoOpt runs deterministic first-improvement 2-opt on an open path,
// keeping both endpoints fixed. Only the interior (positions [1..len-2]) may
// be reordered.
//
// Complexity: O(iters·k²) where k = len(path).
func OpenTwoOpt(dist matrix.Matrix, initPath []int, opts Options) ([]int, error) {
	if initPath == nil || len(initPath) < 2 {
		return nil, ErrDimensionMismatch
	}
	L := len(initPath) - 1 // last index
	if err := validateSimplePath(initPath); err != nil {
		return nil, err
	}

	cur := CopyTour(initPath)
	eps := opts.Eps
	if eps < 0 {
		eps = 0
	}
	maxIters := opts.TwoOptMaxIters

	var (
		useDeadline bool
		deadline    time.Time
		step        int
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}
	checkDeadline := func() bool {
		step++
		if !useDeadline || (step&2047) != 0 {
			return false
		}

		return time.Now().After(deadline)
	}

	// Scan order over starting cuts i; canonical (ascending) unless the caller
	// asks for a shuffled neighborhood, in which case a seeded RNG derives a
	// deterministic-but-varied order (same seed ⇒ same order every run).
	var scanOrder []int
	for i := 1; i <= L-2; i++ {
		scanOrder = append(scanOrder, i)
	}
	if opts.ShuffleNeighborhood {
		shuffleIntsInPlace(scanOrder, rngFromSeed(opts.Seed))
	}

	accepted := 0
	for {
		improved := false
		for _, i := range scanOrder {
			for k := i + 1; k <= L-1; k++ {
				a, b, c, d := cur[i-1], cur[i], cur[k], cur[k+1]

				wab, errAB := edgeCost(dist, a, b)
				wcd, errCD := edgeCost(dist, c, d)
				wac, errAC := edgeCost(dist, a, c)
				wbd, errBD := edgeCost(dist, b, d)
				if errAB != nil || errCD != nil || errAC != nil || errBD != nil {
					continue
				}

				delta := (wac + wbd) - (wab + wcd)
				if delta < -eps {
					if err := reverseArcInPlace(cur, i, k); err != nil {
						return nil, err
					}
					accepted++
					improved = true

					if maxIters > 0 && accepted >= maxIters {
						return cur, nil
					}
					if checkDeadline() {
						// Deadline hit mid-improvement: cur is a fully valid
						// tour (every accepted swap keeps it simple), just
						// not yet locally optimal. Return it rather than
						// discarding the work done so far.
						return cur, nil
					}

					break
				}
			}
			if improved {
				break
			}
		}
		if !improved {
			break
		}
	}

	return cur, nil
}

// validateSimplePath verifies that path contains no repeated vertices, except
// that the last position may legitimately repeat the first (StartVertex ==
// EndVertex, the degenerate closed case).
//
// Complexity: O(k) time, O(k) space.
func validateSimplePath(path []int) error {
	last := len(path) - 1
	seen := make(map[int]struct{}, last)
	for i, v := range path {
		if i == last && v == path[0] {
			continue
		}
		if _, ok := seen[v]; ok {
			return ErrDimensionMismatch
		}
		seen[v] = struct{}{}
	}

	return nil
}
