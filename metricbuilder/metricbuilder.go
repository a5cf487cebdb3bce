package metricbuilder

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/waresys/pickpath/allocator"
	"github.com/waresys/pickpath/matrix"
	"github.com/waresys/pickpath/wgraph"
)

// ErrUnreachable indicates the shortest-path closure left an off-diagonal
// zero between two distinct requested nodes — §4.C's detection rule for
// a disconnected pair.
var ErrUnreachable = errors.New("metricbuilder: unreachable")

// denseAPSPThreshold is the node-count ceiling below which Build favors a
// single dense matrix.FloydWarshall closure over the whole graph instead of
// fanning out one Dijkstra run per requested node. Below this size the O(V³)
// dense pass is cheaper than the concurrency overhead of the fan-out, and
// it is simpler to reason about for the small warehouses this library is
// actually exercised against.
const denseAPSPThreshold = 64

// IndexOf maps a node id to its row/column index in the built matrix.
type IndexOf map[string]int

// Result bundles the distance matrix with its id↔index bijection and the
// resolved start/end indices.
type Result struct {
	Matrix     *matrix.Dense
	IndexOf    IndexOf
	StartIndex int
	EndIndex   int
}

// Build constructs the node set (unique allocation storage ids, then
// start, then dest), fetches pairwise shortest distances, and mirrors
// them into a symmetric matrix — §4.C steps 1-2.
//
// Complexity: O(N²) for the matrix plus the cost of ShortestDistances.
func Build(ctx context.Context, store *wgraph.Store, allocations []allocator.Allocation, startID, destID string) (Result, error) {
	ids, indexOf := nodeSet(allocations, startID, destID)
	n := len(ids)

	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return Result{}, fmt.Errorf("Build: %w", err)
	}

	var rows []wgraph.DistanceRow
	if store.NodeCount() <= denseAPSPThreshold {
		rows, err = denseShortestDistances(store, ids)
	} else {
		rows, err = store.ShortestDistances(ctx, ids)
	}
	if err != nil {
		return Result{}, fmt.Errorf("Build: %w", err)
	}

	for _, r := range rows {
		i, iok := indexOf[r.From]
		j, jok := indexOf[r.To]
		if !iok || !jok {
			continue
		}
		// Keep the upper-triangle direction as canonical and mirror it,
		// per §4.C: "the matrix builder mirrors it". If both directions
		// were returned (asymmetric graph), the upper-triangle row wins.
		if i > j {
			continue
		}
		if err := dense.Set(i, j, float64(r.Distance)); err != nil {
			return Result{}, fmt.Errorf("Build: Set(%d,%d): %w", i, j, err)
		}
		if err := dense.Set(j, i, float64(r.Distance)); err != nil {
			return Result{}, fmt.Errorf("Build: Set(%d,%d): %w", j, i, err)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, _ := dense.At(i, j)
			if v == 0 {
				return Result{}, fmt.Errorf("Build(%s,%s): %w", ids[i], ids[j], ErrUnreachable)
			}
		}
	}

	return Result{
		Matrix:     dense,
		IndexOf:    indexOf,
		StartIndex: indexOf[startID],
		EndIndex:   indexOf[destID],
	}, nil
}

// denseShortestDistances computes pairwise shortest distances among ids by
// running a single matrix.FloydWarshall closure over the whole graph's
// dense adjacency, then projecting out the rows Build actually needs. It is
// the small-graph counterpart to wgraph.Store.ShortestDistances's
// concurrent per-source Dijkstra fan-out, used when store.NodeCount() is at
// or below denseAPSPThreshold.
func denseShortestDistances(store *wgraph.Store, ids []string) ([]wgraph.DistanceRow, error) {
	adj, allIDs, err := store.DenseAdjacency()
	if err != nil {
		return nil, fmt.Errorf("denseShortestDistances: %w", err)
	}

	n := adj.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, verr := adj.At(i, j)
			if verr != nil {
				return nil, fmt.Errorf("denseShortestDistances: %w", verr)
			}
			if v == 0 {
				// No direct edge: matrix.FloydWarshall's contract represents
				// "no path yet" as +Inf, not 0.
				if err := adj.Set(i, j, math.Inf(1)); err != nil {
					return nil, fmt.Errorf("denseShortestDistances: %w", err)
				}
			}
		}
	}

	if err := matrix.FloydWarshall(adj); err != nil {
		return nil, fmt.Errorf("denseShortestDistances: %w", err)
	}

	allIndexOf := make(map[string]int, len(allIDs))
	for i, id := range allIDs {
		allIndexOf[id] = i
	}

	var rows []wgraph.DistanceRow
	for _, from := range ids {
		fi, ok := allIndexOf[from]
		if !ok {
			continue
		}
		for _, to := range ids {
			if from == to {
				continue
			}
			ti, ok := allIndexOf[to]
			if !ok {
				continue
			}
			d, derr := adj.At(fi, ti)
			if derr != nil {
				return nil, fmt.Errorf("denseShortestDistances: %w", derr)
			}
			if math.IsInf(d, 1) {
				continue // unreachable: omit, per §4.C contract
			}
			rows = append(rows, wgraph.DistanceRow{From: from, To: to, Distance: int64(math.Round(d))})
		}
	}

	return rows, nil
}

// nodeSet returns the unique storage ids from allocations (insertion
// order preserved), followed by start and dest, plus the id→index map.
func nodeSet(allocations []allocator.Allocation, startID, destID string) ([]string, IndexOf) {
	seen := make(map[string]struct{})
	var ids []string
	for _, a := range allocations {
		if _, ok := seen[a.StorageID]; ok {
			continue
		}
		seen[a.StorageID] = struct{}{}
		ids = append(ids, a.StorageID)
	}
	ids = append(ids, startID, destID)

	indexOf := make(IndexOf, len(ids))
	for i, id := range ids {
		indexOf[id] = i
	}

	return ids, indexOf
}
