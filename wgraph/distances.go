package wgraph

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/waresys/pickpath/dijkstra"
	"github.com/waresys/pickpath/matrix"
)

// ShortestDistances computes, for every node in nodeIDs, its shortest-path
// distance to every other node in nodeIDs — Graph Store operation (3) of
// §4.A. One Dijkstra run per source is fanned out with bounded concurrency
// (one goroutine per CPU), since the warehouse graph may carry far more
// nodes than the requested subset and each run is independent.
//
// The result contains at most one row per ordered pair (from,to) that was
// reachable; unreachable pairs are simply absent, matching §4.C's
// "if the graph is disconnected... distance is absent from the result"
// contract. The caller (metricbuilder) decides which direction to keep
// when mirroring into a symmetric matrix.
//
// Complexity: O(k·(V+E)·log V) where k = len(nodeIDs), bounded by
// min(k, GOMAXPROCS) concurrent Dijkstra runs at a time.
func (s *Store) ShortestDistances(ctx context.Context, nodeIDs []string) ([]DistanceRow, error) {
	wanted := make(map[string]struct{}, len(nodeIDs))
	for _, id := range nodeIDs {
		wanted[id] = struct{}{}
	}

	sem := semaphore.NewWeighted(int64(max(1, runtime.GOMAXPROCS(0))))
	group, gctx := errgroup.WithContext(ctx)

	rowsPerSource := make([][]DistanceRow, len(nodeIDs))
	for i, source := range nodeIDs {
		i, source := i, source
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)

			dist, _, err := dijkstra.Dijkstra(s.g, dijkstra.Source(source))
			if err != nil {
				return fmt.Errorf("ShortestDistances(%s): %w", source, err)
			}

			var rows []DistanceRow
			for to, d := range dist {
				if to == source {
					continue
				}
				if _, ok := wanted[to]; !ok {
					continue
				}
				if d >= math.MaxInt64 {
					continue // unreachable: omit, per §4.C contract
				}
				rows = append(rows, DistanceRow{From: source, To: to, Distance: d})
			}
			rowsPerSource[i] = rows

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var out []DistanceRow
	for _, rows := range rowsPerSource {
		out = append(out, rows...)
	}

	return out, nil
}

// DenseAdjacency returns the whole graph's direct-edge adjacency as a
// square matrix.Dense, zero where no CONNECTED_TO edge exists, plus the
// vertex order used for its rows/columns (Vertices()'s deterministic,
// id-ascending order). It is the dense counterpart to ShortestDistances,
// meant for matrix.FloydWarshall's all-pairs closure on small graphs
// where a single O(V³) pass is cheaper and simpler than fanning out one
// Dijkstra run per source.
func (s *Store) DenseAdjacency() (*matrix.Dense, []string, error) {
	ids := s.g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	dense, err := matrix.NewDense(len(ids), len(ids))
	if err != nil {
		return nil, nil, fmt.Errorf("DenseAdjacency: %w", err)
	}
	for _, e := range s.g.Edges() {
		i, iok := index[e.From]
		j, jok := index[e.To]
		if !iok || !jok {
			continue
		}
		if err := dense.Set(i, j, float64(e.Weight)); err != nil {
			return nil, nil, fmt.Errorf("DenseAdjacency: Set(%d,%d): %w", i, j, err)
		}
	}

	return dense, ids, nil
}
