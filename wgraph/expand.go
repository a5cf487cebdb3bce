package wgraph

import (
	"fmt"
	"math"

	"github.com/waresys/pickpath/dijkstra"
)

// ExpandPath returns the ground-level (z=0) walk from fromID to toID and
// its shortest-path distance — Graph Store operation (4) of §4.A. Rack
// levels reached on the way (Storage nodes with z>0) are filtered out of
// Path; their cost is still included in Distance.
func (s *Store) ExpandPath(fromID, toID string) (Leg, error) {
	dist, prev, err := dijkstra.Dijkstra(s.g, dijkstra.Source(fromID), dijkstra.WithReturnPath())
	if err != nil {
		return Leg{}, fmt.Errorf("ExpandPath(%s,%s): %w", fromID, toID, err)
	}
	d, ok := dist[toID]
	if !ok || d >= math.MaxInt64 {
		return Leg{}, fmt.Errorf("ExpandPath(%s,%s): %w", fromID, toID, ErrUnreachable)
	}

	full, err := reconstructPath(prev, fromID, toID)
	if err != nil {
		return Leg{}, fmt.Errorf("ExpandPath(%s,%s): %w", fromID, toID, err)
	}

	ground := make([]string, 0, len(full))
	for _, id := range full {
		meta, merr := s.meta(id)
		if merr != nil {
			continue // unregistered waypoints should not occur; skip defensively
		}
		if meta.coord.Z == 0 {
			ground = append(ground, id)
		}
	}

	return Leg{From: fromID, To: toID, Distance: d, Path: ground}, nil
}

// reconstructPath walks the predecessor chain from->to backwards and
// returns it from..to inclusive.
func reconstructPath(prev map[string]string, from, to string) ([]string, error) {
	if from == to {
		return []string{from}, nil
	}

	var rev []string
	cur := to
	for cur != from {
		rev = append(rev, cur)
		next, ok := prev[cur]
		if !ok || next == "" {
			return nil, ErrUnreachable
		}
		cur = next
	}
	rev = append(rev, from)

	out := make([]string, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}

	return out, nil
}
