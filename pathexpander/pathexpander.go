package pathexpander

import (
	"fmt"

	"github.com/waresys/pickpath/routing"
	"github.com/waresys/pickpath/wgraph"
)

// Expand walks a route's node sequence pairwise, asking the Graph Store to
// expand each leg into its ground-level (z=0) path, per §4.E.
//
// Complexity: O(k) Graph Store calls for a k-node route, each bounded by the
// cost of wgraph.Store.ExpandPath.
func Expand(store *wgraph.Store, route routing.Route) ([]wgraph.Leg, error) {
	if len(route.NodeIDs) < 2 {
		return nil, nil
	}

	legs := make([]wgraph.Leg, 0, len(route.NodeIDs)-1)
	for i := 0; i+1 < len(route.NodeIDs); i++ {
		from, to := route.NodeIDs[i], route.NodeIDs[i+1]
		leg, err := store.ExpandPath(from, to)
		if err != nil {
			return nil, fmt.Errorf("Expand(%s,%s): %w", from, to, err)
		}
		legs = append(legs, leg)
	}

	return legs, nil
}

// ExpandAll expands every route in a plan, preserving route order.
func ExpandAll(store *wgraph.Store, plan routing.Plan) ([][]wgraph.Leg, error) {
	out := make([][]wgraph.Leg, len(plan.Routes))
	for i, r := range plan.Routes {
		legs, err := Expand(store, r)
		if err != nil {
			return nil, err
		}
		out[i] = legs
	}

	return out, nil
}
