package main

import "github.com/waresys/pickpath/wgraph"

// flattenPath concatenates a route's legs into one ground-level node
// sequence, skipping each leg's leading node after the first (it is the
// previous leg's trailing node).
func flattenPath(legs []wgraph.Leg) []string {
	var out []string
	for i, leg := range legs {
		path := leg.Path
		if i > 0 && len(path) > 0 {
			path = path[1:]
		}
		out = append(out, path...)
	}

	return out
}
