package main

import "github.com/waresys/pickpath/wgraph"

// seedDemoWarehouse builds a small two-aisle warehouse: a staging origin,
// an outbound dock, and six storage racks reachable through ground-level
// intersections. It is grounded on §3's node/edge shapes, not on any real
// facility layout.
func seedDemoWarehouse() *wgraph.Store {
	s := wgraph.NewStore()

	nodes := []struct {
		id   string
		kind wgraph.NodeKind
		x, y float64
	}{
		{"start", wgraph.KindOrigin, 0, 0},
		{"dest1", wgraph.KindOrigin, 0, 10},
		{"x1", wgraph.KindIntersection, 2, 2},
		{"x2", wgraph.KindIntersection, 2, 8},
		{"A1", wgraph.KindStorage, 4, 1},
		{"A2", wgraph.KindStorage, 4, 3},
		{"B1", wgraph.KindStorage, 4, 7},
		{"B2", wgraph.KindStorage, 4, 9},
		{"C1", wgraph.KindStorage, 6, 4},
		{"C2", wgraph.KindStorage, 6, 6},
	}
	for _, n := range nodes {
		must(s.AddNode(n.id, n.kind, wgraph.Coordinate{X: n.x, Y: n.y}))
	}

	edges := [][2]string{
		{"start", "x1"}, {"x1", "A1"}, {"x1", "A2"}, {"x1", "x2"},
		{"x2", "B1"}, {"x2", "B2"}, {"x2", "dest1"},
		{"A2", "C1"}, {"B1", "C2"}, {"C1", "C2"},
	}
	for _, e := range edges {
		must(s.AddEdge(e[0], e[1], 1))
		must(s.AddEdge(e[1], e[0], 1))
	}

	inventory := []struct {
		storage, product string
		qty               int64
	}{
		{"A1", "widget", 40},
		{"A2", "widget", 20},
		{"B1", "gadget", 15},
		{"B2", "gadget", 30},
		{"C1", "widget", 10},
		{"C2", "gizmo", 25},
	}
	for _, inv := range inventory {
		must(s.AddInventory(inv.storage, inv.product, inv.qty))
	}

	return s
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
