// Package wgraph implements the Graph Store: the read/write surface the
// picking pipeline consumes to learn the warehouse's topology and
// inventory, and to commit or restore the effects of a completed pick.
//
// A Store wraps a *core.Graph for the CONNECTED_TO topology (Storage,
// Intersection, Hall, and Origin nodes, directed weighted edges) and keeps
// inventory (storage → product → quantity) in a separate map, since
// core.Edge carries a single int64 weight and has no notion of a product
// key. Node kind and coordinates live in core.Vertex.Metadata, so core
// itself stays domain-agnostic.
//
// Four operations make up the contract the rest of the pipeline relies
// on: SufficientOffer (aggregate supply per product), the inventory
// accessors consumed by the allocator package, ShortestDistances (pairwise
// distances for the metric builder), and ExpandPath (ground-level walk
// for a single leg). Commit and Restore apply or undo the effect of a
// completed pick under an optimistic quantity check.
package wgraph
