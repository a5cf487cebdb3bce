// Package allocator implements the Allocator (§4.B): given a Demand bag
// and a start node, it chooses which storage locations supply which
// units of which products, ordered by a proximity key that is never
// used as a routing cost — only to decide draw-down order.
//
// The algorithm is a pure function over wgraph.Store's read accessors;
// it holds no state of its own and performs no writes.
package allocator
