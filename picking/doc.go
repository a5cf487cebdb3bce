// Package picking implements the Orchestrator (§4.G): PickingService wires
// the Allocator, Metric Builder, Tour Solver, Path Expander and Summarizer
// into one call, and exposes ProcessOrderSummary/RestoreOrderSummary for
// the optimistic-concurrency inventory commit step.
package picking
