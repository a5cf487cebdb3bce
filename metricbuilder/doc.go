// Package metricbuilder implements the Metric Builder (§4.C): given an
// allocation list and the start/dest node ids, it builds the dense
// symmetric distance matrix and id↔index bijection the Tour Solver needs.
package metricbuilder
