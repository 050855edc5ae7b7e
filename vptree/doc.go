// Package vptree implements a vantage-point tree spatial index over a
// pointset.PointSet, giving nearest/k-nearest/range queries pruned by
// the hyperbolic triangle inequality instead of the O(n) linear scan
// pointset itself falls back to.
//
// The index is lazily rebuilt (spec.md §4.5): it tracks the point set's
// version (count) and a count of inserts it hasn't absorbed yet, and
// rebuilds from scratch the next time it is queried if the count has
// changed since the last build, if the pending inserts have reached the
// rebuild threshold, or if it has never been built. There is no
// incremental insert — every rebuild is a full one, following the
// teacher's (gridgraph) preference
// for rebuild-from-scratch immutable structures over incremental
// maintenance.
package vptree
