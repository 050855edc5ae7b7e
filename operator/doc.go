// Package operator implements the operator algebra: selection,
// motion, structure, visibility, and field-driven mutations over a
// PointSet, plus combinators that build larger operators out of
// smaller ones.
//
// An Operator mutates a PointSet in place and returns the
// history.Record describing what changed, rather than returning a
// copied post-state — the columnar PointSet is not cheap to copy, and
// every other package in this module favors in-place mutation plus an
// explicit change record over functional update. Inverse() is only
// available after Apply has run at least once; it wraps the last
// record's reversal as a fresh Operator, so `op.Apply(ps)` followed by
// `inv, _ := op.Inverse(); inv.Apply(ps)` round-trips exactly.
package operator
