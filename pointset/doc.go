// Package pointset implements the columnar point-set container: the
// engine's single source of truth for point positions, tree topology,
// and per-point flags.
//
// Storage is columnar by design (spec.md §9): coordinates live in one
// contiguous []float64 of length capacity*(dim+1), and depth/parent/
// timestamp/flags/motif are each a parallel []int32-or-similar slice of
// length capacity. add_point, mutation, and query operations hand out
// or consume slice views into these buffers rather than allocating a
// fresh point struct per call. Points are never physically removed:
// delete_subtree sets HIDDEN on the point and all its descendants
// (FOLDED is set only by fold_subtree); history can restore a hidden
// subtree.
//
// PointSet follows the teacher's (core.Graph) split-lock convention: one
// RWMutex guards the columnar arrays and tree topology, a second guards
// the name/meta side index, minimizing contention between a renderer
// reading positions and a caller renaming a node.
package pointset
