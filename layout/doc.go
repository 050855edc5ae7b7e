// Package layout implements the tree layout algorithms: radial
// (angular budget proportional to subtree size), force-directed
// (iterative repulsion/spring-attraction in tangent space), and
// hierarchical (depth-banded tangent-space grid), plus the
// spread/center/compact helpers built from the same exp/log
// composition.
//
// Every algorithm repositions points via pointset.SetPoint and returns
// the history.Record describing what moved, following the same
// apply-in-place-plus-record discipline as package operator (the two
// packages do not import each other; engine composes them).
package layout
