package operator

import (
	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// Attach reparents child under parent.
func Attach(child, parent int) Operator {
	return New("attach", func(ps *pointset.PointSet) (history.Record, error) {
		oldParent, oldDepth, err := ps.Reparent(child, parent)
		if err != nil {
			return history.Record{}, err
		}
		return history.Record{
			Kind: history.Reparent, Index: child,
			OldParent: oldParent, NewParent: parent,
			OldDepth: oldDepth, NewDepth: ps.Depth[child],
		}, nil
	})
}

// Detach makes i a root.
func Detach(i int) Operator {
	return New("detach", func(ps *pointset.PointSet) (history.Record, error) {
		oldParent, oldDepth, err := ps.Detach(i)
		if err != nil {
			return history.Record{}, err
		}
		return history.Record{
			Kind: history.Reparent, Index: i,
			OldParent: oldParent, NewParent: -1,
			OldDepth: oldDepth, NewDepth: ps.Depth[i],
		}, nil
	})
}

// FoldSubtreeOp hides and marks FOLDED every descendant of i.
func FoldSubtreeOp(i int) Operator {
	return New("fold_subtree", func(ps *pointset.PointSet) (history.Record, error) {
		affected := ps.FoldSubtree(i)
		return history.Record{Kind: history.FoldSubtree, Index: i, Affected: affected}, nil
	})
}

// UnfoldSubtreeOp clears HIDDEN|FOLDED on i's previously-folded
// descendants.
func UnfoldSubtreeOp(i int) Operator {
	return New("unfold_subtree", func(ps *pointset.PointSet) (history.Record, error) {
		affected := ps.UnfoldSubtree(i)
		return history.Record{Kind: history.UnfoldSubtree, Index: i, Affected: affected}, nil
	})
}
