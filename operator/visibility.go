package operator

import (
	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// hideFlagBatch toggles HIDDEN on every index in indices whose HIDDEN
// state differs from want, emitting one self-symmetric ToggleFlag
// record per point actually changed (redo re-applies the same XOR,
// undo un-applies it).
func hideFlagBatch(ps *pointset.PointSet, indices []int, want bool) history.Record {
	var children []history.Record
	for _, i := range indices {
		if ps.HasFlag(i, pointset.HIDDEN) == want {
			continue
		}
		ps.ToggleFlag(i, pointset.HIDDEN)
		children = append(children, history.Record{Kind: history.ToggleFlag, Index: i, Flag: pointset.HIDDEN})
	}
	return batchOf(children)
}

// Show clears HIDDEN on every currently selected point.
func Show() Operator {
	return New("show", func(ps *pointset.PointSet) (history.Record, error) {
		return hideFlagBatch(ps, ps.Selected(), false), nil
	})
}

// Hide sets HIDDEN on every currently selected point.
func Hide() Operator {
	return New("hide", func(ps *pointset.PointSet) (history.Record, error) {
		return hideFlagBatch(ps, ps.Selected(), true), nil
	})
}

// PruneByDistance hides every live, non-hidden point farther than
// threshold from focus.
func PruneByDistance(focus []float64, threshold float64) Operator {
	return New("prune_by_distance", func(ps *pointset.PointSet) (history.Record, error) {
		var beyond []int
		for _, i := range ps.Visible() {
			if minkowski.Dist(focus, ps.Point(i)) > threshold {
				beyond = append(beyond, i)
			}
		}
		return hideFlagBatch(ps, beyond, true), nil
	})
}

// PruneByDepth hides every live, non-hidden point deeper than
// maxDepth.
func PruneByDepth(maxDepth int) Operator {
	return New("prune_by_depth", func(ps *pointset.PointSet) (history.Record, error) {
		var deep []int
		for _, i := range ps.Visible() {
			if ps.Depth[i] > maxDepth {
				deep = append(deep, i)
			}
		}
		return hideFlagBatch(ps, deep, true), nil
	})
}
