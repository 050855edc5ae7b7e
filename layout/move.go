package layout

import (
	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// movePoint sets point i to coords and returns its MovePoint record,
// or ok=false if coords is within Eps of the point's current position.
func movePoint(ps *pointset.PointSet, i int, coords []float64) (history.Record, bool, error) {
	old := append([]float64(nil), ps.Point(i)...)
	if minkowski.Dist(old, coords) < minkowski.Eps {
		return history.Record{}, false, nil
	}
	if err := ps.SetPoint(i, coords); err != nil {
		return history.Record{}, false, err
	}
	return history.Record{Kind: history.MovePoint, Index: i, OldCoords: old, NewCoords: append([]float64(nil), ps.Point(i)...)}, true, nil
}

func batchOf(children []history.Record) history.Record {
	return history.Record{Kind: history.Batch, Children: children}
}

// movable reports whether point i is eligible to be repositioned by a
// layout pass: live, and neither the root nor PINNED.
func movable(ps *pointset.PointSet, i int) bool {
	return !ps.HasFlag(i, pointset.ROOT) && !ps.HasFlag(i, pointset.PINNED)
}
