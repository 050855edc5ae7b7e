package layout

import (
	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// HierarchicalOptions configures the depth-banded grid layout.
type HierarchicalOptions struct {
	LevelSpacing float64 // default 1.0, vertical (axis AxisY) gap per depth
	NodeSpacing  float64 // default 1.0, horizontal (axis AxisX) gap within a level
	AxisX        int     // default 1
	AxisY        int     // default 2
}

func (o HierarchicalOptions) normalized() HierarchicalOptions {
	if o.LevelSpacing <= 0 {
		o.LevelSpacing = 1
	}
	if o.NodeSpacing <= 0 {
		o.NodeSpacing = 1
	}
	if o.AxisX == 0 && o.AxisY == 0 {
		o.AxisX, o.AxisY = 1, 2
	}
	return o
}

// Hierarchical groups points by tree depth and places each depth on a
// tangent-space line y = depth*level_spacing, x proportional to the
// point's position within its level, exponentiated from root.
func Hierarchical(ps *pointset.PointSet, root int, opts HierarchicalOptions) (history.Record, error) {
	opts = opts.normalized()
	var children []history.Record

	maxDepth := 0
	for _, i := range ps.Descendants(root) {
		if ps.Depth[i] > maxDepth {
			maxDepth = ps.Depth[i]
		}
	}

	for d := 1; d <= maxDepth; d++ {
		level := ps.AtDepth(d)
		n := len(level)
		if n == 0 {
			continue
		}
		y := float64(d) * opts.LevelSpacing
		for k, i := range level {
			if !movable(ps, i) {
				continue
			}
			x := (float64(k) - float64(n-1)/2) * opts.NodeSpacing
			tangent := make([]float64, ps.Stride())
			tangent[opts.AxisX] = x
			tangent[opts.AxisY] = y
			out := make([]float64, ps.Stride())
			minkowski.Exp(out, ps.Point(root), tangent)
			rec, ok, err := movePoint(ps, i, out)
			if err != nil {
				return history.Record{}, err
			}
			if ok {
				children = append(children, rec)
			}
		}
	}

	return batchOf(children), nil
}
