package operator

import (
	"math"

	"github.com/uprootiny/umbra-sub002/field"
	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// GradientFlow moves every selected, unpinned point by step along f's
// density gradient at that point (toward higher density; negate step
// to spread instead of cluster). A point whose local gradient
// magnitude is below minkowski.Eps is left untouched — flowing a flat
// region would otherwise jitter it by floating noise alone.
func GradientFlow(f *field.Field, step float64) Operator {
	return New("gradient_flow", func(ps *pointset.PointSet) (history.Record, error) {
		var children []history.Record
		grad := make([]float64, ps.Stride())
		for _, i := range ps.Selected() {
			if ps.HasFlag(i, pointset.PINNED) {
				continue
			}
			p := ps.Point(i)
			f.Gradient(grad, p)
			if math.Sqrt(minkowski.SpatialNormSq(grad)) < minkowski.Eps {
				continue
			}
			out := make([]float64, ps.Stride())
			minkowski.ExpT(out, p, grad, step)
			r, ok, err := movePoint(ps, i, out)
			if err != nil {
				return history.Record{}, err
			}
			if ok {
				children = append(children, r)
			}
		}
		return batchOf(children), nil
	})
}
