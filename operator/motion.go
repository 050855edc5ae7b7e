package operator

import (
	"math"

	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// movePoint applies coords to point i on ps and returns the MovePoint
// record, or a zero record with ok=false if coords is within Eps of
// the point's current position (a no-op move records nothing).
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

// batchOf wraps per-point records produced by a motion loop into one
// Batch record (empty if nothing moved).
func batchOf(children []history.Record) history.Record {
	return history.Record{Kind: history.Batch, Children: children}
}

// Translate applies, to every live non-hidden point, the transvection
// sending the origin to target.
func Translate(target []float64) Operator {
	return New("translate", func(ps *pointset.PointSet) (history.Record, error) {
		var children []history.Record
		for _, i := range ps.Visible() {
			out := make([]float64, ps.Stride())
			minkowski.TransvectFromOrigin(out, target, ps.Point(i))
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

// stepToward returns the point reached by moving from p toward target
// by hyperbolic distance step, clamped to target itself once step
// reaches or exceeds the remaining distance.
func stepToward(out, p, target []float64, step float64) {
	d := minkowski.Dist(p, target)
	if d < minkowski.Eps {
		copy(out, p)
		return
	}
	t := step / d
	if t >= 1 {
		t = 1
	}
	minkowski.GeodesicLerp(out, p, target, t)
}

// AttractTo moves every selected point along the geodesic toward
// target by hyperbolic distance step (or exactly to target once step
// covers the remaining distance).
func AttractTo(target []float64, step float64) Operator {
	return New("attract_to", func(ps *pointset.PointSet) (history.Record, error) {
		var children []history.Record
		for _, i := range ps.Selected() {
			if ps.HasFlag(i, pointset.PINNED) {
				continue
			}
			out := make([]float64, ps.Stride())
			stepToward(out, ps.Point(i), target, step)
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

// centroid returns an approximate Fréchet mean of the points at
// indices: the Euclidean average of their ambient coordinates,
// renormalized onto the hyperboloid. Exact only in the limit of a
// tight cluster; adequate for attract_to_centroid's pull target.
func centroid(ps *pointset.PointSet, indices []int) []float64 {
	out := make([]float64, ps.Stride())
	if len(indices) == 0 {
		out[0] = 1
		return out
	}
	for _, i := range indices {
		p := ps.Point(i)
		for k := range out {
			out[k] += p[k]
		}
	}
	n := float64(len(indices))
	for k := range out {
		out[k] /= n
	}
	minkowski.NormalizeHyperboloid(out)
	return out
}

// AttractToCentroid recomputes the centroid of the current selection
// on every call and moves each selected point toward it by step.
func AttractToCentroid(step float64) Operator {
	return New("attract_to_centroid", func(ps *pointset.PointSet) (history.Record, error) {
		sel := ps.Selected()
		c := centroid(ps, sel)
		var children []history.Record
		for _, i := range sel {
			if ps.HasFlag(i, pointset.PINNED) {
				continue
			}
			out := make([]float64, ps.Stride())
			stepToward(out, ps.Point(i), c, step)
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

// RepelFrom moves every selected point by step toward its reflection
// through target — the point at the same distance from target but on
// the opposite side — pushing it away from target.
func RepelFrom(target []float64, step float64) Operator {
	return New("repel_from", func(ps *pointset.PointSet) (history.Record, error) {
		var children []history.Record
		for _, i := range ps.Selected() {
			if ps.HasFlag(i, pointset.PINNED) {
				continue
			}
			p := ps.Point(i)
			tangent := make([]float64, ps.Stride())
			minkowski.Log(tangent, target, p)
			for k := range tangent {
				tangent[k] = -tangent[k]
			}
			reflected := make([]float64, ps.Stride())
			minkowski.Exp(reflected, target, tangent)

			out := make([]float64, ps.Stride())
			stepToward(out, p, reflected, step)
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

// RotateAround rotates every selected point by theta radians in the
// (axisI, axisJ) spatial plane about center: center is moved to the
// origin, the rotation is applied there, and the result is moved back.
func RotateAround(center []float64, axisI, axisJ int, theta float64) Operator {
	return New("rotate_around", func(ps *pointset.PointSet) (history.Record, error) {
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		scratch := make([]float64, ps.Stride())
		origin := make([]float64, ps.Stride())
		var children []history.Record
		for _, i := range ps.Selected() {
			if ps.HasFlag(i, pointset.PINNED) {
				continue
			}
			minkowski.TransvectToOrigin(origin, center, ps.Point(i), scratch)
			xi, xj := origin[axisI], origin[axisJ]
			origin[axisI] = xi*cosT - xj*sinT
			origin[axisJ] = xi*sinT + xj*cosT
			minkowski.NormalizeHyperboloid(origin)

			out := make([]float64, ps.Stride())
			minkowski.TransvectFromOrigin(out, center, origin)
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
