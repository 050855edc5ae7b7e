package layout

import (
	"math"
	"sort"

	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// SpreadChildren fans i's direct children evenly around i at the given
// radius, preserving each child's current angular order (by current
// tangent-plane angle) rather than imposing subtree-size weighting —
// unlike Radial, every child gets an equal angular share.
func SpreadChildren(ps *pointset.PointSet, i int, radius float64, axisI, axisJ int) (history.Record, error) {
	kids := ps.Children(i)
	if len(kids) == 0 {
		return batchOf(nil), nil
	}
	if axisI == 0 && axisJ == 0 {
		axisI, axisJ = 1, 2
	}

	var children []history.Record
	step := 2 * math.Pi / float64(len(kids))
	dir := make([]float64, ps.Stride())
	angles := make([]float64, len(kids))
	order := make([]int, len(kids))
	for k, c := range kids {
		minkowski.LogDirection(dir, ps.Point(i), ps.Point(c))
		angles[k] = math.Atan2(dir[axisJ], dir[axisI])
		if dir[axisI] == 0 && dir[axisJ] == 0 {
			angles[k] = float64(k) * step
		}
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool { return angles[order[a]] < angles[order[b]] })
	for rank, k := range order {
		c := kids[k]
		if !movable(ps, c) {
			continue
		}
		angle := angles[order[0]] + float64(rank)*step
		raw := make([]float64, ps.Stride())
		raw[axisI] = radius * math.Cos(angle)
		raw[axisJ] = radius * math.Sin(angle)
		tangent := make([]float64, ps.Stride())
		minkowski.TangentProject(tangent, ps.Point(i), raw)
		out := make([]float64, ps.Stride())
		minkowski.Exp(out, ps.Point(i), tangent)
		rec, ok, err := movePoint(ps, c, out)
		if err != nil {
			return history.Record{}, err
		}
		if ok {
			children = append(children, rec)
		}
	}
	return batchOf(children), nil
}

// CenterOnRoot translates the whole tree so that root lands on the
// ambient origin, by transvecting every visible point from root to the
// origin of ps's hyperboloid.
func CenterOnRoot(ps *pointset.PointSet, root int) (history.Record, error) {
	stride := ps.Stride()
	origin := make([]float64, stride)
	origin[0] = 1
	if minkowski.Dist(ps.Point(root), origin) < minkowski.Eps {
		return batchOf(nil), nil
	}

	var children []history.Record
	pInv := make([]float64, stride)
	out := make([]float64, stride)
	for _, i := range ps.Visible() {
		if i == root {
			continue
		}
		if !movable(ps, i) {
			continue
		}
		minkowski.TransvectToOrigin(out, ps.Point(root), ps.Point(i), pInv)
		rec, ok, err := movePoint(ps, i, out)
		if err != nil {
			return history.Record{}, err
		}
		if ok {
			children = append(children, rec)
		}
	}

	rootOut := append([]float64(nil), origin...)
	rec, ok, err := movePoint(ps, root, rootOut)
	if err != nil {
		return history.Record{}, err
	}
	if ok {
		children = append(children, rec)
	}

	return batchOf(children), nil
}

// CompactCluster pulls each movable point of indices toward the centroid
// of indices by fraction step (0 < step <= 1) of its current distance, tightening
// the cluster without collapsing it in one move.
func CompactCluster(ps *pointset.PointSet, indices []int, step float64) (history.Record, error) {
	if len(indices) == 0 {
		return batchOf(nil), nil
	}
	stride := ps.Stride()
	sum := make([]float64, stride)
	for _, i := range indices {
		p := ps.Point(i)
		for k := range sum {
			sum[k] += p[k]
		}
	}
	for k := range sum {
		sum[k] /= float64(len(indices))
	}
	minkowski.NormalizeHyperboloid(sum)

	var children []history.Record
	tangent := make([]float64, stride)
	out := make([]float64, stride)
	for _, i := range indices {
		if !movable(ps, i) {
			continue
		}
		minkowski.LogDirection(tangent, ps.Point(i), sum)
		d := minkowski.Dist(ps.Point(i), sum)
		for k := range tangent {
			tangent[k] *= d * step
		}
		minkowski.Exp(out, ps.Point(i), tangent)
		rec, ok, err := movePoint(ps, i, out)
		if err != nil {
			return history.Record{}, err
		}
		if ok {
			children = append(children, rec)
		}
	}
	return batchOf(children), nil
}
