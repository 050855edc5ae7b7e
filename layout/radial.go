package layout

import (
	"math"

	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// RadialOptions configures the Radial layout.
type RadialOptions struct {
	EdgeLength float64 // base edge length at depth 0
	AxisI      int     // first tangent axis spanning the angular plane (default 1)
	AxisJ      int     // second tangent axis (default 2)
}

func (o RadialOptions) normalized() RadialOptions {
	if o.EdgeLength <= 0 {
		o.EdgeLength = 1
	}
	if o.AxisI == 0 && o.AxisJ == 0 {
		o.AxisI, o.AxisJ = 1, 2
	}
	return o
}

// Radial lays out the subtree rooted at root in concentric rings: each
// parent's angular budget is split among its children proportional to
// subtree size, and each child is placed by exponentiating a tangent
// vector of length edge_length/(1+0.2*depth) at angle within the
// parent's slice.
func Radial(ps *pointset.PointSet, root int, opts RadialOptions) (history.Record, error) {
	opts = opts.normalized()
	var children []history.Record

	type job struct {
		idx        int
		angleStart float64
		angleSpan  float64
		depth      int
	}
	queue := []job{{idx: root, angleStart: 0, angleSpan: 2 * math.Pi, depth: 0}}

	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]

		kids := ps.Children(j.idx)
		if len(kids) == 0 {
			continue
		}

		weights := make([]float64, len(kids))
		total := 0.0
		for k, c := range kids {
			w := float64(1 + len(ps.Descendants(c)))
			weights[k] = w
			total += w
		}

		depth := j.depth + 1
		radius := opts.EdgeLength / (1 + 0.2*float64(depth))
		angle := j.angleStart
		for k, c := range kids {
			span := j.angleSpan * weights[k] / total
			mid := angle + span/2
			angle += span

			if movable(ps, c) {
				raw := make([]float64, ps.Stride())
				raw[opts.AxisI] = radius * math.Cos(mid)
				raw[opts.AxisJ] = radius * math.Sin(mid)
				tangent := make([]float64, ps.Stride())
				minkowski.TangentProject(tangent, ps.Point(j.idx), raw)
				out := make([]float64, ps.Stride())
				minkowski.Exp(out, ps.Point(j.idx), tangent)
				rec, ok, err := movePoint(ps, c, out)
				if err != nil {
					return history.Record{}, err
				}
				if ok {
					children = append(children, rec)
				}
			}

			queue = append(queue, job{idx: c, angleStart: mid - j.angleSpan*weights[k]/total/2, angleSpan: span, depth: depth})
		}
	}

	return batchOf(children), nil
}
