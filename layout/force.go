package layout

import (
	"math"

	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// ForceDirectedOptions configures the iterative force-directed layout.
type ForceDirectedOptions struct {
	MaxIterations   int     // default 50
	RepulsionCutoff float64 // default 5.0, pairs farther apart exert no repulsion
	TargetEdgeLen   float64 // default 1.0, spring rest length along edges
	ForceCap        float64 // default 0.3, per-node per-step tangent force magnitude cap
	Damping         float64 // default 0.9
	Tolerance       float64 // default 1e-3, convergence threshold on total force magnitude
}

func (o ForceDirectedOptions) normalized() ForceDirectedOptions {
	if o.MaxIterations <= 0 {
		o.MaxIterations = 50
	}
	if o.RepulsionCutoff <= 0 {
		o.RepulsionCutoff = 5.0
	}
	if o.TargetEdgeLen <= 0 {
		o.TargetEdgeLen = 1.0
	}
	if o.ForceCap <= 0 {
		o.ForceCap = 0.3
	}
	if o.Damping <= 0 {
		o.Damping = 0.9
	}
	if o.Tolerance <= 0 {
		o.Tolerance = 1e-3
	}
	return o
}

// edge pairs a node with its parent for spring-attraction purposes.
type edge struct{ u, v int }

// ForceDirected iterates repulsion/spring forces over the visible
// points of ps until total force magnitude falls below tolerance or
// max_iterations is reached, returning a Batch of every MovePoint that
// occurred across all iterations.
func ForceDirected(ps *pointset.PointSet, opts ForceDirectedOptions) (history.Record, error) {
	opts = opts.normalized()
	nodes := ps.Visible()
	if len(nodes) < 2 {
		return batchOf(nil), nil
	}

	edges := make([]edge, 0, len(nodes))
	for _, i := range nodes {
		p := ps.Parent[i]
		if p >= 0 && !ps.HasFlag(p, pointset.HIDDEN) {
			edges = append(edges, edge{u: i, v: p})
		}
	}

	stride := ps.Stride()
	force := make(map[int][]float64, len(nodes))
	for _, i := range nodes {
		force[i] = make([]float64, stride)
	}

	var allChildren []history.Record
	dir := make([]float64, stride)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		for _, f := range force {
			for k := range f {
				f[k] = 0
			}
		}

		for a := 0; a < len(nodes); a++ {
			for b := a + 1; b < len(nodes); b++ {
				i, j := nodes[a], nodes[b]
				d := ps.Distance(i, j)
				if d < minkowski.Eps || d > opts.RepulsionCutoff {
					continue
				}
				mag := 1 / (d * d)
				minkowski.LogDirection(dir, ps.Point(i), ps.Point(j))
				for k := range force[i] {
					force[i][k] -= mag * dir[k]
				}
				minkowski.LogDirection(dir, ps.Point(j), ps.Point(i))
				for k := range force[j] {
					force[j][k] -= mag * dir[k]
				}
			}
		}

		for _, e := range edges {
			d := ps.Distance(e.u, e.v)
			mag := d - opts.TargetEdgeLen
			minkowski.LogDirection(dir, ps.Point(e.u), ps.Point(e.v))
			for k := range force[e.u] {
				force[e.u][k] += mag * dir[k]
			}
			minkowski.LogDirection(dir, ps.Point(e.v), ps.Point(e.u))
			for k := range force[e.v] {
				force[e.v][k] += mag * dir[k]
			}
		}

		total := 0.0
		var iterChildren []history.Record
		for _, i := range nodes {
			f := force[i]
			mag := 0.0
			for _, v := range f {
				mag += v * v
			}
			mag = math.Sqrt(mag)
			total += mag
			if !movable(ps, i) || mag < minkowski.Eps {
				continue
			}
			capped := mag
			if capped > opts.ForceCap {
				capped = opts.ForceCap
			}
			capped *= opts.Damping

			out := make([]float64, stride)
			scaled := make([]float64, stride)
			for k, v := range f {
				scaled[k] = v / mag * capped
			}
			minkowski.Exp(out, ps.Point(i), scaled)

			rec, ok, err := movePoint(ps, i, out)
			if err != nil {
				return history.Record{}, err
			}
			if ok {
				iterChildren = append(iterChildren, rec)
			}
		}

		allChildren = append(allChildren, iterChildren...)
		if total < opts.Tolerance {
			break
		}
	}

	return batchOf(allChildren), nil
}
