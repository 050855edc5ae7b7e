package engine

import (
	"github.com/uprootiny/umbra-sub002/chart"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
	"github.com/uprootiny/umbra-sub002/render"
)

// CreateBatchRenderer allocates a Renderer for psID, projecting through
// the currently active lens, with room for maxPoints live points.
func (e *Engine) CreateBatchRenderer(psID string, maxPoints int) (string, *EngineError) {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return "", e.logErr(eerr)
	}
	l, eerr := e.lens(e.activeLens)
	if eerr != nil {
		return "", e.logErr(newErr(NotFound, "create_batch_renderer", nil))
	}
	rid := e.nextIDFor("r")
	e.renderers[rid] = &rendererEntry{renderer: render.NewRenderer(pe.ps, l, maxPoints), psID: psID}
	return rid, nil
}

func (e *Engine) rendererEntry(rid string) (*rendererEntry, *EngineError) {
	re, ok := e.renderers[rid]
	if !ok {
		return nil, newErr(NotFound, "renderer", nil)
	}
	return re, nil
}

// UpdateBatch re-projects rid's dirty points and rebuilds its render
// order and edge set, applying the current frame budget's degradation.
// Returns whether anything was (re)projected.
func (e *Engine) UpdateBatch(rid string) (bool, *EngineError) {
	re, err := e.rendererEntry(rid)
	if err != nil {
		return false, e.logErr(newErr(NotFound, "update_batch", nil))
	}
	budget := re.renderer.NextFrameBudget()
	changed := re.renderer.ProjectBatch(true)
	re.renderer.SortRenderOrder()
	if budget.EdgeLimit != 0 {
		re.renderer.ProjectEdges()
	}
	return changed, nil
}

// GetBatchStats returns rid's most recent projection pass summary.
func (e *Engine) GetBatchStats(rid string) (render.Stats, *EngineError) {
	re, err := e.rendererEntry(rid)
	if err != nil {
		return render.Stats{}, e.logErr(newErr(NotFound, "get_batch_stats", nil))
	}
	return re.renderer.Batch.Stats, nil
}

// ProjectForRender projects every visible, in-aperture point of psID
// through the active lens, sorted by descending priority (LOD
// ascending then distance ascending within a bucket).
func (e *Engine) ProjectForRender(psID string) ([]chart.Projected, *EngineError) {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return nil, e.logErr(eerr)
	}
	l, eerr := e.lens(e.activeLens)
	if eerr != nil {
		return nil, e.logErr(newErr(NotFound, "project_for_render", nil))
	}
	return l.ProjectPoints(pe.ps, func(idx int) float64 {
		return -minkowski.Dist(l.Focus, pe.ps.Point(idx))
	}), nil
}

// ProjectedEdge is one parent->child edge projected for rendering,
// optionally sampled along the geodesic rather than drawn as a single
// chord.
type ProjectedEdge struct {
	Parent, Child int
	Samples       [][2]float64 // chart (x,y) pairs, endpoints inclusive
}

// ProjectEdges emits every parent->child edge of psID with both
// endpoints at LOD < 3 through the active lens. When sampleGeodesics is
// true each edge carries interior samples along its geodesic (via
// minkowski.GeodesicLerp) instead of just its two endpoints, so curved
// charts (Poincare, Klein) can render a faithful curve rather than a
// straight chord.
func (e *Engine) ProjectEdges(psID string, sampleGeodesics bool) ([]ProjectedEdge, *EngineError) {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return nil, e.logErr(eerr)
	}
	l, eerr := e.lens(e.activeLens)
	if eerr != nil {
		return nil, e.logErr(newErr(NotFound, "project_edges", nil))
	}

	const samplesPerEdge = 8
	var out []ProjectedEdge
	for _, i := range pe.ps.Visible() {
		parent := pe.ps.Parent[i]
		if parent < 0 || pe.ps.HasFlag(parent, pointset.HIDDEN) {
			continue
		}
		pp, cp := pe.ps.Point(parent), pe.ps.Point(i)
		if !l.PointVisible(pp) || !l.PointVisible(cp) ||
			l.LODOf(minkowski.Dist(l.Focus, pp)) >= 3 || l.LODOf(minkowski.Dist(l.Focus, cp)) >= 3 {
			continue
		}

		edge := ProjectedEdge{Parent: parent, Child: i}
		if !sampleGeodesics {
			x1, y1 := l.Chart.Project(pp)
			x2, y2 := l.Chart.Project(cp)
			edge.Samples = [][2]float64{{x1, y1}, {x2, y2}}
		} else {
			pt := make([]float64, pe.ps.Stride())
			edge.Samples = make([][2]float64, 0, samplesPerEdge+1)
			for s := 0; s <= samplesPerEdge; s++ {
				t := float64(s) / float64(samplesPerEdge)
				minkowski.GeodesicLerp(pt, pp, cp, t)
				x, y := l.Chart.Project(pt)
				edge.Samples = append(edge.Samples, [2]float64{x, y})
			}
		}
		out = append(out, edge)
	}
	return out, nil
}
