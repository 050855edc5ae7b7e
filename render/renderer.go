package render

import (
	"sort"
	"time"

	"github.com/uprootiny/umbra-sub002/chart"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// Clock abstracts the wall clock so tests can inject determinism (spec.md
// §9 "explicit monotonic clock abstraction").
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Renderer ties a PointSet and Lens to a Batch, tracking per-point dirty
// bits and the previous frame's duration for budget-driven degradation.
type Renderer struct {
	PS    *pointset.PointSet
	Lens  *chart.Lens
	Batch *Batch

	dirty      []DirtyBit
	dirtyCount int

	Clock       Clock
	lastFrameMs float64
}

// NewRenderer constructs a Renderer with room for maxPoints live points,
// all initially dirty (so the first ProjectBatch call projects
// everything).
func NewRenderer(ps *pointset.PointSet, lens *chart.Lens, maxPoints int) *Renderer {
	dirty := make([]DirtyBit, maxPoints)
	for i := range dirty {
		dirty[i] = COORDS | VISIBLE | PROJECTED | STYLE
	}
	return &Renderer{
		PS:         ps,
		Lens:       lens,
		Batch:      NewBatch(maxPoints),
		dirty:      dirty,
		dirtyCount: maxPoints,
		Clock:      realClock{},
	}
}

// MarkDirty sets flags on point i's dirty bits, incrementing the dirty
// count if i was previously clean.
func (r *Renderer) MarkDirty(i int, flags DirtyBit) {
	if r.dirty[i] == 0 && flags != 0 {
		r.dirtyCount++
	}
	r.dirty[i] |= flags
}

// MarkClean clears point i's dirty bits, decrementing the dirty count if
// it was previously dirty.
func (r *Renderer) MarkClean(i int) {
	if r.dirty[i] != 0 {
		r.dirtyCount--
	}
	r.dirty[i] = 0
}

// DirtyCount returns the number of points with at least one dirty bit
// set.
func (r *Renderer) DirtyCount() int { return r.dirtyCount }

// ProjectBatch projects every live point that is dirty or that
// incremental is false for, writing results into r.Batch in index
// order. Points whose distance to the lens focus falls outside the
// aperture are assigned LOD 3 (culled) and excluded from
// RenderOrder/edges but still occupy their Batch slot. Returns whether
// any point was (re)projected.
func (r *Renderer) ProjectBatch(incremental bool) bool {
	start := r.Clock.Now()
	projectedAny := false
	projected, culled := 0, 0

	n := r.PS.Count()
	for i := 0; i < n; i++ {
		if r.PS.HasFlag(i, pointset.HIDDEN) {
			continue
		}
		if incremental && r.dirty[i] == 0 {
			continue
		}
		p := r.PS.Point(i)
		d := minkowski.Dist(r.Lens.Focus, p)
		var lod int
		if !r.Lens.PointVisible(p) {
			lod = 3
			culled++
		} else {
			lod = r.Lens.LODOf(d)
			cx, cy := r.Lens.Chart.Project(p)
			sx, sy := r.Lens.ChartToScreen(cx, cy)
			r.Batch.ScreenX[i] = sx
			r.Batch.ScreenY[i] = sy
			projected++
		}
		r.Batch.LOD[i] = lod
		r.Batch.Radius[i] = RadiusByLOD[lod]
		r.Batch.Depth[i] = r.PS.Depth[i]
		r.Batch.Flags[i] = r.PS.Flags[i]
		r.MarkClean(i)
		projectedAny = true
	}

	r.Batch.Stats.Projected = projected
	r.Batch.Stats.Culled = culled
	r.lastFrameMs = float64(r.Clock.Now().Sub(start).Microseconds()) / 1000.0
	r.Batch.Stats.FrameTimeMs = r.lastFrameMs
	return projectedAny
}

// SortRenderOrder builds RenderOrder as a stable permutation of live,
// non-hidden point indices ordered by (LOD ascending, Depth descending)
// — far-first painter's algorithm within each LOD bucket — and records
// each bucket's [start, count) in LODGroups.
func (r *Renderer) SortRenderOrder() {
	order := r.Batch.RenderOrder[:0]
	n := r.PS.Count()
	for i := 0; i < n; i++ {
		if !r.PS.HasFlag(i, pointset.HIDDEN) {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if r.Batch.LOD[ia] != r.Batch.LOD[ib] {
			return r.Batch.LOD[ia] < r.Batch.LOD[ib]
		}
		return r.Batch.Depth[ia] > r.Batch.Depth[ib]
	})
	r.Batch.RenderOrder = order
	r.Batch.RenderCount = len(order)

	var groups [4]LODGroup
	pos := 0
	for lod := 0; lod < 4; lod++ {
		start := pos
		for pos < len(order) && r.Batch.LOD[order[pos]] == lod {
			pos++
		}
		groups[lod] = LODGroup{Start: start, Count: pos - start}
	}
	r.Batch.LODGroups = groups
}

// ProjectEdges emits (screen_x1,y1,x2,y2) for every live, non-hidden
// point with a parent, skipping any edge where either endpoint is LOD 3
// (culled).
func (r *Renderer) ProjectEdges() {
	n := r.PS.Count()
	r.Batch.Edges.reset(n)
	for i := 0; i < n; i++ {
		if r.PS.HasFlag(i, pointset.HIDDEN) {
			continue
		}
		parent := r.PS.Parent[i]
		if parent < 0 || r.PS.HasFlag(parent, pointset.HIDDEN) {
			continue
		}
		if r.Batch.LOD[i] == 3 || r.Batch.LOD[parent] == 3 {
			continue
		}
		r.Batch.Edges.push(r.Batch.ScreenX[parent], r.Batch.ScreenY[parent], r.Batch.ScreenX[i], r.Batch.ScreenY[i])
	}
}

// NextFrameBudget returns the degradation policy for the upcoming frame,
// based on the previous frame's recorded duration.
func (r *Renderer) NextFrameBudget() FrameBudget {
	return ComputeFrameBudget(r.lastFrameMs)
}

// LastFrameMs returns the duration, in milliseconds, of the most recent
// ProjectBatch call.
func (r *Renderer) LastFrameMs() float64 { return r.lastFrameMs }
