package chart

import (
	"sort"

	"github.com/uprootiny/umbra-sub002/field"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// Viewport is the screen-space rectangle and chart-to-screen affine
// transform a Lens projects into.
type Viewport struct {
	Width, Height      float64
	Scale              float64
	OffsetX, OffsetY   float64
}

// Aperture bounds the hyperbolic distance range from focus within which
// points are considered visible.
type Aperture struct {
	Near, Far float64
}

// Lens composes a Chart with a focus point, viewport, aperture, and LOD
// thresholds — the complete state needed to turn a PointSet into screen
// coordinates and LOD buckets. Grounded on phanxgames-willow's Camera
// (focus/viewport), generalized from Euclidean affine to hyperbolic
// chart projection; the Lens keeps no dirty flag or cached view state.
type Lens struct {
	Chart         Chart
	Focus         []float64 // length dim+1
	Viewport      Viewport
	Aperture      Aperture
	LODThresholds [3]float64 // t1 < t2 < t3
	Dim           int
}

// New constructs a Lens for hyperbolic dimension dim, anchored at
// origin, with the given chart (already positioned), viewport and
// aperture.
func New(dim int, c Chart, vp Viewport, ap Aperture, lod [3]float64) *Lens {
	focus := make([]float64, dim+1)
	focus[0] = 1
	c.SetBasepoint(focus)
	return &Lens{Chart: c, Focus: focus, Viewport: vp, Aperture: ap, LODThresholds: lod, Dim: dim}
}

// SetFocus moves the lens's focus to p, re-anchoring the chart's
// basepoint (a no-op for charts that ignore basepoints).
func (l *Lens) SetFocus(p []float64) {
	copy(l.Focus, p)
	l.Chart.SetBasepoint(l.Focus)
}

// PointVisible reports whether p falls within [Near, Far] of Focus.
func (l *Lens) PointVisible(p []float64) bool {
	d := minkowski.Dist(l.Focus, p)
	return d >= l.Aperture.Near && d <= l.Aperture.Far
}

// LODOf returns the level-of-detail bucket for distance d: 0 if
// d<t1, 1 if d<t2, 2 if d<t3, else 3 (culled). Monotone step function.
func (l *Lens) LODOf(d float64) int {
	switch {
	case d < l.LODThresholds[0]:
		return 0
	case d < l.LODThresholds[1]:
		return 1
	case d < l.LODThresholds[2]:
		return 2
	default:
		return 3
	}
}

// ChartToScreen maps chart coordinates to screen coordinates using the
// viewport's scale/offset, centered in the viewport.
func (l *Lens) ChartToScreen(cx, cy float64) (sx, sy float64) {
	sx = l.Viewport.Width/2 + l.Viewport.OffsetX + l.Viewport.Scale*cx
	sy = l.Viewport.Height/2 + l.Viewport.OffsetY + l.Viewport.Scale*cy
	return
}

// ScreenToChart is the inverse of ChartToScreen.
func (l *Lens) ScreenToChart(sx, sy float64) (cx, cy float64) {
	cx = (sx - l.Viewport.Width/2 - l.Viewport.OffsetX) / l.Viewport.Scale
	cy = (sy - l.Viewport.Height/2 - l.Viewport.OffsetY) / l.Viewport.Scale
	return
}

// Projected is one point's projection result from ProjectPoints.
type Projected struct {
	Idx              int
	ScreenX, ScreenY float64
	ChartX, ChartY   float64
	Dist             float64
	LOD              int
	Priority         float64
}

// ProjectPoints projects every visible, in-aperture point of ps,
// sorted by descending priority (priority returns 0 for every index if
// nil).
func (l *Lens) ProjectPoints(ps *pointset.PointSet, priority func(idx int) float64) []Projected {
	out := make([]Projected, 0, ps.Count())
	for _, i := range ps.Visible() {
		p := ps.Point(i)
		if !l.PointVisible(p) {
			continue
		}
		cx, cy := l.Chart.Project(p)
		sx, sy := l.ChartToScreen(cx, cy)
		d := minkowski.Dist(l.Focus, p)
		pr := 0.0
		if priority != nil {
			pr = priority(i)
		}
		out = append(out, Projected{
			Idx: i, ScreenX: sx, ScreenY: sy, ChartX: cx, ChartY: cy,
			Dist: d, LOD: l.LODOf(d), Priority: pr,
		})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Priority > out[b].Priority })
	return out
}

// UnprojectScreen converts a screen coordinate back to a manifold point
// via screen->chart->manifold, for charts that support inversion. ok is
// false if the chart cannot invert.
func (l *Lens) UnprojectScreen(sx, sy float64) (point []float64, ok bool) {
	if !l.Chart.SupportsUnproject() {
		return nil, false
	}
	cx, cy := l.ScreenToChart(sx, sy)
	out := make([]float64, l.Dim+1)
	if !l.Chart.Unproject(out, cx, cy) {
		return nil, false
	}
	return out, true
}

// Pan moves the focus by a screen-space delta: converts (dx, dy) to a
// chart-space delta, builds the corresponding tangent vector at Focus
// (using the tangent chart's axis convention when Chart is Tangent; for
// Poincare/Klein charts the delta is interpreted in the first two
// spatial axes), and applies Exp. Pan by zero is the identity.
func (l *Lens) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	cdx := dx / l.Viewport.Scale
	cdy := dy / l.Viewport.Scale
	v := make([]float64, l.Dim+1)
	if t, ok := l.Chart.(*Tangent); ok {
		v[t.AxisI] = cdx
		v[t.AxisJ] = cdy
	} else {
		v[1] = cdx
		if l.Dim > 1 {
			v[2] = cdy
		}
	}
	minkowski.TangentProject(v, l.Focus, v)
	next := make([]float64, l.Dim+1)
	minkowski.Exp(next, l.Focus, v)
	l.SetFocus(next)
}

// SampleDensityGrid samples f at a resolution x resolution grid of
// tangent coordinates around Focus (in the tangent chart's basis axes
// when Chart is Tangent, axes 1,2 otherwise), exponentiating each grid
// coordinate to a manifold point before evaluating density, per
// spec.md §4.3.
func (l *Lens) SampleDensityGrid(f *field.Field, resolution int, halfExtent float64) ([]float32, error) {
	axisI, axisJ := 1, 2
	if t, ok := l.Chart.(*Tangent); ok {
		axisI, axisJ = t.AxisI, t.AxisJ
	}
	out := make([]float32, resolution*resolution)
	err := f.SampleGrid(out, resolution, halfExtent, func(cx, cy float64, o []float64) {
		v := make([]float64, l.Dim+1)
		v[axisI] = cx
		v[axisJ] = cy
		minkowski.TangentProject(v, l.Focus, v)
		minkowski.Exp(o, l.Focus, v)
	}, l.Dim)
	return out, err
}
