package anim

import (
	"github.com/uprootiny/umbra-sub002/chart"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// GeodesicFocusAnimation captures the lens's focus at construction time
// and, per frame, interpolates toward target along the geodesic joining
// them, calling lens.SetFocus with the eased intermediate point.
type GeodesicFocusAnimation struct {
	Task
	lens    *chart.Lens
	start   []float64
	target  []float64
	current []float64
}

// NewGeodesicFocusAnimation builds an animation that moves lens's focus
// from its current position to target over duration seconds.
func NewGeodesicFocusAnimation(lens *chart.Lens, target []float64, duration float64, easing Easing) *GeodesicFocusAnimation {
	a := &GeodesicFocusAnimation{
		lens:    lens,
		start:   append([]float64(nil), lens.Focus...),
		target:  append([]float64(nil), target...),
		current: make([]float64, len(lens.Focus)),
	}
	a.Task = Task{Duration: duration, Easing: easing}
	a.Task.OnUpdate = func(t float64) {
		minkowski.GeodesicLerp(a.current, a.start, a.target, t)
		a.lens.SetFocus(a.current)
	}
	return a
}

// GeodesicPointAnimation is GeodesicFocusAnimation's twin for a
// PointSet point's own coordinates instead of a lens's focus.
type GeodesicPointAnimation struct {
	Task
	ps      *pointset.PointSet
	idx     int
	start   []float64
	target  []float64
	current []float64
}

// NewGeodesicPointAnimation builds an animation that moves point idx
// from its current position to target over duration seconds, writing
// through ps.SetPoint each frame.
func NewGeodesicPointAnimation(ps *pointset.PointSet, idx int, target []float64, duration float64, easing Easing) *GeodesicPointAnimation {
	a := &GeodesicPointAnimation{
		ps:      ps,
		idx:     idx,
		start:   append([]float64(nil), ps.Point(idx)...),
		target:  append([]float64(nil), target...),
		current: make([]float64, ps.Stride()),
	}
	a.Task = Task{Duration: duration, Easing: easing}
	a.Task.OnUpdate = func(t float64) {
		minkowski.GeodesicLerp(a.current, a.start, a.target, t)
		_ = a.ps.SetPoint(a.idx, a.current)
	}
	return a
}
