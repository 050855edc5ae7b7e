package engine

import (
	"math"

	"github.com/uprootiny/umbra-sub002/chart"
)

const (
	zoomScaleMin = 10.0
	zoomScaleMax = 1000.0
)

// CreateLens registers a new Lens under key, anchored at its point
// set's origin until SetLensFocus moves it. Not itself one of spec.md
// §6's named entry points, but the natural prerequisite every other
// Lens method needs — a registry lenses are created into before
// set_active_lens selects one.
func (e *Engine) CreateLens(key string, c chart.Chart, vp chart.Viewport, ap chart.Aperture, lod [3]float64) {
	e.lenses[key] = chart.New(e.dim, c, vp, ap, lod)
	if e.activeLens == "" {
		e.activeLens = key
	}
}

func (e *Engine) lens(key string) (*chart.Lens, *EngineError) {
	l, ok := e.lenses[key]
	if !ok {
		return nil, newErr(NotFound, "lens", nil)
	}
	return l, nil
}

// SetActiveLens selects key as the lens render/query operations that
// don't take an explicit lens key (ProjectForRender, PickAtScreen, ...)
// resolve against.
func (e *Engine) SetActiveLens(key string) *EngineError {
	if _, err := e.lens(key); err != nil {
		return e.logErr(newErr(NotFound, "set_active_lens", nil))
	}
	e.activeLens = key
	return nil
}

// SetLensFocus moves lens key's focus to point set psID's point idx.
func (e *Engine) SetLensFocus(key, psID string, idx int) *EngineError {
	l, eerr := e.lens(key)
	if eerr != nil {
		return e.logErr(newErr(NotFound, "set_lens_focus", nil))
	}
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return e.logErr(eerr)
	}
	if !pe.ps.Has(idx) {
		return e.logErr(newErr(NotFound, "set_lens_focus", nil))
	}
	l.SetFocus(pe.ps.Point(idx))
	return nil
}

// SetLensViewport updates lens key's screen-space rectangle and
// chart-to-screen affine transform.
func (e *Engine) SetLensViewport(key string, w, h, scale, ox, oy float64) *EngineError {
	l, err := e.lens(key)
	if err != nil {
		return e.logErr(newErr(NotFound, "set_lens_viewport", nil))
	}
	l.Viewport = chart.Viewport{Width: w, Height: h, Scale: scale, OffsetX: ox, OffsetY: oy}
	return nil
}

// ZoomLens multiplies lens key's viewport scale by 1.1^delta, clamped
// to [10, 1000], per spec.md §6.
func (e *Engine) ZoomLens(key string, delta float64) *EngineError {
	l, err := e.lens(key)
	if err != nil {
		return e.logErr(newErr(NotFound, "zoom_lens", nil))
	}
	scale := l.Viewport.Scale * math.Pow(1.1, delta)
	if scale < zoomScaleMin {
		scale = zoomScaleMin
	}
	if scale > zoomScaleMax {
		scale = zoomScaleMax
	}
	l.Viewport.Scale = scale
	return nil
}

// PanLens moves lens key's focus by a screen-space delta (dx, dy),
// converted to a tangent-space exp at the current focus.
func (e *Engine) PanLens(key string, dx, dy float64) *EngineError {
	l, err := e.lens(key)
	if err != nil {
		return e.logErr(newErr(NotFound, "pan_lens", nil))
	}
	l.Pan(dx, dy)
	return nil
}
