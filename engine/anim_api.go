package engine

import "github.com/uprootiny/umbra-sub002/anim"

// defaultFocusEasing is the easing AnimateFocusTo applies; spec.md §6
// doesn't parameterize animate_focus_to by easing, so a single
// pleasant default (decelerating, no overshoot) is used throughout.
const defaultFocusEasing = anim.OutCubic

// AnimateFocusTo animates the active lens's focus along the geodesic to
// point idx of psID over durationMs milliseconds.
func (e *Engine) AnimateFocusTo(psID string, idx int, durationMs float64) *EngineError {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return e.logErr(eerr)
	}
	if !pe.ps.Has(idx) {
		return e.logErr(newErr(NotFound, "animate_focus_to", nil))
	}
	l, eerr := e.lens(e.activeLens)
	if eerr != nil {
		return e.logErr(newErr(NotFound, "animate_focus_to", nil))
	}
	target := append([]float64(nil), pe.ps.Point(idx)...)
	e.animQueue.Add(anim.NewGeodesicFocusAnimation(l, target, durationMs/1000.0, defaultFocusEasing))
	return nil
}

// CancelAnimations cancels and drops every running animation.
func (e *Engine) CancelAnimations() {
	e.animQueue.CancelAll()
}
