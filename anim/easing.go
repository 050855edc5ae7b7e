package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Easing names the closed set of easing functions spec.md §4.9 allows.
type Easing string

const (
	Linear      Easing = "linear"
	InQuad      Easing = "in_quad"
	OutQuad     Easing = "out_quad"
	InOutQuad   Easing = "in_out_quad"
	InCubic     Easing = "in_cubic"
	OutCubic    Easing = "out_cubic"
	InOutCubic  Easing = "in_out_cubic"
	OutExpo     Easing = "out_expo"
	OutBack     Easing = "out_back"
	OutElastic  Easing = "out_elastic"
)

var easingFuncs = map[Easing]ease.TweenFunc{
	Linear:     ease.Linear,
	InQuad:     ease.InQuad,
	OutQuad:    ease.OutQuad,
	InOutQuad:  ease.InOutQuad,
	InCubic:    ease.InCubic,
	OutCubic:   ease.OutCubic,
	InOutCubic: ease.InOutCubic,
	OutExpo:    ease.OutExpo,
	OutBack:    ease.OutBack,
	OutElastic: ease.OutElastic,
}

// fn resolves a named easing to its gween TweenFunc, defaulting to
// Linear for an unrecognized or empty name.
func (e Easing) fn() ease.TweenFunc {
	if f, ok := easingFuncs[e]; ok {
		return f
	}
	return ease.Linear
}

// Eval applies the named easing to raw progress t (t need not be
// clamped to [0,1] by the caller; Eval returns 0 for t <= 0 and 1 for
// t >= 1 before any tween is built). Eval is a
// convenience for code that only needs the eased scalar, not a
// running Tween — it drives a throwaway zero-to-one tween.
func (e Easing) Eval(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	tw := gween.New(0, 1, 1, e.fn())
	v, _ := tw.Update(float32(t))
	return float64(v)
}
