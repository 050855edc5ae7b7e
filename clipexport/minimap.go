package clipexport

import (
	"math"

	"github.com/uprootiny/umbra-sub002/minkowski"
)

// minimapClampRadius is the Poincaré-disk radius minimap clicks are
// clamped to before lifting to the hyperboloid, per spec.md §5.
const minimapClampRadius = 0.95

// MinimapToFocus maps a click at (x,y) within a width×height minimap to
// a hyperboloid point, per spec.md §5: normalize to [-1,1] disk
// coordinates, clamp to radius 0.95, then lift via ball→hyperboloid.
// dim is the ambient hyperbolic dimension (the returned point has
// length dim+1); only the first two spatial axes receive the click's
// coordinates, the rest are zero.
func MinimapToFocus(x, y, width, height float64, dim int) []float64 {
	bx := 2*x/width - 1
	by := 2*y/height - 1

	r2 := bx*bx + by*by
	if r2 > minimapClampRadius*minimapClampRadius {
		scale := minimapClampRadius / math.Sqrt(r2)
		bx *= scale
		by *= scale
	}

	ball := make([]float64, dim)
	ball[0] = bx
	if dim > 1 {
		ball[1] = by
	}

	focus := make([]float64, dim+1)
	minkowski.BallToHyperboloid(focus, ball)
	return focus
}
