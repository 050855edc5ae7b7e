package chart

import "github.com/uprootiny/umbra-sub002/minkowski"

// Chart projects hyperboloid points into 2D chart coordinates and, for
// charts that support it, back.
type Chart interface {
	// Project returns the 2D chart coordinates of hyperboloid point x.
	Project(x []float64) (cx, cy float64)

	// Unproject attempts to recover a hyperboloid point from chart
	// coordinates (cx, cy), writing into out (length dim+1). Returns
	// false if this chart variant does not support inversion.
	Unproject(out []float64, cx, cy float64) bool

	// SetBasepoint installs p as this chart's reference point. Only
	// Tangent uses it directly; Poincare and Klein ignore it (their
	// projection formula has no basepoint), but every chart accepts the
	// call so the Lens can set it uniformly on focus change.
	SetBasepoint(p []float64)

	// SupportsUnproject reports whether Unproject can succeed.
	SupportsUnproject() bool
}

// Tangent projects via the log map at Basepoint, emitting the
// (AxisI, AxisJ) spatial components of the tangent vector (1-indexed
// into the n spatial axes, i.e. AxisI=1 is the first spatial axis).
type Tangent struct {
	Basepoint []float64 // length dim+1
	AxisI     int
	AxisJ     int
}

// NewTangent constructs a Tangent chart anchored at basepoint, a copy of
// which is retained.
func NewTangent(basepoint []float64, axisI, axisJ int) *Tangent {
	bp := append([]float64(nil), basepoint...)
	return &Tangent{Basepoint: bp, AxisI: axisI, AxisJ: axisJ}
}

func (c *Tangent) SetBasepoint(p []float64) { copy(c.Basepoint, p) }

func (c *Tangent) Project(x []float64) (float64, float64) {
	v := make([]float64, len(x))
	minkowski.Log(v, c.Basepoint, x)
	return v[c.AxisI], v[c.AxisJ]
}

func (c *Tangent) Unproject(out []float64, cx, cy float64) bool {
	v := make([]float64, len(out))
	v[c.AxisI] = cx
	v[c.AxisJ] = cy
	minkowski.Exp(out, c.Basepoint, v)
	return true
}

func (c *Tangent) SupportsUnproject() bool { return true }

// Poincare projects via hyperboloid->ball, emitting ball components
// (SliceI, SliceJ) (0-indexed into the n spatial axes).
type Poincare struct {
	SliceI, SliceJ int
}

func NewPoincare(sliceI, sliceJ int) *Poincare { return &Poincare{SliceI: sliceI, SliceJ: sliceJ} }

func (c *Poincare) SetBasepoint([]float64) {}

func (c *Poincare) Project(x []float64) (float64, float64) {
	p := make([]float64, len(x)-1)
	minkowski.HyperboloidToBall(p, x)
	return p[c.SliceI], p[c.SliceJ]
}

// Unproject supports exact inversion only when the chart's two slices
// span every spatial axis (dim==2); for higher dimensions the missing
// axes cannot be recovered from a 2D screen point and Unproject returns
// false, matching spec.md §4.3 ("exact inversion via ball->hyperboloid"
// — exact only when there is nothing left unsliced).
func (c *Poincare) Unproject(out []float64, cx, cy float64) bool {
	dim := len(out) - 1
	if dim != 2 {
		return false
	}
	p := make([]float64, 2)
	p[c.SliceI], p[c.SliceJ] = cx, cy
	minkowski.BallToHyperboloid(out, p)
	return true
}

func (c *Poincare) SupportsUnproject() bool { return true }

// Klein projects via hyperboloid->Klein, emitting Klein components
// (SliceI, SliceJ). Unprojection is not required by the core (spec.md
// §4.3) and always fails.
type Klein struct {
	SliceI, SliceJ int
}

func NewKlein(sliceI, sliceJ int) *Klein { return &Klein{SliceI: sliceI, SliceJ: sliceJ} }

func (c *Klein) SetBasepoint([]float64) {}

func (c *Klein) Project(x []float64) (float64, float64) {
	k := make([]float64, len(x)-1)
	minkowski.HyperboloidToKlein(k, x)
	return k[c.SliceI], k[c.SliceJ]
}

func (c *Klein) Unproject(out []float64, cx, cy float64) bool { return false }

func (c *Klein) SupportsUnproject() bool { return false }
