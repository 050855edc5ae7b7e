package field

import (
	"math"

	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// numericalGradientH is the central-difference step used by Gradient.
const numericalGradientH = 0.01

// Field evaluates a scalar density over H^n as a sum of kernel
// contributions from a subset of a PointSet's live points.
type Field struct {
	PS     *pointset.PointSet
	Kernel Kernel
	Sigma  float64 // default bandwidth when a source has no override

	// Sources, if non-nil, restricts evaluation to these point indices
	// with optional per-index weight/sigma overrides. A nil Sources
	// means "every visible point, weight 1, default sigma."
	Sources []int
	Weight  map[int]float64
	SigmaOf map[int]float64
}

func (f *Field) indices() []int {
	if f.Sources != nil {
		return f.Sources
	}
	return f.PS.Visible()
}

func (f *Field) weightOf(i int) float64 {
	if f.Weight == nil {
		return 1
	}
	if w, ok := f.Weight[i]; ok {
		return w
	}
	return 1
}

func (f *Field) sigmaOf(i int) float64 {
	if f.SigmaOf == nil {
		return f.Sigma
	}
	if s, ok := f.SigmaOf[i]; ok {
		return s
	}
	return f.Sigma
}

// EvalDensity returns the weighted sum of kernel contributions from
// every source point, evaluated at x.
func (f *Field) EvalDensity(x []float64) float64 {
	total := 0.0
	for _, i := range f.indices() {
		d := minkowski.Dist(x, f.PS.Point(i))
		total += f.weightOf(i) * f.Kernel.Eval(d, f.sigmaOf(i))
	}
	return total
}

// Gradient estimates, via central numerical differencing of the kernel
// in distance and the unit log-direction toward each source, the
// density gradient at x, tangent-projected onto T_xH^n. out must have
// length len(x).
func (f *Field) Gradient(out, x []float64) {
	for i := range out {
		out[i] = 0
	}
	dirBuf := make([]float64, len(x))
	for _, i := range f.indices() {
		p := f.PS.Point(i)
		d := minkowski.Dist(x, p)
		if d < minkowski.Eps {
			continue
		}
		sigma := f.sigmaOf(i)
		w := f.weightOf(i)
		dk := (f.Kernel.Eval(d-numericalGradientH, sigma) - f.Kernel.Eval(d+numericalGradientH, sigma)) / (2 * numericalGradientH)
		minkowski.LogDirection(dirBuf, x, p)
		for j := range out {
			out[j] += w * dk * dirBuf[j]
		}
	}
	minkowski.TangentProject(out, x, out)
}

// Edge is a parent-child pair used by EdgeDensity to sample along the
// geodesic connecting them.
type Edge struct {
	From, To []float64
}

// EdgeDensity samples nSamples points along the geodesic of each edge
// and sums Gaussian contributions (bandwidth sigma) from x to each
// sample, approximating the density contributed by edges rather than
// point masses.
func EdgeDensity(x []float64, edges []Edge, sigma float64, nSamples int) float64 {
	if nSamples < 2 {
		nSamples = 2
	}
	total := 0.0
	sample := make([]float64, len(x))
	for _, e := range edges {
		for s := 0; s < nSamples; s++ {
			t := float64(s) / float64(nSamples-1)
			minkowski.GeodesicLerp(sample, e.From, e.To, t)
			d := minkowski.Dist(x, sample)
			total += Gaussian.Eval(d, sigma)
		}
	}
	return total
}

// HotspotMagnitude returns the norm of the density gradient at x, the
// scalar "hotspot" field derived from Gradient.
func (f *Field) HotspotMagnitude(x []float64) float64 {
	grad := make([]float64, len(x))
	f.Gradient(grad, x)
	return math.Sqrt(minkowski.SpatialNormSq(grad))
}
