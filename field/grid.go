package field

import "errors"

// ErrInvalidResolution mirrors gridgraph's ErrEmptyGrid validation style:
// a grid with no rows/columns is not meaningful to sample.
var ErrInvalidResolution = errors.New("field: resolution must be positive")

// TangentPointFn builds the manifold point for tangent-space coordinates
// (cx, cy) in the lens's basis axes at its basepoint (typically
// Exp_basepoint applied to a tangent vector with only axis_i, axis_j
// populated). Supplied by the chart/lens layer, which owns basepoint and
// axis selection.
type TangentPointFn func(cx, cy float64, out []float64)

// SampleGrid evaluates f at a resolution x resolution grid of tangent
// coordinates spanning [-halfExtent, halfExtent] in both axes, writing
// row-major density values into out (len resolution*resolution). toPoint
// converts each (cx, cy) grid coordinate into a manifold point via the
// lens's chart before density evaluation, as spec.md §4.3 requires.
func (f *Field) SampleGrid(out []float32, resolution int, halfExtent float64, toPoint TangentPointFn, dim int) error {
	if resolution <= 0 {
		return ErrInvalidResolution
	}
	if len(out) != resolution*resolution {
		return ErrInvalidResolution
	}
	x := make([]float64, dim+1)
	step := (2 * halfExtent) / float64(resolution-1)
	if resolution == 1 {
		step = 0
	}
	for row := 0; row < resolution; row++ {
		cy := -halfExtent + float64(row)*step
		for col := 0; col < resolution; col++ {
			cx := -halfExtent + float64(col)*step
			toPoint(cx, cy, x)
			out[row*resolution+col] = float32(f.EvalDensity(x))
		}
	}
	return nil
}
