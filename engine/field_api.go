package engine

import "github.com/uprootiny/umbra-sub002/field"

// defaultFieldSigma is the bandwidth a lazily-created per-point-set
// density field uses when the caller hasn't configured one explicitly.
const defaultFieldSigma = 0.5

func (e *Engine) densityField(pe *pointSetEntry) *field.Field {
	if pe.field == nil {
		pe.field = &field.Field{PS: pe.ps, Kernel: field.Gaussian, Sigma: defaultFieldSigma}
	}
	return pe.field
}

// SampleDensityAt evaluates psID's density field at the manifold point
// the active lens's (sx, sy) screen coordinate unprojects to.
func (e *Engine) SampleDensityAt(psID string, sx, sy float64) (float64, *EngineError) {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return 0, e.logErr(eerr)
	}
	l, eerr := e.lens(e.activeLens)
	if eerr != nil {
		return 0, e.logErr(newErr(NotFound, "sample_density_at", nil))
	}
	cx, cy := l.ScreenToChart(sx, sy)
	out := make([]float64, e.dim+1)
	if !l.Chart.Unproject(out, cx, cy) {
		return 0, e.logErr(newErr(InvalidArgument, "sample_density_at", nil))
	}
	return e.densityField(pe).EvalDensity(out), nil
}

// GetDensityGrid samples psID's density field over a resolution x
// resolution grid around the active lens's focus.
func (e *Engine) GetDensityGrid(psID string, resolution int) ([]float32, *EngineError) {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return nil, e.logErr(eerr)
	}
	l, eerr := e.lens(e.activeLens)
	if eerr != nil {
		return nil, e.logErr(newErr(NotFound, "get_density_grid", nil))
	}
	grid, err := l.SampleDensityGrid(e.densityField(pe), resolution, 5.0)
	if err != nil {
		return nil, e.logErr(newErr(InvalidArgument, "get_density_grid", err))
	}
	return grid, nil
}
