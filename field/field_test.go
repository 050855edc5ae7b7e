package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

func TestKernelsAreDecreasingAndPositive(t *testing.T) {
	for _, k := range []Kernel{Gaussian, Hyperbolic, Bump, Power} {
		prev := k.Eval(0, 1)
		require.GreaterOrEqual(t, prev, 0.0)
		for _, d := range []float64{0.1, 0.5, 1, 2, 5} {
			v := k.Eval(d, 1)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, prev+1e-9)
			prev = v
		}
	}
}

func TestEvalDensityPeaksAtSource(t *testing.T) {
	ps := pointset.New(2, 4)
	r, _ := ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	f := &Field{PS: ps, Kernel: Gaussian, Sigma: 0.5}

	atSource := f.EvalDensity(ps.Point(r))

	far := make([]float64, 3)
	tangent := []float64{0, 3, 0}
	minkowski.Exp(far, ps.Point(r), tangent)
	farDensity := f.EvalDensity(far)

	require.Greater(t, atSource, farDensity)
}

func TestGradientZeroAtSymmetricPoint(t *testing.T) {
	ps := pointset.New(2, 4)
	r, _ := ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	a, _ := ps.AddPoint(pointset.AddOptions{ParentIdx: r, Tangent: []float64{0, 1, 0}})
	b, _ := ps.AddPoint(pointset.AddOptions{ParentIdx: r, Tangent: []float64{0, -1, 0}})
	f := &Field{PS: ps, Kernel: Gaussian, Sigma: 1, Sources: []int{a, b}}

	grad := make([]float64, 3)
	f.Gradient(grad, ps.Point(r))
	mag := math.Sqrt(minkowski.SpatialNormSq(grad))
	require.InDelta(t, 0, mag, 1e-3)
}

func TestSampleGridShapeValidation(t *testing.T) {
	ps := pointset.New(2, 2)
	ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	f := &Field{PS: ps, Kernel: Gaussian, Sigma: 1}

	out := make([]float32, 9)
	err := f.SampleGrid(out, 3, 2.0, func(cx, cy float64, o []float64) {
		o[0], o[1], o[2] = 1, cx, cy
	}, 2)
	require.NoError(t, err)

	bad := make([]float32, 5)
	err = f.SampleGrid(bad, 3, 2.0, func(cx, cy float64, o []float64) {}, 2)
	require.ErrorIs(t, err, ErrInvalidResolution)
}
