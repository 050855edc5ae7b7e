package minkowski

import "math"

// HyperboloidToBall writes the Poincaré-ball image of hyperboloid point
// x into outP (length len(x)-1): p_i = x_i/(x0+1) for i=1..n.
func HyperboloidToBall(outP, x []float64) {
	denom := x[0] + 1
	for i := 1; i < len(x); i++ {
		outP[i-1] = x[i] / denom
	}
}

// BallToHyperboloid writes the hyperboloid point corresponding to
// Poincaré-ball point p (length n, ‖p‖<1) into outX (length n+1):
// x0 = (1+‖p‖²)/(1-‖p‖²), xi = 2*p_i/(1-‖p‖²).
func BallToHyperboloid(outX, p []float64) {
	norm2 := 0.0
	for _, v := range p {
		norm2 += v * v
	}
	denom := 1 - norm2
	outX[0] = (1 + norm2) / denom
	for i, v := range p {
		outX[i+1] = 2 * v / denom
	}
}

// HyperboloidToKlein writes the Klein-model image of hyperboloid point x
// into outK (length len(x)-1): k_i = x_i/x0.
func HyperboloidToKlein(outK, x []float64) {
	for i := 1; i < len(x); i++ {
		outK[i-1] = x[i] / x[0]
	}
}

// KleinToHyperboloid writes the hyperboloid point corresponding to Klein
// point k (length n, ‖k‖<1) into outX (length n+1):
// x0 = 1/sqrt(1-‖k‖²), xi = k_i/sqrt(1-‖k‖²).
func KleinToHyperboloid(outX, k []float64) {
	norm2 := 0.0
	for _, v := range k {
		norm2 += v * v
	}
	s := 1.0
	if 1-norm2 > 0 {
		s = 1 / math.Sqrt(1-norm2)
	}
	outX[0] = s
	for i, v := range k {
		outX[i+1] = v * s
	}
}

// PoincareToKlein converts a Poincaré-ball point p into its Klein-model
// image: k_i = 2*p_i/(1+‖p‖²).
func PoincareToKlein(outK, p []float64) {
	norm2 := 0.0
	for _, v := range p {
		norm2 += v * v
	}
	denom := 1 + norm2
	for i, v := range p {
		outK[i] = 2 * v / denom
	}
}

// KleinToPoincare converts a Klein point k into its Poincaré-ball image:
// p_i = k_i/(1+sqrt(1-‖k‖²)).
func KleinToPoincare(outP, k []float64) {
	norm2 := 0.0
	for _, v := range k {
		norm2 += v * v
	}
	s := 0.0
	if 1-norm2 > 0 {
		s = math.Sqrt(1 - norm2)
	}
	denom := 1 + s
	for i, v := range k {
		outP[i] = v / denom
	}
}
