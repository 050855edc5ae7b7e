package minkowski

// TransvectFromOrigin writes into out the image of x under the
// transvection (Lorentz boost) that sends the origin (1,0,...,0) to p.
// The formula avoids materializing the boost matrix:
//
//	out0  = p0*x0 + <p_spatial, x_spatial>
//	coef  = <p_spatial,x_spatial>/(p0+1) + x0
//	out_i = x_i + coef*p_i
//
// out must not alias p or x.
func TransvectFromOrigin(out, p, x []float64) {
	sdot := SpatialDot(p, x)
	coef := sdot/(p[0]+1) + x[0]
	out[0] = p[0]*x[0] + sdot
	for i := 1; i < len(out); i++ {
		out[i] = x[i] + coef*p[i]
	}
}

// TransvectToOrigin writes into out the image of x under the inverse
// transvection: the isometry sending p to the origin, applied to x. It
// is TransvectFromOrigin with the spacelike components of p negated
// (the boost run in reverse), p0 unchanged. out must not alias p or x;
// pInvScratch (len(p)) is caller-supplied scratch to avoid allocation.
func TransvectToOrigin(out, p, x, pInvScratch []float64) {
	pInvScratch[0] = p[0]
	for i := 1; i < len(p); i++ {
		pInvScratch[i] = -p[i]
	}
	TransvectFromOrigin(out, pInvScratch, x)
}

// Transvect writes into out the image of x under the isometry sending a
// to b: first a->origin, then origin->b. tmpScratch and pInvScratch (each
// len(x)) are caller-supplied scratch; out may alias x.
func Transvect(out, a, b, x, tmpScratch, pInvScratch []float64) {
	TransvectToOrigin(tmpScratch, a, x, pInvScratch)
	TransvectFromOrigin(out, b, tmpScratch)
}
