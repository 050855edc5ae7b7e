// Package minkowski implements the Minkowski-space vector algebra and
// hyperboloid-model kernel the rest of the engine builds on.
//
// Points live in R^{n+1} with metric signature (-,+,...,+): the upper
// sheet of the two-sheeted hyperboloid {x : <x,x>_L = -1, x_0 > 0}. Every
// function here takes its point(s) as plain []float64 of length n+1 —
// typically a slice view into a caller-owned columnar buffer
// (coords[i*(n+1):i*(n+1)+n+1]) rather than a freshly allocated vector,
// so no function in this package allocates on its hot path unless it
// returns a new vector by contract (Exp, Log, GeodesicLerp write into an
// out parameter supplied by the caller for exactly this reason).
//
// Conventions:
//
//   - dim is the hyperbolic dimension n; every vector has length n+1.
//   - ProjectToHyperboloid reports numerical failure as an error rather
//     than panicking; callers are expected to leave prior state
//     untouched on failure. ParallelTransport returns nothing and copies
//     v unchanged when p and q coincide.
//   - Dist clamps at MaxDist and floors at zero per spec: a negative
//     cosh argument due to floating drift never produces NaN.
package minkowski
