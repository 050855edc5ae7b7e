// Package chart implements the chart variants (Tangent, Poincare,
// Klein) and the Lens that composes a chart with a viewport, aperture,
// and LOD thresholds, per spec.md §4.3.
//
// A Chart is a capability interface rather than a closed sum type in
// the Go sense — there is no shared representation to switch on — but
// the three variants (Tangent, Poincare, Klein) are the only
// implementations the engine constructs, matching the "closed variant"
// intent of spec.md §9. The Lens's viewport/focus shape is grounded on
// phanxgames-willow's Camera (X, Y, Zoom, Viewport, Follow) generalized
// from a 2D affine camera to a hyperbolic chart projection; unlike that
// Camera, the Lens keeps no dirty flag or cached view matrix.
package chart
