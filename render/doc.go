// Package render implements the incremental batch renderer: per-point
// dirty tracking, chart projection into screen space, LOD bucketing and
// painter's-algorithm sort order, edge projection, and the
// frame-budget-driven draw command list.
//
// Projection is total (spec.md §4.4): culled points never appear in the
// command stream, and an over-budget frame degrades LOD/edge coverage
// silently rather than erroring. Dirty bits are cleared only once
// projection for that point succeeds, matching §5's ordering guarantee
// that projection completes before rendering commands are generated.
package render
