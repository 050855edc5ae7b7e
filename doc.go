// Package umbra is a hyperbolic-geometry visualization and
// manipulation engine: point sets live on the hyperboloid model, a
// Lens projects them through a Chart (tangent, Poincare, or Klein) for
// rendering, and an Engine ties point sets, lenses, batch renderers,
// undo history, and animation into one process-wide aggregate.
//
// Subpackages:
//
//	minkowski/  — hyperboloid vector ops: Exp/Log maps, distance, model conversions
//	pointset/   — the columnar tree of points an engine operates on
//	chart/      — Lens + Chart projections (Tangent, Poincare, Klein)
//	render/     — batch projection, LOD, dirty tracking, frame budgeting
//	operator/   — selection/visibility/structure/motion transforms over a PointSet
//	vptree/     — vantage-point tree for nearest/k-nearest/range queries
//	field/      — density field evaluation and gradient sampling
//	anim/       — geodesic animation queue and easing curves
//	history/    — undo/redo stack with coalescing
//	clipexport/ — clipboard, document export/import, URL state, minimap, text emitters
//	arena/      — per-frame scratch allocators
//	layout/     — radial/force/hierarchical layout algorithms
//	engine/     — the process-wide Engine aggregate tying the above together
//	cmd/umbraviz — a CLI over the engine package
package umbra
