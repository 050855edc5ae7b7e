// Package arena provides per-frame scratch allocation for the render
// and layout hot paths: a bump-pointer arena over pre-sized []float64
// (or []int) backing storage that falls back to a heap allocation once
// exhausted, and a sync.Pool-backed pool of fixed-length scratch slices.
//
// Grounded on matrix.NewDense's allocate-once, reuse-by-reset
// discipline (matrix/dense.go, matrix/impl_dense.go: data :=
// make([]float64, rows*cols) sized exactly once at construction).
// Arena generalizes that to many short-lived scratch vectors per
// frame instead of one fixed matrix, reset at frame boundaries
// instead of reallocated.
package arena
