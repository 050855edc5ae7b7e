// Package field implements the scalar density/attention field sampler:
// a sum of radially-symmetric kernels centered at a weighted subset of
// points, its gradient (estimated numerically and tangent-projected),
// edge-density sampling along geodesics, and a row-major grid sampler
// for density-heatmap rendering — grounded on gridgraph's row-major
// [][]int grid convention, generalized to a flat []float32 buffer.
package field
