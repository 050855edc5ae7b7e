// Package anim implements the cooperative animation core: a queue of
// running animations driven by a single display-refresh tick, geodesic
// focus/point animations built on minkowski.GeodesicLerp, and an
// optional semi-implicit-Euler spring animation.
//
// There is no global animation manager (mirroring willow's
// no-global-camera-singleton stance) — callers own a Queue and call
// Tick(dt) once per frame from their own event loop.
package anim
