// Package engine aggregates every other package into the single
// process-wide object an input adapter and a renderer adapter drive:
// point sets, lenses, spatial indices, fields, batch renderers,
// history stacks, the clipboard, and the animation queue all live
// here, keyed by caller-chosen or engine-assigned ids. No other
// package reaches back into engine; everything flows one way, mirroring
// core.Graph's role as the one owner of process state in the teacher
// package, but composed from many small owners instead of one struct
// with many locks (distinct point sets never share a lock).
//
// The engine never panics or throws across its API: every method
// returns sentinel zero values (-1, nil, false) on failure alongside an
// *EngineError a caller can inspect, and writes one diagnostic log line
// through the injected Logger.
package engine
