package engine

import (
	"math"

	"github.com/uprootiny/umbra-sub002/vptree"
)

// PickAtScreen returns the visible point of psID, projected through
// the active lens, whose screen position is nearest (sx, sy) within
// threshold screen units, or -1 if none qualifies.
func (e *Engine) PickAtScreen(psID string, sx, sy, threshold float64) (int, *EngineError) {
	projected, eerr := e.ProjectForRender(psID)
	if eerr != nil {
		return -1, eerr
	}
	best, bestD := -1, threshold
	for _, p := range projected {
		d := math.Hypot(p.ScreenX-sx, p.ScreenY-sy)
		if d <= bestD {
			best, bestD = p.Idx, d
		}
	}
	return best, nil
}

// GetDistance returns the hyperbolic distance between points i and j
// of psID.
func (e *Engine) GetDistance(psID string, i, j int) (float64, *EngineError) {
	pe, err := e.entry(psID)
	if err != nil {
		return 0, e.logErr(err)
	}
	if !pe.ps.Has(i) || !pe.ps.Has(j) {
		return 0, e.logErr(newErr(NotFound, "get_distance", nil))
	}
	return pe.ps.Distance(i, j), nil
}

// GetNearest performs a linear-scan nearest-neighbor query against
// psID's live, non-hidden points (the unindexed baseline path — use
// QueryNearest for the VP-tree-accelerated equivalent).
func (e *Engine) GetNearest(psID string, idx int) (int, float64, *EngineError) {
	pe, err := e.entry(psID)
	if err != nil {
		return -1, 0, e.logErr(err)
	}
	best, dist := pe.ps.Nearest(idx)
	return best, dist, nil
}

func (e *Engine) vpIndex(pe *pointSetEntry) *vptree.Index {
	if pe.index == nil {
		pe.index = vptree.New(pe.ps)
	}
	return pe.index
}

// QueryNearest finds idx's nearest neighbor via the VP-tree index,
// building or rebuilding it first if it has drifted stale (spec.md §7's
// StalenessMismatch recovery: "rebuild on next query").
func (e *Engine) QueryNearest(psID string, idx int) (vptree.Result, *EngineError) {
	pe, err := e.entry(psID)
	if err != nil {
		return vptree.Result{}, e.logErr(err)
	}
	result, ok := e.vpIndex(pe).Nearest(idx)
	if !ok {
		return vptree.Result{}, e.logErr(newErr(NotFound, "query_nearest", nil))
	}
	return result, nil
}

// QueryKNearest finds idx's k nearest neighbors via the VP-tree index.
func (e *Engine) QueryKNearest(psID string, idx, k int) ([]vptree.Result, *EngineError) {
	pe, err := e.entry(psID)
	if err != nil {
		return nil, e.logErr(err)
	}
	return e.vpIndex(pe).KNearest(idx, k), nil
}
