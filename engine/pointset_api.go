package engine

import (
	"github.com/uprootiny/umbra-sub002/clipexport"
	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// CreatePointSet allocates a new, empty point set with room for
// capacity points at the engine's ambient dimension, and returns its
// id for use by every other point-set-scoped method.
func (e *Engine) CreatePointSet(capacity int) string {
	id := e.nextIDFor("ps")
	e.pointsets[id] = &pointSetEntry{
		ps:      pointset.New(e.dim, capacity),
		history: history.New(),
	}
	return id
}

// AddPoint creates a point named name under the point named parentName
// (empty parentName makes it a root), returning its index or -1 with an
// EngineError of Kind Capacity, NotFound, or InvalidArgument.
func (e *Engine) AddPoint(psID, name, parentName string, tags []string, content string) (int, *EngineError) {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return -1, e.logErr(eerr)
	}

	parentIdx := -1
	if parentName != "" {
		idx, ok := pe.ps.IndexOfName(parentName)
		if !ok {
			return -1, e.logErr(newErr(NotFound, "add_point", pointset.ErrNotFound))
		}
		parentIdx = idx
	}

	idx, err := pe.ps.AddPoint(pointset.AddOptions{
		ParentIdx: parentIdx,
		Name:      name,
		Tags:      tags,
		Content:   content,
	})
	if err != nil {
		kind := InvalidArgument
		switch err {
		case pointset.ErrFull:
			kind = Capacity
		case pointset.ErrNotFound:
			kind = NotFound
		}
		return -1, e.logErr(newErr(kind, "add_point", err))
	}
	if pe.index != nil {
		pe.index.NotifyInsert()
	}
	return idx, nil
}

// GetPointCount returns the live point count of psID.
func (e *Engine) GetPointCount(psID string) (int, *EngineError) {
	pe, err := e.entry(psID)
	if err != nil {
		return 0, e.logErr(err)
	}
	return pe.ps.Count(), nil
}

// GetPointMeta returns idx's side metadata.
func (e *Engine) GetPointMeta(psID string, idx int) (pointset.Meta, *EngineError) {
	pe, err := e.entry(psID)
	if err != nil {
		return pointset.Meta{}, e.logErr(err)
	}
	if !pe.ps.Has(idx) {
		return pointset.Meta{}, e.logErr(newErr(NotFound, "get_point_meta", pointset.ErrNotFound))
	}
	return pe.ps.Meta(idx), nil
}

// SetSelected sets or clears SELECTED on idx.
func (e *Engine) SetSelected(psID string, idx int, selected bool) *EngineError {
	pe, err := e.entry(psID)
	if err != nil {
		return e.logErr(err)
	}
	if !pe.ps.Has(idx) {
		return e.logErr(newErr(NotFound, "set_selected", pointset.ErrNotFound))
	}
	if selected {
		pe.ps.SetFlag(idx, pointset.SELECTED)
	} else {
		pe.ps.ClearFlag(idx, pointset.SELECTED)
	}
	return nil
}

// SetHidden sets or clears HIDDEN on idx.
func (e *Engine) SetHidden(psID string, idx int, hidden bool) *EngineError {
	pe, err := e.entry(psID)
	if err != nil {
		return e.logErr(err)
	}
	if !pe.ps.Has(idx) {
		return e.logErr(newErr(NotFound, "set_hidden", pointset.ErrNotFound))
	}
	if hidden {
		pe.ps.SetFlag(idx, pointset.HIDDEN)
	} else {
		pe.ps.ClearFlag(idx, pointset.HIDDEN)
	}
	return nil
}

// GetSelected returns the indices of every SELECTED point in psID.
func (e *Engine) GetSelected(psID string) ([]int, *EngineError) {
	pe, err := e.entry(psID)
	if err != nil {
		return nil, e.logErr(err)
	}
	return pe.ps.Selected(), nil
}

// GetStats returns a count/depth-histogram/motif-histogram snapshot of
// psID, the Stats() supplement named in SPEC_FULL.md.
func (e *Engine) GetStats(psID string) (pointset.Stats, *EngineError) {
	pe, err := e.entry(psID)
	if err != nil {
		return pointset.Stats{}, e.logErr(err)
	}
	return pe.ps.ComputeStats(), nil
}

// ExportPointSet serializes psID to a textual, round-trippable Document.
func (e *Engine) ExportPointSet(psID string) (clipexport.Document, *EngineError) {
	pe, err := e.entry(psID)
	if err != nil {
		return clipexport.Document{}, e.logErr(err)
	}
	return clipexport.ExportPointSet(pe.ps), nil
}

// ImportPointSet rebuilds a point set from doc and registers it under a
// fresh id, or fails atomically with InvalidArgument if doc is
// malformed (partial imports are never permitted, per spec.md §7).
func (e *Engine) ImportPointSet(doc clipexport.Document) (string, *EngineError) {
	ps, err := clipexport.ImportPointSet(doc)
	if err != nil {
		return "", e.logErr(newErr(InvalidArgument, "import_pointset", err))
	}
	id := e.nextIDFor("ps")
	e.pointsets[id] = &pointSetEntry{ps: ps, history: history.New()}
	return id, nil
}
