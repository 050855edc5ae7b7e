package engine

import (
	"github.com/uprootiny/umbra-sub002/anim"
	"github.com/uprootiny/umbra-sub002/clipexport"
	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/layout"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// Cut captures root's subtree from psID onto the process-wide clipboard
// and hides it in place, recording a DeleteSubtree history entry.
func (e *Engine) Cut(psID string, root int) *EngineError {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return e.logErr(eerr)
	}
	if !pe.ps.Has(root) {
		return e.logErr(newErr(NotFound, "cut", nil))
	}
	clip, rec := clipexport.Cut(pe.ps, root)
	e.clipboard = clip
	pe.history.Push(rec)
	return nil
}

// Copy captures root's subtree from psID onto the clipboard without
// modifying psID.
func (e *Engine) Copy(psID string, root int) *EngineError {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return e.logErr(eerr)
	}
	if !pe.ps.Has(root) {
		return e.logErr(newErr(NotFound, "copy", nil))
	}
	e.clipboard = clipexport.Copy(pe.ps, root)
	return nil
}

// Paste recreates the clipboard's captured subtree under newParent in
// psID, returning the new subtree root's index, or ClipboardEmpty /
// ClipboardShape if the clipboard can't serve this target.
func (e *Engine) Paste(psID string, newParent int) (int, *EngineError) {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return -1, e.logErr(eerr)
	}
	rec, err := clipexport.Paste(pe.ps, e.clipboard, newParent, e.clock.Now().UnixMilli())
	if err != nil {
		kind := InvalidArgument
		switch err {
		case clipexport.ErrClipboardEmpty:
			kind = ClipboardEmpty
		case clipexport.ErrClipboardShape:
			kind = ClipboardShape
		case pointset.ErrNotFound:
			kind = NotFound
		}
		return -1, e.logErr(newErr(kind, "paste", err))
	}
	pe.history.Push(rec)
	if pe.index != nil {
		pe.index.NotifyInsert()
	}
	return rec.Index, nil
}

// ApplyLayout runs one of layout's algorithms (radial, force,
// hierarchical) over psID with default options, in place, recording the
// resulting moves on psID's history as a single Batch entry.
func (e *Engine) ApplyLayout(psID, kind string, root int) *EngineError {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return e.logErr(eerr)
	}

	var rec history.Record
	var err error
	switch kind {
	case "radial":
		rec, err = layout.Radial(pe.ps, root, layout.RadialOptions{})
	case "force":
		rec, err = layout.ForceDirected(pe.ps, layout.ForceDirectedOptions{})
	case "hierarchical":
		rec, err = layout.Hierarchical(pe.ps, root, layout.HierarchicalOptions{})
	default:
		return e.logErr(newErr(InvalidArgument, "apply_layout", nil))
	}
	if err != nil {
		return e.logErr(newErr(InvalidArgument, "apply_layout", err))
	}
	pe.history.Push(rec)
	if pe.index != nil {
		pe.index.NotifyInsert()
	}
	return nil
}

// SetMotif assigns idx's style class (spec.md §3's motif field, the
// one piece of per-point style state the core owns).
func (e *Engine) SetMotif(psID string, idx, motif int) *EngineError {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return e.logErr(eerr)
	}
	if !pe.ps.Has(idx) {
		return e.logErr(newErr(NotFound, "set_motif", nil))
	}
	pe.ps.Motif[idx] = motif
	return nil
}

// MinimapClick maps a click at (x,y) within a width x height minimap to
// a focus point (spec.md §6's minimap contract) and animates the active
// lens there over durationMs.
func (e *Engine) MinimapClick(x, y, width, height, durationMs float64) *EngineError {
	l, eerr := e.lens(e.activeLens)
	if eerr != nil {
		return e.logErr(newErr(NotFound, "minimap_click", nil))
	}
	target := clipexport.MinimapToFocus(x, y, width, height, e.dim)
	e.animQueue.Add(anim.NewGeodesicFocusAnimation(l, target, durationMs/1000.0, defaultFocusEasing))
	return nil
}

// GetURLState encodes the active lens's focus and scale as a shareable
// URL fragment, per spec.md §6.
func (e *Engine) GetURLState(name string) (string, *EngineError) {
	l, eerr := e.lens(e.activeLens)
	if eerr != nil {
		return "", e.logErr(newErr(NotFound, "get_url_state", nil))
	}
	return clipexport.EncodeURLState(clipexport.URLState{
		Focus: l.Focus,
		Scale: l.Viewport.Scale,
		Name:  name,
	}), nil
}

// SetURLState decodes frag and applies it to the active lens.
func (e *Engine) SetURLState(frag string) *EngineError {
	l, eerr := e.lens(e.activeLens)
	if eerr != nil {
		return e.logErr(newErr(NotFound, "set_url_state", nil))
	}
	s, err := clipexport.DecodeURLState(frag)
	if err != nil {
		return e.logErr(newErr(InvalidArgument, "set_url_state", err))
	}
	l.SetFocus(s.Focus)
	l.Viewport.Scale = s.Scale
	return nil
}

// ExportSVG/ExportMarkdown/ExportMermaid render psID's subtree rooted
// at root in the named document format.

func (e *Engine) ExportSVG(psID string, width, height int) (string, *EngineError) {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return "", e.logErr(eerr)
	}
	l, eerr := e.lens(e.activeLens)
	if eerr != nil {
		return "", e.logErr(newErr(NotFound, "export_svg", nil))
	}
	return clipexport.EmitSVG(pe.ps, l, width, height), nil
}

func (e *Engine) ExportMarkdown(psID string, root int) (string, *EngineError) {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return "", e.logErr(eerr)
	}
	if !pe.ps.Has(root) {
		return "", e.logErr(newErr(NotFound, "export_markdown", nil))
	}
	return clipexport.EmitMarkdown(pe.ps, root), nil
}

func (e *Engine) ExportMermaid(psID string, root int) (string, *EngineError) {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return "", e.logErr(eerr)
	}
	if !pe.ps.Has(root) {
		return "", e.logErr(newErr(NotFound, "export_mermaid", nil))
	}
	return clipexport.EmitMermaid(pe.ps, root), nil
}
