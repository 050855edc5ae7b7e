package clipexport

import (
	"errors"
	"fmt"

	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// ErrClipboardEmpty indicates Paste was called with nothing on the
// clipboard.
var ErrClipboardEmpty = errors.New("clipexport: clipboard is empty")

// ErrClipboardShape indicates the clipboard's captured dimension does
// not match the target PointSet's dimension.
var ErrClipboardShape = errors.New("clipexport: clipboard dimension does not match target point set")

// clipNode is one captured subtree member: docParent indexes into
// Clipboard.nodes (-1 for the subtree's own root), tangent is relative
// to the position that docParent resolves to at paste time — for the
// subtree root this is its *original* parent (or the hyperboloid
// origin, if it had none), so Paste's Exp_parent(tangent) reproduces
// the exact original shape when pasted back under the same parent.
type clipNode struct {
	docParent int
	tangent   []float64
	name      string
	tags      []string
	content   string
	flags     pointset.Flag
	motif     int
}

// Clipboard holds at most one captured subtree, ready to Paste under
// any parent in any PointSet of matching dimension.
type Clipboard struct {
	dim   int
	nodes []clipNode
}

// Copy captures root's subtree (root plus every descendant) without
// modifying ps. Each node's position is stored as a tangent relative to
// its in-subtree parent; root's tangent is relative to its own original
// parent (or the hyperboloid origin, if root had none), so Paste's
// Exp_parent(tangent) reproduces the exact original shape when pasted
// back under the same parent, and a natural variant of it otherwise.
func Copy(ps *pointset.PointSet, root int) Clipboard {
	order := append([]int{root}, ps.Descendants(root)...)
	docIndex := make(map[int]int, len(order))
	for i, idx := range order {
		docIndex[idx] = i
	}

	origin := make([]float64, ps.Stride())
	origin[0] = 1

	nodes := make([]clipNode, len(order))
	for i, idx := range order {
		meta := ps.Meta(idx)
		n := clipNode{
			docParent: -1,
			tangent:   make([]float64, ps.Stride()),
			name:      meta.Name,
			tags:      meta.Tags,
			content:   meta.Content,
			flags:     ps.Flags[idx] &^ (pointset.ROOT | pointset.SELECTED),
			motif:     ps.Motif[idx],
		}
		if idx == root {
			parent := ps.Parent[idx]
			from := origin
			if parent >= 0 {
				from = ps.Point(parent)
			}
			minkowski.Log(n.tangent, from, ps.Point(idx))
		} else {
			parent := ps.Parent[idx]
			n.docParent = docIndex[parent]
			minkowski.Log(n.tangent, ps.Point(parent), ps.Point(idx))
		}
		nodes[i] = n
	}
	return Clipboard{dim: ps.Dim, nodes: nodes}
}

// Cut is Copy followed by soft-deleting (hiding) the captured subtree
// in ps, returning the DeleteSubtree record alongside the clipboard.
func Cut(ps *pointset.PointSet, root int) (Clipboard, history.Record) {
	clip := Copy(ps, root)
	affected := ps.DeleteSubtree(root)
	return clip, history.Record{Kind: history.DeleteSubtree, Index: root, Affected: affected}
}

// Empty reports whether the clipboard holds a captured subtree.
func (c Clipboard) Empty() bool { return len(c.nodes) == 0 }

// Paste re-creates the clipboard's subtree under newParent in ps,
// coalescing each name against ps's name map: first a timestamp-suffix
// hint, then (if still taken) an incrementing counter retry, per
// spec.md §9. Returns the PasteSubtree record (Affected holds the new
// indices, root first) for history capture.
func Paste(ps *pointset.PointSet, clip Clipboard, newParent int, nowMs int64) (history.Record, error) {
	if clip.Empty() {
		return history.Record{}, ErrClipboardEmpty
	}
	if clip.dim != ps.Dim {
		return history.Record{}, ErrClipboardShape
	}
	if !ps.Has(newParent) {
		return history.Record{}, pointset.ErrNotFound
	}

	newIdx := make([]int, len(clip.nodes))
	for i, n := range clip.nodes {
		opts := pointset.AddOptions{
			Tags:    n.tags,
			Content: n.content,
			Name:    coalesceName(ps, n.name, nowMs),
		}
		opts.Tangent = n.tangent
		if n.docParent == -1 {
			opts.ParentIdx = newParent
		} else {
			opts.ParentIdx = newIdx[n.docParent]
		}

		idx, err := ps.AddPoint(opts)
		if err != nil {
			for _, created := range newIdx[:i] {
				ps.SetFlag(created, pointset.HIDDEN)
			}
			return history.Record{}, err
		}
		newIdx[i] = idx
		ps.Flags[idx] |= n.flags
		ps.Motif[idx] = n.motif
	}

	return history.Record{Kind: history.PasteSubtree, Index: newIdx[0], Affected: newIdx}, nil
}

// coalesceName returns a name guaranteed unused in ps: name itself if
// free, else name suffixed with nowMs, else that hint suffixed with an
// incrementing counter until the name map has no entry for it.
func coalesceName(ps *pointset.PointSet, name string, nowMs int64) string {
	if name == "" {
		return ""
	}
	if _, taken := ps.IndexOfName(name); !taken {
		return name
	}
	hint := fmt.Sprintf("%s_%d", name, nowMs)
	if _, taken := ps.IndexOfName(hint); !taken {
		return hint
	}
	for k := 1; ; k++ {
		candidate := fmt.Sprintf("%s_%d", hint, k)
		if _, taken := ps.IndexOfName(candidate); !taken {
			return candidate
		}
	}
}
