package history

import "github.com/uprootiny/umbra-sub002/pointset"

// Kind discriminates the shape of a Record's payload.
type Kind int

const (
	CreatePoint Kind = iota
	DeletePoint
	MovePoint
	Reparent
	Rename
	ToggleFlag
	Batch
	PasteSubtree
	DeleteSubtree
	FoldSubtree
	UnfoldSubtree
)

func (k Kind) String() string {
	switch k {
	case CreatePoint:
		return "CreatePoint"
	case DeletePoint:
		return "DeletePoint"
	case MovePoint:
		return "MovePoint"
	case Reparent:
		return "Reparent"
	case Rename:
		return "Rename"
	case ToggleFlag:
		return "ToggleFlag"
	case Batch:
		return "Batch"
	case PasteSubtree:
		return "PasteSubtree"
	case DeleteSubtree:
		return "DeleteSubtree"
	case FoldSubtree:
		return "FoldSubtree"
	case UnfoldSubtree:
		return "UnfoldSubtree"
	default:
		return "Unknown"
	}
}

// Record is a tagged union over every history-producing mutation.
// Only the fields relevant to Kind are populated; apply/reverse read
// exactly those.
type Record struct {
	Kind  Kind
	Index int // primary point affected; root index for subtree records

	OldCoords, NewCoords []float64 // MovePoint
	OldParent, NewParent int       // Reparent
	OldDepth, NewDepth   int       // Reparent (informational; depth is recomputed by Reparent)
	OldName, NewName     string    // Rename
	Flag                 pointset.Flag // ToggleFlag

	Affected []int // DeleteSubtree / PasteSubtree / DeletePoint-with-cascade

	Children []Record // Batch, applied/reversed in order/reverse-order

	TimestampMs int64 // ms since epoch per the injected Clock, for coalescing
}

// Apply replays r forward on ps (used by Redo). Total for every Kind.
func Apply(ps *pointset.PointSet, r Record) error {
	switch r.Kind {
	case CreatePoint:
		ps.ClearFlag(r.Index, pointset.HIDDEN)
		return nil
	case DeletePoint:
		ps.SetFlag(r.Index, pointset.HIDDEN)
		return nil
	case MovePoint:
		return ps.SetPoint(r.Index, r.NewCoords)
	case Reparent:
		_, _, err := ps.Reparent(r.Index, r.NewParent)
		return err
	case Rename:
		return ps.Rename(r.Index, r.NewName)
	case ToggleFlag:
		ps.ToggleFlag(r.Index, r.Flag)
		return nil
	case Batch:
		for _, child := range r.Children {
			if err := Apply(ps, child); err != nil {
				return err
			}
		}
		return nil
	case PasteSubtree:
		ps.RestoreSubtree(r.Affected)
		return nil
	case DeleteSubtree:
		for _, idx := range r.Affected {
			ps.SetFlag(idx, pointset.HIDDEN)
		}
		return nil
	case FoldSubtree:
		for _, idx := range r.Affected {
			ps.SetFlag(idx, pointset.HIDDEN|pointset.FOLDED)
		}
		return nil
	case UnfoldSubtree:
		for _, idx := range r.Affected {
			ps.ClearFlag(idx, pointset.HIDDEN|pointset.FOLDED)
		}
		return nil
	default:
		return nil
	}
}

// Reverse undoes r on ps (used by Undo). Total for every Kind.
func Reverse(ps *pointset.PointSet, r Record) error {
	switch r.Kind {
	case CreatePoint:
		ps.SetFlag(r.Index, pointset.HIDDEN)
		return nil
	case DeletePoint:
		ps.ClearFlag(r.Index, pointset.HIDDEN)
		return nil
	case MovePoint:
		return ps.SetPoint(r.Index, r.OldCoords)
	case Reparent:
		_, _, err := ps.Reparent(r.Index, r.OldParent)
		return err
	case Rename:
		return ps.Rename(r.Index, r.OldName)
	case ToggleFlag:
		ps.ToggleFlag(r.Index, r.Flag)
		return nil
	case Batch:
		for i := len(r.Children) - 1; i >= 0; i-- {
			if err := Reverse(ps, r.Children[i]); err != nil {
				return err
			}
		}
		return nil
	case PasteSubtree:
		for _, idx := range r.Affected {
			ps.SetFlag(idx, pointset.HIDDEN)
		}
		return nil
	case DeleteSubtree:
		ps.RestoreSubtree(r.Affected)
		return nil
	case FoldSubtree:
		for _, idx := range r.Affected {
			ps.ClearFlag(idx, pointset.HIDDEN|pointset.FOLDED)
		}
		return nil
	case UnfoldSubtree:
		for _, idx := range r.Affected {
			ps.SetFlag(idx, pointset.HIDDEN|pointset.FOLDED)
		}
		return nil
	default:
		return nil
	}
}
