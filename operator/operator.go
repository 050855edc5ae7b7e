package operator

import (
	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// Operator is the capability set every concrete operator implements:
// apply a mutation, recover its inverse (once applied), and compose
// with a following operator.
type Operator interface {
	Apply(ps *pointset.PointSet) (history.Record, error)
	Inverse() (Operator, bool)
	Compose(next Operator) Operator
}

// fn adapts a plain apply function into an Operator, remembering its
// most recent record so Inverse can build a reversing Operator on
// demand.
type fn struct {
	name  string
	doApply func(ps *pointset.PointSet) (history.Record, error)
	last  *history.Record
}

// New wraps apply as an Operator named name (used only for the
// inverse's derived name, e.g. in diagnostics).
func New(name string, apply func(ps *pointset.PointSet) (history.Record, error)) Operator {
	return &fn{name: name, doApply: apply}
}

func (o *fn) Apply(ps *pointset.PointSet) (history.Record, error) {
	r, err := o.doApply(ps)
	if err != nil {
		return history.Record{}, err
	}
	o.last = &r
	return r, nil
}

func (o *fn) Inverse() (Operator, bool) {
	if o.last == nil {
		return nil, false
	}
	rec := *o.last
	return New("inverse("+o.name+")", func(ps *pointset.PointSet) (history.Record, error) {
		if err := history.Reverse(ps, rec); err != nil {
			return history.Record{}, err
		}
		return swapRecord(rec), nil
	}), true
}

func (o *fn) Compose(next Operator) Operator {
	return Sequence(o, next)
}

// swapRecord returns a record describing the inverse mutation of r:
// applying history.Apply to the result produces the same effect as
// history.Reverse(r), and vice versa. Self-symmetric kinds (those
// whose Apply/Reverse already perform the opposite flag flip) are
// returned unchanged.
func swapRecord(r history.Record) history.Record {
	switch r.Kind {
	case history.MovePoint:
		r.OldCoords, r.NewCoords = r.NewCoords, r.OldCoords
	case history.Reparent:
		r.OldParent, r.NewParent = r.NewParent, r.OldParent
		r.OldDepth, r.NewDepth = r.NewDepth, r.OldDepth
	case history.Rename:
		r.OldName, r.NewName = r.NewName, r.OldName
	case history.FoldSubtree:
		r.Kind = history.UnfoldSubtree
	case history.UnfoldSubtree:
		r.Kind = history.FoldSubtree
	case history.CreatePoint:
		r.Kind = history.DeletePoint
	case history.DeletePoint:
		r.Kind = history.CreatePoint
	case history.PasteSubtree:
		r.Kind = history.DeleteSubtree
	case history.DeleteSubtree:
		r.Kind = history.PasteSubtree
	case history.Batch:
		children := make([]history.Record, len(r.Children))
		for i, c := range r.Children {
			children[len(r.Children)-1-i] = swapRecord(c)
		}
		r.Children = children
	}
	return r
}
