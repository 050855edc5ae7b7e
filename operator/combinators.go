package operator

import (
	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// Sequence applies each operator in order, collecting their records
// into one Batch. An error from any step stops the sequence and is
// returned; records from steps that already ran are discarded by the
// caller along with the error (partial application is not rolled
// back — callers that need atomicity should run Sequence inside a
// history transaction).
func Sequence(ops ...Operator) Operator {
	return New("sequence", func(ps *pointset.PointSet) (history.Record, error) {
		var children []history.Record
		for _, op := range ops {
			r, err := op.Apply(ps)
			if err != nil {
				return history.Record{}, err
			}
			children = append(children, r)
		}
		return history.Record{Kind: history.Batch, Children: children}, nil
	})
}

// Conditional applies op only if pred(ps) is true at the time of
// application; otherwise it is a no-op with an empty Batch record.
func Conditional(pred func(ps *pointset.PointSet) bool, op Operator) Operator {
	return New("conditional", func(ps *pointset.PointSet) (history.Record, error) {
		if !pred(ps) {
			return history.Record{Kind: history.Batch}, nil
		}
		return op.Apply(ps)
	})
}

// Repeat applies op n times in sequence, collecting each application's
// record into one Batch. n <= 0 is a no-op.
func Repeat(op Operator, n int) Operator {
	return New("repeat", func(ps *pointset.PointSet) (history.Record, error) {
		var children []history.Record
		for k := 0; k < n; k++ {
			r, err := op.Apply(ps)
			if err != nil {
				return history.Record{}, err
			}
			children = append(children, r)
		}
		return history.Record{Kind: history.Batch, Children: children}, nil
	})
}

// OnSelection builds and applies one operator per currently selected
// index (snapshotted before any are applied), via build, collecting
// their records into one Batch.
func OnSelection(build func(idx int) Operator) Operator {
	return New("on_selection", func(ps *pointset.PointSet) (history.Record, error) {
		sel := append([]int(nil), ps.Selected()...)
		var children []history.Record
		for _, idx := range sel {
			r, err := build(idx).Apply(ps)
			if err != nil {
				return history.Record{}, err
			}
			children = append(children, r)
		}
		return history.Record{Kind: history.Batch, Children: children}, nil
	})
}
