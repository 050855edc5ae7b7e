package operator

import (
	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// setSelected builds the Batch record for moving exactly the points in
// want into the selected set, toggling SELECTED only on indices whose
// membership actually changes.
func setSelected(ps *pointset.PointSet, want map[int]bool) history.Record {
	var children []history.Record
	current := map[int]bool{}
	for _, i := range ps.Selected() {
		current[i] = true
	}
	for i := 0; i < ps.Count(); i++ {
		if want[i] && !current[i] {
			ps.SetFlag(i, pointset.SELECTED)
			children = append(children, history.Record{Kind: history.ToggleFlag, Index: i, Flag: pointset.SELECTED})
		} else if !want[i] && current[i] {
			ps.ClearFlag(i, pointset.SELECTED)
			children = append(children, history.Record{Kind: history.ToggleFlag, Index: i, Flag: pointset.SELECTED})
		}
	}
	return history.Record{Kind: history.Batch, Children: children}
}

// Select replaces the selection with every live, non-hidden point
// satisfying pred.
func Select(pred func(ps *pointset.PointSet, i int) bool) Operator {
	return New("select", func(ps *pointset.PointSet) (history.Record, error) {
		want := map[int]bool{}
		for _, i := range ps.Visible() {
			if pred(ps, i) {
				want[i] = true
			}
		}
		return setSelected(ps, want), nil
	})
}

// SelectByName replaces the selection with the single point named
// name, or clears the selection if no such point exists.
func SelectByName(name string) Operator {
	return New("select_by_name", func(ps *pointset.PointSet) (history.Record, error) {
		want := map[int]bool{}
		if idx, ok := ps.IndexOfName(name); ok {
			want[idx] = true
		}
		return setSelected(ps, want), nil
	})
}

// SelectAll replaces the selection with every live, non-hidden point.
func SelectAll() Operator {
	return New("select_all", func(ps *pointset.PointSet) (history.Record, error) {
		want := map[int]bool{}
		for _, i := range ps.Visible() {
			want[i] = true
		}
		return setSelected(ps, want), nil
	})
}

// DeselectAll clears the selection.
func DeselectAll() Operator {
	return New("deselect_all", func(ps *pointset.PointSet) (history.Record, error) {
		return setSelected(ps, map[int]bool{}), nil
	})
}

// ExpandSelection replaces the selection with the direct children of
// every currently selected point (the selected points themselves are
// dropped).
func ExpandSelection() Operator {
	return New("expand_selection", func(ps *pointset.PointSet) (history.Record, error) {
		want := map[int]bool{}
		for _, i := range ps.Selected() {
			for _, c := range ps.Children(i) {
				want[c] = true
			}
		}
		return setSelected(ps, want), nil
	})
}

// ExpandSelectionFull replaces the selection with every descendant of
// every currently selected point.
func ExpandSelectionFull() Operator {
	return New("expand_selection_full", func(ps *pointset.PointSet) (history.Record, error) {
		want := map[int]bool{}
		for _, i := range ps.Selected() {
			for _, d := range ps.Descendants(i) {
				want[d] = true
			}
		}
		return setSelected(ps, want), nil
	})
}

// ContractSelection replaces the selection with the parent of every
// currently selected non-root point.
func ContractSelection() Operator {
	return New("contract_selection", func(ps *pointset.PointSet) (history.Record, error) {
		want := map[int]bool{}
		for _, i := range ps.Selected() {
			anc := ps.Ancestors(i)
			if len(anc) > 0 {
				want[anc[0]] = true
			}
		}
		return setSelected(ps, want), nil
	})
}
