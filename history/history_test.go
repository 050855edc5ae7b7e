package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uprootiny/umbra-sub002/pointset"
)

type stepClock struct{ t time.Time }

func (c *stepClock) Now() time.Time { return c.t }
func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newPS() (*pointset.PointSet, int) {
	ps := pointset.New(2, 8)
	r, _ := ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	return ps, r
}

func TestMovePointUndoRedo(t *testing.T) {
	ps, r := newPS()
	old := append([]float64(nil), ps.Point(r)...)
	newCoords := []float64{2, 1.5, 0}

	s := New()
	require.NoError(t, ps.SetPoint(r, newCoords))
	s.Push(Record{Kind: MovePoint, Index: r, OldCoords: old, NewCoords: append([]float64(nil), ps.Point(r)...)})

	_, err := s.Undo(ps)
	require.NoError(t, err)
	require.InDeltaSlice(t, old, ps.Point(r), 1e-9)

	_, err = s.Redo(ps)
	require.NoError(t, err)
	require.False(t, s.CanRedo())
}

func TestCoalescingMergesWithinWindow(t *testing.T) {
	ps, r := newPS()
	clock := &stepClock{t: time.Unix(0, 0)}
	s := New()
	s.SetClock(clock)

	c0 := append([]float64(nil), ps.Point(r)...)
	for i := 0; i < 5; i++ {
		c1 := append([]float64(nil), ps.Point(r)...)
		clock.advance(10 * time.Millisecond)
		s.Push(Record{Kind: MovePoint, Index: r, OldCoords: c1, NewCoords: c1})
	}
	require.Len(t, s.past, 1)
	require.Equal(t, c0, s.past[0].OldCoords)
}

func TestCoalescingBreaksAcrossWindow(t *testing.T) {
	ps, r := newPS()
	clock := &stepClock{t: time.Unix(0, 0)}
	s := New()
	s.SetClock(clock)

	c0 := append([]float64(nil), ps.Point(r)...)
	s.Push(Record{Kind: MovePoint, Index: r, OldCoords: c0, NewCoords: c0})
	clock.advance(CoalesceWindow + time.Millisecond)
	s.Push(Record{Kind: MovePoint, Index: r, OldCoords: c0, NewCoords: c0})
	require.Len(t, s.past, 2)
}

func TestCapacityDiscardsOldest(t *testing.T) {
	s := New()
	clock := &stepClock{t: time.Unix(0, 0)}
	s.SetClock(clock)
	for i := 0; i < Capacity+10; i++ {
		clock.advance(CoalesceWindow + time.Millisecond)
		s.Push(Record{Kind: ToggleFlag, Index: i, Flag: pointset.PINNED})
	}
	require.Len(t, s.past, Capacity)
	require.Equal(t, 10, s.past[0].Index)
}

func TestPushClearsFuture(t *testing.T) {
	ps, r := newPS()
	s := New()
	s.Push(Record{Kind: ToggleFlag, Index: r, Flag: pointset.PINNED})
	require.NoError(t, ps.Rename(r, "anything")) // unrelated mutation
	_, err := s.Undo(ps)
	require.NoError(t, err)
	require.True(t, s.CanRedo())

	s.Push(Record{Kind: ToggleFlag, Index: r, Flag: pointset.SELECTED})
	require.False(t, s.CanRedo())
}

func TestTransactionCommitEmitsSingleBatch(t *testing.T) {
	ps, r := newPS()
	s := New()
	require.NoError(t, s.BeginTransaction())
	s.Push(Record{Kind: ToggleFlag, Index: r, Flag: pointset.PINNED})
	s.Push(Record{Kind: ToggleFlag, Index: r, Flag: pointset.SELECTED})
	require.NoError(t, s.Commit())

	require.Len(t, s.past, 1)
	require.Equal(t, Batch, s.past[0].Kind)
	require.Len(t, s.past[0].Children, 2)

	ps.ToggleFlag(r, pointset.PINNED)
	ps.ToggleFlag(r, pointset.SELECTED)
	_, err := s.Undo(ps)
	require.NoError(t, err)
	require.False(t, ps.HasFlag(r, pointset.PINNED))
	require.False(t, ps.HasFlag(r, pointset.SELECTED))
}

func TestTransactionRollbackReversesWithoutHistory(t *testing.T) {
	ps, r := newPS()
	s := New()
	require.NoError(t, s.BeginTransaction())

	ps.SetFlag(r, pointset.PINNED)
	s.Push(Record{Kind: ToggleFlag, Index: r, Flag: pointset.PINNED})

	require.NoError(t, s.Rollback(ps))
	require.False(t, ps.HasFlag(r, pointset.PINNED))
	require.Len(t, s.past, 0)
}

func TestDeleteSubtreeUndoRestoresHidden(t *testing.T) {
	ps, r := newPS()
	a, _ := ps.AddPoint(pointset.AddOptions{Name: "a", ParentIdx: r, Tangent: []float64{0, 0.2, 0}})

	affected := ps.DeleteSubtree(r)
	s := New()
	s.Push(Record{Kind: DeleteSubtree, Index: r, Affected: affected})

	_, err := s.Undo(ps)
	require.NoError(t, err)
	require.False(t, ps.HasFlag(r, pointset.HIDDEN))
	require.False(t, ps.HasFlag(a, pointset.HIDDEN))

	_, err = s.Redo(ps)
	require.NoError(t, err)
	require.True(t, ps.HasFlag(r, pointset.HIDDEN))
	require.True(t, ps.HasFlag(a, pointset.HIDDEN))
}

func TestUndoRedoEmptyReturnsErrEmpty(t *testing.T) {
	s := New()
	_, err := s.Undo(nil)
	require.ErrorIs(t, err, ErrEmpty)
	_, err = s.Redo(nil)
	require.ErrorIs(t, err, ErrEmpty)
}
