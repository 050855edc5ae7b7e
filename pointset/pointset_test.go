package pointset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddPointTreeAndTriangle(t *testing.T) {
	ps := New(2, 8)
	r, err := ps.AddPoint(AddOptions{Name: "r", ParentIdx: -1})
	require.NoError(t, err)

	a, err := ps.AddPoint(AddOptions{Name: "a", ParentIdx: r, Tangent: []float64{0, 0.5, 0}})
	require.NoError(t, err)

	b, err := ps.AddPoint(AddOptions{Name: "b", ParentIdx: r, Tangent: []float64{0, -0.5, 0}})
	require.NoError(t, err)

	require.Equal(t, 1, ps.Depth[a])
	require.Equal(t, 1, ps.Depth[b])
	require.InDelta(t, 0.5, ps.Distance(r, a), 1e-5)
	require.InDelta(t, 0.5, ps.Distance(r, b), 1e-5)

	dab := ps.Distance(a, b)
	dar := ps.Distance(a, r)
	drb := ps.Distance(r, b)
	require.Greater(t, dab, dar+drb-1e-5)
	require.True(t, ps.HasFlag(r, ROOT))
	require.False(t, ps.HasFlag(a, ROOT))
}

func TestAddPointFullReturnsError(t *testing.T) {
	ps := New(2, 1)
	_, err := ps.AddPoint(AddOptions{Name: "only", ParentIdx: -1})
	require.NoError(t, err)
	idx, err := ps.AddPoint(AddOptions{Name: "overflow", ParentIdx: -1})
	require.ErrorIs(t, err, ErrFull)
	require.Equal(t, -1, idx)
	require.Equal(t, 1, ps.Count())
}

func TestRenameConflict(t *testing.T) {
	ps := New(2, 4)
	a, _ := ps.AddPoint(AddOptions{Name: "a", ParentIdx: -1})
	_, _ = ps.AddPoint(AddOptions{Name: "b", ParentIdx: -1})
	err := ps.Rename(a, "b")
	require.ErrorIs(t, err, ErrNameConflict)
}

func TestNameIndexBijection(t *testing.T) {
	ps := New(2, 4)
	idx, _ := ps.AddPoint(AddOptions{Name: "root", ParentIdx: -1})
	got, ok := ps.IndexOfName("root")
	require.True(t, ok)
	require.Equal(t, idx, got)
	require.Equal(t, "root", ps.Meta(idx).Name)

	require.NoError(t, ps.Rename(idx, "renamed"))
	_, ok = ps.IndexOfName("root")
	require.False(t, ok)
	got2, ok := ps.IndexOfName("renamed")
	require.True(t, ok)
	require.Equal(t, idx, got2)
}

func TestDescendantsAndAncestors(t *testing.T) {
	ps := New(2, 8)
	r, _ := ps.AddPoint(AddOptions{Name: "r", ParentIdx: -1})
	a, _ := ps.AddPoint(AddOptions{Name: "a", ParentIdx: r, Tangent: []float64{0, 0.3, 0}})
	b, _ := ps.AddPoint(AddOptions{Name: "b", ParentIdx: a, Tangent: []float64{0, 0.3, 0}})

	desc := ps.Descendants(r)
	require.ElementsMatch(t, []int{a, b}, desc)

	anc := ps.Ancestors(b)
	require.Equal(t, []int{a, r}, anc)
}

func TestFoldUnfoldSubtree(t *testing.T) {
	ps := New(2, 8)
	r, _ := ps.AddPoint(AddOptions{Name: "r", ParentIdx: -1})
	a, _ := ps.AddPoint(AddOptions{Name: "a", ParentIdx: r, Tangent: []float64{0, 0.3, 0}})
	b, _ := ps.AddPoint(AddOptions{Name: "b", ParentIdx: a, Tangent: []float64{0, 0.3, 0}})

	affected := ps.FoldSubtree(r)
	require.ElementsMatch(t, []int{a, b}, affected)
	require.True(t, ps.HasFlag(a, HIDDEN|FOLDED))
	require.True(t, ps.HasFlag(b, HIDDEN|FOLDED))

	restored := ps.UnfoldSubtree(r)
	require.ElementsMatch(t, []int{a, b}, restored)
	require.False(t, ps.HasFlag(a, HIDDEN))
	require.False(t, ps.HasFlag(b, HIDDEN))
}

func TestDeleteSubtreeAndRestore(t *testing.T) {
	ps := New(2, 8)
	r, _ := ps.AddPoint(AddOptions{Name: "r", ParentIdx: -1})
	a, _ := ps.AddPoint(AddOptions{Name: "a", ParentIdx: r, Tangent: []float64{0, 0.3, 0}})

	affected := ps.DeleteSubtree(r)
	require.ElementsMatch(t, []int{r, a}, affected)
	require.True(t, ps.HasFlag(r, HIDDEN))

	ps.RestoreSubtree(affected)
	require.False(t, ps.HasFlag(r, HIDDEN))
}

func TestReparentUpdatesDepthsRecursively(t *testing.T) {
	ps := New(2, 8)
	r1, _ := ps.AddPoint(AddOptions{Name: "r1", ParentIdx: -1})
	r2, _ := ps.AddPoint(AddOptions{Name: "r2", ParentIdx: -1})
	a, _ := ps.AddPoint(AddOptions{Name: "a", ParentIdx: r1, Tangent: []float64{0, 0.2, 0}})
	b, _ := ps.AddPoint(AddOptions{Name: "b", ParentIdx: a, Tangent: []float64{0, 0.2, 0}})

	oldParent, oldDepth, err := ps.Reparent(a, r2)
	require.NoError(t, err)
	require.Equal(t, r1, oldParent)
	require.Equal(t, 1, oldDepth)
	require.Equal(t, 1, ps.Depth[a])
	require.Equal(t, 2, ps.Depth[b])
}

func TestKNearestMatchesExhaustiveOrdering(t *testing.T) {
	ps := New(2, 16)
	r, _ := ps.AddPoint(AddOptions{Name: "r", ParentIdx: -1})
	for i := 0; i < 10; i++ {
		ps.AddPoint(AddOptions{Tangent: []float64{0, float64(i) * 0.1, 0.05}, ParentIdx: r})
	}
	k := ps.KNearest(r, 3)
	require.Len(t, k, 3)
	prev := 0.0
	for _, idx := range k {
		d := ps.Distance(r, idx)
		require.GreaterOrEqual(t, d, prev)
		prev = d
	}
}
