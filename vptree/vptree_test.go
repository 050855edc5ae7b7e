package vptree

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uprootiny/umbra-sub002/pointset"
)

func buildRandomSet(t *testing.T, dim, n int) *pointset.PointSet {
	t.Helper()
	ps := pointset.New(dim, n+1)
	root, err := ps.AddPoint(pointset.AddOptions{Name: "origin", ParentIdx: -1})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < n; i++ {
		tangent := make([]float64, dim+1)
		for d := 1; d <= dim; d++ {
			tangent[d] = (rng.Float64()*2 - 1) * 2
		}
		_, err := ps.AddPoint(pointset.AddOptions{ParentIdx: root, Tangent: tangent})
		require.NoError(t, err)
	}
	return ps
}

func TestKNearestMatchesLinearScan(t *testing.T) {
	ps := buildRandomSet(t, 5, 1000)
	idx := New(ps)

	query := 0
	got := idx.KNearest(query, 8)
	want := ps.KNearest(query, 8)

	require.Len(t, got, len(want))
	for i := range got {
		require.Equal(t, want[i], got[i].Index, "position %d", i)
	}
}

func TestNearestEmptySetReturnsNotOK(t *testing.T) {
	ps := pointset.New(2, 1)
	ps.AddPoint(pointset.AddOptions{Name: "solo", ParentIdx: -1})
	idx := New(ps)
	_, ok := idx.Nearest(0)
	require.False(t, ok)
}

func TestKNearestWithKGreaterThanNReturnsAll(t *testing.T) {
	ps := buildRandomSet(t, 3, 5)
	idx := New(ps)
	got := idx.KNearest(0, 100)
	require.Len(t, got, 5)
}

func TestRangeQueryWithinRadius(t *testing.T) {
	ps := buildRandomSet(t, 3, 200)
	idx := New(ps)
	r := 1.0
	got := idx.RangeQuery(0, r)
	for _, res := range got {
		require.LessOrEqual(t, res.Dist, r+1e-9)
	}

	// cross-check against linear scan count
	count := 0
	for i := 1; i <= 200; i++ {
		if ps.Distance(0, i) <= r {
			count++
		}
	}
	require.Equal(t, count, len(got))
}

func TestRebuildTriggersAfterInserts(t *testing.T) {
	ps := pointset.New(2, 64)
	root, _ := ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	idx := New(ps)
	idx.Rebuild()
	for i := 0; i < 40; i++ {
		ps.AddPoint(pointset.AddOptions{ParentIdx: root, Tangent: []float64{0, float64(i) * 0.01, 0}})
		idx.NotifyInsert()
	}
	require.True(t, idx.stale())
	idx.ensureFresh()
	require.False(t, idx.stale())
}

func TestSortedByDistance(t *testing.T) {
	ps := buildRandomSet(t, 4, 300)
	idx := New(ps)
	got := idx.KNearest(5, 10)
	require.True(t, sort.SliceIsSorted(got, func(a, b int) bool { return got[a].Dist < got[b].Dist }))
	require.False(t, math.IsNaN(got[0].Dist))
}
