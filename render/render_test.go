package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uprootiny/umbra-sub002/chart"
	"github.com/uprootiny/umbra-sub002/pointset"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func originPoint(dim int) []float64 {
	x := make([]float64, dim+1)
	x[0] = 1
	return x
}

func newTestLens() *chart.Lens {
	return chart.New(2, chart.NewTangent(originPoint(2), 1, 2),
		chart.Viewport{Width: 800, Height: 600, Scale: 100},
		chart.Aperture{Near: 0, Far: 5}, [3]float64{1, 2, 3})
}

func TestProjectBatchCullsOutOfAperture(t *testing.T) {
	ps := pointset.New(2, 8)
	r, _ := ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	near, _ := ps.AddPoint(pointset.AddOptions{ParentIdx: r, Tangent: []float64{0, 0.3, 0}})
	far, _ := ps.AddPoint(pointset.AddOptions{ParentIdx: r, Tangent: []float64{0, 9, 0}})

	renderer := NewRenderer(ps, newTestLens(), 8)
	changed := renderer.ProjectBatch(false)
	require.True(t, changed)

	require.Less(t, renderer.Batch.LOD[near], 3)
	require.Equal(t, 3, renderer.Batch.LOD[far])
	require.Equal(t, 2, renderer.Batch.Stats.Projected) // r + near
	require.Equal(t, 1, renderer.Batch.Stats.Culled)
}

func TestSortRenderOrderPaintsFarFirst(t *testing.T) {
	ps := pointset.New(2, 8)
	r, _ := ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	a, _ := ps.AddPoint(pointset.AddOptions{ParentIdx: r, Tangent: []float64{0, 0.2, 0}})
	b, _ := ps.AddPoint(pointset.AddOptions{ParentIdx: a, Tangent: []float64{0, 0.2, 0}})

	renderer := NewRenderer(ps, newTestLens(), 8)
	renderer.ProjectBatch(false)
	renderer.SortRenderOrder()

	// all at LOD 0 (within aperture & close), so order should be by depth
	// descending: b (depth 2) before a (depth 1) before r (depth 0).
	order := renderer.Batch.RenderOrder
	posB, posA, posR := indexOf(order, b), indexOf(order, a), indexOf(order, r)
	require.Less(t, posB, posA)
	require.Less(t, posA, posR)
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func TestProjectEdgesSkipsCulledEndpoints(t *testing.T) {
	ps := pointset.New(2, 8)
	r, _ := ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	near, _ := ps.AddPoint(pointset.AddOptions{ParentIdx: r, Tangent: []float64{0, 0.3, 0}})
	far, _ := ps.AddPoint(pointset.AddOptions{ParentIdx: r, Tangent: []float64{0, 9, 0}})

	renderer := NewRenderer(ps, newTestLens(), 8)
	renderer.ProjectBatch(false)
	renderer.ProjectEdges()

	require.Equal(t, 1, renderer.Batch.Edges.Count) // only r->near
	_ = far
	_ = near
}

func TestFrameBudgetDegradesWithFrameTime(t *testing.T) {
	b := ComputeFrameBudget(1)
	require.Equal(t, 3, b.LODLimit)
	require.True(t, b.CanAnimate)

	b = ComputeFrameBudget(8)
	require.Equal(t, 2, b.LODLimit)

	b = ComputeFrameBudget(11)
	require.Equal(t, 1, b.LODLimit)
	require.False(t, b.CanAnimate)

	b = ComputeFrameBudget(15)
	require.Equal(t, 0, b.LODLimit)
}

func TestBuildCommandsOrder(t *testing.T) {
	budget := FrameBudget{LODLimit: 2, EdgeLimit: 10, CanAnimate: true}
	cmds := BuildCommands(budget, 50)
	require.Equal(t, CmdClear, cmds[0].Kind)
	require.Equal(t, CmdEdges, cmds[1].Kind)
	require.Equal(t, 10, cmds[1].Count)
	require.Len(t, cmds, 2+3) // clear + edges + lod0..2
}

func TestMarkDirtyAndCleanCounting(t *testing.T) {
	ps := pointset.New(2, 4)
	ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	renderer := NewRenderer(ps, newTestLens(), 4)
	renderer.MarkClean(0)
	require.Equal(t, 3, renderer.DirtyCount()) // other 3 slots still dirty from init
	renderer.MarkDirty(0, COORDS)
	require.Equal(t, 4, renderer.DirtyCount())
}
