package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// star builds a root with n children, all placed at the same point 0.01
// from root along axis 1 (coincident with each other), so layouts have
// nontrivial work to do moving them apart.
func star(n int) (*pointset.PointSet, int, []int) {
	ps := pointset.New(3, 32)
	r, _ := ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	kids := make([]int, n)
	for i := 0; i < n; i++ {
		kids[i], _ = ps.AddPoint(pointset.AddOptions{ParentIdx: r, Tangent: []float64{0, 0.01, 0, 0}})
	}
	return ps, r, kids
}

func chain(depth int) (*pointset.PointSet, int) {
	ps := pointset.New(3, 32)
	r, _ := ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	parent := r
	for d := 0; d < depth; d++ {
		parent, _ = ps.AddPoint(pointset.AddOptions{ParentIdx: parent, Tangent: []float64{0, 0.01, 0, 0}})
	}
	return ps, r
}

func TestRadialSpreadsChildrenByAngularBudget(t *testing.T) {
	ps, r, kids := star(4)
	_, err := Radial(ps, r, RadialOptions{EdgeLength: 1})
	require.NoError(t, err)

	for _, c := range kids {
		require.InDelta(t, 1/(1+0.2), ps.Distance(r, c), 1e-6)
	}

	// with equal subtree sizes (all leaves) the four children should be
	// spread into four distinct quadrants: no two share a position.
	for i := 0; i < len(kids); i++ {
		for j := i + 1; j < len(kids); j++ {
			require.Greater(t, ps.Distance(kids[i], kids[j]), 1e-3)
		}
	}
}

func TestRadialEdgeLengthShrinksWithDepth(t *testing.T) {
	ps, r := chain(2)
	_, err := Radial(ps, r, RadialOptions{EdgeLength: 1})
	require.NoError(t, err)

	depth1 := ps.Children(r)[0]
	depth2 := ps.Children(depth1)[0]

	require.InDelta(t, 1/(1+0.2), ps.Distance(r, depth1), 1e-6)
	require.InDelta(t, 1/(1+0.4), ps.Distance(depth1, depth2), 1e-6)
}

func TestRadialSkipsPinnedChildren(t *testing.T) {
	ps, r, kids := star(2)
	ps.SetFlag(kids[0], pointset.PINNED)
	before := append([]float64(nil), ps.Point(kids[0])...)

	_, err := Radial(ps, r, RadialOptions{EdgeLength: 1})
	require.NoError(t, err)

	require.Equal(t, before, ps.Point(kids[0]))
	require.InDelta(t, 1/(1+0.2), ps.Distance(r, kids[1]), 1e-6)
}

func TestForceDirectedSeparatesCoincidentNodes(t *testing.T) {
	ps, r, kids := star(3)
	before := ps.Distance(kids[0], kids[1])

	rec, err := ForceDirected(ps, ForceDirectedOptions{MaxIterations: 20, TargetEdgeLen: 1})
	require.NoError(t, err)
	require.NotEmpty(t, rec.Children)

	after := ps.Distance(kids[0], kids[1])
	require.Greater(t, after, before)
	_ = r
}

func TestForceDirectedRootNeverMoves(t *testing.T) {
	ps, r, _ := star(3)
	before := append([]float64(nil), ps.Point(r)...)

	_, err := ForceDirected(ps, ForceDirectedOptions{MaxIterations: 10})
	require.NoError(t, err)

	require.Equal(t, before, ps.Point(r))
}

func TestForceDirectedConvergesWithinMaxIterations(t *testing.T) {
	ps, _, _ := star(5)
	rec, err := ForceDirected(ps, ForceDirectedOptions{MaxIterations: 50, Tolerance: 1e-2})
	require.NoError(t, err)
	// a converged run still reports whatever motion occurred; it must not error
	// and must terminate (the call returning at all demonstrates the loop bound).
	_ = rec
}

func TestHierarchicalPlacesLevelsAtIncreasingDepthDistance(t *testing.T) {
	ps, r := chain(3)
	_, err := Hierarchical(ps, r, HierarchicalOptions{LevelSpacing: 1, NodeSpacing: 1})
	require.NoError(t, err)

	d1 := ps.Children(r)[0]
	d2 := ps.Children(d1)[0]
	d3 := ps.Children(d2)[0]

	require.InDelta(t, 1.0, ps.Distance(r, d1), 1e-6)
	require.Greater(t, ps.Distance(r, d2), ps.Distance(r, d1))
	require.Greater(t, ps.Distance(r, d3), ps.Distance(r, d2))
}

func TestHierarchicalSeparatesSiblingsWithinLevel(t *testing.T) {
	ps, r, kids := star(3)
	_, err := Hierarchical(ps, r, HierarchicalOptions{LevelSpacing: 1, NodeSpacing: 1})
	require.NoError(t, err)

	require.Greater(t, ps.Distance(kids[0], kids[1]), 1e-3)
	require.Greater(t, ps.Distance(kids[1], kids[2]), 1e-3)
}

func TestSpreadChildrenEqualAngularShareRegardlessOfSubtreeSize(t *testing.T) {
	ps, r, kids := star(3)
	// give one child a large subtree; SpreadChildren should still split evenly.
	_, err := ps.AddPoint(pointset.AddOptions{ParentIdx: kids[0], Tangent: []float64{0, 0, 0.01, 0}})
	require.NoError(t, err)

	_, err = SpreadChildren(ps, r, 1, 1, 2)
	require.NoError(t, err)

	for _, c := range kids {
		require.InDelta(t, 1.0, ps.Distance(r, c), 1e-6)
	}
}

func TestCenterOnRootMovesRootToOrigin(t *testing.T) {
	ps := pointset.New(2, 8)
	origin := []float64{1, 0, 0}
	tangent := []float64{0, 0.7, 0}
	offRoot := make([]float64, 3)
	minkowski.Exp(offRoot, origin, tangent)

	r, err := ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1, Coords: offRoot})
	require.NoError(t, err)
	a, err := ps.AddPoint(pointset.AddOptions{Name: "a", ParentIdx: r, Tangent: []float64{0, 0.3, 0}})
	require.NoError(t, err)

	daBefore := ps.Distance(r, a)

	_, err = CenterOnRoot(ps, r)
	require.NoError(t, err)

	require.InDelta(t, 0, minkowski.Dist(ps.Point(r), origin), 1e-6)
	require.InDelta(t, daBefore, ps.Distance(r, a), 1e-5)
}

func TestCompactClusterPullsPointsTowardCentroid(t *testing.T) {
	ps := pointset.New(2, 8)
	r, _ := ps.AddPoint(pointset.AddOptions{Name: "r", ParentIdx: -1})
	a, _ := ps.AddPoint(pointset.AddOptions{Name: "a", ParentIdx: r, Tangent: []float64{0, 0.9, 0}})
	b, _ := ps.AddPoint(pointset.AddOptions{Name: "b", ParentIdx: r, Tangent: []float64{0, -0.9, 0.1}})

	before := ps.Distance(a, b)
	_, err := CompactCluster(ps, []int{r, a, b}, 0.5)
	require.NoError(t, err)
	after := ps.Distance(a, b)

	require.Less(t, after, before)
}

func TestCompactClusterEmptySetIsNoOp(t *testing.T) {
	ps := pointset.New(2, 4)
	rec, err := CompactCluster(ps, nil, 0.5)
	require.NoError(t, err)
	require.Empty(t, rec.Children)
}

func TestRadialAngleIsFiniteForSingleChild(t *testing.T) {
	ps, r, kids := star(1)
	_, err := Radial(ps, r, RadialOptions{EdgeLength: 2})
	require.NoError(t, err)
	require.False(t, math.IsNaN(ps.Point(kids[0])[1]))
}
