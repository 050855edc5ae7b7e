package render

import "github.com/uprootiny/umbra-sub002/pointset"

// DirtyBit marks which aspect of a point's render state is stale.
type DirtyBit uint8

// Dirty bits, per spec.md §4.4.
const (
	COORDS DirtyBit = 1 << iota
	VISIBLE
	PROJECTED
	STYLE
)

// RadiusByLOD gives the screen radius (in screen units) assigned to
// each LOD bucket during projection; index 3 (culled) is never drawn,
// its radius is present only for completeness.
var RadiusByLOD = [4]float64{6, 4, 2, 1}

// LODGroup records the contiguous [start, count) range of RenderOrder
// belonging to one LOD bucket.
type LODGroup struct {
	Start, Count int
}

// Stats summarizes one projection pass.
type Stats struct {
	Projected    int
	Culled       int
	FrameTimeMs  float64
}

// EdgeSet is the flat (x1,y1,x2,y2) tuple array for projected edges.
type EdgeSet struct {
	X1, Y1, X2, Y2 []float64
	Count          int
}

func (e *EdgeSet) reset(capacity int) {
	if cap(e.X1) < capacity {
		e.X1 = make([]float64, capacity)
		e.Y1 = make([]float64, capacity)
		e.X2 = make([]float64, capacity)
		e.Y2 = make([]float64, capacity)
	}
	e.Count = 0
}

func (e *EdgeSet) push(x1, y1, x2, y2 float64) {
	e.X1[e.Count] = x1
	e.Y1[e.Count] = y1
	e.X2[e.Count] = x2
	e.Y2[e.Count] = y2
	e.Count++
}

// Batch holds the pre-allocated columnar projection output for up to
// MaxPoints live points, in point-set index order, plus the derived
// render order, LOD groups, and edge set.
type Batch struct {
	MaxPoints int

	ScreenX, ScreenY []float64
	Radius           []float64
	Depth            []int
	Flags            []pointset.Flag
	LOD              []int

	RenderOrder []int
	LODGroups   [4]LODGroup
	RenderCount int

	Edges EdgeSet
	Stats Stats
}

// NewBatch allocates a Batch with room for maxPoints points.
func NewBatch(maxPoints int) *Batch {
	return &Batch{
		MaxPoints:   maxPoints,
		ScreenX:     make([]float64, maxPoints),
		ScreenY:     make([]float64, maxPoints),
		Radius:      make([]float64, maxPoints),
		Depth:       make([]int, maxPoints),
		Flags:       make([]pointset.Flag, maxPoints),
		LOD:         make([]int, maxPoints),
		RenderOrder: make([]int, maxPoints),
	}
}
