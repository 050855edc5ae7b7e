package pointset

import (
	"sort"

	"github.com/uprootiny/umbra-sub002/minkowski"
)

// AddOptions configures AddPoint.
type AddOptions struct {
	// Coords, if non-nil, must have length dim+1 and need not already
	// lie on the hyperboloid; it is normalized via
	// minkowski.ProjectToHyperboloid before insertion. If nil and
	// ParentIdx names a parent, the new point is placed
	// at Exp_parent(Tangent) instead. If nil with no parent, the new
	// point is the origin (1,0,...,0).
	Coords []float64
	// Tangent is used only when Coords is nil and a parent is given: the
	// new point is Exp_parent(Tangent).
	Tangent []float64
	// ParentIdx is the parent's index, or -1 for a root.
	ParentIdx int
	Name      string
	Tags      []string
	Content   string
}

// AddPoint inserts a new point and returns its index, or -1 with
// ErrFull/ErrNameConflict/ErrNotFound/ErrInvalidPoint on failure. On any
// failure the PointSet is left unmutated.
func (ps *PointSet) AddPoint(opts AddOptions) (int, error) {
	ps.mu.Lock()
	ps.metaMu.Lock()
	defer ps.metaMu.Unlock()
	defer ps.mu.Unlock()

	if ps.count >= ps.Capacity {
		return -1, ErrFull
	}
	if opts.Name != "" {
		if _, taken := ps.nameToIdx[opts.Name]; taken {
			return -1, ErrNameConflict
		}
	}
	parentIdx := opts.ParentIdx
	if parentIdx >= 0 && (parentIdx >= ps.count) {
		return -1, ErrNotFound
	}

	idx := ps.count
	p := ps.Point(idx)

	switch {
	case opts.Coords != nil:
		copy(p, opts.Coords)
		if err := minkowski.ProjectToHyperboloid(p); err != nil {
			minkowski.NormalizeHyperboloid(p)
			if -minkowski.DotL(p, p)-1 > minkowski.EpsNorm*1e3 {
				return -1, ErrInvalidPoint
			}
		}
	case parentIdx >= 0 && opts.Tangent != nil:
		parent := ps.Point(parentIdx)
		tangent := make([]float64, ps.stride)
		minkowski.TangentProject(tangent, parent, opts.Tangent)
		minkowski.Exp(p, parent, tangent)
	default:
		p[0] = 1
		for i := 1; i < ps.stride; i++ {
			p[i] = 0
		}
	}

	if parentIdx >= 0 {
		ps.Depth[idx] = ps.Depth[parentIdx] + 1
		ps.Parent[idx] = parentIdx
		ps.Flags[idx] = 0
	} else {
		ps.Depth[idx] = 0
		ps.Parent[idx] = -1
		ps.Flags[idx] = ROOT
	}
	ps.clock++
	ps.Timestamp[idx] = ps.clock
	ps.Motif[idx] = -1
	ps.meta[idx] = Meta{Name: opts.Name, Tags: opts.Tags, Content: opts.Content}
	if opts.Name != "" {
		ps.nameToIdx[opts.Name] = idx
	}
	ps.count++
	return idx, nil
}

// Meta returns a copy of point i's side metadata.
func (ps *PointSet) Meta(i int) Meta {
	ps.metaMu.RLock()
	defer ps.metaMu.RUnlock()
	return ps.meta[i]
}

// IndexOfName returns the index of the point named name, or (-1, false).
func (ps *PointSet) IndexOfName(name string) (int, bool) {
	ps.metaMu.RLock()
	defer ps.metaMu.RUnlock()
	idx, ok := ps.nameToIdx[name]
	return idx, ok
}

// Rename changes point i's name, failing with ErrNameConflict if newName
// is already taken by a different live point, or ErrNotFound if i is out
// of range.
func (ps *PointSet) Rename(i int, newName string) error {
	ps.mu.RLock()
	inRange := i >= 0 && i < ps.count
	ps.mu.RUnlock()
	if !inRange {
		return ErrNotFound
	}
	ps.metaMu.Lock()
	defer ps.metaMu.Unlock()
	if existing, ok := ps.nameToIdx[newName]; ok && existing != i {
		return ErrNameConflict
	}
	old := ps.meta[i].Name
	if old != "" {
		delete(ps.nameToIdx, old)
	}
	ps.meta[i].Name = newName
	if newName != "" {
		ps.nameToIdx[newName] = i
	}
	return nil
}

// SetPoint overwrites point i's coordinates, normalizing onto the
// hyperboloid. Returns ErrInvalidPoint (state unchanged) if
// normalization cannot recover the invariant.
func (ps *PointSet) SetPoint(i int, coords []float64) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if i < 0 || i >= ps.count {
		return ErrNotFound
	}
	tmp := make([]float64, ps.stride)
	copy(tmp, coords)
	if err := minkowski.ProjectToHyperboloid(tmp); err != nil {
		minkowski.NormalizeHyperboloid(tmp)
		if -minkowski.DotL(tmp, tmp)-1 > minkowski.EpsNorm*1e3 {
			return ErrInvalidPoint
		}
	}
	copy(ps.Point(i), tmp)
	return nil
}

// Children returns the indices of all live points whose Parent is i, in
// index order. O(count).
func (ps *PointSet) Children(i int) []int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	var out []int
	for j := 0; j < ps.count; j++ {
		if ps.Parent[j] == i {
			out = append(out, j)
		}
	}
	return out
}

// Descendants returns all indices reachable from i by following Children
// transitively, via breadth-first traversal (i itself is not included).
func (ps *PointSet) Descendants(i int) []int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	var out []int
	queue := []int{i}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for j := 0; j < ps.count; j++ {
			if ps.Parent[j] == cur {
				out = append(out, j)
				queue = append(queue, j)
			}
		}
	}
	return out
}

// Ancestors returns the chain of parents from i up to (and including)
// its root, nearest first. Terminates within depth[i]+1 steps by the
// acyclicity invariant.
func (ps *PointSet) Ancestors(i int) []int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	var out []int
	steps := 0
	maxSteps := ps.Depth[i] + 1
	cur := ps.Parent[i]
	for cur >= 0 && steps <= maxSteps {
		out = append(out, cur)
		cur = ps.Parent[cur]
		steps++
	}
	return out
}

// HasFlag reports whether point i has flag set.
func (ps *PointSet) HasFlag(i int, flag Flag) bool {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.Flags[i]&flag != 0
}

// SetFlag sets flag on point i.
func (ps *PointSet) SetFlag(i int, flag Flag) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.Flags[i] |= flag
}

// ClearFlag clears flag on point i.
func (ps *PointSet) ClearFlag(i int, flag Flag) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.Flags[i] &^= flag
}

// ToggleFlag flips flag on point i and returns the new value.
func (ps *PointSet) ToggleFlag(i int, flag Flag) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.Flags[i] ^= flag
	return ps.Flags[i]&flag != 0
}

func (ps *PointSet) queryFlag(flag Flag) []int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	var out []int
	for i := 0; i < ps.count; i++ {
		if ps.Flags[i]&flag != 0 {
			out = append(out, i)
		}
	}
	return out
}

// Visible returns indices of all live points without HIDDEN set.
func (ps *PointSet) Visible() []int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	var out []int
	for i := 0; i < ps.count; i++ {
		if ps.Flags[i]&HIDDEN == 0 {
			out = append(out, i)
		}
	}
	return out
}

// Selected returns indices of all SELECTED points.
func (ps *PointSet) Selected() []int { return ps.queryFlag(SELECTED) }

// Pinned returns indices of all PINNED points.
func (ps *PointSet) Pinned() []int { return ps.queryFlag(PINNED) }

// AtDepth returns indices of all live points at tree depth d.
func (ps *PointSet) AtDepth(d int) []int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	var out []int
	for i := 0; i < ps.count; i++ {
		if ps.Depth[i] == d {
			out = append(out, i)
		}
	}
	return out
}

// Distance returns the hyperbolic distance between points i and j.
func (ps *PointSet) Distance(i, j int) float64 {
	return minkowski.Dist(ps.Point(i), ps.Point(j))
}

// Nearest performs a linear-scan nearest-neighbor query from point idx
// against all other live, non-hidden points. Returns (-1, 0) if idx has
// no neighbors. This is the baseline path; vptree.Index provides the
// accelerated equivalent.
func (ps *PointSet) Nearest(idx int) (int, float64) {
	best := -1
	bestD := 0.0
	p := ps.Point(idx)
	n := ps.Count()
	for i := 0; i < n; i++ {
		if i == idx || ps.HasFlag(i, HIDDEN) {
			continue
		}
		d := minkowski.Dist(p, ps.Point(i))
		if best == -1 || d < bestD {
			best, bestD = i, d
		}
	}
	return best, bestD
}

// KNearest returns the k nearest live, non-hidden neighbors of idx
// (excluding idx itself) sorted by ascending distance, via linear scan.
func (ps *PointSet) KNearest(idx, k int) []int {
	type cand struct {
		i int
		d float64
	}
	p := ps.Point(idx)
	n := ps.Count()
	cands := make([]cand, 0, n)
	for i := 0; i < n; i++ {
		if i == idx || ps.HasFlag(i, HIDDEN) {
			continue
		}
		cands = append(cands, cand{i, minkowski.Dist(p, ps.Point(i))})
	}
	sort.Slice(cands, func(a, b int) bool { return cands[a].d < cands[b].d })
	if k > len(cands) {
		k = len(cands)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = cands[i].i
	}
	return out
}

// Stats summarizes the live set: count, a depth histogram, and a motif
// histogram (motif -1 grouped under key -1).
type Stats struct {
	Count           int
	DepthHistogram  map[int]int
	MotifHistogram  map[int]int
}

// ComputeStats walks the live set once and returns a Stats snapshot.
func (ps *PointSet) ComputeStats() Stats {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	s := Stats{Count: ps.count, DepthHistogram: map[int]int{}, MotifHistogram: map[int]int{}}
	for i := 0; i < ps.count; i++ {
		s.DepthHistogram[ps.Depth[i]]++
		s.MotifHistogram[ps.Motif[i]]++
	}
	return s
}
