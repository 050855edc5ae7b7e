package vptree

import (
	"math/rand"
	"sort"

	"github.com/uprootiny/umbra-sub002/pointset"
)

// LeafSize is the maximum number of indices stored in a leaf node before
// it must be split (spec.md §3).
const LeafSize = 8

// DefaultRebuildThreshold is how many un-absorbed inserts the index
// tolerates before a query forces a full rebuild.
const DefaultRebuildThreshold = 32

type node struct {
	// Leaf node when indices != nil.
	indices []int

	// Internal node otherwise.
	vantage int
	mu      float64
	inside  *node
	outside *node
}

// Index is a VP-tree over a pointset.PointSet, rebuilt lazily.
type Index struct {
	ps               *pointset.PointSet
	root             *node
	psVersion        int
	pendingInserts   int
	rebuildThreshold int
	rng              *rand.Rand
}

// New constructs an Index over ps with the default rebuild threshold.
// The index is empty until the first query triggers a build.
func New(ps *pointset.PointSet) *Index {
	return &Index{
		ps:               ps,
		rebuildThreshold: DefaultRebuildThreshold,
		rng:              rand.New(rand.NewSource(1)),
	}
}

// NotifyInsert tells the index a point was inserted since the last
// rebuild, without forcing an immediate rebuild.
func (idx *Index) NotifyInsert() {
	idx.pendingInserts++
}

func (idx *Index) stale() bool {
	return idx.root == nil || idx.psVersion != idx.ps.Count() || idx.pendingInserts >= idx.rebuildThreshold
}

// Rebuild forces a full rebuild from the current point set state,
// including only live (non-hidden) points.
func (idx *Index) Rebuild() {
	n := idx.ps.Count()
	live := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !idx.ps.HasFlag(i, pointset.HIDDEN) {
			live = append(live, i)
		}
	}
	idx.root = idx.build(live)
	idx.psVersion = n
	idx.pendingInserts = 0
}

func (idx *Index) ensureFresh() {
	if idx.stale() {
		idx.Rebuild()
	}
}

func (idx *Index) build(indices []int) *node {
	if len(indices) == 0 {
		return nil
	}
	if len(indices) <= LeafSize {
		leaf := make([]int, len(indices))
		copy(leaf, indices)
		return &node{indices: leaf}
	}

	vp := indices[idx.rng.Intn(len(indices))]
	rest := make([]int, 0, len(indices)-1)
	for _, i := range indices {
		if i != vp {
			rest = append(rest, i)
		}
	}

	dists := make([]float64, len(rest))
	for i, j := range rest {
		dists[i] = idx.ps.Distance(vp, j)
	}
	order := make([]int, len(rest))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return dists[order[a]] < dists[order[b]] })

	mid := len(order) / 2
	mu := dists[order[mid]]

	var insideIdx, outsideIdx []int
	for _, pos := range order {
		j := rest[pos]
		if dists[pos] < mu {
			insideIdx = append(insideIdx, j)
		} else {
			outsideIdx = append(outsideIdx, j)
		}
	}

	return &node{
		vantage: vp,
		mu:      mu,
		inside:  idx.build(insideIdx),
		outside: idx.build(outsideIdx),
	}
}

// Result is one match from a k-nearest or range query.
type Result struct {
	Index int
	Dist  float64
}

// Nearest returns the single nearest live point to queryIdx (excluding
// queryIdx itself), or ok=false if the set (minus queryIdx) is empty.
func (idx *Index) Nearest(queryIdx int) (result Result, ok bool) {
	idx.ensureFresh()
	best := Result{Index: -1, Dist: 0}
	tau := inf
	idx.searchNearest(idx.root, queryIdx, &best, &tau)
	return best, best.Index != -1
}

const inf = 1e18

func (idx *Index) searchNearest(n *node, query int, best *Result, tau *float64) {
	if n == nil {
		return
	}
	if n.indices != nil {
		for _, i := range n.indices {
			if i == query {
				continue
			}
			d := idx.ps.Distance(query, i)
			if d < *tau {
				*tau = d
				best.Index = i
				best.Dist = d
			}
		}
		return
	}
	if n.vantage != query {
		d := idx.ps.Distance(query, n.vantage)
		if d < *tau {
			*tau = d
			best.Index = n.vantage
			best.Dist = d
		}
	}
	dVP := idx.ps.Distance(query, n.vantage)
	if dVP < n.mu {
		idx.searchNearest(n.inside, query, best, tau)
		if dVP+*tau >= n.mu {
			idx.searchNearest(n.outside, query, best, tau)
		}
	} else {
		idx.searchNearest(n.outside, query, best, tau)
		if dVP-*tau <= n.mu {
			idx.searchNearest(n.inside, query, best, tau)
		}
	}
}

// KNearest returns up to k nearest live points to queryIdx (excluding
// queryIdx), sorted by ascending distance. If k exceeds the number of
// other live points, all of them are returned.
func (idx *Index) KNearest(queryIdx, k int) []Result {
	idx.ensureFresh()
	h := &maxHeap{}
	idx.searchKNearest(idx.root, queryIdx, k, h)
	out := make([]Result, len(*h))
	copy(out, *h)
	sort.Slice(out, func(a, b int) bool { return out[a].Dist < out[b].Dist })
	return out
}

func (idx *Index) searchKNearest(n *node, query, k int, h *maxHeap) {
	if n == nil || k <= 0 {
		return
	}

	if n.indices != nil {
		for _, i := range n.indices {
			if i == query {
				continue
			}
			d := idx.ps.Distance(query, i)
			h.pushBounded(Result{i, d}, k)
		}
		return
	}

	if n.vantage != query {
		d := idx.ps.Distance(query, n.vantage)
		h.pushBounded(Result{n.vantage, d}, k)
	}

	dVP := idx.ps.Distance(query, n.vantage)
	tau := func() float64 {
		if h.Len() == k {
			return (*h)[0].Dist
		}
		return inf
	}
	if dVP < n.mu {
		idx.searchKNearest(n.inside, query, k, h)
		if dVP+tau() >= n.mu {
			idx.searchKNearest(n.outside, query, k, h)
		}
	} else {
		idx.searchKNearest(n.outside, query, k, h)
		if dVP-tau() <= n.mu {
			idx.searchKNearest(n.inside, query, k, h)
		}
	}
}

// RangeQuery returns all live points within distance r of queryIdx
// (excluding queryIdx), sorted by ascending distance.
func (idx *Index) RangeQuery(queryIdx int, r float64) []Result {
	idx.ensureFresh()
	var out []Result
	idx.searchRange(idx.root, queryIdx, r, &out)
	sort.Slice(out, func(a, b int) bool { return out[a].Dist < out[b].Dist })
	return out
}

func (idx *Index) searchRange(n *node, query int, r float64, out *[]Result) {
	if n == nil {
		return
	}
	if n.indices != nil {
		for _, i := range n.indices {
			if i == query {
				continue
			}
			d := idx.ps.Distance(query, i)
			if d <= r {
				*out = append(*out, Result{i, d})
			}
		}
		return
	}
	if n.vantage != query {
		d := idx.ps.Distance(query, n.vantage)
		if d <= r {
			*out = append(*out, Result{n.vantage, d})
		}
	}
	dVP := idx.ps.Distance(query, n.vantage)
	if dVP-r <= n.mu {
		idx.searchRange(n.inside, query, r, out)
	}
	if dVP+r >= n.mu {
		idx.searchRange(n.outside, query, r, out)
	}
}
