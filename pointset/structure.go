package pointset

// Reparent moves point i under newParent (-1 for a new root), updating
// i's depth and the depth of every descendant of i by the same delta.
// Returns the old parent and old depth (for history capture) and
// ErrNotFound if i or newParent is out of range.
func (ps *PointSet) Reparent(i, newParent int) (oldParent, oldDepth int, err error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if i < 0 || i >= ps.count {
		return 0, 0, ErrNotFound
	}
	if newParent >= ps.count {
		return 0, 0, ErrNotFound
	}
	oldParent = ps.Parent[i]
	oldDepth = ps.Depth[i]

	newDepth := 0
	if newParent >= 0 {
		newDepth = ps.Depth[newParent] + 1
	}
	delta := newDepth - oldDepth

	ps.Parent[i] = newParent
	ps.Depth[i] = newDepth
	if newParent < 0 {
		ps.Flags[i] |= ROOT
	} else {
		ps.Flags[i] &^= ROOT
	}

	if delta != 0 {
		queue := []int{i}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for j := 0; j < ps.count; j++ {
				if ps.Parent[j] == cur {
					ps.Depth[j] += delta
					queue = append(queue, j)
				}
			}
		}
	}
	return oldParent, oldDepth, nil
}

// Detach makes i a root (Reparent(i, -1)).
func (ps *PointSet) Detach(i int) (oldParent, oldDepth int, err error) {
	return ps.Reparent(i, -1)
}

// DeleteSubtree sets HIDDEN on i and every descendant of i. Points are
// never physically removed (spec.md §3 lifecycle); history can restore
// by clearing HIDDEN on the same set. Returns the set of affected
// indices (root first, then descendants in BFS order) for history
// capture.
func (ps *PointSet) DeleteSubtree(i int) []int {
	affected := append([]int{i}, ps.Descendants(i)...)
	ps.mu.Lock()
	defer ps.mu.Unlock()
	for _, idx := range affected {
		ps.Flags[idx] |= HIDDEN
	}
	return affected
}

// RestoreSubtree clears HIDDEN on exactly the given indices, reversing a
// prior DeleteSubtree.
func (ps *PointSet) RestoreSubtree(indices []int) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	for _, idx := range indices {
		ps.Flags[idx] &^= HIDDEN
	}
}

// FoldSubtree sets HIDDEN|FOLDED on every descendant of i (not on i
// itself). Returns the affected descendant indices.
func (ps *PointSet) FoldSubtree(i int) []int {
	desc := ps.Descendants(i)
	ps.mu.Lock()
	defer ps.mu.Unlock()
	for _, idx := range desc {
		ps.Flags[idx] |= HIDDEN | FOLDED
	}
	return desc
}

// UnfoldSubtree clears HIDDEN|FOLDED on descendants of i that currently
// carry FOLDED (i.e. were folded, not independently hidden). Returns the
// affected indices.
func (ps *PointSet) UnfoldSubtree(i int) []int {
	desc := ps.Descendants(i)
	ps.mu.Lock()
	defer ps.mu.Unlock()
	var affected []int
	for _, idx := range desc {
		if ps.Flags[idx]&FOLDED != 0 {
			ps.Flags[idx] &^= HIDDEN | FOLDED
			affected = append(affected, idx)
		}
	}
	return affected
}
