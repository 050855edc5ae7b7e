package vptree

// maxHeap is a small binary max-heap over Result keyed by Dist, used to
// track the k closest candidates seen so far during a k-nearest search.
// Hand-rolled rather than container/heap because the only operation
// needed is "push, evicting the current max once over capacity."
type maxHeap []Result

func (h maxHeap) Len() int { return len(h) }

func (h *maxHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].Dist >= (*h)[i].Dist {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *maxHeap) down(i int) {
	n := len(*h)
	for {
		l, r := 2*i+1, 2*i+2
		largest := i
		if l < n && (*h)[l].Dist > (*h)[largest].Dist {
			largest = l
		}
		if r < n && (*h)[r].Dist > (*h)[largest].Dist {
			largest = r
		}
		if largest == i {
			return
		}
		(*h)[i], (*h)[largest] = (*h)[largest], (*h)[i]
		i = largest
	}
}

// pushBounded inserts r, keeping the heap at no more than k elements by
// evicting the current maximum when already full and r is smaller.
func (h *maxHeap) pushBounded(r Result, k int) {
	if len(*h) < k {
		*h = append(*h, r)
		h.up(len(*h) - 1)
		return
	}
	if k == 0 {
		return
	}
	if r.Dist < (*h)[0].Dist {
		(*h)[0] = r
		h.down(0)
	}
}
