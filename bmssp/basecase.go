package bmssp

import (
	"container/heap"
	"math"

	"github.com/pkg/errors"
)

// baseCase runs a bounded Dijkstra from the single source in S, stopping
// once either k+1 vertices have been completed or the queue empties. It
// mutates s.d/s.pred for every vertex it relaxes.
func (s *solver) baseCase(B float64, S []int) (float64, []int, error) {
	for _, x := range S {
		if math.IsInf(s.d[x], 1) {
			return 0, nil, errors.Wrapf(ErrUnreachedInFrontier, "vertex %d", x)
		}
	}

	completed := make(map[int]bool, s.k+1)
	pq := &priorityQueue{}
	heap.Init(pq)
	for _, x := range S {
		heap.Push(pq, &pqItem{vertex: x, priority: s.d[x]})
	}

	limit := s.k + 1
	for pq.Len() > 0 && len(completed) < limit {
		item := heap.Pop(pq).(*pqItem)
		u := item.vertex
		if item.priority > s.d[u] {
			continue // stale entry
		}
		if completed[u] {
			continue
		}
		completed[u] = true
		s.listener.OnIterationComplete(len(completed))

		for _, e := range s.g.Neighbors(u) {
			v, w := e.To, e.Weight
			nd := s.d[u] + w
			// Non-strict <=: a vertex pre-seeded at this exact distance by
			// FindPivots must still be pushed and later popped/expanded, but
			// pred is only overwritten on a strict improvement (never on a
			// tie) per spec's monotonicity invariant.
			if nd <= s.d[v] && nd < B {
				if nd < s.d[v] {
					old := s.d[v]
					s.d[v] = nd
					s.pred[v] = u
					s.notifyRelax(u, v, old, nd)
				}
				heap.Push(pq, &pqItem{vertex: v, priority: nd})
			}
		}
	}

	if len(completed) <= s.k {
		u := make([]int, 0, len(completed))
		for v := range completed {
			u = append(u, v)
		}
		return B, u, nil
	}

	maxDist := 0.0
	for v := range completed {
		if s.d[v] > maxDist {
			maxDist = s.d[v]
		}
	}

	u := make([]int, 0, s.k)
	for v := range completed {
		if s.d[v] < maxDist {
			u = append(u, v)
		}
	}
	return maxDist, u, nil
}

func (s *solver) notifyRelax(from, to int, old, newDist float64) {
	if math.IsInf(old, 1) {
		s.listener.OnNodeDiscovered(to, newDist)
	} else {
		s.listener.OnNodeRelaxed(from, to, old, newDist)
	}
}
