package bmssp

import "math"

// findPivots performs k rounds of Bellman-Ford-style relaxation from S,
// growing a witness set W, then identifies the pivots P: vertices of S
// whose subtree in the relaxation forest (restricted to W) has size >= k.
// If W outgrows k*|S| partway through, pruning is abandoned: P collapses to
// S (every source is deemed useful) and W is returned as accumulated so far.
func (s *solver) findPivots(B float64, S []int) ([]int, []int) {
	if len(S) == 0 {
		return nil, nil
	}

	inW := make([]bool, s.g.NumVertices())
	w := make([]int, len(S))
	copy(w, S)
	for _, x := range S {
		inW[x] = true
	}

	frontier := S
	for round := 0; round < s.k; round++ {
		var next []int
		for _, u := range frontier {
			for _, e := range s.g.Neighbors(u) {
				nd := s.d[u] + e.Weight
				if nd < s.d[e.To] && nd < B {
					old := s.d[e.To]
					s.d[e.To] = nd
					s.pred[e.To] = u
					s.notifyRelax(u, e.To, old, nd)

					if !inW[e.To] {
						inW[e.To] = true
						w = append(w, e.To)
						next = append(next, e.To)
					}
				}
			}
		}
		if len(w) > s.k*len(S) {
			// spec §4.4 literally says P = S, W = S here. We keep W as the
			// full witness set accumulated so far instead (see DESIGN.md's
			// Open-Questions note): those vertices already have a correct
			// tentative d[] from this call's relaxations, and the parent
			// bmssp frame's step 7 needs them in W to fold their completion
			// into U once d[x] < B' holds, or a deeper recursion can leave
			// them relaxed-but-never-completed.
			p := make([]int, len(S))
			copy(p, S)
			return p, w
		}
		frontier = next
	}

	memo := make([]int, s.g.NumVertices())
	var subtreeSize func(int) int
	subtreeSize = func(u int) int {
		if memo[u] > 0 {
			return memo[u]
		}
		if memo[u] == -1 {
			return 1 // cycle guard
		}
		memo[u] = -1
		count := 1
		for _, e := range s.g.Neighbors(u) {
			v := e.To
			if inW[v] && math.Abs(s.d[v]-(s.d[u]+e.Weight)) < 1e-9 {
				count += subtreeSize(v)
			}
		}
		memo[u] = count
		return count
	}

	var p []int
	for _, u := range S {
		if subtreeSize(u) >= s.k {
			p = append(p, u)
		}
	}
	return p, w
}
