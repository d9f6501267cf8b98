// Package batchheap implements the bound-aware, partially-sorted priority
// store the BMSSP recursion uses to manage its frontier: it supports
// single-key insertion, batch prepend of a whole slice of keys, and
// extraction of the smallest block of at most M keys at a time.
package batchheap

import "sort"

// Pair is a (vertex, key) association to insert or batch-prepend.
type Pair struct {
	Vertex int
	Key    float64
}

// BatchHeap is a bound-aware priority store. It never holds a pair with
// Key >= B, holds at most one pair per vertex (keeping the minimum key on
// conflict), and keeps its smallest min(M, size) pairs sorted in a "pull
// region" that Pull hands out. Every Insert, BatchPrepend and Pull re-sorts
// the whole content, so each costs O(size log size).
//
// Ties between equal keys are broken by ascending vertex index, both in the
// pull region's ordering and in what Pull reports as the vertex's block.
type BatchHeap struct {
	m    int
	b    float64
	keys map[int]float64

	pull []Pair // sorted ascending by (Key, Vertex), len <= m
	hold []Pair // unsorted remainder
}

// New creates a BatchHeap with block size m and bound b. m must be >= 1.
func New(m int, b float64) (*BatchHeap, error) {
	if m < 1 {
		return nil, ErrInvalidBlockSize
	}
	return &BatchHeap{
		m:    m,
		b:    b,
		keys: make(map[int]float64),
	}, nil
}

// Insert adds or updates a single (vertex, key) pair, subject to the B
// filter and the minimum-key-wins rule.
func (h *BatchHeap) Insert(v int, key float64) {
	if !h.admit(v, key) {
		return
	}
	h.hold = append(h.hold, Pair{Vertex: v, Key: key})
	h.refill()
}

// BatchPrepend adds a whole batch of (vertex, key) pairs under the same
// filtering and min-update rule as Insert. When every surviving key is
// strictly smaller than everything already in the pull region, the refill
// step below naturally makes the batch the new pull region, which is what
// gives batch-prepended small keys their cheap, sorted re-entry.
func (h *BatchHeap) BatchPrepend(pairs []Pair) {
	changed := false
	for _, p := range pairs {
		if h.admit(p.Vertex, p.Key) {
			h.hold = append(h.hold, Pair{Vertex: p.Vertex, Key: p.Key})
			changed = true
		}
	}
	if changed {
		h.refill()
	}
}

// admit applies the B filter and the per-vertex minimum-key rule, updating
// h.keys and reporting whether the pair should be appended to hold.
func (h *BatchHeap) admit(v int, key float64) bool {
	if key >= h.b {
		return false
	}
	if existing, ok := h.keys[v]; ok {
		if key >= existing {
			return false
		}
	}
	h.keys[v] = key
	return true
}

// Pull removes the current pull region (at most M smallest pairs) and
// returns the vertices it contained, together with B_pull: the smallest key
// remaining in the heap afterward, or B if the heap is now empty. Every key
// returned in the block is < B_pull <= B (except at exact-key ties, which
// are broken by vertex index rather than by shrinking the block — see the
// BatchHeap type doc and SPEC_FULL.md's tie-break decision).
func (h *BatchHeap) Pull() (float64, []int) {
	if len(h.pull) == 0 && len(h.hold) == 0 {
		return h.b, nil
	}

	block := make([]int, len(h.pull))
	for i, p := range h.pull {
		block[i] = p.Vertex
		delete(h.keys, p.Vertex)
	}
	h.pull = nil
	h.refill()

	bPull := h.b
	if len(h.pull) > 0 {
		bPull = h.pull[0].Key
	}
	return bPull, block
}

// IsEmpty reports whether the heap currently holds no pairs.
func (h *BatchHeap) IsEmpty() bool {
	return len(h.keys) == 0
}

// Size reports the number of distinct vertices currently held.
func (h *BatchHeap) Size() int {
	return len(h.keys)
}

// refill merges pull and hold, drops pairs superseded by a smaller key for
// the same vertex, keeps the m smallest pairs (ordered by (Key, Vertex)) as
// the new pull region, and leaves the rest in hold.
func (h *BatchHeap) refill() {
	all := make([]Pair, 0, len(h.pull)+len(h.hold))
	for _, region := range [][]Pair{h.pull, h.hold} {
		for _, p := range region {
			if key, ok := h.keys[p.Vertex]; ok && key == p.Key {
				all = append(all, p)
			}
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Key != all[j].Key {
			return all[i].Key < all[j].Key
		}
		return all[i].Vertex < all[j].Vertex
	})

	cut := h.m
	if cut > len(all) {
		cut = len(all)
	}
	h.pull = all[:cut]
	h.hold = all[cut:]
}
