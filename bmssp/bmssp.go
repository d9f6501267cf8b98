// Package bmssp implements the Bounded Multi-Source Shortest Path
// algorithm: FindPivots, BaseCase, the recursive BMSSP driver, and a
// classical Dijkstra oracle used to check it. All three take over an
// immutable graph.Graph and a pair of caller-owned distance/predecessor
// arrays that a single top-level call exclusively owns for its duration.
package bmssp

import (
	"math"

	"github.com/pkg/errors"

	"github.com/moyuanchen/fastDijkstra/batchheap"
	"github.com/moyuanchen/fastDijkstra/graph"
)

// solver bundles the graph, the in-progress distance/predecessor state, the
// cached k/t parameters, and the optional event listener for one top-level
// BMSSP run. It is not safe for concurrent use; each run gets its own.
type solver struct {
	g        *graph.Graph
	d        []float64
	pred     []int
	k, t     int
	listener EventListener
}

func newSolver(g *graph.Graph, d []float64, pred []int) (*solver, error) {
	k, err := g.GetK()
	if err != nil {
		return nil, err
	}
	t, err := g.GetT()
	if err != nil {
		return nil, err
	}
	return &solver{g: g, d: d, pred: pred, k: k, t: t, listener: NoOpListener{}}, nil
}

func (s *solver) setEventListener(l EventListener) {
	if l == nil {
		l = NoOpListener{}
	}
	s.listener = l
}

// Solve computes single-source shortest paths from source using BMSSP,
// returning distances and predecessors for every vertex. This is the
// top-level entry point: it computes l = ceil(log n / t), seeds d[source]
// = 0, and calls BMSSP(l, +Inf, {source}).
func Solve(g *graph.Graph, source int, opts ...Option) (Result, error) {
	g.CalcK()
	g.CalcT()
	n := g.NumVertices()
	if source < 0 || source >= n {
		return Result{}, errors.Wrapf(ErrSourceOutOfRange, "source=%d n=%d", source, n)
	}

	d := make([]float64, n)
	pred := make([]int, n)
	for v := range d {
		d[v] = math.Inf(1)
		pred[v] = -1
	}
	d[source] = 0

	s, err := newSolver(g, d, pred)
	if err != nil {
		return Result{}, err
	}
	for _, opt := range opts {
		opt(s)
	}

	t := s.t
	if n <= 1 {
		return Result{Distances: d, Predecessors: pred}, nil
	}
	level := int(math.Ceil(math.Log(float64(n)) / float64(t)))
	if level < 1 {
		level = 1
	}

	s.listener.OnNodeDiscovered(source, 0)
	if _, _, err := s.bmssp(level, math.Inf(1), []int{source}); err != nil {
		return Result{}, err
	}

	return Result{Distances: d, Predecessors: pred}, nil
}

// RunBaseCase exposes BaseCase as a standalone boundary operation: a
// bounded Dijkstra from source, capped at k+1 completions, mutating d/pred
// in place. d[source] must already be finite and less than bound.
func RunBaseCase(g *graph.Graph, d []float64, pred []int, source int, bound float64) (float64, []int, error) {
	if math.IsNaN(bound) {
		return 0, nil, errors.Wrap(ErrNaNValue, "bound is NaN")
	}
	s, err := newSolver(g, d, pred)
	if err != nil {
		return 0, nil, err
	}
	return s.baseCase(bound, []int{source})
}

// RunBMSSP exposes the recursive BMSSP step as a standalone boundary
// operation, mutating d and pred in place.
func RunBMSSP(g *graph.Graph, d []float64, pred []int, level int, bound float64, frontier []int) (float64, []int, error) {
	if math.IsNaN(bound) {
		return 0, nil, errors.Wrap(ErrNaNValue, "bound is NaN")
	}
	if len(frontier) == 0 {
		return 0, nil, errors.Wrap(ErrEmptyFrontier, "RunBMSSP")
	}
	s, err := newSolver(g, d, pred)
	if err != nil {
		return 0, nil, err
	}
	return s.bmssp(level, bound, frontier)
}

// bmssp is the recursive driver (spec §4.5). At level 0 it defers to
// baseCase; above that it shrinks S to pivots via findPivots, then
// alternates pulling a bounded block from a BatchHeap, recursing one level
// down on it, and relaxing the discovered edges back into the heap.
func (s *solver) bmssp(level int, bound float64, frontier []int) (float64, []int, error) {
	s.listener.OnPhaseChange("BMSSP", level)

	if level == 0 {
		if len(frontier) != 1 {
			return 0, nil, errors.Wrapf(ErrBadBaseLevel, "got |S|=%d", len(frontier))
		}
		s.listener.OnPhaseChange("BaseCase", 0)
		return s.baseCase(bound, frontier)
	}

	s.listener.OnPhaseChange("FindPivots", level)
	pivots, witnesses := s.findPivots(bound, frontier)

	if len(pivots) == 0 {
		return s.finalize(bound, witnesses, nil)
	}

	blockSize := pow2Clamped((level - 1) * s.t)
	heap, err := batchheap.New(blockSize, bound)
	if err != nil {
		return 0, nil, err
	}
	for _, p := range pivots {
		heap.Insert(p, s.d[p])
	}

	completed := make(map[int]bool)
	limit := s.k * pow2Clamped(level*s.t)

	finalBound := bound
	sizeCapped := false

	for len(completed) < limit && !heap.IsEmpty() {
		bi, si := heap.Pull()
		if len(si) == 0 {
			break
		}

		biPrime, ui, err := s.bmssp(level-1, bi, si)
		if err != nil {
			return 0, nil, err
		}
		for _, u := range ui {
			completed[u] = true
		}

		var batch []batchheap.Pair
		for _, u := range ui {
			for _, e := range s.g.Neighbors(u) {
				v, w := e.To, e.Weight
				nd := s.d[u] + w
				if nd < s.d[v] {
					old := s.d[v]
					s.d[v] = nd
					s.pred[v] = u
					s.notifyRelax(u, v, old, nd)

					switch {
					case nd >= bi && nd < bound:
						heap.Insert(v, nd)
					case nd < bi:
						batch = append(batch, batchheap.Pair{Vertex: v, Key: nd})
					}
				}
			}
		}
		for _, x := range si {
			if s.d[x] >= biPrime && s.d[x] < bi {
				batch = append(batch, batchheap.Pair{Vertex: x, Key: s.d[x]})
			}
		}
		heap.BatchPrepend(batch)

		if len(completed) >= limit {
			finalBound = biPrime
			sizeCapped = true
			break
		}
	}

	if !sizeCapped {
		finalBound = bound
	}
	return s.finalize(finalBound, witnesses, completed)
}

func (s *solver) finalize(bound float64, witnesses []int, completed map[int]bool) (float64, []int, error) {
	result := make([]int, 0, len(completed)+len(witnesses))
	for v := range completed {
		result = append(result, v)
	}
	for _, w := range witnesses {
		if s.d[w] < bound && !completed[w] {
			result = append(result, w)
		}
	}
	return bound, result, nil
}

// pow2Clamped returns 2^exp as an int, clamped to >= 1 (exp may be
// negative at level 1, where (level-1)*t == 0 anyway, or in degenerate
// single-vertex graphs).
func pow2Clamped(exp int) int {
	if exp <= 0 {
		return 1
	}
	v := math.Pow(2, float64(exp))
	if v < 1 {
		return 1
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
