package bmssp

import (
	"container/heap"
	"math"

	"github.com/pkg/errors"

	"github.com/moyuanchen/fastDijkstra/graph"
)

// Result is the distance/predecessor pair every top-level entry returns.
type Result struct {
	Distances    []float64
	Predecessors []int
}

type pqItem struct {
	vertex   int
	priority float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].vertex < pq[j].vertex
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// RunDijkstra computes single-source shortest paths from source using a
// classical binary-heap Dijkstra. It is the correctness oracle BMSSP is
// tested against; it is not called by BMSSP or BaseCase themselves.
func RunDijkstra(g *graph.Graph, source int) (Result, error) {
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

	pq := &priorityQueue{{vertex: source, priority: 0}}
	heap.Init(pq)

	visited := make([]bool, n)
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		u := item.vertex
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.Neighbors(u) {
			nd := d[u] + e.Weight
			if nd < d[e.To] {
				d[e.To] = nd
				pred[e.To] = u
				heap.Push(pq, &pqItem{vertex: e.To, priority: nd})
			}
		}
	}

	return Result{Distances: d, Predecessors: pred}, nil
}
