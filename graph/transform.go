package graph

// TransformedGraph holds a constant-degree graph produced by
// (*Graph).ToConstantDegree, plus the mapping back to original vertices.
type TransformedGraph struct {
	G           *Graph
	OriginalTo  []int // original vertex -> start node of its cycle in G
	NewToOrigin []int // new vertex -> original vertex
}

// ToConstantDegree replaces each vertex v with a zero-weight cycle of
// max(1, indegree(v)+outdegree(v)) auxiliary nodes, one slot per incident
// edge, so every node in the returned graph has total degree <= 3. This is
// a preprocessing utility independent of BMSSP/BaseCase/FindPivots; it is
// not invoked by Solve or RunBMSSP and exists for callers who want a
// constant-degree graph for other theoretical-bound purposes.
func (g *Graph) ToConstantDegree() *TransformedGraph {
	n := g.NumVertices()
	inDegree := make([]int, n)
	for u := 0; u < n; u++ {
		for _, e := range g.adj[u] {
			inDegree[e.To]++
		}
	}

	starts := make([]int, n)
	sizes := make([]int, n)
	currentID := 0
	for u := 0; u < n; u++ {
		starts[u] = currentID
		sz := len(g.adj[u]) + inDegree[u]
		if sz == 0 {
			sz = 1
		}
		sizes[u] = sz
		currentID += sz
	}

	newG := New(currentID)
	newToOrigin := make([]int, currentID)

	// Zero-weight cycle per original vertex.
	for u := 0; u < n; u++ {
		start := starts[u]
		sz := sizes[u]
		for i := 0; i < sz; i++ {
			curr := start + i
			next := start + (i+1)%sz
			_ = newG.AddEdge(curr, next, 0) // in-range by construction
			newToOrigin[curr] = u
		}
	}

	// Real edges, each claiming one free slot on each endpoint's cycle.
	slots := make([]int, n)
	for u := 0; u < n; u++ {
		for _, e := range g.adj[u] {
			v := e.To
			w := e.Weight

			uNode := starts[u] + slots[u]
			slots[u]++

			vNode := starts[v] + slots[v]
			slots[v]++

			_ = newG.AddEdge(uNode, vNode, w)
		}
	}

	return &TransformedGraph{
		G:           newG,
		OriginalTo:  starts,
		NewToOrigin: newToOrigin,
	}
}

// MapDistances converts distances computed on the transformed graph back to
// the original vertex space: the distance to original vertex i is the
// distance to the start node of its cycle, since internal cycle edges carry
// zero weight.
func (tg *TransformedGraph) MapDistances(dist []float64) []float64 {
	res := make([]float64, len(tg.OriginalTo))
	for i, startNode := range tg.OriginalTo {
		res[i] = dist[startNode]
	}
	return res
}
