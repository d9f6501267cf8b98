package bmssp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyuanchen/fastDijkstra/bmssp"
	"github.com/moyuanchen/fastDijkstra/graph"
)

func TestSolve_ScenarioS1(t *testing.T) {
	g := graph.New(4)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 4))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 7))
	require.NoError(t, g.AddEdge(2, 3, 3))

	res, err := bmssp.Solve(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 2, 3, 6}, res.Distances)
	assert.Equal(t, []int{-1, 0, 1, 2}, res.Predecessors)
}

func TestSolve_ScenarioS2(t *testing.T) {
	g := graph.New(5)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 3, 4))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 4, 7))
	require.NoError(t, g.AddEdge(2, 4, 2))
	require.NoError(t, g.AddEdge(4, 3, 1))

	res, err := bmssp.Solve(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 2, 3, 4, 5}, res.Distances)
	assert.Equal(t, []int{-1, 0, 1, 0, 2}, res.Predecessors)
}

func TestSolve_ScenarioS3(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	res, err := bmssp.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, res.Distances)

	res, err = bmssp.Solve(g, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Distances[0], 1))
	assert.True(t, math.IsInf(res.Distances[1], 1))
	assert.Equal(t, 0.0, res.Distances[2])
}

func TestSolve_SingleVertex(t *testing.T) {
	g := graph.New(1)
	res, err := bmssp.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, res.Distances)
	assert.Equal(t, []int{-1}, res.Predecessors)
}

func TestSolve_RejectsOutOfRangeSource(t *testing.T) {
	g := graph.New(3)
	_, err := bmssp.Solve(g, 9)
	require.Error(t, err)
	assert.Equal(t, bmssp.KindInvalidArgument, bmssp.Kind(err))
}

// S6: BMSSP matches the Dijkstra oracle on randomized DAGs.
func TestSolve_MatchesOracle_RandomizedDAGs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		n := 5 + rng.Intn(20)
		g := graph.New(n)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Float64() < 0.3 {
					require.NoError(t, g.AddEdge(u, v, 1+rng.Float64()*10))
				}
			}
		}

		source := rng.Intn(n)
		got, err := bmssp.Solve(g, source)
		require.NoError(t, err)

		want, err := bmssp.RunDijkstra(g, source)
		require.NoError(t, err)

		for v := 0; v < n; v++ {
			assert.InDeltaf(t, want.Distances[v], got.Distances[v], 1e-9,
				"trial %d vertex %d", trial, v)
		}
	}
}

func TestRunBMSSP_RejectsBadBaseLevel(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	g.CalcK()
	g.CalcT()

	d := []float64{0, math.Inf(1), math.Inf(1)}
	pred := []int{-1, -1, -1}

	_, _, err := bmssp.RunBMSSP(g, d, pred, 0, math.Inf(1), []int{0, 1})
	require.Error(t, err)
	assert.Equal(t, bmssp.KindPreconditionViolation, bmssp.Kind(err))
}

func TestRunBMSSP_RejectsEmptyFrontier(t *testing.T) {
	g := graph.New(2)
	g.CalcK()
	g.CalcT()
	d := []float64{0, math.Inf(1)}
	pred := []int{-1, -1}

	_, _, err := bmssp.RunBMSSP(g, d, pred, 1, math.Inf(1), nil)
	require.Error(t, err)
}

func TestRunBaseCase_RejectsNaNBound(t *testing.T) {
	g := graph.New(2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	g.CalcK()
	g.CalcT()
	d := []float64{0, math.Inf(1)}
	pred := []int{-1, -1}

	nan := math.NaN()
	_, _, err := bmssp.RunBaseCase(g, d, pred, 0, nan)
	require.Error(t, err)
}
