package bmssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyuanchen/fastDijkstra/bmssp"
	"github.com/moyuanchen/fastDijkstra/graph"
)

func TestRunDijkstra_ScenarioS1(t *testing.T) {
	g := graph.New(4)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 4))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 7))
	require.NoError(t, g.AddEdge(2, 3, 3))

	res, err := bmssp.RunDijkstra(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 2, 3, 6}, res.Distances)
	assert.Equal(t, []int{-1, 0, 1, 2}, res.Predecessors)
}

func TestRunDijkstra_Disconnected(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	res, err := bmssp.RunDijkstra(g, 2)
	require.NoError(t, err)

	assert.True(t, math.IsInf(res.Distances[0], 1))
	assert.True(t, math.IsInf(res.Distances[1], 1))
	assert.Equal(t, 0.0, res.Distances[2])
	assert.Equal(t, -1, res.Predecessors[2])
}

func TestRunDijkstra_RejectsOutOfRangeSource(t *testing.T) {
	g := graph.New(2)
	_, err := bmssp.RunDijkstra(g, 5)
	require.Error(t, err)
}
