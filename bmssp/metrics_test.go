package bmssp_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/moyuanchen/fastDijkstra/bmssp"
	"github.com/moyuanchen/fastDijkstra/graph"
)

func TestMetricsListener_ObservesARun(t *testing.T) {
	reg := prometheus.NewRegistry()
	ml, err := bmssp.NewMetricsListener(reg)
	require.NoError(t, err)

	g := graph.New(4)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	_, err = bmssp.Solve(g, 0, bmssp.WithEventListener(ml))
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotNil(t, families)
}
