package bmssp

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsListener is a concrete, optional EventListener implementation
// backed by Prometheus counters and a histogram. It is safe to share across
// goroutines because prometheus.Counter/Histogram are internally
// synchronized, even though BMSSP itself only ever calls a listener from a
// single goroutine.
type MetricsListener struct {
	nodesDiscovered prometheus.Counter
	edgesRelaxed    prometheus.Counter
	iterations      prometheus.Counter
	recursionDepth  prometheus.Histogram
}

// NewMetricsListener registers its metrics with reg and returns a listener
// ready to attach to a Solve call via WithEventListener. reg may be
// prometheus.DefaultRegisterer.
func NewMetricsListener(reg prometheus.Registerer) (*MetricsListener, error) {
	m := &MetricsListener{
		nodesDiscovered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fastdijkstra_nodes_discovered_total",
			Help: "Vertices whose distance became finite for the first time.",
		}),
		edgesRelaxed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fastdijkstra_edges_relaxed_total",
			Help: "Edge relaxations that improved an already-finite distance.",
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fastdijkstra_basecase_iterations_total",
			Help: "BaseCase completions across all calls.",
		}),
		recursionDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fastdijkstra_recursion_level",
			Help:    "BMSSP recursion level observed on phase changes.",
			Buckets: prometheus.LinearBuckets(0, 1, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.nodesDiscovered, m.edgesRelaxed, m.iterations, m.recursionDepth} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MetricsListener) OnPhaseChange(phase string, level int) {
	if phase == "BMSSP" {
		m.recursionDepth.Observe(float64(level))
	}
}

func (m *MetricsListener) OnNodeDiscovered(int, float64) {
	m.nodesDiscovered.Inc()
}

func (m *MetricsListener) OnNodeRelaxed(int, int, float64, float64) {
	m.edgesRelaxed.Inc()
}

func (m *MetricsListener) OnIterationComplete(int) {
	m.iterations.Inc()
}
