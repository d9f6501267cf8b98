package bmssp

// EventListener observes algorithm progress without influencing it. Every
// method is called synchronously on the caller's goroutine; a listener must
// not block or it blocks the solve. The default listener is a no-op, so
// attaching one is purely additive instrumentation.
type EventListener interface {
	// OnPhaseChange is called when BMSSP enters a new recursion phase
	// (e.g. "BMSSP", "FindPivots", "BaseCase") at the given level.
	OnPhaseChange(phase string, level int)
	// OnNodeDiscovered is called the first time a vertex's distance
	// becomes finite.
	OnNodeDiscovered(vertex int, dist float64)
	// OnNodeRelaxed is called whenever an edge relaxation improves an
	// already-finite distance.
	OnNodeRelaxed(from, to int, oldDist, newDist float64)
	// OnIterationComplete is called once per BaseCase vertex completion,
	// with the running size of the completed set.
	OnIterationComplete(completedCount int)
}

// NoOpListener implements EventListener with no-op methods; it is the
// default listener for every Solver.
type NoOpListener struct{}

func (NoOpListener) OnPhaseChange(string, int)               {}
func (NoOpListener) OnNodeDiscovered(int, float64)            {}
func (NoOpListener) OnNodeRelaxed(int, int, float64, float64) {}
func (NoOpListener) OnIterationComplete(int)                  {}
