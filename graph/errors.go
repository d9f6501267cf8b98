package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, V).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrNegativeWeight indicates an edge weight below zero or NaN.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrParamsNotCalculated indicates GetK/GetT was called before CalcK/CalcT.
	ErrParamsNotCalculated = errors.New("graph: k/t not calculated")
)
