package bmssp

import (
	stderrors "errors"

	"github.com/pkg/errors"

	"github.com/moyuanchen/fastDijkstra/graph"
)

// ErrorKind classifies a returned error into one of the kinds spec §7
// defines. It is a kind, not a concrete type: callers branch on Kind(err),
// not on type assertion.
type ErrorKind int

const (
	// KindUnknown is returned for errors that neither this package nor the
	// graph package produced.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument covers out-of-range indices, negative weights,
	// NaN distances, and an empty frontier at the top level.
	KindInvalidArgument
	// KindPreconditionViolation covers level-0 calls with |S|!=1, an
	// unreached vertex present in S, or accessors used before CalcK/CalcT.
	KindPreconditionViolation
	// KindResourceExhausted is reserved for allocation failure; Go does
	// not surface that as an error return, so no call site produces it.
	KindResourceExhausted
	// KindCancelled is reserved for external cancellation; no function in
	// this package takes a context.Context, so no call site produces it.
	KindCancelled
)

var (
	// ErrEmptyFrontier indicates RunBMSSP was called with an empty frontier.
	ErrEmptyFrontier = stderrors.New("bmssp: empty frontier")

	// ErrNaNValue indicates a NaN bound or distance was supplied.
	ErrNaNValue = stderrors.New("bmssp: NaN value")

	// ErrSourceOutOfRange indicates a source index outside the graph.
	ErrSourceOutOfRange = stderrors.New("bmssp: source out of range")

	// ErrBadBaseLevel indicates BMSSP was invoked at level 0 with |S| != 1.
	ErrBadBaseLevel = stderrors.New("bmssp: level 0 requires exactly one frontier vertex")

	// ErrUnreachedInFrontier indicates a vertex in S has d[v] = infinity,
	// violating BMSSP's precondition that every v in S has finite d[v] < B.
	ErrUnreachedInFrontier = stderrors.New("bmssp: frontier vertex has no finite distance")

	// ErrCancelled is reserved for cancellation; no function in this
	// package returns it.
	ErrCancelled = stderrors.New("bmssp: cancelled")
)

var kindOf = map[error]ErrorKind{
	ErrEmptyFrontier:       KindInvalidArgument,
	ErrNaNValue:            KindInvalidArgument,
	ErrSourceOutOfRange:    KindInvalidArgument,
	ErrBadBaseLevel:        KindPreconditionViolation,
	ErrUnreachedInFrontier: KindPreconditionViolation,
	ErrCancelled:           KindCancelled,

	graph.ErrVertexOutOfRange:    KindInvalidArgument,
	graph.ErrNegativeWeight:      KindInvalidArgument,
	graph.ErrParamsNotCalculated: KindPreconditionViolation,
}

// Kind classifies err (which may be wrapped with pkg/errors context) into
// an ErrorKind, or KindUnknown if it does not originate from this package
// or from the graph package.
func Kind(err error) ErrorKind {
	for sentinel, kind := range kindOf {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}
