// Package flipdist — shared contract, sentinel errors, diagnostics.
package flipdist

import "errors"

// Sentinel errors for solver construction.
var (
	// ErrNilGraph is returned when a nil triangulation is passed to a
	// solver constructor.
	ErrNilGraph = errors.New("flipdist: triangulation is nil")

	// ErrSizeMismatch is returned when the two triangulations do not
	// share one polygon size.
	ErrSizeMismatch = errors.New("flipdist: triangulations must have the same polygon size")

	// ErrUnknownAlgorithm is returned by New for an unregistered name.
	ErrUnknownAlgorithm = errors.New("flipdist: unknown algorithm name")
)

// Solver is the contract shared by all flip-distance strategies.
//
// A Solver is bound to one (start, target) pair at construction. Decision
// and Distance may be called repeatedly and in any order; both leave the
// bound triangulations untouched.
type Solver interface {
	// Decision reports whether start can reach target using at most k
	// flips. A negative k always answers false.
	Decision(k int) bool

	// Distance returns the minimum number of flips from start to target.
	Distance() int

	// Statistics returns diagnostic counters. Index 0 holds the number of
	// search-node visits accumulated since the last reset, across the
	// whole search tree including nested sub-solvers.
	Statistics() []int

	// ResetStatistics zeroes all diagnostic counters.
	ResetStatistics()
}

// searchStats is allocated once by a root solver and threaded by pointer
// into every nested sub-solver, so that one counter covers the whole
// search tree without process-wide state.
type searchStats struct {
	branches int
}

// distanceUpperBound bounds the flip distance on an n-gon: 2n-6 flips
// always suffice (fan through one vertex and back).
func distanceUpperBound(n int) int {
	if n < 3 {
		return 0
	}

	return 2*n - 6
}

// distanceByDecision is the driver loop shared by the decision-based
// strategies: probe increasing budgets until the decision accepts.
func distanceByDecision(s Solver, n int) int {
	limit := distanceUpperBound(n)
	for k := 0; k < limit; k++ {
		if s.Decision(k) {
			return k
		}
	}

	return limit
}
