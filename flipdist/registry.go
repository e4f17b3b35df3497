package flipdist

import (
	"sort"

	"github.com/tessile/fliptri/triangulation"
)

// Constructor builds a Solver for one (start, target) pair.
type Constructor func(start, target *triangulation.Graph) (Solver, error)

// registry maps strategy names to constructors. Names are stable API.
var registry = map[string]Constructor{
	"source": func(s, t *triangulation.Graph) (Solver, error) { return NewSource(s, t) },
	"simple": func(s, t *triangulation.Graph) (Solver, error) { return NewSimple(s, t) },
	"bfs":    func(s, t *triangulation.Graph) (Solver, error) { return NewBFS(s, t) },
}

// New builds the named strategy for the pair (start, target).
// Returns ErrUnknownAlgorithm for an unregistered name, and the
// constructor's validation errors otherwise.
func New(name string, start, target *triangulation.Graph) (Solver, error) {
	c, ok := registry[name]
	if !ok {
		return nil, ErrUnknownAlgorithm
	}

	return c(start, target)
}

// Algorithms lists the registered strategy names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// validatePair applies the constructor contract shared by all strategies.
func validatePair(start, target *triangulation.Graph) error {
	if start == nil || target == nil {
		return ErrNilGraph
	}
	if start.Size() != target.Size() {
		return ErrSizeMismatch
	}

	return nil
}
