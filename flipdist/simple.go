// Package flipdist — Simple: the exhaustive baseline strategy.
package flipdist

import (
	"github.com/tessile/fliptri/triangulation"
)

// Simple decides reachability by plain depth-first search over flip
// sequences. Two prunes keep it usable on small instances: a budget of k
// cannot reconcile more than k differing diagonals, and an edge already
// shared with the target is never flipped (flipping it can always be
// avoided by an optimal sequence).
//
// Exponential in k; intended as a correctness baseline and for polygons
// where the decomposition machinery of Source is overkill.
type Simple struct {
	start, target *triangulation.Graph
	stats         *searchStats
}

// NewSimple builds the exhaustive-search solver for (start, target).
func NewSimple(start, target *triangulation.Graph) (*Simple, error) {
	if err := validatePair(start, target); err != nil {
		return nil, err
	}

	return &Simple{start: start, target: target, stats: &searchStats{}}, nil
}

// Decision reports whether start reaches target in at most k flips.
func (s *Simple) Decision(k int) bool {
	if k < 0 {
		return false
	}

	return s.search(s.start.Clone(), k)
}

// Distance returns the minimum flip count via increasing decision budgets.
func (s *Simple) Distance() int { return distanceByDecision(s, s.start.Size()) }

// Statistics returns {search-node visits}.
func (s *Simple) Statistics() []int { return []int{s.stats.branches} }

// ResetStatistics zeroes the counter.
func (s *Simple) ResetStatistics() { s.stats.branches = 0 }

// missing counts the diagonals of g absent from the target — a lower
// bound on the flips still needed, since one flip fixes at most one.
func (s *Simple) missing(g *triangulation.Graph) int {
	count := 0
	for _, e := range g.Edges() {
		if !s.target.HasEdge(e) {
			count++
		}
	}

	return count
}

// search walks flip sequences depth-first, undoing every flip on the way
// back so that g is restored on all paths.
func (s *Simple) search(g *triangulation.Graph, k int) bool {
	s.stats.branches++
	if g.Equal(s.target) {
		return true
	}
	if s.missing(g) > k {
		return false
	}
	for _, e := range g.Edges() {
		if s.target.HasEdge(e) {
			continue
		}
		produced := g.Flip(e)
		ok := s.search(g, k-1)
		g.Flip(produced)
		if ok {
			return true
		}
	}

	return false
}
