// Package flipdist — Source: the parameterized decomposition search.
//
// Source decides reachability within budget k by combining four moves:
//  1. Fast path: if start and target already share an edge, split there and
//     solve both sides independently (splitAndSearch).
//  2. Free flips: a flip producing a target edge is committed greedily and
//     the pair splits at the produced edge (propagateFreeFlips).
//  3. Speculative branching: otherwise some triangle-independent set of
//     "source" edges must open the sequence; all of them are flipped at
//     once, their exposed neighbors become the only candidates for the
//     next round, and the remaining budget is distributed over the
//     independent stuck sub-pairs.
//  4. Pair choice: each committed flip exposes two neighbor pairs; a later
//     round picks at most one edge per pair, subject to the conflict
//     multiset, enumerated depth-first with skip-before-take.
//
// Budgets are plain ints and may go negative transiently; a negative
// budget is a definitive "no", never an error. All failures are the plain
// boolean false.
//
// Complexity: exponential in the worst case (the problem is NP-hard);
// the decomposition makes the tree depth and width track the budget k
// rather than the polygon size, which is the point of the strategy.
package flipdist

import (
	"github.com/tessile/fliptri/triangulation"
)

// Source is the decomposition-search strategy.
type Source struct {
	start, target *triangulation.Graph
	stats         *searchStats
}

// NewSource builds the decomposition-search solver for (start, target).
func NewSource(start, target *triangulation.Graph) (*Source, error) {
	if err := validatePair(start, target); err != nil {
		return nil, err
	}

	return &Source{start: start, target: target, stats: &searchStats{}}, nil
}

// child spawns a sub-solver over an independent sub-pair, sharing the
// parent's diagnostics counter.
func (s *Source) child(start, target *triangulation.Graph) *Source {
	return &Source{start: start, target: target, stats: s.stats}
}

// Decision reports whether start reaches target in at most k flips.
//
// The scan over the start's diagonals is deterministic (ascending edge
// order): the first edge found to be shared triggers a split at budget k;
// the first edge whose flip lands in the target is committed and split at
// budget k-1, with the flip undone before returning either way. Only when
// no such edge exists does the search branch over candidate source sets.
func (s *Source) Decision(k int) bool {
	s.stats.branches++
	if k < 0 {
		return false
	}
	if s.start.Equal(s.target) {
		return true
	}
	g := s.start.Clone()
	for _, e := range g.Edges() {
		if s.target.HasEdge(e) {
			return s.splitAndSearch(g, e, k, nil)
		}
		produced := g.Flip(e)
		if s.target.HasEdge(produced) {
			ok := s.splitAndSearch(g, produced, k-1, nil)
			g.Flip(produced)

			return ok
		}
		g.Flip(produced)
	}
	for _, sources := range s.start.Sources() {
		if s.search(sources, s.start, k) {
			return true
		}
	}

	return false
}

// Distance returns the minimum flip count via increasing decision budgets.
func (s *Source) Distance() int { return distanceByDecision(s, s.start.Size()) }

// Statistics returns {search-node visits} for the whole search tree.
func (s *Source) Statistics() []int { return []int{s.stats.branches} }

// ResetStatistics zeroes the shared counter.
func (s *Source) ResetStatistics() { s.stats.branches = 0 }

// search decides whether g reaches the target within k flips when only the
// privileged source edges may open the sequence. It owns a private clone
// of g; the caller's triangulation is never altered.
func (s *Source) search(sources []triangulation.Edge, g *triangulation.Graph, k int) bool {
	s.stats.branches++
	g = g.Clone()
	if debugChecks {
		assertNonTrivial(g, s.target)
		assertIndependent(sources, g)
	}
	if g.Equal(s.target) && k >= 0 {
		return true
	}
	// Every unresolved diagonal costs at least one flip; the pending
	// sources are already paid for below.
	if g.Size()-3 > k-len(sources) {
		return false
	}
	if len(sources) == 0 {
		return false
	}

	// Fast path: the first flip that lands in the target decides the call.
	// It is only legal when the flipped edge is a privileged source.
	for _, e := range g.Edges() {
		produced := g.Flip(e)
		if s.target.HasEdge(produced) {
			ok := containsEdge(sources, e) && s.splitAndSearch(g, produced, k-1, sources)
			g.Flip(produced)

			return ok
		}
		g.Flip(produced)
	}

	// Speculative branch: commit every source flip, collect the exposed
	// neighbor pairs, pay for the flips, then drain the free flips.
	var next []edgePair
	for _, e := range sources {
		produced := g.Flip(e)
		next = appendNeighborPairs(next, g, produced)
	}
	k -= len(sources)
	stuck := propagateFreeFlips(subProblem{cur: g, tgt: s.target, pairs: next}, &k)
	if k < 0 {
		return false
	}

	// Distribute the remaining budget over the independent sub-pairs:
	// for each, the first sufficient allocation is consumed from k.
	for _, p := range stuck {
		if p.cur.Equal(p.tgt) {
			continue
		}
		sub := s.child(p.cur, p.tgt)
		i := 0
		for ; i <= k; i++ {
			if sub.searchPairs(p.pairs, sub.start, i) {
				k -= i

				break
			}
		}
		if i == k+1 {
			return false
		}
	}

	return k >= 0
}

// searchPairs chooses, for every exposed neighbor pair, at most one edge to
// promote into the active source set, then delegates to search. Choices
// are enumerated depth-first, skipping a pair before picking either side;
// an edge is skipped while it or a triangle neighbor of a prior choice is
// held by the conflict multiset. The first satisfying choice wins.
func (s *Source) searchPairs(pairs []edgePair, g *triangulation.Graph, k int) bool {
	if debugChecks {
		assertNonTrivial(g, s.target)
	}
	chosen := make([]triangulation.Edge, 0, len(pairs))
	forbid := newEdgeMultiset()
	var choose func(idx int) bool
	choose = func(idx int) bool {
		if idx == len(pairs) {
			return s.search(chosen, g, k)
		}
		if choose(idx + 1) {
			return true
		}
		for _, e := range []triangulation.Edge{pairs[idx].A, pairs[idx].B} {
			if !g.Flippable(e) || forbid.Count(e) > 0 {
				continue
			}
			forbid.acquire(g, e)
			chosen = append(chosen, e)
			ok := choose(idx + 1)
			chosen = chosen[:len(chosen)-1]
			forbid.release(g, e)
			if ok {
				return true
			}
		}

		return false
	}

	return choose(0)
}

// splitAndSearch decomposes the pair at a divider edge shared by g and the
// target, then searches the two independent sides: the left side probes
// budgets from its own lower bound upward, and the first feasible left
// budget fixes the allocation — the right side gets exactly the remainder.
//
// TODO: thread the projected source sets into the two sub-decisions
// instead of dropping them at the divider.
func (s *Source) splitAndSearch(g *triangulation.Graph, divider triangulation.Edge, k int, sources []triangulation.Edge) bool {
	if k <= 0 {
		return k == 0 && g.Equal(s.target)
	}
	v1, v2 := divider.U, divider.V
	left := s.child(g.SubGraph(v1, v2), s.target.SubGraph(v1, v2))
	right := s.child(g.SubGraph(v2, v1), s.target.SubGraph(v2, v1))
	for i := left.start.Size() - 3; i <= k; i++ {
		if left.Decision(i) {
			return right.Decision(k - i)
		}
	}

	return false
}

// containsEdge reports membership of e in the slice.
func containsEdge(edges []triangulation.Edge, e triangulation.Edge) bool {
	for _, have := range edges {
		if have == e {
			return true
		}
	}

	return false
}
