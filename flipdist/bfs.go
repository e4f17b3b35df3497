// Package flipdist — BFS: breadth-first exact distance.
package flipdist

import (
	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/tessile/fliptri/triangulation"
)

// BFS explores the triangulation state space outward from start in waves
// of one flip each, until the target appears. The wave number at which it
// appears is the exact flip distance, so Distance is the primary entry and
// Decision just compares it against the budget.
//
// Visited states are keyed by the canonical string form of the
// triangulation. Memory grows with the Catalan numbers of the polygon
// size; suited to small polygons and to cross-checking other strategies.
type BFS struct {
	start, target *triangulation.Graph
	stats         *searchStats
}

// NewBFS builds the breadth-first solver for (start, target).
func NewBFS(start, target *triangulation.Graph) (*BFS, error) {
	if err := validatePair(start, target); err != nil {
		return nil, err
	}

	return &BFS{start: start, target: target, stats: &searchStats{}}, nil
}

// Decision reports whether start reaches target in at most k flips.
func (s *BFS) Decision(k int) bool {
	if k < 0 {
		return false
	}

	return s.run(k) <= k
}

// Distance returns the exact flip distance.
func (s *BFS) Distance() int { return s.run(-1) }

// Statistics returns {search-node visits}, one per expanded state.
func (s *BFS) Statistics() []int { return []int{s.stats.branches} }

// ResetStatistics zeroes the counter.
func (s *BFS) ResetStatistics() { s.stats.branches = 0 }

// frontierItem pairs a state with its wave depth.
type frontierItem struct {
	g     *triangulation.Graph
	depth int
}

// run performs the breadth-first sweep and returns the distance to the
// target. With limit >= 0 the sweep abandons waves beyond limit and
// returns limit+1 as a definitive "too far" answer; limit < 0 sweeps to
// completion.
func (s *BFS) run(limit int) int {
	frontier := arrayqueue.New()
	frontier.Enqueue(frontierItem{g: s.start.Clone(), depth: 0})
	visited := map[string]struct{}{s.start.String(): {}}
	for !frontier.Empty() {
		front, _ := frontier.Dequeue()
		item := front.(frontierItem)
		s.stats.branches++
		if item.g.Equal(s.target) {
			return item.depth
		}
		if limit >= 0 && item.depth == limit {
			continue
		}
		for _, e := range item.g.Edges() {
			next := item.g.Clone()
			next.Flip(e)
			key := next.String()
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			frontier.Enqueue(frontierItem{g: next, depth: item.depth + 1})
		}
	}

	return limit + 1
}
