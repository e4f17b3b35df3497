package flipdist

import (
	"github.com/emirpasic/gods/maps/hashmap"

	"github.com/tessile/fliptri/triangulation"
)

// edgeMultiset tracks edges excluded from candidate selection while the
// pair-choice enumeration backtracks. An edge may be forbidden by several
// overlapping choices at once, hence a multiset rather than a set.
type edgeMultiset struct {
	counts *hashmap.Map // triangulation.Edge -> int
}

func newEdgeMultiset() *edgeMultiset {
	return &edgeMultiset{counts: hashmap.New()}
}

// Add inserts one occurrence of e.
func (m *edgeMultiset) Add(e triangulation.Edge) {
	if v, ok := m.counts.Get(e); ok {
		m.counts.Put(e, v.(int)+1)

		return
	}
	m.counts.Put(e, 1)
}

// RemoveOne removes a single occurrence of e; absent edges are left alone.
func (m *edgeMultiset) RemoveOne(e triangulation.Edge) {
	v, ok := m.counts.Get(e)
	if !ok {
		return
	}
	if c := v.(int); c > 1 {
		m.counts.Put(e, c-1)

		return
	}
	m.counts.Remove(e)
}

// Count returns the number of occurrences of e.
func (m *edgeMultiset) Count(e triangulation.Edge) int {
	if v, ok := m.counts.Get(e); ok {
		return v.(int)
	}

	return 0
}

// acquire forbids e together with its four triangle neighbors in g.
// Paired with release around each speculative candidate choice.
func (m *edgeMultiset) acquire(g *triangulation.Graph, e triangulation.Edge) {
	m.Add(e)
	for _, nb := range g.Neighbors(e) {
		m.Add(nb)
	}
}

// release undoes one acquire of e and its triangle neighbors.
func (m *edgeMultiset) release(g *triangulation.Graph, e triangulation.Edge) {
	m.RemoveOne(e)
	for _, nb := range g.Neighbors(e) {
		m.RemoveOne(nb)
	}
}
