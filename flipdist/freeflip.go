package flipdist

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/tessile/fliptri/triangulation"
)

// edgePair holds the two neighbor edges exposed across one triangle of a
// freshly flipped diagonal. A later branch may pick at most one of the two.
type edgePair struct {
	A, B triangulation.Edge
}

// subProblem is an independent (current, target) pair together with the
// candidate edge pairs that survived projection into its vertex space.
type subProblem struct {
	cur, tgt *triangulation.Graph
	pairs    []edgePair
}

// appendNeighborPairs records the four neighbors of e in g as two pairs,
// one per adjacent triangle.
func appendNeighborPairs(pairs []edgePair, g *triangulation.Graph, e triangulation.Edge) []edgePair {
	nb := g.Neighbors(e)

	return append(pairs,
		edgePair{A: nb[0], B: nb[1]},
		edgePair{A: nb[2], B: nb[3]},
	)
}

// dropPairsWith removes every pair that contains e (the edge consumed by a
// flip can no longer seed a later branch).
func dropPairsWith(pairs []edgePair, e triangulation.Edge) []edgePair {
	out := pairs[:0]
	for _, p := range pairs {
		if p.A != e && p.B != e {
			out = append(out, p)
		}
	}

	return out
}

// filterMapPairs projects pairs through a side filter and vertex mapper,
// dropping any pair whose four endpoints are not jointly retained.
func filterMapPairs(pairs []edgePair, filter func(int) bool, mapper func(int) int) []edgePair {
	out := make([]edgePair, 0, len(pairs))
	for _, p := range pairs {
		if filter(p.A.U) && filter(p.A.V) && filter(p.B.U) && filter(p.B.V) {
			out = append(out, edgePair{
				A: triangulation.NewEdge(mapper(p.A.U), mapper(p.A.V)),
				B: triangulation.NewEdge(mapper(p.B.U), mapper(p.B.V)),
			})
		}
	}

	return out
}

// propagateFreeFlips greedily applies every available free flip — a flip
// whose produced edge is already in the target — to the initial pair and
// to every sub-pair the splits generate. Each free flip costs one unit of
// the shared budget (*k may go negative; the caller checks) and splits the
// pair at the produced shared edge into two independent sides.
//
// An explicit work stack keeps memory bounded by the outstanding sub-pairs
// instead of recursing once per flip. Returned are the stuck sub-problems:
// those with no free flip left.
//
// A free flip is always taken, never explored as an alternative; matching
// the target immediately can never be worth deferring.
func propagateFreeFlips(initial subProblem, k *int) []subProblem {
	work := arraystack.New()
	work.Push(initial)
	var stuck []subProblem
	for !work.Empty() {
		top, _ := work.Pop()
		p := top.(subProblem)
		free := false
		for _, e := range p.cur.Edges() {
			produced := p.cur.Flip(e)
			if !p.tgt.HasEdge(produced) {
				p.cur.Flip(produced)

				continue
			}
			// Commit: keep the flip, pay for it, split at the new
			// shared edge and rescan both sides.
			free = true
			*k--
			next := dropPairsWith(p.pairs, e)
			next = appendNeighborPairs(next, p.cur, produced)
			v1, v2 := produced.U, produced.V
			work.Push(subProblem{
				cur:   p.cur.SubGraph(v1, v2),
				tgt:   p.tgt.SubGraph(v1, v2),
				pairs: filterMapPairs(next, triangulation.VertexFilter(v1, v2), p.cur.VertexMapper(v1, v2)),
			})
			work.Push(subProblem{
				cur:   p.cur.SubGraph(v2, v1),
				tgt:   p.tgt.SubGraph(v2, v1),
				pairs: filterMapPairs(next, triangulation.VertexFilter(v2, v1), p.cur.VertexMapper(v2, v1)),
			})

			break
		}
		if !free {
			stuck = append(stuck, p)
		}
	}

	return stuck
}
