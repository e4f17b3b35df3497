// Package triangulation — Graph: the mutable triangulated-polygon structure.
//
// Graph keeps the diagonal set explicitly and the full adjacency (boundary
// cycle included) alongside it, so that the flip operation and triangle
// queries are O(deg) lookups instead of geometric searches.
//
// Contracts shared by all methods:
//   - Vertices are 0..n-1 in counterclockwise boundary order.
//   - A valid Graph always carries exactly n-3 pairwise non-crossing
//     diagonals; Flip preserves this invariant.
//   - Mutation is single-threaded; concurrent readers must Clone first.
package triangulation

import (
	"sort"
	"strconv"
	"strings"
)

// Graph is a triangulation of a convex polygon with n labeled vertices.
// The zero value is not usable; construct via New, Fan, Parse or SubGraph.
type Graph struct {
	n    int
	diag map[Edge]struct{}
	adj  []map[int]struct{}
}

// newPolygon returns an n-gon with its boundary cycle and no diagonals.
func newPolygon(n int) *Graph {
	g := &Graph{
		n:    n,
		diag: make(map[Edge]struct{}, max(n-3, 0)),
		adj:  make([]map[int]struct{}, n),
	}
	for v := 0; v < n; v++ {
		g.adj[v] = make(map[int]struct{}, 4)
	}
	for v := 0; v < n; v++ {
		w := (v + 1) % n
		g.adj[v][w] = struct{}{}
		g.adj[w][v] = struct{}{}
	}

	return g
}

// New builds a triangulation of the n-gon from an explicit diagonal list.
//
// Validation is strict: every diagonal must have both endpoints in 0..n-1,
// must not be degenerate or a boundary edge, no two diagonals may cross,
// and exactly n-3 distinct diagonals must remain. Any violation yields the
// matching sentinel error and a nil Graph.
//
// Complexity: O(d²) for the pairwise crossing check, d = n-3.
func New(n int, diagonals []Edge) (*Graph, error) {
	if n < 3 {
		return nil, ErrPolygonTooSmall
	}
	g := newPolygon(n)
	for _, d := range diagonals {
		e := NewEdge(d.U, d.V)
		if e.U < 0 || e.V >= n {
			return nil, ErrVertexRange
		}
		if e.U == e.V || g.boundary(e) {
			return nil, ErrNotDiagonal
		}
		for have := range g.diag {
			if have.crosses(e) {
				return nil, ErrCrossingDiagonals
			}
		}
		g.addDiagonal(e)
	}
	if len(g.diag) != n-3 {
		return nil, ErrDiagonalCount
	}

	return g, nil
}

// Fan returns the fan triangulation of the n-gon with all diagonals
// incident to apex.
func Fan(n, apex int) (*Graph, error) {
	if n < 3 {
		return nil, ErrPolygonTooSmall
	}
	if apex < 0 || apex >= n {
		return nil, ErrVertexRange
	}
	g := newPolygon(n)
	for v := 0; v < n; v++ {
		e := NewEdge(apex, v)
		if v == apex || g.boundary(e) {
			continue
		}
		g.addDiagonal(e)
	}

	return g, nil
}

// Size returns the number of polygon vertices.
func (g *Graph) Size() int { return g.n }

// Clone returns a deep copy sharing no state with g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		n:    g.n,
		diag: make(map[Edge]struct{}, len(g.diag)),
		adj:  make([]map[int]struct{}, g.n),
	}
	for e := range g.diag {
		c.diag[e] = struct{}{}
	}
	for v, nb := range g.adj {
		c.adj[v] = make(map[int]struct{}, len(nb))
		for w := range nb {
			c.adj[v][w] = struct{}{}
		}
	}

	return c
}

// Equal reports whether g and o triangulate the same polygon with the same
// diagonal set.
func (g *Graph) Equal(o *Graph) bool {
	if g.n != o.n || len(g.diag) != len(o.diag) {
		return false
	}
	for e := range g.diag {
		if _, ok := o.diag[e]; !ok {
			return false
		}
	}

	return true
}

// Edges returns the diagonals in ascending (U, V) order. Boundary edges are
// implicit and never included: every returned edge is flippable. The stable
// order fixes "first matching edge" semantics for the search layer.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.diag))
	for e := range g.diag {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// HasEdge reports whether e is present in the triangulation. Boundary edges
// of the polygon are always present.
func (g *Graph) HasEdge(e Edge) bool {
	if g.boundary(e) {
		return true
	}
	_, ok := g.diag[e]

	return ok
}

// Flippable reports whether e is a diagonal of g. In a convex polygon every
// present diagonal is flippable; boundary and absent edges are not.
func (g *Graph) Flippable(e Edge) bool {
	_, ok := g.diag[e]

	return ok
}

// Flip removes diagonal e and inserts the opposite diagonal of the
// quadrilateral formed by the two triangles adjacent to e, returning the
// inserted edge. Flipping the returned edge restores g exactly.
//
// e must be a present diagonal; see Flippable.
func (g *Graph) Flip(e Edge) Edge {
	c, d := g.apexes(e)
	g.removeDiagonal(e)
	f := NewEdge(c, d)
	g.addDiagonal(f)

	return f
}

// Neighbors returns the four triangle-adjacent edges of diagonal e: first
// the two edges of the inner triangle (apex strictly between e.U and e.V),
// then the two edges of the outer triangle. Returned edges may be boundary
// edges of the polygon.
func (g *Graph) Neighbors(e Edge) [4]Edge {
	c, d := g.apexes(e)

	return [4]Edge{
		NewEdge(e.U, c), NewEdge(e.V, c),
		NewEdge(e.U, d), NewEdge(e.V, d),
	}
}

// ShareTriangle reports whether two distinct edges of g belong to a common
// triangle: they share exactly one endpoint and their free endpoints are
// joined by an edge. In a polygon triangulation (no interior vertices)
// every such 3-cycle bounds a face.
func (g *Graph) ShareTriangle(e1, e2 Edge) bool {
	if e1 == e2 {
		return false
	}
	var shared, u, v int
	switch {
	case e2.Has(e1.U):
		shared = e1.U
	case e2.Has(e1.V):
		shared = e1.V
	default:
		return false
	}
	u, v = e1.Other(shared), e2.Other(shared)
	_, ok := g.adj[u][v]

	return ok
}

// apexes returns the two triangle apexes of diagonal e: c strictly inside
// the vertex range (e.U, e.V) and d strictly outside it.
func (g *Graph) apexes(e Edge) (c, d int) {
	c, d = -1, -1
	for w := range g.adj[e.U] {
		if _, ok := g.adj[e.V][w]; !ok {
			continue
		}
		if e.U < w && w < e.V {
			c = w
		} else {
			d = w
		}
	}

	return c, d
}

// boundary reports whether e is an edge of the polygon boundary cycle.
func (g *Graph) boundary(e Edge) bool {
	return e.V-e.U == 1 || (e.U == 0 && e.V == g.n-1)
}

func (g *Graph) addDiagonal(e Edge) {
	g.diag[e] = struct{}{}
	g.adj[e.U][e.V] = struct{}{}
	g.adj[e.V][e.U] = struct{}{}
}

func (g *Graph) removeDiagonal(e Edge) {
	delete(g.diag, e)
	delete(g.adj[e.U], e.V)
	delete(g.adj[e.V], e.U)
}

// VertexFilter returns the predicate selecting original vertex ids on the
// sub-polygon side walked from v1 to v2 (counterclockwise, both inclusive).
// It is independent of the polygon size, so one filter serves both the
// current and the target triangulation of a pair.
func VertexFilter(v1, v2 int) func(int) bool {
	if v1 < v2 {
		return func(v int) bool { return v1 <= v && v <= v2 }
	}

	return func(v int) bool { return v >= v1 || v <= v2 }
}

// VertexMapper returns the renumbering that sends surviving original ids on
// the v1→v2 side to the sub-polygon's local ids 0..m-1, with v1 mapping
// to 0 and v2 to m-1.
func (g *Graph) VertexMapper(v1, v2 int) func(int) int {
	n := g.n

	return func(v int) int { return ((v-v1)%n + n) % n }
}

// SubGraph extracts the sub-polygon walked from v1 to v2, renumbered via
// VertexMapper(v1, v2). Diagonals with both endpoints on that side survive;
// the divider edge (v1, v2) becomes the new boundary edge (0, m-1).
//
// (v1, v2) must be an edge of g, so that the cut leaves a valid
// triangulation on each side.
func (g *Graph) SubGraph(v1, v2 int) *Graph {
	filter := VertexFilter(v1, v2)
	mapper := g.VertexMapper(v1, v2)
	sub := newPolygon(mapper(v2) + 1)
	for e := range g.diag {
		if !filter(e.U) || !filter(e.V) {
			continue
		}
		ne := NewEdge(mapper(e.U), mapper(e.V))
		if !sub.boundary(ne) {
			sub.addDiagonal(ne)
		}
	}

	return sub
}

// FilterMapEdges projects edges onto the v1→v2 side: edges whose endpoints
// are both retained are renumbered, all others are dropped. The input order
// is preserved.
func (g *Graph) FilterMapEdges(v1, v2 int, edges []Edge) []Edge {
	filter := VertexFilter(v1, v2)
	mapper := g.VertexMapper(v1, v2)
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if filter(e.U) && filter(e.V) {
			out = append(out, NewEdge(mapper(e.U), mapper(e.V)))
		}
	}

	return out
}

// String renders a canonical form "n:(u,v)(u,v)…" with diagonals in
// ascending order. Two Graphs are Equal iff their strings coincide, which
// makes the form usable as a state key.
func (g *Graph) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(g.n))
	b.WriteByte(':')
	for _, e := range g.Edges() {
		b.WriteString(e.String())
	}

	return b.String()
}
