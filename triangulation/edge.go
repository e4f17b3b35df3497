package triangulation

import "fmt"

// Edge is an unordered pair of polygon vertex ids, normalized so that U < V.
// It is an immutable value type: comparable, usable as a map key, and equal
// regardless of the argument order it was built from.
type Edge struct {
	U, V int
}

// NewEdge returns the normalized edge {min(a,b), max(a,b)}.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Has reports whether v is one of the edge's endpoints.
func (e Edge) Has(v int) bool { return e.U == v || e.V == v }

// Other returns the endpoint opposite v. It must only be called with one of
// the edge's endpoints.
func (e Edge) Other(v int) int {
	if e.U == v {
		return e.V
	}

	return e.U
}

// Less defines the ascending (U, V) order used for deterministic iteration.
func (e Edge) Less(o Edge) bool {
	if e.U != o.U {
		return e.U < o.U
	}

	return e.V < o.V
}

// crosses reports whether e and o cross as chords of a convex polygon,
// i.e. their endpoints strictly interleave on the boundary circle.
func (e Edge) crosses(o Edge) bool {
	return (e.U < o.U && o.U < e.V && e.V < o.V) ||
		(o.U < e.U && e.U < o.V && o.V < e.V)
}

// String renders the edge as "(u,v)".
func (e Edge) String() string { return fmt.Sprintf("(%d,%d)", e.U, e.V) }
