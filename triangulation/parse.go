// Package triangulation — the balanced-parentheses codec.
//
// A triangulation of the n-gon corresponds to a full binary tree with n-1
// leaves: leaf i stands for boundary edge (i, i+1), the internal node
// spanning leaves i..j-1 stands for edge (i, j), and the root stands for
// the closing boundary edge (0, n-1). In the written form a leaf is the
// empty string and an internal node is "(" left right ")", so the n-gon
// is encoded in exactly 2(n-2) parentheses.
//
// Examples: "()" is the triangle, "(())" and "(()())" are a square and a
// pentagon, Fan(n, 0) formats as "((…()…))".
package triangulation

import "strings"

// treeNode is one node of the decoded dual tree; leaves carry no children.
type treeNode struct {
	left, right *treeNode
	leaves      int
}

// parser is a recursive-descent reader over the parentheses alphabet.
type parser struct {
	src string
	pos int
}

// tree reads one (possibly empty) tree starting at the current position.
func (p *parser) tree() (*treeNode, error) {
	if p.pos >= len(p.src) || p.src[p.pos] != '(' {
		return &treeNode{leaves: 1}, nil
	}
	p.pos++
	left, err := p.tree()
	if err != nil {
		return nil, err
	}
	right, err := p.tree()
	if err != nil {
		return nil, err
	}
	if p.pos >= len(p.src) || p.src[p.pos] != ')' {
		return nil, ErrUnbalanced
	}
	p.pos++

	return &treeNode{left: left, right: right, leaves: left.leaves + right.leaves}, nil
}

// Parse decodes a balanced-parentheses dual-tree encoding into a
// triangulation. The alphabet is exactly '(' and ')'; anything else stops
// the tree and surfaces as ErrTrailingInput, an unmatched '(' as
// ErrUnbalanced, and the empty encoding (a 2-gon) as ErrPolygonTooSmall.
func Parse(s string) (*Graph, error) {
	p := &parser{src: s}
	root, err := p.tree()
	if err != nil {
		return nil, err
	}
	if p.pos != len(s) {
		return nil, ErrTrailingInput
	}
	n := root.leaves + 1
	if n < 3 {
		return nil, ErrPolygonTooSmall
	}
	g := newPolygon(n)
	var place func(t *treeNode, lo int)
	place = func(t *treeNode, lo int) {
		if t.left == nil {
			return
		}
		if e := NewEdge(lo, lo+t.leaves); !g.boundary(e) {
			g.addDiagonal(e)
		}
		place(t.left, lo)
		place(t.right, lo+t.left.leaves)
	}
	place(root, 0)

	return g, nil
}

// Format encodes g back into the balanced-parentheses form decoded by
// Parse. The two functions invert one another exactly.
func Format(g *Graph) string {
	var b strings.Builder
	var walk func(lo, hi int)
	walk = func(lo, hi int) {
		if hi-lo == 1 {
			return
		}
		split := g.innerApex(lo, hi)
		b.WriteByte('(')
		walk(lo, split)
		walk(split, hi)
		b.WriteByte(')')
	}
	walk(0, g.n-1)

	return b.String()
}

// innerApex returns the unique vertex strictly between lo and hi forming a
// triangle with edge (lo, hi). Defined for boundary edges as well, which
// lets Format start from the root edge (0, n-1).
func (g *Graph) innerApex(lo, hi int) int {
	for w := range g.adj[lo] {
		if lo < w && w < hi {
			if _, ok := g.adj[hi][w]; ok {
				return w
			}
		}
	}

	return -1
}
