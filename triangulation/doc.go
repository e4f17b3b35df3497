// Package triangulation models triangulations of labeled convex polygons:
// the Edge value type, the mutable Graph structure with its diagonal-flip
// operation, sub-polygon decomposition, and a balanced-parentheses codec.
//
// A convex polygon with n vertices (labeled 0..n-1 counterclockwise) is
// triangulated by exactly n-3 pairwise non-crossing diagonals. The boundary
// edges (i, i+1 mod n) are implicit and always present. Flipping a diagonal
// replaces it with the other diagonal of the quadrilateral formed by its two
// adjacent triangles; the operation is its own inverse.
//
// Determinism contract: Edges returns diagonals in ascending (U, V) order,
// so "the first edge such that …" is well defined and reproducible. All
// methods are single-threaded; a Graph is owned by one search frame at a
// time and shared only via Clone or SubGraph.
//
// The codec: a triangulation of the (L+1)-gon corresponds to a full binary
// tree with L leaves, written as balanced parentheses (leaf = empty string,
// internal node = "(" left right ")"). Parse and Format invert one another.
package triangulation
