// Package fliptri decides and computes flip distances between
// triangulations of labeled convex polygons — from the triangulation
// primitives up to a parameterized decomposition search.
//
// What is fliptri?
//
//	A small, deterministic library answering one hard question: can
//	triangulation A of a convex n-gon be turned into triangulation B
//	using at most k diagonal flips?
//		• Triangulation primitives: edges, flips, sub-polygon extraction
//		• Exact decision search: free-flip propagation + shared-edge decomposition
//		• Reference strategies: exhaustive DFS and breadth-first exact distance
//		• A command-line driver for experiments and timing sweeps
//
// Why fliptri?
//
//   - Deterministic – stable edge ordering, reproducible search trees
//   - Exact – decision answers are never heuristic approximations
//   - Small API – two packages, one interface, sentinel errors
//
// Under the hood, everything is organized under two subpackages plus a CLI:
//
//	triangulation/ — Edge and Graph types, flips, decomposition, parsing
//	flipdist/      — Solver contract, registry, and the search strategies
//	cmd/fliptri/   — decide / distance / convert driver
//
// Quick ASCII example:
//
//	    0───5              0───5
//	   ╱│╲  │             ╱ ╲  │
//	  1 │ ╲ │    ──2──▶  1   ╲ │
//	   ╲│  ╲│             ╲   ╲│
//	    2───3───4          2───3───4
//
//	two fan triangulations of a hexagon at flip distance 2.
//
// Dive into the flipdist package docs for the search contract and into
// triangulation for the encoding of polygons as balanced parentheses.
//
//	go get github.com/tessile/fliptri
package fliptri
