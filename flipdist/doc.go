// Package flipdist answers the flip-distance question on triangulated
// convex polygons: can triangulation A reach triangulation B in at most
// k diagonal flips, and what is the minimum such k?
//
// The problem is NP-hard in general; the package ships three exact
// strategies behind one Solver contract, selected by name through New:
//
//   - "source" — the parameterized decomposition search. It exploits three
//     structural facts: a flip that immediately produces a target edge
//     ("free flip") may be taken greedily; once both triangulations share
//     an edge, the instance splits at that edge into two fully independent
//     sub-instances; and the edges allowed to start a branch ("source"
//     edges) always form a triangle-independent set, so candidate first
//     flips are enumerated combinatorially under that constraint. This is
//     the strategy of choice for small budgets on large polygons.
//
//   - "simple" — exhaustive depth-first search over flip sequences with a
//     symmetric-difference lower bound. Trustworthy baseline, exponential.
//
//   - "bfs" — breadth-first exploration of the triangulation state space.
//     Computes the exact distance directly; memory grows with the Catalan
//     numbers, so it suits small polygons and cross-checking.
//
// All strategies are deterministic: identical inputs produce identical
// search trees and identical diagnostics. Failure is always the plain
// boolean false; no error distinguishes "infeasible" from "budget
// exhausted".
//
// Diagnostics: every solver counts search-node visits into a single
// counter shared across all nested sub-solvers it spawns; read it with
// Statistics and zero it with ResetStatistics.
//
// Debug builds (-tags debug) enable internal invariant checks on the
// decomposition boundaries; release builds compile them out.
package flipdist
