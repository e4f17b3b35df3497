// Package triangulation defines sentinel errors shared by the
// constructors and the parentheses codec.
package triangulation

import "errors"

// Sentinel errors for triangulation construction and parsing.
var (
	// ErrPolygonTooSmall is returned when a polygon has fewer than 3 vertices.
	ErrPolygonTooSmall = errors.New("triangulation: polygon needs at least 3 vertices")

	// ErrVertexRange is returned when an edge endpoint is outside 0..n-1.
	ErrVertexRange = errors.New("triangulation: vertex id out of range")

	// ErrNotDiagonal is returned when a supplied edge is degenerate or a
	// boundary edge of the polygon.
	ErrNotDiagonal = errors.New("triangulation: edge is not a polygon diagonal")

	// ErrCrossingDiagonals is returned when two supplied diagonals cross.
	ErrCrossingDiagonals = errors.New("triangulation: diagonals cross")

	// ErrDiagonalCount is returned when the diagonal set does not have
	// exactly n-3 distinct members.
	ErrDiagonalCount = errors.New("triangulation: diagonal count must be n-3")

	// ErrUnbalanced is returned when a parentheses encoding is malformed.
	ErrUnbalanced = errors.New("triangulation: unbalanced parentheses encoding")

	// ErrTrailingInput is returned when an encoding has characters left
	// over after one complete tree.
	ErrTrailingInput = errors.New("triangulation: trailing input after tree encoding")
)
