package triangulation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessile/fliptri/triangulation"
)

// mustFan builds a fan triangulation or fails the test.
func mustFan(t *testing.T, n, apex int) *triangulation.Graph {
	t.Helper()
	g, err := triangulation.Fan(n, apex)
	require.NoError(t, err)

	return g
}

func edges(pairs ...[2]int) []triangulation.Edge {
	out := make([]triangulation.Edge, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, triangulation.NewEdge(p[0], p[1]))
	}

	return out
}

func TestNew_Validation(t *testing.T) {
	_, err := triangulation.New(2, nil)
	require.ErrorIs(t, err, triangulation.ErrPolygonTooSmall)

	_, err = triangulation.New(6, edges([2]int{0, 6}, [2]int{0, 3}, [2]int{0, 4}))
	require.ErrorIs(t, err, triangulation.ErrVertexRange)

	_, err = triangulation.New(6, edges([2]int{0, 1}, [2]int{0, 3}, [2]int{0, 4}))
	require.ErrorIs(t, err, triangulation.ErrNotDiagonal)

	_, err = triangulation.New(6, edges([2]int{0, 2}, [2]int{1, 3}, [2]int{0, 4}))
	require.ErrorIs(t, err, triangulation.ErrCrossingDiagonals)

	_, err = triangulation.New(6, edges([2]int{0, 2}, [2]int{0, 3}))
	require.ErrorIs(t, err, triangulation.ErrDiagonalCount)
}

func TestNew_MatchesFan(t *testing.T) {
	g, err := triangulation.New(6, edges([2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}))
	require.NoError(t, err)
	require.True(t, g.Equal(mustFan(t, 6, 0)))
}

func TestFan_Validation(t *testing.T) {
	_, err := triangulation.Fan(2, 0)
	require.ErrorIs(t, err, triangulation.ErrPolygonTooSmall)
	_, err = triangulation.Fan(6, 6)
	require.ErrorIs(t, err, triangulation.ErrVertexRange)
}

func TestEdges_SortedDiagonalsOnly(t *testing.T) {
	g := mustFan(t, 6, 0)
	require.Equal(t,
		edges([2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}),
		g.Edges())
}

func TestHasEdge_BoundaryAlwaysPresent(t *testing.T) {
	g := mustFan(t, 6, 0)
	require.True(t, g.HasEdge(triangulation.NewEdge(0, 1)))
	require.True(t, g.HasEdge(triangulation.NewEdge(5, 0)))
	require.True(t, g.HasEdge(triangulation.NewEdge(0, 3)))
	require.False(t, g.HasEdge(triangulation.NewEdge(1, 3)))
}

func TestFlippable(t *testing.T) {
	g := mustFan(t, 6, 0)
	require.True(t, g.Flippable(triangulation.NewEdge(0, 3)))
	require.False(t, g.Flippable(triangulation.NewEdge(0, 1)), "boundary edges never flip")
	require.False(t, g.Flippable(triangulation.NewEdge(1, 3)), "absent edges never flip")
}

func TestFlip_Involution(t *testing.T) {
	g := mustFan(t, 8, 0)
	before := g.Clone()
	for _, e := range g.Edges() {
		produced := g.Flip(e)
		require.False(t, g.HasEdge(e))
		require.True(t, g.HasEdge(produced))
		restored := g.Flip(produced)
		require.Equal(t, e, restored)
		require.True(t, g.Equal(before), "flip twice must restore the graph")
	}
}

func TestFlip_QuadrilateralDiagonal(t *testing.T) {
	// Hexagon fan from 0: flipping (0,2) inside quadrilateral 0-1-2-3
	// must produce (1,3).
	g := mustFan(t, 6, 0)
	require.Equal(t, triangulation.NewEdge(1, 3), g.Flip(triangulation.NewEdge(0, 2)))
}

func TestNeighbors_InnerTriangleFirst(t *testing.T) {
	g := mustFan(t, 6, 0)
	nb := g.Neighbors(triangulation.NewEdge(0, 3))
	require.Equal(t, [4]triangulation.Edge{
		triangulation.NewEdge(0, 2),
		triangulation.NewEdge(2, 3),
		triangulation.NewEdge(0, 4),
		triangulation.NewEdge(3, 4),
	}, nb)
}

func TestShareTriangle(t *testing.T) {
	g := mustFan(t, 6, 0)
	require.True(t, g.ShareTriangle(
		triangulation.NewEdge(0, 2), triangulation.NewEdge(0, 3)))
	require.False(t, g.ShareTriangle(
		triangulation.NewEdge(0, 2), triangulation.NewEdge(0, 4)))
	require.False(t, g.ShareTriangle(
		triangulation.NewEdge(0, 3), triangulation.NewEdge(0, 3)))
}

func TestSubGraph_DecompositionIndependence(t *testing.T) {
	// Split the fan of the octagon at its diagonal (0,4): each side must
	// be a valid, fully local pentagon triangulation.
	g := mustFan(t, 8, 0)
	left := g.SubGraph(0, 4)
	require.Equal(t, 5, left.Size())
	for _, e := range left.Edges() {
		require.GreaterOrEqual(t, e.U, 0)
		require.Less(t, e.V, 5)
	}
	require.Equal(t, edges([2]int{0, 2}, [2]int{0, 3}), left.Edges())

	right := g.SubGraph(4, 0)
	require.Equal(t, 5, right.Size())
	require.Equal(t, edges([2]int{1, 4}, [2]int{2, 4}), right.Edges())
}

func TestSubGraph_DividerBecomesBoundary(t *testing.T) {
	g := mustFan(t, 6, 0)
	sub := g.SubGraph(0, 3)
	require.Equal(t, 4, sub.Size())
	require.True(t, sub.HasEdge(triangulation.NewEdge(0, 3)), "divider is the new closing boundary")
	require.False(t, sub.Flippable(triangulation.NewEdge(0, 3)))
}

func TestVertexFilterMapper(t *testing.T) {
	filter := triangulation.VertexFilter(4, 1)
	require.True(t, filter(4))
	require.True(t, filter(5))
	require.True(t, filter(0))
	require.True(t, filter(1))
	require.False(t, filter(2))
	require.False(t, filter(3))

	g := mustFan(t, 6, 0)
	mapper := g.VertexMapper(4, 1)
	require.Equal(t, 0, mapper(4))
	require.Equal(t, 1, mapper(5))
	require.Equal(t, 2, mapper(0))
	require.Equal(t, 3, mapper(1))
}

func TestFilterMapEdges(t *testing.T) {
	g := mustFan(t, 6, 0)
	projected := g.FilterMapEdges(3, 0, edges(
		[2]int{0, 3}, // both endpoints retained
		[2]int{0, 4}, // both retained
		[2]int{0, 2}, // endpoint 2 dropped
	))
	require.Equal(t, edges([2]int{0, 3}, [2]int{1, 3}), projected)
}

func TestCloneEqual(t *testing.T) {
	g := mustFan(t, 7, 2)
	c := g.Clone()
	require.True(t, g.Equal(c))
	c.Flip(c.Edges()[0])
	require.False(t, g.Equal(c), "clone must not share state")
	require.False(t, g.Equal(mustFan(t, 7, 3)))
	require.False(t, g.Equal(mustFan(t, 6, 2)))
}

func TestString_Canonical(t *testing.T) {
	g := mustFan(t, 6, 0)
	require.Equal(t, "6:(0,2)(0,3)(0,4)", g.String())
}
