package flipdist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessile/fliptri/triangulation"
)

func TestEdgeMultiset_Counting(t *testing.T) {
	m := newEdgeMultiset()
	e := triangulation.NewEdge(0, 2)
	require.Equal(t, 0, m.Count(e))

	m.Add(e)
	m.Add(e)
	require.Equal(t, 2, m.Count(e))

	m.RemoveOne(e)
	require.Equal(t, 1, m.Count(e))
	m.RemoveOne(e)
	require.Equal(t, 0, m.Count(e))

	// Removing an absent edge is a no-op, not an underflow.
	m.RemoveOne(e)
	require.Equal(t, 0, m.Count(e))
}

func TestEdgeMultiset_AcquireRelease(t *testing.T) {
	g, err := triangulation.Fan(6, 0)
	require.NoError(t, err)

	m := newEdgeMultiset()
	e := triangulation.NewEdge(0, 3)
	m.acquire(g, e)
	require.Equal(t, 1, m.Count(e))
	for _, nb := range g.Neighbors(e) {
		require.Equal(t, 1, m.Count(nb), "neighbor %v must be forbidden", nb)
	}

	// Overlapping acquires stack; a single release leaves the overlap held.
	other := triangulation.NewEdge(0, 2)
	m.acquire(g, other)
	require.Equal(t, 2, m.Count(triangulation.NewEdge(0, 3)))

	m.release(g, e)
	require.Equal(t, 1, m.Count(triangulation.NewEdge(0, 3)))

	m.release(g, other)
	require.Equal(t, 0, m.Count(e))
	require.Equal(t, 0, m.Count(other))
	for _, nb := range g.Neighbors(e) {
		require.Equal(t, 0, m.Count(nb))
	}
}
