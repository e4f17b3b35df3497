package triangulation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessile/fliptri/triangulation"
)

func TestSources_Triangle(t *testing.T) {
	require.Empty(t, mustFan(t, 3, 0).Sources(), "no diagonals, no candidate sets")
}

func TestSources_Square(t *testing.T) {
	g := mustFan(t, 4, 0)
	require.Equal(t, [][]triangulation.Edge{edges([2]int{0, 2})}, g.Sources())
}

func TestSources_HexagonFan(t *testing.T) {
	// Diagonals (0,2),(0,3),(0,4): consecutive fan diagonals share a
	// triangle, so the only non-singleton independent set is {(0,2),(0,4)}.
	sets := mustFan(t, 6, 0).Sources()
	require.Len(t, sets, 4)
	want := map[string]bool{
		"[(0,4)]":       true,
		"[(0,3)]":       true,
		"[(0,2)]":       true,
		"[(0,2) (0,4)]": true,
	}
	for _, set := range sets {
		key := keyOf(set)
		require.True(t, want[key], "unexpected candidate set %s", key)
		delete(want, key)
	}
	require.Empty(t, want, "missing candidate sets")
}

func TestSources_AllIndependent(t *testing.T) {
	g := mustFan(t, 8, 3)
	for _, set := range g.Sources() {
		require.NotEmpty(t, set)
		for i, a := range set {
			for _, b := range set[i+1:] {
				require.False(t, g.ShareTriangle(a, b),
					"set %s is not independent", keyOf(set))
			}
		}
	}
}

func keyOf(set []triangulation.Edge) string {
	key := "["
	for i, e := range set {
		if i > 0 {
			key += " "
		}
		key += e.String()
	}

	return key + "]"
}
