package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessile/fliptri/triangulation"
)

func TestParseArg_FanShorthand(t *testing.T) {
	g, err := parseArg("fan:6:3")
	require.NoError(t, err)
	want, err := triangulation.Fan(6, 3)
	require.NoError(t, err)
	require.True(t, g.Equal(want))

	// Apex defaults to 0.
	g, err = parseArg("fan:5")
	require.NoError(t, err)
	want, err = triangulation.Fan(5, 0)
	require.NoError(t, err)
	require.True(t, g.Equal(want))
}

func TestParseArg_Parentheses(t *testing.T) {
	g, err := parseArg("(()())")
	require.NoError(t, err)
	require.Equal(t, 5, g.Size())
	require.True(t, g.HasEdge(triangulation.NewEdge(0, 2)))
	require.True(t, g.HasEdge(triangulation.NewEdge(2, 4)))
}

func TestParseArg_Errors(t *testing.T) {
	for _, arg := range []string{"fan:x", "fan:6:y", "fan:2", "((()", "", "(()"} {
		_, err := parseArg(arg)
		require.Error(t, err, "argument %q", arg)
	}
}

func TestParsePair(t *testing.T) {
	start, target, err := parsePair("fan:6:0", "fan:6:1")
	require.NoError(t, err)
	require.Equal(t, 6, start.Size())
	require.Equal(t, 6, target.Size())

	_, _, err = parsePair("fan:6:0", "notatriangulation")
	require.Error(t, err)
}
