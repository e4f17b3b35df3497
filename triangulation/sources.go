package triangulation

// Sources enumerates every non-empty independent candidate set of first
// flips: subsets of the diagonals in which no two members share a
// triangle. The search layer tries each set as the privileged opening of
// a flip sequence; its budget prune keeps the enumeration effective even
// though the set family is exponential in the worst case.
//
// The enumeration is deterministic: diagonals are considered in ascending
// edge order, and for each the skip branch precedes the take branch.
func (g *Graph) Sources() [][]Edge {
	diagonals := g.Edges()
	var out [][]Edge
	chosen := make([]Edge, 0, len(diagonals))
	var walk func(i int)
	walk = func(i int) {
		if i == len(diagonals) {
			if len(chosen) > 0 {
				out = append(out, append([]Edge(nil), chosen...))
			}

			return
		}
		walk(i + 1)
		e := diagonals[i]
		for _, c := range chosen {
			if g.ShareTriangle(c, e) {
				return
			}
		}
		chosen = append(chosen, e)
		walk(i + 1)
		chosen = chosen[:len(chosen)-1]
	}
	walk(0)

	return out
}
