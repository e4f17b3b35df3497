package flipdist

import (
	"fmt"

	"github.com/tessile/fliptri/triangulation"
)

// Invariant checks guarding the decomposition boundaries. A violation is a
// logic defect in the caller, not an input-dependent failure, so the checks
// panic. Calls are guarded by debugChecks and unreachable in release
// builds; see debug.go / nodebug.go.

// assertNonTrivial verifies that a pair entering the branch search carries
// neither a shared edge (decomposition should have split there) nor a free
// edge (propagation should have consumed it).
func assertNonTrivial(g, target *triangulation.Graph) {
	for _, e := range g.Edges() {
		if target.HasEdge(e) {
			panic(fmt.Sprintf("flipdist: shared edge %v survived decomposition", e))
		}
	}
	probe := g.Clone()
	for _, e := range probe.Edges() {
		produced := probe.Flip(e)
		probe.Flip(produced)
		if target.HasEdge(produced) {
			panic(fmt.Sprintf("flipdist: free edge %v survived propagation", produced))
		}
	}
}

// assertIndependent verifies that no two source edges share a triangle.
func assertIndependent(sources []triangulation.Edge, g *triangulation.Graph) {
	for _, a := range sources {
		for _, b := range sources {
			if a != b && g.ShareTriangle(a, b) {
				panic(fmt.Sprintf("flipdist: source edges %v and %v share a triangle", a, b))
			}
		}
	}
}
