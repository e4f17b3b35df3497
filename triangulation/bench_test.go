package triangulation_test

import (
	"testing"

	"github.com/tessile/fliptri/triangulation"
)

// benchmarkFlipSweep flips and restores every diagonal of the n-gon fan.
func benchmarkFlipSweep(b *testing.B, n int) {
	g, err := triangulation.Fan(n, 0)
	if err != nil {
		b.Fatalf("Fan failed: %v", err)
	}
	diagonals := g.Edges()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, e := range diagonals {
			produced := g.Flip(e)
			g.Flip(produced)
		}
	}
}

func BenchmarkFlipSweep_Small(b *testing.B)  { benchmarkFlipSweep(b, 10) }
func BenchmarkFlipSweep_Medium(b *testing.B) { benchmarkFlipSweep(b, 100) }

func BenchmarkSubGraph(b *testing.B) {
	g, err := triangulation.Fan(64, 0)
	if err != nil {
		b.Fatalf("Fan failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.SubGraph(0, 32)
		_ = g.SubGraph(32, 0)
	}
}
