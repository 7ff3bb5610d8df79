package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridwalk/grid"
)

// BenchmarkGenerate measures obstacle generation on a 100×100 grid, the
// size of the interactive board.
// Complexity: O(R×C).
func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := grid.Generate(100, 100, grid.DefaultDensity, int64(i+1)); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkReachable measures a full flood fill on a 1000×1000 open grid.
// Complexity: O(R×C).
func BenchmarkReachable(b *testing.B) {
	g, err := grid.New(1000, 1000)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Reachable(g.Start())
	}
}
