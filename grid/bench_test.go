package grid_test

import (
	"strings"
	"testing"

	"github.com/solventlabs/solvent/grid"
)

func benchGrid(b *testing.B, size int) *grid.Grid {
	b.Helper()
	row := strings.Repeat("a", size)
	g, err := grid.Parse(strings.TrimSuffix(strings.Repeat(row+"\n", size), "\n"))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkShortestPath(b *testing.B) {
	g := benchGrid(b, 100)
	goal := grid.Point{X: 99, Y: 99}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.ShortestPath(g, grid.Point{}, grid.WithGoal(goal)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCountVisibleFromEdge(b *testing.B) {
	g := benchGrid(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.CountVisibleFromEdge()
	}
}
