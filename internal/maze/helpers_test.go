package maze

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// parseGrid builds a grid from rows of '#' (wall) and '.' (open).
// lines[0] is row y=0.
func parseGrid(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g := &Grid{columns: len(lines[0]), rows: len(lines), cells: make([][]Cell, len(lines))}
	for y, line := range lines {
		if len(line) != g.columns {
			t.Fatalf("row %d has width %d, expected %d", y, len(line), g.columns)
		}
		g.cells[y] = make([]Cell, g.columns)
		for x, ch := range line {
			if ch == '.' {
				g.cells[y][x] = Open
			}
		}
	}
	return g
}

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// borderIsWall reports whether the outer ring is entirely Wall.
func borderIsWall(g *Grid) bool {
	for x := 0; x < g.Columns(); x++ {
		if g.IsOpen(core.P(x, 0)) || g.IsOpen(core.P(x, g.Rows()-1)) {
			return false
		}
	}
	for y := 0; y < g.Rows(); y++ {
		if g.IsOpen(core.P(0, y)) || g.IsOpen(core.P(g.Columns()-1, y)) {
			return false
		}
	}
	return true
}

// assertContiguous fails unless path is a 4-connected walk from start to target.
func assertContiguous(t *testing.T, path []core.Point, start, target core.Point) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("path is empty")
	}
	if path[0] != start || path[len(path)-1] != target {
		t.Fatalf("path runs %v -> %v, expected %v -> %v", path[0], path[len(path)-1], start, target)
	}
	for i := 1; i < len(path); i++ {
		if path[i].Manhattan(path[i-1]) != 1 {
			t.Fatalf("path jumps from %v to %v", path[i-1], path[i])
		}
	}
}
