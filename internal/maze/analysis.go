package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Stats describes the walkable space of a finished grid.
type Stats struct {
	Open      int // Open cells
	Reachable int // Open cells reachable from the anchor
	Isolated  int // Open cells not reachable from the anchor
	DeadEnds  int // Open cells with exactly one open neighbour
}

// Reachable returns every open cell 4-connected to from. The result is
// empty if from itself is not open.
func Reachable(g *Grid, from core.Point) mapset.Set[core.Point] {
	visited := mapset.New[core.Point]()
	if !g.IsOpen(from) {
		return visited
	}

	queue := []core.Point{from}
	visited.Put(from)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range stepDirs {
			n := current.Add(d.X, d.Y)
			if g.IsOpen(n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Connected reports whether a and b are joined by open cells.
func Connected(g *Grid, a, b core.Point) bool {
	reach := Reachable(g, a)
	return reach.Has(b)
}

// Analyze computes walkable-space statistics relative to anchor.
func Analyze(g *Grid, anchor core.Point) Stats {
	reach := Reachable(g, anchor)
	s := Stats{Reachable: reach.Size()}

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Columns(); x++ {
			p := core.P(x, y)
			if !g.IsOpen(p) {
				continue
			}
			s.Open++
			if openNeighbours(g, p) == 1 {
				s.DeadEnds++
			}
		}
	}
	s.Isolated = s.Open - s.Reachable
	return s
}

func openNeighbours(g *Grid, p core.Point) int {
	n := 0
	for _, d := range stepDirs {
		if g.IsOpen(p.Add(d.X, d.Y)) {
			n++
		}
	}
	return n
}
