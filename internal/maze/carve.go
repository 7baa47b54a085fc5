package maze

import (
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// CarveStats summarizes a carving pass.
type CarveStats struct {
	Rooms      int // Odd-odd cells opened
	Connectors int // Walls opened between rooms, always Rooms-1
}

// latticeDirs are the two-step moves between neighbouring rooms.
var latticeDirs = [4]core.Point{
	{X: 2, Y: 0}, {X: -2, Y: 0},
	{X: 0, Y: 2}, {X: 0, Y: -2},
}

// Carve turns an all-wall grid into a perfect maze with an iterative
// backtracker over the odd sublattice, starting at (1,1). Afterwards both
// anchor cells are forced open.
func Carve(g *Grid, rng *rand.Rand) CarveStats {
	start := g.Start()
	g.Set(start, Open)
	stats := CarveStats{Rooms: 1}

	stack := []core.Point{start}
	neighbours := make([]core.Point, 0, len(latticeDirs))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		neighbours = neighbours[:0]
		for _, d := range latticeDirs {
			n := cur.Add(d.X, d.Y)
			if g.Interior(n) && g.At(n) == Wall {
				neighbours = append(neighbours, n)
			}
		}

		if len(neighbours) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := neighbours[rng.Intn(len(neighbours))]
		g.Set(core.P((cur.X+next.X)/2, (cur.Y+next.Y)/2), Open)
		g.Set(next, Open)
		stats.Rooms++
		stats.Connectors++
		stack = append(stack, next)
	}

	g.Set(g.Start(), Open)
	g.Set(g.End(), Open)
	return stats
}
