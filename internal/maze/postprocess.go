package maze

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// GuardBand keeps the corners next to both anchors free of extra walls.
// A cell is guarded when x < Start && y < Start, or when
// x > columns-End && y > rows-End.
type GuardBand struct {
	Start int
	End   int
}

// DefaultGuardBand returns the stock 3/4 cell bands.
func DefaultGuardBand() GuardBand {
	return GuardBand{Start: 3, End: 4}
}

// Protects reports whether p lies inside either corner band of g.
func (b GuardBand) Protects(g *Grid, p core.Point) bool {
	if p.X < b.Start && p.Y < b.Start {
		return true
	}
	return p.X > g.Columns()-b.End && p.Y > g.Rows()-b.End
}

// AddExtraWalls turns random open interior cells into walls.
// It aims for round(columns*rows*ratio) walls with a budget of ten draws per
// wall, and returns how many were actually placed. Draws that land in a
// guard band are spent without placing anything.
func AddExtraWalls(g *Grid, rng *rand.Rand, ratio float64, guard GuardBand) int {
	target := int(math.RoundToEven(float64(g.Columns()*g.Rows()) * ratio))
	if target <= 0 {
		return 0
	}

	placed, tries := 0, 0
	for placed < target && tries < target*10 {
		tries++
		p := core.P(rng.Intn(g.Columns()-2)+1, rng.Intn(g.Rows()-2)+1)
		if g.At(p) != Open || guard.Protects(g, p) {
			continue
		}
		g.Set(p, Wall)
		placed++
	}
	return placed
}

// PassageCandidates returns, in row-major order, every interior wall that
// separates two open cells on the lattice: even x / odd y with open left and
// right neighbours, or odd x / even y with open cells above and below.
// Opening any of them creates a loop rather than a pocket.
func PassageCandidates(g *Grid) []core.Point {
	var out []core.Point
	for y := 1; y < g.Rows()-1; y++ {
		for x := 1; x < g.Columns()-1; x++ {
			p := core.P(x, y)
			if g.At(p) != Wall {
				continue
			}
			horizontal := x%2 == 0 && y%2 == 1 && g.IsOpen(p.Add(-1, 0)) && g.IsOpen(p.Add(1, 0))
			vertical := x%2 == 1 && y%2 == 0 && g.IsOpen(p.Add(0, -1)) && g.IsOpen(p.Add(0, 1))
			if horizontal || vertical {
				out = append(out, p)
			}
		}
	}
	return out
}

// AddExtraPassages opens round(candidates*ratio) distinct passage
// candidates chosen uniformly without replacement, and returns the count.
func AddExtraPassages(g *Grid, rng *rand.Rand, ratio float64) int {
	candidates := PassageCandidates(g)
	if len(candidates) == 0 {
		return 0
	}

	toOpen := int(math.RoundToEven(float64(len(candidates)) * core.Clamp01(ratio)))
	for i := 0; i < toOpen; i++ {
		j := rng.Intn(len(candidates))
		g.Set(candidates[j], Open)
		candidates[j] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}
	return toOpen
}
