package maze

import (
	"slices"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/pqueue"
)

// SearchMode selects how FindPath treats wall cells.
type SearchMode int

const (
	// ModeCarve lets the search tunnel through walls at Costs.Carve per step.
	ModeCarve SearchMode = iota
	// ModeAvoid charges Costs.Blocked per wall, so walls are crossed only
	// when nothing else connects the endpoints.
	ModeAvoid
	// ModeStrict never enters a wall.
	ModeStrict
)

// String returns the mode name.
func (m SearchMode) String() string {
	switch m {
	case ModeCarve:
		return "carve"
	case ModeAvoid:
		return "avoid"
	case ModeStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// Costs are the per-step costs of entering a wall cell. Entering an open
// cell always costs 1.
type Costs struct {
	Carve   int
	Blocked int
}

// DefaultCosts returns the stock 5 / 9999 weights.
func DefaultCosts() Costs {
	return Costs{Carve: 5, Blocked: config.DefaultBlocked}
}

// CostsFromConfig builds Costs from the path section of a config.
func CostsFromConfig(p config.PathConfig) Costs {
	return Costs{Carve: p.CarveCost, Blocked: p.BlockedCost}
}

// step returns the cost of entering a cell in state c, and false if the
// cell cannot be entered at all. Costs never drop below 1, which keeps the
// Manhattan heuristic admissible.
func (c Costs) step(cell Cell, mode SearchMode) (int, bool) {
	if cell == Open {
		return 1, true
	}
	switch mode {
	case ModeCarve:
		return max(1, c.Carve), true
	case ModeAvoid:
		return max(1, c.Blocked), true
	default:
		return 0, false
	}
}

var stepDirs = [4]core.Point{
	{X: 1, Y: 0}, {X: -1, Y: 0},
	{X: 0, Y: 1}, {X: 0, Y: -1},
}

// FindPath runs A* from start to target over interior cells with
// 4-directional moves and returns the cheapest path, start first.
// Returns nil when the target cannot be reached, which for ModeCarve only
// happens if an endpoint lies on the border.
func FindPath(g *Grid, start, target core.Point, mode SearchMode, costs Costs) []core.Point {
	if !g.InBounds(start) || !g.InBounds(target) {
		return nil
	}

	open := pqueue.New[core.Point]()
	cameFrom := make(map[core.Point]core.Point)
	gScore := map[core.Point]int{start: 0}

	open.Enqueue(start, start.Manhattan(target))

	for open.Len() > 0 {
		current, _ := open.Dequeue()
		if current == target {
			return reconstructPath(cameFrom, current)
		}

		for _, d := range stepDirs {
			nb := current.Add(d.X, d.Y)
			if !g.Interior(nb) {
				continue
			}
			cost, ok := costs.step(g.At(nb), mode)
			if !ok {
				continue
			}

			tentative := gScore[current] + cost
			if known, seen := gScore[nb]; seen && tentative >= known {
				continue
			}
			cameFrom[nb] = current
			gScore[nb] = tentative
			open.EnqueueOrUpdate(nb, tentative+nb.Manhattan(target))
		}
	}

	return nil
}

// reconstructPath walks predecessors back from current and reverses.
func reconstructPath(cameFrom map[core.Point]core.Point, current core.Point) []core.Point {
	path := []core.Point{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		current = prev
		path = append(path, current)
	}
	slices.Reverse(path)
	return path
}

// EnsurePath searches in ModeCarve and opens every interior cell on the
// resulting path. Returns the path, or nil if none was found, in which case
// the grid is left untouched.
func EnsurePath(g *Grid, start, target core.Point, costs Costs) []core.Point {
	path := FindPath(g, start, target, ModeCarve, costs)
	for _, p := range path {
		if g.Interior(p) {
			g.Set(p, Open)
		}
	}
	return path
}
