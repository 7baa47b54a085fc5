package maze

import (
	"github.com/vovakirdan/tui-maze/internal/core"
)

// Role identifies a point of interest.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
	RoleGoal
)

// Roles returns every role in drawing order; later roles win a shared cell.
func Roles() []Role {
	return []Role{RolePlayer, RoleEnemy, RoleGoal}
}

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	case RoleGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// POI is a world position whose neighbourhood must stay walkable.
type POI struct {
	Role       Role
	Position   core.Vec2
	SafeRadius int
}

// Protection is the outcome of Protect.
type Protection struct {
	Cells    map[Role]core.Point // Mapped cells; unmapped points are absent
	Unmapped []Role
	Path     []core.Point // Forced player->goal route, nil if not attempted or not found
	Forced   bool         // A player->goal route was attempted
}

// OpenAround opens the square of Chebyshev radius r around c, clipped to the
// interior of the grid.
func OpenAround(g *Grid, c core.Point, radius int) {
	r := max(0, radius)
	for y := c.Y - r; y <= c.Y+r; y++ {
		for x := c.X - r; x <= c.X+r; x++ {
			p := core.P(x, y)
			if g.Interior(p) {
				g.Set(p, Open)
			}
		}
	}
}

// Protect clears the safe zone of every mappable point and, when both the
// player and the goal map onto the grid, forces a route between them. The
// route may cut through a safe zone, so both endpoint zones are reopened
// afterwards with a radius of at least 1.
func Protect(g *Grid, m Mapping, pois []POI, costs Costs) Protection {
	res := Protection{Cells: make(map[Role]core.Point)}
	radius := make(map[Role]int)

	for _, poi := range pois {
		cell, ok := m.WorldToCell(poi.Position)
		if !ok {
			res.Unmapped = append(res.Unmapped, poi.Role)
			continue
		}
		res.Cells[poi.Role] = cell
		radius[poi.Role] = poi.SafeRadius
		OpenAround(g, cell, poi.SafeRadius)
	}

	start, hasStart := res.Cells[RolePlayer]
	goal, hasGoal := res.Cells[RoleGoal]
	if !hasStart || !hasGoal {
		return res
	}

	res.Forced = true
	res.Path = EnsurePath(g, start, goal, costs)
	OpenAround(g, start, max(1, radius[RolePlayer]))
	OpenAround(g, goal, max(1, radius[RoleGoal]))
	return res
}
