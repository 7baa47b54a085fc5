package config

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Limits applied by Normalize.
const (
	MinDimension   = 5
	MaxExtraWalls  = 0.5
	MaxPassages    = 0.6
	MaxSafeRadius  = 4
	MinCellStep    = 0.01
	MinCarveCost   = 1
	MinStartGuard  = 2 // Smallest band that still covers (1,1)
	MinEndGuard    = 3 // Smallest band that still covers (columns-2, rows-2)
	DefaultBlocked = 9999
)

// OddDimension raises n to the next odd value with a floor of MinDimension.
func OddDimension(n int) int {
	return max(MinDimension, n|1)
}

// Normalize clamps every field into its valid range and returns a
// description of each correction made. Corrections are not errors.
func (c *MazeConfig) Normalize() []string {
	var notes []string
	fixInt := func(name string, field *int, v int) {
		if *field != v {
			notes = append(notes, fmt.Sprintf("%s: %d -> %d", name, *field, v))
			*field = v
		}
	}
	fixFloat := func(name string, field *float64, v float64) {
		if *field != v {
			notes = append(notes, fmt.Sprintf("%s: %g -> %g", name, *field, v))
			*field = v
		}
	}

	fixInt("grid.columns", &c.Grid.Columns, OddDimension(c.Grid.Columns))
	fixInt("grid.rows", &c.Grid.Rows, OddDimension(c.Grid.Rows))

	fixFloat("extras.walls", &c.Extras.Walls, core.ClampF(c.Extras.Walls, 0, MaxExtraWalls))
	fixFloat("extras.passages", &c.Extras.Passages, core.ClampF(c.Extras.Passages, 0, MaxPassages))
	fixInt("extras.start_guard", &c.Extras.StartGuard, max(MinStartGuard, c.Extras.StartGuard))
	fixInt("extras.end_guard", &c.Extras.EndGuard, max(MinEndGuard, c.Extras.EndGuard))

	fixFloat("fill.x", &c.Fill.X, core.Clamp01(c.Fill.X))
	fixFloat("fill.y", &c.Fill.Y, core.Clamp01(c.Fill.Y))
	fixFloat("fill.padding_x", &c.Fill.PaddingX, max(0, c.Fill.PaddingX))
	fixFloat("fill.padding_y", &c.Fill.PaddingY, max(0, c.Fill.PaddingY))

	if c.Area.OverrideStep {
		fixFloat("area.step_x", &c.Area.StepX, max(MinCellStep, c.Area.StepX))
		fixFloat("area.step_y", &c.Area.StepY, max(MinCellStep, c.Area.StepY))
	}

	points := []struct {
		name  string
		point *PointConfig
	}{
		{"points.player", c.Points.Player},
		{"points.enemy", c.Points.Enemy},
		{"points.goal", c.Points.Goal},
	}
	for _, p := range points {
		if p.point != nil {
			fixInt(p.name+".safe_radius", &p.point.SafeRadius, core.Clamp(p.point.SafeRadius, 0, MaxSafeRadius))
		}
	}

	fixInt("path.carve_cost", &c.Path.CarveCost, max(MinCarveCost, c.Path.CarveCost))
	if c.Path.BlockedCost < c.Path.CarveCost {
		fixInt("path.blocked_cost", &c.Path.BlockedCost, DefaultBlocked)
	}

	fixFloat("prefab.width", &c.Prefab.Width, max(0, c.Prefab.Width))
	fixFloat("prefab.height", &c.Prefab.Height, max(0, c.Prefab.Height))

	return notes
}

// Clone returns a deep copy, including the optional points.
func (c MazeConfig) Clone() MazeConfig {
	clonePoint := func(p *PointConfig) *PointConfig {
		if p == nil {
			return nil
		}
		cp := *p
		return &cp
	}
	c.Points = PointsConfig{
		Player: clonePoint(c.Points.Player),
		Enemy:  clonePoint(c.Points.Enemy),
		Goal:   clonePoint(c.Points.Goal),
	}
	return c
}
