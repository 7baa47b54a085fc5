package maze

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// LayerWalls tags every placed obstacle as impassable terrain.
const LayerWalls = "Walls"

const (
	minObstacleSize = 0.01
	minFootprint    = 0.0001
)

// Obstacle is one placed wall block.
type Obstacle struct {
	Cell     core.Point `yaml:"cell"`
	Position core.Vec2  `yaml:"position"` // World position of the cell
	Size     core.Vec2  `yaml:"size"`     // Desired world footprint
	Scale    core.Vec2  `yaml:"scale"`    // Scale applied to the prefab
	Layer    string     `yaml:"layer"`
}

// Prefab is the obstacle asset being placed.
type Prefab interface {
	// Footprint returns the unscaled world size of the asset. The second
	// result is false when the asset has no measurable bounds.
	Footprint() (core.Vec2, bool)
}

// Container owns the placed obstacles of a run.
type Container interface {
	// Clear tears down every obstacle of the previous run.
	Clear()
	// Place adds one obstacle.
	Place(o Obstacle)
}

// BoxPrefab is a rectangular block with a fixed footprint.
type BoxPrefab struct {
	Width  float64
	Height float64
}

// Footprint implements Prefab.
func (b BoxPrefab) Footprint() (core.Vec2, bool) {
	return core.V(b.Width, b.Height), b.Width > 0 && b.Height > 0
}

// Collection is an in-memory Container.
type Collection struct {
	Obstacles []Obstacle
}

// Clear implements Container. Slices handed out before Clear stay intact.
func (c *Collection) Clear() {
	c.Obstacles = nil
}

// Place implements Container.
func (c *Collection) Place(o Obstacle) {
	c.Obstacles = append(c.Obstacles, o)
}

// ObstacleSize returns the world footprint an obstacle should fill:
// step*fill - padding on each axis, never below 0.01.
func ObstacleSize(m Mapping, fill config.FillConfig) core.Vec2 {
	w := m.StepX*core.Clamp01(fill.X) - math.Max(0, fill.PaddingX)
	h := m.StepY*core.Clamp01(fill.Y) - math.Max(0, fill.PaddingY)
	return core.V(math.Max(minObstacleSize, w), math.Max(minObstacleSize, h))
}

// ObstacleScale returns the scale that stretches footprint to size.
// Degenerate footprints keep the prefab at unit scale.
func ObstacleScale(size, footprint core.Vec2) core.Vec2 {
	if footprint.X <= minFootprint || footprint.Y <= minFootprint {
		return core.V(1, 1)
	}
	return core.V(size.X/footprint.X, size.Y/footprint.Y)
}

// Place hands one obstacle per wall cell to walls, row by row, and returns
// the number placed.
func Place(g *Grid, m Mapping, fill config.FillConfig, footprint core.Vec2, walls Container) int {
	size := ObstacleSize(m, fill)
	scale := ObstacleScale(size, footprint)

	placed := 0
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Columns(); x++ {
			p := core.P(x, y)
			if g.At(p) != Wall {
				continue
			}
			walls.Place(Obstacle{
				Cell:     p,
				Position: m.CellToWorld(p),
				Size:     size,
				Scale:    scale,
				Layer:    LayerWalls,
			})
			placed++
		}
	}
	return placed
}
