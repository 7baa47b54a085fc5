package maze_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// testConfig returns a fixed-seed config whose world area maps one unit per cell.
func testConfig(columns, rows int) config.MazeConfig {
	cfg := config.DefaultMazeConfig()
	cfg.Grid = config.GridConfig{Columns: columns, Rows: rows}
	cfg.Seed = config.SeedConfig{Value: 42}
	cfg.Area.BottomLeft = core.V(0, 0)
	cfg.Area.TopRight = core.V(float64(columns-1), float64(rows-1))
	cfg.Points.Player = &config.PointConfig{X: 1, Y: 1, SafeRadius: 1}
	cfg.Points.Enemy = &config.PointConfig{X: float64(columns / 2), Y: float64(rows / 2), SafeRadius: 1}
	cfg.Points.Goal = &config.PointConfig{X: float64(columns - 2), Y: float64(rows - 2), SafeRadius: 1}
	return cfg
}

type countingPrefab struct {
	calls     int
	footprint core.Vec2
}

func (p *countingPrefab) Footprint() (core.Vec2, bool) {
	p.calls++
	return p.footprint, true
}

func TestGenerateProperties(t *testing.T) {
	sizes := []core.Point{core.P(5, 5), core.P(21, 13), core.P(31, 21), core.P(15, 41)}
	presets := config.Presets()

	for _, size := range sizes {
		for _, preset := range presets {
			name := fmt.Sprintf("%dx%d/%s", size.X, size.Y, preset)
			t.Run(name, func(t *testing.T) {
				cfg := testConfig(size.X, size.Y)
				config.ApplyMazePreset(&cfg, preset)
				gen := maze.NewGenerator(cfg, nil, nil, nil)

				for seed := int64(0); seed < 10; seed++ {
					res := gen.GenerateSeed(seed)
					g := res.Snapshot().Grid()

					if !borderIntact(g) {
						t.Fatalf("seed %d: border has an open cell\n%s", seed, g)
					}
					if !g.IsOpen(g.Start()) || !g.IsOpen(g.End()) {
						t.Fatalf("seed %d: anchors not open\n%s", seed, g)
					}

					player, goal := res.Protection.Cells[maze.RolePlayer], res.Protection.Cells[maze.RoleGoal]
					if !maze.Connected(g, player, goal) {
						t.Fatalf("seed %d: player %v cannot reach goal %v\n%s", seed, player, goal, g)
					}
					for role, cell := range res.Protection.Cells {
						assertSafeZone(t, g, cell, 1, role)
					}
				}
			})
		}
	}
}

func TestGenerateMaxSafeRadius(t *testing.T) {
	for _, size := range []core.Point{core.P(21, 13), core.P(31, 21)} {
		t.Run(fmt.Sprintf("%dx%d", size.X, size.Y), func(t *testing.T) {
			cfg := testConfig(size.X, size.Y)
			cfg.Extras.Walls = config.MaxExtraWalls
			cfg.Points.Player.SafeRadius = config.MaxSafeRadius
			cfg.Points.Enemy.SafeRadius = config.MaxSafeRadius
			cfg.Points.Goal.SafeRadius = config.MaxSafeRadius
			gen := maze.NewGenerator(cfg, nil, nil, nil)

			for seed := int64(0); seed < 10; seed++ {
				res := gen.GenerateSeed(seed)
				g := res.Snapshot().Grid()

				if len(res.Protection.Cells) != 3 {
					t.Fatalf("seed %d: mapped %d points, expected 3", seed, len(res.Protection.Cells))
				}
				for role, cell := range res.Protection.Cells {
					assertSafeZone(t, g, cell, config.MaxSafeRadius, role)
				}
				if !borderIntact(g) {
					t.Fatalf("seed %d: border has an open cell\n%s", seed, g)
				}
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig(31, 21)
	cfg.Extras.Walls = 0.2
	cfg.Extras.Passages = 0.2

	var a, b maze.Collection
	genA := maze.NewGenerator(cfg, maze.BoxPrefab{Width: 1, Height: 1}, &a, nil)
	genB := maze.NewGenerator(cfg, maze.BoxPrefab{Width: 1, Height: 1}, &b, nil)

	resA := genA.Generate()
	resB := genB.Generate()

	if resA.Seed != 42 || resB.Seed != 42 {
		t.Errorf("seeds = %d/%d, expected 42", resA.Seed, resB.Seed)
	}
	if resA.Snapshot().String() != resB.Snapshot().String() {
		t.Error("same seed produced different grids")
	}
	if !slices.Equal(a.Obstacles, b.Obstacles) {
		t.Error("same seed produced different placements")
	}
	if !slices.Equal(resA.Protection.Path, resB.Protection.Path) {
		t.Error("same seed produced different forced routes")
	}
}

func TestGenerateRandomSeedReproducible(t *testing.T) {
	cfg := testConfig(21, 13)
	cfg.Seed.Random = true
	gen := maze.NewGenerator(cfg, nil, nil, nil)

	first := gen.Generate()
	again := gen.GenerateSeed(first.Seed)

	if first.Snapshot().String() != again.Snapshot().String() {
		t.Errorf("replaying seed %d produced a different grid", first.Seed)
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	gen := maze.NewGenerator(testConfig(31, 21), nil, nil, nil)
	if gen.GenerateSeed(1).Snapshot().String() == gen.GenerateSeed(2).Snapshot().String() {
		t.Error("seeds 1 and 2 produced identical mazes")
	}
}

func TestGeneratePerfectMazeWithoutPoints(t *testing.T) {
	cfg := testConfig(21, 13)
	cfg.Extras.Walls = 0
	cfg.Extras.Passages = 0
	cfg.Points = config.PointsConfig{}

	var walls maze.Collection
	gen := maze.NewGenerator(cfg, maze.BoxPrefab{Width: 1, Height: 1}, &walls, nil)
	res := gen.Generate()

	g := res.Snapshot().Grid()
	if got := g.Count(maze.Open); got != 119 {
		t.Errorf("open cells = %d, expected 119", got)
	}
	if res.Stats.Isolated != 0 {
		t.Errorf("isolated = %d, expected 0", res.Stats.Isolated)
	}
	if res.Placed != 21*13-119 || len(walls.Obstacles) != res.Placed {
		t.Errorf("placed = %d (container %d), expected %d", res.Placed, len(walls.Obstacles), 21*13-119)
	}
	if res.Protection.Forced || res.PathLength() != 0 {
		t.Error("no route should be forced without points")
	}
}

func TestGenerateForcesPlayerGoalRoute(t *testing.T) {
	cfg := testConfig(21, 13)
	cfg.Extras.Walls = config.MaxExtraWalls
	cfg.Extras.Passages = 0
	cfg.Points.Enemy = nil
	gen := maze.NewGenerator(cfg, nil, nil, nil)

	for seed := int64(0); seed < 25; seed++ {
		res := gen.GenerateSeed(seed)
		g := res.Snapshot().Grid()

		if !res.Protection.Forced || res.PathLength() == 0 {
			t.Fatalf("seed %d: no forced route", seed)
		}
		path := maze.FindPath(g, core.P(1, 1), core.P(19, 11), maze.ModeStrict, maze.DefaultCosts())
		if path == nil {
			t.Fatalf("seed %d: no open route from (1,1) to (19,11)\n%s", seed, g)
		}
	}
}

func TestGenerateSkipsGoalOutsideGrid(t *testing.T) {
	cfg := testConfig(21, 13)
	cfg.Points.Goal = &config.PointConfig{X: 100, Y: 100, SafeRadius: 1}

	res := maze.NewGenerator(cfg, nil, nil, nil).GenerateSeed(7)

	if !slices.Contains(res.Protection.Unmapped, maze.RoleGoal) {
		t.Errorf("unmapped = %v, expected goal", res.Protection.Unmapped)
	}
	if res.Protection.Forced {
		t.Error("route forced towards an unmapped goal")
	}

	noGoal := testConfig(21, 13)
	noGoal.Points.Goal = nil
	baseline := maze.NewGenerator(noGoal, nil, nil, nil).GenerateSeed(7)
	if res.Snapshot().String() != baseline.Snapshot().String() {
		t.Error("unmapped goal changed the grid")
	}
}

func TestGenerateClearsContainerBetweenRuns(t *testing.T) {
	var walls maze.Collection
	gen := maze.NewGenerator(testConfig(21, 13), maze.BoxPrefab{Width: 1, Height: 1}, &walls, nil)

	for seed := int64(0); seed < 3; seed++ {
		res := gen.GenerateSeed(seed)
		if len(walls.Obstacles) != res.Placed {
			t.Fatalf("run %d: container holds %d, placed %d", seed, len(walls.Obstacles), res.Placed)
		}
		if want := res.Snapshot().Grid().Count(maze.Wall); res.Placed != want {
			t.Fatalf("run %d: placed %d, expected one per wall (%d)", seed, res.Placed, want)
		}
	}
}

func TestGenerateWithoutPrefabSkipsPlacement(t *testing.T) {
	var walls maze.Collection
	walls.Place(maze.Obstacle{Cell: core.P(3, 3)})

	res := maze.NewGenerator(testConfig(21, 13), nil, &walls, nil).GenerateSeed(3)

	if res.Placed != 0 {
		t.Errorf("placed = %d, expected 0", res.Placed)
	}
	if len(walls.Obstacles) != 0 {
		t.Error("stale obstacles left in the container")
	}

	res = maze.NewGenerator(testConfig(21, 13), maze.BoxPrefab{Width: 1, Height: 1}, nil, nil).GenerateSeed(3)
	if res.Placed != 0 {
		t.Errorf("placed = %d without container, expected 0", res.Placed)
	}
}

func TestGenerateMeasuresPrefabOnce(t *testing.T) {
	prefab := &countingPrefab{footprint: core.V(2, 2)}
	var walls maze.Collection
	gen := maze.NewGenerator(testConfig(21, 13), prefab, &walls, nil)

	for seed := int64(0); seed < 3; seed++ {
		gen.GenerateSeed(seed)
	}

	if prefab.calls != 1 {
		t.Errorf("Footprint() called %d times, expected 1", prefab.calls)
	}
	o := walls.Obstacles[0]
	if o.Scale.X < 0.4249 || o.Scale.X > 0.4251 {
		t.Errorf("scale = %v, expected 0.425", o.Scale)
	}
}

func TestGenerateNormalizesConfig(t *testing.T) {
	cfg := testConfig(20, 4)
	gen := maze.NewGenerator(cfg, nil, nil, nil)

	if got := gen.Config().Grid; got.Columns != 21 || got.Rows != 5 {
		t.Errorf("normalized grid = %dx%d, expected 21x5", got.Columns, got.Rows)
	}
	res := gen.GenerateSeed(1)
	if res.Columns != 21 || res.Rows != 5 {
		t.Errorf("result grid = %dx%d, expected 21x5", res.Columns, res.Rows)
	}
}

func TestGeneratorConfigIsCopy(t *testing.T) {
	gen := maze.NewGenerator(testConfig(21, 13), nil, nil, nil)
	cfg := gen.Config()
	cfg.Points.Player.X = 99

	if gen.Config().Points.Player.X != 1 {
		t.Error("Config() exposes the generator's own points")
	}
}

func borderIntact(g *maze.Grid) bool {
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

func assertSafeZone(t *testing.T, g *maze.Grid, c core.Point, r int, role maze.Role) {
	t.Helper()
	for y := c.Y - r; y <= c.Y+r; y++ {
		for x := c.X - r; x <= c.X+r; x++ {
			p := core.P(x, y)
			if g.Interior(p) && !g.IsOpen(p) {
				t.Fatalf("%s zone cell %v is a wall\n%s", role, p, g)
			}
		}
	}
}
