package maze

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// Result describes one generation run. The grid itself is only reachable
// through the informational Snapshot.
type Result struct {
	Seed    int64
	Columns int
	Rows    int
	Mapping Mapping

	Carve            CarveStats
	ExtraWalls       int // Extra walls actually placed
	ExtraWallsTarget int // Extra walls requested
	Passages         int // Loop passages opened

	Protection Protection
	Stats      Stats
	Placed     int // Obstacles handed to the container

	snapshot Snapshot
}

// Snapshot returns the informational copy of the final grid.
func (r Result) Snapshot() Snapshot {
	return r.snapshot
}

// PathLength returns the number of cells on the forced route.
func (r Result) PathLength() int {
	return len(r.Protection.Path)
}

// Generator runs the maze pipeline against injected collaborators.
// It is not safe for concurrent use.
type Generator struct {
	cfg    config.MazeConfig
	prefab Prefab
	walls  Container
	logger *log.Logger

	footprint       core.Vec2
	footprintCached bool
}

// NewGenerator creates a generator. The configuration is copied and
// normalized; prefab and walls may be nil, in which case runs skip the
// placement pass. A nil logger discards output.
func NewGenerator(cfg config.MazeConfig, prefab Prefab, walls Container, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg = cfg.Clone()
	for _, note := range cfg.Normalize() {
		logger.Debug("config corrected", "field", note)
	}

	return &Generator{
		cfg:    cfg,
		prefab: prefab,
		walls:  walls,
		logger: logger,
	}
}

// Config returns the normalized configuration.
func (g *Generator) Config() config.MazeConfig {
	return g.cfg.Clone()
}

// Generate runs the pipeline with the configured seed, or with a freshly
// drawn one when seed.random is set. Result.Seed reproduces the run.
func (g *Generator) Generate() Result {
	seed := g.cfg.Seed.Value
	if g.cfg.Seed.Random {
		seed = NewSeed()
	}
	return g.GenerateSeed(seed)
}

// NewSeed draws a seed in [0, MaxInt32).
func NewSeed() int64 {
	return rand.New(rand.NewSource(time.Now().UnixNano())).Int63n(math.MaxInt32)
}

// GenerateSeed runs the full pipeline with an explicit seed. The previous
// run's obstacles are cleared from the container first.
func (g *Generator) GenerateSeed(seed int64) Result {
	began := time.Now()
	rng := rand.New(rand.NewSource(seed))
	cfg := g.cfg

	if g.walls != nil {
		g.walls.Clear()
	}

	grid := NewGrid(cfg.Grid.Columns, cfg.Grid.Rows)
	mapping := NewMapping(cfg.Area, grid.Columns(), grid.Rows())
	res := Result{
		Seed:    seed,
		Columns: grid.Columns(),
		Rows:    grid.Rows(),
		Mapping: mapping,
	}

	res.Carve = Carve(grid, rng)
	g.logger.Debug("carved", "seed", seed, "rooms", res.Carve.Rooms, "connectors", res.Carve.Connectors)

	res.ExtraWallsTarget = int(math.RoundToEven(float64(grid.Columns()*grid.Rows()) * cfg.Extras.Walls))
	guard := GuardBand{Start: cfg.Extras.StartGuard, End: cfg.Extras.EndGuard}
	res.ExtraWalls = AddExtraWalls(grid, rng, cfg.Extras.Walls, guard)
	res.Passages = AddExtraPassages(grid, rng, cfg.Extras.Passages)
	g.logger.Debug("post-processed",
		"walls", res.ExtraWalls, "wallsTarget", res.ExtraWallsTarget, "passages", res.Passages)

	res.Protection = Protect(grid, mapping, g.points(), CostsFromConfig(cfg.Path))
	for _, role := range res.Protection.Unmapped {
		g.logger.Debug("point outside grid, skipped", "role", role)
	}
	if res.Protection.Forced && res.Protection.Path == nil {
		g.logger.Warn("no route between player and goal",
			"player", res.Protection.Cells[RolePlayer], "goal", res.Protection.Cells[RoleGoal])
	}

	anchor := grid.Start()
	if c, ok := res.Protection.Cells[RolePlayer]; ok && grid.IsOpen(c) {
		anchor = c
	}
	res.Stats = Analyze(grid, anchor)

	res.Placed = g.place(grid, mapping)
	res.snapshot = newSnapshot(grid, res.Protection)

	g.logger.Debug("generated",
		"seed", seed,
		"size", core.P(res.Columns, res.Rows),
		"placed", res.Placed,
		"path", res.PathLength(),
		"isolated", res.Stats.Isolated,
		"took", time.Since(began),
	)
	return res
}

// points converts the configured points of interest.
func (g *Generator) points() []POI {
	var pois []POI
	add := func(role Role, p *config.PointConfig) {
		if p != nil {
			pois = append(pois, POI{Role: role, Position: p.Position(), SafeRadius: p.SafeRadius})
		}
	}
	add(RolePlayer, g.cfg.Points.Player)
	add(RoleEnemy, g.cfg.Points.Enemy)
	add(RoleGoal, g.cfg.Points.Goal)
	return pois
}

// place runs the placement pass, measuring the prefab once per generator.
func (g *Generator) place(grid *Grid, m Mapping) int {
	if g.prefab == nil || g.walls == nil {
		g.logger.Debug("no prefab or container, skipping placement")
		return 0
	}

	if !g.footprintCached {
		fp, ok := g.prefab.Footprint()
		if !ok {
			fp = core.V(1, 1)
		}
		g.footprint = fp
		g.footprintCached = true
	}

	return Place(grid, m, g.cfg.Fill, g.footprint, g.walls)
}
