// Package config provides YAML-based maze configuration loading,
// normalization and difficulty presets.
package config

import "github.com/vovakirdan/tui-maze/internal/core"

// MazeConfig contains every input of a maze generation run.
type MazeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Seed   SeedConfig   `yaml:"seed"`
	Extras ExtrasConfig `yaml:"extras"`
	Fill   FillConfig   `yaml:"fill"`
	Area   AreaConfig   `yaml:"area"`
	Points PointsConfig `yaml:"points"`
	Path   PathConfig   `yaml:"path"`
	Prefab PrefabConfig `yaml:"prefab"`
}

// GridConfig defines the grid dimensions. Both are raised to odd values >= 5.
type GridConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// SeedConfig controls reproducibility.
type SeedConfig struct {
	Value  int64 `yaml:"value"`
	Random bool  `yaml:"random"` // Draw a fresh seed on every run
}

// ExtrasConfig defines the post-processing passes.
type ExtrasConfig struct {
	Walls      float64 `yaml:"walls"`       // Extra wall ratio, 0..0.5
	Passages   float64 `yaml:"passages"`    // Extra passage ratio, 0..0.6
	StartGuard int     `yaml:"start_guard"` // Corner band near (1,1) kept free of extra walls
	EndGuard   int     `yaml:"end_guard"`   // Corner band near the far anchor
}

// FillConfig defines how much of a cell an obstacle occupies.
type FillConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	PaddingX float64 `yaml:"padding_x"` // World units subtracted from the width
	PaddingY float64 `yaml:"padding_y"` // World units subtracted from the height
}

// AreaConfig defines the world rectangle the grid is stretched over.
// With OverrideStep set, the rectangle only provides the origin.
type AreaConfig struct {
	BottomLeft   core.Vec2 `yaml:"bottom_left"`
	TopRight     core.Vec2 `yaml:"top_right"`
	OverrideStep bool      `yaml:"override_step"`
	StepX        float64   `yaml:"step_x"`
	StepY        float64   `yaml:"step_y"`
}

// PointConfig is a point of interest in world space.
type PointConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	SafeRadius int     `yaml:"safe_radius"` // Cells, 0..4
}

// Position returns the world position of the point.
func (p PointConfig) Position() core.Vec2 {
	return core.V(p.X, p.Y)
}

// PointsConfig holds the optional points of interest.
type PointsConfig struct {
	Player *PointConfig `yaml:"player,omitempty"`
	Enemy  *PointConfig `yaml:"enemy,omitempty"`
	Goal   *PointConfig `yaml:"goal,omitempty"`
}

// PathConfig defines the step costs of the route search.
type PathConfig struct {
	CarveCost   int `yaml:"carve_cost"`   // Cost of tunnelling through a wall
	BlockedCost int `yaml:"blocked_cost"` // Cost of a wall when carving is not allowed
}

// PrefabConfig is the unscaled footprint of the obstacle block.
type PrefabConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DifficultyPreset represents a named set of post-processing ratios.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyPerfect DifficultyPreset = "perfect"
)

// Presets returns all presets in cycling order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyPerfect}
}

// ParsePreset converts a name to a preset. Empty names are not valid.
func ParsePreset(name string) (DifficultyPreset, bool) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// NextPreset returns the preset following p, wrapping around.
func NextPreset(p DifficultyPreset) DifficultyPreset {
	all := Presets()
	for i, candidate := range all {
		if candidate == p {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// ApplyMazePreset modifies the extra wall/passage ratios for a preset.
// Easy mazes have many loops and few dead blocks; perfect disables both passes.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Extras.Walls = 0.02
		cfg.Extras.Passages = 0.30
	case DifficultyNormal:
		cfg.Extras.Walls = 0.10
		cfg.Extras.Passages = 0.15
	case DifficultyHard:
		cfg.Extras.Walls = 0.20
		cfg.Extras.Passages = 0.05
	case DifficultyPerfect:
		cfg.Extras.Walls = 0
		cfg.Extras.Passages = 0
	}
}
