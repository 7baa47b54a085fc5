package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-maze/internal/core"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
// It matches defaults/maze.yaml and is used if the embedded file fails to parse.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: GridConfig{
			Columns: 21,
			Rows:    13,
		},
		Seed: SeedConfig{
			Value:  12345,
			Random: true,
		},
		Extras: ExtrasConfig{
			Walls:      0.10,
			Passages:   0.15,
			StartGuard: 3,
			EndGuard:   4,
		},
		Fill: FillConfig{
			X: 0.85,
			Y: 0.85,
		},
		Area: AreaConfig{
			BottomLeft: core.V(0, 0),
			TopRight:   core.V(20, 12),
			StepX:      1,
			StepY:      1,
		},
		Points: PointsConfig{
			Player: &PointConfig{X: 1, Y: 1, SafeRadius: 1},
			Enemy:  &PointConfig{X: 10, Y: 6, SafeRadius: 1},
			Goal:   &PointConfig{X: 19, Y: 11, SafeRadius: 1},
		},
		Path: PathConfig{
			CarveCost:   5,
			BlockedCost: DefaultBlocked,
		},
		Prefab: PrefabConfig{
			Width:  1,
			Height: 1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
