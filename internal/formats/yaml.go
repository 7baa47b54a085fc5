package formats

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// YAML writes the whole run as a single YAML document.
type YAML struct {
	maze.Collection
}

func init() {
	registry.Register("yaml", func() registry.Format { return &YAML{} })
}

// Document is the YAML layout of a run.
type Document struct {
	Seed     int64                 `yaml:"seed"`
	Columns  int                   `yaml:"columns"`
	Rows     int                   `yaml:"rows"`
	Grid     []string              `yaml:"grid"` // North up
	Points   map[string]core.Point `yaml:"points,omitempty"`
	Unmapped []string              `yaml:"unmapped,omitempty"`
	Path     []core.Point          `yaml:"path,omitempty"`
	Extras   DocumentExtras        `yaml:"extras"`
	Stats    DocumentStats         `yaml:"stats"`
	Walls    []maze.Obstacle       `yaml:"walls,omitempty"`
}

// DocumentExtras reports the post-processing passes.
type DocumentExtras struct {
	Walls       int `yaml:"walls"`
	WallsTarget int `yaml:"walls_target"`
	Passages    int `yaml:"passages"`
}

// DocumentStats reports the walkable-space analysis.
type DocumentStats struct {
	Open      int `yaml:"open"`
	Reachable int `yaml:"reachable"`
	Isolated  int `yaml:"isolated"`
	DeadEnds  int `yaml:"dead_ends"`
}

// ID implements registry.Format.
func (y *YAML) ID() string { return "yaml" }

// Title implements registry.Format.
func (y *YAML) Title() string { return "Full run as YAML" }

// NewDocument builds the YAML layout of res with the given placements.
func NewDocument(res maze.Result, walls []maze.Obstacle) Document {
	snap := res.Snapshot()
	doc := Document{
		Seed:    res.Seed,
		Columns: res.Columns,
		Rows:    res.Rows,
		Path:    res.Protection.Path,
		Extras: DocumentExtras{
			Walls:       res.ExtraWalls,
			WallsTarget: res.ExtraWallsTarget,
			Passages:    res.Passages,
		},
		Stats: DocumentStats{
			Open:      res.Stats.Open,
			Reachable: res.Stats.Reachable,
			Isolated:  res.Stats.Isolated,
			DeadEnds:  res.Stats.DeadEnds,
		},
		Walls: walls,
	}
	if s := snap.String(); s != "" {
		doc.Grid = strings.Split(s, "\n")
	}
	if len(snap.Cells) > 0 {
		doc.Points = make(map[string]core.Point, len(snap.Cells))
		for role, cell := range snap.Cells {
			doc.Points[role.String()] = cell
		}
	}
	for _, role := range res.Protection.Unmapped {
		doc.Unmapped = append(doc.Unmapped, role.String())
	}
	return doc
}

// Write implements registry.Format.
func (y *YAML) Write(w io.Writer, res maze.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(res, y.Obstacles)); err != nil {
		return err
	}
	return enc.Close()
}
