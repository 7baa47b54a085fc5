package maze

import (
	"github.com/vovakirdan/tui-maze/internal/core"
)

// Snapshot is a read-only copy of a finished grid plus the points of
// interest and forced route. It is informational only and never feeds back
// into generation.
type Snapshot struct {
	grid  *Grid
	Cells map[Role]core.Point
	Path  []core.Point
}

func newSnapshot(g *Grid, p Protection) Snapshot {
	cells := make(map[Role]core.Point, len(p.Cells))
	for r, c := range p.Cells {
		cells[r] = c
	}
	return Snapshot{
		grid:  g.Clone(),
		Cells: cells,
		Path:  append([]core.Point(nil), p.Path...),
	}
}

// Columns returns the grid width, or 0 for an empty snapshot.
func (s Snapshot) Columns() int {
	if s.grid == nil {
		return 0
	}
	return s.grid.Columns()
}

// Rows returns the grid height, or 0 for an empty snapshot.
func (s Snapshot) Rows() int {
	if s.grid == nil {
		return 0
	}
	return s.grid.Rows()
}

// At returns the state of p.
func (s Snapshot) At(p core.Point) Cell {
	if s.grid == nil {
		return Wall
	}
	return s.grid.At(p)
}

// Grid returns a private copy of the snapshot grid.
func (s Snapshot) Grid() *Grid {
	if s.grid == nil {
		return nil
	}
	return s.grid.Clone()
}

// String returns the '#'/'.' rendering of the grid, north up.
func (s Snapshot) String() string {
	if s.grid == nil {
		return ""
	}
	return s.grid.String()
}

// PreviewOptions controls DrawPreview.
type PreviewOptions struct {
	ShowPath  bool
	CellWidth int // Characters per cell, 2 looks square in most terminals
}

// Preview glyphs.
const (
	glyphWall = '█'
	glyphPath = '·'
)

var roleGlyphs = map[Role]struct {
	r rune
	c core.Color
}{
	RolePlayer: {'P', core.ColorGreen},
	RoleEnemy:  {'E', core.ColorRed},
	RoleGoal:   {'G', core.ColorYellow},
}

// PreviewSize returns the screen size DrawPreview needs for s.
func PreviewSize(s Snapshot, opts PreviewOptions) (w, h int) {
	return s.Columns() * max(1, opts.CellWidth), s.Rows()
}

// DrawPreview draws s into dst with its top-left corner at (x0, y0), north
// up. Cells that do not fit are clipped by the screen.
func DrawPreview(dst *core.Screen, x0, y0 int, s Snapshot, opts PreviewOptions) {
	cw := max(1, opts.CellWidth)
	rows := s.Rows()

	put := func(p core.Point, r rune, c core.Color) {
		sy := y0 + rows - 1 - p.Y
		for i := 0; i < cw; i++ {
			dst.SetColored(x0+p.X*cw+i, sy, r, c)
		}
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < s.Columns(); x++ {
			p := core.P(x, y)
			if s.At(p) == Wall {
				put(p, glyphWall, core.ColorGray)
			} else {
				put(p, ' ', core.ColorDefault)
			}
		}
	}

	if opts.ShowPath {
		for _, p := range s.Path {
			put(p, glyphPath, core.ColorCyan)
		}
	}

	for _, role := range Roles() {
		if cell, ok := s.Cells[role]; ok {
			g := roleGlyphs[role]
			put(cell, g.r, g.c)
		}
	}
}
