// Package maze generates grid mazes that stay connected between a start, an
// enemy and a goal region, and places obstacle blocks for every wall cell.
//
// The pipeline is carve (perfect maze) -> extra walls -> extra passages ->
// protect points of interest and force a route -> place obstacles. A run is
// fully determined by its seed and configuration.
package maze

import (
	"strings"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// Cell is the binary state of a grid cell.
type Cell uint8

const (
	Wall Cell = iota
	Open
)

// String returns the name of the cell state.
func (c Cell) String() string {
	if c == Open {
		return "Open"
	}
	return "Wall"
}

// Grid is the occupancy array of a maze, indexed [row][col].
// Both dimensions are odd: odd-odd cells are rooms, the rest are walls
// between rooms or pillars.
type Grid struct {
	columns int
	rows    int
	cells   [][]Cell
}

// NewGrid allocates a grid with every cell set to Wall.
// Dimensions are raised to odd values of at least 5.
func NewGrid(columns, rows int) *Grid {
	g := &Grid{
		columns: config.OddDimension(columns),
		rows:    config.OddDimension(rows),
	}
	g.cells = make([][]Cell, g.rows)
	for y := range g.cells {
		g.cells[y] = make([]Cell, g.columns) // Wall is the zero value
	}
	return g
}

// Columns returns the grid width.
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.columns && p.Y >= 0 && p.Y < g.rows
}

// Interior reports whether p lies strictly inside the border ring.
func (g *Grid) Interior(p core.Point) bool {
	return p.X > 0 && p.X < g.columns-1 && p.Y > 0 && p.Y < g.rows-1
}

// At returns the state of p. Out-of-bounds cells read as Wall.
func (g *Grid) At(p core.Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y][p.X]
}

// IsOpen reports whether p is an in-bounds Open cell.
func (g *Grid) IsOpen(p core.Point) bool {
	return g.At(p) == Open
}

// Set writes the state of p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p core.Point, c Cell) {
	if g.InBounds(p) {
		g.cells[p.Y][p.X] = c
	}
}

// Count returns the number of cells in state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Start returns the near anchor cell (1,1).
func (g *Grid) Start() core.Point {
	return core.P(1, 1)
}

// End returns the far anchor cell (columns-2, rows-2).
func (g *Grid) End() core.Point {
	return core.P(g.columns-2, g.rows-2)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{columns: g.columns, rows: g.rows, cells: make([][]Cell, g.rows)}
	for y, row := range g.cells {
		c.cells[y] = append([]Cell(nil), row...)
	}
	return c
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.columns != other.columns || g.rows != other.rows {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders walls as '#' and open cells as '.', with the last row
// printed first so that world "up" is up.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.columns + 1) * g.rows)
	for y := g.rows - 1; y >= 0; y-- {
		for x := 0; x < g.columns; x++ {
			if g.cells[y][x] == Open {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
