package maze

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// Mapping converts between grid cells and world positions.
type Mapping struct {
	Origin  core.Vec2 // Minimum corner of the world rectangle
	StepX   float64   // World distance per column
	StepY   float64   // World distance per row
	columns int
	rows    int
}

// NewMapping derives the cell steps for a grid of the given size.
// Without a step override the rectangle is divided by (columns-1, rows-1),
// so the border cells sit exactly on the rectangle edges.
func NewMapping(area config.AreaConfig, columns, rows int) Mapping {
	bl, tr := area.BottomLeft, area.TopRight
	m := Mapping{
		Origin:  core.V(math.Min(bl.X, tr.X), math.Min(bl.Y, tr.Y)),
		columns: columns,
		rows:    rows,
	}

	if area.OverrideStep {
		m.StepX = math.Max(config.MinCellStep, area.StepX)
		m.StepY = math.Max(config.MinCellStep, area.StepY)
		return m
	}

	m.StepX = math.Abs(tr.X-bl.X) / float64(columns-1)
	m.StepY = math.Abs(tr.Y-bl.Y) / float64(rows-1)
	return m
}

// CellToWorld returns the world position of a cell centre.
func (m Mapping) CellToWorld(p core.Point) core.Vec2 {
	return core.V(m.Origin.X+float64(p.X)*m.StepX, m.Origin.Y+float64(p.Y)*m.StepY)
}

// WorldToCell returns the nearest cell to a world position. Halves round to
// even. The second result is false when the cell falls outside the grid or
// the mapping is degenerate (a zero step).
func (m Mapping) WorldToCell(v core.Vec2) (core.Point, bool) {
	if m.StepX <= 0 || m.StepY <= 0 {
		return core.Point{}, false
	}

	fx := math.RoundToEven((v.X - m.Origin.X) / m.StepX)
	fy := math.RoundToEven((v.Y - m.Origin.Y) / m.StepY)
	inside := fx >= 0 && fx < float64(m.columns) && fy >= 0 && fy < float64(m.rows)
	if !inside { // also rejects NaN
		return core.Point{}, false
	}
	return core.P(int(fx), int(fy)), true
}
