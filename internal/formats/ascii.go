// Package formats provides the output formats of the generate command.
// Each format registers itself with the registry in init().
package formats

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// Marker runes for points of interest in text output.
var markers = map[maze.Role]rune{
	maze.RolePlayer: 'P',
	maze.RoleEnemy:  'E',
	maze.RoleGoal:   'G',
}

// ASCII prints the grid as '#' and '.' rows, north up, with P/E/G marking
// the points of interest. Placements are ignored.
type ASCII struct{}

func init() {
	registry.Register("ascii", func() registry.Format { return &ASCII{} })
}

// ID implements registry.Format.
func (a *ASCII) ID() string { return "ascii" }

// Title implements registry.Format.
func (a *ASCII) Title() string { return "Plain text grid" }

// Clear implements maze.Container.
func (a *ASCII) Clear() {}

// Place implements maze.Container.
func (a *ASCII) Place(maze.Obstacle) {}

// Write implements registry.Format.
func (a *ASCII) Write(w io.Writer, res maze.Result) error {
	_, err := io.WriteString(w, renderText(res.Snapshot())+"\n")
	return err
}

// renderText returns the north-up text rendering of s with markers.
func renderText(s maze.Snapshot) string {
	rows := s.Rows()
	lines := make([][]rune, rows)
	for i, line := range strings.Split(s.String(), "\n") {
		if i < rows {
			lines[i] = []rune(line)
		}
	}

	for _, role := range maze.Roles() {
		cell, ok := s.Cells[role]
		if !ok {
			continue
		}
		row := rows - 1 - cell.Y
		if row >= 0 && row < rows && cell.X >= 0 && cell.X < len(lines[row]) {
			lines[row][cell.X] = markers[role]
		}
	}

	out := make([]string, rows)
	for i, l := range lines {
		out[i] = string(l)
	}
	return strings.Join(out, "\n")
}

// formatVec prints a world vector compactly.
func formatVec(v core.Vec2) string {
	return fmt.Sprintf("%g,%g", v.X, v.Y)
}
