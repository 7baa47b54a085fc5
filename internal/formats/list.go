package formats

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// List prints one line per placed obstacle.
type List struct {
	maze.Collection
}

func init() {
	registry.Register("list", func() registry.Format { return &List{} })
}

// ID implements registry.Format.
func (l *List) ID() string { return "list" }

// Title implements registry.Format.
func (l *List) Title() string { return "Obstacle placements, one per line" }

// Write implements registry.Format.
func (l *List) Write(w io.Writer, res maze.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CELL\tPOSITION\tSIZE\tSCALE\tLAYER")
	for _, o := range l.Obstacles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			o.Cell, formatVec(o.Position), formatVec(o.Size), formatVec(o.Scale), o.Layer)
	}
	return tw.Flush()
}
