// Package render draws a grid and a route as text, one character per cell.
//
// Tips:
//
//	.  free cell        S  start
//	O  obstacle         R  route
//	                    F  finish
//
// Colour is applied with lipgloss when enabled; the characters are the same
// either way, so coloured and plain output line up.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
)

// Cell tips.
const (
	TipFree     = '.'
	TipObstacle = 'O'
	TipStart    = 'S'
	TipRoute    = 'R'
	TipFinish   = 'F'
)

// Map palette.
var (
	colorObstacle = lipgloss.Color("#2C4A54")
	colorRoute    = lipgloss.Color("#2CD7C7")
	colorStart    = lipgloss.Color("#F4D03F")
	colorFinish   = lipgloss.Color("#E74C3C")
	colorFree     = lipgloss.Color("#157483")
)

// styles maps each tip to its lipgloss style.
var styles = map[byte]lipgloss.Style{
	TipFree:     lipgloss.NewStyle().Foreground(colorFree),
	TipObstacle: lipgloss.NewStyle().Foreground(colorObstacle).Bold(true),
	TipRoute:    lipgloss.NewStyle().Foreground(colorRoute).Bold(true),
	TipStart:    lipgloss.NewStyle().Foreground(colorStart).Bold(true),
	TipFinish:   lipgloss.NewStyle().Foreground(colorFinish).Bold(true),
}

// Options controls rendering.
type Options struct {
	// Color wraps each run of equal tips in its lipgloss style.
	Color bool
}

// Option configures rendering.
type Option func(*Options)

// WithColor enables or disables styled output.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// Tips returns the plain tip rows for g with route drawn from start: S at
// start, R on every intermediate cell and F on the last cell. An empty route
// marks only S. Cells the route leaves the grid through are ignored.
func Tips(g *grid.Grid, start grid.Position, route astar.Route) [][]byte {
	rows := make([][]byte, g.Height())
	for y := range rows {
		rows[y] = make([]byte, g.Width())
		for x := range rows[y] {
			if g.IsBlocked(grid.Pos(x, y)) {
				rows[y][x] = TipObstacle
			} else {
				rows[y][x] = TipFree
			}
		}
	}

	set := func(p grid.Position, tip byte) {
		if g.InBounds(p) {
			rows[p.Y][p.X] = tip
		}
	}
	last := route.Len()
	for i, p := range route.Walk(start) {
		switch {
		case i == 0:
			set(p, TipStart)
		case i == last:
			set(p, TipFinish)
		default:
			set(p, TipRoute)
		}
	}

	return rows
}

// Map renders g with route as a newline-terminated block of text.
func Map(g *grid.Grid, start grid.Position, route astar.Route, opts ...Option) string {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for _, row := range Tips(g, start, route) {
		if cfg.Color {
			writeStyled(&b, row)
		} else {
			b.Write(row)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Fprint writes Map output to w.
func Fprint(w io.Writer, g *grid.Grid, start grid.Position, route astar.Route, opts ...Option) error {
	_, err := io.WriteString(w, Map(g, start, route, opts...))
	return err
}

// writeStyled renders runs of identical tips with one style call per run.
func writeStyled(b *strings.Builder, row []byte) {
	for i := 0; i < len(row); {
		j := i + 1
		for j < len(row) && row[j] == row[i] {
			j++
		}
		b.WriteString(styles[row[i]].Render(string(row[i:j])))
		i = j
	}
}

// Legend returns a one-line description of the tips.
func Legend() string {
	return fmt.Sprintf("%c free  %c obstacle  %c start  %c route  %c finish",
		TipFree, TipObstacle, TipStart, TipRoute, TipFinish)
}
