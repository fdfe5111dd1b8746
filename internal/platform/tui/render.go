package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blightgrid/internal/core"
	"github.com/vovakirdan/blightgrid/internal/sim"
	"github.com/vovakirdan/blightgrid/internal/world"
)

// colorStyles maps palette slots to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorHidden:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	core.ColorFlag:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorEmpty:        lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorContaminated: lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	core.ColorCorrupt:      lipgloss.NewStyle().Foreground(lipgloss.Color("125")).Bold(true),
	core.ColorGrowth1:      lipgloss.NewStyle().Foreground(lipgloss.Color("64")),
	core.ColorGrowth2:      lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
	core.ColorGrowth3:      lipgloss.NewStyle().Foreground(lipgloss.Color("76")),
	core.ColorGrowth4:      lipgloss.NewStyle().Foreground(lipgloss.Color("118")).Bold(true),
	core.ColorCursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250")),
	core.ColorStatus:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
}

// Cell glyphs.
const (
	runeHidden  = '·'
	runeFlag    = '▪'
	runeEmpty   = 'o'
	runeCorrupt = 'x'
	runeGrowth  = '▲'
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// CellGlyph picks the glyph for a cell given its neighborhood. Cells whose
// neighborhood is not loaded yet are drawn as unrevealed.
func CellGlyph(n world.Neighborhood, known bool) core.Glyph {
	if !known {
		return core.Glyph{Rune: runeHidden, Color: core.ColorHidden}
	}
	c := n.Center()
	switch {
	case !c.Revealed && c.Flagged:
		return core.Glyph{Rune: runeFlag, Color: core.ColorFlag}
	case !c.Revealed:
		return core.Glyph{Rune: runeHidden, Color: core.ColorHidden}
	case c.Corrupted:
		return core.Glyph{Rune: runeCorrupt, Color: core.ColorCorrupt}
	case n.Contaminated():
		return core.Glyph{Rune: rune('0' + min(n.CorruptCount(), 9)), Color: core.ColorContaminated}
	case c.Growth == 0:
		return core.Glyph{Rune: runeEmpty, Color: core.ColorEmpty}
	default:
		return core.Glyph{Rune: runeGrowth, Color: core.GrowthColor(c.Growth)}
	}
}

// DrawWorld draws every cell of the projection's area and marks the cursor.
func DrawWorld(s *core.Screen, w *sim.Simulation, proj core.Projection) {
	area := proj.Area
	for sy := area.Y; sy < area.Bottom(); sy++ {
		for sx := area.X; sx < area.Right(); sx++ {
			gx, gy := proj.ToGrid(sx, sy)
			n, ok := w.QueryNeighborhood(world.G(gx, gy))
			s.SetCell(sx, sy, CellGlyph(n, ok))
		}
	}

	cursor := w.View().Cursor
	if sx, sy, ok := proj.ToScreen(cursor.X, cursor.Y); ok {
		g := s.GetCell(sx, sy)
		g.Color = core.ColorCursor
		s.SetCell(sx, sy, g)
	}
}

// StatusLine summarizes the world for the top row.
func StatusLine(st sim.Stats, cursor world.GridCoord) string {
	return fmt.Sprintf(" seed %d  %v  revealed %d  grown %d  corrupt %d  tiles %d  growth %d  regions %d",
		st.Seed, cursor, st.Revealed, st.Grown, st.Corrupted, st.Tiles, st.GrowthTasks, st.ActiveRegions)
}
