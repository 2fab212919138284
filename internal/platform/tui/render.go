package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ostankin/ricochet-tui/internal/core"
	"github.com/ostankin/ricochet-tui/internal/engine"
)

// Board cell footprint on screen. Each board cell owns a top border row
// and a left border column; the final row/column of the frame is shared.
const (
	cellW = 4
	cellH = 2

	// BoardW and BoardH are the screen footprint of the full board.
	BoardW = engine.Size*cellW + 1
	BoardH = engine.Size*cellH + 1
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// pieceColor maps an engine piece color to its bright screen color.
func pieceColor(c engine.Color) core.Color {
	switch c {
	case engine.Red:
		return core.ColorBrightRed
	case engine.Green:
		return core.ColorBrightGreen
	case engine.Blue:
		return core.ColorBrightBlue
	case engine.Yellow:
		return core.ColorBrightYellow
	}
	return core.ColorDefault
}

// targetColor maps an engine color to the dimmer shade used for targets
// and reach hints, so pieces stay visually dominant.
func targetColor(c engine.Color) core.Color {
	switch c {
	case engine.Red:
		return core.ColorRed
	case engine.Green:
		return core.ColorGreen
	case engine.Blue:
		return core.ColorBlue
	case engine.Yellow:
		return core.ColorYellow
	}
	return core.ColorDefault
}

// pieceRune is the board glyph for a piece of the given color.
func pieceRune(c engine.Color) rune {
	switch c {
	case engine.Red:
		return 'R'
	case engine.Green:
		return 'G'
	case engine.Blue:
		return 'B'
	case engine.Yellow:
		return 'Y'
	}
	return '?'
}

// cellOrigin returns the screen position of the top-left corner of a
// board cell, i.e. its shared border intersection.
func cellOrigin(c engine.Coord) (x, y int) {
	return c.Col * cellW, c.Row * cellH
}

// DrawBoard renders the board into a fresh screen buffer sized BoardW x BoardH.
// If active is not ColorNone and showReach is set, the cells the active
// piece can slide through are marked with dots in the piece's color.
func DrawBoard(b *engine.Board, active engine.Color, showReach bool) *core.Screen {
	s := core.NewScreen(BoardW, BoardH)

	drawFrame(s)
	drawWalls(s, b)
	drawHub(s, b)
	drawTarget(s, b)
	if showReach && active != engine.ColorNone {
		drawReach(s, b, active)
	}
	drawPieces(s, b, active)

	return s
}

// drawFrame draws the outer border and the faint interior lattice dots.
func drawFrame(s *core.Screen) {
	for r := 0; r <= engine.Size; r++ {
		for c := 0; c <= engine.Size; c++ {
			s.SetColored(c*cellW, r*cellH, '·', core.ColorGray)
		}
	}

	for x := 0; x < BoardW; x++ {
		s.SetColored(x, 0, '─', core.ColorWhite)
		s.SetColored(x, BoardH-1, '─', core.ColorWhite)
	}
	for y := 0; y < BoardH; y++ {
		s.SetColored(0, y, '│', core.ColorWhite)
		s.SetColored(BoardW-1, y, '│', core.ColorWhite)
	}
	s.SetColored(0, 0, '┌', core.ColorWhite)
	s.SetColored(BoardW-1, 0, '┐', core.ColorWhite)
	s.SetColored(0, BoardH-1, '└', core.ColorWhite)
	s.SetColored(BoardW-1, BoardH-1, '┘', core.ColorWhite)
}

// drawWalls draws interior walls. Wall symmetry means drawing each cell's
// top and left sides covers every interior wall exactly once.
func drawWalls(s *core.Screen, b *engine.Board) {
	for r := 0; r < engine.Size; r++ {
		for c := 0; c < engine.Size; c++ {
			cell := engine.C(r, c)
			x, y := cellOrigin(cell)
			if r > 0 && b.Grid.HasWall(cell, engine.Up) {
				for i := 1; i < cellW; i++ {
					s.SetColored(x+i, y, '─', core.ColorWhite)
				}
			}
			if c > 0 && b.Grid.HasWall(cell, engine.Left) {
				s.SetColored(x, y+1, '│', core.ColorWhite)
			}
		}
	}
}

// drawHub shades the blocked center cells.
func drawHub(s *core.Screen, b *engine.Board) {
	for r := 0; r < engine.Size; r++ {
		for c := 0; c < engine.Size; c++ {
			cell := engine.C(r, c)
			if !engine.InHub(cell) {
				continue
			}
			x, y := cellOrigin(cell)
			for i := 1; i < cellW; i++ {
				s.SetColored(x+i, y+1, '▒', core.ColorGray)
			}
		}
	}
}

// drawTarget marks the target cell. Pieces drawn later may cover it.
func drawTarget(s *core.Screen, b *engine.Board) {
	x, y := cellOrigin(b.Target.Cell)
	s.SetColored(x+2, y+1, '◎', targetColor(b.Target.Color))
}

// drawReach dots every cell the active piece slides through in each
// direction, up to and including its stopping cell.
func drawReach(s *core.Screen, b *engine.Board, active engine.Color) {
	from, ok := b.PieceLocation(active)
	if !ok {
		return
	}
	for _, d := range engine.Dirs {
		dist := engine.MaxTravel(b, from, d)
		for i := 1; i <= dist; i++ {
			x, y := cellOrigin(from.Offset(d, i))
			s.SetColored(x+2, y+1, '·', targetColor(active))
		}
	}
}

// drawPieces draws all four pieces, bracketing the active one.
func drawPieces(s *core.Screen, b *engine.Board, active engine.Color) {
	for _, color := range engine.Colors {
		at, ok := b.PieceLocation(color)
		if !ok {
			continue
		}
		x, y := cellOrigin(at)
		col := pieceColor(color)
		s.SetColored(x+2, y+1, pieceRune(color), col)
		if color == active {
			s.SetColored(x+1, y+1, '[', col)
			s.SetColored(x+3, y+1, ']', col)
		}
	}
}

// WithCoordinates wraps a rendered board with hex row and column rulers.
// Single hex digits keep the rulers aligned with the 4-column cells.
func WithCoordinates(board string) string {
	const digits = "0123456789abcdef"

	var header strings.Builder
	header.WriteString("  ")
	for c := 0; c < engine.Size; c++ {
		// Land each digit over the center of its 4-column cell.
		header.WriteString("  ")
		header.WriteByte(digits[c])
		header.WriteString(" ")
	}

	lines := strings.Split(board, "\n")
	var sb strings.Builder
	sb.WriteString(header.String())
	sb.WriteString("\n")
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		// Content rows sit between the border rows.
		if i%cellH == 1 {
			sb.WriteByte(digits[i/cellH])
			sb.WriteString(" ")
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(line)
	}
	return sb.String()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.Cell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Cell(x, y)
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
