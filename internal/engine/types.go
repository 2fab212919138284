// Package engine implements the sliding-piece puzzle: wall generation,
// piece and target placement, slide resolution, and round bookkeeping.
// This package is UI-agnostic and deterministic under an injected RNG.
package engine

import "fmt"

// Size is the board dimension. The board is always Size x Size.
const Size = 16

// Half is the quadrant dimension (Size/2).
const Half = Size / 2

// Dir represents a cardinal slide direction.
type Dir uint8

const (
	Up Dir = iota
	Right
	Down
	Left
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset for one step in this direction.
// Up decreases the row, Down increases it.
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Rotate returns the direction turned 90 degrees clockwise.
func (d Dir) Rotate() Dir {
	return (d + 1) % 4
}

// Dirs lists all four directions in rotation order.
var Dirs = [4]Dir{Up, Right, Down, Left}

// Coord is a cell position on the board.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the coordinate one cell away in the given direction.
func (c Coord) Step(d Dir) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Offset returns the coordinate n cells away in the given direction.
func (c Coord) Offset(d Dir, n int) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr*n, Col: c.Col + dc*n}
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Color identifies one of the four pieces.
type Color uint8

const (
	// ColorNone is the sentinel for "no piece"; it never occupies a cell.
	ColorNone Color = iota
	Red
	Green
	Blue
	Yellow
)

// Colors lists the four piece colors in placement order.
var Colors = [4]Color{Red, Green, Blue, Yellow}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case ColorNone:
		return "none"
	default:
		return "unknown"
	}
}

// Target pairs the cell a round must be solved on with the piece color
// that has to reach it.
type Target struct {
	Color Color
	Cell  Coord
}

// Move records one completed slide. Moves are immutable once recorded.
type Move struct {
	Color Color
	From  Coord
	To    Coord
}

// Inverted returns the move that undoes this one. Applying it after the
// original restores the prior occupancy exactly, because pieces move one
// at a time and the vacated source cell is guaranteed free again.
func (m Move) Inverted() Move {
	return Move{Color: m.Color, From: m.To, To: m.From}
}
