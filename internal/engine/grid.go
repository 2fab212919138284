package engine

import "math/bits"

// WallSet is a bitmask of wall presence per direction.
type WallSet uint8

// Has reports whether the wall on side d is set.
func (w WallSet) Has(d Dir) bool {
	return w&(1<<d) != 0
}

// With returns the set with the wall on side d added.
func (w WallSet) With(d Dir) WallSet {
	return w | (1 << d)
}

// Count returns the number of walls set.
func (w WallSet) Count() int {
	return bits.OnesCount8(uint8(w))
}

// OccKind is the occupancy tag of a cell. A cell is exactly one of
// empty, blocked (hub), or occupied by a piece.
type OccKind uint8

const (
	Empty OccKind = iota
	Blocked
	Occupied
)

// Cell is a single board cell: its wall mask and occupancy state.
// Piece is meaningful only when Kind is Occupied.
type Cell struct {
	Walls WallSet
	Kind  OccKind
	Piece Color
}

// Grid is the Size x Size wall-and-occupancy model. Cells are stored in
// row-major order.
type Grid struct {
	cells [Size * Size]Cell
}

// NewGrid returns a grid with no walls and all cells empty.
func NewGrid() *Grid {
	return &Grid{}
}

func (g *Grid) index(c Coord) int {
	return c.Row*Size + c.Col
}

// Cell returns the cell at the given coordinate.
// Out-of-bounds coordinates return a zero cell.
func (g *Grid) Cell(c Coord) Cell {
	if !c.InBounds() {
		return Cell{}
	}
	return g.cells[g.index(c)]
}

// AddWall sets the wall on side d of the cell at c and mirrors it onto
// the neighbor's opposite side when that neighbor is in bounds. The
// pairing is never skipped; without it a slide could pass a wall from
// one side but not the other.
func (g *Grid) AddWall(c Coord, d Dir) {
	if !c.InBounds() {
		return
	}
	i := g.index(c)
	g.cells[i].Walls = g.cells[i].Walls.With(d)

	n := c.Step(d)
	if n.InBounds() {
		j := g.index(n)
		g.cells[j].Walls = g.cells[j].Walls.With(d.Opposite())
	}
}

// HasWall reports whether the cell at c has a wall on side d.
func (g *Grid) HasWall(c Coord, d Dir) bool {
	return g.Cell(c).Walls.Has(d)
}

// WallCount returns the number of walls set on the cell at c.
func (g *Grid) WallCount(c Coord) int {
	return g.Cell(c).Walls.Count()
}

// IsOccupied reports whether the cell at c can neither be stopped on nor
// passed through: true for piece-occupied and blocked cells.
func (g *Grid) IsOccupied(c Coord) bool {
	k := g.Cell(c).Kind
	return k == Occupied || k == Blocked
}

// PieceAt returns the color occupying the cell at c, or ColorNone.
func (g *Grid) PieceAt(c Coord) Color {
	cell := g.Cell(c)
	if cell.Kind != Occupied {
		return ColorNone
	}
	return cell.Piece
}

// setOccupied marks the cell at c as holding the given piece.
func (g *Grid) setOccupied(c Coord, color Color) {
	i := g.index(c)
	g.cells[i].Kind = Occupied
	g.cells[i].Piece = color
}

// setEmpty clears the occupancy of the cell at c. Blocked cells are
// permanent and are never cleared.
func (g *Grid) setEmpty(c Coord) {
	i := g.index(c)
	if g.cells[i].Kind == Blocked {
		return
	}
	g.cells[i].Kind = Empty
	g.cells[i].Piece = ColorNone
}

// InHub reports whether the coordinate is one of the four center cells.
func InHub(c Coord) bool {
	return c.Row >= Half-1 && c.Row <= Half && c.Col >= Half-1 && c.Col <= Half
}

// SealHub marks the center 2x2 block blocked and walls all four sides of
// each of its cells. Called once at board creation; the hub is never
// mutated afterwards.
func (g *Grid) SealHub() {
	for r := Half - 1; r <= Half; r++ {
		for c := Half - 1; c <= Half; c++ {
			cell := C(r, c)
			g.cells[g.index(cell)].Kind = Blocked
			for _, d := range Dirs {
				g.AddWall(cell, d)
			}
		}
	}
}
