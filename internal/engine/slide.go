package engine

// MaxTravel ray-casts the maximal legal slide distance from the given
// location. Stepping stops as soon as the next cell is off the board, has
// a wall on the side facing back toward the mover, or is occupied. Wall
// symmetry makes the entry-side check sufficient: a wall on the current
// cell's exit side always has its mirror on the destination.
//
// A result of 0 means the piece cannot move; callers treat it as "no move
// occurs", not as an error. The rendering layer uses this same query to
// highlight reachable cells before a move is committed.
func MaxTravel(b *Board, from Coord, d Dir) int {
	steps := 0
	cur := from
	back := d.Opposite()
	for steps < Size {
		next := cur.Step(d)
		if !next.InBounds() {
			break
		}
		if b.Grid.Cell(next).Walls.Has(back) {
			break
		}
		if b.Grid.IsOccupied(next) {
			break
		}
		cur = next
		steps++
	}
	return steps
}

// ApplyMove relocates the named piece from move.From to move.To as a
// single atomic jump; intermediate cells are never marked occupied.
func ApplyMove(b *Board, m Move) {
	b.Grid.setEmpty(m.From)
	b.Grid.setOccupied(m.To, m.Color)
	b.Pieces[m.Color] = m.To
}
