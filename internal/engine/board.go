package engine

import (
	"fmt"
	"math/rand"
)

// Board is a generated maze plus the live piece and target state.
// Piece locations are mirrored in the grid's occupancy; ApplyMove keeps
// the two views consistent.
type Board struct {
	Grid   *Grid
	Pieces map[Color]Coord
	Target Target
}

// Generate builds a complete board: sealed hub, walls per the chosen
// strategy, one piece per color on sampled free cells, and a fresh target.
// Fails with ErrNoLegalTarget when no pocket cell qualifies after
// placement, and with ErrGenerationFailed when a sampling budget runs out;
// both are recoverable by regenerating with another seed.
func Generate(strategy Strategy, rng *rand.Rand, p GenParams) (*Board, error) {
	g := NewGrid()
	g.SealHub()

	switch strategy {
	case StrategyTemplate:
		generateTemplateWalls(g)
	case StrategyRandom:
		if err := generateRandomWalls(g, rng, p); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("engine: unknown wall strategy %q", strategy)
	}

	b := &Board{
		Grid:   g,
		Pieces: make(map[Color]Coord, len(Colors)),
	}

	// Occupy each sampled cell immediately so later samples cannot collide.
	for _, color := range Colors {
		cell, err := SampleFreeCell(g, rng, p.MaxSampleAttempts)
		if err != nil {
			return nil, err
		}
		g.setOccupied(cell, color)
		b.Pieces[color] = cell
	}

	target, err := SelectTarget(g, rng)
	if err != nil {
		return nil, err
	}
	b.Target = target

	return b, nil
}

// PieceLocation returns the current cell of the given color's piece.
func (b *Board) PieceLocation(color Color) (Coord, bool) {
	c, ok := b.Pieces[color]
	return c, ok
}
