package engine

import (
	"fmt"
	"math/rand"
)

// Strategy selects how the maze walls are generated.
type Strategy string

const (
	// StrategyTemplate composes four rotated quadrant templates into a
	// fixed, known-solvable layout.
	StrategyTemplate Strategy = "template"

	// StrategyRandom places walls by seeded constrained sampling.
	StrategyRandom Strategy = "random"
)

// ParseStrategy validates a strategy name, typically from a flag or config.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyTemplate, StrategyRandom:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("engine: unknown wall strategy %q", s)
	}
}

// GenParams bounds the randomized parts of board generation. The reference
// behavior loops without a cap; every sampling loop here has an explicit
// attempt budget and fails with ErrGenerationFailed when it is exhausted.
type GenParams struct {
	FixturesPerQuadrant  int // L-shaped two-wall fixtures per quadrant
	MaxPlacementAttempts int // retry budget per fixture placement
	MaxSampleAttempts    int // retry budget per free-cell sample
}

// DefaultGenParams returns the standard generation budgets.
func DefaultGenParams() GenParams {
	return GenParams{
		FixturesPerQuadrant:  4,
		MaxPlacementAttempts: 256,
		MaxSampleAttempts:    1024,
	}
}

// wallSpec is one authored wall placement in quadrant-local coordinates.
type wallSpec struct {
	Row, Col int
	Dir      Dir
}

// Quadrant templates, authored for the upper-left reference quadrant in
// local coordinates 0..Half-1. Each has two edge walls and four L-shaped
// pocket fixtures. Template q is rotated q times clockwise and translated
// into its quadrant, so the four corners carry distinct layouts.
var quadrantTemplates = [4][]wallSpec{
	{
		{0, 3, Right},
		{4, 0, Down},
		{1, 5, Down}, {1, 5, Left},
		{3, 1, Up}, {3, 1, Right},
		{5, 4, Right}, {5, 4, Down},
		{6, 2, Left}, {6, 2, Up},
	},
	{
		{0, 5, Right},
		{2, 0, Down},
		{2, 3, Right}, {2, 3, Down},
		{4, 6, Down}, {4, 6, Left},
		{6, 1, Up}, {6, 1, Right},
		{5, 3, Left}, {5, 3, Up},
	},
	{
		{0, 2, Right},
		{5, 0, Down},
		{1, 3, Down}, {1, 3, Left},
		{2, 6, Left}, {2, 6, Up},
		{4, 2, Up}, {4, 2, Right},
		{6, 5, Right}, {6, 5, Down},
	},
	{
		{0, 4, Right},
		{3, 0, Down},
		{1, 1, Right}, {1, 1, Down},
		{3, 5, Down}, {3, 5, Left},
		{5, 2, Left}, {5, 2, Up},
		{6, 6, Up}, {6, 6, Right},
	},
}

// generateTemplateWalls applies the four quadrant templates. For quadrant
// q each entry gets q clockwise rotations, (row,col) -> (col, Half-1-row)
// with the direction rotated once per turn, then a translation of +Half on
// the row for the lower half and on the column for the right half.
func generateTemplateWalls(g *Grid) {
	for q, tpl := range quadrantTemplates {
		for _, w := range tpl {
			row, col, dir := w.Row, w.Col, w.Dir
			for i := 0; i < q; i++ {
				row, col = col, Half-1-row
				dir = dir.Rotate()
			}
			// Quadrant order after q rotations: UL, UR, LR, LL.
			if q == 2 || q == 3 {
				row += Half
			}
			if q == 1 || q == 2 {
				col += Half
			}
			g.AddWall(C(row, col), dir)
		}
	}
}

// generateRandomWalls populates the grid with the randomized strategy:
// per quadrant, one wall on each outer edge line at an offset within the
// inner six cells of that half, then FixturesPerQuadrant L-shaped fixtures
// placed by rejection sampling. A fixture is accepted only when its cell
// and all four neighbors are wall-free, which keeps fixtures from abutting
// and forming unreachable pockets.
func generateRandomWalls(g *Grid, rng *rand.Rand, p GenParams) error {
	for qr := 0; qr < 2; qr++ {
		for qc := 0; qc < 2; qc++ {
			// One vertical-side wall on the horizontal outer edge and one
			// horizontal-side wall on the vertical outer edge. Offsets 1..6
			// keep the placements off the half boundaries.
			edgeRow := qr * (Size - 1)
			g.AddWall(C(edgeRow, qc*Half+1+rng.Intn(Half-2)), Right)

			edgeCol := qc * (Size - 1)
			g.AddWall(C(qr*Half+1+rng.Intn(Half-2), edgeCol), Down)

			for i := 0; i < p.FixturesPerQuadrant; i++ {
				if err := placeFixture(g, rng, qr, qc, p.MaxPlacementAttempts); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// placeFixture rejection-samples one two-wall corner fixture inside the
// given quadrant.
func placeFixture(g *Grid, rng *rand.Rand, qr, qc, attempts int) error {
	for a := 0; a < attempts; a++ {
		cell := C(
			qr*Half+1+rng.Intn(Half-2),
			qc*Half+1+rng.Intn(Half-2),
		)
		if g.Cell(cell).Walls != 0 {
			continue
		}
		free := true
		for _, d := range Dirs {
			n := cell.Step(d)
			if n.InBounds() && g.Cell(n).Walls != 0 {
				free = false
				break
			}
		}
		if !free {
			continue
		}

		dir := Dirs[rng.Intn(len(Dirs))]
		g.AddWall(cell, dir)
		g.AddWall(cell, dir.Rotate())
		return nil
	}
	return fmt.Errorf("%w: no room for wall fixture in quadrant (%d,%d)", ErrGenerationFailed, qr, qc)
}
