package engine

import (
	"fmt"
	"math/rand"
)

// SampleFreeCell uniformly samples coordinates until it finds a cell that
// is neither piece-occupied nor blocked. Free-cell density stays high
// after wall and hub setup, so the loop converges quickly; the attempt
// budget makes non-termination impossible regardless.
func SampleFreeCell(g *Grid, rng *rand.Rand, maxAttempts int) (Coord, error) {
	for a := 0; a < maxAttempts; a++ {
		c := C(rng.Intn(Size), rng.Intn(Size))
		if !g.IsOccupied(c) {
			return c, nil
		}
	}
	return Coord{}, fmt.Errorf("%w: no free cell found in %d samples", ErrGenerationFailed, maxAttempts)
}

// targetCandidates collects every cell that is unoccupied and has exactly
// two walls set. These pocket cells are the ones a slide can be parked in.
func targetCandidates(g *Grid) []Coord {
	var out []Coord
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := C(r, c)
			if !g.IsOccupied(cell) && g.WallCount(cell) == 2 {
				out = append(out, cell)
			}
		}
	}
	return out
}

// SelectTarget draws a new target: a uniformly chosen pocket cell paired
// with a uniformly chosen color. Returns ErrNoLegalTarget when no cell
// qualifies; the caller decides whether to regenerate the board or retry.
func SelectTarget(g *Grid, rng *rand.Rand) (Target, error) {
	candidates := targetCandidates(g)
	if len(candidates) == 0 {
		return Target{}, ErrNoLegalTarget
	}
	return Target{
		Color: Colors[rng.Intn(len(Colors))],
		Cell:  candidates[rng.Intn(len(candidates))],
	}, nil
}
