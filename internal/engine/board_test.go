package engine

import (
	"math/rand"
	"testing"
)

func TestGenerateRandomBoard(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b, err := Generate(StrategyRandom, rng, DefaultGenParams())
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		checkBoardInvariants(t, b)
	}
}

func TestGenerateTemplateBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b, err := Generate(StrategyTemplate, rng, DefaultGenParams())
	if err != nil {
		t.Fatal(err)
	}
	checkBoardInvariants(t, b)
}

func checkBoardInvariants(t *testing.T, b *Board) {
	t.Helper()

	checkWallSymmetry(t, b.Grid)

	seen := make(map[Coord]Color)
	for _, color := range Colors {
		loc, ok := b.PieceLocation(color)
		if !ok {
			t.Fatalf("no piece placed for %v", color)
		}
		if other, dup := seen[loc]; dup {
			t.Fatalf("%v and %v share cell %v", color, other, loc)
		}
		seen[loc] = color
		if InHub(loc) {
			t.Fatalf("%v placed inside the hub at %v", color, loc)
		}
		if b.Grid.PieceAt(loc) != color {
			t.Fatalf("grid occupancy does not match piece map at %v", loc)
		}
	}

	if b.Grid.WallCount(b.Target.Cell) != 2 {
		t.Errorf("target %v has %d walls, want 2", b.Target.Cell, b.Grid.WallCount(b.Target.Cell))
	}
	if b.Grid.IsOccupied(b.Target.Cell) {
		t.Errorf("target %v is occupied at selection time", b.Target.Cell)
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	p := DefaultGenParams()

	b1, err := Generate(StrategyRandom, rand.New(rand.NewSource(17)), p)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := Generate(StrategyRandom, rand.New(rand.NewSource(17)), p)
	if err != nil {
		t.Fatal(err)
	}

	if *b1.Grid != *b2.Grid {
		t.Error("same seed produced different grids")
	}
	for _, color := range Colors {
		if b1.Pieces[color] != b2.Pieces[color] {
			t.Errorf("%v placed at %v vs %v", color, b1.Pieces[color], b2.Pieces[color])
		}
	}
	if b1.Target != b2.Target {
		t.Errorf("targets differ: %+v vs %+v", b1.Target, b2.Target)
	}
}

func TestGenerateRejectsUnknownStrategy(t *testing.T) {
	_, err := Generate(Strategy("spiral"), rand.New(rand.NewSource(1)), DefaultGenParams())
	if err == nil {
		t.Fatal("expected an error for an unknown strategy")
	}
}
