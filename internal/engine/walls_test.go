package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestTemplateWallsSymmetryAndHub(t *testing.T) {
	g := NewGrid()
	g.SealHub()
	generateTemplateWalls(g)

	checkWallSymmetry(t, g)

	for r := Half - 1; r <= Half; r++ {
		for c := Half - 1; c <= Half; c++ {
			if g.Cell(C(r, c)).Kind != Blocked || g.WallCount(C(r, c)) != 4 {
				t.Errorf("hub cell (%d,%d) disturbed by template walls", r, c)
			}
		}
	}
}

func TestTemplateWallsAreDeterministic(t *testing.T) {
	g1 := NewGrid()
	g1.SealHub()
	generateTemplateWalls(g1)

	g2 := NewGrid()
	g2.SealHub()
	generateTemplateWalls(g2)

	if *g1 != *g2 {
		t.Error("template strategy produced two different layouts")
	}
}

func TestTemplateWallsProducePockets(t *testing.T) {
	g := NewGrid()
	g.SealHub()
	generateTemplateWalls(g)

	if n := len(targetCandidates(g)); n < 8 {
		t.Errorf("template layout has %d pocket cells, want at least 8", n)
	}
}

func TestTemplateRotationCoversAllQuadrants(t *testing.T) {
	g := NewGrid()
	g.SealHub()
	generateTemplateWalls(g)

	quadrantHasWalls := func(rowOff, colOff int) bool {
		for r := rowOff; r < rowOff+Half; r++ {
			for c := colOff; c < colOff+Half; c++ {
				if InHub(C(r, c)) {
					continue
				}
				if g.Cell(C(r, c)).Walls != 0 {
					return true
				}
			}
		}
		return false
	}

	for _, off := range [][2]int{{0, 0}, {0, Half}, {Half, 0}, {Half, Half}} {
		if !quadrantHasWalls(off[0], off[1]) {
			t.Errorf("quadrant at offset %v has no walls", off)
		}
	}
}

func TestRandomWallsInvariants(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := NewGrid()
		g.SealHub()
		if err := generateRandomWalls(g, rng, DefaultGenParams()); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		checkWallSymmetry(t, g)

		for r := Half - 1; r <= Half; r++ {
			for c := Half - 1; c <= Half; c++ {
				if g.Cell(C(r, c)).Kind != Blocked || g.WallCount(C(r, c)) != 4 {
					t.Fatalf("seed %d: hub cell (%d,%d) disturbed", seed, r, c)
				}
			}
		}

		if n := len(targetCandidates(g)); n == 0 {
			t.Errorf("seed %d: random layout has no pocket cells", seed)
		}
	}
}

func TestRandomWallsDeterministicPerSeed(t *testing.T) {
	p := DefaultGenParams()

	g1 := NewGrid()
	g1.SealHub()
	if err := generateRandomWalls(g1, rand.New(rand.NewSource(7)), p); err != nil {
		t.Fatal(err)
	}

	g2 := NewGrid()
	g2.SealHub()
	if err := generateRandomWalls(g2, rand.New(rand.NewSource(7)), p); err != nil {
		t.Fatal(err)
	}

	if *g1 != *g2 {
		t.Error("same seed produced two different layouts")
	}
}

func TestRandomFixturesDoNotAbut(t *testing.T) {
	// Every two-wall pocket placed by the fixture sampler must not sit
	// next to another fixture cell; accepted placements required all four
	// neighbors to be wall-free at placement time, so no cell may end up
	// with walls contributed by two different fixtures.
	rng := rand.New(rand.NewSource(99))
	g := NewGrid()
	g.SealHub()
	if err := generateRandomWalls(g, rng, DefaultGenParams()); err != nil {
		t.Fatal(err)
	}

	for r := 1; r < Size-1; r++ {
		for c := 1; c < Size-1; c++ {
			cell := C(r, c)
			if InHub(cell) {
				continue
			}
			adjacentToHub := false
			for _, d := range Dirs {
				if InHub(cell.Step(d)) {
					adjacentToHub = true
				}
			}
			if adjacentToHub {
				continue
			}
			if got := g.WallCount(cell); got > 3 {
				t.Errorf("interior cell %v has %d walls", cell, got)
			}
		}
	}
}

func TestPlaceFixtureExhaustsBudget(t *testing.T) {
	// Fill a quadrant with walls so no fixture placement can be accepted.
	g := NewGrid()
	g.SealHub()
	for r := 0; r < Half; r++ {
		for c := 0; c < Half; c++ {
			g.AddWall(C(r, c), Up)
		}
	}

	rng := rand.New(rand.NewSource(1))
	err := placeFixture(g, rng, 0, 0, 32)
	if err == nil {
		t.Fatal("expected generation failure in a saturated quadrant")
	}
	if !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("error = %v, want ErrGenerationFailed", err)
	}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"template", StrategyTemplate, false},
		{"random", StrategyRandom, false},
		{"", "", true},
		{"spiral", "", true},
	}
	for _, tc := range cases {
		got, err := ParseStrategy(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseStrategy(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
