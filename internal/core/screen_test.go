package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "    \n    " {
		t.Errorf("blank screen = %q", got)
	}
}

func TestSetAndCell(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetColored(1, 1, 'R', ColorRed)

	cell := s.Cell(1, 1)
	if cell.Rune != 'R' || cell.Color != ColorRed {
		t.Errorf("cell = %+v", cell)
	}
}

func TestOutOfBoundsAreIgnored(t *testing.T) {
	s := NewScreen(2, 2)
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(2, 0, 'x')
	s.Set(0, 2, 'x')

	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds write leaked into the buffer")
	}
	if got := s.Cell(9, 9); got.Rune != ' ' {
		t.Errorf("out-of-bounds read = %+v", got)
	}
}

func TestDrawTextClips(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "abcdef")

	if got := s.String(); got != "   ab" {
		t.Errorf("clipped text = %q", got)
	}
}

func TestClearResetsColors(t *testing.T) {
	s := NewScreen(2, 1)
	s.SetColored(0, 0, 'R', ColorRed)
	s.Clear()

	if cell := s.Cell(0, 0); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after clear = %+v", cell)
	}
}
