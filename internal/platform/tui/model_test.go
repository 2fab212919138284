package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ostankin/ricochet-tui/internal/config"
	"github.com/ostankin/ricochet-tui/internal/engine"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.DefaultConfig(), nil, engine.StrategyTemplate, 42)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	m.width = BoardW + 10
	m.height = BoardH + 10
	return m
}

func pressRune(t *testing.T, m Model, r rune) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func pressKey(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: k})
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func TestModelSelectAndSlide(t *testing.T) {
	m := newTestModel(t)

	m = pressRune(t, m, 'r')
	if got := m.session.ActiveColor(); got != engine.Red {
		t.Fatalf("active = %v after pressing r, want Red", got)
	}

	before, _ := m.session.Board().PieceLocation(engine.Red)
	dist := engine.MaxTravel(m.session.Board(), before, engine.Up)

	m = pressKey(t, m, tea.KeyUp)
	after, _ := m.session.Board().PieceLocation(engine.Red)

	if dist > 0 {
		if m.session.HistoryLen() != 1 {
			t.Errorf("history = %d after a travelling slide, want 1", m.session.HistoryLen())
		}
		if after == before {
			t.Error("piece did not move")
		}
	} else {
		if m.session.HistoryLen() != 0 {
			t.Errorf("history = %d after a zero slide, want 0", m.session.HistoryLen())
		}
	}
}

func TestModelSlideWithoutSelection(t *testing.T) {
	m := newTestModel(t)

	m = pressKey(t, m, tea.KeyUp)
	if m.session.HistoryLen() != 0 {
		t.Error("slide recorded without an active piece")
	}
	if !m.alert {
		t.Error("expected an alert status when no piece is selected")
	}
}

func TestModelDeselect(t *testing.T) {
	m := newTestModel(t)

	m = pressRune(t, m, 'g')
	m = pressKey(t, m, tea.KeyEsc)
	if m.session.ActiveColor() != engine.ColorNone {
		t.Error("escape did not deselect the piece")
	}
}

func TestModelUndo(t *testing.T) {
	m := newTestModel(t)

	m = pressRune(t, m, 'y')
	for _, k := range []tea.KeyType{tea.KeyUp, tea.KeyLeft, tea.KeyDown, tea.KeyRight} {
		m = pressKey(t, m, k)
		if m.session.HistoryLen() > 0 {
			break
		}
	}
	if m.session.HistoryLen() == 0 {
		t.Skip("yellow piece is boxed in on this layout")
	}

	moves := m.session.HistoryLen()
	m = pressRune(t, m, 'u')
	if m.session.HistoryLen() != moves-1 {
		t.Errorf("history = %d after undo, want %d", m.session.HistoryLen(), moves-1)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if next, ok := updated.(Model); ok && !next.quitting {
		t.Error("quitting flag not set")
	}
}

func TestModelViewContainsHeader(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "round 1") {
		t.Error("view does not show the round counter")
	}
	if !strings.Contains(view, "Ricochet") {
		t.Error("view does not show the title")
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m := newTestModel(t)
	m.width = 20
	m.height = 10

	view := m.View()
	if !strings.Contains(view, "too small") {
		t.Errorf("expected a resize prompt, got:\n%s", view)
	}
}

func TestModelZeroSeedReplaced(t *testing.T) {
	m, err := NewModel(config.DefaultConfig(), nil, engine.StrategyRandom, 0)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if m.seed == 0 {
		t.Error("zero seed was not replaced with a time-based one")
	}
}
